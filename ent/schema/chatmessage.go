package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Chat history for the assistant surface. Sessions are implicit: messages
// share an opaque session_id key; there is no session table.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable().
			Comment("Opaque conversation key; also the dispatcher session affinity key"),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("project_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("chat_messages").
			Field("project_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
