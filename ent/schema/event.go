package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Append-only audit log and the substrate triggers evaluate against.
// Rows are never mutated; retention deletes old ones.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("e.g., 'step.completed', 'mission.completed', 'mission.escalated'"),
		field.String("source_agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("events").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("source_agent", Agent.Type).
			Ref("events").
			Field("source_agent_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Trigger window scan
		index.Fields("project_id", "created_at"),
		index.Fields("event_type", "created_at"),
		// Retention sweep
		index.Fields("created_at"),
	}
}
