package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project is the scoping unit for agents, proposals, missions and triggers.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("slug").
			Unique().
			Comment("Stable external handle (board mappings, config files)"),
		field.Text("description").
			Default(""),
		field.String("repo_path").
			Optional().
			Nillable().
			Comment("Local checkout used to resolve prompt context files"),
		field.Enum("status").
			Values("active", "paused", "decommissioned").
			Default("active"),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("proposals", Proposal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("missions", Mission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("triggers", Trigger.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("context_entries", ProjectContext.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
