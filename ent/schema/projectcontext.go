package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectContext holds the schema definition for the ProjectContext entity.
// Accumulated project knowledge keyed by (category, key); agents and steps
// write entries, the prompt builder reads the most recent ones.
type ProjectContext struct {
	ent.Schema
}

// Fields of the ProjectContext.
func (ProjectContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("category").
			Comment("e.g., 'architecture', 'conventions', 'decisions'"),
		field.String("key"),
		field.Text("content"),
		field.String("source_agent_id").
			Optional().
			Nillable(),
		field.String("source_step_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Upserts refresh this; recency ordering for prompts"),
	}
}

// Edges of the ProjectContext.
func (ProjectContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("context_entries").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProjectContext.
func (ProjectContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "category", "key").
			Unique(),
		index.Fields("project_id", "updated_at"),
	}
}
