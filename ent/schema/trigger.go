package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trigger holds the schema definition for the Trigger entity.
// A declarative event-pattern → action rule scoped to one project.
type Trigger struct {
	ent.Schema
}

// Fields of the Trigger.
func (Trigger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.JSON("event_pattern", map[string]interface{}{}).
			Comment("{event_type, conditions: {k: v, ...}} matched by strict equality"),
		field.JSON("action", map[string]interface{}{}).
			Comment("Tagged union: {type: 'create_step' | 'evaluate_mission_completion', ...}"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_fired_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Trigger.
func (Trigger) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("triggers").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Trigger.
func (Trigger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").
			Unique(),
		index.Fields("enabled"),
	}
}
