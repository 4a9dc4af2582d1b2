package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity.
// The atomic unit of work: typed, ordered within its mission, claimed and
// executed by one agent, dispatched to an external backend.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.Int("order_index").
			Default(0).
			Comment("Selection order within the mission; trigger-created steps default to 999"),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Enum("step_type").
			Values("code", "test", "review", "deploy", "research", "security", "other").
			Default("other"),
		field.Enum("status").
			Values("pending", "claimed", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.String("claimed_by_agent_id").
			Optional().
			Nillable().
			Comment("Set on claim; never cleared afterwards"),
		field.Text("output").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("steps").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
		edge.From("claimed_by", Agent.Type).
			Ref("claimed_steps").
			Field("claimed_by_agent_id").
			Unique(),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "order_index"),
		index.Fields("status"),

		// Partial index covering the worker selection query
		index.Fields("status", "order_index").
			Annotations(entsql.IndexWhere("status IN ('pending', 'claimed')")),
	}
}
