package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// Agents are persistent role-bound workers, each bound to exactly one project.
// The pose fields drive the office UI and never affect orchestration.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("role").
			Comment("e.g., 'developer', 'reviewer', 'product_manager'"),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("active", "paused").
			Default("active"),
		field.String("project_id").
			Immutable(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Capabilities, auto_approve_proposals, dispatcher overrides"),
		field.Time("last_seen_at").
			Optional().
			Nillable().
			Comment("Heartbeat from work cycles; stale agents surface in deep health"),

		// UI pose state
		field.Float("position_x").
			Default(0),
		field.Float("position_y").
			Default(0),
		field.Float("target_x").
			Default(0),
		field.Float("target_y").
			Default(0),
		field.Enum("current_action").
			Values("idle", "walking", "working", "talking", "reviewing", "thinking").
			Default("idle"),
		field.String("avatar").
			Default("default"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("agents").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("proposals", Proposal.Type),
		edge.To("missions", Mission.Type),
		edge.To("claimed_steps", Step.Type),
		edge.To("events", Event.Type),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("role"),
	}
}
