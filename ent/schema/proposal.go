package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Proposal holds the schema definition for the Proposal entity.
// A proposal is an intent to perform work; it gates on approval before a
// mission is materialized from it.
type Proposal struct {
	ent.Schema
}

// Fields of the Proposal.
func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("proposal_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Originating agent; missions inherit it as assignee"),
		field.String("project_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Text("rationale").
			Default(""),
		field.Enum("priority").
			Values("critical", "high", "medium", "low").
			Default("medium"),
		field.Enum("status").
			Values("draft", "pending", "approved", "rejected", "expired").
			Default("draft"),
		field.Bool("auto_approve").
			Default(false),
		field.String("reviewed_by").
			Optional().
			Nillable().
			Comment("'system' for policy approvals, a username for manual ones"),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.String("mc_task_id").
			Optional().
			Nillable().
			Comment("Remote board task this proposal was synced from; dedup key"),
		field.String("mc_board_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Proposal.
func (Proposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("proposals").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("project", Project.Type).
			Ref("proposals").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("mission", Mission.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Proposal.
func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("project_id", "status"),

		// Dedup guarantee across inbound syncs: unique only when present
		index.Fields("mc_task_id").
			Unique().
			Annotations(entsql.IndexWhere("mc_task_id IS NOT NULL")),
	}
}
