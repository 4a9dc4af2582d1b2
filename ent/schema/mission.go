package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission holds the schema definition for the Mission entity.
// An approved proposal is realized as exactly one mission; the unique
// proposal_id enforces the bijection.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.String("proposal_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("planned", "active", "completed", "failed", "cancelled").
			Default("planned"),
		field.String("assigned_agent_id").
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

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("proposal", Proposal.Type).
			Ref("mission").
			Field("proposal_id").
			Unique().
			Required().
			Immutable(),
		edge.From("project", Project.Type).
			Ref("missions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("assigned_agent", Agent.Type).
			Ref("missions").
			Field("assigned_agent_id").
			Unique(),
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project_id", "status"),
	}
}
