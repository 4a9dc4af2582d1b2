// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused"}, Default: "active"},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "position_x", Type: field.TypeFloat64, Default: 0},
		{Name: "position_y", Type: field.TypeFloat64, Default: 0},
		{Name: "target_x", Type: field.TypeFloat64, Default: 0},
		{Name: "target_y", Type: field.TypeFloat64, Default: 0},
		{Name: "current_action", Type: field.TypeEnum, Enums: []string{"idle", "walking", "working", "talking", "reviewing", "thinking"}, Default: "idle"},
		{Name: "avatar", Type: field.TypeString, Default: "default"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_projects_agents",
				Columns:    []*schema.Column{AgentsColumns[14]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[14], AgentsColumns[4]},
			},
			{
				Name:    "agent_role",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "chat_message_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_projects_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_agents_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "events_projects_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[3]},
			},
			{
				Name:    "event_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "active", "completed", "failed", "cancelled"}, Default: "planned"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "proposal_id", Type: field.TypeString, Unique: true},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "missions_agents_missions",
				Columns:    []*schema.Column{MissionsColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "missions_projects_missions",
				Columns:    []*schema.Column{MissionsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "missions_proposals_mission",
				Columns:    []*schema.Column{MissionsColumns[8]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[3]},
			},
			{
				Name:    "mission_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[7], MissionsColumns[3]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "repo_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "decommissioned"}, Default: "active"},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[5]},
			},
		},
	}
	// ProjectContextsColumns holds the columns for the "project_contexts" table.
	ProjectContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "source_step_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ProjectContextsTable holds the schema information for the "project_contexts" table.
	ProjectContextsTable = &schema.Table{
		Name:       "project_contexts",
		Columns:    ProjectContextsColumns,
		PrimaryKey: []*schema.Column{ProjectContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_contexts_projects_context_entries",
				Columns:    []*schema.Column{ProjectContextsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectcontext_project_id_category_key",
				Unique:  true,
				Columns: []*schema.Column{ProjectContextsColumns[8], ProjectContextsColumns[1], ProjectContextsColumns[2]},
			},
			{
				Name:    "projectcontext_project_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectContextsColumns[8], ProjectContextsColumns[7]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "proposal_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending", "approved", "rejected", "expired"}, Default: "draft"},
		{Name: "auto_approve", Type: field.TypeBool, Default: false},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "mc_task_id", Type: field.TypeString, Nullable: true},
		{Name: "mc_board_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "proposals_agents_proposals",
				Columns:    []*schema.Column{ProposalsColumns[12]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "proposals_projects_proposals",
				Columns:    []*schema.Column{ProposalsColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "proposal_status",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[5]},
			},
			{
				Name:    "proposal_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[5], ProposalsColumns[11]},
			},
			{
				Name:    "proposal_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[13], ProposalsColumns[5]},
			},
			{
				Name:    "proposal_mc_task_id",
				Unique:  true,
				Columns: []*schema.Column{ProposalsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "mc_task_id IS NOT NULL",
				},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "step_type", Type: field.TypeEnum, Enums: []string{"code", "test", "review", "deploy", "research", "security", "other"}, Default: "other"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "claimed", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "mission_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_agents_claimed_steps",
				Columns:    []*schema.Column{StepsColumns[11]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "steps_missions_steps",
				Columns:    []*schema.Column{StepsColumns[12]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_mission_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[12], StepsColumns[1]},
			},
			{
				Name:    "step_status",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[5]},
			},
			{
				Name:    "step_status_order_index",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[5], StepsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'claimed')",
				},
			},
		},
	}
	// TriggersColumns holds the columns for the "triggers" table.
	TriggersColumns = []*schema.Column{
		{Name: "trigger_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "event_pattern", Type: field.TypeJSON},
		{Name: "action", Type: field.TypeJSON},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// TriggersTable holds the schema information for the "triggers" table.
	TriggersTable = &schema.Table{
		Name:       "triggers",
		Columns:    TriggersColumns,
		PrimaryKey: []*schema.Column{TriggersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "triggers_projects_triggers",
				Columns:    []*schema.Column{TriggersColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trigger_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{TriggersColumns[7], TriggersColumns[1]},
			},
			{
				Name:    "trigger_enabled",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ChatMessagesTable,
		EventsTable,
		MissionsTable,
		ProjectsTable,
		ProjectContextsTable,
		ProposalsTable,
		StepsTable,
		TriggersTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = ProjectsTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ProjectsTable
	EventsTable.ForeignKeys[0].RefTable = AgentsTable
	EventsTable.ForeignKeys[1].RefTable = ProjectsTable
	MissionsTable.ForeignKeys[0].RefTable = AgentsTable
	MissionsTable.ForeignKeys[1].RefTable = ProjectsTable
	MissionsTable.ForeignKeys[2].RefTable = ProposalsTable
	ProjectContextsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProposalsTable.ForeignKeys[0].RefTable = AgentsTable
	ProposalsTable.ForeignKeys[1].RefTable = ProjectsTable
	StepsTable.ForeignKeys[0].RefTable = AgentsTable
	StepsTable.ForeignKeys[1].RefTable = MissionsTable
	TriggersTable.ForeignKeys[0].RefTable = ProjectsTable
}
