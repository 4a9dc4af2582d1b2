// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldPositionX holds the string denoting the position_x field in the database.
	FieldPositionX = "position_x"
	// FieldPositionY holds the string denoting the position_y field in the database.
	FieldPositionY = "position_y"
	// FieldTargetX holds the string denoting the target_x field in the database.
	FieldTargetX = "target_x"
	// FieldTargetY holds the string denoting the target_y field in the database.
	FieldTargetY = "target_y"
	// FieldCurrentAction holds the string denoting the current_action field in the database.
	FieldCurrentAction = "current_action"
	// FieldAvatar holds the string denoting the avatar field in the database.
	FieldAvatar = "avatar"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeProposals holds the string denoting the proposals edge name in mutations.
	EdgeProposals = "proposals"
	// EdgeMissions holds the string denoting the missions edge name in mutations.
	EdgeMissions = "missions"
	// EdgeClaimedSteps holds the string denoting the claimed_steps edge name in mutations.
	EdgeClaimedSteps = "claimed_steps"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// ProposalFieldID holds the string denoting the ID field of the Proposal.
	ProposalFieldID = "proposal_id"
	// MissionFieldID holds the string denoting the ID field of the Mission.
	MissionFieldID = "mission_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "agents"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ProposalsTable is the table that holds the proposals relation/edge.
	ProposalsTable = "proposals"
	// ProposalsInverseTable is the table name for the Proposal entity.
	// It exists in this package in order to avoid circular dependency with the "proposal" package.
	ProposalsInverseTable = "proposals"
	// ProposalsColumn is the table column denoting the proposals relation/edge.
	ProposalsColumn = "agent_id"
	// MissionsTable is the table that holds the missions relation/edge.
	MissionsTable = "missions"
	// MissionsInverseTable is the table name for the Mission entity.
	// It exists in this package in order to avoid circular dependency with the "mission" package.
	MissionsInverseTable = "missions"
	// MissionsColumn is the table column denoting the missions relation/edge.
	MissionsColumn = "assigned_agent_id"
	// ClaimedStepsTable is the table that holds the claimed_steps relation/edge.
	ClaimedStepsTable = "steps"
	// ClaimedStepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	ClaimedStepsInverseTable = "steps"
	// ClaimedStepsColumn is the table column denoting the claimed_steps relation/edge.
	ClaimedStepsColumn = "claimed_by_agent_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "source_agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldRole,
	FieldDescription,
	FieldStatus,
	FieldProjectID,
	FieldConfig,
	FieldLastSeenAt,
	FieldPositionX,
	FieldPositionY,
	FieldTargetX,
	FieldTargetY,
	FieldCurrentAction,
	FieldAvatar,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultPositionX holds the default value on creation for the "position_x" field.
	DefaultPositionX float64
	// DefaultPositionY holds the default value on creation for the "position_y" field.
	DefaultPositionY float64
	// DefaultTargetX holds the default value on creation for the "target_x" field.
	DefaultTargetX float64
	// DefaultTargetY holds the default value on creation for the "target_y" field.
	DefaultTargetY float64
	// DefaultAvatar holds the default value on creation for the "avatar" field.
	DefaultAvatar string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// CurrentAction defines the type for the "current_action" enum field.
type CurrentAction string

// CurrentActionIdle is the default value of the CurrentAction enum.
const DefaultCurrentAction = CurrentActionIdle

// CurrentAction values.
const (
	CurrentActionIdle      CurrentAction = "idle"
	CurrentActionWalking   CurrentAction = "walking"
	CurrentActionWorking   CurrentAction = "working"
	CurrentActionTalking   CurrentAction = "talking"
	CurrentActionReviewing CurrentAction = "reviewing"
	CurrentActionThinking  CurrentAction = "thinking"
)

func (ca CurrentAction) String() string {
	return string(ca)
}

// CurrentActionValidator is a validator for the "current_action" field enum values. It is called by the builders before save.
func CurrentActionValidator(ca CurrentAction) error {
	switch ca {
	case CurrentActionIdle, CurrentActionWalking, CurrentActionWorking, CurrentActionTalking, CurrentActionReviewing, CurrentActionThinking:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for current_action field: %q", ca)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByPositionX orders the results by the position_x field.
func ByPositionX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionX, opts...).ToFunc()
}

// ByPositionY orders the results by the position_y field.
func ByPositionY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionY, opts...).ToFunc()
}

// ByTargetX orders the results by the target_x field.
func ByTargetX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetX, opts...).ToFunc()
}

// ByTargetY orders the results by the target_y field.
func ByTargetY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetY, opts...).ToFunc()
}

// ByCurrentAction orders the results by the current_action field.
func ByCurrentAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAction, opts...).ToFunc()
}

// ByAvatar orders the results by the avatar field.
func ByAvatar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatar, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByProposalsCount orders the results by proposals count.
func ByProposalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProposalsStep(), opts...)
	}
}

// ByProposals orders the results by proposals terms.
func ByProposals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProposalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMissionsCount orders the results by missions count.
func ByMissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMissionsStep(), opts...)
	}
}

// ByMissions orders the results by missions terms.
func ByMissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByClaimedStepsCount orders the results by claimed_steps count.
func ByClaimedStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClaimedStepsStep(), opts...)
	}
}

// ByClaimedSteps orders the results by claimed_steps terms.
func ByClaimedSteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimedStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newProposalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProposalsInverseTable, ProposalFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProposalsTable, ProposalsColumn),
	)
}
func newMissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MissionsInverseTable, MissionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MissionsTable, MissionsColumn),
	)
}
func newClaimedStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimedStepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClaimedStepsTable, ClaimedStepsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
