// Code generated by ent, DO NOT EDIT.

package step

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the step type in the database.
	Label = "step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStepType holds the string denoting the step_type field in the database.
	FieldStepType = "step_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClaimedByAgentID holds the string denoting the claimed_by_agent_id field in the database.
	FieldClaimedByAgentID = "claimed_by_agent_id"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMission holds the string denoting the mission edge name in mutations.
	EdgeMission = "mission"
	// EdgeClaimedBy holds the string denoting the claimed_by edge name in mutations.
	EdgeClaimedBy = "claimed_by"
	// MissionFieldID holds the string denoting the ID field of the Mission.
	MissionFieldID = "mission_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// Table holds the table name of the step in the database.
	Table = "steps"
	// MissionTable is the table that holds the mission relation/edge.
	MissionTable = "steps"
	// MissionInverseTable is the table name for the Mission entity.
	// It exists in this package in order to avoid circular dependency with the "mission" package.
	MissionInverseTable = "missions"
	// MissionColumn is the table column denoting the mission relation/edge.
	MissionColumn = "mission_id"
	// ClaimedByTable is the table that holds the claimed_by relation/edge.
	ClaimedByTable = "steps"
	// ClaimedByInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	ClaimedByInverseTable = "agents"
	// ClaimedByColumn is the table column denoting the claimed_by relation/edge.
	ClaimedByColumn = "claimed_by_agent_id"
)

// Columns holds all SQL columns for step fields.
var Columns = []string{
	FieldID,
	FieldMissionID,
	FieldOrderIndex,
	FieldTitle,
	FieldDescription,
	FieldStepType,
	FieldStatus,
	FieldClaimedByAgentID,
	FieldOutput,
	FieldError,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultOrderIndex holds the default value on creation for the "order_index" field.
	DefaultOrderIndex int
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// StepType defines the type for the "step_type" enum field.
type StepType string

// StepTypeOther is the default value of the StepType enum.
const DefaultStepType = StepTypeOther

// StepType values.
const (
	StepTypeCode     StepType = "code"
	StepTypeTest     StepType = "test"
	StepTypeReview   StepType = "review"
	StepTypeDeploy   StepType = "deploy"
	StepTypeResearch StepType = "research"
	StepTypeSecurity StepType = "security"
	StepTypeOther    StepType = "other"
)

func (st StepType) String() string {
	return string(st)
}

// StepTypeValidator is a validator for the "step_type" field enum values. It is called by the builders before save.
func StepTypeValidator(st StepType) error {
	switch st {
	case StepTypeCode, StepTypeTest, StepTypeReview, StepTypeDeploy, StepTypeResearch, StepTypeSecurity, StepTypeOther:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for step_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusClaimed   Status = "claimed"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusClaimed, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Step queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStepType orders the results by the step_type field.
func ByStepType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClaimedByAgentID orders the results by the claimed_by_agent_id field.
func ByClaimedByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedByAgentID, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMissionField orders the results by mission field.
func ByMissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMissionStep(), sql.OrderByField(field, opts...))
	}
}

// ByClaimedByField orders the results by claimed_by field.
func ByClaimedByField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimedByStep(), sql.OrderByField(field, opts...))
	}
}
func newMissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MissionInverseTable, MissionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
	)
}
func newClaimedByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimedByInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClaimedByTable, ClaimedByColumn),
	)
}
