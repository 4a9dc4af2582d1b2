// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
)

// Mission is the model entity for the Mission schema.
type Mission struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID string `json:"proposal_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status mission.Status `json:"status,omitempty"`
	// AssignedAgentID holds the value of the "assigned_agent_id" field.
	AssignedAgentID *string `json:"assigned_agent_id,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MissionQuery when eager-loading is set.
	Edges        MissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MissionEdges holds the relations/edges for other nodes in the graph.
type MissionEdges struct {
	// Proposal holds the value of the proposal edge.
	Proposal *Proposal `json:"proposal,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// AssignedAgent holds the value of the assigned_agent edge.
	AssignedAgent *Agent `json:"assigned_agent,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MissionEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MissionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// AssignedAgentOrErr returns the AssignedAgent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MissionEdges) AssignedAgentOrErr() (*Agent, error) {
	if e.AssignedAgent != nil {
		return e.AssignedAgent, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_agent"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e MissionEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[3] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mission.FieldID, mission.FieldProposalID, mission.FieldProjectID, mission.FieldTitle, mission.FieldDescription, mission.FieldStatus, mission.FieldAssignedAgentID:
			values[i] = new(sql.NullString)
		case mission.FieldCompletedAt, mission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mission fields.
func (_m *Mission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mission.FieldProposalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value.Valid {
				_m.ProposalID = value.String
			}
		case mission.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case mission.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case mission.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case mission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = mission.Status(value.String)
			}
		case mission.FieldAssignedAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent_id", values[i])
			} else if value.Valid {
				_m.AssignedAgentID = new(string)
				*_m.AssignedAgentID = value.String
			}
		case mission.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case mission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mission.
// This includes values selected through modifiers, order, etc.
func (_m *Mission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposal queries the "proposal" edge of the Mission entity.
func (_m *Mission) QueryProposal() *ProposalQuery {
	return NewMissionClient(_m.config).QueryProposal(_m)
}

// QueryProject queries the "project" edge of the Mission entity.
func (_m *Mission) QueryProject() *ProjectQuery {
	return NewMissionClient(_m.config).QueryProject(_m)
}

// QueryAssignedAgent queries the "assigned_agent" edge of the Mission entity.
func (_m *Mission) QueryAssignedAgent() *AgentQuery {
	return NewMissionClient(_m.config).QueryAssignedAgent(_m)
}

// QuerySteps queries the "steps" edge of the Mission entity.
func (_m *Mission) QuerySteps() *StepQuery {
	return NewMissionClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this Mission.
// Note that you need to call Mission.Unwrap() before calling this method if this Mission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mission) Update() *MissionUpdateOne {
	return NewMissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mission) Unwrap() *Mission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mission) String() string {
	var builder strings.Builder
	builder.WriteString("Mission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposal_id=")
	builder.WriteString(_m.ProposalID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AssignedAgentID; v != nil {
		builder.WriteString("assigned_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Missions is a parsable slice of Mission.
type Missions []*Mission
