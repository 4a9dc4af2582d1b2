// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/ent/project"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// e.g., 'developer', 'reviewer', 'product_manager'
	Role string `json:"role,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status agent.Status `json:"status,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Capabilities, auto_approve_proposals, dispatcher overrides
	Config map[string]interface{} `json:"config,omitempty"`
	// Heartbeat from work cycles; stale agents surface in deep health
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	// PositionX holds the value of the "position_x" field.
	PositionX float64 `json:"position_x,omitempty"`
	// PositionY holds the value of the "position_y" field.
	PositionY float64 `json:"position_y,omitempty"`
	// TargetX holds the value of the "target_x" field.
	TargetX float64 `json:"target_x,omitempty"`
	// TargetY holds the value of the "target_y" field.
	TargetY float64 `json:"target_y,omitempty"`
	// CurrentAction holds the value of the "current_action" field.
	CurrentAction agent.CurrentAction `json:"current_action,omitempty"`
	// Avatar holds the value of the "avatar" field.
	Avatar string `json:"avatar,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Proposals holds the value of the proposals edge.
	Proposals []*Proposal `json:"proposals,omitempty"`
	// Missions holds the value of the missions edge.
	Missions []*Mission `json:"missions,omitempty"`
	// ClaimedSteps holds the value of the claimed_steps edge.
	ClaimedSteps []*Step `json:"claimed_steps,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ProposalsOrErr returns the Proposals value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ProposalsOrErr() ([]*Proposal, error) {
	if e.loadedTypes[1] {
		return e.Proposals, nil
	}
	return nil, &NotLoadedError{edge: "proposals"}
}

// MissionsOrErr returns the Missions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) MissionsOrErr() ([]*Mission, error) {
	if e.loadedTypes[2] {
		return e.Missions, nil
	}
	return nil, &NotLoadedError{edge: "missions"}
}

// ClaimedStepsOrErr returns the ClaimedSteps value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ClaimedStepsOrErr() ([]*Step, error) {
	if e.loadedTypes[3] {
		return e.ClaimedSteps, nil
	}
	return nil, &NotLoadedError{edge: "claimed_steps"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldConfig:
			values[i] = new([]byte)
		case agent.FieldPositionX, agent.FieldPositionY, agent.FieldTargetX, agent.FieldTargetY:
			values[i] = new(sql.NullFloat64)
		case agent.FieldID, agent.FieldName, agent.FieldRole, agent.FieldDescription, agent.FieldStatus, agent.FieldProjectID, agent.FieldCurrentAction, agent.FieldAvatar:
			values[i] = new(sql.NullString)
		case agent.FieldLastSeenAt, agent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case agent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case agent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agent.Status(value.String)
			}
		case agent.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case agent.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case agent.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = new(time.Time)
				*_m.LastSeenAt = value.Time
			}
		case agent.FieldPositionX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field position_x", values[i])
			} else if value.Valid {
				_m.PositionX = value.Float64
			}
		case agent.FieldPositionY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field position_y", values[i])
			} else if value.Valid {
				_m.PositionY = value.Float64
			}
		case agent.FieldTargetX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_x", values[i])
			} else if value.Valid {
				_m.TargetX = value.Float64
			}
		case agent.FieldTargetY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_y", values[i])
			} else if value.Valid {
				_m.TargetY = value.Float64
			}
		case agent.FieldCurrentAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_action", values[i])
			} else if value.Valid {
				_m.CurrentAction = agent.CurrentAction(value.String)
			}
		case agent.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = value.String
			}
		case agent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Agent entity.
func (_m *Agent) QueryProject() *ProjectQuery {
	return NewAgentClient(_m.config).QueryProject(_m)
}

// QueryProposals queries the "proposals" edge of the Agent entity.
func (_m *Agent) QueryProposals() *ProposalQuery {
	return NewAgentClient(_m.config).QueryProposals(_m)
}

// QueryMissions queries the "missions" edge of the Agent entity.
func (_m *Agent) QueryMissions() *MissionQuery {
	return NewAgentClient(_m.config).QueryMissions(_m)
}

// QueryClaimedSteps queries the "claimed_steps" edge of the Agent entity.
func (_m *Agent) QueryClaimedSteps() *StepQuery {
	return NewAgentClient(_m.config).QueryClaimedSteps(_m)
}

// QueryEvents queries the "events" edge of the Agent entity.
func (_m *Agent) QueryEvents() *EventQuery {
	return NewAgentClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	if v := _m.LastSeenAt; v != nil {
		builder.WriteString("last_seen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("position_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositionX))
	builder.WriteString(", ")
	builder.WriteString("position_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositionY))
	builder.WriteString(", ")
	builder.WriteString("target_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetX))
	builder.WriteString(", ")
	builder.WriteString("target_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetY))
	builder.WriteString(", ")
	builder.WriteString("current_action=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentAction))
	builder.WriteString(", ")
	builder.WriteString("avatar=")
	builder.WriteString(_m.Avatar)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
