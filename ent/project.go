// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agentloop/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Stable external handle (board mappings, config files)
	Slug string `json:"slug,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Local checkout used to resolve prompt context files
	RepoPath *string `json:"repo_path,omitempty"`
	// Status holds the value of the "status" field.
	Status project.Status `json:"status,omitempty"`
	// Config holds the value of the "config" field.
	Config map[string]interface{} `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// Proposals holds the value of the proposals edge.
	Proposals []*Proposal `json:"proposals,omitempty"`
	// Missions holds the value of the missions edge.
	Missions []*Mission `json:"missions,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Triggers holds the value of the triggers edge.
	Triggers []*Trigger `json:"triggers,omitempty"`
	// ContextEntries holds the value of the context_entries edge.
	ContextEntries []*ProjectContext `json:"context_entries,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[0] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// ProposalsOrErr returns the Proposals value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ProposalsOrErr() ([]*Proposal, error) {
	if e.loadedTypes[1] {
		return e.Proposals, nil
	}
	return nil, &NotLoadedError{edge: "proposals"}
}

// MissionsOrErr returns the Missions value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) MissionsOrErr() ([]*Mission, error) {
	if e.loadedTypes[2] {
		return e.Missions, nil
	}
	return nil, &NotLoadedError{edge: "missions"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// TriggersOrErr returns the Triggers value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) TriggersOrErr() ([]*Trigger, error) {
	if e.loadedTypes[4] {
		return e.Triggers, nil
	}
	return nil, &NotLoadedError{edge: "triggers"}
}

// ContextEntriesOrErr returns the ContextEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ContextEntriesOrErr() ([]*ProjectContext, error) {
	if e.loadedTypes[5] {
		return e.ContextEntries, nil
	}
	return nil, &NotLoadedError{edge: "context_entries"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[6] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldConfig:
			values[i] = new([]byte)
		case project.FieldID, project.FieldName, project.FieldSlug, project.FieldDescription, project.FieldRepoPath, project.FieldStatus:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case project.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case project.FieldRepoPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_path", values[i])
			} else if value.Valid {
				_m.RepoPath = new(string)
				*_m.RepoPath = value.String
			}
		case project.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = project.Status(value.String)
			}
		case project.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case project.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgents queries the "agents" edge of the Project entity.
func (_m *Project) QueryAgents() *AgentQuery {
	return NewProjectClient(_m.config).QueryAgents(_m)
}

// QueryProposals queries the "proposals" edge of the Project entity.
func (_m *Project) QueryProposals() *ProposalQuery {
	return NewProjectClient(_m.config).QueryProposals(_m)
}

// QueryMissions queries the "missions" edge of the Project entity.
func (_m *Project) QueryMissions() *MissionQuery {
	return NewProjectClient(_m.config).QueryMissions(_m)
}

// QueryEvents queries the "events" edge of the Project entity.
func (_m *Project) QueryEvents() *EventQuery {
	return NewProjectClient(_m.config).QueryEvents(_m)
}

// QueryTriggers queries the "triggers" edge of the Project entity.
func (_m *Project) QueryTriggers() *TriggerQuery {
	return NewProjectClient(_m.config).QueryTriggers(_m)
}

// QueryContextEntries queries the "context_entries" edge of the Project entity.
func (_m *Project) QueryContextEntries() *ProjectContextQuery {
	return NewProjectClient(_m.config).QueryContextEntries(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the Project entity.
func (_m *Project) QueryChatMessages() *ChatMessageQuery {
	return NewProjectClient(_m.config).QueryChatMessages(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.RepoPath; v != nil {
		builder.WriteString("repo_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
