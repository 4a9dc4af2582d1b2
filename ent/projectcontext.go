// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
)

// ProjectContext is the model entity for the ProjectContext schema.
type ProjectContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// e.g., 'architecture', 'conventions', 'decisions'
	Category string `json:"category,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// SourceAgentID holds the value of the "source_agent_id" field.
	SourceAgentID *string `json:"source_agent_id,omitempty"`
	// SourceStepID holds the value of the "source_step_id" field.
	SourceStepID *string `json:"source_step_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Upserts refresh this; recency ordering for prompts
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectContextQuery when eager-loading is set.
	Edges        ProjectContextEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectContextEdges holds the relations/edges for other nodes in the graph.
type ProjectContextEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectContextEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectcontext.FieldID, projectcontext.FieldProjectID, projectcontext.FieldCategory, projectcontext.FieldKey, projectcontext.FieldContent, projectcontext.FieldSourceAgentID, projectcontext.FieldSourceStepID:
			values[i] = new(sql.NullString)
		case projectcontext.FieldCreatedAt, projectcontext.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectContext fields.
func (_m *ProjectContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projectcontext.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case projectcontext.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case projectcontext.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case projectcontext.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case projectcontext.FieldSourceAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_agent_id", values[i])
			} else if value.Valid {
				_m.SourceAgentID = new(string)
				*_m.SourceAgentID = value.String
			}
		case projectcontext.FieldSourceStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_step_id", values[i])
			} else if value.Valid {
				_m.SourceStepID = new(string)
				*_m.SourceStepID = value.String
			}
		case projectcontext.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projectcontext.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectContext.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ProjectContext entity.
func (_m *ProjectContext) QueryProject() *ProjectQuery {
	return NewProjectContextClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ProjectContext.
// Note that you need to call ProjectContext.Unwrap() before calling this method if this ProjectContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectContext) Update() *ProjectContextUpdateOne {
	return NewProjectContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectContext) Unwrap() *ProjectContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectContext) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.SourceAgentID; v != nil {
		builder.WriteString("source_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceStepID; v != nil {
		builder.WriteString("source_step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectContexts is a parsable slice of ProjectContext.
type ProjectContexts []*ProjectContext
