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
	"github.com/codeready-toolchain/agentloop/ent/trigger"
)

// Trigger is the model entity for the Trigger schema.
type Trigger struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// {event_type, conditions: {k: v, ...}} matched by strict equality
	EventPattern map[string]interface{} `json:"event_pattern,omitempty"`
	// Tagged union: {type: 'create_step' | 'evaluate_mission_completion', ...}
	Action map[string]interface{} `json:"action,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// LastFiredAt holds the value of the "last_fired_at" field.
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerQuery when eager-loading is set.
	Edges        TriggerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerEdges holds the relations/edges for other nodes in the graph.
type TriggerEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TriggerEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trigger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trigger.FieldEventPattern, trigger.FieldAction:
			values[i] = new([]byte)
		case trigger.FieldEnabled:
			values[i] = new(sql.NullBool)
		case trigger.FieldID, trigger.FieldProjectID, trigger.FieldName:
			values[i] = new(sql.NullString)
		case trigger.FieldLastFiredAt, trigger.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trigger fields.
func (_m *Trigger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trigger.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trigger.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case trigger.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case trigger.FieldEventPattern:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_pattern", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventPattern); err != nil {
					return fmt.Errorf("unmarshal field event_pattern: %w", err)
				}
			}
		case trigger.FieldAction:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Action); err != nil {
					return fmt.Errorf("unmarshal field action: %w", err)
				}
			}
		case trigger.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case trigger.FieldLastFiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_fired_at", values[i])
			} else if value.Valid {
				_m.LastFiredAt = new(time.Time)
				*_m.LastFiredAt = value.Time
			}
		case trigger.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Trigger.
// This includes values selected through modifiers, order, etc.
func (_m *Trigger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Trigger entity.
func (_m *Trigger) QueryProject() *ProjectQuery {
	return NewTriggerClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Trigger.
// Note that you need to call Trigger.Unwrap() before calling this method if this Trigger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trigger) Update() *TriggerUpdateOne {
	return NewTriggerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trigger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trigger) Unwrap() *Trigger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trigger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trigger) String() string {
	var builder strings.Builder
	builder.WriteString("Trigger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("event_pattern=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventPattern))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.LastFiredAt; v != nil {
		builder.WriteString("last_fired_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Triggers is a parsable slice of Trigger.
type Triggers []*Trigger
