// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/ent/chatmessage"
	"github.com/codeready-toolchain/agentloop/ent/event"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/ent/trigger"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent          = "Agent"
	TypeChatMessage    = "ChatMessage"
	TypeEvent          = "Event"
	TypeMission        = "Mission"
	TypeProject        = "Project"
	TypeProjectContext = "ProjectContext"
	TypeProposal       = "Proposal"
	TypeStep           = "Step"
	TypeTrigger        = "Trigger"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	role                 *string
	description          *string
	status               *agent.Status
	_config              *map[string]interface{}
	last_seen_at         *time.Time
	position_x           *float64
	addposition_x        *float64
	position_y           *float64
	addposition_y        *float64
	target_x             *float64
	addtarget_x          *float64
	target_y             *float64
	addtarget_y          *float64
	current_action       *agent.CurrentAction
	avatar               *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	project              *string
	clearedproject       bool
	proposals            map[string]struct{}
	removedproposals     map[string]struct{}
	clearedproposals     bool
	missions             map[string]struct{}
	removedmissions      map[string]struct{}
	clearedmissions      bool
	claimed_steps        map[string]struct{}
	removedclaimed_steps map[string]struct{}
	clearedclaimed_steps bool
	events               map[string]struct{}
	removedevents        map[string]struct{}
	clearedevents        bool
	done                 bool
	oldValue             func(context.Context) (*Agent, error)
	predicates           []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *AgentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMutation) ResetRole() {
	m.role = nil
}

// SetDescription sets the "description" field.
func (m *AgentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetProjectID sets the "project_id" field.
func (m *AgentMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentMutation) ResetProjectID() {
	m.project = nil
}

// SetConfig sets the "config" field.
func (m *AgentMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agent.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agent.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agent.FieldConfig)
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *AgentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *AgentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *AgentMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[agent.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *AgentMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *AgentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, agent.FieldLastSeenAt)
}

// SetPositionX sets the "position_x" field.
func (m *AgentMutation) SetPositionX(f float64) {
	m.position_x = &f
	m.addposition_x = nil
}

// PositionX returns the value of the "position_x" field in the mutation.
func (m *AgentMutation) PositionX() (r float64, exists bool) {
	v := m.position_x
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionX returns the old "position_x" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPositionX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionX: %w", err)
	}
	return oldValue.PositionX, nil
}

// AddPositionX adds f to the "position_x" field.
func (m *AgentMutation) AddPositionX(f float64) {
	if m.addposition_x != nil {
		*m.addposition_x += f
	} else {
		m.addposition_x = &f
	}
}

// AddedPositionX returns the value that was added to the "position_x" field in this mutation.
func (m *AgentMutation) AddedPositionX() (r float64, exists bool) {
	v := m.addposition_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetPositionX resets all changes to the "position_x" field.
func (m *AgentMutation) ResetPositionX() {
	m.position_x = nil
	m.addposition_x = nil
}

// SetPositionY sets the "position_y" field.
func (m *AgentMutation) SetPositionY(f float64) {
	m.position_y = &f
	m.addposition_y = nil
}

// PositionY returns the value of the "position_y" field in the mutation.
func (m *AgentMutation) PositionY() (r float64, exists bool) {
	v := m.position_y
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionY returns the old "position_y" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPositionY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionY: %w", err)
	}
	return oldValue.PositionY, nil
}

// AddPositionY adds f to the "position_y" field.
func (m *AgentMutation) AddPositionY(f float64) {
	if m.addposition_y != nil {
		*m.addposition_y += f
	} else {
		m.addposition_y = &f
	}
}

// AddedPositionY returns the value that was added to the "position_y" field in this mutation.
func (m *AgentMutation) AddedPositionY() (r float64, exists bool) {
	v := m.addposition_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetPositionY resets all changes to the "position_y" field.
func (m *AgentMutation) ResetPositionY() {
	m.position_y = nil
	m.addposition_y = nil
}

// SetTargetX sets the "target_x" field.
func (m *AgentMutation) SetTargetX(f float64) {
	m.target_x = &f
	m.addtarget_x = nil
}

// TargetX returns the value of the "target_x" field in the mutation.
func (m *AgentMutation) TargetX() (r float64, exists bool) {
	v := m.target_x
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetX returns the old "target_x" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTargetX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetX: %w", err)
	}
	return oldValue.TargetX, nil
}

// AddTargetX adds f to the "target_x" field.
func (m *AgentMutation) AddTargetX(f float64) {
	if m.addtarget_x != nil {
		*m.addtarget_x += f
	} else {
		m.addtarget_x = &f
	}
}

// AddedTargetX returns the value that was added to the "target_x" field in this mutation.
func (m *AgentMutation) AddedTargetX() (r float64, exists bool) {
	v := m.addtarget_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetX resets all changes to the "target_x" field.
func (m *AgentMutation) ResetTargetX() {
	m.target_x = nil
	m.addtarget_x = nil
}

// SetTargetY sets the "target_y" field.
func (m *AgentMutation) SetTargetY(f float64) {
	m.target_y = &f
	m.addtarget_y = nil
}

// TargetY returns the value of the "target_y" field in the mutation.
func (m *AgentMutation) TargetY() (r float64, exists bool) {
	v := m.target_y
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetY returns the old "target_y" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTargetY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetY: %w", err)
	}
	return oldValue.TargetY, nil
}

// AddTargetY adds f to the "target_y" field.
func (m *AgentMutation) AddTargetY(f float64) {
	if m.addtarget_y != nil {
		*m.addtarget_y += f
	} else {
		m.addtarget_y = &f
	}
}

// AddedTargetY returns the value that was added to the "target_y" field in this mutation.
func (m *AgentMutation) AddedTargetY() (r float64, exists bool) {
	v := m.addtarget_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetY resets all changes to the "target_y" field.
func (m *AgentMutation) ResetTargetY() {
	m.target_y = nil
	m.addtarget_y = nil
}

// SetCurrentAction sets the "current_action" field.
func (m *AgentMutation) SetCurrentAction(aa agent.CurrentAction) {
	m.current_action = &aa
}

// CurrentAction returns the value of the "current_action" field in the mutation.
func (m *AgentMutation) CurrentAction() (r agent.CurrentAction, exists bool) {
	v := m.current_action
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAction returns the old "current_action" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCurrentAction(ctx context.Context) (v agent.CurrentAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAction: %w", err)
	}
	return oldValue.CurrentAction, nil
}

// ResetCurrentAction resets all changes to the "current_action" field.
func (m *AgentMutation) ResetCurrentAction() {
	m.current_action = nil
}

// SetAvatar sets the "avatar" field.
func (m *AgentMutation) SetAvatar(s string) {
	m.avatar = &s
}

// Avatar returns the value of the "avatar" field in the mutation.
func (m *AgentMutation) Avatar() (r string, exists bool) {
	v := m.avatar
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatar returns the old "avatar" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAvatar(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatar: %w", err)
	}
	return oldValue.Avatar, nil
}

// ResetAvatar resets all changes to the "avatar" field.
func (m *AgentMutation) ResetAvatar() {
	m.avatar = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agent.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddProposalIDs adds the "proposals" edge to the Proposal entity by ids.
func (m *AgentMutation) AddProposalIDs(ids ...string) {
	if m.proposals == nil {
		m.proposals = make(map[string]struct{})
	}
	for i := range ids {
		m.proposals[ids[i]] = struct{}{}
	}
}

// ClearProposals clears the "proposals" edge to the Proposal entity.
func (m *AgentMutation) ClearProposals() {
	m.clearedproposals = true
}

// ProposalsCleared reports if the "proposals" edge to the Proposal entity was cleared.
func (m *AgentMutation) ProposalsCleared() bool {
	return m.clearedproposals
}

// RemoveProposalIDs removes the "proposals" edge to the Proposal entity by IDs.
func (m *AgentMutation) RemoveProposalIDs(ids ...string) {
	if m.removedproposals == nil {
		m.removedproposals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.proposals, ids[i])
		m.removedproposals[ids[i]] = struct{}{}
	}
}

// RemovedProposals returns the removed IDs of the "proposals" edge to the Proposal entity.
func (m *AgentMutation) RemovedProposalsIDs() (ids []string) {
	for id := range m.removedproposals {
		ids = append(ids, id)
	}
	return
}

// ProposalsIDs returns the "proposals" edge IDs in the mutation.
func (m *AgentMutation) ProposalsIDs() (ids []string) {
	for id := range m.proposals {
		ids = append(ids, id)
	}
	return
}

// ResetProposals resets all changes to the "proposals" edge.
func (m *AgentMutation) ResetProposals() {
	m.proposals = nil
	m.clearedproposals = false
	m.removedproposals = nil
}

// AddMissionIDs adds the "missions" edge to the Mission entity by ids.
func (m *AgentMutation) AddMissionIDs(ids ...string) {
	if m.missions == nil {
		m.missions = make(map[string]struct{})
	}
	for i := range ids {
		m.missions[ids[i]] = struct{}{}
	}
}

// ClearMissions clears the "missions" edge to the Mission entity.
func (m *AgentMutation) ClearMissions() {
	m.clearedmissions = true
}

// MissionsCleared reports if the "missions" edge to the Mission entity was cleared.
func (m *AgentMutation) MissionsCleared() bool {
	return m.clearedmissions
}

// RemoveMissionIDs removes the "missions" edge to the Mission entity by IDs.
func (m *AgentMutation) RemoveMissionIDs(ids ...string) {
	if m.removedmissions == nil {
		m.removedmissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.missions, ids[i])
		m.removedmissions[ids[i]] = struct{}{}
	}
}

// RemovedMissions returns the removed IDs of the "missions" edge to the Mission entity.
func (m *AgentMutation) RemovedMissionsIDs() (ids []string) {
	for id := range m.removedmissions {
		ids = append(ids, id)
	}
	return
}

// MissionsIDs returns the "missions" edge IDs in the mutation.
func (m *AgentMutation) MissionsIDs() (ids []string) {
	for id := range m.missions {
		ids = append(ids, id)
	}
	return
}

// ResetMissions resets all changes to the "missions" edge.
func (m *AgentMutation) ResetMissions() {
	m.missions = nil
	m.clearedmissions = false
	m.removedmissions = nil
}

// AddClaimedStepIDs adds the "claimed_steps" edge to the Step entity by ids.
func (m *AgentMutation) AddClaimedStepIDs(ids ...string) {
	if m.claimed_steps == nil {
		m.claimed_steps = make(map[string]struct{})
	}
	for i := range ids {
		m.claimed_steps[ids[i]] = struct{}{}
	}
}

// ClearClaimedSteps clears the "claimed_steps" edge to the Step entity.
func (m *AgentMutation) ClearClaimedSteps() {
	m.clearedclaimed_steps = true
}

// ClaimedStepsCleared reports if the "claimed_steps" edge to the Step entity was cleared.
func (m *AgentMutation) ClaimedStepsCleared() bool {
	return m.clearedclaimed_steps
}

// RemoveClaimedStepIDs removes the "claimed_steps" edge to the Step entity by IDs.
func (m *AgentMutation) RemoveClaimedStepIDs(ids ...string) {
	if m.removedclaimed_steps == nil {
		m.removedclaimed_steps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claimed_steps, ids[i])
		m.removedclaimed_steps[ids[i]] = struct{}{}
	}
}

// RemovedClaimedSteps returns the removed IDs of the "claimed_steps" edge to the Step entity.
func (m *AgentMutation) RemovedClaimedStepsIDs() (ids []string) {
	for id := range m.removedclaimed_steps {
		ids = append(ids, id)
	}
	return
}

// ClaimedStepsIDs returns the "claimed_steps" edge IDs in the mutation.
func (m *AgentMutation) ClaimedStepsIDs() (ids []string) {
	for id := range m.claimed_steps {
		ids = append(ids, id)
	}
	return
}

// ResetClaimedSteps resets all changes to the "claimed_steps" edge.
func (m *AgentMutation) ResetClaimedSteps() {
	m.claimed_steps = nil
	m.clearedclaimed_steps = false
	m.removedclaimed_steps = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *AgentMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *AgentMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *AgentMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *AgentMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *AgentMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AgentMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AgentMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.role != nil {
		fields = append(fields, agent.FieldRole)
	}
	if m.description != nil {
		fields = append(fields, agent.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.project != nil {
		fields = append(fields, agent.FieldProjectID)
	}
	if m._config != nil {
		fields = append(fields, agent.FieldConfig)
	}
	if m.last_seen_at != nil {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	if m.position_x != nil {
		fields = append(fields, agent.FieldPositionX)
	}
	if m.position_y != nil {
		fields = append(fields, agent.FieldPositionY)
	}
	if m.target_x != nil {
		fields = append(fields, agent.FieldTargetX)
	}
	if m.target_y != nil {
		fields = append(fields, agent.FieldTargetY)
	}
	if m.current_action != nil {
		fields = append(fields, agent.FieldCurrentAction)
	}
	if m.avatar != nil {
		fields = append(fields, agent.FieldAvatar)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldRole:
		return m.Role()
	case agent.FieldDescription:
		return m.Description()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldProjectID:
		return m.ProjectID()
	case agent.FieldConfig:
		return m.Config()
	case agent.FieldLastSeenAt:
		return m.LastSeenAt()
	case agent.FieldPositionX:
		return m.PositionX()
	case agent.FieldPositionY:
		return m.PositionY()
	case agent.FieldTargetX:
		return m.TargetX()
	case agent.FieldTargetY:
		return m.TargetY()
	case agent.FieldCurrentAction:
		return m.CurrentAction()
	case agent.FieldAvatar:
		return m.Avatar()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldRole:
		return m.OldRole(ctx)
	case agent.FieldDescription:
		return m.OldDescription(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldProjectID:
		return m.OldProjectID(ctx)
	case agent.FieldConfig:
		return m.OldConfig(ctx)
	case agent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case agent.FieldPositionX:
		return m.OldPositionX(ctx)
	case agent.FieldPositionY:
		return m.OldPositionY(ctx)
	case agent.FieldTargetX:
		return m.OldTargetX(ctx)
	case agent.FieldTargetY:
		return m.OldTargetY(ctx)
	case agent.FieldCurrentAction:
		return m.OldCurrentAction(ctx)
	case agent.FieldAvatar:
		return m.OldAvatar(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agent.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case agent.FieldPositionX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionX(v)
		return nil
	case agent.FieldPositionY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionY(v)
		return nil
	case agent.FieldTargetX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetX(v)
		return nil
	case agent.FieldTargetY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetY(v)
		return nil
	case agent.FieldCurrentAction:
		v, ok := value.(agent.CurrentAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAction(v)
		return nil
	case agent.FieldAvatar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatar(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addposition_x != nil {
		fields = append(fields, agent.FieldPositionX)
	}
	if m.addposition_y != nil {
		fields = append(fields, agent.FieldPositionY)
	}
	if m.addtarget_x != nil {
		fields = append(fields, agent.FieldTargetX)
	}
	if m.addtarget_y != nil {
		fields = append(fields, agent.FieldTargetY)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldPositionX:
		return m.AddedPositionX()
	case agent.FieldPositionY:
		return m.AddedPositionY()
	case agent.FieldTargetX:
		return m.AddedTargetX()
	case agent.FieldTargetY:
		return m.AddedTargetY()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldPositionX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositionX(v)
		return nil
	case agent.FieldPositionY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositionY(v)
		return nil
	case agent.FieldTargetX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetX(v)
		return nil
	case agent.FieldTargetY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetY(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldConfig) {
		fields = append(fields, agent.FieldConfig)
	}
	if m.FieldCleared(agent.FieldLastSeenAt) {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldConfig:
		m.ClearConfig()
		return nil
	case agent.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldRole:
		m.ResetRole()
		return nil
	case agent.FieldDescription:
		m.ResetDescription()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agent.FieldConfig:
		m.ResetConfig()
		return nil
	case agent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case agent.FieldPositionX:
		m.ResetPositionX()
		return nil
	case agent.FieldPositionY:
		m.ResetPositionY()
		return nil
	case agent.FieldTargetX:
		m.ResetTargetX()
		return nil
	case agent.FieldTargetY:
		m.ResetTargetY()
		return nil
	case agent.FieldCurrentAction:
		m.ResetCurrentAction()
		return nil
	case agent.FieldAvatar:
		m.ResetAvatar()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, agent.EdgeProject)
	}
	if m.proposals != nil {
		edges = append(edges, agent.EdgeProposals)
	}
	if m.missions != nil {
		edges = append(edges, agent.EdgeMissions)
	}
	if m.claimed_steps != nil {
		edges = append(edges, agent.EdgeClaimedSteps)
	}
	if m.events != nil {
		edges = append(edges, agent.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.proposals))
		for id := range m.proposals {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeMissions:
		ids := make([]ent.Value, 0, len(m.missions))
		for id := range m.missions {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeClaimedSteps:
		ids := make([]ent.Value, 0, len(m.claimed_steps))
		for id := range m.claimed_steps {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedproposals != nil {
		edges = append(edges, agent.EdgeProposals)
	}
	if m.removedmissions != nil {
		edges = append(edges, agent.EdgeMissions)
	}
	if m.removedclaimed_steps != nil {
		edges = append(edges, agent.EdgeClaimedSteps)
	}
	if m.removedevents != nil {
		edges = append(edges, agent.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.removedproposals))
		for id := range m.removedproposals {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeMissions:
		ids := make([]ent.Value, 0, len(m.removedmissions))
		for id := range m.removedmissions {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeClaimedSteps:
		ids := make([]ent.Value, 0, len(m.removedclaimed_steps))
		for id := range m.removedclaimed_steps {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, agent.EdgeProject)
	}
	if m.clearedproposals {
		edges = append(edges, agent.EdgeProposals)
	}
	if m.clearedmissions {
		edges = append(edges, agent.EdgeMissions)
	}
	if m.clearedclaimed_steps {
		edges = append(edges, agent.EdgeClaimedSteps)
	}
	if m.clearedevents {
		edges = append(edges, agent.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeProject:
		return m.clearedproject
	case agent.EdgeProposals:
		return m.clearedproposals
	case agent.EdgeMissions:
		return m.clearedmissions
	case agent.EdgeClaimedSteps:
		return m.clearedclaimed_steps
	case agent.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeProject:
		m.ResetProject()
		return nil
	case agent.EdgeProposals:
		m.ResetProposals()
		return nil
	case agent.EdgeMissions:
		m.ResetMissions()
		return nil
	case agent.EdgeClaimedSteps:
		m.ResetClaimedSteps()
		return nil
	case agent.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	session_id     *string
	role           *chatmessage.Role
	content        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*ChatMessage, error)
	predicates     []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetProjectID sets the "project_id" field.
func (m *ChatMessageMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ChatMessageMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *ChatMessageMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[chatmessage.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *ChatMessageMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ChatMessageMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, chatmessage.FieldProjectID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ChatMessageMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[chatmessage.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ChatMessageMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ChatMessageMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.project != nil {
		fields = append(fields, chatmessage.FieldProjectID)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldProjectID:
		return m.ProjectID()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldProjectID:
		return m.OldProjectID(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldProjectID) {
		fields = append(fields, chatmessage.FieldProjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldProjectID:
		m.ClearProjectID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldProjectID:
		m.ResetProjectID()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, chatmessage.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, chatmessage.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	event_type          *string
	payload             *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	project             *string
	clearedproject      bool
	source_agent        *string
	clearedsource_agent bool
	done                bool
	oldValue            func(context.Context) (*Event, error)
	predicates          []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSourceAgentID sets the "source_agent_id" field.
func (m *EventMutation) SetSourceAgentID(s string) {
	m.source_agent = &s
}

// SourceAgentID returns the value of the "source_agent_id" field in the mutation.
func (m *EventMutation) SourceAgentID() (r string, exists bool) {
	v := m.source_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAgentID returns the old "source_agent_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourceAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAgentID: %w", err)
	}
	return oldValue.SourceAgentID, nil
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (m *EventMutation) ClearSourceAgentID() {
	m.source_agent = nil
	m.clearedFields[event.FieldSourceAgentID] = struct{}{}
}

// SourceAgentIDCleared returns if the "source_agent_id" field was cleared in this mutation.
func (m *EventMutation) SourceAgentIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSourceAgentID]
	return ok
}

// ResetSourceAgentID resets all changes to the "source_agent_id" field.
func (m *EventMutation) ResetSourceAgentID() {
	m.source_agent = nil
	delete(m.clearedFields, event.FieldSourceAgentID)
}

// SetProjectID sets the "project_id" field.
func (m *EventMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventMutation) ResetProjectID() {
	m.project = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EventMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[event.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EventMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EventMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearSourceAgent clears the "source_agent" edge to the Agent entity.
func (m *EventMutation) ClearSourceAgent() {
	m.clearedsource_agent = true
	m.clearedFields[event.FieldSourceAgentID] = struct{}{}
}

// SourceAgentCleared reports if the "source_agent" edge to the Agent entity was cleared.
func (m *EventMutation) SourceAgentCleared() bool {
	return m.SourceAgentIDCleared() || m.clearedsource_agent
}

// SourceAgentIDs returns the "source_agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceAgentID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SourceAgentIDs() (ids []string) {
	if id := m.source_agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceAgent resets all changes to the "source_agent" edge.
func (m *EventMutation) ResetSourceAgent() {
	m.source_agent = nil
	m.clearedsource_agent = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.source_agent != nil {
		fields = append(fields, event.FieldSourceAgentID)
	}
	if m.project != nil {
		fields = append(fields, event.FieldProjectID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventType:
		return m.EventType()
	case event.FieldSourceAgentID:
		return m.SourceAgentID()
	case event.FieldProjectID:
		return m.ProjectID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldSourceAgentID:
		return m.OldSourceAgentID(ctx)
	case event.FieldProjectID:
		return m.OldProjectID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldSourceAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAgentID(v)
		return nil
	case event.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSourceAgentID) {
		fields = append(fields, event.FieldSourceAgentID)
	}
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSourceAgentID:
		m.ClearSourceAgentID()
		return nil
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldSourceAgentID:
		m.ResetSourceAgentID()
		return nil
	case event.FieldProjectID:
		m.ResetProjectID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, event.EdgeProject)
	}
	if m.source_agent != nil {
		edges = append(edges, event.EdgeSourceAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeSourceAgent:
		if id := m.source_agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, event.EdgeProject)
	}
	if m.clearedsource_agent {
		edges = append(edges, event.EdgeSourceAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeProject:
		return m.clearedproject
	case event.EdgeSourceAgent:
		return m.clearedsource_agent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeProject:
		m.ClearProject()
		return nil
	case event.EdgeSourceAgent:
		m.ClearSourceAgent()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeProject:
		m.ResetProject()
		return nil
	case event.EdgeSourceAgent:
		m.ResetSourceAgent()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// MissionMutation represents an operation that mutates the Mission nodes in the graph.
type MissionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	title                 *string
	description           *string
	status                *mission.Status
	completed_at          *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	proposal              *string
	clearedproposal       bool
	project               *string
	clearedproject        bool
	assigned_agent        *string
	clearedassigned_agent bool
	steps                 map[string]struct{}
	removedsteps          map[string]struct{}
	clearedsteps          bool
	done                  bool
	oldValue              func(context.Context) (*Mission, error)
	predicates            []predicate.Mission
}

var _ ent.Mutation = (*MissionMutation)(nil)

// missionOption allows management of the mutation configuration using functional options.
type missionOption func(*MissionMutation)

// newMissionMutation creates new mutation for the Mission entity.
func newMissionMutation(c config, op Op, opts ...missionOption) *MissionMutation {
	m := &MissionMutation{
		config:        c,
		op:            op,
		typ:           TypeMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionID sets the ID field of the mutation.
func withMissionID(id string) missionOption {
	return func(m *MissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Mission
		)
		m.oldValue = func(ctx context.Context) (*Mission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMission sets the old Mission of the mutation.
func withMission(node *Mission) missionOption {
	return func(m *MissionMutation) {
		m.oldValue = func(context.Context) (*Mission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mission entities.
func (m *MissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *MissionMutation) SetProposalID(s string) {
	m.proposal = &s
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *MissionMutation) ProposalID() (r string, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldProposalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *MissionMutation) ResetProposalID() {
	m.proposal = nil
}

// SetProjectID sets the "project_id" field.
func (m *MissionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *MissionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *MissionMutation) ResetProjectID() {
	m.project = nil
}

// SetTitle sets the "title" field.
func (m *MissionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MissionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MissionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *MissionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MissionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MissionMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *MissionMutation) SetStatus(value mission.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionMutation) Status() (r mission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStatus(ctx context.Context) (v mission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *MissionMutation) SetAssignedAgentID(s string) {
	m.assigned_agent = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *MissionMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *MissionMutation) ClearAssignedAgentID() {
	m.assigned_agent = nil
	m.clearedFields[mission.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *MissionMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[mission.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *MissionMutation) ResetAssignedAgentID() {
	m.assigned_agent = nil
	delete(m.clearedFields, mission.FieldAssignedAgentID)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MissionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MissionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MissionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[mission.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MissionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MissionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, mission.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *MissionMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[mission.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *MissionMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *MissionMutation) ProposalIDs() (ids []string) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *MissionMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *MissionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[mission.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *MissionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *MissionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *MissionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearAssignedAgent clears the "assigned_agent" edge to the Agent entity.
func (m *MissionMutation) ClearAssignedAgent() {
	m.clearedassigned_agent = true
	m.clearedFields[mission.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentCleared reports if the "assigned_agent" edge to the Agent entity was cleared.
func (m *MissionMutation) AssignedAgentCleared() bool {
	return m.AssignedAgentIDCleared() || m.clearedassigned_agent
}

// AssignedAgentIDs returns the "assigned_agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedAgentID instead. It exists only for internal usage by the builders.
func (m *MissionMutation) AssignedAgentIDs() (ids []string) {
	if id := m.assigned_agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedAgent resets all changes to the "assigned_agent" edge.
func (m *MissionMutation) ResetAssignedAgent() {
	m.assigned_agent = nil
	m.clearedassigned_agent = false
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *MissionMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *MissionMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *MissionMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *MissionMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *MissionMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *MissionMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *MissionMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the MissionMutation builder.
func (m *MissionMutation) Where(ps ...predicate.Mission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mission).
func (m *MissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.proposal != nil {
		fields = append(fields, mission.FieldProposalID)
	}
	if m.project != nil {
		fields = append(fields, mission.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, mission.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, mission.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, mission.FieldStatus)
	}
	if m.assigned_agent != nil {
		fields = append(fields, mission.FieldAssignedAgentID)
	}
	if m.completed_at != nil {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, mission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldProposalID:
		return m.ProposalID()
	case mission.FieldProjectID:
		return m.ProjectID()
	case mission.FieldTitle:
		return m.Title()
	case mission.FieldDescription:
		return m.Description()
	case mission.FieldStatus:
		return m.Status()
	case mission.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case mission.FieldCompletedAt:
		return m.CompletedAt()
	case mission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mission.FieldProposalID:
		return m.OldProposalID(ctx)
	case mission.FieldProjectID:
		return m.OldProjectID(ctx)
	case mission.FieldTitle:
		return m.OldTitle(ctx)
	case mission.FieldDescription:
		return m.OldDescription(ctx)
	case mission.FieldStatus:
		return m.OldStatus(ctx)
	case mission.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case mission.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case mission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mission.FieldProposalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case mission.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case mission.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case mission.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case mission.FieldStatus:
		v, ok := value.(mission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mission.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case mission.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case mission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Mission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mission.FieldAssignedAgentID) {
		fields = append(fields, mission.FieldAssignedAgentID)
	}
	if m.FieldCleared(mission.FieldCompletedAt) {
		fields = append(fields, mission.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionMutation) ClearField(name string) error {
	switch name {
	case mission.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case mission.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Mission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionMutation) ResetField(name string) error {
	switch name {
	case mission.FieldProposalID:
		m.ResetProposalID()
		return nil
	case mission.FieldProjectID:
		m.ResetProjectID()
		return nil
	case mission.FieldTitle:
		m.ResetTitle()
		return nil
	case mission.FieldDescription:
		m.ResetDescription()
		return nil
	case mission.FieldStatus:
		m.ResetStatus()
		return nil
	case mission.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case mission.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case mission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.proposal != nil {
		edges = append(edges, mission.EdgeProposal)
	}
	if m.project != nil {
		edges = append(edges, mission.EdgeProject)
	}
	if m.assigned_agent != nil {
		edges = append(edges, mission.EdgeAssignedAgent)
	}
	if m.steps != nil {
		edges = append(edges, mission.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	case mission.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case mission.EdgeAssignedAgent:
		if id := m.assigned_agent; id != nil {
			return []ent.Value{*id}
		}
	case mission.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsteps != nil {
		edges = append(edges, mission.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproposal {
		edges = append(edges, mission.EdgeProposal)
	}
	if m.clearedproject {
		edges = append(edges, mission.EdgeProject)
	}
	if m.clearedassigned_agent {
		edges = append(edges, mission.EdgeAssignedAgent)
	}
	if m.clearedsteps {
		edges = append(edges, mission.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionMutation) EdgeCleared(name string) bool {
	switch name {
	case mission.EdgeProposal:
		return m.clearedproposal
	case mission.EdgeProject:
		return m.clearedproject
	case mission.EdgeAssignedAgent:
		return m.clearedassigned_agent
	case mission.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionMutation) ClearEdge(name string) error {
	switch name {
	case mission.EdgeProposal:
		m.ClearProposal()
		return nil
	case mission.EdgeProject:
		m.ClearProject()
		return nil
	case mission.EdgeAssignedAgent:
		m.ClearAssignedAgent()
		return nil
	}
	return fmt.Errorf("unknown Mission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionMutation) ResetEdge(name string) error {
	switch name {
	case mission.EdgeProposal:
		m.ResetProposal()
		return nil
	case mission.EdgeProject:
		m.ResetProject()
		return nil
	case mission.EdgeAssignedAgent:
		m.ResetAssignedAgent()
		return nil
	case mission.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Mission edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	slug                   *string
	description            *string
	repo_path              *string
	status                 *project.Status
	_config                *map[string]interface{}
	created_at             *time.Time
	clearedFields          map[string]struct{}
	agents                 map[string]struct{}
	removedagents          map[string]struct{}
	clearedagents          bool
	proposals              map[string]struct{}
	removedproposals       map[string]struct{}
	clearedproposals       bool
	missions               map[string]struct{}
	removedmissions        map[string]struct{}
	clearedmissions        bool
	events                 map[string]struct{}
	removedevents          map[string]struct{}
	clearedevents          bool
	triggers               map[string]struct{}
	removedtriggers        map[string]struct{}
	clearedtriggers        bool
	context_entries        map[string]struct{}
	removedcontext_entries map[string]struct{}
	clearedcontext_entries bool
	chat_messages          map[string]struct{}
	removedchat_messages   map[string]struct{}
	clearedchat_messages   bool
	done                   bool
	oldValue               func(context.Context) (*Project, error)
	predicates             []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ProjectMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ProjectMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ProjectMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
}

// SetRepoPath sets the "repo_path" field.
func (m *ProjectMutation) SetRepoPath(s string) {
	m.repo_path = &s
}

// RepoPath returns the value of the "repo_path" field in the mutation.
func (m *ProjectMutation) RepoPath() (r string, exists bool) {
	v := m.repo_path
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoPath returns the old "repo_path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoPath: %w", err)
	}
	return oldValue.RepoPath, nil
}

// ClearRepoPath clears the value of the "repo_path" field.
func (m *ProjectMutation) ClearRepoPath() {
	m.repo_path = nil
	m.clearedFields[project.FieldRepoPath] = struct{}{}
}

// RepoPathCleared returns if the "repo_path" field was cleared in this mutation.
func (m *ProjectMutation) RepoPathCleared() bool {
	_, ok := m.clearedFields[project.FieldRepoPath]
	return ok
}

// ResetRepoPath resets all changes to the "repo_path" field.
func (m *ProjectMutation) ResetRepoPath() {
	m.repo_path = nil
	delete(m.clearedFields, project.FieldRepoPath)
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetConfig sets the "config" field.
func (m *ProjectMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ProjectMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ProjectMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[project.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ProjectMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[project.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ProjectMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, project.FieldConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *ProjectMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *ProjectMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *ProjectMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *ProjectMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *ProjectMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *ProjectMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *ProjectMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddProposalIDs adds the "proposals" edge to the Proposal entity by ids.
func (m *ProjectMutation) AddProposalIDs(ids ...string) {
	if m.proposals == nil {
		m.proposals = make(map[string]struct{})
	}
	for i := range ids {
		m.proposals[ids[i]] = struct{}{}
	}
}

// ClearProposals clears the "proposals" edge to the Proposal entity.
func (m *ProjectMutation) ClearProposals() {
	m.clearedproposals = true
}

// ProposalsCleared reports if the "proposals" edge to the Proposal entity was cleared.
func (m *ProjectMutation) ProposalsCleared() bool {
	return m.clearedproposals
}

// RemoveProposalIDs removes the "proposals" edge to the Proposal entity by IDs.
func (m *ProjectMutation) RemoveProposalIDs(ids ...string) {
	if m.removedproposals == nil {
		m.removedproposals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.proposals, ids[i])
		m.removedproposals[ids[i]] = struct{}{}
	}
}

// RemovedProposals returns the removed IDs of the "proposals" edge to the Proposal entity.
func (m *ProjectMutation) RemovedProposalsIDs() (ids []string) {
	for id := range m.removedproposals {
		ids = append(ids, id)
	}
	return
}

// ProposalsIDs returns the "proposals" edge IDs in the mutation.
func (m *ProjectMutation) ProposalsIDs() (ids []string) {
	for id := range m.proposals {
		ids = append(ids, id)
	}
	return
}

// ResetProposals resets all changes to the "proposals" edge.
func (m *ProjectMutation) ResetProposals() {
	m.proposals = nil
	m.clearedproposals = false
	m.removedproposals = nil
}

// AddMissionIDs adds the "missions" edge to the Mission entity by ids.
func (m *ProjectMutation) AddMissionIDs(ids ...string) {
	if m.missions == nil {
		m.missions = make(map[string]struct{})
	}
	for i := range ids {
		m.missions[ids[i]] = struct{}{}
	}
}

// ClearMissions clears the "missions" edge to the Mission entity.
func (m *ProjectMutation) ClearMissions() {
	m.clearedmissions = true
}

// MissionsCleared reports if the "missions" edge to the Mission entity was cleared.
func (m *ProjectMutation) MissionsCleared() bool {
	return m.clearedmissions
}

// RemoveMissionIDs removes the "missions" edge to the Mission entity by IDs.
func (m *ProjectMutation) RemoveMissionIDs(ids ...string) {
	if m.removedmissions == nil {
		m.removedmissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.missions, ids[i])
		m.removedmissions[ids[i]] = struct{}{}
	}
}

// RemovedMissions returns the removed IDs of the "missions" edge to the Mission entity.
func (m *ProjectMutation) RemovedMissionsIDs() (ids []string) {
	for id := range m.removedmissions {
		ids = append(ids, id)
	}
	return
}

// MissionsIDs returns the "missions" edge IDs in the mutation.
func (m *ProjectMutation) MissionsIDs() (ids []string) {
	for id := range m.missions {
		ids = append(ids, id)
	}
	return
}

// ResetMissions resets all changes to the "missions" edge.
func (m *ProjectMutation) ResetMissions() {
	m.missions = nil
	m.clearedmissions = false
	m.removedmissions = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ProjectMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ProjectMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ProjectMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ProjectMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ProjectMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ProjectMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ProjectMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddTriggerIDs adds the "triggers" edge to the Trigger entity by ids.
func (m *ProjectMutation) AddTriggerIDs(ids ...string) {
	if m.triggers == nil {
		m.triggers = make(map[string]struct{})
	}
	for i := range ids {
		m.triggers[ids[i]] = struct{}{}
	}
}

// ClearTriggers clears the "triggers" edge to the Trigger entity.
func (m *ProjectMutation) ClearTriggers() {
	m.clearedtriggers = true
}

// TriggersCleared reports if the "triggers" edge to the Trigger entity was cleared.
func (m *ProjectMutation) TriggersCleared() bool {
	return m.clearedtriggers
}

// RemoveTriggerIDs removes the "triggers" edge to the Trigger entity by IDs.
func (m *ProjectMutation) RemoveTriggerIDs(ids ...string) {
	if m.removedtriggers == nil {
		m.removedtriggers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.triggers, ids[i])
		m.removedtriggers[ids[i]] = struct{}{}
	}
}

// RemovedTriggers returns the removed IDs of the "triggers" edge to the Trigger entity.
func (m *ProjectMutation) RemovedTriggersIDs() (ids []string) {
	for id := range m.removedtriggers {
		ids = append(ids, id)
	}
	return
}

// TriggersIDs returns the "triggers" edge IDs in the mutation.
func (m *ProjectMutation) TriggersIDs() (ids []string) {
	for id := range m.triggers {
		ids = append(ids, id)
	}
	return
}

// ResetTriggers resets all changes to the "triggers" edge.
func (m *ProjectMutation) ResetTriggers() {
	m.triggers = nil
	m.clearedtriggers = false
	m.removedtriggers = nil
}

// AddContextEntryIDs adds the "context_entries" edge to the ProjectContext entity by ids.
func (m *ProjectMutation) AddContextEntryIDs(ids ...string) {
	if m.context_entries == nil {
		m.context_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.context_entries[ids[i]] = struct{}{}
	}
}

// ClearContextEntries clears the "context_entries" edge to the ProjectContext entity.
func (m *ProjectMutation) ClearContextEntries() {
	m.clearedcontext_entries = true
}

// ContextEntriesCleared reports if the "context_entries" edge to the ProjectContext entity was cleared.
func (m *ProjectMutation) ContextEntriesCleared() bool {
	return m.clearedcontext_entries
}

// RemoveContextEntryIDs removes the "context_entries" edge to the ProjectContext entity by IDs.
func (m *ProjectMutation) RemoveContextEntryIDs(ids ...string) {
	if m.removedcontext_entries == nil {
		m.removedcontext_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.context_entries, ids[i])
		m.removedcontext_entries[ids[i]] = struct{}{}
	}
}

// RemovedContextEntries returns the removed IDs of the "context_entries" edge to the ProjectContext entity.
func (m *ProjectMutation) RemovedContextEntriesIDs() (ids []string) {
	for id := range m.removedcontext_entries {
		ids = append(ids, id)
	}
	return
}

// ContextEntriesIDs returns the "context_entries" edge IDs in the mutation.
func (m *ProjectMutation) ContextEntriesIDs() (ids []string) {
	for id := range m.context_entries {
		ids = append(ids, id)
	}
	return
}

// ResetContextEntries resets all changes to the "context_entries" edge.
func (m *ProjectMutation) ResetContextEntries() {
	m.context_entries = nil
	m.clearedcontext_entries = false
	m.removedcontext_entries = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *ProjectMutation) AddChatMessageIDs(ids ...string) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *ProjectMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *ProjectMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *ProjectMutation) RemoveChatMessageIDs(ids ...string) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *ProjectMutation) RemovedChatMessagesIDs() (ids []string) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *ProjectMutation) ChatMessagesIDs() (ids []string) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *ProjectMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, project.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.repo_path != nil {
		fields = append(fields, project.FieldRepoPath)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m._config != nil {
		fields = append(fields, project.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldSlug:
		return m.Slug()
	case project.FieldDescription:
		return m.Description()
	case project.FieldRepoPath:
		return m.RepoPath()
	case project.FieldStatus:
		return m.Status()
	case project.FieldConfig:
		return m.Config()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldSlug:
		return m.OldSlug(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldRepoPath:
		return m.OldRepoPath(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldConfig:
		return m.OldConfig(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldRepoPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoPath(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldRepoPath) {
		fields = append(fields, project.FieldRepoPath)
	}
	if m.FieldCleared(project.FieldConfig) {
		fields = append(fields, project.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldRepoPath:
		m.ClearRepoPath()
		return nil
	case project.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldSlug:
		m.ResetSlug()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldRepoPath:
		m.ResetRepoPath()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldConfig:
		m.ResetConfig()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.agents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	if m.proposals != nil {
		edges = append(edges, project.EdgeProposals)
	}
	if m.missions != nil {
		edges = append(edges, project.EdgeMissions)
	}
	if m.events != nil {
		edges = append(edges, project.EdgeEvents)
	}
	if m.triggers != nil {
		edges = append(edges, project.EdgeTriggers)
	}
	if m.context_entries != nil {
		edges = append(edges, project.EdgeContextEntries)
	}
	if m.chat_messages != nil {
		edges = append(edges, project.EdgeChatMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.proposals))
		for id := range m.proposals {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeMissions:
		ids := make([]ent.Value, 0, len(m.missions))
		for id := range m.missions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTriggers:
		ids := make([]ent.Value, 0, len(m.triggers))
		for id := range m.triggers {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.context_entries))
		for id := range m.context_entries {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedagents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	if m.removedproposals != nil {
		edges = append(edges, project.EdgeProposals)
	}
	if m.removedmissions != nil {
		edges = append(edges, project.EdgeMissions)
	}
	if m.removedevents != nil {
		edges = append(edges, project.EdgeEvents)
	}
	if m.removedtriggers != nil {
		edges = append(edges, project.EdgeTriggers)
	}
	if m.removedcontext_entries != nil {
		edges = append(edges, project.EdgeContextEntries)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, project.EdgeChatMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.removedproposals))
		for id := range m.removedproposals {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeMissions:
		ids := make([]ent.Value, 0, len(m.removedmissions))
		for id := range m.removedmissions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTriggers:
		ids := make([]ent.Value, 0, len(m.removedtriggers))
		for id := range m.removedtriggers {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.removedcontext_entries))
		for id := range m.removedcontext_entries {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedagents {
		edges = append(edges, project.EdgeAgents)
	}
	if m.clearedproposals {
		edges = append(edges, project.EdgeProposals)
	}
	if m.clearedmissions {
		edges = append(edges, project.EdgeMissions)
	}
	if m.clearedevents {
		edges = append(edges, project.EdgeEvents)
	}
	if m.clearedtriggers {
		edges = append(edges, project.EdgeTriggers)
	}
	if m.clearedcontext_entries {
		edges = append(edges, project.EdgeContextEntries)
	}
	if m.clearedchat_messages {
		edges = append(edges, project.EdgeChatMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeAgents:
		return m.clearedagents
	case project.EdgeProposals:
		return m.clearedproposals
	case project.EdgeMissions:
		return m.clearedmissions
	case project.EdgeEvents:
		return m.clearedevents
	case project.EdgeTriggers:
		return m.clearedtriggers
	case project.EdgeContextEntries:
		return m.clearedcontext_entries
	case project.EdgeChatMessages:
		return m.clearedchat_messages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeAgents:
		m.ResetAgents()
		return nil
	case project.EdgeProposals:
		m.ResetProposals()
		return nil
	case project.EdgeMissions:
		m.ResetMissions()
		return nil
	case project.EdgeEvents:
		m.ResetEvents()
		return nil
	case project.EdgeTriggers:
		m.ResetTriggers()
		return nil
	case project.EdgeContextEntries:
		m.ResetContextEntries()
		return nil
	case project.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectContextMutation represents an operation that mutates the ProjectContext nodes in the graph.
type ProjectContextMutation struct {
	config
	op              Op
	typ             string
	id              *string
	category        *string
	key             *string
	content         *string
	source_agent_id *string
	source_step_id  *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	project         *string
	clearedproject  bool
	done            bool
	oldValue        func(context.Context) (*ProjectContext, error)
	predicates      []predicate.ProjectContext
}

var _ ent.Mutation = (*ProjectContextMutation)(nil)

// projectcontextOption allows management of the mutation configuration using functional options.
type projectcontextOption func(*ProjectContextMutation)

// newProjectContextMutation creates new mutation for the ProjectContext entity.
func newProjectContextMutation(c config, op Op, opts ...projectcontextOption) *ProjectContextMutation {
	m := &ProjectContextMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectContextID sets the ID field of the mutation.
func withProjectContextID(id string) projectcontextOption {
	return func(m *ProjectContextMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectContext
		)
		m.oldValue = func(ctx context.Context) (*ProjectContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectContext sets the old ProjectContext of the mutation.
func withProjectContext(node *ProjectContext) projectcontextOption {
	return func(m *ProjectContextMutation) {
		m.oldValue = func(context.Context) (*ProjectContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectContext entities.
func (m *ProjectContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProjectContextMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectContextMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectContextMutation) ResetProjectID() {
	m.project = nil
}

// SetCategory sets the "category" field.
func (m *ProjectContextMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ProjectContextMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ProjectContextMutation) ResetCategory() {
	m.category = nil
}

// SetKey sets the "key" field.
func (m *ProjectContextMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ProjectContextMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ProjectContextMutation) ResetKey() {
	m.key = nil
}

// SetContent sets the "content" field.
func (m *ProjectContextMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ProjectContextMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ProjectContextMutation) ResetContent() {
	m.content = nil
}

// SetSourceAgentID sets the "source_agent_id" field.
func (m *ProjectContextMutation) SetSourceAgentID(s string) {
	m.source_agent_id = &s
}

// SourceAgentID returns the value of the "source_agent_id" field in the mutation.
func (m *ProjectContextMutation) SourceAgentID() (r string, exists bool) {
	v := m.source_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAgentID returns the old "source_agent_id" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldSourceAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAgentID: %w", err)
	}
	return oldValue.SourceAgentID, nil
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (m *ProjectContextMutation) ClearSourceAgentID() {
	m.source_agent_id = nil
	m.clearedFields[projectcontext.FieldSourceAgentID] = struct{}{}
}

// SourceAgentIDCleared returns if the "source_agent_id" field was cleared in this mutation.
func (m *ProjectContextMutation) SourceAgentIDCleared() bool {
	_, ok := m.clearedFields[projectcontext.FieldSourceAgentID]
	return ok
}

// ResetSourceAgentID resets all changes to the "source_agent_id" field.
func (m *ProjectContextMutation) ResetSourceAgentID() {
	m.source_agent_id = nil
	delete(m.clearedFields, projectcontext.FieldSourceAgentID)
}

// SetSourceStepID sets the "source_step_id" field.
func (m *ProjectContextMutation) SetSourceStepID(s string) {
	m.source_step_id = &s
}

// SourceStepID returns the value of the "source_step_id" field in the mutation.
func (m *ProjectContextMutation) SourceStepID() (r string, exists bool) {
	v := m.source_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceStepID returns the old "source_step_id" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldSourceStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceStepID: %w", err)
	}
	return oldValue.SourceStepID, nil
}

// ClearSourceStepID clears the value of the "source_step_id" field.
func (m *ProjectContextMutation) ClearSourceStepID() {
	m.source_step_id = nil
	m.clearedFields[projectcontext.FieldSourceStepID] = struct{}{}
}

// SourceStepIDCleared returns if the "source_step_id" field was cleared in this mutation.
func (m *ProjectContextMutation) SourceStepIDCleared() bool {
	_, ok := m.clearedFields[projectcontext.FieldSourceStepID]
	return ok
}

// ResetSourceStepID resets all changes to the "source_step_id" field.
func (m *ProjectContextMutation) ResetSourceStepID() {
	m.source_step_id = nil
	delete(m.clearedFields, projectcontext.FieldSourceStepID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectContextMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectContextMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectContext entity.
// If the ProjectContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectContextMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectContextMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProjectContextMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[projectcontext.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProjectContextMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProjectContextMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProjectContextMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ProjectContextMutation builder.
func (m *ProjectContextMutation) Where(ps ...predicate.ProjectContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectContext).
func (m *ProjectContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectContextMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project != nil {
		fields = append(fields, projectcontext.FieldProjectID)
	}
	if m.category != nil {
		fields = append(fields, projectcontext.FieldCategory)
	}
	if m.key != nil {
		fields = append(fields, projectcontext.FieldKey)
	}
	if m.content != nil {
		fields = append(fields, projectcontext.FieldContent)
	}
	if m.source_agent_id != nil {
		fields = append(fields, projectcontext.FieldSourceAgentID)
	}
	if m.source_step_id != nil {
		fields = append(fields, projectcontext.FieldSourceStepID)
	}
	if m.created_at != nil {
		fields = append(fields, projectcontext.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectcontext.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectcontext.FieldProjectID:
		return m.ProjectID()
	case projectcontext.FieldCategory:
		return m.Category()
	case projectcontext.FieldKey:
		return m.Key()
	case projectcontext.FieldContent:
		return m.Content()
	case projectcontext.FieldSourceAgentID:
		return m.SourceAgentID()
	case projectcontext.FieldSourceStepID:
		return m.SourceStepID()
	case projectcontext.FieldCreatedAt:
		return m.CreatedAt()
	case projectcontext.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectcontext.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectcontext.FieldCategory:
		return m.OldCategory(ctx)
	case projectcontext.FieldKey:
		return m.OldKey(ctx)
	case projectcontext.FieldContent:
		return m.OldContent(ctx)
	case projectcontext.FieldSourceAgentID:
		return m.OldSourceAgentID(ctx)
	case projectcontext.FieldSourceStepID:
		return m.OldSourceStepID(ctx)
	case projectcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectcontext.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectcontext.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectcontext.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case projectcontext.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case projectcontext.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case projectcontext.FieldSourceAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAgentID(v)
		return nil
	case projectcontext.FieldSourceStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceStepID(v)
		return nil
	case projectcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectcontext.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectcontext.FieldSourceAgentID) {
		fields = append(fields, projectcontext.FieldSourceAgentID)
	}
	if m.FieldCleared(projectcontext.FieldSourceStepID) {
		fields = append(fields, projectcontext.FieldSourceStepID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectContextMutation) ClearField(name string) error {
	switch name {
	case projectcontext.FieldSourceAgentID:
		m.ClearSourceAgentID()
		return nil
	case projectcontext.FieldSourceStepID:
		m.ClearSourceStepID()
		return nil
	}
	return fmt.Errorf("unknown ProjectContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectContextMutation) ResetField(name string) error {
	switch name {
	case projectcontext.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectcontext.FieldCategory:
		m.ResetCategory()
		return nil
	case projectcontext.FieldKey:
		m.ResetKey()
		return nil
	case projectcontext.FieldContent:
		m.ResetContent()
		return nil
	case projectcontext.FieldSourceAgentID:
		m.ResetSourceAgentID()
		return nil
	case projectcontext.FieldSourceStepID:
		m.ResetSourceStepID()
		return nil
	case projectcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectcontext.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, projectcontext.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectcontext.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, projectcontext.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectContextMutation) EdgeCleared(name string) bool {
	switch name {
	case projectcontext.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectContextMutation) ClearEdge(name string) error {
	switch name {
	case projectcontext.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectContextMutation) ResetEdge(name string) error {
	switch name {
	case projectcontext.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectContext edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op             Op
	typ            string
	id             *string
	title          *string
	description    *string
	rationale      *string
	priority       *proposal.Priority
	status         *proposal.Status
	auto_approve   *bool
	reviewed_by    *string
	reviewed_at    *time.Time
	mc_task_id     *string
	mc_board_id    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	agent          *string
	clearedagent   bool
	project        *string
	clearedproject bool
	mission        *string
	clearedmission bool
	done           bool
	oldValue       func(context.Context) (*Proposal, error)
	predicates     []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id string) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Proposal entities.
func (m *ProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ProposalMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ProposalMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ProposalMutation) ResetAgentID() {
	m.agent = nil
}

// SetProjectID sets the "project_id" field.
func (m *ProposalMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProposalMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProposalMutation) ResetProjectID() {
	m.project = nil
}

// SetTitle sets the "title" field.
func (m *ProposalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProposalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProposalMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ProposalMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProposalMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ProposalMutation) ResetDescription() {
	m.description = nil
}

// SetRationale sets the "rationale" field.
func (m *ProposalMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *ProposalMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ResetRationale resets all changes to the "rationale" field.
func (m *ProposalMutation) ResetRationale() {
	m.rationale = nil
}

// SetPriority sets the "priority" field.
func (m *ProposalMutation) SetPriority(pr proposal.Priority) {
	m.priority = &pr
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ProposalMutation) Priority() (r proposal.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldPriority(ctx context.Context) (v proposal.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ProposalMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(pr proposal.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r proposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v proposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetAutoApprove sets the "auto_approve" field.
func (m *ProposalMutation) SetAutoApprove(b bool) {
	m.auto_approve = &b
}

// AutoApprove returns the value of the "auto_approve" field in the mutation.
func (m *ProposalMutation) AutoApprove() (r bool, exists bool) {
	v := m.auto_approve
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoApprove returns the old "auto_approve" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldAutoApprove(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoApprove is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoApprove requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoApprove: %w", err)
	}
	return oldValue.AutoApprove, nil
}

// ResetAutoApprove resets all changes to the "auto_approve" field.
func (m *ProposalMutation) ResetAutoApprove() {
	m.auto_approve = nil
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *ProposalMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *ProposalMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *ProposalMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[proposal.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *ProposalMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[proposal.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *ProposalMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, proposal.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ProposalMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ProposalMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *ProposalMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[proposal.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *ProposalMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ProposalMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, proposal.FieldReviewedAt)
}

// SetMcTaskID sets the "mc_task_id" field.
func (m *ProposalMutation) SetMcTaskID(s string) {
	m.mc_task_id = &s
}

// McTaskID returns the value of the "mc_task_id" field in the mutation.
func (m *ProposalMutation) McTaskID() (r string, exists bool) {
	v := m.mc_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMcTaskID returns the old "mc_task_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldMcTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcTaskID: %w", err)
	}
	return oldValue.McTaskID, nil
}

// ClearMcTaskID clears the value of the "mc_task_id" field.
func (m *ProposalMutation) ClearMcTaskID() {
	m.mc_task_id = nil
	m.clearedFields[proposal.FieldMcTaskID] = struct{}{}
}

// McTaskIDCleared returns if the "mc_task_id" field was cleared in this mutation.
func (m *ProposalMutation) McTaskIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldMcTaskID]
	return ok
}

// ResetMcTaskID resets all changes to the "mc_task_id" field.
func (m *ProposalMutation) ResetMcTaskID() {
	m.mc_task_id = nil
	delete(m.clearedFields, proposal.FieldMcTaskID)
}

// SetMcBoardID sets the "mc_board_id" field.
func (m *ProposalMutation) SetMcBoardID(s string) {
	m.mc_board_id = &s
}

// McBoardID returns the value of the "mc_board_id" field in the mutation.
func (m *ProposalMutation) McBoardID() (r string, exists bool) {
	v := m.mc_board_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMcBoardID returns the old "mc_board_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldMcBoardID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcBoardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcBoardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcBoardID: %w", err)
	}
	return oldValue.McBoardID, nil
}

// ClearMcBoardID clears the value of the "mc_board_id" field.
func (m *ProposalMutation) ClearMcBoardID() {
	m.mc_board_id = nil
	m.clearedFields[proposal.FieldMcBoardID] = struct{}{}
}

// McBoardIDCleared returns if the "mc_board_id" field was cleared in this mutation.
func (m *ProposalMutation) McBoardIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldMcBoardID]
	return ok
}

// ResetMcBoardID resets all changes to the "mc_board_id" field.
func (m *ProposalMutation) ResetMcBoardID() {
	m.mc_board_id = nil
	delete(m.clearedFields, proposal.FieldMcBoardID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *ProposalMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[proposal.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *ProposalMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ProposalMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ProposalMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProposalMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[proposal.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProposalMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProposalMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProposalMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetMissionID sets the "mission" edge to the Mission entity by id.
func (m *ProposalMutation) SetMissionID(id string) {
	m.mission = &id
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *ProposalMutation) ClearMission() {
	m.clearedmission = true
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *ProposalMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionID returns the "mission" edge ID in the mutation.
func (m *ProposalMutation) MissionID() (id string, exists bool) {
	if m.mission != nil {
		return *m.mission, true
	}
	return
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *ProposalMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *ProposalMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent != nil {
		fields = append(fields, proposal.FieldAgentID)
	}
	if m.project != nil {
		fields = append(fields, proposal.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, proposal.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, proposal.FieldDescription)
	}
	if m.rationale != nil {
		fields = append(fields, proposal.FieldRationale)
	}
	if m.priority != nil {
		fields = append(fields, proposal.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.auto_approve != nil {
		fields = append(fields, proposal.FieldAutoApprove)
	}
	if m.reviewed_by != nil {
		fields = append(fields, proposal.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, proposal.FieldReviewedAt)
	}
	if m.mc_task_id != nil {
		fields = append(fields, proposal.FieldMcTaskID)
	}
	if m.mc_board_id != nil {
		fields = append(fields, proposal.FieldMcBoardID)
	}
	if m.created_at != nil {
		fields = append(fields, proposal.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldAgentID:
		return m.AgentID()
	case proposal.FieldProjectID:
		return m.ProjectID()
	case proposal.FieldTitle:
		return m.Title()
	case proposal.FieldDescription:
		return m.Description()
	case proposal.FieldRationale:
		return m.Rationale()
	case proposal.FieldPriority:
		return m.Priority()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldAutoApprove:
		return m.AutoApprove()
	case proposal.FieldReviewedBy:
		return m.ReviewedBy()
	case proposal.FieldReviewedAt:
		return m.ReviewedAt()
	case proposal.FieldMcTaskID:
		return m.McTaskID()
	case proposal.FieldMcBoardID:
		return m.McBoardID()
	case proposal.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldAgentID:
		return m.OldAgentID(ctx)
	case proposal.FieldProjectID:
		return m.OldProjectID(ctx)
	case proposal.FieldTitle:
		return m.OldTitle(ctx)
	case proposal.FieldDescription:
		return m.OldDescription(ctx)
	case proposal.FieldRationale:
		return m.OldRationale(ctx)
	case proposal.FieldPriority:
		return m.OldPriority(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldAutoApprove:
		return m.OldAutoApprove(ctx)
	case proposal.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case proposal.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case proposal.FieldMcTaskID:
		return m.OldMcTaskID(ctx)
	case proposal.FieldMcBoardID:
		return m.OldMcBoardID(ctx)
	case proposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case proposal.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case proposal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case proposal.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case proposal.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case proposal.FieldPriority:
		v, ok := value.(proposal.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(proposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldAutoApprove:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoApprove(v)
		return nil
	case proposal.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case proposal.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case proposal.FieldMcTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcTaskID(v)
		return nil
	case proposal.FieldMcBoardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcBoardID(v)
		return nil
	case proposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldReviewedBy) {
		fields = append(fields, proposal.FieldReviewedBy)
	}
	if m.FieldCleared(proposal.FieldReviewedAt) {
		fields = append(fields, proposal.FieldReviewedAt)
	}
	if m.FieldCleared(proposal.FieldMcTaskID) {
		fields = append(fields, proposal.FieldMcTaskID)
	}
	if m.FieldCleared(proposal.FieldMcBoardID) {
		fields = append(fields, proposal.FieldMcBoardID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case proposal.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case proposal.FieldMcTaskID:
		m.ClearMcTaskID()
		return nil
	case proposal.FieldMcBoardID:
		m.ClearMcBoardID()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldAgentID:
		m.ResetAgentID()
		return nil
	case proposal.FieldProjectID:
		m.ResetProjectID()
		return nil
	case proposal.FieldTitle:
		m.ResetTitle()
		return nil
	case proposal.FieldDescription:
		m.ResetDescription()
		return nil
	case proposal.FieldRationale:
		m.ResetRationale()
		return nil
	case proposal.FieldPriority:
		m.ResetPriority()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldAutoApprove:
		m.ResetAutoApprove()
		return nil
	case proposal.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case proposal.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case proposal.FieldMcTaskID:
		m.ResetMcTaskID()
		return nil
	case proposal.FieldMcBoardID:
		m.ResetMcBoardID()
		return nil
	case proposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.agent != nil {
		edges = append(edges, proposal.EdgeAgent)
	}
	if m.project != nil {
		edges = append(edges, proposal.EdgeProject)
	}
	if m.mission != nil {
		edges = append(edges, proposal.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case proposal.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case proposal.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedagent {
		edges = append(edges, proposal.EdgeAgent)
	}
	if m.clearedproject {
		edges = append(edges, proposal.EdgeProject)
	}
	if m.clearedmission {
		edges = append(edges, proposal.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case proposal.EdgeAgent:
		return m.clearedagent
	case proposal.EdgeProject:
		return m.clearedproject
	case proposal.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	switch name {
	case proposal.EdgeAgent:
		m.ClearAgent()
		return nil
	case proposal.EdgeProject:
		m.ClearProject()
		return nil
	case proposal.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	switch name {
	case proposal.EdgeAgent:
		m.ResetAgent()
		return nil
	case proposal.EdgeProject:
		m.ResetProject()
		return nil
	case proposal.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown Proposal edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                Op
	typ               string
	id                *string
	order_index       *int
	addorder_index    *int
	title             *string
	description       *string
	step_type         *step.StepType
	status            *step.Status
	output            *string
	error             *string
	started_at        *time.Time
	completed_at      *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	mission           *string
	clearedmission    bool
	claimed_by        *string
	clearedclaimed_by bool
	done              bool
	oldValue          func(context.Context) (*Step, error)
	predicates        []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *StepMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *StepMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *StepMutation) ResetMissionID() {
	m.mission = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *StepMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *StepMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *StepMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *StepMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *StepMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetTitle sets the "title" field.
func (m *StepMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StepMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StepMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *StepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *StepMutation) ResetDescription() {
	m.description = nil
}

// SetStepType sets the "step_type" field.
func (m *StepMutation) SetStepType(st step.StepType) {
	m.step_type = &st
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *StepMutation) StepType() (r step.StepType, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStepType(ctx context.Context) (v step.StepType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *StepMutation) ResetStepType() {
	m.step_type = nil
}

// SetStatus sets the "status" field.
func (m *StepMutation) SetStatus(s step.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepMutation) Status() (r step.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStatus(ctx context.Context) (v step.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepMutation) ResetStatus() {
	m.status = nil
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (m *StepMutation) SetClaimedByAgentID(s string) {
	m.claimed_by = &s
}

// ClaimedByAgentID returns the value of the "claimed_by_agent_id" field in the mutation.
func (m *StepMutation) ClaimedByAgentID() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedByAgentID returns the old "claimed_by_agent_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldClaimedByAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedByAgentID: %w", err)
	}
	return oldValue.ClaimedByAgentID, nil
}

// ClearClaimedByAgentID clears the value of the "claimed_by_agent_id" field.
func (m *StepMutation) ClearClaimedByAgentID() {
	m.claimed_by = nil
	m.clearedFields[step.FieldClaimedByAgentID] = struct{}{}
}

// ClaimedByAgentIDCleared returns if the "claimed_by_agent_id" field was cleared in this mutation.
func (m *StepMutation) ClaimedByAgentIDCleared() bool {
	_, ok := m.clearedFields[step.FieldClaimedByAgentID]
	return ok
}

// ResetClaimedByAgentID resets all changes to the "claimed_by_agent_id" field.
func (m *StepMutation) ResetClaimedByAgentID() {
	m.claimed_by = nil
	delete(m.clearedFields, step.FieldClaimedByAgentID)
}

// SetOutput sets the "output" field.
func (m *StepMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *StepMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *StepMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[step.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *StepMutation) OutputCleared() bool {
	_, ok := m.clearedFields[step.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *StepMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, step.FieldOutput)
}

// SetError sets the "error" field.
func (m *StepMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *StepMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *StepMutation) ClearError() {
	m.error = nil
	m.clearedFields[step.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *StepMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[step.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *StepMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, step.FieldError)
}

// SetStartedAt sets the "started_at" field.
func (m *StepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[step.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, step.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[step.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, step.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *StepMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[step.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *StepMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *StepMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *StepMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// SetClaimedByID sets the "claimed_by" edge to the Agent entity by id.
func (m *StepMutation) SetClaimedByID(id string) {
	m.claimed_by = &id
}

// ClearClaimedBy clears the "claimed_by" edge to the Agent entity.
func (m *StepMutation) ClearClaimedBy() {
	m.clearedclaimed_by = true
	m.clearedFields[step.FieldClaimedByAgentID] = struct{}{}
}

// ClaimedByCleared reports if the "claimed_by" edge to the Agent entity was cleared.
func (m *StepMutation) ClaimedByCleared() bool {
	return m.ClaimedByAgentIDCleared() || m.clearedclaimed_by
}

// ClaimedByID returns the "claimed_by" edge ID in the mutation.
func (m *StepMutation) ClaimedByID() (id string, exists bool) {
	if m.claimed_by != nil {
		return *m.claimed_by, true
	}
	return
}

// ClaimedByIDs returns the "claimed_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimedByID instead. It exists only for internal usage by the builders.
func (m *StepMutation) ClaimedByIDs() (ids []string) {
	if id := m.claimed_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaimedBy resets all changes to the "claimed_by" edge.
func (m *StepMutation) ResetClaimedBy() {
	m.claimed_by = nil
	m.clearedclaimed_by = false
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.mission != nil {
		fields = append(fields, step.FieldMissionID)
	}
	if m.order_index != nil {
		fields = append(fields, step.FieldOrderIndex)
	}
	if m.title != nil {
		fields = append(fields, step.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, step.FieldDescription)
	}
	if m.step_type != nil {
		fields = append(fields, step.FieldStepType)
	}
	if m.status != nil {
		fields = append(fields, step.FieldStatus)
	}
	if m.claimed_by != nil {
		fields = append(fields, step.FieldClaimedByAgentID)
	}
	if m.output != nil {
		fields = append(fields, step.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, step.FieldError)
	}
	if m.started_at != nil {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, step.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldMissionID:
		return m.MissionID()
	case step.FieldOrderIndex:
		return m.OrderIndex()
	case step.FieldTitle:
		return m.Title()
	case step.FieldDescription:
		return m.Description()
	case step.FieldStepType:
		return m.StepType()
	case step.FieldStatus:
		return m.Status()
	case step.FieldClaimedByAgentID:
		return m.ClaimedByAgentID()
	case step.FieldOutput:
		return m.Output()
	case step.FieldError:
		return m.Error()
	case step.FieldStartedAt:
		return m.StartedAt()
	case step.FieldCompletedAt:
		return m.CompletedAt()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldMissionID:
		return m.OldMissionID(ctx)
	case step.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case step.FieldTitle:
		return m.OldTitle(ctx)
	case step.FieldDescription:
		return m.OldDescription(ctx)
	case step.FieldStepType:
		return m.OldStepType(ctx)
	case step.FieldStatus:
		return m.OldStatus(ctx)
	case step.FieldClaimedByAgentID:
		return m.OldClaimedByAgentID(ctx)
	case step.FieldOutput:
		return m.OldOutput(ctx)
	case step.FieldError:
		return m.OldError(ctx)
	case step.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case step.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case step.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case step.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case step.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case step.FieldStepType:
		v, ok := value.(step.StepType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case step.FieldStatus:
		v, ok := value.(step.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case step.FieldClaimedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedByAgentID(v)
		return nil
	case step.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case step.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case step.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case step.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, step.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldClaimedByAgentID) {
		fields = append(fields, step.FieldClaimedByAgentID)
	}
	if m.FieldCleared(step.FieldOutput) {
		fields = append(fields, step.FieldOutput)
	}
	if m.FieldCleared(step.FieldError) {
		fields = append(fields, step.FieldError)
	}
	if m.FieldCleared(step.FieldStartedAt) {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.FieldCleared(step.FieldCompletedAt) {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldClaimedByAgentID:
		m.ClearClaimedByAgentID()
		return nil
	case step.FieldOutput:
		m.ClearOutput()
		return nil
	case step.FieldError:
		m.ClearError()
		return nil
	case step.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldMissionID:
		m.ResetMissionID()
		return nil
	case step.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case step.FieldTitle:
		m.ResetTitle()
		return nil
	case step.FieldDescription:
		m.ResetDescription()
		return nil
	case step.FieldStepType:
		m.ResetStepType()
		return nil
	case step.FieldStatus:
		m.ResetStatus()
		return nil
	case step.FieldClaimedByAgentID:
		m.ResetClaimedByAgentID()
		return nil
	case step.FieldOutput:
		m.ResetOutput()
		return nil
	case step.FieldError:
		m.ResetError()
		return nil
	case step.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.mission != nil {
		edges = append(edges, step.EdgeMission)
	}
	if m.claimed_by != nil {
		edges = append(edges, step.EdgeClaimedBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeClaimedBy:
		if id := m.claimed_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmission {
		edges = append(edges, step.EdgeMission)
	}
	if m.clearedclaimed_by {
		edges = append(edges, step.EdgeClaimedBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeMission:
		return m.clearedmission
	case step.EdgeClaimedBy:
		return m.clearedclaimed_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeMission:
		m.ClearMission()
		return nil
	case step.EdgeClaimedBy:
		m.ClearClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeMission:
		m.ResetMission()
		return nil
	case step.EdgeClaimedBy:
		m.ResetClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}

// TriggerMutation represents an operation that mutates the Trigger nodes in the graph.
type TriggerMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	event_pattern  *map[string]interface{}
	action         *map[string]interface{}
	enabled        *bool
	last_fired_at  *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*Trigger, error)
	predicates     []predicate.Trigger
}

var _ ent.Mutation = (*TriggerMutation)(nil)

// triggerOption allows management of the mutation configuration using functional options.
type triggerOption func(*TriggerMutation)

// newTriggerMutation creates new mutation for the Trigger entity.
func newTriggerMutation(c config, op Op, opts ...triggerOption) *TriggerMutation {
	m := &TriggerMutation{
		config:        c,
		op:            op,
		typ:           TypeTrigger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerID sets the ID field of the mutation.
func withTriggerID(id string) triggerOption {
	return func(m *TriggerMutation) {
		var (
			err   error
			once  sync.Once
			value *Trigger
		)
		m.oldValue = func(ctx context.Context) (*Trigger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trigger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrigger sets the old Trigger of the mutation.
func withTrigger(node *Trigger) triggerOption {
	return func(m *TriggerMutation) {
		m.oldValue = func(context.Context) (*Trigger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trigger entities.
func (m *TriggerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trigger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TriggerMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TriggerMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TriggerMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *TriggerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TriggerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TriggerMutation) ResetName() {
	m.name = nil
}

// SetEventPattern sets the "event_pattern" field.
func (m *TriggerMutation) SetEventPattern(value map[string]interface{}) {
	m.event_pattern = &value
}

// EventPattern returns the value of the "event_pattern" field in the mutation.
func (m *TriggerMutation) EventPattern() (r map[string]interface{}, exists bool) {
	v := m.event_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldEventPattern returns the old "event_pattern" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldEventPattern(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventPattern: %w", err)
	}
	return oldValue.EventPattern, nil
}

// ResetEventPattern resets all changes to the "event_pattern" field.
func (m *TriggerMutation) ResetEventPattern() {
	m.event_pattern = nil
}

// SetAction sets the "action" field.
func (m *TriggerMutation) SetAction(value map[string]interface{}) {
	m.action = &value
}

// Action returns the value of the "action" field in the mutation.
func (m *TriggerMutation) Action() (r map[string]interface{}, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldAction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *TriggerMutation) ResetAction() {
	m.action = nil
}

// SetEnabled sets the "enabled" field.
func (m *TriggerMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TriggerMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *TriggerMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastFiredAt sets the "last_fired_at" field.
func (m *TriggerMutation) SetLastFiredAt(t time.Time) {
	m.last_fired_at = &t
}

// LastFiredAt returns the value of the "last_fired_at" field in the mutation.
func (m *TriggerMutation) LastFiredAt() (r time.Time, exists bool) {
	v := m.last_fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFiredAt returns the old "last_fired_at" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldLastFiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFiredAt: %w", err)
	}
	return oldValue.LastFiredAt, nil
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (m *TriggerMutation) ClearLastFiredAt() {
	m.last_fired_at = nil
	m.clearedFields[trigger.FieldLastFiredAt] = struct{}{}
}

// LastFiredAtCleared returns if the "last_fired_at" field was cleared in this mutation.
func (m *TriggerMutation) LastFiredAtCleared() bool {
	_, ok := m.clearedFields[trigger.FieldLastFiredAt]
	return ok
}

// ResetLastFiredAt resets all changes to the "last_fired_at" field.
func (m *TriggerMutation) ResetLastFiredAt() {
	m.last_fired_at = nil
	delete(m.clearedFields, trigger.FieldLastFiredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TriggerMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[trigger.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TriggerMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TriggerMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TriggerMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the TriggerMutation builder.
func (m *TriggerMutation) Where(ps ...predicate.Trigger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trigger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trigger).
func (m *TriggerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.project != nil {
		fields = append(fields, trigger.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, trigger.FieldName)
	}
	if m.event_pattern != nil {
		fields = append(fields, trigger.FieldEventPattern)
	}
	if m.action != nil {
		fields = append(fields, trigger.FieldAction)
	}
	if m.enabled != nil {
		fields = append(fields, trigger.FieldEnabled)
	}
	if m.last_fired_at != nil {
		fields = append(fields, trigger.FieldLastFiredAt)
	}
	if m.created_at != nil {
		fields = append(fields, trigger.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trigger.FieldProjectID:
		return m.ProjectID()
	case trigger.FieldName:
		return m.Name()
	case trigger.FieldEventPattern:
		return m.EventPattern()
	case trigger.FieldAction:
		return m.Action()
	case trigger.FieldEnabled:
		return m.Enabled()
	case trigger.FieldLastFiredAt:
		return m.LastFiredAt()
	case trigger.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trigger.FieldProjectID:
		return m.OldProjectID(ctx)
	case trigger.FieldName:
		return m.OldName(ctx)
	case trigger.FieldEventPattern:
		return m.OldEventPattern(ctx)
	case trigger.FieldAction:
		return m.OldAction(ctx)
	case trigger.FieldEnabled:
		return m.OldEnabled(ctx)
	case trigger.FieldLastFiredAt:
		return m.OldLastFiredAt(ctx)
	case trigger.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trigger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trigger.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case trigger.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case trigger.FieldEventPattern:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventPattern(v)
		return nil
	case trigger.FieldAction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case trigger.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case trigger.FieldLastFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFiredAt(v)
		return nil
	case trigger.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trigger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Trigger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trigger.FieldLastFiredAt) {
		fields = append(fields, trigger.FieldLastFiredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerMutation) ClearField(name string) error {
	switch name {
	case trigger.FieldLastFiredAt:
		m.ClearLastFiredAt()
		return nil
	}
	return fmt.Errorf("unknown Trigger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerMutation) ResetField(name string) error {
	switch name {
	case trigger.FieldProjectID:
		m.ResetProjectID()
		return nil
	case trigger.FieldName:
		m.ResetName()
		return nil
	case trigger.FieldEventPattern:
		m.ResetEventPattern()
		return nil
	case trigger.FieldAction:
		m.ResetAction()
		return nil
	case trigger.FieldEnabled:
		m.ResetEnabled()
		return nil
	case trigger.FieldLastFiredAt:
		m.ResetLastFiredAt()
		return nil
	case trigger.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trigger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, trigger.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trigger.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, trigger.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerMutation) EdgeCleared(name string) bool {
	switch name {
	case trigger.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerMutation) ClearEdge(name string) error {
	switch name {
	case trigger.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Trigger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerMutation) ResetEdge(name string) error {
	switch name {
	case trigger.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Trigger edge %s", name)
}
