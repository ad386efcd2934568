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
	"github.com/openscribe/scribe/ent/anontoken"
	"github.com/openscribe/scribe/ent/balance"
	"github.com/openscribe/scribe/ent/predicate"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
	"github.com/openscribe/scribe/ent/trialusage"
	"github.com/openscribe/scribe/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnonToken    = "AnonToken"
	TypeBalance      = "Balance"
	TypeTask         = "Task"
	TypeTranscript   = "Transcript"
	TypeTrialUsage   = "TrialUsage"
	TypeWebhookEvent = "WebhookEvent"
)

// AnonTokenMutation represents an operation that mutates the AnonToken nodes in the graph.
type AnonTokenMutation struct {
	config
	op            Op
	typ           string
	id            *string
	anon_id       *string
	ip_hash       *string
	ua_hash       *string
	used_trial    *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnonToken, error)
	predicates    []predicate.AnonToken
}

var _ ent.Mutation = (*AnonTokenMutation)(nil)

// anontokenOption allows management of the mutation configuration using functional options.
type anontokenOption func(*AnonTokenMutation)

// newAnonTokenMutation creates new mutation for the AnonToken entity.
func newAnonTokenMutation(c config, op Op, opts ...anontokenOption) *AnonTokenMutation {
	m := &AnonTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeAnonToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnonTokenID sets the ID field of the mutation.
func withAnonTokenID(id string) anontokenOption {
	return func(m *AnonTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *AnonToken
		)
		m.oldValue = func(ctx context.Context) (*AnonToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnonToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnonToken sets the old AnonToken of the mutation.
func withAnonToken(node *AnonToken) anontokenOption {
	return func(m *AnonTokenMutation) {
		m.oldValue = func(context.Context) (*AnonToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnonTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnonTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnonToken entities.
func (m *AnonTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnonTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnonTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnonToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnonID sets the "anon_id" field.
func (m *AnonTokenMutation) SetAnonID(s string) {
	m.anon_id = &s
}

// AnonID returns the value of the "anon_id" field in the mutation.
func (m *AnonTokenMutation) AnonID() (r string, exists bool) {
	v := m.anon_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnonID returns the old "anon_id" field's value of the AnonToken entity.
// If the AnonToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonTokenMutation) OldAnonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnonID: %w", err)
	}
	return oldValue.AnonID, nil
}

// ResetAnonID resets all changes to the "anon_id" field.
func (m *AnonTokenMutation) ResetAnonID() {
	m.anon_id = nil
}

// SetIPHash sets the "ip_hash" field.
func (m *AnonTokenMutation) SetIPHash(s string) {
	m.ip_hash = &s
}

// IPHash returns the value of the "ip_hash" field in the mutation.
func (m *AnonTokenMutation) IPHash() (r string, exists bool) {
	v := m.ip_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldIPHash returns the old "ip_hash" field's value of the AnonToken entity.
// If the AnonToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonTokenMutation) OldIPHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPHash: %w", err)
	}
	return oldValue.IPHash, nil
}

// ClearIPHash clears the value of the "ip_hash" field.
func (m *AnonTokenMutation) ClearIPHash() {
	m.ip_hash = nil
	m.clearedFields[anontoken.FieldIPHash] = struct{}{}
}

// IPHashCleared returns if the "ip_hash" field was cleared in this mutation.
func (m *AnonTokenMutation) IPHashCleared() bool {
	_, ok := m.clearedFields[anontoken.FieldIPHash]
	return ok
}

// ResetIPHash resets all changes to the "ip_hash" field.
func (m *AnonTokenMutation) ResetIPHash() {
	m.ip_hash = nil
	delete(m.clearedFields, anontoken.FieldIPHash)
}

// SetUaHash sets the "ua_hash" field.
func (m *AnonTokenMutation) SetUaHash(s string) {
	m.ua_hash = &s
}

// UaHash returns the value of the "ua_hash" field in the mutation.
func (m *AnonTokenMutation) UaHash() (r string, exists bool) {
	v := m.ua_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldUaHash returns the old "ua_hash" field's value of the AnonToken entity.
// If the AnonToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonTokenMutation) OldUaHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUaHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUaHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUaHash: %w", err)
	}
	return oldValue.UaHash, nil
}

// ClearUaHash clears the value of the "ua_hash" field.
func (m *AnonTokenMutation) ClearUaHash() {
	m.ua_hash = nil
	m.clearedFields[anontoken.FieldUaHash] = struct{}{}
}

// UaHashCleared returns if the "ua_hash" field was cleared in this mutation.
func (m *AnonTokenMutation) UaHashCleared() bool {
	_, ok := m.clearedFields[anontoken.FieldUaHash]
	return ok
}

// ResetUaHash resets all changes to the "ua_hash" field.
func (m *AnonTokenMutation) ResetUaHash() {
	m.ua_hash = nil
	delete(m.clearedFields, anontoken.FieldUaHash)
}

// SetUsedTrial sets the "used_trial" field.
func (m *AnonTokenMutation) SetUsedTrial(b bool) {
	m.used_trial = &b
}

// UsedTrial returns the value of the "used_trial" field in the mutation.
func (m *AnonTokenMutation) UsedTrial() (r bool, exists bool) {
	v := m.used_trial
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedTrial returns the old "used_trial" field's value of the AnonToken entity.
// If the AnonToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonTokenMutation) OldUsedTrial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedTrial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedTrial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedTrial: %w", err)
	}
	return oldValue.UsedTrial, nil
}

// ResetUsedTrial resets all changes to the "used_trial" field.
func (m *AnonTokenMutation) ResetUsedTrial() {
	m.used_trial = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnonTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnonTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnonToken entity.
// If the AnonToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnonTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnonTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnonTokenMutation builder.
func (m *AnonTokenMutation) Where(ps ...predicate.AnonToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnonTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnonTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnonToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnonTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnonTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnonToken).
func (m *AnonTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnonTokenMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.anon_id != nil {
		fields = append(fields, anontoken.FieldAnonID)
	}
	if m.ip_hash != nil {
		fields = append(fields, anontoken.FieldIPHash)
	}
	if m.ua_hash != nil {
		fields = append(fields, anontoken.FieldUaHash)
	}
	if m.used_trial != nil {
		fields = append(fields, anontoken.FieldUsedTrial)
	}
	if m.created_at != nil {
		fields = append(fields, anontoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnonTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anontoken.FieldAnonID:
		return m.AnonID()
	case anontoken.FieldIPHash:
		return m.IPHash()
	case anontoken.FieldUaHash:
		return m.UaHash()
	case anontoken.FieldUsedTrial:
		return m.UsedTrial()
	case anontoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnonTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anontoken.FieldAnonID:
		return m.OldAnonID(ctx)
	case anontoken.FieldIPHash:
		return m.OldIPHash(ctx)
	case anontoken.FieldUaHash:
		return m.OldUaHash(ctx)
	case anontoken.FieldUsedTrial:
		return m.OldUsedTrial(ctx)
	case anontoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnonToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnonTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anontoken.FieldAnonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnonID(v)
		return nil
	case anontoken.FieldIPHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPHash(v)
		return nil
	case anontoken.FieldUaHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUaHash(v)
		return nil
	case anontoken.FieldUsedTrial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedTrial(v)
		return nil
	case anontoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnonToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnonTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnonTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnonTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnonToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnonTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anontoken.FieldIPHash) {
		fields = append(fields, anontoken.FieldIPHash)
	}
	if m.FieldCleared(anontoken.FieldUaHash) {
		fields = append(fields, anontoken.FieldUaHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnonTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnonTokenMutation) ClearField(name string) error {
	switch name {
	case anontoken.FieldIPHash:
		m.ClearIPHash()
		return nil
	case anontoken.FieldUaHash:
		m.ClearUaHash()
		return nil
	}
	return fmt.Errorf("unknown AnonToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnonTokenMutation) ResetField(name string) error {
	switch name {
	case anontoken.FieldAnonID:
		m.ResetAnonID()
		return nil
	case anontoken.FieldIPHash:
		m.ResetIPHash()
		return nil
	case anontoken.FieldUaHash:
		m.ResetUaHash()
		return nil
	case anontoken.FieldUsedTrial:
		m.ResetUsedTrial()
		return nil
	case anontoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnonToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnonTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnonTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnonTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnonTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnonTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnonTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnonTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnonToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnonTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnonToken edge %s", name)
}

// BalanceMutation represents an operation that mutates the Balance nodes in the graph.
type BalanceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	minutes_balance    *int
	addminutes_balance *int
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Balance, error)
	predicates         []predicate.Balance
}

var _ ent.Mutation = (*BalanceMutation)(nil)

// balanceOption allows management of the mutation configuration using functional options.
type balanceOption func(*BalanceMutation)

// newBalanceMutation creates new mutation for the Balance entity.
func newBalanceMutation(c config, op Op, opts ...balanceOption) *BalanceMutation {
	m := &BalanceMutation{
		config:        c,
		op:            op,
		typ:           TypeBalance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBalanceID sets the ID field of the mutation.
func withBalanceID(id string) balanceOption {
	return func(m *BalanceMutation) {
		var (
			err   error
			once  sync.Once
			value *Balance
		)
		m.oldValue = func(ctx context.Context) (*Balance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Balance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBalance sets the old Balance of the mutation.
func withBalance(node *Balance) balanceOption {
	return func(m *BalanceMutation) {
		m.oldValue = func(context.Context) (*Balance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BalanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BalanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Balance entities.
func (m *BalanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BalanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BalanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Balance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BalanceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BalanceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Balance entity.
// If the Balance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalanceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BalanceMutation) ResetUserID() {
	m.user_id = nil
}

// SetMinutesBalance sets the "minutes_balance" field.
func (m *BalanceMutation) SetMinutesBalance(i int) {
	m.minutes_balance = &i
	m.addminutes_balance = nil
}

// MinutesBalance returns the value of the "minutes_balance" field in the mutation.
func (m *BalanceMutation) MinutesBalance() (r int, exists bool) {
	v := m.minutes_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldMinutesBalance returns the old "minutes_balance" field's value of the Balance entity.
// If the Balance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalanceMutation) OldMinutesBalance(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinutesBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinutesBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinutesBalance: %w", err)
	}
	return oldValue.MinutesBalance, nil
}

// AddMinutesBalance adds i to the "minutes_balance" field.
func (m *BalanceMutation) AddMinutesBalance(i int) {
	if m.addminutes_balance != nil {
		*m.addminutes_balance += i
	} else {
		m.addminutes_balance = &i
	}
}

// AddedMinutesBalance returns the value that was added to the "minutes_balance" field in this mutation.
func (m *BalanceMutation) AddedMinutesBalance() (r int, exists bool) {
	v := m.addminutes_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinutesBalance resets all changes to the "minutes_balance" field.
func (m *BalanceMutation) ResetMinutesBalance() {
	m.minutes_balance = nil
	m.addminutes_balance = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BalanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BalanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Balance entity.
// If the Balance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BalanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BalanceMutation builder.
func (m *BalanceMutation) Where(ps ...predicate.Balance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BalanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BalanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Balance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BalanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BalanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Balance).
func (m *BalanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BalanceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, balance.FieldUserID)
	}
	if m.minutes_balance != nil {
		fields = append(fields, balance.FieldMinutesBalance)
	}
	if m.updated_at != nil {
		fields = append(fields, balance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BalanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case balance.FieldUserID:
		return m.UserID()
	case balance.FieldMinutesBalance:
		return m.MinutesBalance()
	case balance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BalanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case balance.FieldUserID:
		return m.OldUserID(ctx)
	case balance.FieldMinutesBalance:
		return m.OldMinutesBalance(ctx)
	case balance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Balance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BalanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case balance.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case balance.FieldMinutesBalance:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinutesBalance(v)
		return nil
	case balance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Balance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BalanceMutation) AddedFields() []string {
	var fields []string
	if m.addminutes_balance != nil {
		fields = append(fields, balance.FieldMinutesBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BalanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case balance.FieldMinutesBalance:
		return m.AddedMinutesBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BalanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case balance.FieldMinutesBalance:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinutesBalance(v)
		return nil
	}
	return fmt.Errorf("unknown Balance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BalanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BalanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BalanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Balance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BalanceMutation) ResetField(name string) error {
	switch name {
	case balance.FieldUserID:
		m.ResetUserID()
		return nil
	case balance.FieldMinutesBalance:
		m.ResetMinutesBalance()
		return nil
	case balance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Balance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BalanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BalanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BalanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BalanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BalanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BalanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BalanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Balance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BalanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Balance edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	anon_id           *string
	owner_key         *string
	source_type       *task.SourceType
	task_type         *string
	is_trial          *bool
	priority          *task.Priority
	source_url        *string
	params            *map[string]interface{}
	status            *task.Status
	engine            *string
	duration_sec      *float64
	addduration_sec   *float64
	cost_minutes      *int
	addcost_minutes   *int
	attempts          *int
	addattempts       *int
	error_message     *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	transcript        *string
	clearedtranscript bool
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[task.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[task.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, task.FieldUserID)
}

// SetAnonID sets the "anon_id" field.
func (m *TaskMutation) SetAnonID(s string) {
	m.anon_id = &s
}

// AnonID returns the value of the "anon_id" field in the mutation.
func (m *TaskMutation) AnonID() (r string, exists bool) {
	v := m.anon_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnonID returns the old "anon_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAnonID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnonID: %w", err)
	}
	return oldValue.AnonID, nil
}

// ClearAnonID clears the value of the "anon_id" field.
func (m *TaskMutation) ClearAnonID() {
	m.anon_id = nil
	m.clearedFields[task.FieldAnonID] = struct{}{}
}

// AnonIDCleared returns if the "anon_id" field was cleared in this mutation.
func (m *TaskMutation) AnonIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAnonID]
	return ok
}

// ResetAnonID resets all changes to the "anon_id" field.
func (m *TaskMutation) ResetAnonID() {
	m.anon_id = nil
	delete(m.clearedFields, task.FieldAnonID)
}

// SetOwnerKey sets the "owner_key" field.
func (m *TaskMutation) SetOwnerKey(s string) {
	m.owner_key = &s
}

// OwnerKey returns the value of the "owner_key" field in the mutation.
func (m *TaskMutation) OwnerKey() (r string, exists bool) {
	v := m.owner_key
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerKey returns the old "owner_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOwnerKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerKey: %w", err)
	}
	return oldValue.OwnerKey, nil
}

// ResetOwnerKey resets all changes to the "owner_key" field.
func (m *TaskMutation) ResetOwnerKey() {
	m.owner_key = nil
}

// SetSourceType sets the "source_type" field.
func (m *TaskMutation) SetSourceType(tt task.SourceType) {
	m.source_type = &tt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *TaskMutation) SourceType() (r task.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceType(ctx context.Context) (v task.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *TaskMutation) ResetSourceType() {
	m.source_type = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetIsTrial sets the "is_trial" field.
func (m *TaskMutation) SetIsTrial(b bool) {
	m.is_trial = &b
}

// IsTrial returns the value of the "is_trial" field in the mutation.
func (m *TaskMutation) IsTrial() (r bool, exists bool) {
	v := m.is_trial
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTrial returns the old "is_trial" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIsTrial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTrial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTrial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTrial: %w", err)
	}
	return oldValue.IsTrial, nil
}

// ResetIsTrial resets all changes to the "is_trial" field.
func (m *TaskMutation) ResetIsTrial() {
	m.is_trial = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
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
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetSourceURL sets the "source_url" field.
func (m *TaskMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *TaskMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *TaskMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetParams sets the "params" field.
func (m *TaskMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *TaskMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *TaskMutation) ClearParams() {
	m.params = nil
	m.clearedFields[task.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *TaskMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[task.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *TaskMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, task.FieldParams)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
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
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetEngine sets the "engine" field.
func (m *TaskMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *TaskMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEngine(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ClearEngine clears the value of the "engine" field.
func (m *TaskMutation) ClearEngine() {
	m.engine = nil
	m.clearedFields[task.FieldEngine] = struct{}{}
}

// EngineCleared returns if the "engine" field was cleared in this mutation.
func (m *TaskMutation) EngineCleared() bool {
	_, ok := m.clearedFields[task.FieldEngine]
	return ok
}

// ResetEngine resets all changes to the "engine" field.
func (m *TaskMutation) ResetEngine() {
	m.engine = nil
	delete(m.clearedFields, task.FieldEngine)
}

// SetDurationSec sets the "duration_sec" field.
func (m *TaskMutation) SetDurationSec(f float64) {
	m.duration_sec = &f
	m.addduration_sec = nil
}

// DurationSec returns the value of the "duration_sec" field in the mutation.
func (m *TaskMutation) DurationSec() (r float64, exists bool) {
	v := m.duration_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSec returns the old "duration_sec" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDurationSec(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSec: %w", err)
	}
	return oldValue.DurationSec, nil
}

// AddDurationSec adds f to the "duration_sec" field.
func (m *TaskMutation) AddDurationSec(f float64) {
	if m.addduration_sec != nil {
		*m.addduration_sec += f
	} else {
		m.addduration_sec = &f
	}
}

// AddedDurationSec returns the value that was added to the "duration_sec" field in this mutation.
func (m *TaskMutation) AddedDurationSec() (r float64, exists bool) {
	v := m.addduration_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSec resets all changes to the "duration_sec" field.
func (m *TaskMutation) ResetDurationSec() {
	m.duration_sec = nil
	m.addduration_sec = nil
}

// SetCostMinutes sets the "cost_minutes" field.
func (m *TaskMutation) SetCostMinutes(i int) {
	m.cost_minutes = &i
	m.addcost_minutes = nil
}

// CostMinutes returns the value of the "cost_minutes" field in the mutation.
func (m *TaskMutation) CostMinutes() (r int, exists bool) {
	v := m.cost_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCostMinutes returns the old "cost_minutes" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCostMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostMinutes: %w", err)
	}
	return oldValue.CostMinutes, nil
}

// AddCostMinutes adds i to the "cost_minutes" field.
func (m *TaskMutation) AddCostMinutes(i int) {
	if m.addcost_minutes != nil {
		*m.addcost_minutes += i
	} else {
		m.addcost_minutes = &i
	}
}

// AddedCostMinutes returns the value that was added to the "cost_minutes" field in this mutation.
func (m *TaskMutation) AddedCostMinutes() (r int, exists bool) {
	v := m.addcost_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostMinutes resets all changes to the "cost_minutes" field.
func (m *TaskMutation) ResetCostMinutes() {
	m.cost_minutes = nil
	m.addcost_minutes = nil
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by id.
func (m *TaskMutation) SetTranscriptID(id string) {
	m.transcript = &id
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *TaskMutation) ClearTranscript() {
	m.clearedtranscript = true
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *TaskMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptID returns the "transcript" edge ID in the mutation.
func (m *TaskMutation) TranscriptID() (id string, exists bool) {
	if m.transcript != nil {
		return *m.transcript, true
	}
	return
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *TaskMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.anon_id != nil {
		fields = append(fields, task.FieldAnonID)
	}
	if m.owner_key != nil {
		fields = append(fields, task.FieldOwnerKey)
	}
	if m.source_type != nil {
		fields = append(fields, task.FieldSourceType)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.is_trial != nil {
		fields = append(fields, task.FieldIsTrial)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.source_url != nil {
		fields = append(fields, task.FieldSourceURL)
	}
	if m.params != nil {
		fields = append(fields, task.FieldParams)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.engine != nil {
		fields = append(fields, task.FieldEngine)
	}
	if m.duration_sec != nil {
		fields = append(fields, task.FieldDurationSec)
	}
	if m.cost_minutes != nil {
		fields = append(fields, task.FieldCostMinutes)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.UserID()
	case task.FieldAnonID:
		return m.AnonID()
	case task.FieldOwnerKey:
		return m.OwnerKey()
	case task.FieldSourceType:
		return m.SourceType()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldIsTrial:
		return m.IsTrial()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldSourceURL:
		return m.SourceURL()
	case task.FieldParams:
		return m.Params()
	case task.FieldStatus:
		return m.Status()
	case task.FieldEngine:
		return m.Engine()
	case task.FieldDurationSec:
		return m.DurationSec()
	case task.FieldCostMinutes:
		return m.CostMinutes()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldAnonID:
		return m.OldAnonID(ctx)
	case task.FieldOwnerKey:
		return m.OldOwnerKey(ctx)
	case task.FieldSourceType:
		return m.OldSourceType(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldIsTrial:
		return m.OldIsTrial(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case task.FieldParams:
		return m.OldParams(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldEngine:
		return m.OldEngine(ctx)
	case task.FieldDurationSec:
		return m.OldDurationSec(ctx)
	case task.FieldCostMinutes:
		return m.OldCostMinutes(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldAnonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnonID(v)
		return nil
	case task.FieldOwnerKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerKey(v)
		return nil
	case task.FieldSourceType:
		v, ok := value.(task.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldIsTrial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTrial(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case task.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case task.FieldDurationSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSec(v)
		return nil
	case task.FieldCostMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostMinutes(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addduration_sec != nil {
		fields = append(fields, task.FieldDurationSec)
	}
	if m.addcost_minutes != nil {
		fields = append(fields, task.FieldCostMinutes)
	}
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldDurationSec:
		return m.AddedDurationSec()
	case task.FieldCostMinutes:
		return m.AddedCostMinutes()
	case task.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldDurationSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSec(v)
		return nil
	case task.FieldCostMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostMinutes(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldUserID) {
		fields = append(fields, task.FieldUserID)
	}
	if m.FieldCleared(task.FieldAnonID) {
		fields = append(fields, task.FieldAnonID)
	}
	if m.FieldCleared(task.FieldParams) {
		fields = append(fields, task.FieldParams)
	}
	if m.FieldCleared(task.FieldEngine) {
		fields = append(fields, task.FieldEngine)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ClearUserID()
		return nil
	case task.FieldAnonID:
		m.ClearAnonID()
		return nil
	case task.FieldParams:
		m.ClearParams()
		return nil
	case task.FieldEngine:
		m.ClearEngine()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldAnonID:
		m.ResetAnonID()
		return nil
	case task.FieldOwnerKey:
		m.ResetOwnerKey()
		return nil
	case task.FieldSourceType:
		m.ResetSourceType()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldIsTrial:
		m.ResetIsTrial()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case task.FieldParams:
		m.ResetParams()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldEngine:
		m.ResetEngine()
		return nil
	case task.FieldDurationSec:
		m.ResetDurationSec()
		return nil
	case task.FieldCostMinutes:
		m.ResetCostMinutes()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transcript != nil {
		edges = append(edges, task.EdgeTranscript)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtranscript {
		edges = append(edges, task.EdgeTranscript)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeTranscript:
		return m.clearedtranscript
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeTranscript:
		m.ResetTranscript()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op             Op
	typ            string
	id             *string
	segments       *[]map[string]interface{}
	appendsegments []map[string]interface{}
	raw_payload    *map[string]interface{}
	srt_url        *string
	vtt_url        *string
	raw_url        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*Transcript, error)
	predicates     []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TranscriptMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TranscriptMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TranscriptMutation) ResetTaskID() {
	m.task = nil
}

// SetSegments sets the "segments" field.
func (m *TranscriptMutation) SetSegments(value []map[string]interface{}) {
	m.segments = &value
	m.appendsegments = nil
}

// Segments returns the value of the "segments" field in the mutation.
func (m *TranscriptMutation) Segments() (r []map[string]interface{}, exists bool) {
	v := m.segments
	if v == nil {
		return
	}
	return *v, true
}

// OldSegments returns the old "segments" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldSegments(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegments: %w", err)
	}
	return oldValue.Segments, nil
}

// AppendSegments adds value to the "segments" field.
func (m *TranscriptMutation) AppendSegments(value []map[string]interface{}) {
	m.appendsegments = append(m.appendsegments, value...)
}

// AppendedSegments returns the list of values that were appended to the "segments" field in this mutation.
func (m *TranscriptMutation) AppendedSegments() ([]map[string]interface{}, bool) {
	if len(m.appendsegments) == 0 {
		return nil, false
	}
	return m.appendsegments, true
}

// ResetSegments resets all changes to the "segments" field.
func (m *TranscriptMutation) ResetSegments() {
	m.segments = nil
	m.appendsegments = nil
}

// SetRawPayload sets the "raw_payload" field.
func (m *TranscriptMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *TranscriptMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *TranscriptMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[transcript.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *TranscriptMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[transcript.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *TranscriptMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, transcript.FieldRawPayload)
}

// SetSrtURL sets the "srt_url" field.
func (m *TranscriptMutation) SetSrtURL(s string) {
	m.srt_url = &s
}

// SrtURL returns the value of the "srt_url" field in the mutation.
func (m *TranscriptMutation) SrtURL() (r string, exists bool) {
	v := m.srt_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSrtURL returns the old "srt_url" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldSrtURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSrtURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSrtURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSrtURL: %w", err)
	}
	return oldValue.SrtURL, nil
}

// ClearSrtURL clears the value of the "srt_url" field.
func (m *TranscriptMutation) ClearSrtURL() {
	m.srt_url = nil
	m.clearedFields[transcript.FieldSrtURL] = struct{}{}
}

// SrtURLCleared returns if the "srt_url" field was cleared in this mutation.
func (m *TranscriptMutation) SrtURLCleared() bool {
	_, ok := m.clearedFields[transcript.FieldSrtURL]
	return ok
}

// ResetSrtURL resets all changes to the "srt_url" field.
func (m *TranscriptMutation) ResetSrtURL() {
	m.srt_url = nil
	delete(m.clearedFields, transcript.FieldSrtURL)
}

// SetVttURL sets the "vtt_url" field.
func (m *TranscriptMutation) SetVttURL(s string) {
	m.vtt_url = &s
}

// VttURL returns the value of the "vtt_url" field in the mutation.
func (m *TranscriptMutation) VttURL() (r string, exists bool) {
	v := m.vtt_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVttURL returns the old "vtt_url" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldVttURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVttURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVttURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVttURL: %w", err)
	}
	return oldValue.VttURL, nil
}

// ClearVttURL clears the value of the "vtt_url" field.
func (m *TranscriptMutation) ClearVttURL() {
	m.vtt_url = nil
	m.clearedFields[transcript.FieldVttURL] = struct{}{}
}

// VttURLCleared returns if the "vtt_url" field was cleared in this mutation.
func (m *TranscriptMutation) VttURLCleared() bool {
	_, ok := m.clearedFields[transcript.FieldVttURL]
	return ok
}

// ResetVttURL resets all changes to the "vtt_url" field.
func (m *TranscriptMutation) ResetVttURL() {
	m.vtt_url = nil
	delete(m.clearedFields, transcript.FieldVttURL)
}

// SetRawURL sets the "raw_url" field.
func (m *TranscriptMutation) SetRawURL(s string) {
	m.raw_url = &s
}

// RawURL returns the value of the "raw_url" field in the mutation.
func (m *TranscriptMutation) RawURL() (r string, exists bool) {
	v := m.raw_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRawURL returns the old "raw_url" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldRawURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawURL: %w", err)
	}
	return oldValue.RawURL, nil
}

// ClearRawURL clears the value of the "raw_url" field.
func (m *TranscriptMutation) ClearRawURL() {
	m.raw_url = nil
	m.clearedFields[transcript.FieldRawURL] = struct{}{}
}

// RawURLCleared returns if the "raw_url" field was cleared in this mutation.
func (m *TranscriptMutation) RawURLCleared() bool {
	_, ok := m.clearedFields[transcript.FieldRawURL]
	return ok
}

// ResetRawURL resets all changes to the "raw_url" field.
func (m *TranscriptMutation) ResetRawURL() {
	m.raw_url = nil
	delete(m.clearedFields, transcript.FieldRawURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TranscriptMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[transcript.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TranscriptMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TranscriptMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TranscriptMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, transcript.FieldTaskID)
	}
	if m.segments != nil {
		fields = append(fields, transcript.FieldSegments)
	}
	if m.raw_payload != nil {
		fields = append(fields, transcript.FieldRawPayload)
	}
	if m.srt_url != nil {
		fields = append(fields, transcript.FieldSrtURL)
	}
	if m.vtt_url != nil {
		fields = append(fields, transcript.FieldVttURL)
	}
	if m.raw_url != nil {
		fields = append(fields, transcript.FieldRawURL)
	}
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldTaskID:
		return m.TaskID()
	case transcript.FieldSegments:
		return m.Segments()
	case transcript.FieldRawPayload:
		return m.RawPayload()
	case transcript.FieldSrtURL:
		return m.SrtURL()
	case transcript.FieldVttURL:
		return m.VttURL()
	case transcript.FieldRawURL:
		return m.RawURL()
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldTaskID:
		return m.OldTaskID(ctx)
	case transcript.FieldSegments:
		return m.OldSegments(ctx)
	case transcript.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case transcript.FieldSrtURL:
		return m.OldSrtURL(ctx)
	case transcript.FieldVttURL:
		return m.OldVttURL(ctx)
	case transcript.FieldRawURL:
		return m.OldRawURL(ctx)
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case transcript.FieldSegments:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegments(v)
		return nil
	case transcript.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case transcript.FieldSrtURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSrtURL(v)
		return nil
	case transcript.FieldVttURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVttURL(v)
		return nil
	case transcript.FieldRawURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawURL(v)
		return nil
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldRawPayload) {
		fields = append(fields, transcript.FieldRawPayload)
	}
	if m.FieldCleared(transcript.FieldSrtURL) {
		fields = append(fields, transcript.FieldSrtURL)
	}
	if m.FieldCleared(transcript.FieldVttURL) {
		fields = append(fields, transcript.FieldVttURL)
	}
	if m.FieldCleared(transcript.FieldRawURL) {
		fields = append(fields, transcript.FieldRawURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	case transcript.FieldSrtURL:
		m.ClearSrtURL()
		return nil
	case transcript.FieldVttURL:
		m.ClearVttURL()
		return nil
	case transcript.FieldRawURL:
		m.ClearRawURL()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldTaskID:
		m.ResetTaskID()
		return nil
	case transcript.FieldSegments:
		m.ResetSegments()
		return nil
	case transcript.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case transcript.FieldSrtURL:
		m.ResetSrtURL()
		return nil
	case transcript.FieldVttURL:
		m.ResetVttURL()
		return nil
	case transcript.FieldRawURL:
		m.ResetRawURL()
		return nil
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, transcript.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, transcript.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	switch name {
	case transcript.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	switch name {
	case transcript.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	switch name {
	case transcript.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Transcript edge %s", name)
}

// TrialUsageMutation represents an operation that mutates the TrialUsage nodes in the graph.
type TrialUsageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	anon_id       *string
	used_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TrialUsage, error)
	predicates    []predicate.TrialUsage
}

var _ ent.Mutation = (*TrialUsageMutation)(nil)

// trialusageOption allows management of the mutation configuration using functional options.
type trialusageOption func(*TrialUsageMutation)

// newTrialUsageMutation creates new mutation for the TrialUsage entity.
func newTrialUsageMutation(c config, op Op, opts ...trialusageOption) *TrialUsageMutation {
	m := &TrialUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeTrialUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrialUsageID sets the ID field of the mutation.
func withTrialUsageID(id string) trialusageOption {
	return func(m *TrialUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *TrialUsage
		)
		m.oldValue = func(ctx context.Context) (*TrialUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrialUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrialUsage sets the old TrialUsage of the mutation.
func withTrialUsage(node *TrialUsage) trialusageOption {
	return func(m *TrialUsageMutation) {
		m.oldValue = func(context.Context) (*TrialUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrialUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrialUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrialUsage entities.
func (m *TrialUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrialUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrialUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrialUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TrialUsageMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TrialUsageMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TrialUsage entity.
// If the TrialUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrialUsageMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TrialUsageMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[trialusage.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TrialUsageMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[trialusage.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TrialUsageMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, trialusage.FieldUserID)
}

// SetAnonID sets the "anon_id" field.
func (m *TrialUsageMutation) SetAnonID(s string) {
	m.anon_id = &s
}

// AnonID returns the value of the "anon_id" field in the mutation.
func (m *TrialUsageMutation) AnonID() (r string, exists bool) {
	v := m.anon_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnonID returns the old "anon_id" field's value of the TrialUsage entity.
// If the TrialUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrialUsageMutation) OldAnonID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnonID: %w", err)
	}
	return oldValue.AnonID, nil
}

// ClearAnonID clears the value of the "anon_id" field.
func (m *TrialUsageMutation) ClearAnonID() {
	m.anon_id = nil
	m.clearedFields[trialusage.FieldAnonID] = struct{}{}
}

// AnonIDCleared returns if the "anon_id" field was cleared in this mutation.
func (m *TrialUsageMutation) AnonIDCleared() bool {
	_, ok := m.clearedFields[trialusage.FieldAnonID]
	return ok
}

// ResetAnonID resets all changes to the "anon_id" field.
func (m *TrialUsageMutation) ResetAnonID() {
	m.anon_id = nil
	delete(m.clearedFields, trialusage.FieldAnonID)
}

// SetUsedAt sets the "used_at" field.
func (m *TrialUsageMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *TrialUsageMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the TrialUsage entity.
// If the TrialUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrialUsageMutation) OldUsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *TrialUsageMutation) ResetUsedAt() {
	m.used_at = nil
}

// Where appends a list predicates to the TrialUsageMutation builder.
func (m *TrialUsageMutation) Where(ps ...predicate.TrialUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrialUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrialUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrialUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrialUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrialUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrialUsage).
func (m *TrialUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrialUsageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, trialusage.FieldUserID)
	}
	if m.anon_id != nil {
		fields = append(fields, trialusage.FieldAnonID)
	}
	if m.used_at != nil {
		fields = append(fields, trialusage.FieldUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrialUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trialusage.FieldUserID:
		return m.UserID()
	case trialusage.FieldAnonID:
		return m.AnonID()
	case trialusage.FieldUsedAt:
		return m.UsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrialUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trialusage.FieldUserID:
		return m.OldUserID(ctx)
	case trialusage.FieldAnonID:
		return m.OldAnonID(ctx)
	case trialusage.FieldUsedAt:
		return m.OldUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrialUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrialUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trialusage.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case trialusage.FieldAnonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnonID(v)
		return nil
	case trialusage.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrialUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrialUsageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrialUsageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrialUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrialUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrialUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trialusage.FieldUserID) {
		fields = append(fields, trialusage.FieldUserID)
	}
	if m.FieldCleared(trialusage.FieldAnonID) {
		fields = append(fields, trialusage.FieldAnonID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrialUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrialUsageMutation) ClearField(name string) error {
	switch name {
	case trialusage.FieldUserID:
		m.ClearUserID()
		return nil
	case trialusage.FieldAnonID:
		m.ClearAnonID()
		return nil
	}
	return fmt.Errorf("unknown TrialUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrialUsageMutation) ResetField(name string) error {
	switch name {
	case trialusage.FieldUserID:
		m.ResetUserID()
		return nil
	case trialusage.FieldAnonID:
		m.ResetAnonID()
		return nil
	case trialusage.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	}
	return fmt.Errorf("unknown TrialUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrialUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrialUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrialUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrialUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrialUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrialUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrialUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrialUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrialUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrialUsage edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	event_id      *string
	source        *string
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WebhookEvent, error)
	predicates    []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *WebhookEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WebhookEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WebhookEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetSource sets the "source" field.
func (m *WebhookEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *WebhookEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WebhookEventMutation) ResetSource() {
	m.source = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.event_id != nil {
		fields = append(fields, webhookevent.FieldEventID)
	}
	if m.source != nil {
		fields = append(fields, webhookevent.FieldSource)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldEventID:
		return m.EventID()
	case webhookevent.FieldSource:
		return m.Source()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldEventID:
		return m.OldEventID(ctx)
	case webhookevent.FieldSource:
		return m.OldSource(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case webhookevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldEventID:
		m.ResetEventID()
		return nil
	case webhookevent.FieldSource:
		m.ResetSource()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
