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
	"github.com/abhisek/cookquest/ent/lessoncontent"
	"github.com/abhisek/cookquest/ent/minigame"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/abhisek/cookquest/ent/minigamequestion"
	"github.com/abhisek/cookquest/ent/predicate"
	"github.com/abhisek/cookquest/ent/quest"
	"github.com/abhisek/cookquest/ent/questprogress"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLessonContent    = "LessonContent"
	TypeMinigame         = "Minigame"
	TypeMinigameAttempt  = "MinigameAttempt"
	TypeMinigameQuestion = "MinigameQuestion"
	TypeQuest            = "Quest"
	TypeQuestProgress    = "QuestProgress"
)

// LessonContentMutation represents an operation that mutates the LessonContent nodes in the graph.
type LessonContentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	quest_id      *int
	addquest_id   *int
	emoji         *string
	heading       *string
	description   *string
	steps         *[]string
	appendsteps   []string
	hints         *[]string
	appendhints   []string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LessonContent, error)
	predicates    []predicate.LessonContent
}

var _ ent.Mutation = (*LessonContentMutation)(nil)

// lessoncontentOption allows management of the mutation configuration using functional options.
type lessoncontentOption func(*LessonContentMutation)

// newLessonContentMutation creates new mutation for the LessonContent entity.
func newLessonContentMutation(c config, op Op, opts ...lessoncontentOption) *LessonContentMutation {
	m := &LessonContentMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonContentID sets the ID field of the mutation.
func withLessonContentID(id int) lessoncontentOption {
	return func(m *LessonContentMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonContent
		)
		m.oldValue = func(ctx context.Context) (*LessonContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonContent sets the old LessonContent of the mutation.
func withLessonContent(node *LessonContent) lessoncontentOption {
	return func(m *LessonContentMutation) {
		m.oldValue = func(context.Context) (*LessonContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonContentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonContentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestID sets the "quest_id" field.
func (m *LessonContentMutation) SetQuestID(i int) {
	m.quest_id = &i
	m.addquest_id = nil
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *LessonContentMutation) QuestID() (r int, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the LessonContent entity.
// If the LessonContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonContentMutation) OldQuestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// AddQuestID adds i to the "quest_id" field.
func (m *LessonContentMutation) AddQuestID(i int) {
	if m.addquest_id != nil {
		*m.addquest_id += i
	} else {
		m.addquest_id = &i
	}
}

// AddedQuestID returns the value that was added to the "quest_id" field in this mutation.
func (m *LessonContentMutation) AddedQuestID() (r int, exists bool) {
	v := m.addquest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *LessonContentMutation) ResetQuestID() {
	m.quest_id = nil
	m.addquest_id = nil
}

// SetEmoji sets the "emoji" field.
func (m *LessonContentMutation) SetEmoji(s string) {
	m.emoji = &s
}

// Emoji returns the value of the "emoji" field in the mutation.
func (m *LessonContentMutation) Emoji() (r string, exists bool) {
	v := m.emoji
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoji returns the old "emoji" field's value of the LessonContent entity.
// If the LessonContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonContentMutation) OldEmoji(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoji: %w", err)
	}
	return oldValue.Emoji, nil
}

// ResetEmoji resets all changes to the "emoji" field.
func (m *LessonContentMutation) ResetEmoji() {
	m.emoji = nil
}

// SetHeading sets the "heading" field.
func (m *LessonContentMutation) SetHeading(s string) {
	m.heading = &s
}

// Heading returns the value of the "heading" field in the mutation.
func (m *LessonContentMutation) Heading() (r string, exists bool) {
	v := m.heading
	if v == nil {
		return
	}
	return *v, true
}

// OldHeading returns the old "heading" field's value of the LessonContent entity.
// If the LessonContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonContentMutation) OldHeading(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeading: %w", err)
	}
	return oldValue.Heading, nil
}

// ResetHeading resets all changes to the "heading" field.
func (m *LessonContentMutation) ResetHeading() {
	m.heading = nil
}

// SetDescription sets the "description" field.
func (m *LessonContentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LessonContentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the LessonContent entity.
// If the LessonContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonContentMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *LessonContentMutation) ResetDescription() {
	m.description = nil
}

// SetSteps sets the "steps" field.
func (m *LessonContentMutation) SetSteps(s []string) {
	m.steps = &s
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *LessonContentMutation) Steps() (r []string, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the LessonContent entity.
// If the LessonContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonContentMutation) OldSteps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds s to the "steps" field.
func (m *LessonContentMutation) AppendSteps(s []string) {
	m.appendsteps = append(m.appendsteps, s...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *LessonContentMutation) AppendedSteps() ([]string, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *LessonContentMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetHints sets the "hints" field.
func (m *LessonContentMutation) SetHints(s []string) {
	m.hints = &s
	m.appendhints = nil
}

// Hints returns the value of the "hints" field in the mutation.
func (m *LessonContentMutation) Hints() (r []string, exists bool) {
	v := m.hints
	if v == nil {
		return
	}
	return *v, true
}

// OldHints returns the old "hints" field's value of the LessonContent entity.
// If the LessonContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonContentMutation) OldHints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHints: %w", err)
	}
	return oldValue.Hints, nil
}

// AppendHints adds s to the "hints" field.
func (m *LessonContentMutation) AppendHints(s []string) {
	m.appendhints = append(m.appendhints, s...)
}

// AppendedHints returns the list of values that were appended to the "hints" field in this mutation.
func (m *LessonContentMutation) AppendedHints() ([]string, bool) {
	if len(m.appendhints) == 0 {
		return nil, false
	}
	return m.appendhints, true
}

// ResetHints resets all changes to the "hints" field.
func (m *LessonContentMutation) ResetHints() {
	m.hints = nil
	m.appendhints = nil
}

// Where appends a list predicates to the LessonContentMutation builder.
func (m *LessonContentMutation) Where(ps ...predicate.LessonContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonContent).
func (m *LessonContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonContentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.quest_id != nil {
		fields = append(fields, lessoncontent.FieldQuestID)
	}
	if m.emoji != nil {
		fields = append(fields, lessoncontent.FieldEmoji)
	}
	if m.heading != nil {
		fields = append(fields, lessoncontent.FieldHeading)
	}
	if m.description != nil {
		fields = append(fields, lessoncontent.FieldDescription)
	}
	if m.steps != nil {
		fields = append(fields, lessoncontent.FieldSteps)
	}
	if m.hints != nil {
		fields = append(fields, lessoncontent.FieldHints)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessoncontent.FieldQuestID:
		return m.QuestID()
	case lessoncontent.FieldEmoji:
		return m.Emoji()
	case lessoncontent.FieldHeading:
		return m.Heading()
	case lessoncontent.FieldDescription:
		return m.Description()
	case lessoncontent.FieldSteps:
		return m.Steps()
	case lessoncontent.FieldHints:
		return m.Hints()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessoncontent.FieldQuestID:
		return m.OldQuestID(ctx)
	case lessoncontent.FieldEmoji:
		return m.OldEmoji(ctx)
	case lessoncontent.FieldHeading:
		return m.OldHeading(ctx)
	case lessoncontent.FieldDescription:
		return m.OldDescription(ctx)
	case lessoncontent.FieldSteps:
		return m.OldSteps(ctx)
	case lessoncontent.FieldHints:
		return m.OldHints(ctx)
	}
	return nil, fmt.Errorf("unknown LessonContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessoncontent.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case lessoncontent.FieldEmoji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoji(v)
		return nil
	case lessoncontent.FieldHeading:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeading(v)
		return nil
	case lessoncontent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case lessoncontent.FieldSteps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case lessoncontent.FieldHints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHints(v)
		return nil
	}
	return fmt.Errorf("unknown LessonContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonContentMutation) AddedFields() []string {
	var fields []string
	if m.addquest_id != nil {
		fields = append(fields, lessoncontent.FieldQuestID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessoncontent.FieldQuestID:
		return m.AddedQuestID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessoncontent.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestID(v)
		return nil
	}
	return fmt.Errorf("unknown LessonContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonContentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonContentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonContentMutation) ResetField(name string) error {
	switch name {
	case lessoncontent.FieldQuestID:
		m.ResetQuestID()
		return nil
	case lessoncontent.FieldEmoji:
		m.ResetEmoji()
		return nil
	case lessoncontent.FieldHeading:
		m.ResetHeading()
		return nil
	case lessoncontent.FieldDescription:
		m.ResetDescription()
		return nil
	case lessoncontent.FieldSteps:
		m.ResetSteps()
		return nil
	case lessoncontent.FieldHints:
		m.ResetHints()
		return nil
	}
	return fmt.Errorf("unknown LessonContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonContentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonContentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonContentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonContentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonContent edge %s", name)
}

// MinigameMutation represents an operation that mutates the Minigame nodes in the graph.
type MinigameMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	quest_id           *int
	addquest_id        *int
	title              *string
	game_type          *string
	description        *string
	difficulty         *string
	enabled            *bool
	time_limit_secs    *int
	addtime_limit_secs *int
	required_score     *int
	addrequired_score  *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Minigame, error)
	predicates         []predicate.Minigame
}

var _ ent.Mutation = (*MinigameMutation)(nil)

// minigameOption allows management of the mutation configuration using functional options.
type minigameOption func(*MinigameMutation)

// newMinigameMutation creates new mutation for the Minigame entity.
func newMinigameMutation(c config, op Op, opts ...minigameOption) *MinigameMutation {
	m := &MinigameMutation{
		config:        c,
		op:            op,
		typ:           TypeMinigame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMinigameID sets the ID field of the mutation.
func withMinigameID(id int) minigameOption {
	return func(m *MinigameMutation) {
		var (
			err   error
			once  sync.Once
			value *Minigame
		)
		m.oldValue = func(ctx context.Context) (*Minigame, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Minigame.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMinigame sets the old Minigame of the mutation.
func withMinigame(node *Minigame) minigameOption {
	return func(m *MinigameMutation) {
		m.oldValue = func(context.Context) (*Minigame, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MinigameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MinigameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MinigameMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MinigameMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Minigame.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestID sets the "quest_id" field.
func (m *MinigameMutation) SetQuestID(i int) {
	m.quest_id = &i
	m.addquest_id = nil
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *MinigameMutation) QuestID() (r int, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldQuestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// AddQuestID adds i to the "quest_id" field.
func (m *MinigameMutation) AddQuestID(i int) {
	if m.addquest_id != nil {
		*m.addquest_id += i
	} else {
		m.addquest_id = &i
	}
}

// AddedQuestID returns the value that was added to the "quest_id" field in this mutation.
func (m *MinigameMutation) AddedQuestID() (r int, exists bool) {
	v := m.addquest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *MinigameMutation) ResetQuestID() {
	m.quest_id = nil
	m.addquest_id = nil
}

// SetTitle sets the "title" field.
func (m *MinigameMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MinigameMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *MinigameMutation) ResetTitle() {
	m.title = nil
}

// SetGameType sets the "game_type" field.
func (m *MinigameMutation) SetGameType(s string) {
	m.game_type = &s
}

// GameType returns the value of the "game_type" field in the mutation.
func (m *MinigameMutation) GameType() (r string, exists bool) {
	v := m.game_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGameType returns the old "game_type" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldGameType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameType: %w", err)
	}
	return oldValue.GameType, nil
}

// ResetGameType resets all changes to the "game_type" field.
func (m *MinigameMutation) ResetGameType() {
	m.game_type = nil
}

// SetDescription sets the "description" field.
func (m *MinigameMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MinigameMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *MinigameMutation) ResetDescription() {
	m.description = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *MinigameMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *MinigameMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *MinigameMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetEnabled sets the "enabled" field.
func (m *MinigameMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *MinigameMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldEnabled(ctx context.Context) (v bool, err error) {
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
func (m *MinigameMutation) ResetEnabled() {
	m.enabled = nil
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (m *MinigameMutation) SetTimeLimitSecs(i int) {
	m.time_limit_secs = &i
	m.addtime_limit_secs = nil
}

// TimeLimitSecs returns the value of the "time_limit_secs" field in the mutation.
func (m *MinigameMutation) TimeLimitSecs() (r int, exists bool) {
	v := m.time_limit_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimitSecs returns the old "time_limit_secs" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldTimeLimitSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimitSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimitSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimitSecs: %w", err)
	}
	return oldValue.TimeLimitSecs, nil
}

// AddTimeLimitSecs adds i to the "time_limit_secs" field.
func (m *MinigameMutation) AddTimeLimitSecs(i int) {
	if m.addtime_limit_secs != nil {
		*m.addtime_limit_secs += i
	} else {
		m.addtime_limit_secs = &i
	}
}

// AddedTimeLimitSecs returns the value that was added to the "time_limit_secs" field in this mutation.
func (m *MinigameMutation) AddedTimeLimitSecs() (r int, exists bool) {
	v := m.addtime_limit_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimitSecs resets all changes to the "time_limit_secs" field.
func (m *MinigameMutation) ResetTimeLimitSecs() {
	m.time_limit_secs = nil
	m.addtime_limit_secs = nil
}

// SetRequiredScore sets the "required_score" field.
func (m *MinigameMutation) SetRequiredScore(i int) {
	m.required_score = &i
	m.addrequired_score = nil
}

// RequiredScore returns the value of the "required_score" field in the mutation.
func (m *MinigameMutation) RequiredScore() (r int, exists bool) {
	v := m.required_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredScore returns the old "required_score" field's value of the Minigame entity.
// If the Minigame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameMutation) OldRequiredScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredScore: %w", err)
	}
	return oldValue.RequiredScore, nil
}

// AddRequiredScore adds i to the "required_score" field.
func (m *MinigameMutation) AddRequiredScore(i int) {
	if m.addrequired_score != nil {
		*m.addrequired_score += i
	} else {
		m.addrequired_score = &i
	}
}

// AddedRequiredScore returns the value that was added to the "required_score" field in this mutation.
func (m *MinigameMutation) AddedRequiredScore() (r int, exists bool) {
	v := m.addrequired_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequiredScore resets all changes to the "required_score" field.
func (m *MinigameMutation) ResetRequiredScore() {
	m.required_score = nil
	m.addrequired_score = nil
}

// Where appends a list predicates to the MinigameMutation builder.
func (m *MinigameMutation) Where(ps ...predicate.Minigame) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MinigameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MinigameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Minigame, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MinigameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MinigameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Minigame).
func (m *MinigameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MinigameMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.quest_id != nil {
		fields = append(fields, minigame.FieldQuestID)
	}
	if m.title != nil {
		fields = append(fields, minigame.FieldTitle)
	}
	if m.game_type != nil {
		fields = append(fields, minigame.FieldGameType)
	}
	if m.description != nil {
		fields = append(fields, minigame.FieldDescription)
	}
	if m.difficulty != nil {
		fields = append(fields, minigame.FieldDifficulty)
	}
	if m.enabled != nil {
		fields = append(fields, minigame.FieldEnabled)
	}
	if m.time_limit_secs != nil {
		fields = append(fields, minigame.FieldTimeLimitSecs)
	}
	if m.required_score != nil {
		fields = append(fields, minigame.FieldRequiredScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MinigameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case minigame.FieldQuestID:
		return m.QuestID()
	case minigame.FieldTitle:
		return m.Title()
	case minigame.FieldGameType:
		return m.GameType()
	case minigame.FieldDescription:
		return m.Description()
	case minigame.FieldDifficulty:
		return m.Difficulty()
	case minigame.FieldEnabled:
		return m.Enabled()
	case minigame.FieldTimeLimitSecs:
		return m.TimeLimitSecs()
	case minigame.FieldRequiredScore:
		return m.RequiredScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MinigameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case minigame.FieldQuestID:
		return m.OldQuestID(ctx)
	case minigame.FieldTitle:
		return m.OldTitle(ctx)
	case minigame.FieldGameType:
		return m.OldGameType(ctx)
	case minigame.FieldDescription:
		return m.OldDescription(ctx)
	case minigame.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case minigame.FieldEnabled:
		return m.OldEnabled(ctx)
	case minigame.FieldTimeLimitSecs:
		return m.OldTimeLimitSecs(ctx)
	case minigame.FieldRequiredScore:
		return m.OldRequiredScore(ctx)
	}
	return nil, fmt.Errorf("unknown Minigame field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MinigameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case minigame.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case minigame.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case minigame.FieldGameType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameType(v)
		return nil
	case minigame.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case minigame.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case minigame.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case minigame.FieldTimeLimitSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimitSecs(v)
		return nil
	case minigame.FieldRequiredScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredScore(v)
		return nil
	}
	return fmt.Errorf("unknown Minigame field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MinigameMutation) AddedFields() []string {
	var fields []string
	if m.addquest_id != nil {
		fields = append(fields, minigame.FieldQuestID)
	}
	if m.addtime_limit_secs != nil {
		fields = append(fields, minigame.FieldTimeLimitSecs)
	}
	if m.addrequired_score != nil {
		fields = append(fields, minigame.FieldRequiredScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MinigameMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case minigame.FieldQuestID:
		return m.AddedQuestID()
	case minigame.FieldTimeLimitSecs:
		return m.AddedTimeLimitSecs()
	case minigame.FieldRequiredScore:
		return m.AddedRequiredScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MinigameMutation) AddField(name string, value ent.Value) error {
	switch name {
	case minigame.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestID(v)
		return nil
	case minigame.FieldTimeLimitSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimitSecs(v)
		return nil
	case minigame.FieldRequiredScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequiredScore(v)
		return nil
	}
	return fmt.Errorf("unknown Minigame numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MinigameMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MinigameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MinigameMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Minigame nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MinigameMutation) ResetField(name string) error {
	switch name {
	case minigame.FieldQuestID:
		m.ResetQuestID()
		return nil
	case minigame.FieldTitle:
		m.ResetTitle()
		return nil
	case minigame.FieldGameType:
		m.ResetGameType()
		return nil
	case minigame.FieldDescription:
		m.ResetDescription()
		return nil
	case minigame.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case minigame.FieldEnabled:
		m.ResetEnabled()
		return nil
	case minigame.FieldTimeLimitSecs:
		m.ResetTimeLimitSecs()
		return nil
	case minigame.FieldRequiredScore:
		m.ResetRequiredScore()
		return nil
	}
	return fmt.Errorf("unknown Minigame field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MinigameMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MinigameMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MinigameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MinigameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MinigameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MinigameMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MinigameMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Minigame unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MinigameMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Minigame edge %s", name)
}

// MinigameAttemptMutation represents an operation that mutates the MinigameAttempt nodes in the graph.
type MinigameAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	minigame_id        *int
	addminigame_id     *int
	quest_id           *int
	addquest_id        *int
	learner_id         *string
	score              *int
	addscore           *int
	total_questions    *int
	addtotal_questions *int
	correct_answers    *int
	addcorrect_answers *int
	time_spent_secs    *int
	addtime_spent_secs *int
	passed             *bool
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MinigameAttempt, error)
	predicates         []predicate.MinigameAttempt
}

var _ ent.Mutation = (*MinigameAttemptMutation)(nil)

// minigameattemptOption allows management of the mutation configuration using functional options.
type minigameattemptOption func(*MinigameAttemptMutation)

// newMinigameAttemptMutation creates new mutation for the MinigameAttempt entity.
func newMinigameAttemptMutation(c config, op Op, opts ...minigameattemptOption) *MinigameAttemptMutation {
	m := &MinigameAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeMinigameAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMinigameAttemptID sets the ID field of the mutation.
func withMinigameAttemptID(id uuid.UUID) minigameattemptOption {
	return func(m *MinigameAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *MinigameAttempt
		)
		m.oldValue = func(ctx context.Context) (*MinigameAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MinigameAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMinigameAttempt sets the old MinigameAttempt of the mutation.
func withMinigameAttempt(node *MinigameAttempt) minigameattemptOption {
	return func(m *MinigameAttemptMutation) {
		m.oldValue = func(context.Context) (*MinigameAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MinigameAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MinigameAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MinigameAttempt entities.
func (m *MinigameAttemptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MinigameAttemptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MinigameAttemptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MinigameAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMinigameID sets the "minigame_id" field.
func (m *MinigameAttemptMutation) SetMinigameID(i int) {
	m.minigame_id = &i
	m.addminigame_id = nil
}

// MinigameID returns the value of the "minigame_id" field in the mutation.
func (m *MinigameAttemptMutation) MinigameID() (r int, exists bool) {
	v := m.minigame_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMinigameID returns the old "minigame_id" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldMinigameID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinigameID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinigameID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinigameID: %w", err)
	}
	return oldValue.MinigameID, nil
}

// AddMinigameID adds i to the "minigame_id" field.
func (m *MinigameAttemptMutation) AddMinigameID(i int) {
	if m.addminigame_id != nil {
		*m.addminigame_id += i
	} else {
		m.addminigame_id = &i
	}
}

// AddedMinigameID returns the value that was added to the "minigame_id" field in this mutation.
func (m *MinigameAttemptMutation) AddedMinigameID() (r int, exists bool) {
	v := m.addminigame_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinigameID resets all changes to the "minigame_id" field.
func (m *MinigameAttemptMutation) ResetMinigameID() {
	m.minigame_id = nil
	m.addminigame_id = nil
}

// SetQuestID sets the "quest_id" field.
func (m *MinigameAttemptMutation) SetQuestID(i int) {
	m.quest_id = &i
	m.addquest_id = nil
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *MinigameAttemptMutation) QuestID() (r int, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldQuestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// AddQuestID adds i to the "quest_id" field.
func (m *MinigameAttemptMutation) AddQuestID(i int) {
	if m.addquest_id != nil {
		*m.addquest_id += i
	} else {
		m.addquest_id = &i
	}
}

// AddedQuestID returns the value that was added to the "quest_id" field in this mutation.
func (m *MinigameAttemptMutation) AddedQuestID() (r int, exists bool) {
	v := m.addquest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *MinigameAttemptMutation) ResetQuestID() {
	m.quest_id = nil
	m.addquest_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *MinigameAttemptMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *MinigameAttemptMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *MinigameAttemptMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetScore sets the "score" field.
func (m *MinigameAttemptMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *MinigameAttemptMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *MinigameAttemptMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *MinigameAttemptMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *MinigameAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *MinigameAttemptMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *MinigameAttemptMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *MinigameAttemptMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *MinigameAttemptMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *MinigameAttemptMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *MinigameAttemptMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *MinigameAttemptMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *MinigameAttemptMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *MinigameAttemptMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *MinigameAttemptMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *MinigameAttemptMutation) SetTimeSpentSecs(i int) {
	m.time_spent_secs = &i
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *MinigameAttemptMutation) TimeSpentSecs() (r int, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldTimeSpentSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (m *MinigameAttemptMutation) AddTimeSpentSecs(i int) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += i
	} else {
		m.addtime_spent_secs = &i
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *MinigameAttemptMutation) AddedTimeSpentSecs() (r int, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *MinigameAttemptMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// SetPassed sets the "passed" field.
func (m *MinigameAttemptMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *MinigameAttemptMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *MinigameAttemptMutation) ResetPassed() {
	m.passed = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MinigameAttemptMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MinigameAttemptMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MinigameAttempt entity.
// If the MinigameAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameAttemptMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
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

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MinigameAttemptMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the MinigameAttemptMutation builder.
func (m *MinigameAttemptMutation) Where(ps ...predicate.MinigameAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MinigameAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MinigameAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MinigameAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MinigameAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MinigameAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MinigameAttempt).
func (m *MinigameAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MinigameAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.minigame_id != nil {
		fields = append(fields, minigameattempt.FieldMinigameID)
	}
	if m.quest_id != nil {
		fields = append(fields, minigameattempt.FieldQuestID)
	}
	if m.learner_id != nil {
		fields = append(fields, minigameattempt.FieldLearnerID)
	}
	if m.score != nil {
		fields = append(fields, minigameattempt.FieldScore)
	}
	if m.total_questions != nil {
		fields = append(fields, minigameattempt.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, minigameattempt.FieldCorrectAnswers)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, minigameattempt.FieldTimeSpentSecs)
	}
	if m.passed != nil {
		fields = append(fields, minigameattempt.FieldPassed)
	}
	if m.completed_at != nil {
		fields = append(fields, minigameattempt.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MinigameAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case minigameattempt.FieldMinigameID:
		return m.MinigameID()
	case minigameattempt.FieldQuestID:
		return m.QuestID()
	case minigameattempt.FieldLearnerID:
		return m.LearnerID()
	case minigameattempt.FieldScore:
		return m.Score()
	case minigameattempt.FieldTotalQuestions:
		return m.TotalQuestions()
	case minigameattempt.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case minigameattempt.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	case minigameattempt.FieldPassed:
		return m.Passed()
	case minigameattempt.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MinigameAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case minigameattempt.FieldMinigameID:
		return m.OldMinigameID(ctx)
	case minigameattempt.FieldQuestID:
		return m.OldQuestID(ctx)
	case minigameattempt.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case minigameattempt.FieldScore:
		return m.OldScore(ctx)
	case minigameattempt.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case minigameattempt.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case minigameattempt.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	case minigameattempt.FieldPassed:
		return m.OldPassed(ctx)
	case minigameattempt.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MinigameAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MinigameAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case minigameattempt.FieldMinigameID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinigameID(v)
		return nil
	case minigameattempt.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case minigameattempt.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case minigameattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case minigameattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case minigameattempt.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case minigameattempt.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	case minigameattempt.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case minigameattempt.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MinigameAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MinigameAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addminigame_id != nil {
		fields = append(fields, minigameattempt.FieldMinigameID)
	}
	if m.addquest_id != nil {
		fields = append(fields, minigameattempt.FieldQuestID)
	}
	if m.addscore != nil {
		fields = append(fields, minigameattempt.FieldScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, minigameattempt.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, minigameattempt.FieldCorrectAnswers)
	}
	if m.addtime_spent_secs != nil {
		fields = append(fields, minigameattempt.FieldTimeSpentSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MinigameAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case minigameattempt.FieldMinigameID:
		return m.AddedMinigameID()
	case minigameattempt.FieldQuestID:
		return m.AddedQuestID()
	case minigameattempt.FieldScore:
		return m.AddedScore()
	case minigameattempt.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case minigameattempt.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case minigameattempt.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MinigameAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case minigameattempt.FieldMinigameID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinigameID(v)
		return nil
	case minigameattempt.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestID(v)
		return nil
	case minigameattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case minigameattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case minigameattempt.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case minigameattempt.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	}
	return fmt.Errorf("unknown MinigameAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MinigameAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MinigameAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MinigameAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MinigameAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MinigameAttemptMutation) ResetField(name string) error {
	switch name {
	case minigameattempt.FieldMinigameID:
		m.ResetMinigameID()
		return nil
	case minigameattempt.FieldQuestID:
		m.ResetQuestID()
		return nil
	case minigameattempt.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case minigameattempt.FieldScore:
		m.ResetScore()
		return nil
	case minigameattempt.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case minigameattempt.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case minigameattempt.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	case minigameattempt.FieldPassed:
		m.ResetPassed()
		return nil
	case minigameattempt.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MinigameAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MinigameAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MinigameAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MinigameAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MinigameAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MinigameAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MinigameAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MinigameAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MinigameAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MinigameAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MinigameAttempt edge %s", name)
}

// MinigameQuestionMutation represents an operation that mutates the MinigameQuestion nodes in the graph.
type MinigameQuestionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	minigame_id             *int
	addminigame_id          *int
	seq                     *int
	addseq                  *int
	question_type           *string
	question_text           *string
	left_items              *[]string
	appendleft_items        []string
	right_items             *[]string
	appendright_items       []string
	correct_matches         *[]map[string]int
	appendcorrect_matches   []map[string]int
	blank_text              *string
	correct_answers         *[]string
	appendcorrect_answers   []string
	options                 *[]string
	appendoptions           []string
	correct_option_index    *int
	addcorrect_option_index *int
	image_url               *string
	associated_terms        *[]string
	appendassociated_terms  []string
	explanation             *string
	points                  *int
	addpoints               *int
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*MinigameQuestion, error)
	predicates              []predicate.MinigameQuestion
}

var _ ent.Mutation = (*MinigameQuestionMutation)(nil)

// minigamequestionOption allows management of the mutation configuration using functional options.
type minigamequestionOption func(*MinigameQuestionMutation)

// newMinigameQuestionMutation creates new mutation for the MinigameQuestion entity.
func newMinigameQuestionMutation(c config, op Op, opts ...minigamequestionOption) *MinigameQuestionMutation {
	m := &MinigameQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeMinigameQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMinigameQuestionID sets the ID field of the mutation.
func withMinigameQuestionID(id int) minigamequestionOption {
	return func(m *MinigameQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *MinigameQuestion
		)
		m.oldValue = func(ctx context.Context) (*MinigameQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MinigameQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMinigameQuestion sets the old MinigameQuestion of the mutation.
func withMinigameQuestion(node *MinigameQuestion) minigamequestionOption {
	return func(m *MinigameQuestionMutation) {
		m.oldValue = func(context.Context) (*MinigameQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MinigameQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MinigameQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MinigameQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MinigameQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MinigameQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMinigameID sets the "minigame_id" field.
func (m *MinigameQuestionMutation) SetMinigameID(i int) {
	m.minigame_id = &i
	m.addminigame_id = nil
}

// MinigameID returns the value of the "minigame_id" field in the mutation.
func (m *MinigameQuestionMutation) MinigameID() (r int, exists bool) {
	v := m.minigame_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMinigameID returns the old "minigame_id" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldMinigameID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinigameID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinigameID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinigameID: %w", err)
	}
	return oldValue.MinigameID, nil
}

// AddMinigameID adds i to the "minigame_id" field.
func (m *MinigameQuestionMutation) AddMinigameID(i int) {
	if m.addminigame_id != nil {
		*m.addminigame_id += i
	} else {
		m.addminigame_id = &i
	}
}

// AddedMinigameID returns the value that was added to the "minigame_id" field in this mutation.
func (m *MinigameQuestionMutation) AddedMinigameID() (r int, exists bool) {
	v := m.addminigame_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinigameID resets all changes to the "minigame_id" field.
func (m *MinigameQuestionMutation) ResetMinigameID() {
	m.minigame_id = nil
	m.addminigame_id = nil
}

// SetSeq sets the "seq" field.
func (m *MinigameQuestionMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *MinigameQuestionMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *MinigameQuestionMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *MinigameQuestionMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *MinigameQuestionMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetQuestionType sets the "question_type" field.
func (m *MinigameQuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *MinigameQuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *MinigameQuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetQuestionText sets the "question_text" field.
func (m *MinigameQuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *MinigameQuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *MinigameQuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetLeftItems sets the "left_items" field.
func (m *MinigameQuestionMutation) SetLeftItems(s []string) {
	m.left_items = &s
	m.appendleft_items = nil
}

// LeftItems returns the value of the "left_items" field in the mutation.
func (m *MinigameQuestionMutation) LeftItems() (r []string, exists bool) {
	v := m.left_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftItems returns the old "left_items" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldLeftItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftItems: %w", err)
	}
	return oldValue.LeftItems, nil
}

// AppendLeftItems adds s to the "left_items" field.
func (m *MinigameQuestionMutation) AppendLeftItems(s []string) {
	m.appendleft_items = append(m.appendleft_items, s...)
}

// AppendedLeftItems returns the list of values that were appended to the "left_items" field in this mutation.
func (m *MinigameQuestionMutation) AppendedLeftItems() ([]string, bool) {
	if len(m.appendleft_items) == 0 {
		return nil, false
	}
	return m.appendleft_items, true
}

// ClearLeftItems clears the value of the "left_items" field.
func (m *MinigameQuestionMutation) ClearLeftItems() {
	m.left_items = nil
	m.appendleft_items = nil
	m.clearedFields[minigamequestion.FieldLeftItems] = struct{}{}
}

// LeftItemsCleared returns if the "left_items" field was cleared in this mutation.
func (m *MinigameQuestionMutation) LeftItemsCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldLeftItems]
	return ok
}

// ResetLeftItems resets all changes to the "left_items" field.
func (m *MinigameQuestionMutation) ResetLeftItems() {
	m.left_items = nil
	m.appendleft_items = nil
	delete(m.clearedFields, minigamequestion.FieldLeftItems)
}

// SetRightItems sets the "right_items" field.
func (m *MinigameQuestionMutation) SetRightItems(s []string) {
	m.right_items = &s
	m.appendright_items = nil
}

// RightItems returns the value of the "right_items" field in the mutation.
func (m *MinigameQuestionMutation) RightItems() (r []string, exists bool) {
	v := m.right_items
	if v == nil {
		return
	}
	return *v, true
}

// OldRightItems returns the old "right_items" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldRightItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRightItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRightItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRightItems: %w", err)
	}
	return oldValue.RightItems, nil
}

// AppendRightItems adds s to the "right_items" field.
func (m *MinigameQuestionMutation) AppendRightItems(s []string) {
	m.appendright_items = append(m.appendright_items, s...)
}

// AppendedRightItems returns the list of values that were appended to the "right_items" field in this mutation.
func (m *MinigameQuestionMutation) AppendedRightItems() ([]string, bool) {
	if len(m.appendright_items) == 0 {
		return nil, false
	}
	return m.appendright_items, true
}

// ClearRightItems clears the value of the "right_items" field.
func (m *MinigameQuestionMutation) ClearRightItems() {
	m.right_items = nil
	m.appendright_items = nil
	m.clearedFields[minigamequestion.FieldRightItems] = struct{}{}
}

// RightItemsCleared returns if the "right_items" field was cleared in this mutation.
func (m *MinigameQuestionMutation) RightItemsCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldRightItems]
	return ok
}

// ResetRightItems resets all changes to the "right_items" field.
func (m *MinigameQuestionMutation) ResetRightItems() {
	m.right_items = nil
	m.appendright_items = nil
	delete(m.clearedFields, minigamequestion.FieldRightItems)
}

// SetCorrectMatches sets the "correct_matches" field.
func (m *MinigameQuestionMutation) SetCorrectMatches(value []map[string]int) {
	m.correct_matches = &value
	m.appendcorrect_matches = nil
}

// CorrectMatches returns the value of the "correct_matches" field in the mutation.
func (m *MinigameQuestionMutation) CorrectMatches() (r []map[string]int, exists bool) {
	v := m.correct_matches
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectMatches returns the old "correct_matches" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldCorrectMatches(ctx context.Context) (v []map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectMatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectMatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectMatches: %w", err)
	}
	return oldValue.CorrectMatches, nil
}

// AppendCorrectMatches adds value to the "correct_matches" field.
func (m *MinigameQuestionMutation) AppendCorrectMatches(value []map[string]int) {
	m.appendcorrect_matches = append(m.appendcorrect_matches, value...)
}

// AppendedCorrectMatches returns the list of values that were appended to the "correct_matches" field in this mutation.
func (m *MinigameQuestionMutation) AppendedCorrectMatches() ([]map[string]int, bool) {
	if len(m.appendcorrect_matches) == 0 {
		return nil, false
	}
	return m.appendcorrect_matches, true
}

// ClearCorrectMatches clears the value of the "correct_matches" field.
func (m *MinigameQuestionMutation) ClearCorrectMatches() {
	m.correct_matches = nil
	m.appendcorrect_matches = nil
	m.clearedFields[minigamequestion.FieldCorrectMatches] = struct{}{}
}

// CorrectMatchesCleared returns if the "correct_matches" field was cleared in this mutation.
func (m *MinigameQuestionMutation) CorrectMatchesCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldCorrectMatches]
	return ok
}

// ResetCorrectMatches resets all changes to the "correct_matches" field.
func (m *MinigameQuestionMutation) ResetCorrectMatches() {
	m.correct_matches = nil
	m.appendcorrect_matches = nil
	delete(m.clearedFields, minigamequestion.FieldCorrectMatches)
}

// SetBlankText sets the "blank_text" field.
func (m *MinigameQuestionMutation) SetBlankText(s string) {
	m.blank_text = &s
}

// BlankText returns the value of the "blank_text" field in the mutation.
func (m *MinigameQuestionMutation) BlankText() (r string, exists bool) {
	v := m.blank_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBlankText returns the old "blank_text" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldBlankText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlankText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlankText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlankText: %w", err)
	}
	return oldValue.BlankText, nil
}

// ClearBlankText clears the value of the "blank_text" field.
func (m *MinigameQuestionMutation) ClearBlankText() {
	m.blank_text = nil
	m.clearedFields[minigamequestion.FieldBlankText] = struct{}{}
}

// BlankTextCleared returns if the "blank_text" field was cleared in this mutation.
func (m *MinigameQuestionMutation) BlankTextCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldBlankText]
	return ok
}

// ResetBlankText resets all changes to the "blank_text" field.
func (m *MinigameQuestionMutation) ResetBlankText() {
	m.blank_text = nil
	delete(m.clearedFields, minigamequestion.FieldBlankText)
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *MinigameQuestionMutation) SetCorrectAnswers(s []string) {
	m.correct_answers = &s
	m.appendcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *MinigameQuestionMutation) CorrectAnswers() (r []string, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldCorrectAnswers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AppendCorrectAnswers adds s to the "correct_answers" field.
func (m *MinigameQuestionMutation) AppendCorrectAnswers(s []string) {
	m.appendcorrect_answers = append(m.appendcorrect_answers, s...)
}

// AppendedCorrectAnswers returns the list of values that were appended to the "correct_answers" field in this mutation.
func (m *MinigameQuestionMutation) AppendedCorrectAnswers() ([]string, bool) {
	if len(m.appendcorrect_answers) == 0 {
		return nil, false
	}
	return m.appendcorrect_answers, true
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (m *MinigameQuestionMutation) ClearCorrectAnswers() {
	m.correct_answers = nil
	m.appendcorrect_answers = nil
	m.clearedFields[minigamequestion.FieldCorrectAnswers] = struct{}{}
}

// CorrectAnswersCleared returns if the "correct_answers" field was cleared in this mutation.
func (m *MinigameQuestionMutation) CorrectAnswersCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldCorrectAnswers]
	return ok
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *MinigameQuestionMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.appendcorrect_answers = nil
	delete(m.clearedFields, minigamequestion.FieldCorrectAnswers)
}

// SetOptions sets the "options" field.
func (m *MinigameQuestionMutation) SetOptions(s []string) {
	m.options = &s
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *MinigameQuestionMutation) Options() (r []string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds s to the "options" field.
func (m *MinigameQuestionMutation) AppendOptions(s []string) {
	m.appendoptions = append(m.appendoptions, s...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *MinigameQuestionMutation) AppendedOptions() ([]string, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *MinigameQuestionMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[minigamequestion.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *MinigameQuestionMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *MinigameQuestionMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, minigamequestion.FieldOptions)
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (m *MinigameQuestionMutation) SetCorrectOptionIndex(i int) {
	m.correct_option_index = &i
	m.addcorrect_option_index = nil
}

// CorrectOptionIndex returns the value of the "correct_option_index" field in the mutation.
func (m *MinigameQuestionMutation) CorrectOptionIndex() (r int, exists bool) {
	v := m.correct_option_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectOptionIndex returns the old "correct_option_index" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldCorrectOptionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectOptionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectOptionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectOptionIndex: %w", err)
	}
	return oldValue.CorrectOptionIndex, nil
}

// AddCorrectOptionIndex adds i to the "correct_option_index" field.
func (m *MinigameQuestionMutation) AddCorrectOptionIndex(i int) {
	if m.addcorrect_option_index != nil {
		*m.addcorrect_option_index += i
	} else {
		m.addcorrect_option_index = &i
	}
}

// AddedCorrectOptionIndex returns the value that was added to the "correct_option_index" field in this mutation.
func (m *MinigameQuestionMutation) AddedCorrectOptionIndex() (r int, exists bool) {
	v := m.addcorrect_option_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectOptionIndex resets all changes to the "correct_option_index" field.
func (m *MinigameQuestionMutation) ResetCorrectOptionIndex() {
	m.correct_option_index = nil
	m.addcorrect_option_index = nil
}

// SetImageURL sets the "image_url" field.
func (m *MinigameQuestionMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *MinigameQuestionMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *MinigameQuestionMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[minigamequestion.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *MinigameQuestionMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *MinigameQuestionMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, minigamequestion.FieldImageURL)
}

// SetAssociatedTerms sets the "associated_terms" field.
func (m *MinigameQuestionMutation) SetAssociatedTerms(s []string) {
	m.associated_terms = &s
	m.appendassociated_terms = nil
}

// AssociatedTerms returns the value of the "associated_terms" field in the mutation.
func (m *MinigameQuestionMutation) AssociatedTerms() (r []string, exists bool) {
	v := m.associated_terms
	if v == nil {
		return
	}
	return *v, true
}

// OldAssociatedTerms returns the old "associated_terms" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldAssociatedTerms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssociatedTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssociatedTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssociatedTerms: %w", err)
	}
	return oldValue.AssociatedTerms, nil
}

// AppendAssociatedTerms adds s to the "associated_terms" field.
func (m *MinigameQuestionMutation) AppendAssociatedTerms(s []string) {
	m.appendassociated_terms = append(m.appendassociated_terms, s...)
}

// AppendedAssociatedTerms returns the list of values that were appended to the "associated_terms" field in this mutation.
func (m *MinigameQuestionMutation) AppendedAssociatedTerms() ([]string, bool) {
	if len(m.appendassociated_terms) == 0 {
		return nil, false
	}
	return m.appendassociated_terms, true
}

// ClearAssociatedTerms clears the value of the "associated_terms" field.
func (m *MinigameQuestionMutation) ClearAssociatedTerms() {
	m.associated_terms = nil
	m.appendassociated_terms = nil
	m.clearedFields[minigamequestion.FieldAssociatedTerms] = struct{}{}
}

// AssociatedTermsCleared returns if the "associated_terms" field was cleared in this mutation.
func (m *MinigameQuestionMutation) AssociatedTermsCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldAssociatedTerms]
	return ok
}

// ResetAssociatedTerms resets all changes to the "associated_terms" field.
func (m *MinigameQuestionMutation) ResetAssociatedTerms() {
	m.associated_terms = nil
	m.appendassociated_terms = nil
	delete(m.clearedFields, minigamequestion.FieldAssociatedTerms)
}

// SetExplanation sets the "explanation" field.
func (m *MinigameQuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *MinigameQuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *MinigameQuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[minigamequestion.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *MinigameQuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[minigamequestion.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *MinigameQuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, minigamequestion.FieldExplanation)
}

// SetPoints sets the "points" field.
func (m *MinigameQuestionMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *MinigameQuestionMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the MinigameQuestion entity.
// If the MinigameQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MinigameQuestionMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *MinigameQuestionMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *MinigameQuestionMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *MinigameQuestionMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// Where appends a list predicates to the MinigameQuestionMutation builder.
func (m *MinigameQuestionMutation) Where(ps ...predicate.MinigameQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MinigameQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MinigameQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MinigameQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MinigameQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MinigameQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MinigameQuestion).
func (m *MinigameQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MinigameQuestionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.minigame_id != nil {
		fields = append(fields, minigamequestion.FieldMinigameID)
	}
	if m.seq != nil {
		fields = append(fields, minigamequestion.FieldSeq)
	}
	if m.question_type != nil {
		fields = append(fields, minigamequestion.FieldQuestionType)
	}
	if m.question_text != nil {
		fields = append(fields, minigamequestion.FieldQuestionText)
	}
	if m.left_items != nil {
		fields = append(fields, minigamequestion.FieldLeftItems)
	}
	if m.right_items != nil {
		fields = append(fields, minigamequestion.FieldRightItems)
	}
	if m.correct_matches != nil {
		fields = append(fields, minigamequestion.FieldCorrectMatches)
	}
	if m.blank_text != nil {
		fields = append(fields, minigamequestion.FieldBlankText)
	}
	if m.correct_answers != nil {
		fields = append(fields, minigamequestion.FieldCorrectAnswers)
	}
	if m.options != nil {
		fields = append(fields, minigamequestion.FieldOptions)
	}
	if m.correct_option_index != nil {
		fields = append(fields, minigamequestion.FieldCorrectOptionIndex)
	}
	if m.image_url != nil {
		fields = append(fields, minigamequestion.FieldImageURL)
	}
	if m.associated_terms != nil {
		fields = append(fields, minigamequestion.FieldAssociatedTerms)
	}
	if m.explanation != nil {
		fields = append(fields, minigamequestion.FieldExplanation)
	}
	if m.points != nil {
		fields = append(fields, minigamequestion.FieldPoints)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MinigameQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case minigamequestion.FieldMinigameID:
		return m.MinigameID()
	case minigamequestion.FieldSeq:
		return m.Seq()
	case minigamequestion.FieldQuestionType:
		return m.QuestionType()
	case minigamequestion.FieldQuestionText:
		return m.QuestionText()
	case minigamequestion.FieldLeftItems:
		return m.LeftItems()
	case minigamequestion.FieldRightItems:
		return m.RightItems()
	case minigamequestion.FieldCorrectMatches:
		return m.CorrectMatches()
	case minigamequestion.FieldBlankText:
		return m.BlankText()
	case minigamequestion.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case minigamequestion.FieldOptions:
		return m.Options()
	case minigamequestion.FieldCorrectOptionIndex:
		return m.CorrectOptionIndex()
	case minigamequestion.FieldImageURL:
		return m.ImageURL()
	case minigamequestion.FieldAssociatedTerms:
		return m.AssociatedTerms()
	case minigamequestion.FieldExplanation:
		return m.Explanation()
	case minigamequestion.FieldPoints:
		return m.Points()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MinigameQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case minigamequestion.FieldMinigameID:
		return m.OldMinigameID(ctx)
	case minigamequestion.FieldSeq:
		return m.OldSeq(ctx)
	case minigamequestion.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case minigamequestion.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case minigamequestion.FieldLeftItems:
		return m.OldLeftItems(ctx)
	case minigamequestion.FieldRightItems:
		return m.OldRightItems(ctx)
	case minigamequestion.FieldCorrectMatches:
		return m.OldCorrectMatches(ctx)
	case minigamequestion.FieldBlankText:
		return m.OldBlankText(ctx)
	case minigamequestion.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case minigamequestion.FieldOptions:
		return m.OldOptions(ctx)
	case minigamequestion.FieldCorrectOptionIndex:
		return m.OldCorrectOptionIndex(ctx)
	case minigamequestion.FieldImageURL:
		return m.OldImageURL(ctx)
	case minigamequestion.FieldAssociatedTerms:
		return m.OldAssociatedTerms(ctx)
	case minigamequestion.FieldExplanation:
		return m.OldExplanation(ctx)
	case minigamequestion.FieldPoints:
		return m.OldPoints(ctx)
	}
	return nil, fmt.Errorf("unknown MinigameQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MinigameQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case minigamequestion.FieldMinigameID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinigameID(v)
		return nil
	case minigamequestion.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case minigamequestion.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case minigamequestion.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case minigamequestion.FieldLeftItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftItems(v)
		return nil
	case minigamequestion.FieldRightItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRightItems(v)
		return nil
	case minigamequestion.FieldCorrectMatches:
		v, ok := value.([]map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectMatches(v)
		return nil
	case minigamequestion.FieldBlankText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlankText(v)
		return nil
	case minigamequestion.FieldCorrectAnswers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case minigamequestion.FieldOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case minigamequestion.FieldCorrectOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectOptionIndex(v)
		return nil
	case minigamequestion.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case minigamequestion.FieldAssociatedTerms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssociatedTerms(v)
		return nil
	case minigamequestion.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case minigamequestion.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	}
	return fmt.Errorf("unknown MinigameQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MinigameQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addminigame_id != nil {
		fields = append(fields, minigamequestion.FieldMinigameID)
	}
	if m.addseq != nil {
		fields = append(fields, minigamequestion.FieldSeq)
	}
	if m.addcorrect_option_index != nil {
		fields = append(fields, minigamequestion.FieldCorrectOptionIndex)
	}
	if m.addpoints != nil {
		fields = append(fields, minigamequestion.FieldPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MinigameQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case minigamequestion.FieldMinigameID:
		return m.AddedMinigameID()
	case minigamequestion.FieldSeq:
		return m.AddedSeq()
	case minigamequestion.FieldCorrectOptionIndex:
		return m.AddedCorrectOptionIndex()
	case minigamequestion.FieldPoints:
		return m.AddedPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MinigameQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case minigamequestion.FieldMinigameID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinigameID(v)
		return nil
	case minigamequestion.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case minigamequestion.FieldCorrectOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectOptionIndex(v)
		return nil
	case minigamequestion.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	}
	return fmt.Errorf("unknown MinigameQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MinigameQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(minigamequestion.FieldLeftItems) {
		fields = append(fields, minigamequestion.FieldLeftItems)
	}
	if m.FieldCleared(minigamequestion.FieldRightItems) {
		fields = append(fields, minigamequestion.FieldRightItems)
	}
	if m.FieldCleared(minigamequestion.FieldCorrectMatches) {
		fields = append(fields, minigamequestion.FieldCorrectMatches)
	}
	if m.FieldCleared(minigamequestion.FieldBlankText) {
		fields = append(fields, minigamequestion.FieldBlankText)
	}
	if m.FieldCleared(minigamequestion.FieldCorrectAnswers) {
		fields = append(fields, minigamequestion.FieldCorrectAnswers)
	}
	if m.FieldCleared(minigamequestion.FieldOptions) {
		fields = append(fields, minigamequestion.FieldOptions)
	}
	if m.FieldCleared(minigamequestion.FieldImageURL) {
		fields = append(fields, minigamequestion.FieldImageURL)
	}
	if m.FieldCleared(minigamequestion.FieldAssociatedTerms) {
		fields = append(fields, minigamequestion.FieldAssociatedTerms)
	}
	if m.FieldCleared(minigamequestion.FieldExplanation) {
		fields = append(fields, minigamequestion.FieldExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MinigameQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MinigameQuestionMutation) ClearField(name string) error {
	switch name {
	case minigamequestion.FieldLeftItems:
		m.ClearLeftItems()
		return nil
	case minigamequestion.FieldRightItems:
		m.ClearRightItems()
		return nil
	case minigamequestion.FieldCorrectMatches:
		m.ClearCorrectMatches()
		return nil
	case minigamequestion.FieldBlankText:
		m.ClearBlankText()
		return nil
	case minigamequestion.FieldCorrectAnswers:
		m.ClearCorrectAnswers()
		return nil
	case minigamequestion.FieldOptions:
		m.ClearOptions()
		return nil
	case minigamequestion.FieldImageURL:
		m.ClearImageURL()
		return nil
	case minigamequestion.FieldAssociatedTerms:
		m.ClearAssociatedTerms()
		return nil
	case minigamequestion.FieldExplanation:
		m.ClearExplanation()
		return nil
	}
	return fmt.Errorf("unknown MinigameQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MinigameQuestionMutation) ResetField(name string) error {
	switch name {
	case minigamequestion.FieldMinigameID:
		m.ResetMinigameID()
		return nil
	case minigamequestion.FieldSeq:
		m.ResetSeq()
		return nil
	case minigamequestion.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case minigamequestion.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case minigamequestion.FieldLeftItems:
		m.ResetLeftItems()
		return nil
	case minigamequestion.FieldRightItems:
		m.ResetRightItems()
		return nil
	case minigamequestion.FieldCorrectMatches:
		m.ResetCorrectMatches()
		return nil
	case minigamequestion.FieldBlankText:
		m.ResetBlankText()
		return nil
	case minigamequestion.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case minigamequestion.FieldOptions:
		m.ResetOptions()
		return nil
	case minigamequestion.FieldCorrectOptionIndex:
		m.ResetCorrectOptionIndex()
		return nil
	case minigamequestion.FieldImageURL:
		m.ResetImageURL()
		return nil
	case minigamequestion.FieldAssociatedTerms:
		m.ResetAssociatedTerms()
		return nil
	case minigamequestion.FieldExplanation:
		m.ResetExplanation()
		return nil
	case minigamequestion.FieldPoints:
		m.ResetPoints()
		return nil
	}
	return fmt.Errorf("unknown MinigameQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MinigameQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MinigameQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MinigameQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MinigameQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MinigameQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MinigameQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MinigameQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MinigameQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MinigameQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MinigameQuestion edge %s", name)
}

// QuestMutation represents an operation that mutates the Quest nodes in the graph.
type QuestMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	seq                 *int
	addseq              *int
	title               *string
	quest_type          *string
	category            *string
	cuisine_type        *string
	max_stars           *int
	addmax_stars        *int
	initial_status      *string
	initial_stars       *int
	addinitial_stars    *int
	prerequisites       *[]int
	appendprerequisites []int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Quest, error)
	predicates          []predicate.Quest
}

var _ ent.Mutation = (*QuestMutation)(nil)

// questOption allows management of the mutation configuration using functional options.
type questOption func(*QuestMutation)

// newQuestMutation creates new mutation for the Quest entity.
func newQuestMutation(c config, op Op, opts ...questOption) *QuestMutation {
	m := &QuestMutation{
		config:        c,
		op:            op,
		typ:           TypeQuest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestID sets the ID field of the mutation.
func withQuestID(id int) questOption {
	return func(m *QuestMutation) {
		var (
			err   error
			once  sync.Once
			value *Quest
		)
		m.oldValue = func(ctx context.Context) (*Quest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Quest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuest sets the old Quest of the mutation.
func withQuest(node *Quest) questOption {
	return func(m *QuestMutation) {
		m.oldValue = func(context.Context) (*Quest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Quest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSeq sets the "seq" field.
func (m *QuestMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *QuestMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *QuestMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *QuestMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *QuestMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetTitle sets the "title" field.
func (m *QuestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *QuestMutation) ResetTitle() {
	m.title = nil
}

// SetQuestType sets the "quest_type" field.
func (m *QuestMutation) SetQuestType(s string) {
	m.quest_type = &s
}

// QuestType returns the value of the "quest_type" field in the mutation.
func (m *QuestMutation) QuestType() (r string, exists bool) {
	v := m.quest_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestType returns the old "quest_type" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldQuestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestType: %w", err)
	}
	return oldValue.QuestType, nil
}

// ResetQuestType resets all changes to the "quest_type" field.
func (m *QuestMutation) ResetQuestType() {
	m.quest_type = nil
}

// SetCategory sets the "category" field.
func (m *QuestMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *QuestMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldCategory(ctx context.Context) (v string, err error) {
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
func (m *QuestMutation) ResetCategory() {
	m.category = nil
}

// SetCuisineType sets the "cuisine_type" field.
func (m *QuestMutation) SetCuisineType(s string) {
	m.cuisine_type = &s
}

// CuisineType returns the value of the "cuisine_type" field in the mutation.
func (m *QuestMutation) CuisineType() (r string, exists bool) {
	v := m.cuisine_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCuisineType returns the old "cuisine_type" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldCuisineType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCuisineType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCuisineType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCuisineType: %w", err)
	}
	return oldValue.CuisineType, nil
}

// ClearCuisineType clears the value of the "cuisine_type" field.
func (m *QuestMutation) ClearCuisineType() {
	m.cuisine_type = nil
	m.clearedFields[quest.FieldCuisineType] = struct{}{}
}

// CuisineTypeCleared returns if the "cuisine_type" field was cleared in this mutation.
func (m *QuestMutation) CuisineTypeCleared() bool {
	_, ok := m.clearedFields[quest.FieldCuisineType]
	return ok
}

// ResetCuisineType resets all changes to the "cuisine_type" field.
func (m *QuestMutation) ResetCuisineType() {
	m.cuisine_type = nil
	delete(m.clearedFields, quest.FieldCuisineType)
}

// SetMaxStars sets the "max_stars" field.
func (m *QuestMutation) SetMaxStars(i int) {
	m.max_stars = &i
	m.addmax_stars = nil
}

// MaxStars returns the value of the "max_stars" field in the mutation.
func (m *QuestMutation) MaxStars() (r int, exists bool) {
	v := m.max_stars
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxStars returns the old "max_stars" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldMaxStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxStars: %w", err)
	}
	return oldValue.MaxStars, nil
}

// AddMaxStars adds i to the "max_stars" field.
func (m *QuestMutation) AddMaxStars(i int) {
	if m.addmax_stars != nil {
		*m.addmax_stars += i
	} else {
		m.addmax_stars = &i
	}
}

// AddedMaxStars returns the value that was added to the "max_stars" field in this mutation.
func (m *QuestMutation) AddedMaxStars() (r int, exists bool) {
	v := m.addmax_stars
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxStars resets all changes to the "max_stars" field.
func (m *QuestMutation) ResetMaxStars() {
	m.max_stars = nil
	m.addmax_stars = nil
}

// SetInitialStatus sets the "initial_status" field.
func (m *QuestMutation) SetInitialStatus(s string) {
	m.initial_status = &s
}

// InitialStatus returns the value of the "initial_status" field in the mutation.
func (m *QuestMutation) InitialStatus() (r string, exists bool) {
	v := m.initial_status
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialStatus returns the old "initial_status" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldInitialStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialStatus: %w", err)
	}
	return oldValue.InitialStatus, nil
}

// ResetInitialStatus resets all changes to the "initial_status" field.
func (m *QuestMutation) ResetInitialStatus() {
	m.initial_status = nil
}

// SetInitialStars sets the "initial_stars" field.
func (m *QuestMutation) SetInitialStars(i int) {
	m.initial_stars = &i
	m.addinitial_stars = nil
}

// InitialStars returns the value of the "initial_stars" field in the mutation.
func (m *QuestMutation) InitialStars() (r int, exists bool) {
	v := m.initial_stars
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialStars returns the old "initial_stars" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldInitialStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialStars: %w", err)
	}
	return oldValue.InitialStars, nil
}

// AddInitialStars adds i to the "initial_stars" field.
func (m *QuestMutation) AddInitialStars(i int) {
	if m.addinitial_stars != nil {
		*m.addinitial_stars += i
	} else {
		m.addinitial_stars = &i
	}
}

// AddedInitialStars returns the value that was added to the "initial_stars" field in this mutation.
func (m *QuestMutation) AddedInitialStars() (r int, exists bool) {
	v := m.addinitial_stars
	if v == nil {
		return
	}
	return *v, true
}

// ResetInitialStars resets all changes to the "initial_stars" field.
func (m *QuestMutation) ResetInitialStars() {
	m.initial_stars = nil
	m.addinitial_stars = nil
}

// SetPrerequisites sets the "prerequisites" field.
func (m *QuestMutation) SetPrerequisites(i []int) {
	m.prerequisites = &i
	m.appendprerequisites = nil
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *QuestMutation) Prerequisites() (r []int, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the Quest entity.
// If the Quest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestMutation) OldPrerequisites(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// AppendPrerequisites adds i to the "prerequisites" field.
func (m *QuestMutation) AppendPrerequisites(i []int) {
	m.appendprerequisites = append(m.appendprerequisites, i...)
}

// AppendedPrerequisites returns the list of values that were appended to the "prerequisites" field in this mutation.
func (m *QuestMutation) AppendedPrerequisites() ([]int, bool) {
	if len(m.appendprerequisites) == 0 {
		return nil, false
	}
	return m.appendprerequisites, true
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *QuestMutation) ResetPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
}

// Where appends a list predicates to the QuestMutation builder.
func (m *QuestMutation) Where(ps ...predicate.Quest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Quest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Quest).
func (m *QuestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.seq != nil {
		fields = append(fields, quest.FieldSeq)
	}
	if m.title != nil {
		fields = append(fields, quest.FieldTitle)
	}
	if m.quest_type != nil {
		fields = append(fields, quest.FieldQuestType)
	}
	if m.category != nil {
		fields = append(fields, quest.FieldCategory)
	}
	if m.cuisine_type != nil {
		fields = append(fields, quest.FieldCuisineType)
	}
	if m.max_stars != nil {
		fields = append(fields, quest.FieldMaxStars)
	}
	if m.initial_status != nil {
		fields = append(fields, quest.FieldInitialStatus)
	}
	if m.initial_stars != nil {
		fields = append(fields, quest.FieldInitialStars)
	}
	if m.prerequisites != nil {
		fields = append(fields, quest.FieldPrerequisites)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quest.FieldSeq:
		return m.Seq()
	case quest.FieldTitle:
		return m.Title()
	case quest.FieldQuestType:
		return m.QuestType()
	case quest.FieldCategory:
		return m.Category()
	case quest.FieldCuisineType:
		return m.CuisineType()
	case quest.FieldMaxStars:
		return m.MaxStars()
	case quest.FieldInitialStatus:
		return m.InitialStatus()
	case quest.FieldInitialStars:
		return m.InitialStars()
	case quest.FieldPrerequisites:
		return m.Prerequisites()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quest.FieldSeq:
		return m.OldSeq(ctx)
	case quest.FieldTitle:
		return m.OldTitle(ctx)
	case quest.FieldQuestType:
		return m.OldQuestType(ctx)
	case quest.FieldCategory:
		return m.OldCategory(ctx)
	case quest.FieldCuisineType:
		return m.OldCuisineType(ctx)
	case quest.FieldMaxStars:
		return m.OldMaxStars(ctx)
	case quest.FieldInitialStatus:
		return m.OldInitialStatus(ctx)
	case quest.FieldInitialStars:
		return m.OldInitialStars(ctx)
	case quest.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	}
	return nil, fmt.Errorf("unknown Quest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quest.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case quest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case quest.FieldQuestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestType(v)
		return nil
	case quest.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case quest.FieldCuisineType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCuisineType(v)
		return nil
	case quest.FieldMaxStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxStars(v)
		return nil
	case quest.FieldInitialStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialStatus(v)
		return nil
	case quest.FieldInitialStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialStars(v)
		return nil
	case quest.FieldPrerequisites:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	}
	return fmt.Errorf("unknown Quest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, quest.FieldSeq)
	}
	if m.addmax_stars != nil {
		fields = append(fields, quest.FieldMaxStars)
	}
	if m.addinitial_stars != nil {
		fields = append(fields, quest.FieldInitialStars)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quest.FieldSeq:
		return m.AddedSeq()
	case quest.FieldMaxStars:
		return m.AddedMaxStars()
	case quest.FieldInitialStars:
		return m.AddedInitialStars()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quest.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case quest.FieldMaxStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxStars(v)
		return nil
	case quest.FieldInitialStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInitialStars(v)
		return nil
	}
	return fmt.Errorf("unknown Quest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quest.FieldCuisineType) {
		fields = append(fields, quest.FieldCuisineType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestMutation) ClearField(name string) error {
	switch name {
	case quest.FieldCuisineType:
		m.ClearCuisineType()
		return nil
	}
	return fmt.Errorf("unknown Quest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestMutation) ResetField(name string) error {
	switch name {
	case quest.FieldSeq:
		m.ResetSeq()
		return nil
	case quest.FieldTitle:
		m.ResetTitle()
		return nil
	case quest.FieldQuestType:
		m.ResetQuestType()
		return nil
	case quest.FieldCategory:
		m.ResetCategory()
		return nil
	case quest.FieldCuisineType:
		m.ResetCuisineType()
		return nil
	case quest.FieldMaxStars:
		m.ResetMaxStars()
		return nil
	case quest.FieldInitialStatus:
		m.ResetInitialStatus()
		return nil
	case quest.FieldInitialStars:
		m.ResetInitialStars()
		return nil
	case quest.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	}
	return fmt.Errorf("unknown Quest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Quest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Quest edge %s", name)
}

// QuestProgressMutation represents an operation that mutates the QuestProgress nodes in the graph.
type QuestProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner_id    *string
	quest_id      *int
	addquest_id   *int
	status        *string
	stars         *int
	addstars      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuestProgress, error)
	predicates    []predicate.QuestProgress
}

var _ ent.Mutation = (*QuestProgressMutation)(nil)

// questprogressOption allows management of the mutation configuration using functional options.
type questprogressOption func(*QuestProgressMutation)

// newQuestProgressMutation creates new mutation for the QuestProgress entity.
func newQuestProgressMutation(c config, op Op, opts ...questprogressOption) *QuestProgressMutation {
	m := &QuestProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestProgressID sets the ID field of the mutation.
func withQuestProgressID(id int) questprogressOption {
	return func(m *QuestProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestProgress
		)
		m.oldValue = func(ctx context.Context) (*QuestProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestProgress sets the old QuestProgress of the mutation.
func withQuestProgress(node *QuestProgress) questprogressOption {
	return func(m *QuestProgressMutation) {
		m.oldValue = func(context.Context) (*QuestProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *QuestProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *QuestProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the QuestProgress entity.
// If the QuestProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *QuestProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetQuestID sets the "quest_id" field.
func (m *QuestProgressMutation) SetQuestID(i int) {
	m.quest_id = &i
	m.addquest_id = nil
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *QuestProgressMutation) QuestID() (r int, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the QuestProgress entity.
// If the QuestProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestProgressMutation) OldQuestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// AddQuestID adds i to the "quest_id" field.
func (m *QuestProgressMutation) AddQuestID(i int) {
	if m.addquest_id != nil {
		*m.addquest_id += i
	} else {
		m.addquest_id = &i
	}
}

// AddedQuestID returns the value that was added to the "quest_id" field in this mutation.
func (m *QuestProgressMutation) AddedQuestID() (r int, exists bool) {
	v := m.addquest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *QuestProgressMutation) ResetQuestID() {
	m.quest_id = nil
	m.addquest_id = nil
}

// SetStatus sets the "status" field.
func (m *QuestProgressMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *QuestProgressMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuestProgress entity.
// If the QuestProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestProgressMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *QuestProgressMutation) ResetStatus() {
	m.status = nil
}

// SetStars sets the "stars" field.
func (m *QuestProgressMutation) SetStars(i int) {
	m.stars = &i
	m.addstars = nil
}

// Stars returns the value of the "stars" field in the mutation.
func (m *QuestProgressMutation) Stars() (r int, exists bool) {
	v := m.stars
	if v == nil {
		return
	}
	return *v, true
}

// OldStars returns the old "stars" field's value of the QuestProgress entity.
// If the QuestProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestProgressMutation) OldStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStars: %w", err)
	}
	return oldValue.Stars, nil
}

// AddStars adds i to the "stars" field.
func (m *QuestProgressMutation) AddStars(i int) {
	if m.addstars != nil {
		*m.addstars += i
	} else {
		m.addstars = &i
	}
}

// AddedStars returns the value that was added to the "stars" field in this mutation.
func (m *QuestProgressMutation) AddedStars() (r int, exists bool) {
	v := m.addstars
	if v == nil {
		return
	}
	return *v, true
}

// ResetStars resets all changes to the "stars" field.
func (m *QuestProgressMutation) ResetStars() {
	m.stars = nil
	m.addstars = nil
}

// Where appends a list predicates to the QuestProgressMutation builder.
func (m *QuestProgressMutation) Where(ps ...predicate.QuestProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestProgress).
func (m *QuestProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestProgressMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner_id != nil {
		fields = append(fields, questprogress.FieldLearnerID)
	}
	if m.quest_id != nil {
		fields = append(fields, questprogress.FieldQuestID)
	}
	if m.status != nil {
		fields = append(fields, questprogress.FieldStatus)
	}
	if m.stars != nil {
		fields = append(fields, questprogress.FieldStars)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questprogress.FieldLearnerID:
		return m.LearnerID()
	case questprogress.FieldQuestID:
		return m.QuestID()
	case questprogress.FieldStatus:
		return m.Status()
	case questprogress.FieldStars:
		return m.Stars()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case questprogress.FieldQuestID:
		return m.OldQuestID(ctx)
	case questprogress.FieldStatus:
		return m.OldStatus(ctx)
	case questprogress.FieldStars:
		return m.OldStars(ctx)
	}
	return nil, fmt.Errorf("unknown QuestProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case questprogress.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case questprogress.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case questprogress.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStars(v)
		return nil
	}
	return fmt.Errorf("unknown QuestProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestProgressMutation) AddedFields() []string {
	var fields []string
	if m.addquest_id != nil {
		fields = append(fields, questprogress.FieldQuestID)
	}
	if m.addstars != nil {
		fields = append(fields, questprogress.FieldStars)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questprogress.FieldQuestID:
		return m.AddedQuestID()
	case questprogress.FieldStars:
		return m.AddedStars()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questprogress.FieldQuestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestID(v)
		return nil
	case questprogress.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStars(v)
		return nil
	}
	return fmt.Errorf("unknown QuestProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestProgressMutation) ResetField(name string) error {
	switch name {
	case questprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case questprogress.FieldQuestID:
		m.ResetQuestID()
		return nil
	case questprogress.FieldStatus:
		m.ResetStatus()
		return nil
	case questprogress.FieldStars:
		m.ResetStars()
		return nil
	}
	return fmt.Errorf("unknown QuestProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestProgress edge %s", name)
}
