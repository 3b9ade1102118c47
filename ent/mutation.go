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
	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/keywatch/keywatch/ent/keywordrule"
	"github.com/keywatch/keywatch/ent/match"
	"github.com/keywatch/keywatch/ent/monitoredcommunity"
	"github.com/keywatch/keywatch/ent/predicate"
	"github.com/keywatch/keywatch/ent/tenant"
	"github.com/keywatch/keywatch/ent/webhookendpoint"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContentItem        = "ContentItem"
	TypeKeywordRule        = "KeywordRule"
	TypeMatch              = "Match"
	TypeMonitoredCommunity = "MonitoredCommunity"
	TypeTenant             = "Tenant"
	TypeWebhookEndpoint    = "WebhookEndpoint"
)

// ContentItemMutation represents an operation that mutates the ContentItem nodes in the graph.
type ContentItemMutation struct {
	config
	op                Op
	typ               string
	id                *string
	source_id         *string
	community         *string
	kind              *contentitem.Kind
	title             *string
	body              *string
	author            *string
	normalized_text   *string
	digest            *string
	source_created_at *time.Time
	fetched_at        *time.Time
	is_deleted        *bool
	clearedFields     map[string]struct{}
	matches           map[string]struct{}
	removedmatches    map[string]struct{}
	clearedmatches    bool
	done              bool
	oldValue          func(context.Context) (*ContentItem, error)
	predicates        []predicate.ContentItem
}

var _ ent.Mutation = (*ContentItemMutation)(nil)

// contentitemOption allows management of the mutation configuration using functional options.
type contentitemOption func(*ContentItemMutation)

// newContentItemMutation creates new mutation for the ContentItem entity.
func newContentItemMutation(c config, op Op, opts ...contentitemOption) *ContentItemMutation {
	m := &ContentItemMutation{
		config:        c,
		op:            op,
		typ:           TypeContentItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentItemID sets the ID field of the mutation.
func withContentItemID(id string) contentitemOption {
	return func(m *ContentItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentItem
		)
		m.oldValue = func(ctx context.Context) (*ContentItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentItem sets the old ContentItem of the mutation.
func withContentItem(node *ContentItem) contentitemOption {
	return func(m *ContentItemMutation) {
		m.oldValue = func(context.Context) (*ContentItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentItem entities.
func (m *ContentItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *ContentItemMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ContentItemMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ContentItemMutation) ResetSourceID() {
	m.source_id = nil
}

// SetCommunity sets the "community" field.
func (m *ContentItemMutation) SetCommunity(s string) {
	m.community = &s
}

// Community returns the value of the "community" field in the mutation.
func (m *ContentItemMutation) Community() (r string, exists bool) {
	v := m.community
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunity returns the old "community" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldCommunity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunity: %w", err)
	}
	return oldValue.Community, nil
}

// ResetCommunity resets all changes to the "community" field.
func (m *ContentItemMutation) ResetCommunity() {
	m.community = nil
}

// SetKind sets the "kind" field.
func (m *ContentItemMutation) SetKind(c contentitem.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ContentItemMutation) Kind() (r contentitem.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldKind(ctx context.Context) (v contentitem.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ContentItemMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *ContentItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContentItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldTitle(ctx context.Context) (v *string, err error) {
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

// ClearTitle clears the value of the "title" field.
func (m *ContentItemMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[contentitem.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ContentItemMutation) TitleCleared() bool {
	_, ok := m.clearedFields[contentitem.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ContentItemMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, contentitem.FieldTitle)
}

// SetBody sets the "body" field.
func (m *ContentItemMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ContentItemMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ContentItemMutation) ResetBody() {
	m.body = nil
}

// SetAuthor sets the "author" field.
func (m *ContentItemMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ContentItemMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ContentItemMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[contentitem.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ContentItemMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[contentitem.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ContentItemMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, contentitem.FieldAuthor)
}

// SetNormalizedText sets the "normalized_text" field.
func (m *ContentItemMutation) SetNormalizedText(s string) {
	m.normalized_text = &s
}

// NormalizedText returns the value of the "normalized_text" field in the mutation.
func (m *ContentItemMutation) NormalizedText() (r string, exists bool) {
	v := m.normalized_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedText returns the old "normalized_text" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldNormalizedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedText: %w", err)
	}
	return oldValue.NormalizedText, nil
}

// ResetNormalizedText resets all changes to the "normalized_text" field.
func (m *ContentItemMutation) ResetNormalizedText() {
	m.normalized_text = nil
}

// SetDigest sets the "digest" field.
func (m *ContentItemMutation) SetDigest(s string) {
	m.digest = &s
}

// Digest returns the value of the "digest" field in the mutation.
func (m *ContentItemMutation) Digest() (r string, exists bool) {
	v := m.digest
	if v == nil {
		return
	}
	return *v, true
}

// OldDigest returns the old "digest" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigest: %w", err)
	}
	return oldValue.Digest, nil
}

// ResetDigest resets all changes to the "digest" field.
func (m *ContentItemMutation) ResetDigest() {
	m.digest = nil
}

// SetSourceCreatedAt sets the "source_created_at" field.
func (m *ContentItemMutation) SetSourceCreatedAt(t time.Time) {
	m.source_created_at = &t
}

// SourceCreatedAt returns the value of the "source_created_at" field in the mutation.
func (m *ContentItemMutation) SourceCreatedAt() (r time.Time, exists bool) {
	v := m.source_created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCreatedAt returns the old "source_created_at" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldSourceCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCreatedAt: %w", err)
	}
	return oldValue.SourceCreatedAt, nil
}

// ResetSourceCreatedAt resets all changes to the "source_created_at" field.
func (m *ContentItemMutation) ResetSourceCreatedAt() {
	m.source_created_at = nil
}

// SetFetchedAt sets the "fetched_at" field.
func (m *ContentItemMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *ContentItemMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *ContentItemMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ContentItemMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ContentItemMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ContentItemMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *ContentItemMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *ContentItemMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *ContentItemMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *ContentItemMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *ContentItemMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *ContentItemMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *ContentItemMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// Where appends a list predicates to the ContentItemMutation builder.
func (m *ContentItemMutation) Where(ps ...predicate.ContentItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentItem).
func (m *ContentItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentItemMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.source_id != nil {
		fields = append(fields, contentitem.FieldSourceID)
	}
	if m.community != nil {
		fields = append(fields, contentitem.FieldCommunity)
	}
	if m.kind != nil {
		fields = append(fields, contentitem.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, contentitem.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, contentitem.FieldBody)
	}
	if m.author != nil {
		fields = append(fields, contentitem.FieldAuthor)
	}
	if m.normalized_text != nil {
		fields = append(fields, contentitem.FieldNormalizedText)
	}
	if m.digest != nil {
		fields = append(fields, contentitem.FieldDigest)
	}
	if m.source_created_at != nil {
		fields = append(fields, contentitem.FieldSourceCreatedAt)
	}
	if m.fetched_at != nil {
		fields = append(fields, contentitem.FieldFetchedAt)
	}
	if m.is_deleted != nil {
		fields = append(fields, contentitem.FieldIsDeleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentitem.FieldSourceID:
		return m.SourceID()
	case contentitem.FieldCommunity:
		return m.Community()
	case contentitem.FieldKind:
		return m.Kind()
	case contentitem.FieldTitle:
		return m.Title()
	case contentitem.FieldBody:
		return m.Body()
	case contentitem.FieldAuthor:
		return m.Author()
	case contentitem.FieldNormalizedText:
		return m.NormalizedText()
	case contentitem.FieldDigest:
		return m.Digest()
	case contentitem.FieldSourceCreatedAt:
		return m.SourceCreatedAt()
	case contentitem.FieldFetchedAt:
		return m.FetchedAt()
	case contentitem.FieldIsDeleted:
		return m.IsDeleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentitem.FieldSourceID:
		return m.OldSourceID(ctx)
	case contentitem.FieldCommunity:
		return m.OldCommunity(ctx)
	case contentitem.FieldKind:
		return m.OldKind(ctx)
	case contentitem.FieldTitle:
		return m.OldTitle(ctx)
	case contentitem.FieldBody:
		return m.OldBody(ctx)
	case contentitem.FieldAuthor:
		return m.OldAuthor(ctx)
	case contentitem.FieldNormalizedText:
		return m.OldNormalizedText(ctx)
	case contentitem.FieldDigest:
		return m.OldDigest(ctx)
	case contentitem.FieldSourceCreatedAt:
		return m.OldSourceCreatedAt(ctx)
	case contentitem.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	case contentitem.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	}
	return nil, fmt.Errorf("unknown ContentItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentitem.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case contentitem.FieldCommunity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunity(v)
		return nil
	case contentitem.FieldKind:
		v, ok := value.(contentitem.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case contentitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case contentitem.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case contentitem.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case contentitem.FieldNormalizedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedText(v)
		return nil
	case contentitem.FieldDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigest(v)
		return nil
	case contentitem.FieldSourceCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCreatedAt(v)
		return nil
	case contentitem.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	case contentitem.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	}
	return fmt.Errorf("unknown ContentItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContentItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentitem.FieldTitle) {
		fields = append(fields, contentitem.FieldTitle)
	}
	if m.FieldCleared(contentitem.FieldAuthor) {
		fields = append(fields, contentitem.FieldAuthor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentItemMutation) ClearField(name string) error {
	switch name {
	case contentitem.FieldTitle:
		m.ClearTitle()
		return nil
	case contentitem.FieldAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown ContentItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentItemMutation) ResetField(name string) error {
	switch name {
	case contentitem.FieldSourceID:
		m.ResetSourceID()
		return nil
	case contentitem.FieldCommunity:
		m.ResetCommunity()
		return nil
	case contentitem.FieldKind:
		m.ResetKind()
		return nil
	case contentitem.FieldTitle:
		m.ResetTitle()
		return nil
	case contentitem.FieldBody:
		m.ResetBody()
		return nil
	case contentitem.FieldAuthor:
		m.ResetAuthor()
		return nil
	case contentitem.FieldNormalizedText:
		m.ResetNormalizedText()
		return nil
	case contentitem.FieldDigest:
		m.ResetDigest()
		return nil
	case contentitem.FieldSourceCreatedAt:
		m.ResetSourceCreatedAt()
		return nil
	case contentitem.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	case contentitem.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	}
	return fmt.Errorf("unknown ContentItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.matches != nil {
		edges = append(edges, contentitem.EdgeMatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contentitem.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmatches != nil {
		edges = append(edges, contentitem.EdgeMatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contentitem.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmatches {
		edges = append(edges, contentitem.EdgeMatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentItemMutation) EdgeCleared(name string) bool {
	switch name {
	case contentitem.EdgeMatches:
		return m.clearedmatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentItemMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ContentItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentItemMutation) ResetEdge(name string) error {
	switch name {
	case contentitem.EdgeMatches:
		m.ResetMatches()
		return nil
	}
	return fmt.Errorf("unknown ContentItem edge %s", name)
}

// KeywordRuleMutation represents an operation that mutates the KeywordRule nodes in the graph.
type KeywordRuleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	phrases             *[]string
	appendphrases       []string
	exclusions          *[]string
	appendexclusions    []string
	proximity_window    *int
	addproximity_window *int
	require_order       *bool
	use_stemming        *bool
	exclusion_scope     *keywordrule.ExclusionScope
	is_active           *bool
	silenced_until      *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *string
	clearedtenant       bool
	matches             map[string]struct{}
	removedmatches      map[string]struct{}
	clearedmatches      bool
	done                bool
	oldValue            func(context.Context) (*KeywordRule, error)
	predicates          []predicate.KeywordRule
}

var _ ent.Mutation = (*KeywordRuleMutation)(nil)

// keywordruleOption allows management of the mutation configuration using functional options.
type keywordruleOption func(*KeywordRuleMutation)

// newKeywordRuleMutation creates new mutation for the KeywordRule entity.
func newKeywordRuleMutation(c config, op Op, opts ...keywordruleOption) *KeywordRuleMutation {
	m := &KeywordRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeKeywordRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKeywordRuleID sets the ID field of the mutation.
func withKeywordRuleID(id string) keywordruleOption {
	return func(m *KeywordRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *KeywordRule
		)
		m.oldValue = func(ctx context.Context) (*KeywordRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KeywordRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKeywordRule sets the old KeywordRule of the mutation.
func withKeywordRule(node *KeywordRule) keywordruleOption {
	return func(m *KeywordRuleMutation) {
		m.oldValue = func(context.Context) (*KeywordRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KeywordRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KeywordRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KeywordRule entities.
func (m *KeywordRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KeywordRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KeywordRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KeywordRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *KeywordRuleMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *KeywordRuleMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *KeywordRuleMutation) ResetTenantID() {
	m.tenant = nil
}

// SetPhrases sets the "phrases" field.
func (m *KeywordRuleMutation) SetPhrases(s []string) {
	m.phrases = &s
	m.appendphrases = nil
}

// Phrases returns the value of the "phrases" field in the mutation.
func (m *KeywordRuleMutation) Phrases() (r []string, exists bool) {
	v := m.phrases
	if v == nil {
		return
	}
	return *v, true
}

// OldPhrases returns the old "phrases" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldPhrases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhrases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhrases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhrases: %w", err)
	}
	return oldValue.Phrases, nil
}

// AppendPhrases adds s to the "phrases" field.
func (m *KeywordRuleMutation) AppendPhrases(s []string) {
	m.appendphrases = append(m.appendphrases, s...)
}

// AppendedPhrases returns the list of values that were appended to the "phrases" field in this mutation.
func (m *KeywordRuleMutation) AppendedPhrases() ([]string, bool) {
	if len(m.appendphrases) == 0 {
		return nil, false
	}
	return m.appendphrases, true
}

// ResetPhrases resets all changes to the "phrases" field.
func (m *KeywordRuleMutation) ResetPhrases() {
	m.phrases = nil
	m.appendphrases = nil
}

// SetExclusions sets the "exclusions" field.
func (m *KeywordRuleMutation) SetExclusions(s []string) {
	m.exclusions = &s
	m.appendexclusions = nil
}

// Exclusions returns the value of the "exclusions" field in the mutation.
func (m *KeywordRuleMutation) Exclusions() (r []string, exists bool) {
	v := m.exclusions
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusions returns the old "exclusions" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldExclusions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusions: %w", err)
	}
	return oldValue.Exclusions, nil
}

// AppendExclusions adds s to the "exclusions" field.
func (m *KeywordRuleMutation) AppendExclusions(s []string) {
	m.appendexclusions = append(m.appendexclusions, s...)
}

// AppendedExclusions returns the list of values that were appended to the "exclusions" field in this mutation.
func (m *KeywordRuleMutation) AppendedExclusions() ([]string, bool) {
	if len(m.appendexclusions) == 0 {
		return nil, false
	}
	return m.appendexclusions, true
}

// ClearExclusions clears the value of the "exclusions" field.
func (m *KeywordRuleMutation) ClearExclusions() {
	m.exclusions = nil
	m.appendexclusions = nil
	m.clearedFields[keywordrule.FieldExclusions] = struct{}{}
}

// ExclusionsCleared returns if the "exclusions" field was cleared in this mutation.
func (m *KeywordRuleMutation) ExclusionsCleared() bool {
	_, ok := m.clearedFields[keywordrule.FieldExclusions]
	return ok
}

// ResetExclusions resets all changes to the "exclusions" field.
func (m *KeywordRuleMutation) ResetExclusions() {
	m.exclusions = nil
	m.appendexclusions = nil
	delete(m.clearedFields, keywordrule.FieldExclusions)
}

// SetProximityWindow sets the "proximity_window" field.
func (m *KeywordRuleMutation) SetProximityWindow(i int) {
	m.proximity_window = &i
	m.addproximity_window = nil
}

// ProximityWindow returns the value of the "proximity_window" field in the mutation.
func (m *KeywordRuleMutation) ProximityWindow() (r int, exists bool) {
	v := m.proximity_window
	if v == nil {
		return
	}
	return *v, true
}

// OldProximityWindow returns the old "proximity_window" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldProximityWindow(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProximityWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProximityWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProximityWindow: %w", err)
	}
	return oldValue.ProximityWindow, nil
}

// AddProximityWindow adds i to the "proximity_window" field.
func (m *KeywordRuleMutation) AddProximityWindow(i int) {
	if m.addproximity_window != nil {
		*m.addproximity_window += i
	} else {
		m.addproximity_window = &i
	}
}

// AddedProximityWindow returns the value that was added to the "proximity_window" field in this mutation.
func (m *KeywordRuleMutation) AddedProximityWindow() (r int, exists bool) {
	v := m.addproximity_window
	if v == nil {
		return
	}
	return *v, true
}

// ResetProximityWindow resets all changes to the "proximity_window" field.
func (m *KeywordRuleMutation) ResetProximityWindow() {
	m.proximity_window = nil
	m.addproximity_window = nil
}

// SetRequireOrder sets the "require_order" field.
func (m *KeywordRuleMutation) SetRequireOrder(b bool) {
	m.require_order = &b
}

// RequireOrder returns the value of the "require_order" field in the mutation.
func (m *KeywordRuleMutation) RequireOrder() (r bool, exists bool) {
	v := m.require_order
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireOrder returns the old "require_order" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldRequireOrder(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireOrder: %w", err)
	}
	return oldValue.RequireOrder, nil
}

// ResetRequireOrder resets all changes to the "require_order" field.
func (m *KeywordRuleMutation) ResetRequireOrder() {
	m.require_order = nil
}

// SetUseStemming sets the "use_stemming" field.
func (m *KeywordRuleMutation) SetUseStemming(b bool) {
	m.use_stemming = &b
}

// UseStemming returns the value of the "use_stemming" field in the mutation.
func (m *KeywordRuleMutation) UseStemming() (r bool, exists bool) {
	v := m.use_stemming
	if v == nil {
		return
	}
	return *v, true
}

// OldUseStemming returns the old "use_stemming" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldUseStemming(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseStemming is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseStemming requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseStemming: %w", err)
	}
	return oldValue.UseStemming, nil
}

// ResetUseStemming resets all changes to the "use_stemming" field.
func (m *KeywordRuleMutation) ResetUseStemming() {
	m.use_stemming = nil
}

// SetExclusionScope sets the "exclusion_scope" field.
func (m *KeywordRuleMutation) SetExclusionScope(ks keywordrule.ExclusionScope) {
	m.exclusion_scope = &ks
}

// ExclusionScope returns the value of the "exclusion_scope" field in the mutation.
func (m *KeywordRuleMutation) ExclusionScope() (r keywordrule.ExclusionScope, exists bool) {
	v := m.exclusion_scope
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusionScope returns the old "exclusion_scope" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldExclusionScope(ctx context.Context) (v keywordrule.ExclusionScope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusionScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusionScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusionScope: %w", err)
	}
	return oldValue.ExclusionScope, nil
}

// ResetExclusionScope resets all changes to the "exclusion_scope" field.
func (m *KeywordRuleMutation) ResetExclusionScope() {
	m.exclusion_scope = nil
}

// SetIsActive sets the "is_active" field.
func (m *KeywordRuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *KeywordRuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *KeywordRuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetSilencedUntil sets the "silenced_until" field.
func (m *KeywordRuleMutation) SetSilencedUntil(t time.Time) {
	m.silenced_until = &t
}

// SilencedUntil returns the value of the "silenced_until" field in the mutation.
func (m *KeywordRuleMutation) SilencedUntil() (r time.Time, exists bool) {
	v := m.silenced_until
	if v == nil {
		return
	}
	return *v, true
}

// OldSilencedUntil returns the old "silenced_until" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldSilencedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSilencedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSilencedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSilencedUntil: %w", err)
	}
	return oldValue.SilencedUntil, nil
}

// ClearSilencedUntil clears the value of the "silenced_until" field.
func (m *KeywordRuleMutation) ClearSilencedUntil() {
	m.silenced_until = nil
	m.clearedFields[keywordrule.FieldSilencedUntil] = struct{}{}
}

// SilencedUntilCleared returns if the "silenced_until" field was cleared in this mutation.
func (m *KeywordRuleMutation) SilencedUntilCleared() bool {
	_, ok := m.clearedFields[keywordrule.FieldSilencedUntil]
	return ok
}

// ResetSilencedUntil resets all changes to the "silenced_until" field.
func (m *KeywordRuleMutation) ResetSilencedUntil() {
	m.silenced_until = nil
	delete(m.clearedFields, keywordrule.FieldSilencedUntil)
}

// SetCreatedAt sets the "created_at" field.
func (m *KeywordRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KeywordRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *KeywordRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KeywordRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KeywordRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KeywordRule entity.
// If the KeywordRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *KeywordRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *KeywordRuleMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[keywordrule.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *KeywordRuleMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *KeywordRuleMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *KeywordRuleMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *KeywordRuleMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *KeywordRuleMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *KeywordRuleMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *KeywordRuleMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *KeywordRuleMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *KeywordRuleMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *KeywordRuleMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// Where appends a list predicates to the KeywordRuleMutation builder.
func (m *KeywordRuleMutation) Where(ps ...predicate.KeywordRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KeywordRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KeywordRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KeywordRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KeywordRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KeywordRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KeywordRule).
func (m *KeywordRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KeywordRuleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant != nil {
		fields = append(fields, keywordrule.FieldTenantID)
	}
	if m.phrases != nil {
		fields = append(fields, keywordrule.FieldPhrases)
	}
	if m.exclusions != nil {
		fields = append(fields, keywordrule.FieldExclusions)
	}
	if m.proximity_window != nil {
		fields = append(fields, keywordrule.FieldProximityWindow)
	}
	if m.require_order != nil {
		fields = append(fields, keywordrule.FieldRequireOrder)
	}
	if m.use_stemming != nil {
		fields = append(fields, keywordrule.FieldUseStemming)
	}
	if m.exclusion_scope != nil {
		fields = append(fields, keywordrule.FieldExclusionScope)
	}
	if m.is_active != nil {
		fields = append(fields, keywordrule.FieldIsActive)
	}
	if m.silenced_until != nil {
		fields = append(fields, keywordrule.FieldSilencedUntil)
	}
	if m.created_at != nil {
		fields = append(fields, keywordrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, keywordrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KeywordRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case keywordrule.FieldTenantID:
		return m.TenantID()
	case keywordrule.FieldPhrases:
		return m.Phrases()
	case keywordrule.FieldExclusions:
		return m.Exclusions()
	case keywordrule.FieldProximityWindow:
		return m.ProximityWindow()
	case keywordrule.FieldRequireOrder:
		return m.RequireOrder()
	case keywordrule.FieldUseStemming:
		return m.UseStemming()
	case keywordrule.FieldExclusionScope:
		return m.ExclusionScope()
	case keywordrule.FieldIsActive:
		return m.IsActive()
	case keywordrule.FieldSilencedUntil:
		return m.SilencedUntil()
	case keywordrule.FieldCreatedAt:
		return m.CreatedAt()
	case keywordrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KeywordRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case keywordrule.FieldTenantID:
		return m.OldTenantID(ctx)
	case keywordrule.FieldPhrases:
		return m.OldPhrases(ctx)
	case keywordrule.FieldExclusions:
		return m.OldExclusions(ctx)
	case keywordrule.FieldProximityWindow:
		return m.OldProximityWindow(ctx)
	case keywordrule.FieldRequireOrder:
		return m.OldRequireOrder(ctx)
	case keywordrule.FieldUseStemming:
		return m.OldUseStemming(ctx)
	case keywordrule.FieldExclusionScope:
		return m.OldExclusionScope(ctx)
	case keywordrule.FieldIsActive:
		return m.OldIsActive(ctx)
	case keywordrule.FieldSilencedUntil:
		return m.OldSilencedUntil(ctx)
	case keywordrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case keywordrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KeywordRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case keywordrule.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case keywordrule.FieldPhrases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhrases(v)
		return nil
	case keywordrule.FieldExclusions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusions(v)
		return nil
	case keywordrule.FieldProximityWindow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProximityWindow(v)
		return nil
	case keywordrule.FieldRequireOrder:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireOrder(v)
		return nil
	case keywordrule.FieldUseStemming:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseStemming(v)
		return nil
	case keywordrule.FieldExclusionScope:
		v, ok := value.(keywordrule.ExclusionScope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusionScope(v)
		return nil
	case keywordrule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case keywordrule.FieldSilencedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSilencedUntil(v)
		return nil
	case keywordrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case keywordrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KeywordRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KeywordRuleMutation) AddedFields() []string {
	var fields []string
	if m.addproximity_window != nil {
		fields = append(fields, keywordrule.FieldProximityWindow)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KeywordRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case keywordrule.FieldProximityWindow:
		return m.AddedProximityWindow()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case keywordrule.FieldProximityWindow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProximityWindow(v)
		return nil
	}
	return fmt.Errorf("unknown KeywordRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KeywordRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(keywordrule.FieldExclusions) {
		fields = append(fields, keywordrule.FieldExclusions)
	}
	if m.FieldCleared(keywordrule.FieldSilencedUntil) {
		fields = append(fields, keywordrule.FieldSilencedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KeywordRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KeywordRuleMutation) ClearField(name string) error {
	switch name {
	case keywordrule.FieldExclusions:
		m.ClearExclusions()
		return nil
	case keywordrule.FieldSilencedUntil:
		m.ClearSilencedUntil()
		return nil
	}
	return fmt.Errorf("unknown KeywordRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KeywordRuleMutation) ResetField(name string) error {
	switch name {
	case keywordrule.FieldTenantID:
		m.ResetTenantID()
		return nil
	case keywordrule.FieldPhrases:
		m.ResetPhrases()
		return nil
	case keywordrule.FieldExclusions:
		m.ResetExclusions()
		return nil
	case keywordrule.FieldProximityWindow:
		m.ResetProximityWindow()
		return nil
	case keywordrule.FieldRequireOrder:
		m.ResetRequireOrder()
		return nil
	case keywordrule.FieldUseStemming:
		m.ResetUseStemming()
		return nil
	case keywordrule.FieldExclusionScope:
		m.ResetExclusionScope()
		return nil
	case keywordrule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case keywordrule.FieldSilencedUntil:
		m.ResetSilencedUntil()
		return nil
	case keywordrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case keywordrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown KeywordRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KeywordRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, keywordrule.EdgeTenant)
	}
	if m.matches != nil {
		edges = append(edges, keywordrule.EdgeMatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KeywordRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case keywordrule.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case keywordrule.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KeywordRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmatches != nil {
		edges = append(edges, keywordrule.EdgeMatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KeywordRuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case keywordrule.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KeywordRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, keywordrule.EdgeTenant)
	}
	if m.clearedmatches {
		edges = append(edges, keywordrule.EdgeMatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KeywordRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case keywordrule.EdgeTenant:
		return m.clearedtenant
	case keywordrule.EdgeMatches:
		return m.clearedmatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KeywordRuleMutation) ClearEdge(name string) error {
	switch name {
	case keywordrule.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown KeywordRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KeywordRuleMutation) ResetEdge(name string) error {
	switch name {
	case keywordrule.EdgeTenant:
		m.ResetTenant()
		return nil
	case keywordrule.EdgeMatches:
		m.ResetMatches()
		return nil
	}
	return fmt.Errorf("unknown KeywordRule edge %s", name)
}

// MatchMutation represents an operation that mutates the Match nodes in the graph.
type MatchMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *match.Kind
	community           *string
	matched_phrase      *string
	also_matched        *[]string
	appendalso_matched  []string
	snippet             *string
	full_text           *string
	proximity_score     *float64
	addproximity_score  *float64
	reddit_url          *string
	author              *string
	is_deleted          *bool
	detected_at         *time.Time
	alert_sent_at       *time.Time
	alert_status        *match.AlertStatus
	clearedFields       map[string]struct{}
	tenant              *string
	clearedtenant       bool
	keyword_rule        *string
	clearedkeyword_rule bool
	content             *string
	clearedcontent      bool
	done                bool
	oldValue            func(context.Context) (*Match, error)
	predicates          []predicate.Match
}

var _ ent.Mutation = (*MatchMutation)(nil)

// matchOption allows management of the mutation configuration using functional options.
type matchOption func(*MatchMutation)

// newMatchMutation creates new mutation for the Match entity.
func newMatchMutation(c config, op Op, opts ...matchOption) *MatchMutation {
	m := &MatchMutation{
		config:        c,
		op:            op,
		typ:           TypeMatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchID sets the ID field of the mutation.
func withMatchID(id string) matchOption {
	return func(m *MatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Match
		)
		m.oldValue = func(ctx context.Context) (*Match, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Match.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatch sets the old Match of the mutation.
func withMatch(node *Match) matchOption {
	return func(m *MatchMutation) {
		m.oldValue = func(context.Context) (*Match, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Match entities.
func (m *MatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Match.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *MatchMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *MatchMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *MatchMutation) ResetTenantID() {
	m.tenant = nil
}

// SetKeywordRuleID sets the "keyword_rule_id" field.
func (m *MatchMutation) SetKeywordRuleID(s string) {
	m.keyword_rule = &s
}

// KeywordRuleID returns the value of the "keyword_rule_id" field in the mutation.
func (m *MatchMutation) KeywordRuleID() (r string, exists bool) {
	v := m.keyword_rule
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywordRuleID returns the old "keyword_rule_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldKeywordRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywordRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywordRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywordRuleID: %w", err)
	}
	return oldValue.KeywordRuleID, nil
}

// ResetKeywordRuleID resets all changes to the "keyword_rule_id" field.
func (m *MatchMutation) ResetKeywordRuleID() {
	m.keyword_rule = nil
}

// SetContentID sets the "content_id" field.
func (m *MatchMutation) SetContentID(s string) {
	m.content = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *MatchMutation) ContentID() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *MatchMutation) ResetContentID() {
	m.content = nil
}

// SetKind sets the "kind" field.
func (m *MatchMutation) SetKind(value match.Kind) {
	m.kind = &value
}

// Kind returns the value of the "kind" field in the mutation.
func (m *MatchMutation) Kind() (r match.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldKind(ctx context.Context) (v match.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *MatchMutation) ResetKind() {
	m.kind = nil
}

// SetCommunity sets the "community" field.
func (m *MatchMutation) SetCommunity(s string) {
	m.community = &s
}

// Community returns the value of the "community" field in the mutation.
func (m *MatchMutation) Community() (r string, exists bool) {
	v := m.community
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunity returns the old "community" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCommunity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunity: %w", err)
	}
	return oldValue.Community, nil
}

// ResetCommunity resets all changes to the "community" field.
func (m *MatchMutation) ResetCommunity() {
	m.community = nil
}

// SetMatchedPhrase sets the "matched_phrase" field.
func (m *MatchMutation) SetMatchedPhrase(s string) {
	m.matched_phrase = &s
}

// MatchedPhrase returns the value of the "matched_phrase" field in the mutation.
func (m *MatchMutation) MatchedPhrase() (r string, exists bool) {
	v := m.matched_phrase
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedPhrase returns the old "matched_phrase" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldMatchedPhrase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedPhrase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedPhrase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedPhrase: %w", err)
	}
	return oldValue.MatchedPhrase, nil
}

// ResetMatchedPhrase resets all changes to the "matched_phrase" field.
func (m *MatchMutation) ResetMatchedPhrase() {
	m.matched_phrase = nil
}

// SetAlsoMatched sets the "also_matched" field.
func (m *MatchMutation) SetAlsoMatched(s []string) {
	m.also_matched = &s
	m.appendalso_matched = nil
}

// AlsoMatched returns the value of the "also_matched" field in the mutation.
func (m *MatchMutation) AlsoMatched() (r []string, exists bool) {
	v := m.also_matched
	if v == nil {
		return
	}
	return *v, true
}

// OldAlsoMatched returns the old "also_matched" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldAlsoMatched(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlsoMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlsoMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlsoMatched: %w", err)
	}
	return oldValue.AlsoMatched, nil
}

// AppendAlsoMatched adds s to the "also_matched" field.
func (m *MatchMutation) AppendAlsoMatched(s []string) {
	m.appendalso_matched = append(m.appendalso_matched, s...)
}

// AppendedAlsoMatched returns the list of values that were appended to the "also_matched" field in this mutation.
func (m *MatchMutation) AppendedAlsoMatched() ([]string, bool) {
	if len(m.appendalso_matched) == 0 {
		return nil, false
	}
	return m.appendalso_matched, true
}

// ClearAlsoMatched clears the value of the "also_matched" field.
func (m *MatchMutation) ClearAlsoMatched() {
	m.also_matched = nil
	m.appendalso_matched = nil
	m.clearedFields[match.FieldAlsoMatched] = struct{}{}
}

// AlsoMatchedCleared returns if the "also_matched" field was cleared in this mutation.
func (m *MatchMutation) AlsoMatchedCleared() bool {
	_, ok := m.clearedFields[match.FieldAlsoMatched]
	return ok
}

// ResetAlsoMatched resets all changes to the "also_matched" field.
func (m *MatchMutation) ResetAlsoMatched() {
	m.also_matched = nil
	m.appendalso_matched = nil
	delete(m.clearedFields, match.FieldAlsoMatched)
}

// SetSnippet sets the "snippet" field.
func (m *MatchMutation) SetSnippet(s string) {
	m.snippet = &s
}

// Snippet returns the value of the "snippet" field in the mutation.
func (m *MatchMutation) Snippet() (r string, exists bool) {
	v := m.snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippet returns the old "snippet" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldSnippet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippet: %w", err)
	}
	return oldValue.Snippet, nil
}

// ResetSnippet resets all changes to the "snippet" field.
func (m *MatchMutation) ResetSnippet() {
	m.snippet = nil
}

// SetFullText sets the "full_text" field.
func (m *MatchMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *MatchMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldFullText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ClearFullText clears the value of the "full_text" field.
func (m *MatchMutation) ClearFullText() {
	m.full_text = nil
	m.clearedFields[match.FieldFullText] = struct{}{}
}

// FullTextCleared returns if the "full_text" field was cleared in this mutation.
func (m *MatchMutation) FullTextCleared() bool {
	_, ok := m.clearedFields[match.FieldFullText]
	return ok
}

// ResetFullText resets all changes to the "full_text" field.
func (m *MatchMutation) ResetFullText() {
	m.full_text = nil
	delete(m.clearedFields, match.FieldFullText)
}

// SetProximityScore sets the "proximity_score" field.
func (m *MatchMutation) SetProximityScore(f float64) {
	m.proximity_score = &f
	m.addproximity_score = nil
}

// ProximityScore returns the value of the "proximity_score" field in the mutation.
func (m *MatchMutation) ProximityScore() (r float64, exists bool) {
	v := m.proximity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldProximityScore returns the old "proximity_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldProximityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProximityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProximityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProximityScore: %w", err)
	}
	return oldValue.ProximityScore, nil
}

// AddProximityScore adds f to the "proximity_score" field.
func (m *MatchMutation) AddProximityScore(f float64) {
	if m.addproximity_score != nil {
		*m.addproximity_score += f
	} else {
		m.addproximity_score = &f
	}
}

// AddedProximityScore returns the value that was added to the "proximity_score" field in this mutation.
func (m *MatchMutation) AddedProximityScore() (r float64, exists bool) {
	v := m.addproximity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetProximityScore resets all changes to the "proximity_score" field.
func (m *MatchMutation) ResetProximityScore() {
	m.proximity_score = nil
	m.addproximity_score = nil
}

// SetRedditURL sets the "reddit_url" field.
func (m *MatchMutation) SetRedditURL(s string) {
	m.reddit_url = &s
}

// RedditURL returns the value of the "reddit_url" field in the mutation.
func (m *MatchMutation) RedditURL() (r string, exists bool) {
	v := m.reddit_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRedditURL returns the old "reddit_url" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldRedditURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRedditURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRedditURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRedditURL: %w", err)
	}
	return oldValue.RedditURL, nil
}

// ResetRedditURL resets all changes to the "reddit_url" field.
func (m *MatchMutation) ResetRedditURL() {
	m.reddit_url = nil
}

// SetAuthor sets the "author" field.
func (m *MatchMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *MatchMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *MatchMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[match.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *MatchMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[match.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *MatchMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, match.FieldAuthor)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *MatchMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *MatchMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *MatchMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetDetectedAt sets the "detected_at" field.
func (m *MatchMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *MatchMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *MatchMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// SetAlertSentAt sets the "alert_sent_at" field.
func (m *MatchMutation) SetAlertSentAt(t time.Time) {
	m.alert_sent_at = &t
}

// AlertSentAt returns the value of the "alert_sent_at" field in the mutation.
func (m *MatchMutation) AlertSentAt() (r time.Time, exists bool) {
	v := m.alert_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertSentAt returns the old "alert_sent_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldAlertSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertSentAt: %w", err)
	}
	return oldValue.AlertSentAt, nil
}

// ClearAlertSentAt clears the value of the "alert_sent_at" field.
func (m *MatchMutation) ClearAlertSentAt() {
	m.alert_sent_at = nil
	m.clearedFields[match.FieldAlertSentAt] = struct{}{}
}

// AlertSentAtCleared returns if the "alert_sent_at" field was cleared in this mutation.
func (m *MatchMutation) AlertSentAtCleared() bool {
	_, ok := m.clearedFields[match.FieldAlertSentAt]
	return ok
}

// ResetAlertSentAt resets all changes to the "alert_sent_at" field.
func (m *MatchMutation) ResetAlertSentAt() {
	m.alert_sent_at = nil
	delete(m.clearedFields, match.FieldAlertSentAt)
}

// SetAlertStatus sets the "alert_status" field.
func (m *MatchMutation) SetAlertStatus(ms match.AlertStatus) {
	m.alert_status = &ms
}

// AlertStatus returns the value of the "alert_status" field in the mutation.
func (m *MatchMutation) AlertStatus() (r match.AlertStatus, exists bool) {
	v := m.alert_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertStatus returns the old "alert_status" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldAlertStatus(ctx context.Context) (v match.AlertStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertStatus: %w", err)
	}
	return oldValue.AlertStatus, nil
}

// ResetAlertStatus resets all changes to the "alert_status" field.
func (m *MatchMutation) ResetAlertStatus() {
	m.alert_status = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *MatchMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[match.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *MatchMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *MatchMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearKeywordRule clears the "keyword_rule" edge to the KeywordRule entity.
func (m *MatchMutation) ClearKeywordRule() {
	m.clearedkeyword_rule = true
	m.clearedFields[match.FieldKeywordRuleID] = struct{}{}
}

// KeywordRuleCleared reports if the "keyword_rule" edge to the KeywordRule entity was cleared.
func (m *MatchMutation) KeywordRuleCleared() bool {
	return m.clearedkeyword_rule
}

// KeywordRuleIDs returns the "keyword_rule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KeywordRuleID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) KeywordRuleIDs() (ids []string) {
	if id := m.keyword_rule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKeywordRule resets all changes to the "keyword_rule" edge.
func (m *MatchMutation) ResetKeywordRule() {
	m.keyword_rule = nil
	m.clearedkeyword_rule = false
}

// ClearContent clears the "content" edge to the ContentItem entity.
func (m *MatchMutation) ClearContent() {
	m.clearedcontent = true
	m.clearedFields[match.FieldContentID] = struct{}{}
}

// ContentCleared reports if the "content" edge to the ContentItem entity was cleared.
func (m *MatchMutation) ContentCleared() bool {
	return m.clearedcontent
}

// ContentIDs returns the "content" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContentID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) ContentIDs() (ids []string) {
	if id := m.content; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContent resets all changes to the "content" edge.
func (m *MatchMutation) ResetContent() {
	m.content = nil
	m.clearedcontent = false
}

// Where appends a list predicates to the MatchMutation builder.
func (m *MatchMutation) Where(ps ...predicate.Match) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Match, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Match).
func (m *MatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.tenant != nil {
		fields = append(fields, match.FieldTenantID)
	}
	if m.keyword_rule != nil {
		fields = append(fields, match.FieldKeywordRuleID)
	}
	if m.content != nil {
		fields = append(fields, match.FieldContentID)
	}
	if m.kind != nil {
		fields = append(fields, match.FieldKind)
	}
	if m.community != nil {
		fields = append(fields, match.FieldCommunity)
	}
	if m.matched_phrase != nil {
		fields = append(fields, match.FieldMatchedPhrase)
	}
	if m.also_matched != nil {
		fields = append(fields, match.FieldAlsoMatched)
	}
	if m.snippet != nil {
		fields = append(fields, match.FieldSnippet)
	}
	if m.full_text != nil {
		fields = append(fields, match.FieldFullText)
	}
	if m.proximity_score != nil {
		fields = append(fields, match.FieldProximityScore)
	}
	if m.reddit_url != nil {
		fields = append(fields, match.FieldRedditURL)
	}
	if m.author != nil {
		fields = append(fields, match.FieldAuthor)
	}
	if m.is_deleted != nil {
		fields = append(fields, match.FieldIsDeleted)
	}
	if m.detected_at != nil {
		fields = append(fields, match.FieldDetectedAt)
	}
	if m.alert_sent_at != nil {
		fields = append(fields, match.FieldAlertSentAt)
	}
	if m.alert_status != nil {
		fields = append(fields, match.FieldAlertStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case match.FieldTenantID:
		return m.TenantID()
	case match.FieldKeywordRuleID:
		return m.KeywordRuleID()
	case match.FieldContentID:
		return m.ContentID()
	case match.FieldKind:
		return m.Kind()
	case match.FieldCommunity:
		return m.Community()
	case match.FieldMatchedPhrase:
		return m.MatchedPhrase()
	case match.FieldAlsoMatched:
		return m.AlsoMatched()
	case match.FieldSnippet:
		return m.Snippet()
	case match.FieldFullText:
		return m.FullText()
	case match.FieldProximityScore:
		return m.ProximityScore()
	case match.FieldRedditURL:
		return m.RedditURL()
	case match.FieldAuthor:
		return m.Author()
	case match.FieldIsDeleted:
		return m.IsDeleted()
	case match.FieldDetectedAt:
		return m.DetectedAt()
	case match.FieldAlertSentAt:
		return m.AlertSentAt()
	case match.FieldAlertStatus:
		return m.AlertStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case match.FieldTenantID:
		return m.OldTenantID(ctx)
	case match.FieldKeywordRuleID:
		return m.OldKeywordRuleID(ctx)
	case match.FieldContentID:
		return m.OldContentID(ctx)
	case match.FieldKind:
		return m.OldKind(ctx)
	case match.FieldCommunity:
		return m.OldCommunity(ctx)
	case match.FieldMatchedPhrase:
		return m.OldMatchedPhrase(ctx)
	case match.FieldAlsoMatched:
		return m.OldAlsoMatched(ctx)
	case match.FieldSnippet:
		return m.OldSnippet(ctx)
	case match.FieldFullText:
		return m.OldFullText(ctx)
	case match.FieldProximityScore:
		return m.OldProximityScore(ctx)
	case match.FieldRedditURL:
		return m.OldRedditURL(ctx)
	case match.FieldAuthor:
		return m.OldAuthor(ctx)
	case match.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case match.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	case match.FieldAlertSentAt:
		return m.OldAlertSentAt(ctx)
	case match.FieldAlertStatus:
		return m.OldAlertStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Match field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case match.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case match.FieldKeywordRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywordRuleID(v)
		return nil
	case match.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case match.FieldKind:
		v, ok := value.(match.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case match.FieldCommunity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunity(v)
		return nil
	case match.FieldMatchedPhrase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedPhrase(v)
		return nil
	case match.FieldAlsoMatched:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlsoMatched(v)
		return nil
	case match.FieldSnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippet(v)
		return nil
	case match.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case match.FieldProximityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProximityScore(v)
		return nil
	case match.FieldRedditURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRedditURL(v)
		return nil
	case match.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case match.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case match.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	case match.FieldAlertSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertSentAt(v)
		return nil
	case match.FieldAlertStatus:
		v, ok := value.(match.AlertStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchMutation) AddedFields() []string {
	var fields []string
	if m.addproximity_score != nil {
		fields = append(fields, match.FieldProximityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case match.FieldProximityScore:
		return m.AddedProximityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case match.FieldProximityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProximityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Match numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(match.FieldAlsoMatched) {
		fields = append(fields, match.FieldAlsoMatched)
	}
	if m.FieldCleared(match.FieldFullText) {
		fields = append(fields, match.FieldFullText)
	}
	if m.FieldCleared(match.FieldAuthor) {
		fields = append(fields, match.FieldAuthor)
	}
	if m.FieldCleared(match.FieldAlertSentAt) {
		fields = append(fields, match.FieldAlertSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchMutation) ClearField(name string) error {
	switch name {
	case match.FieldAlsoMatched:
		m.ClearAlsoMatched()
		return nil
	case match.FieldFullText:
		m.ClearFullText()
		return nil
	case match.FieldAuthor:
		m.ClearAuthor()
		return nil
	case match.FieldAlertSentAt:
		m.ClearAlertSentAt()
		return nil
	}
	return fmt.Errorf("unknown Match nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchMutation) ResetField(name string) error {
	switch name {
	case match.FieldTenantID:
		m.ResetTenantID()
		return nil
	case match.FieldKeywordRuleID:
		m.ResetKeywordRuleID()
		return nil
	case match.FieldContentID:
		m.ResetContentID()
		return nil
	case match.FieldKind:
		m.ResetKind()
		return nil
	case match.FieldCommunity:
		m.ResetCommunity()
		return nil
	case match.FieldMatchedPhrase:
		m.ResetMatchedPhrase()
		return nil
	case match.FieldAlsoMatched:
		m.ResetAlsoMatched()
		return nil
	case match.FieldSnippet:
		m.ResetSnippet()
		return nil
	case match.FieldFullText:
		m.ResetFullText()
		return nil
	case match.FieldProximityScore:
		m.ResetProximityScore()
		return nil
	case match.FieldRedditURL:
		m.ResetRedditURL()
		return nil
	case match.FieldAuthor:
		m.ResetAuthor()
		return nil
	case match.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case match.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	case match.FieldAlertSentAt:
		m.ResetAlertSentAt()
		return nil
	case match.FieldAlertStatus:
		m.ResetAlertStatus()
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tenant != nil {
		edges = append(edges, match.EdgeTenant)
	}
	if m.keyword_rule != nil {
		edges = append(edges, match.EdgeKeywordRule)
	}
	if m.content != nil {
		edges = append(edges, match.EdgeContent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case match.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeKeywordRule:
		if id := m.keyword_rule; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeContent:
		if id := m.content; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtenant {
		edges = append(edges, match.EdgeTenant)
	}
	if m.clearedkeyword_rule {
		edges = append(edges, match.EdgeKeywordRule)
	}
	if m.clearedcontent {
		edges = append(edges, match.EdgeContent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchMutation) EdgeCleared(name string) bool {
	switch name {
	case match.EdgeTenant:
		return m.clearedtenant
	case match.EdgeKeywordRule:
		return m.clearedkeyword_rule
	case match.EdgeContent:
		return m.clearedcontent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchMutation) ClearEdge(name string) error {
	switch name {
	case match.EdgeTenant:
		m.ClearTenant()
		return nil
	case match.EdgeKeywordRule:
		m.ClearKeywordRule()
		return nil
	case match.EdgeContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown Match unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchMutation) ResetEdge(name string) error {
	switch name {
	case match.EdgeTenant:
		m.ResetTenant()
		return nil
	case match.EdgeKeywordRule:
		m.ResetKeywordRule()
		return nil
	case match.EdgeContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown Match edge %s", name)
}

// MonitoredCommunityMutation represents an operation that mutates the MonitoredCommunity nodes in the graph.
type MonitoredCommunityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	include_media_posts *bool
	dedupe_crossposts   *bool
	filter_bots         *bool
	status              *monitoredcommunity.Status
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *string
	clearedtenant       bool
	done                bool
	oldValue            func(context.Context) (*MonitoredCommunity, error)
	predicates          []predicate.MonitoredCommunity
}

var _ ent.Mutation = (*MonitoredCommunityMutation)(nil)

// monitoredcommunityOption allows management of the mutation configuration using functional options.
type monitoredcommunityOption func(*MonitoredCommunityMutation)

// newMonitoredCommunityMutation creates new mutation for the MonitoredCommunity entity.
func newMonitoredCommunityMutation(c config, op Op, opts ...monitoredcommunityOption) *MonitoredCommunityMutation {
	m := &MonitoredCommunityMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitoredCommunity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitoredCommunityID sets the ID field of the mutation.
func withMonitoredCommunityID(id string) monitoredcommunityOption {
	return func(m *MonitoredCommunityMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitoredCommunity
		)
		m.oldValue = func(ctx context.Context) (*MonitoredCommunity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitoredCommunity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitoredCommunity sets the old MonitoredCommunity of the mutation.
func withMonitoredCommunity(node *MonitoredCommunity) monitoredcommunityOption {
	return func(m *MonitoredCommunityMutation) {
		m.oldValue = func(context.Context) (*MonitoredCommunity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitoredCommunityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitoredCommunityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonitoredCommunity entities.
func (m *MonitoredCommunityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitoredCommunityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitoredCommunityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitoredCommunity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *MonitoredCommunityMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *MonitoredCommunityMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *MonitoredCommunityMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *MonitoredCommunityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MonitoredCommunityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *MonitoredCommunityMutation) ResetName() {
	m.name = nil
}

// SetIncludeMediaPosts sets the "include_media_posts" field.
func (m *MonitoredCommunityMutation) SetIncludeMediaPosts(b bool) {
	m.include_media_posts = &b
}

// IncludeMediaPosts returns the value of the "include_media_posts" field in the mutation.
func (m *MonitoredCommunityMutation) IncludeMediaPosts() (r bool, exists bool) {
	v := m.include_media_posts
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeMediaPosts returns the old "include_media_posts" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldIncludeMediaPosts(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeMediaPosts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeMediaPosts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeMediaPosts: %w", err)
	}
	return oldValue.IncludeMediaPosts, nil
}

// ResetIncludeMediaPosts resets all changes to the "include_media_posts" field.
func (m *MonitoredCommunityMutation) ResetIncludeMediaPosts() {
	m.include_media_posts = nil
}

// SetDedupeCrossposts sets the "dedupe_crossposts" field.
func (m *MonitoredCommunityMutation) SetDedupeCrossposts(b bool) {
	m.dedupe_crossposts = &b
}

// DedupeCrossposts returns the value of the "dedupe_crossposts" field in the mutation.
func (m *MonitoredCommunityMutation) DedupeCrossposts() (r bool, exists bool) {
	v := m.dedupe_crossposts
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeCrossposts returns the old "dedupe_crossposts" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldDedupeCrossposts(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeCrossposts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeCrossposts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeCrossposts: %w", err)
	}
	return oldValue.DedupeCrossposts, nil
}

// ResetDedupeCrossposts resets all changes to the "dedupe_crossposts" field.
func (m *MonitoredCommunityMutation) ResetDedupeCrossposts() {
	m.dedupe_crossposts = nil
}

// SetFilterBots sets the "filter_bots" field.
func (m *MonitoredCommunityMutation) SetFilterBots(b bool) {
	m.filter_bots = &b
}

// FilterBots returns the value of the "filter_bots" field in the mutation.
func (m *MonitoredCommunityMutation) FilterBots() (r bool, exists bool) {
	v := m.filter_bots
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterBots returns the old "filter_bots" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldFilterBots(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterBots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterBots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterBots: %w", err)
	}
	return oldValue.FilterBots, nil
}

// ResetFilterBots resets all changes to the "filter_bots" field.
func (m *MonitoredCommunityMutation) ResetFilterBots() {
	m.filter_bots = nil
}

// SetStatus sets the "status" field.
func (m *MonitoredCommunityMutation) SetStatus(value monitoredcommunity.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MonitoredCommunityMutation) Status() (r monitoredcommunity.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldStatus(ctx context.Context) (v monitoredcommunity.Status, err error) {
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
func (m *MonitoredCommunityMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MonitoredCommunityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MonitoredCommunityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MonitoredCommunityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MonitoredCommunityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MonitoredCommunityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MonitoredCommunity entity.
// If the MonitoredCommunity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredCommunityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MonitoredCommunityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *MonitoredCommunityMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[monitoredcommunity.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *MonitoredCommunityMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *MonitoredCommunityMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *MonitoredCommunityMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the MonitoredCommunityMutation builder.
func (m *MonitoredCommunityMutation) Where(ps ...predicate.MonitoredCommunity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitoredCommunityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitoredCommunityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitoredCommunity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitoredCommunityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitoredCommunityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitoredCommunity).
func (m *MonitoredCommunityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitoredCommunityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, monitoredcommunity.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, monitoredcommunity.FieldName)
	}
	if m.include_media_posts != nil {
		fields = append(fields, monitoredcommunity.FieldIncludeMediaPosts)
	}
	if m.dedupe_crossposts != nil {
		fields = append(fields, monitoredcommunity.FieldDedupeCrossposts)
	}
	if m.filter_bots != nil {
		fields = append(fields, monitoredcommunity.FieldFilterBots)
	}
	if m.status != nil {
		fields = append(fields, monitoredcommunity.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, monitoredcommunity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, monitoredcommunity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitoredCommunityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoredcommunity.FieldTenantID:
		return m.TenantID()
	case monitoredcommunity.FieldName:
		return m.Name()
	case monitoredcommunity.FieldIncludeMediaPosts:
		return m.IncludeMediaPosts()
	case monitoredcommunity.FieldDedupeCrossposts:
		return m.DedupeCrossposts()
	case monitoredcommunity.FieldFilterBots:
		return m.FilterBots()
	case monitoredcommunity.FieldStatus:
		return m.Status()
	case monitoredcommunity.FieldCreatedAt:
		return m.CreatedAt()
	case monitoredcommunity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitoredCommunityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoredcommunity.FieldTenantID:
		return m.OldTenantID(ctx)
	case monitoredcommunity.FieldName:
		return m.OldName(ctx)
	case monitoredcommunity.FieldIncludeMediaPosts:
		return m.OldIncludeMediaPosts(ctx)
	case monitoredcommunity.FieldDedupeCrossposts:
		return m.OldDedupeCrossposts(ctx)
	case monitoredcommunity.FieldFilterBots:
		return m.OldFilterBots(ctx)
	case monitoredcommunity.FieldStatus:
		return m.OldStatus(ctx)
	case monitoredcommunity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case monitoredcommunity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonitoredCommunity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoredCommunityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoredcommunity.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case monitoredcommunity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case monitoredcommunity.FieldIncludeMediaPosts:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeMediaPosts(v)
		return nil
	case monitoredcommunity.FieldDedupeCrossposts:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeCrossposts(v)
		return nil
	case monitoredcommunity.FieldFilterBots:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterBots(v)
		return nil
	case monitoredcommunity.FieldStatus:
		v, ok := value.(monitoredcommunity.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case monitoredcommunity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case monitoredcommunity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoredCommunity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitoredCommunityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitoredCommunityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoredCommunityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MonitoredCommunity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitoredCommunityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitoredCommunityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitoredCommunityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MonitoredCommunity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitoredCommunityMutation) ResetField(name string) error {
	switch name {
	case monitoredcommunity.FieldTenantID:
		m.ResetTenantID()
		return nil
	case monitoredcommunity.FieldName:
		m.ResetName()
		return nil
	case monitoredcommunity.FieldIncludeMediaPosts:
		m.ResetIncludeMediaPosts()
		return nil
	case monitoredcommunity.FieldDedupeCrossposts:
		m.ResetDedupeCrossposts()
		return nil
	case monitoredcommunity.FieldFilterBots:
		m.ResetFilterBots()
		return nil
	case monitoredcommunity.FieldStatus:
		m.ResetStatus()
		return nil
	case monitoredcommunity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case monitoredcommunity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitoredCommunity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitoredCommunityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, monitoredcommunity.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitoredCommunityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case monitoredcommunity.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitoredCommunityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitoredCommunityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitoredCommunityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, monitoredcommunity.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitoredCommunityMutation) EdgeCleared(name string) bool {
	switch name {
	case monitoredcommunity.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitoredCommunityMutation) ClearEdge(name string) error {
	switch name {
	case monitoredcommunity.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown MonitoredCommunity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitoredCommunityMutation) ResetEdge(name string) error {
	switch name {
	case monitoredcommunity.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown MonitoredCommunity edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	contact_email                *string
	poll_interval_minutes        *int
	addpoll_interval_minutes     *int
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	keyword_rules                map[string]struct{}
	removedkeyword_rules         map[string]struct{}
	clearedkeyword_rules         bool
	monitored_communities        map[string]struct{}
	removedmonitored_communities map[string]struct{}
	clearedmonitored_communities bool
	webhook_endpoints            map[string]struct{}
	removedwebhook_endpoints     map[string]struct{}
	clearedwebhook_endpoints     bool
	matches                      map[string]struct{}
	removedmatches               map[string]struct{}
	clearedmatches               bool
	done                         bool
	oldValue                     func(context.Context) (*Tenant, error)
	predicates                   []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContactEmail sets the "contact_email" field.
func (m *TenantMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *TenantMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldContactEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *TenantMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[tenant.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *TenantMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[tenant.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *TenantMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, tenant.FieldContactEmail)
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (m *TenantMutation) SetPollIntervalMinutes(i int) {
	m.poll_interval_minutes = &i
	m.addpoll_interval_minutes = nil
}

// PollIntervalMinutes returns the value of the "poll_interval_minutes" field in the mutation.
func (m *TenantMutation) PollIntervalMinutes() (r int, exists bool) {
	v := m.poll_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPollIntervalMinutes returns the old "poll_interval_minutes" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldPollIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPollIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPollIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPollIntervalMinutes: %w", err)
	}
	return oldValue.PollIntervalMinutes, nil
}

// AddPollIntervalMinutes adds i to the "poll_interval_minutes" field.
func (m *TenantMutation) AddPollIntervalMinutes(i int) {
	if m.addpoll_interval_minutes != nil {
		*m.addpoll_interval_minutes += i
	} else {
		m.addpoll_interval_minutes = &i
	}
}

// AddedPollIntervalMinutes returns the value that was added to the "poll_interval_minutes" field in this mutation.
func (m *TenantMutation) AddedPollIntervalMinutes() (r int, exists bool) {
	v := m.addpoll_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPollIntervalMinutes resets all changes to the "poll_interval_minutes" field.
func (m *TenantMutation) ResetPollIntervalMinutes() {
	m.poll_interval_minutes = nil
	m.addpoll_interval_minutes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddKeywordRuleIDs adds the "keyword_rules" edge to the KeywordRule entity by ids.
func (m *TenantMutation) AddKeywordRuleIDs(ids ...string) {
	if m.keyword_rules == nil {
		m.keyword_rules = make(map[string]struct{})
	}
	for i := range ids {
		m.keyword_rules[ids[i]] = struct{}{}
	}
}

// ClearKeywordRules clears the "keyword_rules" edge to the KeywordRule entity.
func (m *TenantMutation) ClearKeywordRules() {
	m.clearedkeyword_rules = true
}

// KeywordRulesCleared reports if the "keyword_rules" edge to the KeywordRule entity was cleared.
func (m *TenantMutation) KeywordRulesCleared() bool {
	return m.clearedkeyword_rules
}

// RemoveKeywordRuleIDs removes the "keyword_rules" edge to the KeywordRule entity by IDs.
func (m *TenantMutation) RemoveKeywordRuleIDs(ids ...string) {
	if m.removedkeyword_rules == nil {
		m.removedkeyword_rules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.keyword_rules, ids[i])
		m.removedkeyword_rules[ids[i]] = struct{}{}
	}
}

// RemovedKeywordRules returns the removed IDs of the "keyword_rules" edge to the KeywordRule entity.
func (m *TenantMutation) RemovedKeywordRulesIDs() (ids []string) {
	for id := range m.removedkeyword_rules {
		ids = append(ids, id)
	}
	return
}

// KeywordRulesIDs returns the "keyword_rules" edge IDs in the mutation.
func (m *TenantMutation) KeywordRulesIDs() (ids []string) {
	for id := range m.keyword_rules {
		ids = append(ids, id)
	}
	return
}

// ResetKeywordRules resets all changes to the "keyword_rules" edge.
func (m *TenantMutation) ResetKeywordRules() {
	m.keyword_rules = nil
	m.clearedkeyword_rules = false
	m.removedkeyword_rules = nil
}

// AddMonitoredCommunityIDs adds the "monitored_communities" edge to the MonitoredCommunity entity by ids.
func (m *TenantMutation) AddMonitoredCommunityIDs(ids ...string) {
	if m.monitored_communities == nil {
		m.monitored_communities = make(map[string]struct{})
	}
	for i := range ids {
		m.monitored_communities[ids[i]] = struct{}{}
	}
}

// ClearMonitoredCommunities clears the "monitored_communities" edge to the MonitoredCommunity entity.
func (m *TenantMutation) ClearMonitoredCommunities() {
	m.clearedmonitored_communities = true
}

// MonitoredCommunitiesCleared reports if the "monitored_communities" edge to the MonitoredCommunity entity was cleared.
func (m *TenantMutation) MonitoredCommunitiesCleared() bool {
	return m.clearedmonitored_communities
}

// RemoveMonitoredCommunityIDs removes the "monitored_communities" edge to the MonitoredCommunity entity by IDs.
func (m *TenantMutation) RemoveMonitoredCommunityIDs(ids ...string) {
	if m.removedmonitored_communities == nil {
		m.removedmonitored_communities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.monitored_communities, ids[i])
		m.removedmonitored_communities[ids[i]] = struct{}{}
	}
}

// RemovedMonitoredCommunities returns the removed IDs of the "monitored_communities" edge to the MonitoredCommunity entity.
func (m *TenantMutation) RemovedMonitoredCommunitiesIDs() (ids []string) {
	for id := range m.removedmonitored_communities {
		ids = append(ids, id)
	}
	return
}

// MonitoredCommunitiesIDs returns the "monitored_communities" edge IDs in the mutation.
func (m *TenantMutation) MonitoredCommunitiesIDs() (ids []string) {
	for id := range m.monitored_communities {
		ids = append(ids, id)
	}
	return
}

// ResetMonitoredCommunities resets all changes to the "monitored_communities" edge.
func (m *TenantMutation) ResetMonitoredCommunities() {
	m.monitored_communities = nil
	m.clearedmonitored_communities = false
	m.removedmonitored_communities = nil
}

// AddWebhookEndpointIDs adds the "webhook_endpoints" edge to the WebhookEndpoint entity by ids.
func (m *TenantMutation) AddWebhookEndpointIDs(ids ...string) {
	if m.webhook_endpoints == nil {
		m.webhook_endpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.webhook_endpoints[ids[i]] = struct{}{}
	}
}

// ClearWebhookEndpoints clears the "webhook_endpoints" edge to the WebhookEndpoint entity.
func (m *TenantMutation) ClearWebhookEndpoints() {
	m.clearedwebhook_endpoints = true
}

// WebhookEndpointsCleared reports if the "webhook_endpoints" edge to the WebhookEndpoint entity was cleared.
func (m *TenantMutation) WebhookEndpointsCleared() bool {
	return m.clearedwebhook_endpoints
}

// RemoveWebhookEndpointIDs removes the "webhook_endpoints" edge to the WebhookEndpoint entity by IDs.
func (m *TenantMutation) RemoveWebhookEndpointIDs(ids ...string) {
	if m.removedwebhook_endpoints == nil {
		m.removedwebhook_endpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.webhook_endpoints, ids[i])
		m.removedwebhook_endpoints[ids[i]] = struct{}{}
	}
}

// RemovedWebhookEndpoints returns the removed IDs of the "webhook_endpoints" edge to the WebhookEndpoint entity.
func (m *TenantMutation) RemovedWebhookEndpointsIDs() (ids []string) {
	for id := range m.removedwebhook_endpoints {
		ids = append(ids, id)
	}
	return
}

// WebhookEndpointsIDs returns the "webhook_endpoints" edge IDs in the mutation.
func (m *TenantMutation) WebhookEndpointsIDs() (ids []string) {
	for id := range m.webhook_endpoints {
		ids = append(ids, id)
	}
	return
}

// ResetWebhookEndpoints resets all changes to the "webhook_endpoints" edge.
func (m *TenantMutation) ResetWebhookEndpoints() {
	m.webhook_endpoints = nil
	m.clearedwebhook_endpoints = false
	m.removedwebhook_endpoints = nil
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *TenantMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *TenantMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *TenantMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *TenantMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *TenantMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *TenantMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *TenantMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.contact_email != nil {
		fields = append(fields, tenant.FieldContactEmail)
	}
	if m.poll_interval_minutes != nil {
		fields = append(fields, tenant.FieldPollIntervalMinutes)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldContactEmail:
		return m.ContactEmail()
	case tenant.FieldPollIntervalMinutes:
		return m.PollIntervalMinutes()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case tenant.FieldPollIntervalMinutes:
		return m.OldPollIntervalMinutes(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case tenant.FieldPollIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPollIntervalMinutes(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	var fields []string
	if m.addpoll_interval_minutes != nil {
		fields = append(fields, tenant.FieldPollIntervalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldPollIntervalMinutes:
		return m.AddedPollIntervalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldPollIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPollIntervalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldContactEmail) {
		fields = append(fields, tenant.FieldContactEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case tenant.FieldPollIntervalMinutes:
		m.ResetPollIntervalMinutes()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.keyword_rules != nil {
		edges = append(edges, tenant.EdgeKeywordRules)
	}
	if m.monitored_communities != nil {
		edges = append(edges, tenant.EdgeMonitoredCommunities)
	}
	if m.webhook_endpoints != nil {
		edges = append(edges, tenant.EdgeWebhookEndpoints)
	}
	if m.matches != nil {
		edges = append(edges, tenant.EdgeMatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeKeywordRules:
		ids := make([]ent.Value, 0, len(m.keyword_rules))
		for id := range m.keyword_rules {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeMonitoredCommunities:
		ids := make([]ent.Value, 0, len(m.monitored_communities))
		for id := range m.monitored_communities {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeWebhookEndpoints:
		ids := make([]ent.Value, 0, len(m.webhook_endpoints))
		for id := range m.webhook_endpoints {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedkeyword_rules != nil {
		edges = append(edges, tenant.EdgeKeywordRules)
	}
	if m.removedmonitored_communities != nil {
		edges = append(edges, tenant.EdgeMonitoredCommunities)
	}
	if m.removedwebhook_endpoints != nil {
		edges = append(edges, tenant.EdgeWebhookEndpoints)
	}
	if m.removedmatches != nil {
		edges = append(edges, tenant.EdgeMatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeKeywordRules:
		ids := make([]ent.Value, 0, len(m.removedkeyword_rules))
		for id := range m.removedkeyword_rules {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeMonitoredCommunities:
		ids := make([]ent.Value, 0, len(m.removedmonitored_communities))
		for id := range m.removedmonitored_communities {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeWebhookEndpoints:
		ids := make([]ent.Value, 0, len(m.removedwebhook_endpoints))
		for id := range m.removedwebhook_endpoints {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedkeyword_rules {
		edges = append(edges, tenant.EdgeKeywordRules)
	}
	if m.clearedmonitored_communities {
		edges = append(edges, tenant.EdgeMonitoredCommunities)
	}
	if m.clearedwebhook_endpoints {
		edges = append(edges, tenant.EdgeWebhookEndpoints)
	}
	if m.clearedmatches {
		edges = append(edges, tenant.EdgeMatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeKeywordRules:
		return m.clearedkeyword_rules
	case tenant.EdgeMonitoredCommunities:
		return m.clearedmonitored_communities
	case tenant.EdgeWebhookEndpoints:
		return m.clearedwebhook_endpoints
	case tenant.EdgeMatches:
		return m.clearedmatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeKeywordRules:
		m.ResetKeywordRules()
		return nil
	case tenant.EdgeMonitoredCommunities:
		m.ResetMonitoredCommunities()
		return nil
	case tenant.EdgeWebhookEndpoints:
		m.ResetWebhookEndpoints()
		return nil
	case tenant.EdgeMatches:
		m.ResetMatches()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// WebhookEndpointMutation represents an operation that mutates the WebhookEndpoint nodes in the graph.
type WebhookEndpointMutation struct {
	config
	op             Op
	typ            string
	id             *string
	url            *string
	guild_name     *string
	is_primary     *bool
	is_active      *bool
	last_tested_at *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	tenant         *string
	clearedtenant  bool
	done           bool
	oldValue       func(context.Context) (*WebhookEndpoint, error)
	predicates     []predicate.WebhookEndpoint
}

var _ ent.Mutation = (*WebhookEndpointMutation)(nil)

// webhookendpointOption allows management of the mutation configuration using functional options.
type webhookendpointOption func(*WebhookEndpointMutation)

// newWebhookEndpointMutation creates new mutation for the WebhookEndpoint entity.
func newWebhookEndpointMutation(c config, op Op, opts ...webhookendpointOption) *WebhookEndpointMutation {
	m := &WebhookEndpointMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEndpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEndpointID sets the ID field of the mutation.
func withWebhookEndpointID(id string) webhookendpointOption {
	return func(m *WebhookEndpointMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEndpoint
		)
		m.oldValue = func(ctx context.Context) (*WebhookEndpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEndpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEndpoint sets the old WebhookEndpoint of the mutation.
func withWebhookEndpoint(node *WebhookEndpoint) webhookendpointOption {
	return func(m *WebhookEndpointMutation) {
		m.oldValue = func(context.Context) (*WebhookEndpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEndpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEndpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEndpoint entities.
func (m *WebhookEndpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEndpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEndpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEndpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *WebhookEndpointMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *WebhookEndpointMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *WebhookEndpointMutation) ResetTenantID() {
	m.tenant = nil
}

// SetURL sets the "url" field.
func (m *WebhookEndpointMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookEndpointMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookEndpointMutation) ResetURL() {
	m.url = nil
}

// SetGuildName sets the "guild_name" field.
func (m *WebhookEndpointMutation) SetGuildName(s string) {
	m.guild_name = &s
}

// GuildName returns the value of the "guild_name" field in the mutation.
func (m *WebhookEndpointMutation) GuildName() (r string, exists bool) {
	v := m.guild_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGuildName returns the old "guild_name" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldGuildName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuildName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuildName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuildName: %w", err)
	}
	return oldValue.GuildName, nil
}

// ClearGuildName clears the value of the "guild_name" field.
func (m *WebhookEndpointMutation) ClearGuildName() {
	m.guild_name = nil
	m.clearedFields[webhookendpoint.FieldGuildName] = struct{}{}
}

// GuildNameCleared returns if the "guild_name" field was cleared in this mutation.
func (m *WebhookEndpointMutation) GuildNameCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldGuildName]
	return ok
}

// ResetGuildName resets all changes to the "guild_name" field.
func (m *WebhookEndpointMutation) ResetGuildName() {
	m.guild_name = nil
	delete(m.clearedFields, webhookendpoint.FieldGuildName)
}

// SetIsPrimary sets the "is_primary" field.
func (m *WebhookEndpointMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *WebhookEndpointMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *WebhookEndpointMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetIsActive sets the "is_active" field.
func (m *WebhookEndpointMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *WebhookEndpointMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *WebhookEndpointMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastTestedAt sets the "last_tested_at" field.
func (m *WebhookEndpointMutation) SetLastTestedAt(t time.Time) {
	m.last_tested_at = &t
}

// LastTestedAt returns the value of the "last_tested_at" field in the mutation.
func (m *WebhookEndpointMutation) LastTestedAt() (r time.Time, exists bool) {
	v := m.last_tested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTestedAt returns the old "last_tested_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldLastTestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTestedAt: %w", err)
	}
	return oldValue.LastTestedAt, nil
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (m *WebhookEndpointMutation) ClearLastTestedAt() {
	m.last_tested_at = nil
	m.clearedFields[webhookendpoint.FieldLastTestedAt] = struct{}{}
}

// LastTestedAtCleared returns if the "last_tested_at" field was cleared in this mutation.
func (m *WebhookEndpointMutation) LastTestedAtCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldLastTestedAt]
	return ok
}

// ResetLastTestedAt resets all changes to the "last_tested_at" field.
func (m *WebhookEndpointMutation) ResetLastTestedAt() {
	m.last_tested_at = nil
	delete(m.clearedFields, webhookendpoint.FieldLastTestedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookEndpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookEndpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WebhookEndpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookEndpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookEndpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WebhookEndpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *WebhookEndpointMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[webhookendpoint.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *WebhookEndpointMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *WebhookEndpointMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *WebhookEndpointMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the WebhookEndpointMutation builder.
func (m *WebhookEndpointMutation) Where(ps ...predicate.WebhookEndpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEndpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEndpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEndpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEndpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEndpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEndpoint).
func (m *WebhookEndpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEndpointMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, webhookendpoint.FieldTenantID)
	}
	if m.url != nil {
		fields = append(fields, webhookendpoint.FieldURL)
	}
	if m.guild_name != nil {
		fields = append(fields, webhookendpoint.FieldGuildName)
	}
	if m.is_primary != nil {
		fields = append(fields, webhookendpoint.FieldIsPrimary)
	}
	if m.is_active != nil {
		fields = append(fields, webhookendpoint.FieldIsActive)
	}
	if m.last_tested_at != nil {
		fields = append(fields, webhookendpoint.FieldLastTestedAt)
	}
	if m.created_at != nil {
		fields = append(fields, webhookendpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookendpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEndpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookendpoint.FieldTenantID:
		return m.TenantID()
	case webhookendpoint.FieldURL:
		return m.URL()
	case webhookendpoint.FieldGuildName:
		return m.GuildName()
	case webhookendpoint.FieldIsPrimary:
		return m.IsPrimary()
	case webhookendpoint.FieldIsActive:
		return m.IsActive()
	case webhookendpoint.FieldLastTestedAt:
		return m.LastTestedAt()
	case webhookendpoint.FieldCreatedAt:
		return m.CreatedAt()
	case webhookendpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEndpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookendpoint.FieldTenantID:
		return m.OldTenantID(ctx)
	case webhookendpoint.FieldURL:
		return m.OldURL(ctx)
	case webhookendpoint.FieldGuildName:
		return m.OldGuildName(ctx)
	case webhookendpoint.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case webhookendpoint.FieldIsActive:
		return m.OldIsActive(ctx)
	case webhookendpoint.FieldLastTestedAt:
		return m.OldLastTestedAt(ctx)
	case webhookendpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookendpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEndpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookendpoint.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case webhookendpoint.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhookendpoint.FieldGuildName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuildName(v)
		return nil
	case webhookendpoint.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case webhookendpoint.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case webhookendpoint.FieldLastTestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTestedAt(v)
		return nil
	case webhookendpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookendpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEndpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEndpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEndpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEndpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEndpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookendpoint.FieldGuildName) {
		fields = append(fields, webhookendpoint.FieldGuildName)
	}
	if m.FieldCleared(webhookendpoint.FieldLastTestedAt) {
		fields = append(fields, webhookendpoint.FieldLastTestedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEndpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEndpointMutation) ClearField(name string) error {
	switch name {
	case webhookendpoint.FieldGuildName:
		m.ClearGuildName()
		return nil
	case webhookendpoint.FieldLastTestedAt:
		m.ClearLastTestedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEndpointMutation) ResetField(name string) error {
	switch name {
	case webhookendpoint.FieldTenantID:
		m.ResetTenantID()
		return nil
	case webhookendpoint.FieldURL:
		m.ResetURL()
		return nil
	case webhookendpoint.FieldGuildName:
		m.ResetGuildName()
		return nil
	case webhookendpoint.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case webhookendpoint.FieldIsActive:
		m.ResetIsActive()
		return nil
	case webhookendpoint.FieldLastTestedAt:
		m.ResetLastTestedAt()
		return nil
	case webhookendpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookendpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEndpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, webhookendpoint.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEndpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookendpoint.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEndpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEndpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEndpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, webhookendpoint.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEndpointMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookendpoint.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEndpointMutation) ClearEdge(name string) error {
	switch name {
	case webhookendpoint.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEndpointMutation) ResetEdge(name string) error {
	switch name {
	case webhookendpoint.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint edge %s", name)
}
