// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/keywatch/keywatch/ent/keywordrule"
	"github.com/keywatch/keywatch/ent/match"
	"github.com/keywatch/keywatch/ent/tenant"
)

// MatchCreate is the builder for creating a Match entity.
type MatchCreate struct {
	config
	mutation *MatchMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *MatchCreate) SetTenantID(v string) *MatchCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetKeywordRuleID sets the "keyword_rule_id" field.
func (_c *MatchCreate) SetKeywordRuleID(v string) *MatchCreate {
	_c.mutation.SetKeywordRuleID(v)
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *MatchCreate) SetContentID(v string) *MatchCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MatchCreate) SetKind(v match.Kind) *MatchCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCommunity sets the "community" field.
func (_c *MatchCreate) SetCommunity(v string) *MatchCreate {
	_c.mutation.SetCommunity(v)
	return _c
}

// SetMatchedPhrase sets the "matched_phrase" field.
func (_c *MatchCreate) SetMatchedPhrase(v string) *MatchCreate {
	_c.mutation.SetMatchedPhrase(v)
	return _c
}

// SetAlsoMatched sets the "also_matched" field.
func (_c *MatchCreate) SetAlsoMatched(v []string) *MatchCreate {
	_c.mutation.SetAlsoMatched(v)
	return _c
}

// SetSnippet sets the "snippet" field.
func (_c *MatchCreate) SetSnippet(v string) *MatchCreate {
	_c.mutation.SetSnippet(v)
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *MatchCreate) SetFullText(v string) *MatchCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_c *MatchCreate) SetNillableFullText(v *string) *MatchCreate {
	if v != nil {
		_c.SetFullText(*v)
	}
	return _c
}

// SetProximityScore sets the "proximity_score" field.
func (_c *MatchCreate) SetProximityScore(v float64) *MatchCreate {
	_c.mutation.SetProximityScore(v)
	return _c
}

// SetRedditURL sets the "reddit_url" field.
func (_c *MatchCreate) SetRedditURL(v string) *MatchCreate {
	_c.mutation.SetRedditURL(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *MatchCreate) SetAuthor(v string) *MatchCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *MatchCreate) SetNillableAuthor(v *string) *MatchCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *MatchCreate) SetIsDeleted(v bool) *MatchCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *MatchCreate) SetNillableIsDeleted(v *bool) *MatchCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *MatchCreate) SetDetectedAt(v time.Time) *MatchCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *MatchCreate) SetNillableDetectedAt(v *time.Time) *MatchCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetAlertSentAt sets the "alert_sent_at" field.
func (_c *MatchCreate) SetAlertSentAt(v time.Time) *MatchCreate {
	_c.mutation.SetAlertSentAt(v)
	return _c
}

// SetNillableAlertSentAt sets the "alert_sent_at" field if the given value is not nil.
func (_c *MatchCreate) SetNillableAlertSentAt(v *time.Time) *MatchCreate {
	if v != nil {
		_c.SetAlertSentAt(*v)
	}
	return _c
}

// SetAlertStatus sets the "alert_status" field.
func (_c *MatchCreate) SetAlertStatus(v match.AlertStatus) *MatchCreate {
	_c.mutation.SetAlertStatus(v)
	return _c
}

// SetNillableAlertStatus sets the "alert_status" field if the given value is not nil.
func (_c *MatchCreate) SetNillableAlertStatus(v *match.AlertStatus) *MatchCreate {
	if v != nil {
		_c.SetAlertStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatchCreate) SetID(v string) *MatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *MatchCreate) SetTenant(v *Tenant) *MatchCreate {
	return _c.SetTenantID(v.ID)
}

// SetKeywordRule sets the "keyword_rule" edge to the KeywordRule entity.
func (_c *MatchCreate) SetKeywordRule(v *KeywordRule) *MatchCreate {
	return _c.SetKeywordRuleID(v.ID)
}

// SetContent sets the "content" edge to the ContentItem entity.
func (_c *MatchCreate) SetContent(v *ContentItem) *MatchCreate {
	return _c.SetContentID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_c *MatchCreate) Mutation() *MatchMutation {
	return _c.mutation
}

// Save creates the Match in the database.
func (_c *MatchCreate) Save(ctx context.Context) (*Match, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchCreate) SaveX(ctx context.Context) *Match {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchCreate) defaults() {
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := match.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := match.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
	if _, ok := _c.mutation.AlertStatus(); !ok {
		v := match.DefaultAlertStatus
		_c.mutation.SetAlertStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Match.tenant_id"`)}
	}
	if _, ok := _c.mutation.KeywordRuleID(); !ok {
		return &ValidationError{Name: "keyword_rule_id", err: errors.New(`ent: missing required field "Match.keyword_rule_id"`)}
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "Match.content_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Match.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := match.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Match.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Community(); !ok {
		return &ValidationError{Name: "community", err: errors.New(`ent: missing required field "Match.community"`)}
	}
	if _, ok := _c.mutation.MatchedPhrase(); !ok {
		return &ValidationError{Name: "matched_phrase", err: errors.New(`ent: missing required field "Match.matched_phrase"`)}
	}
	if _, ok := _c.mutation.Snippet(); !ok {
		return &ValidationError{Name: "snippet", err: errors.New(`ent: missing required field "Match.snippet"`)}
	}
	if _, ok := _c.mutation.ProximityScore(); !ok {
		return &ValidationError{Name: "proximity_score", err: errors.New(`ent: missing required field "Match.proximity_score"`)}
	}
	if _, ok := _c.mutation.RedditURL(); !ok {
		return &ValidationError{Name: "reddit_url", err: errors.New(`ent: missing required field "Match.reddit_url"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Match.is_deleted"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "Match.detected_at"`)}
	}
	if _, ok := _c.mutation.AlertStatus(); !ok {
		return &ValidationError{Name: "alert_status", err: errors.New(`ent: missing required field "Match.alert_status"`)}
	}
	if v, ok := _c.mutation.AlertStatus(); ok {
		if err := match.AlertStatusValidator(v); err != nil {
			return &ValidationError{Name: "alert_status", err: fmt.Errorf(`ent: validator failed for field "Match.alert_status": %w`, err)}
		}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Match.tenant"`)}
	}
	if len(_c.mutation.KeywordRuleIDs()) == 0 {
		return &ValidationError{Name: "keyword_rule", err: errors.New(`ent: missing required edge "Match.keyword_rule"`)}
	}
	if len(_c.mutation.ContentIDs()) == 0 {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required edge "Match.content"`)}
	}
	return nil
}

func (_c *MatchCreate) sqlSave(ctx context.Context) (*Match, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Match.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatchCreate) createSpec() (*Match, *sqlgraph.CreateSpec) {
	var (
		_node = &Match{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(match.Table, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(match.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Community(); ok {
		_spec.SetField(match.FieldCommunity, field.TypeString, value)
		_node.Community = value
	}
	if value, ok := _c.mutation.MatchedPhrase(); ok {
		_spec.SetField(match.FieldMatchedPhrase, field.TypeString, value)
		_node.MatchedPhrase = value
	}
	if value, ok := _c.mutation.AlsoMatched(); ok {
		_spec.SetField(match.FieldAlsoMatched, field.TypeJSON, value)
		_node.AlsoMatched = value
	}
	if value, ok := _c.mutation.Snippet(); ok {
		_spec.SetField(match.FieldSnippet, field.TypeString, value)
		_node.Snippet = value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(match.FieldFullText, field.TypeString, value)
		_node.FullText = &value
	}
	if value, ok := _c.mutation.ProximityScore(); ok {
		_spec.SetField(match.FieldProximityScore, field.TypeFloat64, value)
		_node.ProximityScore = value
	}
	if value, ok := _c.mutation.RedditURL(); ok {
		_spec.SetField(match.FieldRedditURL, field.TypeString, value)
		_node.RedditURL = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(match.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(match.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(match.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	if value, ok := _c.mutation.AlertSentAt(); ok {
		_spec.SetField(match.FieldAlertSentAt, field.TypeTime, value)
		_node.AlertSentAt = &value
	}
	if value, ok := _c.mutation.AlertStatus(); ok {
		_spec.SetField(match.FieldAlertStatus, field.TypeEnum, value)
		_node.AlertStatus = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.TenantTable,
			Columns: []string{match.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KeywordRuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.KeywordRuleTable,
			Columns: []string{match.KeywordRuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.KeywordRuleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.ContentTable,
			Columns: []string{match.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatchCreateBulk is the builder for creating many Match entities in bulk.
type MatchCreateBulk struct {
	config
	err      error
	builders []*MatchCreate
}

// Save creates the Match entities in the database.
func (_c *MatchCreateBulk) Save(ctx context.Context) ([]*Match, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Match, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MatchCreateBulk) SaveX(ctx context.Context) []*Match {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
