// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/keywatch/keywatch/ent/match"
	"github.com/keywatch/keywatch/ent/predicate"
)

// ContentItemUpdate is the builder for updating ContentItem entities.
type ContentItemUpdate struct {
	config
	hooks    []Hook
	mutation *ContentItemMutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdate) Where(ps ...predicate.ContentItem) *ContentItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentItemUpdate) SetTitle(v string) *ContentItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableTitle(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ContentItemUpdate) ClearTitle() *ContentItemUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentItemUpdate) SetBody(v string) *ContentItemUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableBody(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ContentItemUpdate) SetAuthor(v string) *ContentItemUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableAuthor(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ContentItemUpdate) ClearAuthor() *ContentItemUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *ContentItemUpdate) SetNormalizedText(v string) *ContentItemUpdate {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableNormalizedText(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// SetSourceCreatedAt sets the "source_created_at" field.
func (_u *ContentItemUpdate) SetSourceCreatedAt(v time.Time) *ContentItemUpdate {
	_u.mutation.SetSourceCreatedAt(v)
	return _u
}

// SetNillableSourceCreatedAt sets the "source_created_at" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableSourceCreatedAt(v *time.Time) *ContentItemUpdate {
	if v != nil {
		_u.SetSourceCreatedAt(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ContentItemUpdate) SetIsDeleted(v bool) *ContentItemUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableIsDeleted(v *bool) *ContentItemUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *ContentItemUpdate) AddMatchIDs(ids ...string) *ContentItemUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *ContentItemUpdate) AddMatches(v ...*Match) *ContentItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdate) Mutation() *ContentItemMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *ContentItemUpdate) ClearMatches() *ContentItemUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *ContentItemUpdate) RemoveMatchIDs(ids ...string) *ContentItemUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *ContentItemUpdate) RemoveMatches(v ...*Match) *ContentItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContentItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contentitem.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(contentitem.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contentitem.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(contentitem.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(contentitem.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(contentitem.FieldNormalizedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceCreatedAt(); ok {
		_spec.SetField(contentitem.FieldSourceCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(contentitem.FieldIsDeleted, field.TypeBool, value)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentItemUpdateOne is the builder for updating a single ContentItem entity.
type ContentItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentItemMutation
}

// SetTitle sets the "title" field.
func (_u *ContentItemUpdateOne) SetTitle(v string) *ContentItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableTitle(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ContentItemUpdateOne) ClearTitle() *ContentItemUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentItemUpdateOne) SetBody(v string) *ContentItemUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableBody(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ContentItemUpdateOne) SetAuthor(v string) *ContentItemUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableAuthor(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ContentItemUpdateOne) ClearAuthor() *ContentItemUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *ContentItemUpdateOne) SetNormalizedText(v string) *ContentItemUpdateOne {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableNormalizedText(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// SetSourceCreatedAt sets the "source_created_at" field.
func (_u *ContentItemUpdateOne) SetSourceCreatedAt(v time.Time) *ContentItemUpdateOne {
	_u.mutation.SetSourceCreatedAt(v)
	return _u
}

// SetNillableSourceCreatedAt sets the "source_created_at" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableSourceCreatedAt(v *time.Time) *ContentItemUpdateOne {
	if v != nil {
		_u.SetSourceCreatedAt(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ContentItemUpdateOne) SetIsDeleted(v bool) *ContentItemUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableIsDeleted(v *bool) *ContentItemUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *ContentItemUpdateOne) AddMatchIDs(ids ...string) *ContentItemUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *ContentItemUpdateOne) AddMatches(v ...*Match) *ContentItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdateOne) Mutation() *ContentItemMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *ContentItemUpdateOne) ClearMatches() *ContentItemUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *ContentItemUpdateOne) RemoveMatchIDs(ids ...string) *ContentItemUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *ContentItemUpdateOne) RemoveMatches(v ...*Match) *ContentItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdateOne) Where(ps ...predicate.ContentItem) *ContentItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentItemUpdateOne) Select(field string, fields ...string) *ContentItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentItem entity.
func (_u *ContentItemUpdateOne) Save(ctx context.Context) (*ContentItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdateOne) SaveX(ctx context.Context) *ContentItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContentItemUpdateOne) sqlSave(ctx context.Context) (_node *ContentItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentitem.FieldID)
		for _, f := range fields {
			if !contentitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contentitem.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(contentitem.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contentitem.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(contentitem.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(contentitem.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(contentitem.FieldNormalizedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceCreatedAt(); ok {
		_spec.SetField(contentitem.FieldSourceCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(contentitem.FieldIsDeleted, field.TypeBool, value)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContentItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
