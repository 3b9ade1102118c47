// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/keywatch/keywatch/ent/monitoredcommunity"
	"github.com/keywatch/keywatch/ent/tenant"
)

// MonitoredCommunityCreate is the builder for creating a MonitoredCommunity entity.
type MonitoredCommunityCreate struct {
	config
	mutation *MonitoredCommunityMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *MonitoredCommunityCreate) SetTenantID(v string) *MonitoredCommunityCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MonitoredCommunityCreate) SetName(v string) *MonitoredCommunityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetIncludeMediaPosts sets the "include_media_posts" field.
func (_c *MonitoredCommunityCreate) SetIncludeMediaPosts(v bool) *MonitoredCommunityCreate {
	_c.mutation.SetIncludeMediaPosts(v)
	return _c
}

// SetNillableIncludeMediaPosts sets the "include_media_posts" field if the given value is not nil.
func (_c *MonitoredCommunityCreate) SetNillableIncludeMediaPosts(v *bool) *MonitoredCommunityCreate {
	if v != nil {
		_c.SetIncludeMediaPosts(*v)
	}
	return _c
}

// SetDedupeCrossposts sets the "dedupe_crossposts" field.
func (_c *MonitoredCommunityCreate) SetDedupeCrossposts(v bool) *MonitoredCommunityCreate {
	_c.mutation.SetDedupeCrossposts(v)
	return _c
}

// SetNillableDedupeCrossposts sets the "dedupe_crossposts" field if the given value is not nil.
func (_c *MonitoredCommunityCreate) SetNillableDedupeCrossposts(v *bool) *MonitoredCommunityCreate {
	if v != nil {
		_c.SetDedupeCrossposts(*v)
	}
	return _c
}

// SetFilterBots sets the "filter_bots" field.
func (_c *MonitoredCommunityCreate) SetFilterBots(v bool) *MonitoredCommunityCreate {
	_c.mutation.SetFilterBots(v)
	return _c
}

// SetNillableFilterBots sets the "filter_bots" field if the given value is not nil.
func (_c *MonitoredCommunityCreate) SetNillableFilterBots(v *bool) *MonitoredCommunityCreate {
	if v != nil {
		_c.SetFilterBots(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MonitoredCommunityCreate) SetStatus(v monitoredcommunity.Status) *MonitoredCommunityCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MonitoredCommunityCreate) SetNillableStatus(v *monitoredcommunity.Status) *MonitoredCommunityCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MonitoredCommunityCreate) SetCreatedAt(v time.Time) *MonitoredCommunityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MonitoredCommunityCreate) SetNillableCreatedAt(v *time.Time) *MonitoredCommunityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MonitoredCommunityCreate) SetUpdatedAt(v time.Time) *MonitoredCommunityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MonitoredCommunityCreate) SetNillableUpdatedAt(v *time.Time) *MonitoredCommunityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonitoredCommunityCreate) SetID(v string) *MonitoredCommunityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *MonitoredCommunityCreate) SetTenant(v *Tenant) *MonitoredCommunityCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the MonitoredCommunityMutation object of the builder.
func (_c *MonitoredCommunityCreate) Mutation() *MonitoredCommunityMutation {
	return _c.mutation
}

// Save creates the MonitoredCommunity in the database.
func (_c *MonitoredCommunityCreate) Save(ctx context.Context) (*MonitoredCommunity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitoredCommunityCreate) SaveX(ctx context.Context) *MonitoredCommunity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoredCommunityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoredCommunityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitoredCommunityCreate) defaults() {
	if _, ok := _c.mutation.IncludeMediaPosts(); !ok {
		v := monitoredcommunity.DefaultIncludeMediaPosts
		_c.mutation.SetIncludeMediaPosts(v)
	}
	if _, ok := _c.mutation.DedupeCrossposts(); !ok {
		v := monitoredcommunity.DefaultDedupeCrossposts
		_c.mutation.SetDedupeCrossposts(v)
	}
	if _, ok := _c.mutation.FilterBots(); !ok {
		v := monitoredcommunity.DefaultFilterBots
		_c.mutation.SetFilterBots(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := monitoredcommunity.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := monitoredcommunity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := monitoredcommunity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitoredCommunityCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "MonitoredCommunity.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MonitoredCommunity.name"`)}
	}
	if _, ok := _c.mutation.IncludeMediaPosts(); !ok {
		return &ValidationError{Name: "include_media_posts", err: errors.New(`ent: missing required field "MonitoredCommunity.include_media_posts"`)}
	}
	if _, ok := _c.mutation.DedupeCrossposts(); !ok {
		return &ValidationError{Name: "dedupe_crossposts", err: errors.New(`ent: missing required field "MonitoredCommunity.dedupe_crossposts"`)}
	}
	if _, ok := _c.mutation.FilterBots(); !ok {
		return &ValidationError{Name: "filter_bots", err: errors.New(`ent: missing required field "MonitoredCommunity.filter_bots"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MonitoredCommunity.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := monitoredcommunity.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonitoredCommunity.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MonitoredCommunity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MonitoredCommunity.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "MonitoredCommunity.tenant"`)}
	}
	return nil
}

func (_c *MonitoredCommunityCreate) sqlSave(ctx context.Context) (*MonitoredCommunity, error) {
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
			return nil, fmt.Errorf("unexpected MonitoredCommunity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonitoredCommunityCreate) createSpec() (*MonitoredCommunity, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitoredCommunity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoredcommunity.Table, sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(monitoredcommunity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.IncludeMediaPosts(); ok {
		_spec.SetField(monitoredcommunity.FieldIncludeMediaPosts, field.TypeBool, value)
		_node.IncludeMediaPosts = value
	}
	if value, ok := _c.mutation.DedupeCrossposts(); ok {
		_spec.SetField(monitoredcommunity.FieldDedupeCrossposts, field.TypeBool, value)
		_node.DedupeCrossposts = value
	}
	if value, ok := _c.mutation.FilterBots(); ok {
		_spec.SetField(monitoredcommunity.FieldFilterBots, field.TypeBool, value)
		_node.FilterBots = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(monitoredcommunity.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(monitoredcommunity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoredcommunity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoredcommunity.TenantTable,
			Columns: []string{monitoredcommunity.TenantColumn},
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
	return _node, _spec
}

// MonitoredCommunityCreateBulk is the builder for creating many MonitoredCommunity entities in bulk.
type MonitoredCommunityCreateBulk struct {
	config
	err      error
	builders []*MonitoredCommunityCreate
}

// Save creates the MonitoredCommunity entities in the database.
func (_c *MonitoredCommunityCreateBulk) Save(ctx context.Context) ([]*MonitoredCommunity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitoredCommunity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitoredCommunityMutation)
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
func (_c *MonitoredCommunityCreateBulk) SaveX(ctx context.Context) []*MonitoredCommunity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoredCommunityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoredCommunityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
