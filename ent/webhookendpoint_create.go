// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/keywatch/keywatch/ent/tenant"
	"github.com/keywatch/keywatch/ent/webhookendpoint"
)

// WebhookEndpointCreate is the builder for creating a WebhookEndpoint entity.
type WebhookEndpointCreate struct {
	config
	mutation *WebhookEndpointMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *WebhookEndpointCreate) SetTenantID(v string) *WebhookEndpointCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookEndpointCreate) SetURL(v string) *WebhookEndpointCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetGuildName sets the "guild_name" field.
func (_c *WebhookEndpointCreate) SetGuildName(v string) *WebhookEndpointCreate {
	_c.mutation.SetGuildName(v)
	return _c
}

// SetNillableGuildName sets the "guild_name" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableGuildName(v *string) *WebhookEndpointCreate {
	if v != nil {
		_c.SetGuildName(*v)
	}
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *WebhookEndpointCreate) SetIsPrimary(v bool) *WebhookEndpointCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableIsPrimary(v *bool) *WebhookEndpointCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WebhookEndpointCreate) SetIsActive(v bool) *WebhookEndpointCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableIsActive(v *bool) *WebhookEndpointCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLastTestedAt sets the "last_tested_at" field.
func (_c *WebhookEndpointCreate) SetLastTestedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetLastTestedAt(v)
	return _c
}

// SetNillableLastTestedAt sets the "last_tested_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableLastTestedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetLastTestedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookEndpointCreate) SetCreatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableCreatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookEndpointCreate) SetUpdatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableUpdatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEndpointCreate) SetID(v string) *WebhookEndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *WebhookEndpointCreate) SetTenant(v *Tenant) *WebhookEndpointCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_c *WebhookEndpointCreate) Mutation() *WebhookEndpointMutation {
	return _c.mutation
}

// Save creates the WebhookEndpoint in the database.
func (_c *WebhookEndpointCreate) Save(ctx context.Context) (*WebhookEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEndpointCreate) SaveX(ctx context.Context) *WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEndpointCreate) defaults() {
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := webhookendpoint.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := webhookendpoint.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookendpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEndpointCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "WebhookEndpoint.tenant_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "WebhookEndpoint.url"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "WebhookEndpoint.is_primary"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WebhookEndpoint.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookEndpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookEndpoint.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "WebhookEndpoint.tenant"`)}
	}
	return nil
}

func (_c *WebhookEndpointCreate) sqlSave(ctx context.Context) (*WebhookEndpoint, error) {
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
			return nil, fmt.Errorf("unexpected WebhookEndpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookEndpointCreate) createSpec() (*WebhookEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookendpoint.Table, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.GuildName(); ok {
		_spec.SetField(webhookendpoint.FieldGuildName, field.TypeString, value)
		_node.GuildName = &value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(webhookendpoint.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LastTestedAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastTestedAt, field.TypeTime, value)
		_node.LastTestedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookendpoint.TenantTable,
			Columns: []string{webhookendpoint.TenantColumn},
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

// WebhookEndpointCreateBulk is the builder for creating many WebhookEndpoint entities in bulk.
type WebhookEndpointCreateBulk struct {
	config
	err      error
	builders []*WebhookEndpointCreate
}

// Save creates the WebhookEndpoint entities in the database.
func (_c *WebhookEndpointCreateBulk) Save(ctx context.Context) ([]*WebhookEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEndpointMutation)
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
func (_c *WebhookEndpointCreateBulk) SaveX(ctx context.Context) []*WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
