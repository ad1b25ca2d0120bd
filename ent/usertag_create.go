// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// UserTagCreate is the builder for creating a UserTag entity.
type UserTagCreate struct {
	config
	mutation *UserTagMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (utc *UserTagCreate) SetDeletedAt(t time.Time) *UserTagCreate {
	utc.mutation.SetDeletedAt(t)
	return utc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (utc *UserTagCreate) SetNillableDeletedAt(t *time.Time) *UserTagCreate {
	if t != nil {
		utc.SetDeletedAt(*t)
	}
	return utc
}

// SetCreatedAt sets the "created_at" field.
func (utc *UserTagCreate) SetCreatedAt(t time.Time) *UserTagCreate {
	utc.mutation.SetCreatedAt(t)
	return utc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (utc *UserTagCreate) SetNillableCreatedAt(t *time.Time) *UserTagCreate {
	if t != nil {
		utc.SetCreatedAt(*t)
	}
	return utc
}

// SetUpdatedAt sets the "updated_at" field.
func (utc *UserTagCreate) SetUpdatedAt(t time.Time) *UserTagCreate {
	utc.mutation.SetUpdatedAt(t)
	return utc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (utc *UserTagCreate) SetNillableUpdatedAt(t *time.Time) *UserTagCreate {
	if t != nil {
		utc.SetUpdatedAt(*t)
	}
	return utc
}

// SetText sets the "text" field.
func (utc *UserTagCreate) SetText(s string) *UserTagCreate {
	utc.mutation.SetText(s)
	return utc
}

// SetCount sets the "count" field.
func (utc *UserTagCreate) SetCount(i int) *UserTagCreate {
	utc.mutation.SetCount(i)
	return utc
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (utc *UserTagCreate) SetNillableCount(i *int) *UserTagCreate {
	if i != nil {
		utc.SetCount(*i)
	}
	return utc
}

// SetID sets the "id" field.
func (utc *UserTagCreate) SetID(u uint) *UserTagCreate {
	utc.mutation.SetID(u)
	return utc
}

// SetGroupID sets the "group" edge to the TagGroup entity by ID.
func (utc *UserTagCreate) SetGroupID(id uint) *UserTagCreate {
	utc.mutation.SetGroupID(id)
	return utc
}

// SetGroup sets the "group" edge to the TagGroup entity.
func (utc *UserTagCreate) SetGroup(t *TagGroup) *UserTagCreate {
	return utc.SetGroupID(t.ID)
}

// AddItemIDs adds the "items" edge to the TaggedItem entity by IDs.
func (utc *UserTagCreate) AddItemIDs(ids ...uint) *UserTagCreate {
	utc.mutation.AddItemIDs(ids...)
	return utc
}

// AddItems adds the "items" edges to the TaggedItem entity.
func (utc *UserTagCreate) AddItems(t ...*TaggedItem) *UserTagCreate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return utc.AddItemIDs(ids...)
}

// Mutation returns the UserTagMutation object of the builder.
func (utc *UserTagCreate) Mutation() *UserTagMutation {
	return utc.mutation
}

// Save creates the UserTag in the database.
func (utc *UserTagCreate) Save(ctx context.Context) (*UserTag, error) {
	if err := utc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, utc.sqlSave, utc.mutation, utc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (utc *UserTagCreate) SaveX(ctx context.Context) *UserTag {
	v, err := utc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (utc *UserTagCreate) Exec(ctx context.Context) error {
	_, err := utc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (utc *UserTagCreate) ExecX(ctx context.Context) {
	if err := utc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (utc *UserTagCreate) defaults() error {
	if _, ok := utc.mutation.CreatedAt(); !ok {
		if usertag.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized usertag.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := usertag.DefaultCreatedAt()
		utc.mutation.SetCreatedAt(v)
	}
	if _, ok := utc.mutation.UpdatedAt(); !ok {
		if usertag.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized usertag.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := usertag.DefaultUpdatedAt()
		utc.mutation.SetUpdatedAt(v)
	}
	if _, ok := utc.mutation.Count(); !ok {
		v := usertag.DefaultCount
		utc.mutation.SetCount(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (utc *UserTagCreate) check() error {
	if _, ok := utc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserTag.created_at"`)}
	}
	if _, ok := utc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserTag.updated_at"`)}
	}
	if _, ok := utc.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "UserTag.text"`)}
	}
	if v, ok := utc.mutation.Text(); ok {
		if err := usertag.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "UserTag.text": %w`, err)}
		}
	}
	if _, ok := utc.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "UserTag.count"`)}
	}
	if v, ok := utc.mutation.Count(); ok {
		if err := usertag.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "UserTag.count": %w`, err)}
		}
	}
	if len(utc.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "UserTag.group"`)}
	}
	return nil
}

func (utc *UserTagCreate) sqlSave(ctx context.Context) (*UserTag, error) {
	if err := utc.check(); err != nil {
		return nil, err
	}
	_node, _spec := utc.createSpec()
	if err := sqlgraph.CreateNode(ctx, utc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	utc.mutation.id = &_node.ID
	utc.mutation.done = true
	return _node, nil
}

func (utc *UserTagCreate) createSpec() (*UserTag, *sqlgraph.CreateSpec) {
	var (
		_node = &UserTag{config: utc.config}
		_spec = sqlgraph.NewCreateSpec(usertag.Table, sqlgraph.NewFieldSpec(usertag.FieldID, field.TypeUint))
	)
	if id, ok := utc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := utc.mutation.DeletedAt(); ok {
		_spec.SetField(usertag.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := utc.mutation.CreatedAt(); ok {
		_spec.SetField(usertag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := utc.mutation.UpdatedAt(); ok {
		_spec.SetField(usertag.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := utc.mutation.Text(); ok {
		_spec.SetField(usertag.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := utc.mutation.Count(); ok {
		_spec.SetField(usertag.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if nodes := utc.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertag.GroupTable,
			Columns: []string{usertag.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taggroup.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.tag_group_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := utc.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   usertag.ItemsTable,
			Columns: usertag.ItemsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taggeditem.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserTagCreateBulk is the builder for creating many UserTag entities in bulk.
type UserTagCreateBulk struct {
	config
	err      error
	builders []*UserTagCreate
}

// Save creates the UserTag entities in the database.
func (utcb *UserTagCreateBulk) Save(ctx context.Context) ([]*UserTag, error) {
	if utcb.err != nil {
		return nil, utcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(utcb.builders))
	nodes := make([]*UserTag, len(utcb.builders))
	mutators := make([]Mutator, len(utcb.builders))
	for i := range utcb.builders {
		func(i int, root context.Context) {
			builder := utcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserTagMutation)
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
					_, err = mutators[i+1].Mutate(root, utcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, utcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, utcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (utcb *UserTagCreateBulk) SaveX(ctx context.Context) []*UserTag {
	v, err := utcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (utcb *UserTagCreateBulk) Exec(ctx context.Context) error {
	_, err := utcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (utcb *UserTagCreateBulk) ExecX(ctx context.Context) {
	if err := utcb.Exec(ctx); err != nil {
		panic(err)
	}
}
