// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// TagGroupCreate is the builder for creating a TagGroup entity.
type TagGroupCreate struct {
	config
	mutation *TagGroupMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (tgc *TagGroupCreate) SetDeletedAt(t time.Time) *TagGroupCreate {
	tgc.mutation.SetDeletedAt(t)
	return tgc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (tgc *TagGroupCreate) SetNillableDeletedAt(t *time.Time) *TagGroupCreate {
	if t != nil {
		tgc.SetDeletedAt(*t)
	}
	return tgc
}

// SetCreatedAt sets the "created_at" field.
func (tgc *TagGroupCreate) SetCreatedAt(t time.Time) *TagGroupCreate {
	tgc.mutation.SetCreatedAt(t)
	return tgc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tgc *TagGroupCreate) SetNillableCreatedAt(t *time.Time) *TagGroupCreate {
	if t != nil {
		tgc.SetCreatedAt(*t)
	}
	return tgc
}

// SetUpdatedAt sets the "updated_at" field.
func (tgc *TagGroupCreate) SetUpdatedAt(t time.Time) *TagGroupCreate {
	tgc.mutation.SetUpdatedAt(t)
	return tgc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tgc *TagGroupCreate) SetNillableUpdatedAt(t *time.Time) *TagGroupCreate {
	if t != nil {
		tgc.SetUpdatedAt(*t)
	}
	return tgc
}

// SetName sets the "name" field.
func (tgc *TagGroupCreate) SetName(s string) *TagGroupCreate {
	tgc.mutation.SetName(s)
	return tgc
}

// SetID sets the "id" field.
func (tgc *TagGroupCreate) SetID(u uint) *TagGroupCreate {
	tgc.mutation.SetID(u)
	return tgc
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (tgc *TagGroupCreate) SetOwnerID(id uint) *TagGroupCreate {
	tgc.mutation.SetOwnerID(id)
	return tgc
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (tgc *TagGroupCreate) SetNillableOwnerID(id *uint) *TagGroupCreate {
	if id != nil {
		tgc = tgc.SetOwnerID(*id)
	}
	return tgc
}

// SetOwner sets the "owner" edge to the User entity.
func (tgc *TagGroupCreate) SetOwner(u *User) *TagGroupCreate {
	return tgc.SetOwnerID(u.ID)
}

// AddTagIDs adds the "tags" edge to the UserTag entity by IDs.
func (tgc *TagGroupCreate) AddTagIDs(ids ...uint) *TagGroupCreate {
	tgc.mutation.AddTagIDs(ids...)
	return tgc
}

// AddTags adds the "tags" edges to the UserTag entity.
func (tgc *TagGroupCreate) AddTags(u ...*UserTag) *TagGroupCreate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tgc.AddTagIDs(ids...)
}

// Mutation returns the TagGroupMutation object of the builder.
func (tgc *TagGroupCreate) Mutation() *TagGroupMutation {
	return tgc.mutation
}

// Save creates the TagGroup in the database.
func (tgc *TagGroupCreate) Save(ctx context.Context) (*TagGroup, error) {
	if err := tgc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, tgc.sqlSave, tgc.mutation, tgc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tgc *TagGroupCreate) SaveX(ctx context.Context) *TagGroup {
	v, err := tgc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tgc *TagGroupCreate) Exec(ctx context.Context) error {
	_, err := tgc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tgc *TagGroupCreate) ExecX(ctx context.Context) {
	if err := tgc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tgc *TagGroupCreate) defaults() error {
	if _, ok := tgc.mutation.CreatedAt(); !ok {
		if taggroup.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggroup.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := taggroup.DefaultCreatedAt()
		tgc.mutation.SetCreatedAt(v)
	}
	if _, ok := tgc.mutation.UpdatedAt(); !ok {
		if taggroup.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggroup.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := taggroup.DefaultUpdatedAt()
		tgc.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (tgc *TagGroupCreate) check() error {
	if _, ok := tgc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TagGroup.created_at"`)}
	}
	if _, ok := tgc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TagGroup.updated_at"`)}
	}
	if _, ok := tgc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TagGroup.name"`)}
	}
	if v, ok := tgc.mutation.Name(); ok {
		if err := taggroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TagGroup.name": %w`, err)}
		}
	}
	return nil
}

func (tgc *TagGroupCreate) sqlSave(ctx context.Context) (*TagGroup, error) {
	if err := tgc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tgc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tgc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	tgc.mutation.id = &_node.ID
	tgc.mutation.done = true
	return _node, nil
}

func (tgc *TagGroupCreate) createSpec() (*TagGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &TagGroup{config: tgc.config}
		_spec = sqlgraph.NewCreateSpec(taggroup.Table, sqlgraph.NewFieldSpec(taggroup.FieldID, field.TypeUint))
	)
	if id, ok := tgc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tgc.mutation.DeletedAt(); ok {
		_spec.SetField(taggroup.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := tgc.mutation.CreatedAt(); ok {
		_spec.SetField(taggroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tgc.mutation.UpdatedAt(); ok {
		_spec.SetField(taggroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := tgc.mutation.Name(); ok {
		_spec.SetField(taggroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if nodes := tgc.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taggroup.OwnerTable,
			Columns: []string{taggroup.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.owner_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tgc.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taggroup.TagsTable,
			Columns: []string{taggroup.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertag.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TagGroupCreateBulk is the builder for creating many TagGroup entities in bulk.
type TagGroupCreateBulk struct {
	config
	err      error
	builders []*TagGroupCreate
}

// Save creates the TagGroup entities in the database.
func (tgcb *TagGroupCreateBulk) Save(ctx context.Context) ([]*TagGroup, error) {
	if tgcb.err != nil {
		return nil, tgcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tgcb.builders))
	nodes := make([]*TagGroup, len(tgcb.builders))
	mutators := make([]Mutator, len(tgcb.builders))
	for i := range tgcb.builders {
		func(i int, root context.Context) {
			builder := tgcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TagGroupMutation)
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
					_, err = mutators[i+1].Mutate(root, tgcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tgcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tgcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tgcb *TagGroupCreateBulk) SaveX(ctx context.Context) []*TagGroup {
	v, err := tgcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tgcb *TagGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := tgcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tgcb *TagGroupCreateBulk) ExecX(ctx context.Context) {
	if err := tgcb.Exec(ctx); err != nil {
		panic(err)
	}
}
