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
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// TaggedItemCreate is the builder for creating a TaggedItem entity.
type TaggedItemCreate struct {
	config
	mutation *TaggedItemMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (tic *TaggedItemCreate) SetDeletedAt(t time.Time) *TaggedItemCreate {
	tic.mutation.SetDeletedAt(t)
	return tic
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (tic *TaggedItemCreate) SetNillableDeletedAt(t *time.Time) *TaggedItemCreate {
	if t != nil {
		tic.SetDeletedAt(*t)
	}
	return tic
}

// SetCreatedAt sets the "created_at" field.
func (tic *TaggedItemCreate) SetCreatedAt(t time.Time) *TaggedItemCreate {
	tic.mutation.SetCreatedAt(t)
	return tic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tic *TaggedItemCreate) SetNillableCreatedAt(t *time.Time) *TaggedItemCreate {
	if t != nil {
		tic.SetCreatedAt(*t)
	}
	return tic
}

// SetUpdatedAt sets the "updated_at" field.
func (tic *TaggedItemCreate) SetUpdatedAt(t time.Time) *TaggedItemCreate {
	tic.mutation.SetUpdatedAt(t)
	return tic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tic *TaggedItemCreate) SetNillableUpdatedAt(t *time.Time) *TaggedItemCreate {
	if t != nil {
		tic.SetUpdatedAt(*t)
	}
	return tic
}

// SetContentType sets the "content_type" field.
func (tic *TaggedItemCreate) SetContentType(s string) *TaggedItemCreate {
	tic.mutation.SetContentType(s)
	return tic
}

// SetObjectID sets the "object_id" field.
func (tic *TaggedItemCreate) SetObjectID(s string) *TaggedItemCreate {
	tic.mutation.SetObjectID(s)
	return tic
}

// SetID sets the "id" field.
func (tic *TaggedItemCreate) SetID(u uint) *TaggedItemCreate {
	tic.mutation.SetID(u)
	return tic
}

// AddTagIDs adds the "tags" edge to the UserTag entity by IDs.
func (tic *TaggedItemCreate) AddTagIDs(ids ...uint) *TaggedItemCreate {
	tic.mutation.AddTagIDs(ids...)
	return tic
}

// AddTags adds the "tags" edges to the UserTag entity.
func (tic *TaggedItemCreate) AddTags(u ...*UserTag) *TaggedItemCreate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tic.AddTagIDs(ids...)
}

// Mutation returns the TaggedItemMutation object of the builder.
func (tic *TaggedItemCreate) Mutation() *TaggedItemMutation {
	return tic.mutation
}

// Save creates the TaggedItem in the database.
func (tic *TaggedItemCreate) Save(ctx context.Context) (*TaggedItem, error) {
	if err := tic.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, tic.sqlSave, tic.mutation, tic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tic *TaggedItemCreate) SaveX(ctx context.Context) *TaggedItem {
	v, err := tic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tic *TaggedItemCreate) Exec(ctx context.Context) error {
	_, err := tic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tic *TaggedItemCreate) ExecX(ctx context.Context) {
	if err := tic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tic *TaggedItemCreate) defaults() error {
	if _, ok := tic.mutation.CreatedAt(); !ok {
		if taggeditem.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggeditem.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := taggeditem.DefaultCreatedAt()
		tic.mutation.SetCreatedAt(v)
	}
	if _, ok := tic.mutation.UpdatedAt(); !ok {
		if taggeditem.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggeditem.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := taggeditem.DefaultUpdatedAt()
		tic.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (tic *TaggedItemCreate) check() error {
	if _, ok := tic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaggedItem.created_at"`)}
	}
	if _, ok := tic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TaggedItem.updated_at"`)}
	}
	if _, ok := tic.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "TaggedItem.content_type"`)}
	}
	if v, ok := tic.mutation.ContentType(); ok {
		if err := taggeditem.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "TaggedItem.content_type": %w`, err)}
		}
	}
	if _, ok := tic.mutation.ObjectID(); !ok {
		return &ValidationError{Name: "object_id", err: errors.New(`ent: missing required field "TaggedItem.object_id"`)}
	}
	if v, ok := tic.mutation.ObjectID(); ok {
		if err := taggeditem.ObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "object_id", err: fmt.Errorf(`ent: validator failed for field "TaggedItem.object_id": %w`, err)}
		}
	}
	return nil
}

func (tic *TaggedItemCreate) sqlSave(ctx context.Context) (*TaggedItem, error) {
	if err := tic.check(); err != nil {
		return nil, err
	}
	_node, _spec := tic.createSpec()
	if err := sqlgraph.CreateNode(ctx, tic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	tic.mutation.id = &_node.ID
	tic.mutation.done = true
	return _node, nil
}

func (tic *TaggedItemCreate) createSpec() (*TaggedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &TaggedItem{config: tic.config}
		_spec = sqlgraph.NewCreateSpec(taggeditem.Table, sqlgraph.NewFieldSpec(taggeditem.FieldID, field.TypeUint))
	)
	if id, ok := tic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tic.mutation.DeletedAt(); ok {
		_spec.SetField(taggeditem.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := tic.mutation.CreatedAt(); ok {
		_spec.SetField(taggeditem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tic.mutation.UpdatedAt(); ok {
		_spec.SetField(taggeditem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := tic.mutation.ContentType(); ok {
		_spec.SetField(taggeditem.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := tic.mutation.ObjectID(); ok {
		_spec.SetField(taggeditem.FieldObjectID, field.TypeString, value)
		_node.ObjectID = value
	}
	if nodes := tic.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   taggeditem.TagsTable,
			Columns: taggeditem.TagsPrimaryKey,
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

// TaggedItemCreateBulk is the builder for creating many TaggedItem entities in bulk.
type TaggedItemCreateBulk struct {
	config
	err      error
	builders []*TaggedItemCreate
}

// Save creates the TaggedItem entities in the database.
func (ticb *TaggedItemCreateBulk) Save(ctx context.Context) ([]*TaggedItem, error) {
	if ticb.err != nil {
		return nil, ticb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ticb.builders))
	nodes := make([]*TaggedItem, len(ticb.builders))
	mutators := make([]Mutator, len(ticb.builders))
	for i := range ticb.builders {
		func(i int, root context.Context) {
			builder := ticb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaggedItemMutation)
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
					_, err = mutators[i+1].Mutate(root, ticb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ticb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ticb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ticb *TaggedItemCreateBulk) SaveX(ctx context.Context) []*TaggedItem {
	v, err := ticb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ticb *TaggedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := ticb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ticb *TaggedItemCreateBulk) ExecX(ctx context.Context) {
	if err := ticb.Exec(ctx); err != nil {
		panic(err)
	}
}
