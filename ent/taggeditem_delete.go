// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/user-tags/ent/predicate"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
)

// TaggedItemDelete is the builder for deleting a TaggedItem entity.
type TaggedItemDelete struct {
	config
	hooks    []Hook
	mutation *TaggedItemMutation
}

// Where appends a list predicates to the TaggedItemDelete builder.
func (tid *TaggedItemDelete) Where(ps ...predicate.TaggedItem) *TaggedItemDelete {
	tid.mutation.Where(ps...)
	return tid
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (tid *TaggedItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, tid.sqlExec, tid.mutation, tid.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (tid *TaggedItemDelete) ExecX(ctx context.Context) int {
	n, err := tid.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (tid *TaggedItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taggeditem.Table, sqlgraph.NewFieldSpec(taggeditem.FieldID, field.TypeUint))
	if ps := tid.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, tid.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	tid.mutation.done = true
	return affected, err
}

// TaggedItemDeleteOne is the builder for deleting a single TaggedItem entity.
type TaggedItemDeleteOne struct {
	tid *TaggedItemDelete
}

// Where appends a list predicates to the TaggedItemDelete builder.
func (tido *TaggedItemDeleteOne) Where(ps ...predicate.TaggedItem) *TaggedItemDeleteOne {
	tido.tid.mutation.Where(ps...)
	return tido
}

// Exec executes the deletion query.
func (tido *TaggedItemDeleteOne) Exec(ctx context.Context) error {
	n, err := tido.tid.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taggeditem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (tido *TaggedItemDeleteOne) ExecX(ctx context.Context) {
	if err := tido.Exec(ctx); err != nil {
		panic(err)
	}
}
