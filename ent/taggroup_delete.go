// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/user-tags/ent/predicate"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
)

// TagGroupDelete is the builder for deleting a TagGroup entity.
type TagGroupDelete struct {
	config
	hooks    []Hook
	mutation *TagGroupMutation
}

// Where appends a list predicates to the TagGroupDelete builder.
func (tgd *TagGroupDelete) Where(ps ...predicate.TagGroup) *TagGroupDelete {
	tgd.mutation.Where(ps...)
	return tgd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (tgd *TagGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, tgd.sqlExec, tgd.mutation, tgd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (tgd *TagGroupDelete) ExecX(ctx context.Context) int {
	n, err := tgd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (tgd *TagGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taggroup.Table, sqlgraph.NewFieldSpec(taggroup.FieldID, field.TypeUint))
	if ps := tgd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, tgd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	tgd.mutation.done = true
	return affected, err
}

// TagGroupDeleteOne is the builder for deleting a single TagGroup entity.
type TagGroupDeleteOne struct {
	tgd *TagGroupDelete
}

// Where appends a list predicates to the TagGroupDelete builder.
func (tgdo *TagGroupDeleteOne) Where(ps ...predicate.TagGroup) *TagGroupDeleteOne {
	tgdo.tgd.mutation.Where(ps...)
	return tgdo
}

// Exec executes the deletion query.
func (tgdo *TagGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := tgdo.tgd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taggroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (tgdo *TagGroupDeleteOne) ExecX(ctx context.Context) {
	if err := tgdo.Exec(ctx); err != nil {
		panic(err)
	}
}
