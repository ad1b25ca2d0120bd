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
	"github.com/anzhiyu-c/user-tags/ent/predicate"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// TaggedItemUpdate is the builder for updating TaggedItem entities.
type TaggedItemUpdate struct {
	config
	hooks    []Hook
	mutation *TaggedItemMutation
}

// Where appends a list predicates to the TaggedItemUpdate builder.
func (tiu *TaggedItemUpdate) Where(ps ...predicate.TaggedItem) *TaggedItemUpdate {
	tiu.mutation.Where(ps...)
	return tiu
}

// SetDeletedAt sets the "deleted_at" field.
func (tiu *TaggedItemUpdate) SetDeletedAt(t time.Time) *TaggedItemUpdate {
	tiu.mutation.SetDeletedAt(t)
	return tiu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (tiu *TaggedItemUpdate) SetNillableDeletedAt(t *time.Time) *TaggedItemUpdate {
	if t != nil {
		tiu.SetDeletedAt(*t)
	}
	return tiu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (tiu *TaggedItemUpdate) ClearDeletedAt() *TaggedItemUpdate {
	tiu.mutation.ClearDeletedAt()
	return tiu
}

// SetUpdatedAt sets the "updated_at" field.
func (tiu *TaggedItemUpdate) SetUpdatedAt(t time.Time) *TaggedItemUpdate {
	tiu.mutation.SetUpdatedAt(t)
	return tiu
}

// SetContentType sets the "content_type" field.
func (tiu *TaggedItemUpdate) SetContentType(s string) *TaggedItemUpdate {
	tiu.mutation.SetContentType(s)
	return tiu
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (tiu *TaggedItemUpdate) SetNillableContentType(s *string) *TaggedItemUpdate {
	if s != nil {
		tiu.SetContentType(*s)
	}
	return tiu
}

// SetObjectID sets the "object_id" field.
func (tiu *TaggedItemUpdate) SetObjectID(s string) *TaggedItemUpdate {
	tiu.mutation.SetObjectID(s)
	return tiu
}

// SetNillableObjectID sets the "object_id" field if the given value is not nil.
func (tiu *TaggedItemUpdate) SetNillableObjectID(s *string) *TaggedItemUpdate {
	if s != nil {
		tiu.SetObjectID(*s)
	}
	return tiu
}

// AddTagIDs adds the "tags" edge to the UserTag entity by IDs.
func (tiu *TaggedItemUpdate) AddTagIDs(ids ...uint) *TaggedItemUpdate {
	tiu.mutation.AddTagIDs(ids...)
	return tiu
}

// AddTags adds the "tags" edges to the UserTag entity.
func (tiu *TaggedItemUpdate) AddTags(u ...*UserTag) *TaggedItemUpdate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tiu.AddTagIDs(ids...)
}

// Mutation returns the TaggedItemMutation object of the builder.
func (tiu *TaggedItemUpdate) Mutation() *TaggedItemMutation {
	return tiu.mutation
}

// ClearTags clears all "tags" edges to the UserTag entity.
func (tiu *TaggedItemUpdate) ClearTags() *TaggedItemUpdate {
	tiu.mutation.ClearTags()
	return tiu
}

// RemoveTagIDs removes the "tags" edge to UserTag entities by IDs.
func (tiu *TaggedItemUpdate) RemoveTagIDs(ids ...uint) *TaggedItemUpdate {
	tiu.mutation.RemoveTagIDs(ids...)
	return tiu
}

// RemoveTags removes "tags" edges to UserTag entities.
func (tiu *TaggedItemUpdate) RemoveTags(u ...*UserTag) *TaggedItemUpdate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tiu.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tiu *TaggedItemUpdate) Save(ctx context.Context) (int, error) {
	if err := tiu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, tiu.sqlSave, tiu.mutation, tiu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tiu *TaggedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := tiu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tiu *TaggedItemUpdate) Exec(ctx context.Context) error {
	_, err := tiu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tiu *TaggedItemUpdate) ExecX(ctx context.Context) {
	if err := tiu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tiu *TaggedItemUpdate) defaults() error {
	if _, ok := tiu.mutation.UpdatedAt(); !ok {
		if taggeditem.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggeditem.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := taggeditem.UpdateDefaultUpdatedAt()
		tiu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (tiu *TaggedItemUpdate) check() error {
	if v, ok := tiu.mutation.ContentType(); ok {
		if err := taggeditem.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "TaggedItem.content_type": %w`, err)}
		}
	}
	if v, ok := tiu.mutation.ObjectID(); ok {
		if err := taggeditem.ObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "object_id", err: fmt.Errorf(`ent: validator failed for field "TaggedItem.object_id": %w`, err)}
		}
	}
	return nil
}

func (tiu *TaggedItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tiu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(taggeditem.Table, taggeditem.Columns, sqlgraph.NewFieldSpec(taggeditem.FieldID, field.TypeUint))
	if ps := tiu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tiu.mutation.DeletedAt(); ok {
		_spec.SetField(taggeditem.FieldDeletedAt, field.TypeTime, value)
	}
	if tiu.mutation.DeletedAtCleared() {
		_spec.ClearField(taggeditem.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := tiu.mutation.UpdatedAt(); ok {
		_spec.SetField(taggeditem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tiu.mutation.ContentType(); ok {
		_spec.SetField(taggeditem.FieldContentType, field.TypeString, value)
	}
	if value, ok := tiu.mutation.ObjectID(); ok {
		_spec.SetField(taggeditem.FieldObjectID, field.TypeString, value)
	}
	if tiu.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tiu.mutation.RemovedTagsIDs(); len(nodes) > 0 && !tiu.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tiu.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tiu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taggeditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tiu.mutation.done = true
	return n, nil
}

// TaggedItemUpdateOne is the builder for updating a single TaggedItem entity.
type TaggedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaggedItemMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (tiuo *TaggedItemUpdateOne) SetDeletedAt(t time.Time) *TaggedItemUpdateOne {
	tiuo.mutation.SetDeletedAt(t)
	return tiuo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (tiuo *TaggedItemUpdateOne) SetNillableDeletedAt(t *time.Time) *TaggedItemUpdateOne {
	if t != nil {
		tiuo.SetDeletedAt(*t)
	}
	return tiuo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (tiuo *TaggedItemUpdateOne) ClearDeletedAt() *TaggedItemUpdateOne {
	tiuo.mutation.ClearDeletedAt()
	return tiuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tiuo *TaggedItemUpdateOne) SetUpdatedAt(t time.Time) *TaggedItemUpdateOne {
	tiuo.mutation.SetUpdatedAt(t)
	return tiuo
}

// SetContentType sets the "content_type" field.
func (tiuo *TaggedItemUpdateOne) SetContentType(s string) *TaggedItemUpdateOne {
	tiuo.mutation.SetContentType(s)
	return tiuo
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (tiuo *TaggedItemUpdateOne) SetNillableContentType(s *string) *TaggedItemUpdateOne {
	if s != nil {
		tiuo.SetContentType(*s)
	}
	return tiuo
}

// SetObjectID sets the "object_id" field.
func (tiuo *TaggedItemUpdateOne) SetObjectID(s string) *TaggedItemUpdateOne {
	tiuo.mutation.SetObjectID(s)
	return tiuo
}

// SetNillableObjectID sets the "object_id" field if the given value is not nil.
func (tiuo *TaggedItemUpdateOne) SetNillableObjectID(s *string) *TaggedItemUpdateOne {
	if s != nil {
		tiuo.SetObjectID(*s)
	}
	return tiuo
}

// AddTagIDs adds the "tags" edge to the UserTag entity by IDs.
func (tiuo *TaggedItemUpdateOne) AddTagIDs(ids ...uint) *TaggedItemUpdateOne {
	tiuo.mutation.AddTagIDs(ids...)
	return tiuo
}

// AddTags adds the "tags" edges to the UserTag entity.
func (tiuo *TaggedItemUpdateOne) AddTags(u ...*UserTag) *TaggedItemUpdateOne {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tiuo.AddTagIDs(ids...)
}

// Mutation returns the TaggedItemMutation object of the builder.
func (tiuo *TaggedItemUpdateOne) Mutation() *TaggedItemMutation {
	return tiuo.mutation
}

// ClearTags clears all "tags" edges to the UserTag entity.
func (tiuo *TaggedItemUpdateOne) ClearTags() *TaggedItemUpdateOne {
	tiuo.mutation.ClearTags()
	return tiuo
}

// RemoveTagIDs removes the "tags" edge to UserTag entities by IDs.
func (tiuo *TaggedItemUpdateOne) RemoveTagIDs(ids ...uint) *TaggedItemUpdateOne {
	tiuo.mutation.RemoveTagIDs(ids...)
	return tiuo
}

// RemoveTags removes "tags" edges to UserTag entities.
func (tiuo *TaggedItemUpdateOne) RemoveTags(u ...*UserTag) *TaggedItemUpdateOne {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tiuo.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the TaggedItemUpdate builder.
func (tiuo *TaggedItemUpdateOne) Where(ps ...predicate.TaggedItem) *TaggedItemUpdateOne {
	tiuo.mutation.Where(ps...)
	return tiuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tiuo *TaggedItemUpdateOne) Select(field string, fields ...string) *TaggedItemUpdateOne {
	tiuo.fields = append([]string{field}, fields...)
	return tiuo
}

// Save executes the query and returns the updated TaggedItem entity.
func (tiuo *TaggedItemUpdateOne) Save(ctx context.Context) (*TaggedItem, error) {
	if err := tiuo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, tiuo.sqlSave, tiuo.mutation, tiuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tiuo *TaggedItemUpdateOne) SaveX(ctx context.Context) *TaggedItem {
	node, err := tiuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tiuo *TaggedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := tiuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tiuo *TaggedItemUpdateOne) ExecX(ctx context.Context) {
	if err := tiuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tiuo *TaggedItemUpdateOne) defaults() error {
	if _, ok := tiuo.mutation.UpdatedAt(); !ok {
		if taggeditem.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggeditem.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := taggeditem.UpdateDefaultUpdatedAt()
		tiuo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (tiuo *TaggedItemUpdateOne) check() error {
	if v, ok := tiuo.mutation.ContentType(); ok {
		if err := taggeditem.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "TaggedItem.content_type": %w`, err)}
		}
	}
	if v, ok := tiuo.mutation.ObjectID(); ok {
		if err := taggeditem.ObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "object_id", err: fmt.Errorf(`ent: validator failed for field "TaggedItem.object_id": %w`, err)}
		}
	}
	return nil
}

func (tiuo *TaggedItemUpdateOne) sqlSave(ctx context.Context) (_node *TaggedItem, err error) {
	if err := tiuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taggeditem.Table, taggeditem.Columns, sqlgraph.NewFieldSpec(taggeditem.FieldID, field.TypeUint))
	id, ok := tiuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaggedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tiuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taggeditem.FieldID)
		for _, f := range fields {
			if !taggeditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taggeditem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tiuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tiuo.mutation.DeletedAt(); ok {
		_spec.SetField(taggeditem.FieldDeletedAt, field.TypeTime, value)
	}
	if tiuo.mutation.DeletedAtCleared() {
		_spec.ClearField(taggeditem.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := tiuo.mutation.UpdatedAt(); ok {
		_spec.SetField(taggeditem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tiuo.mutation.ContentType(); ok {
		_spec.SetField(taggeditem.FieldContentType, field.TypeString, value)
	}
	if value, ok := tiuo.mutation.ObjectID(); ok {
		_spec.SetField(taggeditem.FieldObjectID, field.TypeString, value)
	}
	if tiuo.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tiuo.mutation.RemovedTagsIDs(); len(nodes) > 0 && !tiuo.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tiuo.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaggedItem{config: tiuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tiuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taggeditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tiuo.mutation.done = true
	return _node, nil
}
