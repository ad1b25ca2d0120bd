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
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// TagGroupUpdate is the builder for updating TagGroup entities.
type TagGroupUpdate struct {
	config
	hooks    []Hook
	mutation *TagGroupMutation
}

// Where appends a list predicates to the TagGroupUpdate builder.
func (tgu *TagGroupUpdate) Where(ps ...predicate.TagGroup) *TagGroupUpdate {
	tgu.mutation.Where(ps...)
	return tgu
}

// SetDeletedAt sets the "deleted_at" field.
func (tgu *TagGroupUpdate) SetDeletedAt(t time.Time) *TagGroupUpdate {
	tgu.mutation.SetDeletedAt(t)
	return tgu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (tgu *TagGroupUpdate) SetNillableDeletedAt(t *time.Time) *TagGroupUpdate {
	if t != nil {
		tgu.SetDeletedAt(*t)
	}
	return tgu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (tgu *TagGroupUpdate) ClearDeletedAt() *TagGroupUpdate {
	tgu.mutation.ClearDeletedAt()
	return tgu
}

// SetUpdatedAt sets the "updated_at" field.
func (tgu *TagGroupUpdate) SetUpdatedAt(t time.Time) *TagGroupUpdate {
	tgu.mutation.SetUpdatedAt(t)
	return tgu
}

// SetName sets the "name" field.
func (tgu *TagGroupUpdate) SetName(s string) *TagGroupUpdate {
	tgu.mutation.SetName(s)
	return tgu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tgu *TagGroupUpdate) SetNillableName(s *string) *TagGroupUpdate {
	if s != nil {
		tgu.SetName(*s)
	}
	return tgu
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (tgu *TagGroupUpdate) SetOwnerID(id uint) *TagGroupUpdate {
	tgu.mutation.SetOwnerID(id)
	return tgu
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (tgu *TagGroupUpdate) SetNillableOwnerID(id *uint) *TagGroupUpdate {
	if id != nil {
		tgu = tgu.SetOwnerID(*id)
	}
	return tgu
}

// SetOwner sets the "owner" edge to the User entity.
func (tgu *TagGroupUpdate) SetOwner(u *User) *TagGroupUpdate {
	return tgu.SetOwnerID(u.ID)
}

// AddTagIDs adds the "tags" edge to the UserTag entity by IDs.
func (tgu *TagGroupUpdate) AddTagIDs(ids ...uint) *TagGroupUpdate {
	tgu.mutation.AddTagIDs(ids...)
	return tgu
}

// AddTags adds the "tags" edges to the UserTag entity.
func (tgu *TagGroupUpdate) AddTags(u ...*UserTag) *TagGroupUpdate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tgu.AddTagIDs(ids...)
}

// Mutation returns the TagGroupMutation object of the builder.
func (tgu *TagGroupUpdate) Mutation() *TagGroupMutation {
	return tgu.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (tgu *TagGroupUpdate) ClearOwner() *TagGroupUpdate {
	tgu.mutation.ClearOwner()
	return tgu
}

// ClearTags clears all "tags" edges to the UserTag entity.
func (tgu *TagGroupUpdate) ClearTags() *TagGroupUpdate {
	tgu.mutation.ClearTags()
	return tgu
}

// RemoveTagIDs removes the "tags" edge to UserTag entities by IDs.
func (tgu *TagGroupUpdate) RemoveTagIDs(ids ...uint) *TagGroupUpdate {
	tgu.mutation.RemoveTagIDs(ids...)
	return tgu
}

// RemoveTags removes "tags" edges to UserTag entities.
func (tgu *TagGroupUpdate) RemoveTags(u ...*UserTag) *TagGroupUpdate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tgu.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tgu *TagGroupUpdate) Save(ctx context.Context) (int, error) {
	if err := tgu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, tgu.sqlSave, tgu.mutation, tgu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tgu *TagGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := tgu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tgu *TagGroupUpdate) Exec(ctx context.Context) error {
	_, err := tgu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tgu *TagGroupUpdate) ExecX(ctx context.Context) {
	if err := tgu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tgu *TagGroupUpdate) defaults() error {
	if _, ok := tgu.mutation.UpdatedAt(); !ok {
		if taggroup.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggroup.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := taggroup.UpdateDefaultUpdatedAt()
		tgu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (tgu *TagGroupUpdate) check() error {
	if v, ok := tgu.mutation.Name(); ok {
		if err := taggroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TagGroup.name": %w`, err)}
		}
	}
	return nil
}

func (tgu *TagGroupUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tgu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(taggroup.Table, taggroup.Columns, sqlgraph.NewFieldSpec(taggroup.FieldID, field.TypeUint))
	if ps := tgu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tgu.mutation.DeletedAt(); ok {
		_spec.SetField(taggroup.FieldDeletedAt, field.TypeTime, value)
	}
	if tgu.mutation.DeletedAtCleared() {
		_spec.ClearField(taggroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := tgu.mutation.UpdatedAt(); ok {
		_spec.SetField(taggroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tgu.mutation.Name(); ok {
		_spec.SetField(taggroup.FieldName, field.TypeString, value)
	}
	if tgu.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tgu.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tgu.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tgu.mutation.RemovedTagsIDs(); len(nodes) > 0 && !tgu.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tgu.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tgu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taggroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tgu.mutation.done = true
	return n, nil
}

// TagGroupUpdateOne is the builder for updating a single TagGroup entity.
type TagGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TagGroupMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (tguo *TagGroupUpdateOne) SetDeletedAt(t time.Time) *TagGroupUpdateOne {
	tguo.mutation.SetDeletedAt(t)
	return tguo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (tguo *TagGroupUpdateOne) SetNillableDeletedAt(t *time.Time) *TagGroupUpdateOne {
	if t != nil {
		tguo.SetDeletedAt(*t)
	}
	return tguo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (tguo *TagGroupUpdateOne) ClearDeletedAt() *TagGroupUpdateOne {
	tguo.mutation.ClearDeletedAt()
	return tguo
}

// SetUpdatedAt sets the "updated_at" field.
func (tguo *TagGroupUpdateOne) SetUpdatedAt(t time.Time) *TagGroupUpdateOne {
	tguo.mutation.SetUpdatedAt(t)
	return tguo
}

// SetName sets the "name" field.
func (tguo *TagGroupUpdateOne) SetName(s string) *TagGroupUpdateOne {
	tguo.mutation.SetName(s)
	return tguo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tguo *TagGroupUpdateOne) SetNillableName(s *string) *TagGroupUpdateOne {
	if s != nil {
		tguo.SetName(*s)
	}
	return tguo
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (tguo *TagGroupUpdateOne) SetOwnerID(id uint) *TagGroupUpdateOne {
	tguo.mutation.SetOwnerID(id)
	return tguo
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (tguo *TagGroupUpdateOne) SetNillableOwnerID(id *uint) *TagGroupUpdateOne {
	if id != nil {
		tguo = tguo.SetOwnerID(*id)
	}
	return tguo
}

// SetOwner sets the "owner" edge to the User entity.
func (tguo *TagGroupUpdateOne) SetOwner(u *User) *TagGroupUpdateOne {
	return tguo.SetOwnerID(u.ID)
}

// AddTagIDs adds the "tags" edge to the UserTag entity by IDs.
func (tguo *TagGroupUpdateOne) AddTagIDs(ids ...uint) *TagGroupUpdateOne {
	tguo.mutation.AddTagIDs(ids...)
	return tguo
}

// AddTags adds the "tags" edges to the UserTag entity.
func (tguo *TagGroupUpdateOne) AddTags(u ...*UserTag) *TagGroupUpdateOne {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tguo.AddTagIDs(ids...)
}

// Mutation returns the TagGroupMutation object of the builder.
func (tguo *TagGroupUpdateOne) Mutation() *TagGroupMutation {
	return tguo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (tguo *TagGroupUpdateOne) ClearOwner() *TagGroupUpdateOne {
	tguo.mutation.ClearOwner()
	return tguo
}

// ClearTags clears all "tags" edges to the UserTag entity.
func (tguo *TagGroupUpdateOne) ClearTags() *TagGroupUpdateOne {
	tguo.mutation.ClearTags()
	return tguo
}

// RemoveTagIDs removes the "tags" edge to UserTag entities by IDs.
func (tguo *TagGroupUpdateOne) RemoveTagIDs(ids ...uint) *TagGroupUpdateOne {
	tguo.mutation.RemoveTagIDs(ids...)
	return tguo
}

// RemoveTags removes "tags" edges to UserTag entities.
func (tguo *TagGroupUpdateOne) RemoveTags(u ...*UserTag) *TagGroupUpdateOne {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return tguo.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the TagGroupUpdate builder.
func (tguo *TagGroupUpdateOne) Where(ps ...predicate.TagGroup) *TagGroupUpdateOne {
	tguo.mutation.Where(ps...)
	return tguo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tguo *TagGroupUpdateOne) Select(field string, fields ...string) *TagGroupUpdateOne {
	tguo.fields = append([]string{field}, fields...)
	return tguo
}

// Save executes the query and returns the updated TagGroup entity.
func (tguo *TagGroupUpdateOne) Save(ctx context.Context) (*TagGroup, error) {
	if err := tguo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, tguo.sqlSave, tguo.mutation, tguo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tguo *TagGroupUpdateOne) SaveX(ctx context.Context) *TagGroup {
	node, err := tguo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tguo *TagGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := tguo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tguo *TagGroupUpdateOne) ExecX(ctx context.Context) {
	if err := tguo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tguo *TagGroupUpdateOne) defaults() error {
	if _, ok := tguo.mutation.UpdatedAt(); !ok {
		if taggroup.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized taggroup.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := taggroup.UpdateDefaultUpdatedAt()
		tguo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (tguo *TagGroupUpdateOne) check() error {
	if v, ok := tguo.mutation.Name(); ok {
		if err := taggroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TagGroup.name": %w`, err)}
		}
	}
	return nil
}

func (tguo *TagGroupUpdateOne) sqlSave(ctx context.Context) (_node *TagGroup, err error) {
	if err := tguo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taggroup.Table, taggroup.Columns, sqlgraph.NewFieldSpec(taggroup.FieldID, field.TypeUint))
	id, ok := tguo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TagGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tguo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taggroup.FieldID)
		for _, f := range fields {
			if !taggroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taggroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tguo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tguo.mutation.DeletedAt(); ok {
		_spec.SetField(taggroup.FieldDeletedAt, field.TypeTime, value)
	}
	if tguo.mutation.DeletedAtCleared() {
		_spec.ClearField(taggroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := tguo.mutation.UpdatedAt(); ok {
		_spec.SetField(taggroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tguo.mutation.Name(); ok {
		_spec.SetField(taggroup.FieldName, field.TypeString, value)
	}
	if tguo.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tguo.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tguo.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tguo.mutation.RemovedTagsIDs(); len(nodes) > 0 && !tguo.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tguo.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TagGroup{config: tguo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tguo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taggroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tguo.mutation.done = true
	return _node, nil
}
