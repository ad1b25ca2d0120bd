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
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// UserTagUpdate is the builder for updating UserTag entities.
type UserTagUpdate struct {
	config
	hooks    []Hook
	mutation *UserTagMutation
}

// Where appends a list predicates to the UserTagUpdate builder.
func (utu *UserTagUpdate) Where(ps ...predicate.UserTag) *UserTagUpdate {
	utu.mutation.Where(ps...)
	return utu
}

// SetDeletedAt sets the "deleted_at" field.
func (utu *UserTagUpdate) SetDeletedAt(t time.Time) *UserTagUpdate {
	utu.mutation.SetDeletedAt(t)
	return utu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (utu *UserTagUpdate) SetNillableDeletedAt(t *time.Time) *UserTagUpdate {
	if t != nil {
		utu.SetDeletedAt(*t)
	}
	return utu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (utu *UserTagUpdate) ClearDeletedAt() *UserTagUpdate {
	utu.mutation.ClearDeletedAt()
	return utu
}

// SetUpdatedAt sets the "updated_at" field.
func (utu *UserTagUpdate) SetUpdatedAt(t time.Time) *UserTagUpdate {
	utu.mutation.SetUpdatedAt(t)
	return utu
}

// SetText sets the "text" field.
func (utu *UserTagUpdate) SetText(s string) *UserTagUpdate {
	utu.mutation.SetText(s)
	return utu
}

// SetNillableText sets the "text" field if the given value is not nil.
func (utu *UserTagUpdate) SetNillableText(s *string) *UserTagUpdate {
	if s != nil {
		utu.SetText(*s)
	}
	return utu
}

// SetCount sets the "count" field.
func (utu *UserTagUpdate) SetCount(i int) *UserTagUpdate {
	utu.mutation.ResetCount()
	utu.mutation.SetCount(i)
	return utu
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (utu *UserTagUpdate) SetNillableCount(i *int) *UserTagUpdate {
	if i != nil {
		utu.SetCount(*i)
	}
	return utu
}

// AddCount adds i to the "count" field.
func (utu *UserTagUpdate) AddCount(i int) *UserTagUpdate {
	utu.mutation.AddCount(i)
	return utu
}

// SetGroupID sets the "group" edge to the TagGroup entity by ID.
func (utu *UserTagUpdate) SetGroupID(id uint) *UserTagUpdate {
	utu.mutation.SetGroupID(id)
	return utu
}

// SetGroup sets the "group" edge to the TagGroup entity.
func (utu *UserTagUpdate) SetGroup(t *TagGroup) *UserTagUpdate {
	return utu.SetGroupID(t.ID)
}

// AddItemIDs adds the "items" edge to the TaggedItem entity by IDs.
func (utu *UserTagUpdate) AddItemIDs(ids ...uint) *UserTagUpdate {
	utu.mutation.AddItemIDs(ids...)
	return utu
}

// AddItems adds the "items" edges to the TaggedItem entity.
func (utu *UserTagUpdate) AddItems(t ...*TaggedItem) *UserTagUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return utu.AddItemIDs(ids...)
}

// Mutation returns the UserTagMutation object of the builder.
func (utu *UserTagUpdate) Mutation() *UserTagMutation {
	return utu.mutation
}

// ClearGroup clears the "group" edge to the TagGroup entity.
func (utu *UserTagUpdate) ClearGroup() *UserTagUpdate {
	utu.mutation.ClearGroup()
	return utu
}

// ClearItems clears all "items" edges to the TaggedItem entity.
func (utu *UserTagUpdate) ClearItems() *UserTagUpdate {
	utu.mutation.ClearItems()
	return utu
}

// RemoveItemIDs removes the "items" edge to TaggedItem entities by IDs.
func (utu *UserTagUpdate) RemoveItemIDs(ids ...uint) *UserTagUpdate {
	utu.mutation.RemoveItemIDs(ids...)
	return utu
}

// RemoveItems removes "items" edges to TaggedItem entities.
func (utu *UserTagUpdate) RemoveItems(t ...*TaggedItem) *UserTagUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return utu.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (utu *UserTagUpdate) Save(ctx context.Context) (int, error) {
	if err := utu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, utu.sqlSave, utu.mutation, utu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (utu *UserTagUpdate) SaveX(ctx context.Context) int {
	affected, err := utu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (utu *UserTagUpdate) Exec(ctx context.Context) error {
	_, err := utu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (utu *UserTagUpdate) ExecX(ctx context.Context) {
	if err := utu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (utu *UserTagUpdate) defaults() error {
	if _, ok := utu.mutation.UpdatedAt(); !ok {
		if usertag.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized usertag.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := usertag.UpdateDefaultUpdatedAt()
		utu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (utu *UserTagUpdate) check() error {
	if v, ok := utu.mutation.Text(); ok {
		if err := usertag.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "UserTag.text": %w`, err)}
		}
	}
	if v, ok := utu.mutation.Count(); ok {
		if err := usertag.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "UserTag.count": %w`, err)}
		}
	}
	if utu.mutation.GroupCleared() && len(utu.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTag.group"`)
	}
	return nil
}

func (utu *UserTagUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := utu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(usertag.Table, usertag.Columns, sqlgraph.NewFieldSpec(usertag.FieldID, field.TypeUint))
	if ps := utu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := utu.mutation.DeletedAt(); ok {
		_spec.SetField(usertag.FieldDeletedAt, field.TypeTime, value)
	}
	if utu.mutation.DeletedAtCleared() {
		_spec.ClearField(usertag.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := utu.mutation.UpdatedAt(); ok {
		_spec.SetField(usertag.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := utu.mutation.Text(); ok {
		_spec.SetField(usertag.FieldText, field.TypeString, value)
	}
	if value, ok := utu.mutation.Count(); ok {
		_spec.SetField(usertag.FieldCount, field.TypeInt, value)
	}
	if value, ok := utu.mutation.AddedCount(); ok {
		_spec.AddField(usertag.FieldCount, field.TypeInt, value)
	}
	if utu.mutation.GroupCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := utu.mutation.GroupIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if utu.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := utu.mutation.RemovedItemsIDs(); len(nodes) > 0 && !utu.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := utu.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, utu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usertag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	utu.mutation.done = true
	return n, nil
}

// UserTagUpdateOne is the builder for updating a single UserTag entity.
type UserTagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserTagMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (utuo *UserTagUpdateOne) SetDeletedAt(t time.Time) *UserTagUpdateOne {
	utuo.mutation.SetDeletedAt(t)
	return utuo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (utuo *UserTagUpdateOne) SetNillableDeletedAt(t *time.Time) *UserTagUpdateOne {
	if t != nil {
		utuo.SetDeletedAt(*t)
	}
	return utuo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (utuo *UserTagUpdateOne) ClearDeletedAt() *UserTagUpdateOne {
	utuo.mutation.ClearDeletedAt()
	return utuo
}

// SetUpdatedAt sets the "updated_at" field.
func (utuo *UserTagUpdateOne) SetUpdatedAt(t time.Time) *UserTagUpdateOne {
	utuo.mutation.SetUpdatedAt(t)
	return utuo
}

// SetText sets the "text" field.
func (utuo *UserTagUpdateOne) SetText(s string) *UserTagUpdateOne {
	utuo.mutation.SetText(s)
	return utuo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (utuo *UserTagUpdateOne) SetNillableText(s *string) *UserTagUpdateOne {
	if s != nil {
		utuo.SetText(*s)
	}
	return utuo
}

// SetCount sets the "count" field.
func (utuo *UserTagUpdateOne) SetCount(i int) *UserTagUpdateOne {
	utuo.mutation.ResetCount()
	utuo.mutation.SetCount(i)
	return utuo
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (utuo *UserTagUpdateOne) SetNillableCount(i *int) *UserTagUpdateOne {
	if i != nil {
		utuo.SetCount(*i)
	}
	return utuo
}

// AddCount adds i to the "count" field.
func (utuo *UserTagUpdateOne) AddCount(i int) *UserTagUpdateOne {
	utuo.mutation.AddCount(i)
	return utuo
}

// SetGroupID sets the "group" edge to the TagGroup entity by ID.
func (utuo *UserTagUpdateOne) SetGroupID(id uint) *UserTagUpdateOne {
	utuo.mutation.SetGroupID(id)
	return utuo
}

// SetGroup sets the "group" edge to the TagGroup entity.
func (utuo *UserTagUpdateOne) SetGroup(t *TagGroup) *UserTagUpdateOne {
	return utuo.SetGroupID(t.ID)
}

// AddItemIDs adds the "items" edge to the TaggedItem entity by IDs.
func (utuo *UserTagUpdateOne) AddItemIDs(ids ...uint) *UserTagUpdateOne {
	utuo.mutation.AddItemIDs(ids...)
	return utuo
}

// AddItems adds the "items" edges to the TaggedItem entity.
func (utuo *UserTagUpdateOne) AddItems(t ...*TaggedItem) *UserTagUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return utuo.AddItemIDs(ids...)
}

// Mutation returns the UserTagMutation object of the builder.
func (utuo *UserTagUpdateOne) Mutation() *UserTagMutation {
	return utuo.mutation
}

// ClearGroup clears the "group" edge to the TagGroup entity.
func (utuo *UserTagUpdateOne) ClearGroup() *UserTagUpdateOne {
	utuo.mutation.ClearGroup()
	return utuo
}

// ClearItems clears all "items" edges to the TaggedItem entity.
func (utuo *UserTagUpdateOne) ClearItems() *UserTagUpdateOne {
	utuo.mutation.ClearItems()
	return utuo
}

// RemoveItemIDs removes the "items" edge to TaggedItem entities by IDs.
func (utuo *UserTagUpdateOne) RemoveItemIDs(ids ...uint) *UserTagUpdateOne {
	utuo.mutation.RemoveItemIDs(ids...)
	return utuo
}

// RemoveItems removes "items" edges to TaggedItem entities.
func (utuo *UserTagUpdateOne) RemoveItems(t ...*TaggedItem) *UserTagUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return utuo.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the UserTagUpdate builder.
func (utuo *UserTagUpdateOne) Where(ps ...predicate.UserTag) *UserTagUpdateOne {
	utuo.mutation.Where(ps...)
	return utuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (utuo *UserTagUpdateOne) Select(field string, fields ...string) *UserTagUpdateOne {
	utuo.fields = append([]string{field}, fields...)
	return utuo
}

// Save executes the query and returns the updated UserTag entity.
func (utuo *UserTagUpdateOne) Save(ctx context.Context) (*UserTag, error) {
	if err := utuo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, utuo.sqlSave, utuo.mutation, utuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (utuo *UserTagUpdateOne) SaveX(ctx context.Context) *UserTag {
	node, err := utuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (utuo *UserTagUpdateOne) Exec(ctx context.Context) error {
	_, err := utuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (utuo *UserTagUpdateOne) ExecX(ctx context.Context) {
	if err := utuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (utuo *UserTagUpdateOne) defaults() error {
	if _, ok := utuo.mutation.UpdatedAt(); !ok {
		if usertag.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized usertag.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := usertag.UpdateDefaultUpdatedAt()
		utuo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (utuo *UserTagUpdateOne) check() error {
	if v, ok := utuo.mutation.Text(); ok {
		if err := usertag.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "UserTag.text": %w`, err)}
		}
	}
	if v, ok := utuo.mutation.Count(); ok {
		if err := usertag.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "UserTag.count": %w`, err)}
		}
	}
	if utuo.mutation.GroupCleared() && len(utuo.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTag.group"`)
	}
	return nil
}

func (utuo *UserTagUpdateOne) sqlSave(ctx context.Context) (_node *UserTag, err error) {
	if err := utuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usertag.Table, usertag.Columns, sqlgraph.NewFieldSpec(usertag.FieldID, field.TypeUint))
	id, ok := utuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserTag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := utuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usertag.FieldID)
		for _, f := range fields {
			if !usertag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usertag.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := utuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := utuo.mutation.DeletedAt(); ok {
		_spec.SetField(usertag.FieldDeletedAt, field.TypeTime, value)
	}
	if utuo.mutation.DeletedAtCleared() {
		_spec.ClearField(usertag.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := utuo.mutation.UpdatedAt(); ok {
		_spec.SetField(usertag.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := utuo.mutation.Text(); ok {
		_spec.SetField(usertag.FieldText, field.TypeString, value)
	}
	if value, ok := utuo.mutation.Count(); ok {
		_spec.SetField(usertag.FieldCount, field.TypeInt, value)
	}
	if value, ok := utuo.mutation.AddedCount(); ok {
		_spec.AddField(usertag.FieldCount, field.TypeInt, value)
	}
	if utuo.mutation.GroupCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := utuo.mutation.GroupIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if utuo.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := utuo.mutation.RemovedItemsIDs(); len(nodes) > 0 && !utuo.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := utuo.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserTag{config: utuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, utuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usertag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	utuo.mutation.done = true
	return _node, nil
}
