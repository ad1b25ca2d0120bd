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
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/ent/usergroup"
)

// UserGroupUpdate is the builder for updating UserGroup entities.
type UserGroupUpdate struct {
	config
	hooks    []Hook
	mutation *UserGroupMutation
}

// Where appends a list predicates to the UserGroupUpdate builder.
func (ugu *UserGroupUpdate) Where(ps ...predicate.UserGroup) *UserGroupUpdate {
	ugu.mutation.Where(ps...)
	return ugu
}

// SetDeletedAt sets the "deleted_at" field.
func (ugu *UserGroupUpdate) SetDeletedAt(t time.Time) *UserGroupUpdate {
	ugu.mutation.SetDeletedAt(t)
	return ugu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (ugu *UserGroupUpdate) SetNillableDeletedAt(t *time.Time) *UserGroupUpdate {
	if t != nil {
		ugu.SetDeletedAt(*t)
	}
	return ugu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (ugu *UserGroupUpdate) ClearDeletedAt() *UserGroupUpdate {
	ugu.mutation.ClearDeletedAt()
	return ugu
}

// SetUpdatedAt sets the "updated_at" field.
func (ugu *UserGroupUpdate) SetUpdatedAt(t time.Time) *UserGroupUpdate {
	ugu.mutation.SetUpdatedAt(t)
	return ugu
}

// SetName sets the "name" field.
func (ugu *UserGroupUpdate) SetName(s string) *UserGroupUpdate {
	ugu.mutation.SetName(s)
	return ugu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ugu *UserGroupUpdate) SetNillableName(s *string) *UserGroupUpdate {
	if s != nil {
		ugu.SetName(*s)
	}
	return ugu
}

// SetDescription sets the "description" field.
func (ugu *UserGroupUpdate) SetDescription(s string) *UserGroupUpdate {
	ugu.mutation.SetDescription(s)
	return ugu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ugu *UserGroupUpdate) SetNillableDescription(s *string) *UserGroupUpdate {
	if s != nil {
		ugu.SetDescription(*s)
	}
	return ugu
}

// ClearDescription clears the value of the "description" field.
func (ugu *UserGroupUpdate) ClearDescription() *UserGroupUpdate {
	ugu.mutation.ClearDescription()
	return ugu
}

// SetPermissions sets the "permissions" field.
func (ugu *UserGroupUpdate) SetPermissions(s string) *UserGroupUpdate {
	ugu.mutation.SetPermissions(s)
	return ugu
}

// SetNillablePermissions sets the "permissions" field if the given value is not nil.
func (ugu *UserGroupUpdate) SetNillablePermissions(s *string) *UserGroupUpdate {
	if s != nil {
		ugu.SetPermissions(*s)
	}
	return ugu
}

// ClearPermissions clears the value of the "permissions" field.
func (ugu *UserGroupUpdate) ClearPermissions() *UserGroupUpdate {
	ugu.mutation.ClearPermissions()
	return ugu
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (ugu *UserGroupUpdate) AddUserIDs(ids ...uint) *UserGroupUpdate {
	ugu.mutation.AddUserIDs(ids...)
	return ugu
}

// AddUsers adds the "users" edges to the User entity.
func (ugu *UserGroupUpdate) AddUsers(u ...*User) *UserGroupUpdate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return ugu.AddUserIDs(ids...)
}

// Mutation returns the UserGroupMutation object of the builder.
func (ugu *UserGroupUpdate) Mutation() *UserGroupMutation {
	return ugu.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (ugu *UserGroupUpdate) ClearUsers() *UserGroupUpdate {
	ugu.mutation.ClearUsers()
	return ugu
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (ugu *UserGroupUpdate) RemoveUserIDs(ids ...uint) *UserGroupUpdate {
	ugu.mutation.RemoveUserIDs(ids...)
	return ugu
}

// RemoveUsers removes "users" edges to User entities.
func (ugu *UserGroupUpdate) RemoveUsers(u ...*User) *UserGroupUpdate {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return ugu.RemoveUserIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ugu *UserGroupUpdate) Save(ctx context.Context) (int, error) {
	if err := ugu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, ugu.sqlSave, ugu.mutation, ugu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ugu *UserGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := ugu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ugu *UserGroupUpdate) Exec(ctx context.Context) error {
	_, err := ugu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ugu *UserGroupUpdate) ExecX(ctx context.Context) {
	if err := ugu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ugu *UserGroupUpdate) defaults() error {
	if _, ok := ugu.mutation.UpdatedAt(); !ok {
		if usergroup.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized usergroup.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := usergroup.UpdateDefaultUpdatedAt()
		ugu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (ugu *UserGroupUpdate) check() error {
	if v, ok := ugu.mutation.Name(); ok {
		if err := usergroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UserGroup.name": %w`, err)}
		}
	}
	if v, ok := ugu.mutation.Description(); ok {
		if err := usergroup.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "UserGroup.description": %w`, err)}
		}
	}
	return nil
}

func (ugu *UserGroupUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ugu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(usergroup.Table, usergroup.Columns, sqlgraph.NewFieldSpec(usergroup.FieldID, field.TypeUint))
	if ps := ugu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ugu.mutation.DeletedAt(); ok {
		_spec.SetField(usergroup.FieldDeletedAt, field.TypeTime, value)
	}
	if ugu.mutation.DeletedAtCleared() {
		_spec.ClearField(usergroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := ugu.mutation.UpdatedAt(); ok {
		_spec.SetField(usergroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ugu.mutation.Name(); ok {
		_spec.SetField(usergroup.FieldName, field.TypeString, value)
	}
	if value, ok := ugu.mutation.Description(); ok {
		_spec.SetField(usergroup.FieldDescription, field.TypeString, value)
	}
	if ugu.mutation.DescriptionCleared() {
		_spec.ClearField(usergroup.FieldDescription, field.TypeString)
	}
	if value, ok := ugu.mutation.Permissions(); ok {
		_spec.SetField(usergroup.FieldPermissions, field.TypeString, value)
	}
	if ugu.mutation.PermissionsCleared() {
		_spec.ClearField(usergroup.FieldPermissions, field.TypeString)
	}
	if ugu.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usergroup.UsersTable,
			Columns: []string{usergroup.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ugu.mutation.RemovedUsersIDs(); len(nodes) > 0 && !ugu.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usergroup.UsersTable,
			Columns: []string{usergroup.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ugu.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usergroup.UsersTable,
			Columns: []string{usergroup.UsersColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, ugu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usergroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ugu.mutation.done = true
	return n, nil
}

// UserGroupUpdateOne is the builder for updating a single UserGroup entity.
type UserGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserGroupMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (uguo *UserGroupUpdateOne) SetDeletedAt(t time.Time) *UserGroupUpdateOne {
	uguo.mutation.SetDeletedAt(t)
	return uguo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (uguo *UserGroupUpdateOne) SetNillableDeletedAt(t *time.Time) *UserGroupUpdateOne {
	if t != nil {
		uguo.SetDeletedAt(*t)
	}
	return uguo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (uguo *UserGroupUpdateOne) ClearDeletedAt() *UserGroupUpdateOne {
	uguo.mutation.ClearDeletedAt()
	return uguo
}

// SetUpdatedAt sets the "updated_at" field.
func (uguo *UserGroupUpdateOne) SetUpdatedAt(t time.Time) *UserGroupUpdateOne {
	uguo.mutation.SetUpdatedAt(t)
	return uguo
}

// SetName sets the "name" field.
func (uguo *UserGroupUpdateOne) SetName(s string) *UserGroupUpdateOne {
	uguo.mutation.SetName(s)
	return uguo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (uguo *UserGroupUpdateOne) SetNillableName(s *string) *UserGroupUpdateOne {
	if s != nil {
		uguo.SetName(*s)
	}
	return uguo
}

// SetDescription sets the "description" field.
func (uguo *UserGroupUpdateOne) SetDescription(s string) *UserGroupUpdateOne {
	uguo.mutation.SetDescription(s)
	return uguo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (uguo *UserGroupUpdateOne) SetNillableDescription(s *string) *UserGroupUpdateOne {
	if s != nil {
		uguo.SetDescription(*s)
	}
	return uguo
}

// ClearDescription clears the value of the "description" field.
func (uguo *UserGroupUpdateOne) ClearDescription() *UserGroupUpdateOne {
	uguo.mutation.ClearDescription()
	return uguo
}

// SetPermissions sets the "permissions" field.
func (uguo *UserGroupUpdateOne) SetPermissions(s string) *UserGroupUpdateOne {
	uguo.mutation.SetPermissions(s)
	return uguo
}

// SetNillablePermissions sets the "permissions" field if the given value is not nil.
func (uguo *UserGroupUpdateOne) SetNillablePermissions(s *string) *UserGroupUpdateOne {
	if s != nil {
		uguo.SetPermissions(*s)
	}
	return uguo
}

// ClearPermissions clears the value of the "permissions" field.
func (uguo *UserGroupUpdateOne) ClearPermissions() *UserGroupUpdateOne {
	uguo.mutation.ClearPermissions()
	return uguo
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (uguo *UserGroupUpdateOne) AddUserIDs(ids ...uint) *UserGroupUpdateOne {
	uguo.mutation.AddUserIDs(ids...)
	return uguo
}

// AddUsers adds the "users" edges to the User entity.
func (uguo *UserGroupUpdateOne) AddUsers(u ...*User) *UserGroupUpdateOne {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return uguo.AddUserIDs(ids...)
}

// Mutation returns the UserGroupMutation object of the builder.
func (uguo *UserGroupUpdateOne) Mutation() *UserGroupMutation {
	return uguo.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (uguo *UserGroupUpdateOne) ClearUsers() *UserGroupUpdateOne {
	uguo.mutation.ClearUsers()
	return uguo
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (uguo *UserGroupUpdateOne) RemoveUserIDs(ids ...uint) *UserGroupUpdateOne {
	uguo.mutation.RemoveUserIDs(ids...)
	return uguo
}

// RemoveUsers removes "users" edges to User entities.
func (uguo *UserGroupUpdateOne) RemoveUsers(u ...*User) *UserGroupUpdateOne {
	ids := make([]uint, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return uguo.RemoveUserIDs(ids...)
}

// Where appends a list predicates to the UserGroupUpdate builder.
func (uguo *UserGroupUpdateOne) Where(ps ...predicate.UserGroup) *UserGroupUpdateOne {
	uguo.mutation.Where(ps...)
	return uguo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uguo *UserGroupUpdateOne) Select(field string, fields ...string) *UserGroupUpdateOne {
	uguo.fields = append([]string{field}, fields...)
	return uguo
}

// Save executes the query and returns the updated UserGroup entity.
func (uguo *UserGroupUpdateOne) Save(ctx context.Context) (*UserGroup, error) {
	if err := uguo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, uguo.sqlSave, uguo.mutation, uguo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uguo *UserGroupUpdateOne) SaveX(ctx context.Context) *UserGroup {
	node, err := uguo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uguo *UserGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := uguo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uguo *UserGroupUpdateOne) ExecX(ctx context.Context) {
	if err := uguo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uguo *UserGroupUpdateOne) defaults() error {
	if _, ok := uguo.mutation.UpdatedAt(); !ok {
		if usergroup.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized usergroup.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := usergroup.UpdateDefaultUpdatedAt()
		uguo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (uguo *UserGroupUpdateOne) check() error {
	if v, ok := uguo.mutation.Name(); ok {
		if err := usergroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UserGroup.name": %w`, err)}
		}
	}
	if v, ok := uguo.mutation.Description(); ok {
		if err := usergroup.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "UserGroup.description": %w`, err)}
		}
	}
	return nil
}

func (uguo *UserGroupUpdateOne) sqlSave(ctx context.Context) (_node *UserGroup, err error) {
	if err := uguo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usergroup.Table, usergroup.Columns, sqlgraph.NewFieldSpec(usergroup.FieldID, field.TypeUint))
	id, ok := uguo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uguo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usergroup.FieldID)
		for _, f := range fields {
			if !usergroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usergroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uguo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uguo.mutation.DeletedAt(); ok {
		_spec.SetField(usergroup.FieldDeletedAt, field.TypeTime, value)
	}
	if uguo.mutation.DeletedAtCleared() {
		_spec.ClearField(usergroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := uguo.mutation.UpdatedAt(); ok {
		_spec.SetField(usergroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := uguo.mutation.Name(); ok {
		_spec.SetField(usergroup.FieldName, field.TypeString, value)
	}
	if value, ok := uguo.mutation.Description(); ok {
		_spec.SetField(usergroup.FieldDescription, field.TypeString, value)
	}
	if uguo.mutation.DescriptionCleared() {
		_spec.ClearField(usergroup.FieldDescription, field.TypeString)
	}
	if value, ok := uguo.mutation.Permissions(); ok {
		_spec.SetField(usergroup.FieldPermissions, field.TypeString, value)
	}
	if uguo.mutation.PermissionsCleared() {
		_spec.ClearField(usergroup.FieldPermissions, field.TypeString)
	}
	if uguo.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usergroup.UsersTable,
			Columns: []string{usergroup.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uguo.mutation.RemovedUsersIDs(); len(nodes) > 0 && !uguo.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usergroup.UsersTable,
			Columns: []string{usergroup.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uguo.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usergroup.UsersTable,
			Columns: []string{usergroup.UsersColumn},
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
	_node = &UserGroup{config: uguo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uguo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usergroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uguo.mutation.done = true
	return _node, nil
}
