// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
)

// 标签分组表
type TagGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 分组名称，即标签字段名，如 skills
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TagGroupQuery when eager-loading is set.
	Edges        TagGroupEdges `json:"edges"`
	owner_id     *uint
	selectValues sql.SelectValues
}

// TagGroupEdges holds the relations/edges for other nodes in the graph.
type TagGroupEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*UserTag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TagGroupEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e TagGroupEdges) TagsOrErr() ([]*UserTag, error) {
	if e.loadedTypes[1] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TagGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taggroup.FieldID:
			values[i] = new(sql.NullInt64)
		case taggroup.FieldName:
			values[i] = new(sql.NullString)
		case taggroup.FieldDeletedAt, taggroup.FieldCreatedAt, taggroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case taggroup.ForeignKeys[0]: // owner_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TagGroup fields.
func (tg *TagGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taggroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			tg.ID = uint(value.Int64)
		case taggroup.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				tg.DeletedAt = new(time.Time)
				*tg.DeletedAt = value.Time
			}
		case taggroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				tg.CreatedAt = value.Time
			}
		case taggroup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				tg.UpdatedAt = value.Time
			}
		case taggroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				tg.Name = value.String
			}
		case taggroup.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field owner_id", value)
			} else if value.Valid {
				tg.owner_id = new(uint)
				*tg.owner_id = uint(value.Int64)
			}
		default:
			tg.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TagGroup.
// This includes values selected through modifiers, order, etc.
func (tg *TagGroup) Value(name string) (ent.Value, error) {
	return tg.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the TagGroup entity.
func (tg *TagGroup) QueryOwner() *UserQuery {
	return NewTagGroupClient(tg.config).QueryOwner(tg)
}

// QueryTags queries the "tags" edge of the TagGroup entity.
func (tg *TagGroup) QueryTags() *UserTagQuery {
	return NewTagGroupClient(tg.config).QueryTags(tg)
}

// Update returns a builder for updating this TagGroup.
// Note that you need to call TagGroup.Unwrap() before calling this method if this TagGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (tg *TagGroup) Update() *TagGroupUpdateOne {
	return NewTagGroupClient(tg.config).UpdateOne(tg)
}

// Unwrap unwraps the TagGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tg *TagGroup) Unwrap() *TagGroup {
	_tx, ok := tg.config.driver.(*txDriver)
	if !ok {
		panic("ent: TagGroup is not a transactional entity")
	}
	tg.config.driver = _tx.drv
	return tg
}

// String implements the fmt.Stringer.
func (tg *TagGroup) String() string {
	var builder strings.Builder
	builder.WriteString("TagGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tg.ID))
	if v := tg.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(tg.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(tg.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(tg.Name)
	builder.WriteByte(')')
	return builder.String()
}

// TagGroups is a parsable slice of TagGroup.
type TagGroups []*TagGroup
