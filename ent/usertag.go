// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// 用户标签表
type UserTag struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 标签文本
	Text string `json:"text,omitempty"`
	// 引用该标签的对象数量
	Count int `json:"count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserTagQuery when eager-loading is set.
	Edges        UserTagEdges `json:"edges"`
	tag_group_id *uint
	selectValues sql.SelectValues
}

// UserTagEdges holds the relations/edges for other nodes in the graph.
type UserTagEdges struct {
	// Group holds the value of the group edge.
	Group *TagGroup `json:"group,omitempty"`
	// Items holds the value of the items edge.
	Items []*TaggedItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserTagEdges) GroupOrErr() (*TagGroup, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taggroup.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e UserTagEdges) ItemsOrErr() ([]*TaggedItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserTag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usertag.FieldID, usertag.FieldCount:
			values[i] = new(sql.NullInt64)
		case usertag.FieldText:
			values[i] = new(sql.NullString)
		case usertag.FieldDeletedAt, usertag.FieldCreatedAt, usertag.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case usertag.ForeignKeys[0]: // tag_group_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserTag fields.
func (ut *UserTag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usertag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ut.ID = uint(value.Int64)
		case usertag.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				ut.DeletedAt = new(time.Time)
				*ut.DeletedAt = value.Time
			}
		case usertag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ut.CreatedAt = value.Time
			}
		case usertag.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ut.UpdatedAt = value.Time
			}
		case usertag.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				ut.Text = value.String
			}
		case usertag.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				ut.Count = int(value.Int64)
			}
		case usertag.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field tag_group_id", value)
			} else if value.Valid {
				ut.tag_group_id = new(uint)
				*ut.tag_group_id = uint(value.Int64)
			}
		default:
			ut.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserTag.
// This includes values selected through modifiers, order, etc.
func (ut *UserTag) Value(name string) (ent.Value, error) {
	return ut.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the UserTag entity.
func (ut *UserTag) QueryGroup() *TagGroupQuery {
	return NewUserTagClient(ut.config).QueryGroup(ut)
}

// QueryItems queries the "items" edge of the UserTag entity.
func (ut *UserTag) QueryItems() *TaggedItemQuery {
	return NewUserTagClient(ut.config).QueryItems(ut)
}

// Update returns a builder for updating this UserTag.
// Note that you need to call UserTag.Unwrap() before calling this method if this UserTag
// was returned from a transaction, and the transaction was committed or rolled back.
func (ut *UserTag) Update() *UserTagUpdateOne {
	return NewUserTagClient(ut.config).UpdateOne(ut)
}

// Unwrap unwraps the UserTag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ut *UserTag) Unwrap() *UserTag {
	_tx, ok := ut.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserTag is not a transactional entity")
	}
	ut.config.driver = _tx.drv
	return ut
}

// String implements the fmt.Stringer.
func (ut *UserTag) String() string {
	var builder strings.Builder
	builder.WriteString("UserTag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ut.ID))
	if v := ut.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ut.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ut.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(ut.Text)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", ut.Count))
	builder.WriteByte(')')
	return builder.String()
}

// UserTags is a parsable slice of UserTag.
type UserTags []*UserTag
