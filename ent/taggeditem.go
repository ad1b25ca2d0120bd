// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
)

// 被打标签的对象表
type TaggedItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 对象类型标识，如 article、photo
	ContentType string `json:"content_type,omitempty"`
	// 对象在宿主系统中的ID
	ObjectID string `json:"object_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaggedItemQuery when eager-loading is set.
	Edges        TaggedItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaggedItemEdges holds the relations/edges for other nodes in the graph.
type TaggedItemEdges struct {
	// Tags holds the value of the tags edge.
	Tags []*UserTag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e TaggedItemEdges) TagsOrErr() ([]*UserTag, error) {
	if e.loadedTypes[0] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaggedItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taggeditem.FieldID:
			values[i] = new(sql.NullInt64)
		case taggeditem.FieldContentType, taggeditem.FieldObjectID:
			values[i] = new(sql.NullString)
		case taggeditem.FieldDeletedAt, taggeditem.FieldCreatedAt, taggeditem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaggedItem fields.
func (ti *TaggedItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taggeditem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ti.ID = uint(value.Int64)
		case taggeditem.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				ti.DeletedAt = new(time.Time)
				*ti.DeletedAt = value.Time
			}
		case taggeditem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ti.CreatedAt = value.Time
			}
		case taggeditem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ti.UpdatedAt = value.Time
			}
		case taggeditem.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				ti.ContentType = value.String
			}
		case taggeditem.FieldObjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field object_id", values[i])
			} else if value.Valid {
				ti.ObjectID = value.String
			}
		default:
			ti.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaggedItem.
// This includes values selected through modifiers, order, etc.
func (ti *TaggedItem) Value(name string) (ent.Value, error) {
	return ti.selectValues.Get(name)
}

// QueryTags queries the "tags" edge of the TaggedItem entity.
func (ti *TaggedItem) QueryTags() *UserTagQuery {
	return NewTaggedItemClient(ti.config).QueryTags(ti)
}

// Update returns a builder for updating this TaggedItem.
// Note that you need to call TaggedItem.Unwrap() before calling this method if this TaggedItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (ti *TaggedItem) Update() *TaggedItemUpdateOne {
	return NewTaggedItemClient(ti.config).UpdateOne(ti)
}

// Unwrap unwraps the TaggedItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ti *TaggedItem) Unwrap() *TaggedItem {
	_tx, ok := ti.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaggedItem is not a transactional entity")
	}
	ti.config.driver = _tx.drv
	return ti
}

// String implements the fmt.Stringer.
func (ti *TaggedItem) String() string {
	var builder strings.Builder
	builder.WriteString("TaggedItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ti.ID))
	if v := ti.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ti.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ti.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(ti.ContentType)
	builder.WriteString(", ")
	builder.WriteString("object_id=")
	builder.WriteString(ti.ObjectID)
	builder.WriteByte(')')
	return builder.String()
}

// TaggedItems is a parsable slice of TaggedItem.
type TaggedItems []*TaggedItem
