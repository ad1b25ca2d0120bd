// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TagGroup is the predicate function for taggroup builders.
type TagGroup func(*sql.Selector)

// TaggedItem is the predicate function for taggeditem builders.
type TaggedItem func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserGroup is the predicate function for usergroup builders.
type UserGroup func(*sql.Selector)

// UserTag is the predicate function for usertag builders.
type UserTag func(*sql.Selector)
