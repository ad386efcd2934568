// Code generated by ent, DO NOT EDIT.

package trialusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trialusage type in the database.
	Label = "trial_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "usage_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAnonID holds the string denoting the anon_id field in the database.
	FieldAnonID = "anon_id"
	// FieldUsedAt holds the string denoting the used_at field in the database.
	FieldUsedAt = "used_at"
	// Table holds the table name of the trialusage in the database.
	Table = "trial_usages"
)

// Columns holds all SQL columns for trialusage fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAnonID,
	FieldUsedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUsedAt holds the default value on creation for the "used_at" field.
	DefaultUsedAt func() time.Time
)

// OrderOption defines the ordering options for the TrialUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAnonID orders the results by the anon_id field.
func ByAnonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnonID, opts...).ToFunc()
}

// ByUsedAt orders the results by the used_at field.
func ByUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedAt, opts...).ToFunc()
}
