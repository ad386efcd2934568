// Code generated by ent, DO NOT EDIT.

package anontoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the anontoken type in the database.
	Label = "anon_token"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "token_id"
	// FieldAnonID holds the string denoting the anon_id field in the database.
	FieldAnonID = "anon_id"
	// FieldIPHash holds the string denoting the ip_hash field in the database.
	FieldIPHash = "ip_hash"
	// FieldUaHash holds the string denoting the ua_hash field in the database.
	FieldUaHash = "ua_hash"
	// FieldUsedTrial holds the string denoting the used_trial field in the database.
	FieldUsedTrial = "used_trial"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the anontoken in the database.
	Table = "anon_tokens"
)

// Columns holds all SQL columns for anontoken fields.
var Columns = []string{
	FieldID,
	FieldAnonID,
	FieldIPHash,
	FieldUaHash,
	FieldUsedTrial,
	FieldCreatedAt,
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
	// DefaultUsedTrial holds the default value on creation for the "used_trial" field.
	DefaultUsedTrial bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnonToken queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnonID orders the results by the anon_id field.
func ByAnonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnonID, opts...).ToFunc()
}

// ByIPHash orders the results by the ip_hash field.
func ByIPHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPHash, opts...).ToFunc()
}

// ByUaHash orders the results by the ua_hash field.
func ByUaHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUaHash, opts...).ToFunc()
}

// ByUsedTrial orders the results by the used_trial field.
func ByUsedTrial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedTrial, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
