// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnonToken is the predicate function for anontoken builders.
type AnonToken func(*sql.Selector)

// Balance is the predicate function for balance builders.
type Balance func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)

// TrialUsage is the predicate function for trialusage builders.
type TrialUsage func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
