// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openscribe/scribe/ent/trialusage"
)

// TrialUsage is the model entity for the TrialUsage schema.
type TrialUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// AnonID holds the value of the "anon_id" field.
	AnonID *string `json:"anon_id,omitempty"`
	// UsedAt holds the value of the "used_at" field.
	UsedAt       time.Time `json:"used_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrialUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trialusage.FieldID, trialusage.FieldUserID, trialusage.FieldAnonID:
			values[i] = new(sql.NullString)
		case trialusage.FieldUsedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrialUsage fields.
func (_m *TrialUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trialusage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trialusage.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case trialusage.FieldAnonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anon_id", values[i])
			} else if value.Valid {
				_m.AnonID = new(string)
				*_m.AnonID = value.String
			}
		case trialusage.FieldUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field used_at", values[i])
			} else if value.Valid {
				_m.UsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrialUsage.
// This includes values selected through modifiers, order, etc.
func (_m *TrialUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrialUsage.
// Note that you need to call TrialUsage.Unwrap() before calling this method if this TrialUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrialUsage) Update() *TrialUsageUpdateOne {
	return NewTrialUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrialUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrialUsage) Unwrap() *TrialUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrialUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrialUsage) String() string {
	var builder strings.Builder
	builder.WriteString("TrialUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnonID; v != nil {
		builder.WriteString("anon_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("used_at=")
	builder.WriteString(_m.UsedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrialUsages is a parsable slice of TrialUsage.
type TrialUsages []*TrialUsage
