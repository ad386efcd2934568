// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openscribe/scribe/ent/anontoken"
)

// AnonToken is the model entity for the AnonToken schema.
type AnonToken struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnonID holds the value of the "anon_id" field.
	AnonID string `json:"anon_id,omitempty"`
	// IPHash holds the value of the "ip_hash" field.
	IPHash string `json:"ip_hash,omitempty"`
	// UaHash holds the value of the "ua_hash" field.
	UaHash string `json:"ua_hash,omitempty"`
	// UsedTrial holds the value of the "used_trial" field.
	UsedTrial bool `json:"used_trial,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnonToken) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anontoken.FieldUsedTrial:
			values[i] = new(sql.NullBool)
		case anontoken.FieldID, anontoken.FieldAnonID, anontoken.FieldIPHash, anontoken.FieldUaHash:
			values[i] = new(sql.NullString)
		case anontoken.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnonToken fields.
func (_m *AnonToken) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anontoken.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case anontoken.FieldAnonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anon_id", values[i])
			} else if value.Valid {
				_m.AnonID = value.String
			}
		case anontoken.FieldIPHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_hash", values[i])
			} else if value.Valid {
				_m.IPHash = value.String
			}
		case anontoken.FieldUaHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ua_hash", values[i])
			} else if value.Valid {
				_m.UaHash = value.String
			}
		case anontoken.FieldUsedTrial:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field used_trial", values[i])
			} else if value.Valid {
				_m.UsedTrial = value.Bool
			}
		case anontoken.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnonToken.
// This includes values selected through modifiers, order, etc.
func (_m *AnonToken) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnonToken.
// Note that you need to call AnonToken.Unwrap() before calling this method if this AnonToken
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnonToken) Update() *AnonTokenUpdateOne {
	return NewAnonTokenClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnonToken entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnonToken) Unwrap() *AnonToken {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnonToken is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnonToken) String() string {
	var builder strings.Builder
	builder.WriteString("AnonToken(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anon_id=")
	builder.WriteString(_m.AnonID)
	builder.WriteString(", ")
	builder.WriteString("ip_hash=")
	builder.WriteString(_m.IPHash)
	builder.WriteString(", ")
	builder.WriteString("ua_hash=")
	builder.WriteString(_m.UaHash)
	builder.WriteString(", ")
	builder.WriteString("used_trial=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedTrial))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnonTokens is a parsable slice of AnonToken.
type AnonTokens []*AnonToken
