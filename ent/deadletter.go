// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// DeadLetter is the model entity for the DeadLetter schema.
type DeadLetter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WebhookID holds the value of the "webhook_id" field.
	WebhookID string `json:"webhook_id,omitempty"`
	// DeliveryID holds the value of the "delivery_id" field.
	DeliveryID string `json:"delivery_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload string `json:"payload,omitempty"`
	// FinalError holds the value of the "final_error" field.
	FinalError string `json:"final_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeadLetterQuery when eager-loading is set.
	Edges                         DeadLetterEdges `json:"edges"`
	webhook_endpoint_dead_letters *string
	selectValues                  sql.SelectValues
}

// DeadLetterEdges holds the relations/edges for other nodes in the graph.
type DeadLetterEdges struct {
	// Endpoint holds the value of the endpoint edge.
	Endpoint *WebhookEndpoint `json:"endpoint,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EndpointOrErr returns the Endpoint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeadLetterEdges) EndpointOrErr() (*WebhookEndpoint, error) {
	if e.Endpoint != nil {
		return e.Endpoint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: webhookendpoint.Label}
	}
	return nil, &NotLoadedError{edge: "endpoint"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeadLetter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldID:
			values[i] = new(sql.NullInt64)
		case deadletter.FieldWebhookID, deadletter.FieldDeliveryID, deadletter.FieldURL, deadletter.FieldPayload, deadletter.FieldFinalError:
			values[i] = new(sql.NullString)
		case deadletter.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case deadletter.ForeignKeys[0]: // webhook_endpoint_dead_letters
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeadLetter fields.
func (_m *DeadLetter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deadletter.FieldWebhookID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_id", values[i])
			} else if value.Valid {
				_m.WebhookID = value.String
			}
		case deadletter.FieldDeliveryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_id", values[i])
			} else if value.Valid {
				_m.DeliveryID = value.String
			}
		case deadletter.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case deadletter.FieldPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value.Valid {
				_m.Payload = value.String
			}
		case deadletter.FieldFinalError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_error", values[i])
			} else if value.Valid {
				_m.FinalError = value.String
			}
		case deadletter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deadletter.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_endpoint_dead_letters", values[i])
			} else if value.Valid {
				_m.webhook_endpoint_dead_letters = new(string)
				*_m.webhook_endpoint_dead_letters = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeadLetter.
// This includes values selected through modifiers, order, etc.
func (_m *DeadLetter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEndpoint queries the "endpoint" edge of the DeadLetter entity.
func (_m *DeadLetter) QueryEndpoint() *WebhookEndpointQuery {
	return NewDeadLetterClient(_m.config).QueryEndpoint(_m)
}

// Update returns a builder for updating this DeadLetter.
// Note that you need to call DeadLetter.Unwrap() before calling this method if this DeadLetter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeadLetter) Update() *DeadLetterUpdateOne {
	return NewDeadLetterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeadLetter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeadLetter) Unwrap() *DeadLetter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeadLetter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeadLetter) String() string {
	var builder strings.Builder
	builder.WriteString("DeadLetter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("webhook_id=")
	builder.WriteString(_m.WebhookID)
	builder.WriteString(", ")
	builder.WriteString("delivery_id=")
	builder.WriteString(_m.DeliveryID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(_m.Payload)
	builder.WriteString(", ")
	builder.WriteString("final_error=")
	builder.WriteString(_m.FinalError)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeadLetters is a parsable slice of DeadLetter.
type DeadLetters []*DeadLetter
