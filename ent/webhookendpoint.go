// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// WebhookEndpoint is the model entity for the WebhookEndpoint schema.
type WebhookEndpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Event types this endpoint subscribes to
	Events []string `json:"events,omitempty"`
	// Secret holds the value of the "secret" field.
	Secret string `json:"-"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// TimeoutS holds the value of the "timeout_s" field.
	TimeoutS int `json:"timeout_s,omitempty"`
	// VerifySsl holds the value of the "verify_ssl" field.
	VerifySsl bool `json:"verify_ssl,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// Endpoint-defined headers added to every delivery
	Headers map[string]string `json:"headers,omitempty"`
	// DisabledReason holds the value of the "disabled_reason" field.
	DisabledReason *string `json:"disabled_reason,omitempty"`
	// DisabledAt holds the value of the "disabled_at" field.
	DisabledAt *time.Time `json:"disabled_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookEndpointQuery when eager-loading is set.
	Edges        WebhookEndpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookEndpointEdges holds the relations/edges for other nodes in the graph.
type WebhookEndpointEdges struct {
	// Deliveries holds the value of the deliveries edge.
	Deliveries []*WebhookDelivery `json:"deliveries,omitempty"`
	// DeadLetters holds the value of the dead_letters edge.
	DeadLetters []*DeadLetter `json:"dead_letters,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DeliveriesOrErr returns the Deliveries value or an error if the edge
// was not loaded in eager-loading.
func (e WebhookEndpointEdges) DeliveriesOrErr() ([]*WebhookDelivery, error) {
	if e.loadedTypes[0] {
		return e.Deliveries, nil
	}
	return nil, &NotLoadedError{edge: "deliveries"}
}

// DeadLettersOrErr returns the DeadLetters value or an error if the edge
// was not loaded in eager-loading.
func (e WebhookEndpointEdges) DeadLettersOrErr() ([]*DeadLetter, error) {
	if e.loadedTypes[1] {
		return e.DeadLetters, nil
	}
	return nil, &NotLoadedError{edge: "dead_letters"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookEndpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookendpoint.FieldEvents, webhookendpoint.FieldHeaders:
			values[i] = new([]byte)
		case webhookendpoint.FieldActive, webhookendpoint.FieldVerifySsl:
			values[i] = new(sql.NullBool)
		case webhookendpoint.FieldTimeoutS, webhookendpoint.FieldMaxAttempts:
			values[i] = new(sql.NullInt64)
		case webhookendpoint.FieldID, webhookendpoint.FieldTenantID, webhookendpoint.FieldURL, webhookendpoint.FieldSecret, webhookendpoint.FieldDisabledReason:
			values[i] = new(sql.NullString)
		case webhookendpoint.FieldDisabledAt, webhookendpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookEndpoint fields.
func (_m *WebhookEndpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookendpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookendpoint.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case webhookendpoint.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case webhookendpoint.FieldEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Events); err != nil {
					return fmt.Errorf("unmarshal field events: %w", err)
				}
			}
		case webhookendpoint.FieldSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret", values[i])
			} else if value.Valid {
				_m.Secret = value.String
			}
		case webhookendpoint.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case webhookendpoint.FieldTimeoutS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_s", values[i])
			} else if value.Valid {
				_m.TimeoutS = int(value.Int64)
			}
		case webhookendpoint.FieldVerifySsl:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verify_ssl", values[i])
			} else if value.Valid {
				_m.VerifySsl = value.Bool
			}
		case webhookendpoint.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case webhookendpoint.FieldHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Headers); err != nil {
					return fmt.Errorf("unmarshal field headers: %w", err)
				}
			}
		case webhookendpoint.FieldDisabledReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disabled_reason", values[i])
			} else if value.Valid {
				_m.DisabledReason = new(string)
				*_m.DisabledReason = value.String
			}
		case webhookendpoint.FieldDisabledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field disabled_at", values[i])
			} else if value.Valid {
				_m.DisabledAt = new(time.Time)
				*_m.DisabledAt = value.Time
			}
		case webhookendpoint.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookEndpoint.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookEndpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeliveries queries the "deliveries" edge of the WebhookEndpoint entity.
func (_m *WebhookEndpoint) QueryDeliveries() *WebhookDeliveryQuery {
	return NewWebhookEndpointClient(_m.config).QueryDeliveries(_m)
}

// QueryDeadLetters queries the "dead_letters" edge of the WebhookEndpoint entity.
func (_m *WebhookEndpoint) QueryDeadLetters() *DeadLetterQuery {
	return NewWebhookEndpointClient(_m.config).QueryDeadLetters(_m)
}

// Update returns a builder for updating this WebhookEndpoint.
// Note that you need to call WebhookEndpoint.Unwrap() before calling this method if this WebhookEndpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookEndpoint) Update() *WebhookEndpointUpdateOne {
	return NewWebhookEndpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookEndpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookEndpoint) Unwrap() *WebhookEndpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookEndpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookEndpoint) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookEndpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("events=")
	builder.WriteString(fmt.Sprintf("%v", _m.Events))
	builder.WriteString(", ")
	builder.WriteString("secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("timeout_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutS))
	builder.WriteString(", ")
	builder.WriteString("verify_ssl=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerifySsl))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Headers))
	builder.WriteString(", ")
	if v := _m.DisabledReason; v != nil {
		builder.WriteString("disabled_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DisabledAt; v != nil {
		builder.WriteString("disabled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookEndpoints is a parsable slice of WebhookEndpoint.
type WebhookEndpoints []*WebhookEndpoint
