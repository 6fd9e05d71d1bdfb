// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
)

// StepExecution is the model entity for the StepExecution schema.
type StepExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position within the run's plan, 1-based
	StepID int `json:"step_id,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Role selected by the router
	Role string `json:"role,omitempty"`
	// Status holds the value of the "status" field.
	Status stepexecution.Status `json:"status,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// Output holds the value of the "output" field.
	Output *string `json:"output,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// FromCache holds the value of the "from_cache" field.
	FromCache bool `json:"from_cache,omitempty"`
	// Cache key: hash(role, fragment, context digest, seed)
	StepSignature string `json:"step_signature,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepExecutionQuery when eager-loading is set.
	Edges        StepExecutionEdges `json:"edges"`
	run_steps    *string
	selectValues sql.SelectValues
}

// StepExecutionEdges holds the relations/edges for other nodes in the graph.
type StepExecutionEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepExecutionEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepexecution.FieldFromCache:
			values[i] = new(sql.NullBool)
		case stepexecution.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case stepexecution.FieldID, stepexecution.FieldStepID, stepexecution.FieldAttempt, stepexecution.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case stepexecution.FieldQuestion, stepexecution.FieldRole, stepexecution.FieldStatus, stepexecution.FieldOutput, stepexecution.FieldStepSignature, stepexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case stepexecution.FieldCreatedAt, stepexecution.FieldStartedAt, stepexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case stepexecution.ForeignKeys[0]: // run_steps
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepExecution fields.
func (_m *StepExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepexecution.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepexecution.FieldStepID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = int(value.Int64)
			}
		case stepexecution.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case stepexecution.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case stepexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stepexecution.Status(value.String)
			}
		case stepexecution.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case stepexecution.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = new(string)
				*_m.Output = value.String
			}
		case stepexecution.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case stepexecution.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case stepexecution.FieldFromCache:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_cache", values[i])
			} else if value.Valid {
				_m.FromCache = value.Bool
			}
		case stepexecution.FieldStepSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_signature", values[i])
			} else if value.Valid {
				_m.StepSignature = value.String
			}
		case stepexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case stepexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stepexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case stepexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case stepexecution.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_steps", values[i])
			} else if value.Valid {
				_m.run_steps = new(string)
				*_m.run_steps = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepExecution.
// This includes values selected through modifiers, order, etc.
func (_m *StepExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StepExecution entity.
func (_m *StepExecution) QueryRun() *RunQuery {
	return NewStepExecutionClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this StepExecution.
// Note that you need to call StepExecution.Unwrap() before calling this method if this StepExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepExecution) Update() *StepExecutionUpdateOne {
	return NewStepExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepExecution) Unwrap() *StepExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepExecution) String() string {
	var builder strings.Builder
	builder.WriteString("StepExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepID))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	if v := _m.Output; v != nil {
		builder.WriteString("output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("from_cache=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromCache))
	builder.WriteString(", ")
	builder.WriteString("step_signature=")
	builder.WriteString(_m.StepSignature)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StepExecutions is a parsable slice of StepExecution.
type StepExecutions []*StepExecution
