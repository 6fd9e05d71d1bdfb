// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
)

// RoutingDecision is the model entity for the RoutingDecision schema.
type RoutingDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID int `json:"step_id,omitempty"`
	// SelectedRole holds the value of the "selected_role" field.
	SelectedRole string `json:"selected_role,omitempty"`
	// QueryType holds the value of the "query_type" field.
	QueryType string `json:"query_type,omitempty"`
	// Raw weighted score per candidate role
	Scores map[string]float64 `json:"scores,omitempty"`
	// NormalizedScores holds the value of the "normalized_scores" field.
	NormalizedScores map[string]float64 `json:"normalized_scores,omitempty"`
	// True when the coordinator absorbed an unroutable step
	Fallback bool `json:"fallback,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// RoutingTimeUs holds the value of the "routing_time_us" field.
	RoutingTimeUs int64 `json:"routing_time_us,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoutingDecisionQuery when eager-loading is set.
	Edges                 RoutingDecisionEdges `json:"edges"`
	run_routing_decisions *string
	selectValues          sql.SelectValues
}

// RoutingDecisionEdges holds the relations/edges for other nodes in the graph.
type RoutingDecisionEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoutingDecisionEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutingDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routingdecision.FieldScores, routingdecision.FieldNormalizedScores:
			values[i] = new([]byte)
		case routingdecision.FieldFallback:
			values[i] = new(sql.NullBool)
		case routingdecision.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case routingdecision.FieldID, routingdecision.FieldStepID, routingdecision.FieldRoutingTimeUs:
			values[i] = new(sql.NullInt64)
		case routingdecision.FieldSelectedRole, routingdecision.FieldQueryType:
			values[i] = new(sql.NullString)
		case routingdecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case routingdecision.ForeignKeys[0]: // run_routing_decisions
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutingDecision fields.
func (_m *RoutingDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routingdecision.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case routingdecision.FieldStepID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = int(value.Int64)
			}
		case routingdecision.FieldSelectedRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_role", values[i])
			} else if value.Valid {
				_m.SelectedRole = value.String
			}
		case routingdecision.FieldQueryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_type", values[i])
			} else if value.Valid {
				_m.QueryType = value.String
			}
		case routingdecision.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case routingdecision.FieldNormalizedScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NormalizedScores); err != nil {
					return fmt.Errorf("unmarshal field normalized_scores: %w", err)
				}
			}
		case routingdecision.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		case routingdecision.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case routingdecision.FieldRoutingTimeUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field routing_time_us", values[i])
			} else if value.Valid {
				_m.RoutingTimeUs = value.Int64
			}
		case routingdecision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case routingdecision.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_routing_decisions", values[i])
			} else if value.Valid {
				_m.run_routing_decisions = new(string)
				*_m.run_routing_decisions = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoutingDecision.
// This includes values selected through modifiers, order, etc.
func (_m *RoutingDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RoutingDecision entity.
func (_m *RoutingDecision) QueryRun() *RunQuery {
	return NewRoutingDecisionClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RoutingDecision.
// Note that you need to call RoutingDecision.Unwrap() before calling this method if this RoutingDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutingDecision) Update() *RoutingDecisionUpdateOne {
	return NewRoutingDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutingDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutingDecision) Unwrap() *RoutingDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutingDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutingDecision) String() string {
	var builder strings.Builder
	builder.WriteString("RoutingDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepID))
	builder.WriteString(", ")
	builder.WriteString("selected_role=")
	builder.WriteString(_m.SelectedRole)
	builder.WriteString(", ")
	builder.WriteString("query_type=")
	builder.WriteString(_m.QueryType)
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("normalized_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.NormalizedScores))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("routing_time_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutingTimeUs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoutingDecisions is a parsable slice of RoutingDecision.
type RoutingDecisions []*RoutingDecision
