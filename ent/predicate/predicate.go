// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CacheRecord is the predicate function for cacherecord builders.
type CacheRecord func(*sql.Selector)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// RoutingDecision is the predicate function for routingdecision builders.
type RoutingDecision func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// StepExecution is the predicate function for stepexecution builders.
type StepExecution func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)

// WebhookEndpoint is the predicate function for webhookendpoint builders.
type WebhookEndpoint func(*sql.Selector)
