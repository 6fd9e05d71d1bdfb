// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/orchid-run/orchid/ent/cacherecord"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/schema"
	"github.com/orchid-run/orchid/ent/stepexecution"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cacherecordFields := schema.CacheRecord{}.Fields()
	_ = cacherecordFields
	// cacherecordDescSize is the schema descriptor for size field.
	cacherecordDescSize := cacherecordFields[2].Descriptor()
	// cacherecord.DefaultSize holds the default value on creation for the size field.
	cacherecord.DefaultSize = cacherecordDescSize.Default.(int64)
	// cacherecordDescAccessCount is the schema descriptor for access_count field.
	cacherecordDescAccessCount := cacherecordFields[3].Descriptor()
	// cacherecord.DefaultAccessCount holds the default value on creation for the access_count field.
	cacherecord.DefaultAccessCount = cacherecordDescAccessCount.Default.(int64)
	// cacherecordDescCreatedAt is the schema descriptor for created_at field.
	cacherecordDescCreatedAt := cacherecordFields[5].Descriptor()
	// cacherecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	cacherecord.DefaultCreatedAt = cacherecordDescCreatedAt.Default.(func() time.Time)
	// cacherecordDescAccessedAt is the schema descriptor for accessed_at field.
	cacherecordDescAccessedAt := cacherecordFields[6].Descriptor()
	// cacherecord.DefaultAccessedAt holds the default value on creation for the accessed_at field.
	cacherecord.DefaultAccessedAt = cacherecordDescAccessedAt.Default.(func() time.Time)
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterFields[5].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	routingdecisionFields := schema.RoutingDecision{}.Fields()
	_ = routingdecisionFields
	// routingdecisionDescFallback is the schema descriptor for fallback field.
	routingdecisionDescFallback := routingdecisionFields[5].Descriptor()
	// routingdecision.DefaultFallback holds the default value on creation for the fallback field.
	routingdecision.DefaultFallback = routingdecisionDescFallback.Default.(bool)
	// routingdecisionDescCreatedAt is the schema descriptor for created_at field.
	routingdecisionDescCreatedAt := routingdecisionFields[8].Descriptor()
	// routingdecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	routingdecision.DefaultCreatedAt = routingdecisionDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescTenantID is the schema descriptor for tenant_id field.
	runDescTenantID := runFields[1].Descriptor()
	// run.DefaultTenantID holds the default value on creation for the tenant_id field.
	run.DefaultTenantID = runDescTenantID.Default.(string)
	// runDescTemperature is the schema descriptor for temperature field.
	runDescTemperature := runFields[4].Descriptor()
	// run.DefaultTemperature holds the default value on creation for the temperature field.
	run.DefaultTemperature = runDescTemperature.Default.(float64)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[9].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescStepCount is the schema descriptor for step_count field.
	runDescStepCount := runFields[12].Descriptor()
	// run.DefaultStepCount holds the default value on creation for the step_count field.
	run.DefaultStepCount = runDescStepCount.Default.(int)
	// runDescTokenTotal is the schema descriptor for token_total field.
	runDescTokenTotal := runFields[13].Descriptor()
	// run.DefaultTokenTotal holds the default value on creation for the token_total field.
	run.DefaultTokenTotal = runDescTokenTotal.Default.(int)
	stepexecutionFields := schema.StepExecution{}.Fields()
	_ = stepexecutionFields
	// stepexecutionDescAttempt is the schema descriptor for attempt field.
	stepexecutionDescAttempt := stepexecutionFields[4].Descriptor()
	// stepexecution.DefaultAttempt holds the default value on creation for the attempt field.
	stepexecution.DefaultAttempt = stepexecutionDescAttempt.Default.(int)
	// stepexecutionDescTokensUsed is the schema descriptor for tokens_used field.
	stepexecutionDescTokensUsed := stepexecutionFields[7].Descriptor()
	// stepexecution.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	stepexecution.DefaultTokensUsed = stepexecutionDescTokensUsed.Default.(int)
	// stepexecutionDescFromCache is the schema descriptor for from_cache field.
	stepexecutionDescFromCache := stepexecutionFields[8].Descriptor()
	// stepexecution.DefaultFromCache holds the default value on creation for the from_cache field.
	stepexecution.DefaultFromCache = stepexecutionDescFromCache.Default.(bool)
	// stepexecutionDescCreatedAt is the schema descriptor for created_at field.
	stepexecutionDescCreatedAt := stepexecutionFields[11].Descriptor()
	// stepexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	stepexecution.DefaultCreatedAt = stepexecutionDescCreatedAt.Default.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttempts is the schema descriptor for attempts field.
	webhookdeliveryDescAttempts := webhookdeliveryFields[4].Descriptor()
	// webhookdelivery.DefaultAttempts holds the default value on creation for the attempts field.
	webhookdelivery.DefaultAttempts = webhookdeliveryDescAttempts.Default.(int)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[9].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
	webhookendpointFields := schema.WebhookEndpoint{}.Fields()
	_ = webhookendpointFields
	// webhookendpointDescTenantID is the schema descriptor for tenant_id field.
	webhookendpointDescTenantID := webhookendpointFields[1].Descriptor()
	// webhookendpoint.DefaultTenantID holds the default value on creation for the tenant_id field.
	webhookendpoint.DefaultTenantID = webhookendpointDescTenantID.Default.(string)
	// webhookendpointDescActive is the schema descriptor for active field.
	webhookendpointDescActive := webhookendpointFields[5].Descriptor()
	// webhookendpoint.DefaultActive holds the default value on creation for the active field.
	webhookendpoint.DefaultActive = webhookendpointDescActive.Default.(bool)
	// webhookendpointDescTimeoutS is the schema descriptor for timeout_s field.
	webhookendpointDescTimeoutS := webhookendpointFields[6].Descriptor()
	// webhookendpoint.DefaultTimeoutS holds the default value on creation for the timeout_s field.
	webhookendpoint.DefaultTimeoutS = webhookendpointDescTimeoutS.Default.(int)
	// webhookendpointDescVerifySsl is the schema descriptor for verify_ssl field.
	webhookendpointDescVerifySsl := webhookendpointFields[7].Descriptor()
	// webhookendpoint.DefaultVerifySsl holds the default value on creation for the verify_ssl field.
	webhookendpoint.DefaultVerifySsl = webhookendpointDescVerifySsl.Default.(bool)
	// webhookendpointDescMaxAttempts is the schema descriptor for max_attempts field.
	webhookendpointDescMaxAttempts := webhookendpointFields[8].Descriptor()
	// webhookendpoint.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	webhookendpoint.DefaultMaxAttempts = webhookendpointDescMaxAttempts.Default.(int)
	// webhookendpointDescCreatedAt is the schema descriptor for created_at field.
	webhookendpointDescCreatedAt := webhookendpointFields[12].Descriptor()
	// webhookendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookendpoint.DefaultCreatedAt = webhookendpointDescCreatedAt.Default.(func() time.Time)
}
