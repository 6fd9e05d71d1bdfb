// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CacheRecordsColumns holds the columns for the "cache_records" table.
	CacheRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeBytes},
		{Name: "size", Type: field.TypeInt64, Default: 0},
		{Name: "access_count", Type: field.TypeInt64, Default: 0},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "accessed_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// CacheRecordsTable holds the schema information for the "cache_records" table.
	CacheRecordsTable = &schema.Table{
		Name:       "cache_records",
		Columns:    CacheRecordsColumns,
		PrimaryKey: []*schema.Column{CacheRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacherecord_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CacheRecordsColumns[8]},
			},
		},
	}
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "webhook_id", Type: field.TypeString},
		{Name: "delivery_id", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "final_error", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "webhook_endpoint_dead_letters", Type: field.TypeString, Nullable: true},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dead_letters_webhook_endpoints_dead_letters",
				Columns:    []*schema.Column{DeadLettersColumns[7]},
				RefColumns: []*schema.Column{WebhookEndpointsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_webhook_id",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[1]},
			},
			{
				Name:    "deadletter_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[6]},
			},
		},
	}
	// RoutingDecisionsColumns holds the columns for the "routing_decisions" table.
	RoutingDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_id", Type: field.TypeInt},
		{Name: "selected_role", Type: field.TypeString},
		{Name: "query_type", Type: field.TypeString, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "normalized_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "routing_time_us", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_routing_decisions", Type: field.TypeString},
	}
	// RoutingDecisionsTable holds the schema information for the "routing_decisions" table.
	RoutingDecisionsTable = &schema.Table{
		Name:       "routing_decisions",
		Columns:    RoutingDecisionsColumns,
		PrimaryKey: []*schema.Column{RoutingDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routing_decisions_runs_routing_decisions",
				Columns:    []*schema.Column{RoutingDecisionsColumns[10]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString, Default: "default"},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "seed", Type: field.TypeInt64},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "planning", "executing", "completed", "failed", "terminated"}, Default: "pending"},
		{Name: "termination_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "token_total", Type: field.TypeInt, Default: 0},
		{Name: "config_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "artifacts_path", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6]},
			},
			{
				Name:    "run_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6], RunsColumns[9]},
			},
			{
				Name:    "run_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6], RunsColumns[17]},
			},
		},
	}
	// StepExecutionsColumns holds the columns for the "step_executions" table.
	StepExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_id", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "from_cache", Type: field.TypeBool, Default: false},
		{Name: "step_signature", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_steps", Type: field.TypeString},
	}
	// StepExecutionsTable holds the schema information for the "step_executions" table.
	StepExecutionsTable = &schema.Table{
		Name:       "step_executions",
		Columns:    StepExecutionsColumns,
		PrimaryKey: []*schema.Column{StepExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_executions_runs_steps",
				Columns:    []*schema.Column{StepExecutionsColumns[15]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepexecution_status",
				Unique:  false,
				Columns: []*schema.Column{StepExecutionsColumns[4]},
			},
			{
				Name:    "stepexecution_step_id_run_steps",
				Unique:  false,
				Columns: []*schema.Column{StepExecutionsColumns[1], StepExecutionsColumns[15]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivering", "delivered", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_status_code", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "webhook_endpoint_deliveries", Type: field.TypeString},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_deliveries_webhook_endpoints_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[10]},
				RefColumns: []*schema.Column{WebhookEndpointsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_status",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[3]},
			},
			{
				Name:    "webhookdelivery_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[3], WebhookDeliveriesColumns[7]},
			},
			{
				Name:    "webhookdelivery_created_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[9]},
			},
		},
	}
	// WebhookEndpointsColumns holds the columns for the "webhook_endpoints" table.
	WebhookEndpointsColumns = []*schema.Column{
		{Name: "webhook_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString, Default: "default"},
		{Name: "url", Type: field.TypeString},
		{Name: "events", Type: field.TypeJSON},
		{Name: "secret", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "timeout_s", Type: field.TypeInt, Default: 30},
		{Name: "verify_ssl", Type: field.TypeBool, Default: true},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "disabled_reason", Type: field.TypeString, Nullable: true},
		{Name: "disabled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhookEndpointsTable holds the schema information for the "webhook_endpoints" table.
	WebhookEndpointsTable = &schema.Table{
		Name:       "webhook_endpoints",
		Columns:    WebhookEndpointsColumns,
		PrimaryKey: []*schema.Column{WebhookEndpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookendpoint_active",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[5]},
			},
			{
				Name:    "webhookendpoint_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CacheRecordsTable,
		DeadLettersTable,
		RoutingDecisionsTable,
		RunsTable,
		StepExecutionsTable,
		WebhookDeliveriesTable,
		WebhookEndpointsTable,
	}
)

func init() {
	DeadLettersTable.ForeignKeys[0].RefTable = WebhookEndpointsTable
	RoutingDecisionsTable.ForeignKeys[0].RefTable = RunsTable
	StepExecutionsTable.ForeignKeys[0].RefTable = RunsTable
	WebhookDeliveriesTable.ForeignKeys[0].RefTable = WebhookEndpointsTable
}
