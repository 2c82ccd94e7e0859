package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/invoiceflow/invoiceflow/ent/schema/mixin"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringSchedule holds the schema definition for the RecurringSchedule entity.
type RecurringSchedule struct {
	ent.Schema
}

// Mixin of the RecurringSchedule.
func (RecurringSchedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
		baseMixin.MetadataMixin{},
	}
}

// Fields of the RecurringSchedule.
func (RecurringSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("customer_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.String("description").
			SchemaType(map[string]string{
				"postgres": "varchar(255)",
			}).
			Optional(),
		field.String("interval_type").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty(),
		// custom_interval_days is set only for custom_days schedules
		field.Int("custom_interval_days").
			Default(0),
		// anchor_day is the day of month the cycle is pegged to for
		// monthly, quarterly and yearly schedules. It is preserved even
		// when a short month forces the billed date to clamp.
		field.Int("anchor_day").
			Default(0),
		field.Time("start_date").
			Immutable(),
		field.Time("end_date").
			Optional().
			Nillable(),
		field.Time("next_run_date"),
		field.Time("last_run_date").
			Optional().
			Nillable(),
		field.String("timezone").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Default("UTC"),
		field.String("schedule_status").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Default(string(types.ScheduleStatusActive)),
		field.Time("paused_at").
			Optional().
			Nillable(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
		field.String("cancellation_reason").
			SchemaType(map[string]string{
				"postgres": "text",
			}).
			Optional(),
		field.String("currency").
			SchemaType(map[string]string{
				"postgres": "varchar(10)",
			}).
			NotEmpty(),
		field.Other("base_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.JSON("line_items", []types.ScheduleLineItem{}).
			Optional().
			SchemaType(map[string]string{
				"postgres": "jsonb",
			}),
		field.Other("tax_rate", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(10,6)",
			}).
			Default(decimal.Zero),
		field.Bool("tax_inclusive").
			Default(false),
		field.Bool("proration_enabled").
			Default(false),
		field.String("invoice_notes").
			SchemaType(map[string]string{
				"postgres": "text",
			}).
			Optional(),
		field.Int("payment_terms_days").
			Default(30),
		field.Bool("auto_charge").
			Default(false),
		field.Bool("retry_enabled").
			Default(true),
		field.Int("max_retry_attempts").
			Default(3),
		field.Int("retry_interval_hours").
			Default(24),
		field.Float("retry_backoff_multiplier").
			Default(2),
		field.Bool("failure_notification_sent").
			Default(false),
		field.Int("total_invoices_generated").
			Default(0),
		field.Other("total_amount_billed", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
	}
}

// Edges of the RecurringSchedule.
func (RecurringSchedule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("schedules").
			Field("customer_id").
			Unique().
			Required().
			Immutable(),
		edge.To("executions", ScheduleExecution.Type),
		edge.To("audit_logs", AuditLog.Type),
	}
}

// Indexes of the RecurringSchedule.
func (RecurringSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "customer_id", "status").
			StorageKey("idx_schedule_tenant_customer"),
		index.Fields("tenant_id", "schedule_status", "next_run_date").
			StorageKey("idx_schedule_due"),
	}
}
