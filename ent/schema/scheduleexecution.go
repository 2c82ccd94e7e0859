package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/invoiceflow/invoiceflow/ent/schema/mixin"
	"github.com/shopspring/decimal"
)

// ScheduleExecution holds the schema definition for the ScheduleExecution entity.
// One row per schedule per billing period; the unique index is the
// idempotency guarantee that a period is billed at most once.
type ScheduleExecution struct {
	ent.Schema
}

// Mixin of the ScheduleExecution.
func (ScheduleExecution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the ScheduleExecution.
func (ScheduleExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("schedule_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.Time("period_date").
			Immutable(),
		field.Time("period_start"),
		field.Time("period_end"),
		field.String("execution_status").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty(),
		field.String("invoice_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional().
			Nillable(),
		field.Other("amount_generated", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.Other("prorated_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.String("error_message").
			SchemaType(map[string]string{
				"postgres": "text",
			}).
			Optional(),
	}
}

// Edges of the ScheduleExecution.
func (ScheduleExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("schedule", RecurringSchedule.Type).
			Ref("executions").
			Field("schedule_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScheduleExecution.
func (ScheduleExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "schedule_id", "period_date").
			Unique().
			StorageKey("idx_execution_period_unique"),
		index.Fields("tenant_id", "execution_status", "status").
			StorageKey("idx_execution_status"),
	}
}
