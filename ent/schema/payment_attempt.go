package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/invoiceflow/invoiceflow/ent/schema/mixin"
)

// PaymentAttempt holds the schema definition for the PaymentAttempt entity.
type PaymentAttempt struct {
	ent.Schema
}

// Mixin of the PaymentAttempt.
func (PaymentAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the PaymentAttempt.
func (PaymentAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("payment_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.Int("attempt_number").
			Immutable(),
		field.String("attempt_status").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty(),
		field.String("gateway_attempt_id").
			SchemaType(map[string]string{
				"postgres": "varchar(255)",
			}).
			Optional().
			Nillable(),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.String("error_message").
			SchemaType(map[string]string{
				"postgres": "text",
			}).
			Optional().
			Nillable(),
	}
}

// Edges of the PaymentAttempt.
func (PaymentAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("payment", Payment.Type).
			Ref("attempts").
			Field("payment_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PaymentAttempt.
func (PaymentAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "payment_id", "attempt_number").
			Unique().
			StorageKey("idx_attempt_number_unique"),
	}
}
