package mixin

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// MetadataMixin adds a free-form jsonb metadata column.
type MetadataMixin struct {
	mixin.Schema
}

func (MetadataMixin) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("metadata", map[string]string{}).
			SchemaType(map[string]string{
				"postgres": "jsonb",
			}).
			Default(map[string]string{}),
	}
}
