package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// AppendOnly gives an event table its position in the store-wide sequence
// and a UTC timestamp. Rows are never updated.
type AppendOnly struct {
	mixin.Schema
}

func (AppendOnly) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Positive(),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
	}
}

func (AppendOnly) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
