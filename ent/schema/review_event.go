package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one graded review and the state transition it caused.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{AppendOnly{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("card_id"),
		field.Int("quality").
			Range(0, 5).
			Comment("Recall quality 0-5"),
		field.Float("ease_before"),
		field.Float("ease_after"),
		field.Int("interval_before"),
		field.Int("interval_after"),
		field.Time("next_review").
			Comment("Scheduled date after this review"),
		field.String("session_id").
			Optional().
			Comment("Study session that produced the review, if any"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("session_id"),
	}
}
