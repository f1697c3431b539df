package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a single flashcard together with its scheduling state.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.Int("category_id").
			Optional().
			Nillable().
			Comment("Owning category; nil for uncategorised cards"),
		field.Enum("card_type").
			Values("type_in", "reverse", "cloze").
			Default("type_in"),
		field.Text("front").
			NotEmpty().
			Comment("Prompt side"),
		field.Text("back").
			Default("").
			Comment("Answer side"),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Card-type specific extras, e.g. cloze hints"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Ease multiplier, never below 1.3"),
		field.Int("interval").
			Default(0).
			NonNegative().
			Comment("Days until next review; 0 before the first review"),
		field.Time("next_review").
			Optional().
			Nillable().
			Comment("Nil until the card is first scheduled"),
		field.Int("review_count").
			Default(0).
			NonNegative(),
		field.Int("lapse_count").
			Default(0).
			NonNegative().
			Comment("Reviews rated below the passing quality"),
	}
}

func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("cards").
			Field("category_id").
			Unique(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
		index.Fields("category_id"),
	}
}
