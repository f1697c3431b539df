package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category groups cards. Disabled categories are skipped when selecting
// due cards.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.Text("description").Default(""),
		field.Bool("is_enabled").Default(true),
		field.Int("parent_id").Optional().Nillable(),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cards", Card.Type),
		edge.To("children", Category.Type).
			From("parent").
			Field("parent_id").
			Unique(),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
