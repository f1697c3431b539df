package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one call to a language model, kept for the usage and
// cost reports and for `smartanki llm view`.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{AppendOnly{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty(),
		field.String("model").
			Comment("Model that served the call, as reported by the vendor"),
		field.String("purpose").
			Default("unknown"),
		field.Int("input_tokens").
			NonNegative().
			Default(0),
		field.Int("output_tokens").
			NonNegative().
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default("").
			Comment("Prompt transcript: system, turns, schema"),
		field.Text("response_body").
			Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose", "model"),
		index.Fields("success"),
	}
}
