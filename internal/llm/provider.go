// Package llm talks to hosted language models on behalf of card generation
// and knowledge-base queries. Every vendor is reached through Provider, and
// structured output is always validated against a JSON Schema before it is
// handed back.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single-turn or short multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the vendor for JSON output and the response is
	// validated against it. Without a schema Content carries the raw text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role of a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt is shorthand for a request with one user message.
func UserPrompt(system, content string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: content}},
	}
}

// Schema names a JSON Schema document. Name doubles as the cache key for
// the compiled schema and as the OpenAI response_format name, so it must be
// unique per shape.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the vendor's finish reason, normalized.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a completed generation.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Usage is the token count reported by the vendor.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
