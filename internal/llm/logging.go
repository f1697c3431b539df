package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/smartanki/smartanki/internal/logger"
	"github.com/smartanki/smartanki/internal/store"
)

// LoggingProvider persists one LLMRequestEvent per call and logs it.
// Persistence failures are logged and never fail the call.
type LoggingProvider struct {
	inner  Provider
	vendor string
	events store.EventRepo
	log    *logger.Logger
	now    func() time.Time
}

// WithLogging wraps p. events and log may be nil.
func WithLogging(p Provider, vendor string, events store.EventRepo, log *logger.Logger) *LoggingProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{
		inner:  p,
		vendor: vendor,
		events: events,
		log:    log.With("component", "llm", "provider", vendor),
		now:    time.Now,
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := l.now().Sub(start)

	ev := store.LLMRequestEventData{
		Provider:    l.vendor,
		Model:       l.inner.ModelID(),
		Purpose:     string(PurposeFrom(ctx)),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	fields := []any{"purpose", ev.Purpose, "model", ev.Model, "latency_ms", ev.LatencyMs}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.log.Warn("llm request failed", append(fields, "error", err)...)
	} else {
		fields = append(fields, "input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens)
		if c := LookupCost(ev.Model); c != nil {
			fields = append(fields, "cost_usd", c.Cost(ev.InputTokens, ev.OutputTokens))
		}
		l.log.Debug("llm request", fields...)
	}

	if l.events != nil {
		if perr := l.events.AppendLLMRequest(ctx, ev); perr != nil {
			l.log.Warn("record llm request", "error", perr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// transcript renders a request the way `smartanki llm view` prints it.
func transcript(req Request) string {
	var b strings.Builder
	section := func(label, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", label, body)
	}
	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
