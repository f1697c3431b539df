package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM calls, token usage and cost",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		// The purpose filter runs before the limit, so fetch everything
		// when filtering.
		opts := store.QueryOpts{Limit: limit}
		if purpose != "" {
			opts.Limit = 0
		}
		evs, err := e.store.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query llm events: %w", err)
		}
		evs = filterPurpose(evs, purpose, limit)

		out := cmd.OutOrStdout()
		if len(evs) == 0 {
			fmt.Fprintln(out, "No LLM calls recorded.")
			return nil
		}
		printCallTable(out, evs)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "llm call")
		if err != nil {
			return err
		}

		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ev, err := e.store.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get llm call %d: %w", id, err)
		}
		if ev == nil {
			return fmt.Errorf("llm call %d not found", id)
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(ev)
		}
		printCall(out, ev)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		events := e.store.EventRepo()
		byPurpose, err := events.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("usage by purpose: %w", err)
		}
		byModel, err := events.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("usage by model: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		printPurposeUsage(out, byPurpose)
		if len(byModel) > 0 {
			fmt.Fprintln(out)
			printModelCost(out, estimateCosts(byModel))
		}
		return nil
	},
}

func filterPurpose(evs []store.LLMEventRecord, purpose string, limit int) []store.LLMEventRecord {
	if purpose == "" {
		return evs
	}
	kept := evs[:0]
	for _, ev := range evs {
		if ev.Purpose != purpose {
			continue
		}
		kept = append(kept, ev)
		if limit > 0 && len(kept) == limit {
			break
		}
	}
	return kept
}

func printCallTable(out io.Writer, evs []store.LLMEventRecord) {
	fmt.Fprintf(out, "%-5s  %-19s  %-13s  %-28s  %7s  %7s  %7s  %s\n",
		"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
	rule(out, 100)
	for _, ev := range evs {
		ok := "yes"
		if !ev.Success {
			ok = "no"
		}
		fmt.Fprintf(out, "%-5d  %-19s  %-13s  %-28s  %7d  %7d  %7d  %s\n",
			ev.ID, ev.Timestamp.Local().Format(timeLayout), ev.Purpose,
			truncate(ev.Model, 28), ev.InputTokens, ev.OutputTokens, ev.LatencyMs, ok)
	}
}

func printCall(out io.Writer, ev *store.LLMEventRecord) {
	fields := []struct{ k, v string }{
		{"ID", fmt.Sprint(ev.ID)},
		{"Time", ev.Timestamp.Local().Format(timeLayout)},
		{"Provider", ev.Provider},
		{"Model", ev.Model},
		{"Purpose", ev.Purpose},
		{"Tokens", fmt.Sprintf("%d in / %d out", ev.InputTokens, ev.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", ev.LatencyMs)},
		{"Success", fmt.Sprint(ev.Success)},
	}
	if ev.ErrorMessage != "" {
		fields = append(fields, struct{ k, v string }{"Error", ev.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-10s %s\n", f.k+":", f.v)
	}
	section(out, "PROMPT", ev.RequestBody)
	section(out, "REPLY", ev.ResponseBody)
}

func section(out io.Writer, title, body string) {
	fmt.Fprintln(out)
	rule(out, 60)
	fmt.Fprintln(out, title)
	rule(out, 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(out, body)
}

func printPurposeUsage(out io.Writer, usage []store.LLMPurposeUsage) {
	fmt.Fprintln(out, "Usage by purpose")
	rule(out, 72)
	fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	rule(out, 72)
	var sum store.LLMPurposeUsage
	for _, u := range usage {
		fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		sum.Calls += u.Calls
		sum.InputTokens += u.InputTokens
		sum.OutputTokens += u.OutputTokens
	}
	rule(out, 72)
	fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d\n",
		"total", sum.Calls, sum.InputTokens, sum.OutputTokens, sum.InputTokens+sum.OutputTokens)
}

// modelCost is one priced row. Known is false when the model has no
// pricing entry.
type modelCost struct {
	store.LLMModelUsage
	USD   float64
	Known bool
}

func estimateCosts(usage []store.LLMModelUsage) []modelCost {
	rows := make([]modelCost, 0, len(usage))
	for _, u := range usage {
		row := modelCost{LLMModelUsage: u}
		if price := llm.LookupCost(u.Model); price != nil {
			row.USD = price.Cost(u.InputTokens, u.OutputTokens)
			row.Known = true
		}
		rows = append(rows, row)
	}
	return rows
}

func printModelCost(out io.Writer, rows []modelCost) {
	fmt.Fprintln(out, "Estimated cost (USD)")
	rule(out, 72)
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %9s\n", "Model", "Calls", "Input", "Output", "Cost")
	rule(out, 72)

	var (
		total   float64
		unknown []string
	)
	for _, r := range rows {
		cost := "?"
		if r.Known {
			cost = formatCost(r.USD)
			total += r.USD
		} else {
			unknown = append(unknown, r.Model)
		}
		fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %9s\n",
			truncate(r.Model, 32), r.Calls, r.InputTokens, r.OutputTokens, cost)
	}
	rule(out, 72)
	label := "total"
	if len(unknown) > 0 {
		label = "total (partial)"
	}
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(total))
	if len(unknown) > 0 {
		fmt.Fprintf(out, "\nNo pricing for: %s\n", strings.Join(unknown, ", "))
	}
}

func rule(out io.Writer, width int) {
	fmt.Fprintln(out, strings.Repeat("─", width))
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls for this purpose (card-gen, question-gen, query)")
	llmViewCmd.Flags().Bool("json", false, "Print as JSON")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
