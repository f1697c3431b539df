package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/store"
)

// resetFlags restores every flag to its default; cobra keeps parsed values
// on the package-level command tree between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SMARTANKI_DB", "")
	t.Setenv("SMARTANKI_LLM_PROVIDER", "")
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	return &cli{t: t, db: filepath.Join(dir, "data", "smartanki.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", c.db))
	defer resetFlags(rootCmd)
	err := rootCmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("version"), "smartanki ")
}

func TestCardLifecycle(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("category", "add", "geo", "-d", "places"), `created category 1 "geo"`)
	assert.Contains(t, c.mustRun("card", "add", "Capital of Peru?", "Lima", "-c", "geo"), "created card 1")
	assert.Contains(t, c.mustRun("card", "add", "2+2", "4"), "created card 2")

	list := c.mustRun("card", "list", "-c", "geo")
	assert.Contains(t, list, "Capital of Peru?")
	assert.NotContains(t, list, "2+2")

	var due struct {
		CardIDs []int `json:"card_ids"`
		Count   int   `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("due", "--json")), &due))
	assert.Equal(t, 2, due.Count)

	out := c.mustRun("review", "1", "5")
	assert.Contains(t, out, "card 1 graded 5 (easy), recalled")
	assert.Contains(t, out, "interval  0 -> 1 days")
	assert.Contains(t, out, "ease      2.50 -> 2.60")

	require.NoError(t, json.Unmarshal([]byte(c.mustRun("due", "--json")), &due))
	assert.Equal(t, []int{2}, due.CardIDs)

	show := c.mustRun("card", "show", "1")
	assert.Contains(t, show, "Reviews:   1 (0 lapses)")
	assert.Contains(t, show, "(in 1 day)")

	assert.Contains(t, c.mustRun("card", "rm", "2"), "deleted card 2")
	assert.Contains(t, c.mustRun("due"), "Nothing due.")
}

func TestReviewRejectsBadQuality(t *testing.T) {
	c := newCLI(t)
	c.mustRun("card", "add", "q", "a")

	for _, q := range []string{"6", "-1", "3.5", "five"} {
		_, err := c.run("review", "1", q)
		assert.Error(t, err, "quality %s", q)
	}
	_, err := c.run("review", "99", "4")
	assert.Error(t, err)
}

func TestReviewPreview(t *testing.T) {
	c := newCLI(t)
	c.mustRun("card", "add", "q", "a")

	out := c.mustRun("review", "1")
	assert.Contains(t, out, "0 blackout")
	assert.Contains(t, out, "5 easy")
	assert.Contains(t, out, "2.60")
}

func TestDisabledCategoryNotDue(t *testing.T) {
	c := newCLI(t)
	c.mustRun("category", "add", "history")
	c.mustRun("card", "add", "1066?", "Hastings", "-c", "history")

	assert.Contains(t, c.mustRun("category", "disable", "history"), `disabled category "history"`)
	assert.Contains(t, c.mustRun("due"), "Nothing due.")

	c.mustRun("category", "enable", "1")
	assert.NotContains(t, c.mustRun("due"), "Nothing due.")
}

func TestGenerateWithoutProvider(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("ask", "what is the capital of Peru?")
	assert.ErrorIs(t, err, errNoProvider)
}

func TestDueRejectsNegativeLimit(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("due", "-n", "-1")
	assert.Error(t, err)
}

func TestLLMCommandsOnEmptyDatabase(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("llm", "list"), "No LLM calls recorded.")
	assert.Contains(t, c.mustRun("llm", "stats"), "No LLM usage recorded yet.")

	_, err := c.run("llm", "view", "7")
	assert.EqualError(t, err, "llm call 7 not found")
	_, err = c.run("llm", "view", "abc")
	assert.Error(t, err)
}

func TestFilterPurpose(t *testing.T) {
	mk := func(id int, purpose string) store.LLMEventRecord {
		return store.LLMEventRecord{ID: id, LLMRequestEventData: store.LLMRequestEventData{Purpose: purpose}}
	}
	evs := []store.LLMEventRecord{mk(5, "query"), mk(4, "card-gen"), mk(3, "query"), mk(2, "query")}

	got := filterPurpose(append([]store.LLMEventRecord(nil), evs...), "query", 2)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Len(t, filterPurpose(evs, "", 1), 4)
}

func TestEstimateCosts(t *testing.T) {
	rows := estimateCosts([]store.LLMModelUsage{
		{Model: "gpt-4o-mini", Calls: 2, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Model: "some-local-model", Calls: 1, InputTokens: 10, OutputTokens: 10},
	})
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Known)
	assert.InDelta(t, 0.75, rows[0].USD, 1e-9)
	assert.False(t, rows[1].Known)

	var out bytes.Buffer
	printModelCost(&out, rows)
	assert.Contains(t, out.String(), "total (partial)")
	assert.Contains(t, out.String(), "No pricing for: some-local-model")
}
