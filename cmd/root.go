package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/config"
	"github.com/smartanki/smartanki/internal/logger"
	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "smartanki",
	Short: "Spaced-repetition flashcards with AI card generation",
	Long: "smartanki schedules flashcards with the SM-2 algorithm, serves them over a JSON API\n" +
		"or a terminal study screen, and can turn notes into cards with an LLM.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite path or postgres:// DSN (overrides SMARTANKI_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to a smartanki.yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles what most commands need: settings, an open store and a
// logger.
type env struct {
	cfg   config.Config
	store *store.Store
	log   *logger.Logger
}

// openEnv loads configuration and opens the store. Interactive commands
// pass quiet so log lines do not end up on the terminal they draw on.
func openEnv(cmd *cobra.Command, quiet bool) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := logger.Nop()
	if !quiet {
		if log, err = logger.New(cfg.Log.Mode); err != nil {
			return nil, err
		}
	}

	dsn, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &env{cfg: cfg, store: st, log: log}, nil
}

func (e *env) Close() {
	e.store.Close()
	e.log.Sync()
}

// reviewService builds a review service. A nil locker means in-process
// locking.
func (e *env) reviewService(locker store.Locker) *review.Service {
	rc := review.DefaultConfig()
	rc.DefaultLimit = e.cfg.Review.DefaultLimit
	rc.MaxLimit = e.cfg.Review.MaxLimit
	return review.NewService(review.Deps{
		Cards:   e.store.CardRepo(),
		Reviews: e.store.ReviewRepo(),
		Events:  e.store.EventRepo(),
		Locker:  locker,
		Log:     e.log,
	}, rc)
}

// resolveDBPath picks the database: --db flag, then the db config key
// (which SMARTANKI_DB also sets), then the default XDG location.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// resolveCategory accepts a category id or name. An empty ref means no
// category.
func resolveCategory(cmd *cobra.Command, repo store.CategoryRepo, ref string) (*store.Category, error) {
	if ref == "" {
		return nil, nil
	}
	ctx := cmd.Context()
	var (
		cat *store.Category
		err error
	)
	if id, convErr := strconv.Atoi(ref); convErr == nil {
		cat, err = repo.Get(ctx, id)
	} else {
		cat, err = repo.FindByName(ctx, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", ref, err)
	}
	return cat, nil
}

func categoryIDOf(c *store.Category) *int {
	if c == nil {
		return nil
	}
	return &c.ID
}

// parseID parses a positive integer id argument.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}
