package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/api"
	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			e.cfg.Server.Addr = addr
		}
		e.log.Info("database ready", "dialect", e.store.Dialect())

		locker, closeLocker, err := newLocker(ctx, e)
		if err != nil {
			return err
		}
		defer closeLocker()

		var gen *cardgen.Service
		provider, err := llm.NewProviderFromEnv(ctx, e.store.EventRepo(), e.log)
		switch {
		case err != nil:
			e.log.Warn("LLM provider misconfigured, AI endpoints disabled", "error", err)
		case provider == nil:
			e.log.Info("no LLM provider configured, AI endpoints disabled")
		default:
			e.log.Info("LLM provider ready", "model", provider.ModelID())
			gen = cardgen.NewService(provider, cardgen.DefaultConfig(), e.log)
		}

		srv := api.NewServer(api.Deps{
			Review:     e.reviewService(locker),
			Cards:      e.store.CardRepo(),
			Categories: e.store.CategoryRepo(),
			CardGen:    gen,
			Log:        e.log,
		}, api.Config{
			Addr:        e.cfg.Server.Addr,
			CORSOrigins: e.cfg.Server.CORSOrigins,
			Production:  e.cfg.Log.Mode == "production" || e.cfg.Log.Mode == "prod",
		})
		return srv.Run(ctx)
	},
}

// newLocker returns the Redis locker when redis.addr is configured, so
// several API processes can share one database. Otherwise reviews are
// serialized in-process.
func newLocker(ctx context.Context, e *env) (store.Locker, func(), error) {
	rc := e.cfg.Redis
	if rc.Addr == "" {
		return store.NewLocalLocker(), func() {}, nil
	}
	rdb, err := store.DialRedis(ctx, rc.Addr, rc.Password, rc.DB)
	if err != nil {
		return nil, nil, err
	}
	e.log.Info("using redis card locks", "addr", rc.Addr)
	return store.NewRedisLocker(rdb, rc.LockTTL), func() { _ = rdb.Close() }, nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
