package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/logger"
	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/store"
)

// Config configures the HTTP server.
type Config struct {
	Addr        string
	CORSOrigins []string
	Production  bool
}

// Deps are the services the handlers call. CardGen may be nil, in which
// case the content endpoints answer 503.
type Deps struct {
	Review     *review.Service
	Cards      store.CardRepo
	Categories store.CategoryRepo
	CardGen    *cardgen.Service
	Log        *logger.Logger
}

// Server is the JSON API.
type Server struct {
	engine     *gin.Engine
	cfg        Config
	review     *review.Service
	cards      store.CardRepo
	categories store.CategoryRepo
	cardgen    *cardgen.Service
	log        *logger.Logger
}

// NewServer builds the router.
func NewServer(d Deps, cfg Config) *Server {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		engine:     gin.New(),
		cfg:        cfg,
		review:     d.Review,
		cards:      d.Cards,
		categories: d.Categories,
		cardgen:    d.CardGen,
		log:        log.With("component", "api"),
	}

	s.engine.Use(gin.Recovery(), RequestID(), RequestLogger(s.log))
	if len(cfg.CORSOrigins) > 0 {
		s.engine.Use(CORS(cfg.CORSOrigins))
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/categories", s.listCategories)
		v1.POST("/categories", s.createCategory)
		v1.PATCH("/categories/:id", s.updateCategory)

		v1.GET("/cards", s.listCards)
		v1.POST("/cards", s.createCard)
		v1.GET("/cards/:id", s.getCard)
		v1.DELETE("/cards/:id", s.deleteCard)
		v1.GET("/cards/:id/reviews", s.listReviews)
		v1.POST("/cards/:id/reviews", s.submitReview)
		v1.GET("/cards/:id/preview", s.previewCard)

		v1.GET("/reviews/due", s.dueCards)
		v1.GET("/stats", s.stats)

		v1.POST("/content/process", s.processContent)
		v1.POST("/content/query", s.queryContent)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	RespondOK(c, gin.H{"status": "healthy"})
}
