// Package server exposes the study assistant over HTTP: a single query
// endpoint plus health, info and a small landing page.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studybuddy_backend/internal/agent"
	"studybuddy_backend/internal/config"
)

const apiVersion = "1.0.0"

// Responder answers student queries. Satisfied by *agent.Agent.
type Responder interface {
	Respond(ctx context.Context, sessionID, query string) (agent.Reply, error)
	Name() string
	Description() string
	Tools() []string
}

// Server is the HTTP front of the assistant.
type Server struct {
	engine *gin.Engine
	agent  Responder
	cfg    *config.Config
	log    *zap.Logger

	// indexFile is served at / when present; otherwise a built-in
	// landing page is used.
	indexFile string
}

// New assembles the gin engine with middleware and routes.
func New(cfg *config.Config, responder Responder, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Server.Mode != "" {
		gin.SetMode(ginMode(cfg.Server.Mode))
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(log))
	engine.Use(corsMiddleware(cfg.CORS))
	engine.Use(RateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	s := &Server{
		engine:    engine,
		agent:     responder,
		cfg:       cfg,
		log:       log,
		indexFile: "web/index.html",
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleLanding)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/info", s.handleInfo)
	s.engine.POST("/query", s.handleQuery)
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(c)
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
