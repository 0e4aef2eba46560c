// Package api exposes the care plan rule engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/careplan-rule-engine/internal/domain"
	"github.com/careplan-rule-engine/internal/enrichment"
	"github.com/careplan-rule-engine/internal/service"
)

// Server represents the HTTP server.
type Server struct {
	cfg      *domain.Config
	logger   *logrus.Logger
	engine   *service.CarePlanEngine
	enricher enrichment.Enricher
	metrics  *Metrics
	registry *prometheus.Registry
	router   *gin.Engine
	server   *http.Server
}

// NewServer creates a new HTTP server instance.
func NewServer(cfg *domain.Config, logger *logrus.Logger, engine *service.CarePlanEngine, enricher enrichment.Enricher) *Server {
	if strings.EqualFold(cfg.Logging.Level, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if enricher == nil {
		enricher = enrichment.Noop{}
	}

	registry := prometheus.NewRegistry()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))
	router.Use(corsMiddleware())
	router.Use(rateLimitMiddleware(rate.NewLimiter(
		rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)))

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		enricher: enricher,
		metrics:  NewMetrics(registry),
		registry: registry,
		router:   router,
	}

	s.setupRoutes()

	return s
}

// Start starts the HTTP server and blocks until the context is cancelled,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Router returns the underlying gin router, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/care-plan", s.handleGenerateCarePlan)
	}
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}
