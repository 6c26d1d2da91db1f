package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacesedan/sentiresponder/config"
	"github.com/spacesedan/sentiresponder/internal/metrics"
)

type Server struct {
	engine *gin.Engine
	inner  *http.Server
}

func NewServer(cfg *config.Config, classifier Classifier, reg *prometheus.Registry) *Server {
	gin.SetMode(getGinMode(cfg.AppEnv))
	r := gin.New()

	r.Use(requestID())
	r.Use(requestLogger())
	r.Use(recovery())
	r.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
	r.Use(metrics.NewHTTPMetrics(reg).Middleware())

	h := &Handler{
		classifier: classifier,
		metrics:    metrics.NewPredictionMetrics(reg),
		health: healthInfo{
			Scorer:     cfg.Scorer,
			Translator: cfg.Translator,
		},
	}
	registerRoutes(r, h, reg)

	return &Server{
		engine: r,
		inner: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Handler exposes the gin engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	slog.Info("[Server] Listening", slog.String("addr", s.inner.Addr))
	if err := s.inner.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	slog.Info("[Server] Stopping server...")
	if err := s.inner.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func getGinMode(env string) string {
	switch env {
	case "dev":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        5 * time.Minute,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
