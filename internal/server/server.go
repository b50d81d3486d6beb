package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spacesedan/sentiquery/internal/models"
)

const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 120 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// SentimentAnalyzer is the pipeline entry point the handlers call into.
type SentimentAnalyzer interface {
	AnalyzeQuery(ctx context.Context, subject, qualifier string) (*models.SentimentSummary, error)
}

type Handler struct {
	analyzer      SentimentAnalyzer
	scorerHealthy *atomic.Bool
}

func NewHandler(analyzer SentimentAnalyzer, scorerHealthy *atomic.Bool) *Handler {
	if scorerHealthy == nil {
		scorerHealthy = &atomic.Bool{}
		scorerHealthy.Store(true)
	}
	return &Handler{analyzer: analyzer, scorerHealthy: scorerHealthy}
}

func NewRouter(handler *Handler, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.HealthCheck)
		v1.GET("/sentiment", handler.AnalyzeQuery)
	}

	return router
}

func NewServer(handler *Handler, port string, debug bool) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(handler, debug),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}
}
