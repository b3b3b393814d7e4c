package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interview-analyzer/internal/analysis"
	"interview-analyzer/internal/config"
	"interview-analyzer/internal/metrics"
)

// Server — HTTP обвязка над оркестратором анализа
type Server struct {
	orchestrator *analysis.Orchestrator
	counters     *metrics.Metrics
	cfg          *config.AppConfig
	logger       *zap.Logger
	httpServer   *http.Server
}

// New создает HTTP сервер с настроенным роутером
func New(orchestrator *analysis.Orchestrator, counters *metrics.Metrics,
	cfg *config.AppConfig, logger *zap.Logger) *Server {
	s := &Server{
		orchestrator: orchestrator,
		counters:     counters,
		cfg:          cfg,
		logger:       logger,
	}

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.corsMiddleware())

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/score-session", s.handleScoreSession)
		apiGroup.POST("/star-analysis", s.handleStarAnalysis)
		apiGroup.POST("/comprehensive-analysis", s.handleComprehensiveAnalysis)
	}

	router.GET("/health", s.handleHealth)
	router.GET("/debug/metrics", s.handleMetrics)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Run запускает сервер и блокируется до его остановки
func (s *Server) Run() error {
	s.logger.Info("HTTP сервер запущен", zap.String("addr", s.httpServer.Addr))

	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("ошибка HTTP сервера: %w", err)
	}

	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// corsMiddleware разрешает запросы фронтенда с настроенного origin
func (s *Server) corsMiddleware() gin.HandlerFunc {
	origin := s.cfg.Server.CORSOrigin

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
