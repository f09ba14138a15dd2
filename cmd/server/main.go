package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/roleradar-api/internal/config"
	"github.com/yourusername/roleradar-api/internal/handler"
	"github.com/yourusername/roleradar-api/internal/match"
	"github.com/yourusername/roleradar-api/internal/middleware"
	"github.com/yourusername/roleradar-api/internal/refdata"
	"github.com/yourusername/roleradar-api/internal/service"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("Starting RoleRadar API")

	// ── Reference data ───────────────────────────────────
	// No reference data, no meaningful matching — unreadable files are fatal.
	tables, err := refdata.Shared(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	// ── Engine and services ──────────────────────────────
	engine := match.NewEngine(tables)
	claude := service.NewClaudeClient(cfg.ClaudeAPIKey, cfg.ClaudeBaseURL)

	// ── Handlers ─────────────────────────────────────────
	analyzeHandler := handler.NewAnalyzeHandler(claude, engine)
	rematchHandler := handler.NewRematchHandler(tables, engine)
	referenceHandler := handler.NewReferenceHandler(tables)

	// ── Middleware ────────────────────────────────────────
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS)

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(requestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "roleradar-api",
			"time":    time.Now().UTC(),
		})
	})

	// ── Routes ───────────────────────────────────────────
	api := r.Group("/", rateLimiter.Limit())
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/rematch", rematchHandler.Rematch)
		api.GET("/industries", referenceHandler.ListIndustries)
	}

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("RoleRadar API server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// requestLogger logs every request with zerolog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= 400 {
			event = log.Warn()
		}
		if status >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("requestId", middleware.GetRequestID(c)).
			Msg(fmt.Sprintf("%s %s", c.Request.Method, path))
	}
}
