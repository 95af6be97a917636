package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bishoprook/internal/config"
	apihttp "bishoprook/internal/http"
	"bishoprook/internal/http/handlers"
	"bishoprook/internal/logger"
	"bishoprook/internal/repository"
	"bishoprook/internal/service"
	"bishoprook/internal/store"
	"bishoprook/internal/ws"
)

// Version is set at build time.
var Version = "dev"

func main() {
	cfg := config.Load()

	jsonLogs := os.Getenv("LOG_FORMAT") == "json"
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init(logLevel, jsonLogs)
	log := logger.Get()

	var st store.Store
	if cfg.RedisURL != "" {
		rs, err := store.NewRedis(cfg.RedisURL, cfg.GameTTL)
		if err != nil {
			logger.Fatal("redis connect failed", "error", err)
		}
		defer rs.Close()
		st = rs
		log.Info("game store: redis", "ttl", cfg.GameTTL)
	} else {
		st = store.NewMemory(cfg.GameTTL)
		log.Info("game store: memory", "ttl", cfg.GameTTL)
	}

	hub := ws.NewHub()
	games := service.NewGameService(st)
	games.AttachHub(hub)

	var statusRepo *repository.StatusRepository
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		cancel()
		if err != nil {
			logger.Fatal("database connect failed", "error", err)
		}
		defer pool.Close()

		statusRepo = repository.NewStatusRepository(pool)
		games.AttachArchive(repository.NewArchiveRepository(pool))
		log.Info("database connected")
	} else {
		log.Warn("DATABASE_URL not set, archive and status checks disabled")
	}

	r := gin.Default()

	// CORS: the front-end is served from a different origin.
	allowed := cfg.CORSOrigins
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && originAllowed(allowed, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apihttp.RegisterRoutes(r, handlers.New(games, hub, statusRepo))

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Info("server started", "port", cfg.AppPort, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
