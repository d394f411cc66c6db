package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"announcebar/internal/core/cache"
	"announcebar/internal/core/config"
	"announcebar/internal/core/database"
	"announcebar/internal/core/httpclient"
	"announcebar/internal/core/logger"
	"announcebar/internal/core/proxy"
	"announcebar/internal/core/server"
	"announcebar/internal/features/announcements/adapters"
	"announcebar/internal/features/announcements/handler"
	"announcebar/internal/features/announcements/service"

	"go.uber.org/zap"
)

// @title Announcement Bar API
// @version 1.0
// @description Serves embeddable announcement bar scripts and server-rendered previews.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Configuration store
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()
	l.Info("Database connection verified")

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(ctx, pool); err != nil {
			l.Fatal("Schema bootstrap failed", zap.Error(err))
		}
		l.Info("Database schema ensured")
	}

	// Geo cache; the service keeps working without it
	var geoCache cache.Cache = cache.Nop{}
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "announcebar:")
	if err != nil {
		l.Warn("Invalid Redis URL, geo results will not be cached", zap.Error(err))
	} else if err := redisCache.Ping(ctx); err != nil {
		l.Warn("Redis unreachable, geo results will not be cached", zap.Error(err))
		_ = redisCache.Close()
	} else {
		geoCache = redisCache
		defer redisCache.Close()
		l.Info("Redis connection verified")
	}

	// Geo-IP lookup
	outbound := proxy.Settings{
		Enabled:  cfg.OutboundProxy.Enabled,
		Hostname: cfg.OutboundProxy.Hostname,
		Port:     cfg.OutboundProxy.Port,
		Username: cfg.OutboundProxy.Username,
		Password: cfg.OutboundProxy.Password,
	}
	if outbound.HasProxy() {
		l.Info("Geo lookups use outbound proxy", zap.String("proxy", outbound.HostPort()))
	}
	geoClient := httpclient.NewClient(cfg.Geo.GeoTimeout(), outbound)
	geo := adapters.NewCachedGeoLocator(
		adapters.NewHTTPGeoLocator(geoClient, cfg.Geo.APIURL),
		geoCache,
		cfg.Geo.CacheTTL(),
		cfg.Geo.GeoTimeout(),
	)

	// Embed service & handler
	repo := adapters.NewPostgresRepository(pool)
	embedService := service.NewEmbedService(repo, geo, cfg.Geo.GeoTimeout())
	embedHandler := handler.NewEmbedHandler(embedService, cfg.Embed.CacheMaxAge)

	srv := server.New(cfg)

	// Register Routes
	embedHandler.Register(srv.App)
	srv.App.Get("/healthz", server.NewHealthHandler(pool, geoCache).Check)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down server")
	done := make(chan struct{})
	go func() {
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		l.Warn("Server shutdown timed out")
	}
}
