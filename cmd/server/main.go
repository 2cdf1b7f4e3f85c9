package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skyhunt-service/internal/infrastructure/config"
	"skyhunt-service/internal/infrastructure/heartbeat"
	"skyhunt-service/internal/infrastructure/persistence"
	"skyhunt-service/internal/infrastructure/router"
	"skyhunt-service/internal/interface/api"
	"skyhunt-service/internal/interface/repository"
	"skyhunt-service/internal/interface/tools"
	"skyhunt-service/internal/usecase"
	"skyhunt-service/pkg/logger"
	"skyhunt-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting SkyHunt Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := gormDB.AutoMigrate(&repository.BaselineMetrics{}, &repository.Watchlist{}); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	m := metrics.NewMetrics("skyhunt")

	// Set up repositories
	baselineRepo := repository.NewGormBaselineRepository(gormDB)
	huntRepo := repository.NewGormHuntRepository(gormDB)
	historyRepo := repository.NewMongoPriceHistoryRepository(mongoDB)
	whatsappRepo := repository.NewWhatsappRepository(cfg.WhatsAppEndpoint, cfg.WhatsAppToken, log)

	// Set up the price-intelligence core
	analyzer := usecase.NewPriceAnalyzer(baselineRepo, log)
	detector := usecase.NewTrendDetector(historyRepo, log)
	registry := usecase.NewHuntRegistry(huntRepo, log)
	watcher := usecase.NewHuntWatcher(huntRepo, historyRepo, whatsappRepo, analyzer, detector, log, m)

	// Register agent tools
	toolRouter := router.NewToolRouter(log)
	tools.RegisterAll(toolRouter, registry, analyzer, detector, historyRepo, m, log)

	// Schedule the hunt watcher
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.WatchSchedule, func() {
		if err := watcher.EvaluateHunts(ctx); err != nil {
			log.Error("Hunt evaluation sweep failed", "error", err)
		}
	}); err != nil {
		log.Fatal("Invalid watch schedule", "schedule", cfg.WatchSchedule, "error", err)
	}
	scheduler.Start()

	// Keep-alive pinger for the hosting platform
	go heartbeat.New(cfg.HeartbeatURL, cfg.HeartbeatInterval, log).Start(ctx)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	api.SetupRoutes(engine, toolRouter, m, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	<-scheduler.Stop().Done()
	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("SkyHunt Service stopped")
}
