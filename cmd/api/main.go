package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"budgetmaster/internal/cache"
	"budgetmaster/internal/config"
	"budgetmaster/internal/database"
	"budgetmaster/internal/events"
	"budgetmaster/internal/logger"
	"budgetmaster/internal/router"
	"budgetmaster/internal/store"
	"budgetmaster/internal/uuid"
	"budgetmaster/internal/validator"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// @title           BudgetMaster API
// @version         1.0
// @description     BudgetMaster tracks expenses, income, budget items and savings goals per user.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.InitWithLevel(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	validator.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Relational database: users, preferences and, by default, records
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Change events
	origin := uuid.New()
	var publisher events.Publisher = events.NopPublisher{}
	var broker *events.Client
	if appConfig.AMQPURL != "" {
		broker, err = events.NewClient(appConfig.AMQPURL, appConfig.AMQPExchange, origin)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		defer broker.Close()
		publisher = broker
	}

	// Record store; every committed write is broadcast
	cacheManager := cache.NewManager()
	defer cacheManager.Stop()
	cacheConfig := store.CacheConfig{
		Size:     appConfig.CacheSize,
		TTL:      appConfig.CacheTTL,
		OnChange: events.Hook(publisher),
		Manager:  cacheManager,
	}

	var collections *store.Collections
	switch appConfig.RecordStore {
	case config.RecordStoreMongo:
		var client *mongo.Client
		var mdb *mongo.Database
		client, mdb, err = database.ConnectMongo(ctx, appConfig.MongoURI, appConfig.MongoDatabase)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer database.DisconnectMongo(context.Background(), client)

		if err := store.EnsureIndexes(ctx, mdb, store.Names()...); err != nil {
			return fmt.Errorf("failed to create MongoDB indexes: %w", err)
		}
		collections = store.NewMongoCollections(mdb, cacheConfig)
	default:
		collections = store.NewGormCollections(dbManager.DB(), cacheConfig)
	}
	cacheManager.StartCleanup(time.Minute)

	if broker != nil {
		handler := events.InvalidationHandler(origin,
			collections.Expenses, collections.Income, collections.Budget, collections.Goals)
		go func() {
			if err := broker.Consume(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorw("Change consumer stopped", "error", err)
			}
		}()
	}

	engine := router.New(router.NewHandlers(dbManager.DB(), collections))

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Starting BudgetMaster server",
			"port", appConfig.Port,
			"db_driver", appConfig.DBDriver,
			"record_store", appConfig.RecordStore,
		)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server stopped gracefully")
	return nil
}
