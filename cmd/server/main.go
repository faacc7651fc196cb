package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wallet-ledger/internal/cache"
	"wallet-ledger/internal/client"
	"wallet-ledger/internal/config"
	"wallet-ledger/internal/database"
	"wallet-ledger/internal/events"
	"wallet-ledger/internal/handler"
	"wallet-ledger/internal/logger"
	"wallet-ledger/internal/repository/postgres"
	"wallet-ledger/internal/service"
	"wallet-ledger/internal/worker"

	"github.com/redis/go-redis/v9"

	_ "wallet-ledger/docs"
)

// @title Wallet Ledger API
// @version 1.0
// @description Multi-balance wallet ledger for a fantasy sports platform
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(true, "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	walletRepo := postgres.NewWalletRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	outboxRepo := postgres.NewOutboxRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Redis backs the wallet cache and, optionally, the event sink
	var rdb *redis.Client
	if cfg.Redis.Enabled || cfg.Events.Sink == "redis" {
		rdb, err = cache.NewRedisClient(dbCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	}

	var walletCache cache.WalletCache = cache.Nop{}
	if cfg.Redis.Enabled {
		walletCache = cache.NewRedisWalletCache(rdb, cfg.Redis.TTL)
	}

	var publisher events.Publisher
	switch cfg.Events.Sink {
	case "kafka":
		publisher = events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic, log)
	case "redis":
		publisher = events.NewRedisPublisher(rdb, cfg.Events.RedisChannel)
	default:
		publisher = events.NewLogPublisher(log)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	// Collaborating services
	offers := client.NewOfferClient(cfg.Upstream.OfferServiceURL, cfg.Upstream.Timeout)
	contests := client.NewContestClient(cfg.Upstream.ContestServiceURL, cfg.Upstream.Timeout)
	users := client.NewUserClient(cfg.Upstream.UserServiceURL, cfg.Upstream.Timeout)

	// Services
	opts := service.Options{
		Policy:              cfg.Wallet.Policy(),
		TDSCashbackPromo:    cfg.Wallet.TDSCashbackPromo,
		ReferralBonusAmount: cfg.Wallet.ReferralBonusAmount,
		BonusValidity:       cfg.Wallet.BonusValidity,
	}
	walletService := service.NewWalletService(walletRepo, ledgerRepo, outboxRepo, txManager, walletCache,
		offers, contests, users, opts, log)
	relay := service.NewOutboxRelay(outboxRepo, txManager, publisher, cfg.Worker.OutboxBatchSize, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker relaying committed ledger events
	outboxWorker := worker.NewOutboxWorker(relay, cfg.Worker.OutboxInterval, cfg.Worker.OutboxBatchSize, log)
	outboxWorker.Start(ctx)
	defer outboxWorker.Stop()

	// http handler
	h := handler.NewHandler(walletService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().
		Str("port", cfg.Server.Port).
		Bool("cache", cfg.Redis.Enabled).
		Str("events_sink", cfg.Events.Sink).
		Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
