package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vending-machine/config"
	httpHandler "vending-machine/internal/adapter/http/handler"
	"vending-machine/internal/adapter/http/middleware"
	"vending-machine/internal/adapter/metrics"
	pgStorage "vending-machine/internal/adapter/storage/postgres"
	redisStorage "vending-machine/internal/adapter/storage/redis"
	"vending-machine/internal/core/ports"
	"vending-machine/internal/service"
	"vending-machine/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	hashPassword := flag.String("hash-password", "", "print the Argon2id hash of a password and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := service.NewArgon2HashService().Hash(*hashPassword)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, cfg.Machine.ID)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("rollback_on_insufficient", cfg.Machine.RollbackOnInsufficient).
		Msg("Starting vending machine")

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// Sales journal (optional)
	var journalRepo ports.JournalRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		journalRepo = pgStorage.NewJournalRepo(pool, cfg.Machine.ID)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	} else {
		log.Warn().Msg("Database disabled, transactions are only logged")
	}
	journal := service.NewJournalService(journalRepo, log)

	// Rate limiting (optional)
	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		limiter = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, rate limiting is off")
	}

	// Shelves and coin holder
	shelves, err := cfg.Catalog.ShelfList()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid catalog configuration")
	}
	if len(shelves) == 0 {
		shelves = service.DefaultShelves()
	}
	catalog := service.NewShelfCatalog(shelves...)

	initialCoins, err := cfg.Machine.InitialCoins()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid coin configuration")
	}
	coins := service.NewCoinInventory()
	for denom, count := range initialCoins {
		if count == 0 {
			continue
		}
		if err := coins.Load(denom, count); err != nil {
			log.Fatal().Err(err).Str("denomination", string(denom)).Msg("Failed to load coins")
		}
	}
	log.Info().
		Int("shelves", len(shelves)).
		Str("coins_total", coins.Total().String()).
		Msg("Machine stocked")

	// Closed transactions go to the sales journal and, when enabled, to metrics.
	journals := service.Journals{journal}
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Machine.ID)
		collector.TrackInventory(coins.Total)
		journals = append(journals, collector)
	}

	// Core services
	display := service.NewLogDisplay(log)
	machine := service.NewVendingMachine(
		catalog,
		display,
		coins,
		journals,
		service.MachineOptions{RollbackOnInsufficient: cfg.Machine.RollbackOnInsufficient},
		log,
	)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer, cfg.Machine.ID)
	operatorSvc := service.NewOperatorService(
		service.OperatorCredentials{
			Username:     cfg.Operator.Username,
			PasswordHash: cfg.Operator.PasswordHash,
		},
		catalog,
		coins,
		hashSvc,
		tokenSvc,
		log,
	)
	if cfg.Operator.PasswordHash == "" {
		log.Warn().Msg("No operator password hash configured, operator login is disabled")
	}

	deps := httpHandler.RouterDeps{
		Machine:        machine,
		Operator:       operatorSvc,
		Screen:         display,
		TokenSvc:       tokenSvc,
		RateLimitStore: limiter,
		RateLimitRules: middleware.RateLimitRules(cfg.RateLimit.Panel, cfg.RateLimit.OperatorLogin, cfg.RateLimit.Operator),
		HealthCheckers: checkers,
		Logger:         log,
	}
	if collector != nil {
		deps.Metrics = collector
	}
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Pending journal writes finish before the pool closes.
	journal.Wait()

	if tx := machine.CurrentTransaction(); tx != nil {
		log.Warn().
			Str("tx_id", tx.ID.String()).
			Str("covered", tx.CoveredAmount.String()).
			Msg("Shutting down with a transaction in progress")
	}

	log.Info().Msg("Server exited")
}
