package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groupbuy/internal/adapter/events"
	httpadapter "groupbuy/internal/adapter/http"
	"groupbuy/internal/adapter/memory"
	"groupbuy/internal/adapter/postgres"
	"groupbuy/internal/adapter/scheduler"
	"groupbuy/internal/adapter/usecase"
	"groupbuy/internal/config"
	"groupbuy/internal/config/configs"
	"groupbuy/internal/core/port"
	"groupbuy/internal/db"
)

// main is the entry point of the group-buy engine. It loads configuration,
// wires the campaign store and ledger for the configured backend, starts the
// expiry sweeper and serves the HTTP API. On receiving a termination signal
// it gracefully shuts everything down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		campaigns port.CampaignStore
		ledger    port.ParticipationLedger
	)
	switch cfg.Engine.StorageBackend() {
	case configs.StoragePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		campaigns = postgres.NewCampaignStore(pool)
		ledger = postgres.NewLedger(pool)
	default:
		campaigns = memory.NewCampaignStore()
		ledger = memory.NewLedger()
	}
	logger.Info("storage ready", slog.String("backend", cfg.Engine.StorageBackend()))

	var publishers events.MultiPublisher
	if cfg.Redis.Enabled {
		rdb, err := events.DialRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		publishers = append(publishers, events.NewRedisPublisher(rdb, cfg.Redis.Channel, logger))
		logger.Info("relaying campaign events to redis", slog.String("channel", cfg.Redis.Channel))
	}
	if cfg.AMQP.Enabled {
		mq, err := events.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			logger.Error("rabbitmq connection error", slog.Any("error", err))
			return
		}
		defer mq.Close()
		publishers = append(publishers, mq)
		logger.Info("relaying campaign events to rabbitmq", slog.String("exchange", cfg.AMQP.Exchange))
	}
	var publisher port.EventPublisher = publishers
	if len(publishers) == 0 {
		publisher = events.NewLogPublisher(logger)
	}

	svc := usecase.NewWishUseCase(campaigns, ledger,
		usecase.WithLogger(logger),
		usecase.WithEventPublisher(publisher),
		usecase.WithMaxAttempts(cfg.Engine.JoinRetries),
		usecase.WithSweepBatch(cfg.Engine.SweepBatch),
	)

	if cfg.Engine.Seed {
		if err = db.Seed(ctx, svc); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	if cfg.Engine.SweepSchedule != "" {
		jobs := scheduler.NewJobs(svc, logger, time.Minute)
		sched := scheduler.NewScheduler(jobs, logger, cfg.Engine.SweepSchedule)
		if err = sched.Start(); err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			return
		}
		defer func() { <-sched.Stop().Done() }()
	}

	handler := httpadapter.NewHandler(svc, logger, httpadapter.WithCORS(cfg.HTTP.CORSOrigins))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
