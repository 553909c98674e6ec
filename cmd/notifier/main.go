package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ciganahub/cigana-hub/internal/config"
	kafkax "github.com/ciganahub/cigana-hub/internal/kafka"
	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/notifications"
	"github.com/ciganahub/cigana-hub/internal/notifier"
	"github.com/ciganahub/cigana-hub/internal/postgres"
	"github.com/ciganahub/cigana-hub/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &notifier.Service{
		Store:       &notifications.Repo{DB: db},
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-notifier",
		Log:         log,
	}

	group := getenv("NOTIFIER_GROUP", "notifier-svc")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), 4)

	// one consumer per topic family, same group
	orderPlaced := kafkax.NewConsumer(cfg.KafkaBrokers, group, market.TopicOrderPlaced, workers, log)
	orderStatus := kafkax.NewConsumer(cfg.KafkaBrokers, group, market.TopicOrderStatusChanged, workers, log)
	messageSent := kafkax.NewConsumer(cfg.KafkaBrokers, group, market.TopicMessageSent, workers, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return orderPlaced.Start(gctx, svc.HandleOrderEvent) })
	g.Go(func() error { return orderStatus.Start(gctx, svc.HandleOrderEvent) })
	g.Go(func() error { return messageSent.Start(gctx, svc.HandleMessageEvent) })

	log.Info("notifier consumers started", zap.String("group", group), zap.Int("workers", workers))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
		log.Info("shutting down consumers...")
		cancel()
	case <-gctx.Done():
	}

	if err := g.Wait(); err != nil {
		log.Error("consumer exit", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
