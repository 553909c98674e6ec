package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ciganahub/cigana-hub/internal/cart"
	"github.com/ciganahub/cigana-hub/internal/chat"
	"github.com/ciganahub/cigana-hub/internal/config"
	"github.com/ciganahub/cigana-hub/internal/httpx"
	kafkax "github.com/ciganahub/cigana-hub/internal/kafka"
	"github.com/ciganahub/cigana-hub/internal/listings"
	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/notifications"
	"github.com/ciganahub/cigana-hub/internal/orders"
	"github.com/ciganahub/cigana-hub/internal/postgres"
	"github.com/ciganahub/cigana-hub/internal/profiles"
	"github.com/ciganahub/cigana-hub/internal/redisx"
	"github.com/ciganahub/cigana-hub/internal/storage"
	"github.com/ciganahub/cigana-hub/internal/ws"
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

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers, one per topic
	pPlaced := kafkax.NewProducer(cfg.KafkaBrokers, market.TopicOrderPlaced, 1024, log)
	pPlaced.Start(ctx)
	pStatus := kafkax.NewProducer(cfg.KafkaBrokers, market.TopicOrderStatusChanged, 1024, log)
	pStatus.Start(ctx)
	pSent := kafkax.NewProducer(cfg.KafkaBrokers, market.TopicMessageSent, 1024, log)
	pSent.Start(ctx)

	// Repos & services
	profileRepo := &profiles.Repo{DB: db}
	orderRepo := &orders.Repo{DB: db}
	chatRepo := &chat.Repo{DB: db}
	listingRepo := &listings.Repo{DB: db}
	notifRepo := &notifications.Repo{DB: db}
	cartStore := &cart.RedisStore{RDB: rdb}
	hub := ws.NewHub(log)

	orderSvc := &orders.Service{
		Cart:          cartStore,
		Repo:          orderRepo,
		Placed:        pPlaced,
		StatusChanged: pStatus,
		ServiceName:   cfg.ServiceName,
		Log:           log,
	}
	chatSvc := &chat.Service{
		Messages:    chatRepo,
		Orders:      orderRepo,
		Dir:         profileRepo,
		Hub:         hub,
		Sent:        pSent,
		ServiceName: cfg.ServiceName,
		Log:         log,
	}

	logos := &storage.Local{Root: cfg.UploadDir, BaseURL: cfg.PublicBaseURL}

	// Router
	router := httpx.NewRouter()
	httpx.ServeUploads(router, cfg.UploadDir)

	auth := &httpx.Auth{Secret: cfg.JWTSecret, Profiles: profileRepo}
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware)

		(&httpx.CartHandler{Store: cartStore, Orders: orderSvc}).Register(r)
		(&httpx.OrdersHandler{Service: orderSvc}).Register(r)
		(&httpx.ChatHandler{Service: chatSvc, Hub: hub}).Register(r)
		(&httpx.MarketplaceHandler{Repo: listingRepo}).Register(r)
		(&httpx.RegistrationsHandler{Repo: profileRepo, Logos: logos}).Register(r)
		(&httpx.NotificationsHandler{Repo: notifRepo}).Register(r)

		r.Group(func(ar chi.Router) {
			ar.Use(httpx.RequireAdmin)
			(&httpx.AdminHandler{Repo: profileRepo}).Register(ar)
		})
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	// close inboxes -> flush & close writers
	pPlaced.Close()
	pStatus.Close()
	pSent.Close()
	cancel()
	pPlaced.WaitClosed()
	pStatus.WaitClosed()
	pSent.WaitClosed()
}
