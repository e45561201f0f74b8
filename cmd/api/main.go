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

	clientStore "github.com/ricardomaia/credo/internal/client/store"
	"github.com/ricardomaia/credo/internal/config"
	"github.com/ricardomaia/credo/internal/credit"
	"github.com/ricardomaia/credo/internal/database"
	"github.com/ricardomaia/credo/internal/fraud"
	credoHttp "github.com/ricardomaia/credo/internal/http"
	creditHandler "github.com/ricardomaia/credo/internal/http/credit"
	importHandler "github.com/ricardomaia/credo/internal/http/importcsv"
	orderHandler "github.com/ricardomaia/credo/internal/http/order"
	"github.com/ricardomaia/credo/internal/importer"
	"github.com/ricardomaia/credo/internal/kafka"
	"github.com/ricardomaia/credo/internal/order"
	"github.com/ricardomaia/credo/internal/order/cache"
	orderSource "github.com/ricardomaia/credo/internal/order/source"
	orderStore "github.com/ricardomaia/credo/internal/order/store"
)

func main() {
	log := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var fraudGate credit.FraudGate = fraud.NewStatic()
	if cfg.Fraud.URL != "" {
		fraudGate = fraud.NewClient(cfg.Fraud.URL, cfg.Fraud.Token, cfg.Fraud.Timeout)
	}

	var (
		clients       = clientStore.New(db)
		orders        = orderStore.New(db)
		seenOrders    = cache.New()
		analyzer      = credit.NewAnalyzer(fraudGate, log)
		orderService  = order.NewService(orders, log)
		importService = importer.NewService()
	)

	syncJob := order.NewSyncJob(
		orderSource.New(cfg.Source.URL, cfg.Source.Timeout),
		orders,
		seenOrders,
		log,
	)

	if cfg.Source.URL != "" {
		go syncJob.RunLoop(ctx, cfg.Sync.Interval)
	}

	if len(cfg.Kafka.Brokers) > 0 {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID, orderService, log)
		defer consumer.Close()

		go consumer.Run(ctx)
	}

	var (
		creditH = creditHandler.NewHandler(analyzer, clients)
		orderH  = orderHandler.NewHandler(orderService, syncJob)
		importH = importHandler.NewHandler(importService, clients)
	)

	router := credoHttp.New(creditH, orderH, importH)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.Info("starting server", "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
