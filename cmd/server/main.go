package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/export"
	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/internal/scheduler"
	"github.com/shilohridge/backoffice/internal/server/handlers"
	"github.com/shilohridge/backoffice/internal/server/router"
	accountingsvc "github.com/shilohridge/backoffice/internal/service/accounting"
	orderssvc "github.com/shilohridge/backoffice/internal/service/orders"
	salessvc "github.com/shilohridge/backoffice/internal/service/sales"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
	"github.com/shilohridge/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := fallback.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		baseLogger.Fatal("failed to open fallback store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			baseLogger.Error("failed to close fallback store", zap.Error(err))
		}
	}()

	client := farmapi.NewClient(cfg.FarmAPI)
	gate := session.NewGate(client, store, cfg.Session, baseLogger.Named("session"))

	holder := &handlers.Holder{}
	build := func(sess *session.Session) *handlers.Workspace {
		registry := manager.NewRegistry(client, store, sess, baseLogger)
		return &handlers.Workspace{
			Session:    sess,
			Registry:   registry,
			Sales:      salessvc.NewService(registry.Sales, registry.Customers, registry.Inventory, baseLogger.Named("svc.sales")),
			Orders:     orderssvc.NewService(registry.Orders, registry.Products, baseLogger.Named("svc.orders")),
			Accounting: accountingsvc.NewService(registry.Expenses, registry.Revenue, baseLogger.Named("svc.accounting")),
			Export:     export.NewService(client, baseLogger.Named("svc.export")),
		}
	}

	// Restore the previous session so a restart does not force a re-login.
	if sess, err := gate.Resume(context.Background()); err == nil {
		holder.Set(build(sess))
		baseLogger.Info("session resumed", zap.String("username", sess.Username), zap.Bool("demo", sess.Demo()))
	} else if !errors.Is(err, session.ErrUnauthenticated) {
		baseLogger.Warn("session resume failed", zap.Error(err))
	}

	authHandler := handlers.NewAuthHandler(gate, holder, build, baseLogger.Named("handlers.auth"))
	engine := router.New(router.Deps{
		Holder:     holder,
		Auth:       authHandler,
		Inventory:  handlers.NewInventoryHandler(holder, baseLogger.Named("handlers.inventory")),
		Sales:      handlers.NewSalesHandler(holder, baseLogger.Named("handlers.sales")),
		Orders:     handlers.NewOrdersHandler(holder, baseLogger.Named("handlers.orders")),
		Accounting: handlers.NewAccountingHandler(holder, baseLogger.Named("handlers.accounting")),
		Content:    handlers.NewContentHandler(holder, store, baseLogger.Named("handlers.content")),
		Public:     handlers.NewPublicHandler(store, baseLogger.Named("handlers.public")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, client, store, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
