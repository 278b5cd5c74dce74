package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/jiu45/JobPortal/config"
	"github.com/jiu45/JobPortal/internal/attachment"
	"github.com/jiu45/JobPortal/internal/auth"
	messagingHTTP "github.com/jiu45/JobPortal/internal/messaging/delivery/http"
	messagingModel "github.com/jiu45/JobPortal/internal/messaging/model"
	messagingRepository "github.com/jiu45/JobPortal/internal/messaging/repository"
	messagingUsecase "github.com/jiu45/JobPortal/internal/messaging/usecase"
	"github.com/jiu45/JobPortal/internal/realtime"
	userModels "github.com/jiu45/JobPortal/internal/user/model"
	userRepository "github.com/jiu45/JobPortal/internal/user/repository"
	"github.com/jiu45/JobPortal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		panic(err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		panic(err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}

	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))), pgdialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := db.Ping(); err != nil {
		appLogger.Error("database unreachable", "err", err)
		os.Exit(1)
	}
	if err := createTables(ctx, db); err != nil {
		appLogger.Error("failed to create tables", "err", err)
		os.Exit(1)
	}

	store, err := attachment.NewDiskStore(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
	if err != nil {
		appLogger.Error("failed to prepare upload directory", "err", err)
		os.Exit(1)
	}
	ingestor := attachment.NewIngestor(store, cfg.Upload.MaxFiles, cfg.Upload.MaxFileSizeMB<<20, *appLogger)

	messageRepo := messagingRepository.NewMessageRepository(db, *appLogger)
	userRepo := userRepository.NewUserRepository(db, *appLogger)

	registry := realtime.NewRegistry()
	notifier := realtime.NewNotifier(registry, messageRepo, *appLogger)
	hub := realtime.NewHub(registry, cfg, *appLogger)

	usecase := messagingUsecase.NewMessagingUsecase(messageRepo, userRepo, notifier, *appLogger)
	handlers := messagingHTTP.NewMessagingHandlers(usecase, ingestor, *appLogger)

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/ws", hub.ServeWS)
	router.PathPrefix(cfg.Upload.PublicPrefix + "/").Handler(
		http.StripPrefix(cfg.Upload.PublicPrefix+"/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware(cfg, *appLogger))
	handlers.MapRoutes(api)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", "err", err)
	}
}

func createTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*userModels.User)(nil),
		(*messagingModel.Message)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
