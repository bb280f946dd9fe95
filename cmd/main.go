package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mapleleafu/cheesechase/config"
	"github.com/mapleleafu/cheesechase/game"
	"github.com/mapleleafu/cheesechase/handlers"
	"github.com/mapleleafu/cheesechase/repository"
)

func main() {
	addr := flag.String("addr", "", "http listen address, overrides SERVER_ADDR")
	flag.Parse()

	if err := run(*addr); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM. Startup failures come back as errors so
// every deferred close still runs.
func run(addr string) error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}
	cfg := config.LoadConfig()

	if addr == "" {
		addr = cfg.ServerAddr
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sinks   []repository.MatchSink
		history handlers.MatchHistory
		journal handlers.MatchJournal
	)

	if cfg.PostgresEnabled() {
		db, err := repository.ConnectToPostgreSQL(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		store := repository.NewMatchStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, store)
		history = store
	} else {
		logger.Info("DB_HOST not set, match summaries will not be stored")
	}

	if cfg.MongoEnabled() {
		client, err := repository.ConnectMongoDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				logger.Warn("mongodb disconnect", "err", err)
			}
		}()
		eventLog := repository.NewEventLog(client, cfg.MongoDatabase)
		sinks = append(sinks, eventLog)
		journal = eventLog
	} else {
		logger.Info("MONGO_URI not set, match journals will not be stored")
	}

	recorder := repository.NewRecorder(cfg.RecorderQueue, logger, sinks...)
	defer recorder.Close()

	hub := handlers.NewHub(handlers.HubConfig{
		SendBuffer:    cfg.SendBuffer,
		AllowedOrigin: cfg.AllowedOrigin,
		Logger:        logger,
		Game:          game.Options{Recorder: recorder, Logger: logger},
	})
	go hub.Run(ctx)

	info := handlers.NewInfoHandler(hub, history, journal, logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handlers.NewRouter(hub, info, cfg.AllowedOrigin, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown", "err", err)
		}
	}()

	logger.Info("server running", "addr", addr)
	var serveErr error
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		serveErr = fmt.Errorf("listen on %s: %w", addr, err)
		stop()
	}
	<-hub.Done()
	logger.Info("server stopped")
	return serveErr
}
