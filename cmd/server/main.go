package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/sportshub/backend/internal/auth"
	"github.com/sportshub/backend/internal/config"
	"github.com/sportshub/backend/internal/server"
	"github.com/sportshub/backend/internal/store"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("hub"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)
	logger := lgr.GetLogger("main")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	if strings.TrimSpace(cfg.Auth.SigningKey) == "" {
		logger.Error("auth signing key is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	if err := store.Bootstrap(ctx, db); err != nil {
		logger.Error("apply schema", "error", err)
		os.Exit(1)
	}

	repo := store.NewRepositoryManager(db)
	repo.MustValidate()

	authn := auth.NewAuthenticator(repo.Users(), repo.RevokedTokens(), cfg).
		WithLogger(lgr.GetLogger("auth"))

	app := server.New(cfg, repo, authn, lgr.GetLogger("http"))

	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if err := app.Shutdown(); err != nil {
		logger.Error("http shutdown", "error", err)
	}
}
