// Package server wires the record store: configuration, database,
// migrations, and the HTTP API.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"teamspace/internal/logging"
	"teamspace/internal/server/config"
	"teamspace/internal/server/handlers"
	"teamspace/internal/server/storage"
)

func Run() error {
	ctx := context.Background()
	logger := logging.NewJSON(os.Stdout)
	cfg := config.LoadConfig()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.RunMigrations(ctx, db); err != nil {
		return err
	}

	h := handlers.New(
		storage.NewUsers(db),
		storage.NewTeams(db),
		storage.NewPhotos(db),
		storage.NewMessages(db),
		storage.NewBudgets(db),
		logger,
	)

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	h.Register(app)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()
	logger.Info(ctx, "record store listening", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info(ctx, "shutting down", "signal", sig.String())
		return app.Shutdown()
	}
}
