// @title			Workforce API
// @version		1.0
// @description	Task assignment service for order and entity workflows.
// @BasePath		/api/v1

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

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/workforce/internal/config"
	"github.com/mtlprog/workforce/internal/database"
	"github.com/mtlprog/workforce/internal/handler"
	"github.com/mtlprog/workforce/internal/logger"
	"github.com/mtlprog/workforce/internal/middleware"
	"github.com/mtlprog/workforce/internal/service"
)

func main() {
	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "workforce",
		Usage: "Task assignment service for order and entity workflows",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "json",
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "store",
				Aliases: []string{"s"},
				Value:   string(config.DefaultStore),
				Usage:   "Storage backend (memory, postgres)",
				EnvVars: []string{"STORE"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL (required for the postgres store)",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Value:   config.DefaultCatalogFile,
				Usage:   "YAML file mapping reference types to task types",
				EnvVars: []string{"CATALOG_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetupFormat(os.Stdout, c.String("log-format"), logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:  "migrate",
				Usage: "Manage PostgreSQL schema migrations",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "Apply all pending migrations",
						Action: runMigrateUp,
					},
					{
						Name:   "down",
						Usage:  "Roll back the most recent migration",
						Action: runMigrateDown,
					},
					{
						Name:   "status",
						Usage:  "Print the applied migration version",
						Action: runMigrateStatus,
					},
				},
			},
			{
				Name:   "catalog",
				Usage:  "Print the effective reference type catalog as YAML",
				Action: runCatalog,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	catalog, err := config.LoadCatalog(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	clock := service.SystemClock{}

	backend, err := openBackend(ctx, config.StoreBackend(c.String("store")), c.String("database-url"), clock)
	if err != nil {
		return err
	}
	defer backend.Close()

	taskService := service.NewTaskService(
		backend.tasks,
		backend.activities,
		backend.comments,
		catalog,
		clock,
	)

	h := handler.New(taskService, backend.tasks)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           middleware.Chain(mux),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+port,
			"store", backend.kind,
			"reference_types", len(catalog.ReferenceTypes()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// connect opens the database named by --database-url for the migrate commands.
func connect(c *cli.Context) (*database.DB, error) {
	databaseURL := c.String("database-url")
	if databaseURL == "" {
		return nil, errors.New("database-url is required")
	}

	db, err := database.New(c.Context, databaseURL, database.DefaultPoolOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runMigrateUp(c *cli.Context) error {
	db, err := connect(c)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.RunMigrations(c.Context, db.Pool())
}

func runMigrateDown(c *cli.Context) error {
	db, err := connect(c)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.RollbackMigration(c.Context, db.Pool())
}

func runMigrateStatus(c *cli.Context) error {
	db, err := connect(c)
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := database.MigrationVersion(c.Context, db.Pool())
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "migration version: %d\n", version)
	return nil
}

func runCatalog(c *cli.Context) error {
	catalog, err := config.LoadCatalog(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	out, err := config.MarshalCatalog(catalog)
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(out)
	return err
}
