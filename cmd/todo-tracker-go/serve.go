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

	"github.com/spf13/cobra"

	"github.com/cirocosta/todo-tracker-go/internal/api"
	"github.com/cirocosta/todo-tracker-go/internal/config"
	"github.com/cirocosta/todo-tracker-go/internal/repository"
	"github.com/cirocosta/todo-tracker-go/internal/service"
	"github.com/cirocosta/todo-tracker-go/internal/web"
)

var serveFlags struct {
	configPath string
	addr       string
	dbPath     string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.configPath, "config", "", "path to the TOML configuration file")
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "HTTP listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveFlags.dbPath, "db", "", "SQLite database path (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveFlags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveFlags.addr
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = serveFlags.dbPath
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// setup dependencies
	todoRepo, closeRepo, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	todoService := service.NewTodoService(todoRepo).
		WithDefaultPageSize(cfg.DefaultPageSize)

	// create router, with the browser client mounted at the root
	r := api.NewRouter(todoService, api.Options{
		CORSOrigin: cfg.CORSOrigin,
		UI:         web.NewServer(todoService),
	})

	// create server
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	// create context that listens for interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr, "db", cfg.DBPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// wait for interrupt or server failure
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// shutdown server gracefully
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildRepository selects the store implementation: SQLite when a path is
// configured, the in-memory map otherwise.
func buildRepository(cfg config.Config) (repository.TodoRepository, func(), error) {
	if cfg.DBPath == "" {
		return repository.NewInMemoryTodoRepository(), func() {}, nil
	}

	db, err := repository.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	return repository.NewSQLiteTodoRepository(db), func() { _ = db.Close() }, nil
}
