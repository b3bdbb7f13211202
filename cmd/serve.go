package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/cache"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/logger"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the tasks table, connects to redis and serves the task API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lg, closeLog, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}, os.Stdout)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		database, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		taskRepo := repository.NewTaskRepository(database)
		if err := taskRepo.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		redisClient, err := config.NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		taskCache := cache.NewRedisCache(redisClient)

		taskService := services.WithLogging(
			services.WithCache(
				services.NewTaskService(taskRepo, validator.New(validator.WithRequiredStructEnabled())),
				taskCache,
				cfg.CacheTTL,
				lg,
			),
			lg,
		)

		e := echo.New()
		handler := httpapi.NewHandler(taskService, map[string]httpapi.Pinger{
			"database": taskRepo,
			"cache":    taskCache,
		})
		httpapi.Register(e, handler, lg, cfg.RateLimit)

		serverErr := make(chan error, 1)
		go func() {
			lg.Info("HTTP server listening", "addr", cfg.AppURL())
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			if err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			lg.Error("HTTP server shutdown failed", "error", err)
		}

		lg.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (APP_PORT)")
	serveCmd.Flags().String("host", "", "host to bind (APP_HOST)")
	bindFlag(serveCmd, "app_port", "port")
	bindFlag(serveCmd, "app_host", "host")
	rootCmd.AddCommand(serveCmd)
}
