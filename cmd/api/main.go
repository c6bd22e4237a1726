package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinehub/internal/config"
	"dinehub/internal/database"
	"dinehub/internal/events"
	"dinehub/internal/handler"
	"dinehub/internal/metrics"
	"dinehub/internal/repository"
	"dinehub/internal/router"
	"dinehub/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting dinehub API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, closeDB, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer closeDB()

	orderRepo := repository.NewOrderRepository(db, logger)
	menuRepo := repository.NewMenuRepository(db, logger)
	categoryRepo := repository.NewCategoryRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)

	// The event publisher is optional; the write path works without it.
	var publisher service.EventPublisher
	var closePublisher func()
	if cfg.NATS.URL != "" {
		p, err := events.NewPublisher(cfg.NATS.URL, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("order events disabled, NATS unreachable")
		} else {
			publisher = p
			closePublisher = p.Close
		}
	} else {
		logger.Info().Msg("order events disabled, no NATS URL configured")
	}
	if closePublisher != nil {
		defer closePublisher()
	}

	m := metrics.New()

	orderService := service.NewOrderService(orderRepo, menuRepo, publisher, m, logger)
	menuService := service.NewMenuService(menuRepo, categoryRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	orderHandler := handler.NewOrderHandler(orderService, logger)
	menuHandler := handler.NewMenuHandler(menuService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	userHandler := handler.NewUserHandler(userService, logger)

	mux := router.New(orderHandler, menuHandler, categoryHandler, userHandler, m, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
