package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/app"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/config"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/logging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/seed"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "clinic-office-service",
		Short:         "Healthcare office administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the seed fixture the server would start with",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = os.Getenv("SEED_FILE")
			}
			fixture, err := seed.Load(file)
			if err != nil {
				return err
			}
			out, err := fixture.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Seed fixture to load (defaults to SEED_FILE, then the built-in fixture)")
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Env, cfg.LogLevel)

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize application")
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("server failed")
			return err
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("error releasing resources")
	}

	logger.Info().Msg("server stopped")
	return nil
}
