package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/secourse/clinic-scheduler/internal/api"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
	"github.com/secourse/clinic-scheduler/internal/core/service"
	"github.com/secourse/clinic-scheduler/internal/infrastructure/config"
	"github.com/secourse/clinic-scheduler/internal/infrastructure/idgen"
	"github.com/secourse/clinic-scheduler/internal/infrastructure/memory"
	"github.com/secourse/clinic-scheduler/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicd",
		Short: "Clinic account and appointment scheduling server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), envconfig.OsLookuper())
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String("port", "", "Listen port, overrides PORT")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ids, err := accountIDs(cfg.AccountIDs)
	if err != nil {
		return err
	}

	// Both services serialize mutations on the same lock.
	mu := &sync.Mutex{}
	dir := memory.NewAccountDirectory(ids)
	ledger := memory.NewAppointmentLedger()
	accounts := service.NewAccountService(dir, log.With().Str("component", "accounts").Logger(), service.WithLock(mu))
	scheduling := service.NewSchedulingService(dir, ledger, log.With().Str("component", "scheduling").Logger(), service.WithLock(mu))

	e := api.NewRouter(accounts, scheduling, log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("account_ids", cfg.AccountIDs.Strategy).
			Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func accountIDs(cfg config.AccountIDConfig) (ports.IDGenerator, error) {
	switch cfg.Strategy {
	case config.StrategySequence:
		return idgen.NewSequence(), nil
	case config.StrategyRandom:
		return idgen.NewRandomRetry(cfg.Range, nil), nil
	}
	return nil, fmt.Errorf("unknown account id strategy %q", cfg.Strategy)
}
