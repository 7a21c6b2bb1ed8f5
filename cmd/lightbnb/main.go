package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/mitalikawde11/LightBnB/internal/config"
	"github.com/mitalikawde11/LightBnB/internal/db"
	"github.com/mitalikawde11/LightBnB/internal/logging"
)

type app struct {
	configPath string
	cfg        *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lightbnb",
		Short:         "LightBnB listings data access",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			cmd.SetContext(logging.WithCorrelationID(cmd.Context(), logging.NewCorrelationID()))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default ./config.yaml)")

	root.AddCommand(
		a.migrateCmd(),
		a.searchCmd(),
		a.userCmd(),
		a.reservationsCmd(),
		a.addPropertyCmd(),
	)
	return root
}

func (a *app) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(ctx, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
