package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mitalikawde11/LightBnB/internal/db"
	"github.com/mitalikawde11/LightBnB/internal/logging"
)

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			var err error
			switch direction {
			case "up":
				err = db.MigrateUp(a.cfg.DatabaseURL)
			case "down":
				err = db.MigrateDown(a.cfg.DatabaseURL)
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", direction, err)
			}

			logging.Ctx(cmd.Context()).Info().Str("direction", direction).Msg("migrations applied")
			return nil
		},
	}
}
