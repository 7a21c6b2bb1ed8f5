package main

import (
	"github.com/spf13/cobra"

	"github.com/mitalikawde11/LightBnB/internal/query"
	"github.com/mitalikawde11/LightBnB/internal/store"
)

func (a *app) reservationsCmd() *cobra.Command {
	var (
		guestID int64
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List a guest's reservations by start date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			out, err := store.NewReservations(store.NewExecutor(pool)).ListForGuest(cmd.Context(), guestID, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().Int64Var(&guestID, "guest-id", 0, "guest user id")
	cmd.Flags().IntVar(&limit, "limit", query.DefaultLimit, "maximum number of reservations")
	cmd.MarkFlagRequired("guest-id")
	return cmd
}
