package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/store"
)

func (a *app) userCmd() *cobra.Command {
	var (
		email string
		id    int64
	)

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up a user by email or id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			users := store.NewUsers(store.NewExecutor(pool))
			var u *domain.User
			if cmd.Flags().Changed("email") {
				u, err = users.FindByEmail(cmd.Context(), email)
			} else {
				u, err = users.FindByID(cmd.Context(), id)
			}
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return errors.New("user not found")
				}
				return err
			}
			return printJSON(cmd, u)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.MarkFlagsMutuallyExclusive("email", "id")
	cmd.MarkFlagsOneRequired("email", "id")
	return cmd
}
