package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/store"
)

func (a *app) addPropertyCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add-property",
		Short: "Create a property from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := readNewProperty(file)
			if err != nil {
				return err
			}

			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			created, err := store.NewProperties(store.NewExecutor(pool)).Create(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(cmd, created)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a property JSON document")
	cmd.MarkFlagRequired("file")
	return cmd
}

func readNewProperty(path string) (domain.NewProperty, error) {
	var p domain.NewProperty
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode %s: %w", path, err)
	}
	return p, nil
}
