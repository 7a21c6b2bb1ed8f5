package main

import (
	"github.com/spf13/cobra"

	"github.com/mitalikawde11/LightBnB/internal/query"
	"github.com/mitalikawde11/LightBnB/internal/service"
	"github.com/mitalikawde11/LightBnB/internal/store"
)

// searchFlags maps command-line flags to filter keys.
var searchFlags = []struct {
	flag  string
	key   query.Key
	usage string
}{
	{"city", query.KeyCity, "substring of the city name"},
	{"owner-id", query.KeyOwnerID, "only properties of this owner"},
	{"min-price", query.KeyMinPrice, "minimum price per night in dollars"},
	{"max-price", query.KeyMaxPrice, "maximum price per night in dollars"},
	{"min-rating", query.KeyMinRating, "minimum average rating (0-5)"},
}

func (a *app) searchCmd() *cobra.Command {
	var withCount bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties, cheapest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria, err := query.ParseCriteria(criteriaFromFlags(cmd))
			if err != nil {
				return err
			}
			limit := a.cfg.DefaultLimit
			if cmd.Flags().Changed("limit") {
				raw, _ := cmd.Flags().GetString("limit")
				if limit, err = query.ParseLimit(raw); err != nil {
					return err
				}
			}

			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			listings := service.NewListings(store.NewProperties(store.NewExecutor(pool)))
			if withCount {
				page, err := listings.SearchPage(cmd.Context(), criteria, limit)
				if err != nil {
					return err
				}
				return printJSON(cmd, page)
			}

			results, err := listings.Search(cmd.Context(), criteria, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, results)
		},
	}

	for _, f := range searchFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().String("limit", "", "maximum number of results (default from config)")
	cmd.Flags().BoolVar(&withCount, "count", false, "include the total number of matches")
	return cmd
}

// criteriaFromFlags returns the filter values of the flags the user set.
// A flag given an empty or zero value is still a constraint.
func criteriaFromFlags(cmd *cobra.Command) map[string]string {
	values := make(map[string]string)
	for _, f := range searchFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.flag)
		values[string(f.key)] = v
	}
	return values
}
