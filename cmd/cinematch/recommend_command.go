package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinematch/internal/advisor"
	"cinematch/internal/catalog"
	"cinematch/internal/config"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend movies similar to a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				if limit <= 0 {
					limit = cfg.Advisor.DefaultLimit
				}
				adv := advisor.New(store, advisor.Options{FuzzyThreshold: cfg.Advisor.FuzzyThreshold})

				resolved, err := adv.Resolve(cmd.Context(), query)
				if err != nil {
					return err
				}
				if resolved == nil {
					if jsonOut {
						return writeJSON(cmd, map[string]any{"query": query, "results": []catalog.Movie{}})
					}
					fmt.Fprintf(cmd.OutOrStdout(), "No match for %q in the catalog.\n", query)
					return nil
				}

				movies, err := adv.Recommend(cmd.Context(), query, limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"query":    query,
						"resolved": resolved.Title,
						"results":  movies,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Because you watched %s (%d):\n", resolved.Title, resolved.ReleaseYear)
				if len(movies) == 0 {
					fmt.Fprintln(out, "No similar movies found.")
					return nil
				}
				fmt.Fprintln(out, renderTable(out, movieTableHeaders, movieTableRows(movies), movieTableAligns))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of recommendations")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
