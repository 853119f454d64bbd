package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search the catalog by title substring",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				movies, err := store.SearchByTitle(cmd.Context(), query, limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, map[string]any{"query": query, "results": movies})
				}

				out := cmd.OutOrStdout()
				if len(movies) == 0 {
					fmt.Fprintf(out, "No titles matching %q.\n", query)
					return nil
				}
				fmt.Fprintln(out, renderTable(out, movieTableHeaders, movieTableRows(movies), movieTableAligns))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
