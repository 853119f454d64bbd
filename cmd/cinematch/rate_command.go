package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	var liked bool

	cmd := &cobra.Command{
		Use:   "rate <user-id> <title> <score>",
		Short: "Record a user rating for a catalog movie",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || userID <= 0 {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			score, err := strconv.ParseFloat(args[2], 64)
			if err != nil || score < 0 || score > 10 {
				return fmt.Errorf("score must be between 0 and 10, got %q", args[2])
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				movie, err := store.GetByTitle(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				if movie == nil {
					return fmt.Errorf("no catalog movie titled %q; run `cinematch search` to find the exact title", args[1])
				}
				if err := store.AddRating(cmd.Context(), userID, movie.ID, score, liked); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f for %s (user %d)\n", score, movie.Title, userID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&liked, "liked", false, "Mark the movie as liked")
	return cmd
}
