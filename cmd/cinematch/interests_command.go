package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
	"cinematch/internal/interests"
)

func newInterestsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "interests <user-id>",
		Short: "Show a user's derived genre and keyword preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || userID <= 0 {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				finder := interests.NewFinder(store, cfg.Interests, nil)
				profile, err := finder.Find(cmd.Context(), userID)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"user_id":  userID,
						"genres":   profile.Genres,
						"keywords": profile.Keywords,
						"fallback": profile.Fallback,
					})
				}

				out := cmd.OutOrStdout()
				if profile.Fallback {
					fmt.Fprintf(out, "User %d has no ratings; showing catalog-wide popularity instead.\n", userID)
				}
				fmt.Fprintf(out, "Genres:   %s\n", strings.Join(profile.Genres, ", "))
				fmt.Fprintf(out, "Keywords: %s\n", strings.Join(profile.Keywords, ", "))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}
