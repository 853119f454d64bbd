package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog database utilities",
	}

	catalogCmd.AddCommand(newCatalogInitCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	catalogCmd.AddCommand(newCatalogDoctorCommand(ctx))
	catalogCmd.AddCommand(newCatalogClearCommand(ctx))

	return catalogCmd
}

func newCatalogInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the catalog database and schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog ready at %s\n", store.Path())
				return nil
			})
		},
	}
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog counts and the top-ranked title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, stats)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Movies:         %d\n", stats.Movies)
				fmt.Fprintf(out, "Ratings:        %d\n", stats.Ratings)
				fmt.Fprintf(out, "Average rating: %.2f\n", stats.AverageRating)
				if stats.TopTitle != "" {
					fmt.Fprintf(out, "Top title:      %s\n", stats.TopTitle)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}

func newCatalogDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check catalog health and disk space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				health, err := store.CheckHealth(cmd.Context())
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database:       %s\n", health.DBPath)
				fmt.Fprintf(out, "Exists:         %s\n", yesNo(health.DatabaseExists))
				fmt.Fprintf(out, "Readable:       %s\n", yesNo(health.DatabaseReadable))
				fmt.Fprintf(out, "Schema present: %s\n", yesNo(health.TableExists))
				fmt.Fprintf(out, "Movies:         %d\n", health.TotalMovies)
				fmt.Fprintf(out, "Integrity:      %s\n", yesNo(health.IntegrityCheck))
				if health.Error != "" {
					fmt.Fprintf(out, "Error:          %s\n", health.Error)
				}

				free, total, diskErr := diskSpace(cfg.Paths.DataDir)
				if diskErr != nil {
					fmt.Fprintf(out, "Disk:           unavailable (%v)\n", diskErr)
				} else {
					fmt.Fprintf(out, "Disk:           %.1f GiB free of %.1f GiB\n",
						float64(free)/(1<<30), float64(total)/(1<<30))
				}

				if err != nil {
					return err
				}
				if !health.DatabaseReadable || !health.TableExists || !health.IntegrityCheck {
					return errors.New("catalog health check failed")
				}
				return nil
			})
		},
	}
}

func newCatalogClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every movie and rating from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("catalog clear is destructive; pass --force to confirm")
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog cleared. Removed %d movies.\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")
	return cmd
}

func diskSpace(path string) (free, total uint64, err error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	blockSize := uint64(stat.Bsize)
	return stat.Bavail * blockSize, stat.Blocks * blockSize, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
