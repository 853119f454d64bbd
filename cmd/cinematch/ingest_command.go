package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinematch/internal/catalog"
	"cinematch/internal/config"
	"cinematch/internal/scraper"
	"cinematch/internal/tmdb"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var pages int
	var skipEnrich bool

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Scrape top movies into the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				logger, err := ctx.newLogger()
				if err != nil {
					return err
				}
				if pages > 0 {
					cfg.Scraper.MaxPages = pages
				}

				var searcher tmdb.Searcher
				if !skipEnrich {
					if strings.TrimSpace(cfg.TMDB.APIKey) == "" {
						fmt.Fprintln(cmd.ErrOrStderr(), "No TMDB API key configured; skipping keyword enrichment.")
					} else {
						client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
						if err != nil {
							return err
						}
						searcher = client
					}
				}

				fetcher := scraper.New(cfg.Scraper, logger)
				ing := scraper.NewIngestor(cfg, fetcher, store, searcher, logger)
				report, err := ing.Run(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(),
					"Ingest complete: scraped %d, enriched %d, added %d (session %s)\n",
					report.Scraped, report.Enriched, report.Added, report.SessionID)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 0, "Number of list pages to scrape (default from config)")
	cmd.Flags().BoolVar(&skipEnrich, "skip-enrich", false, "Skip TMDB keyword enrichment")
	return cmd
}
