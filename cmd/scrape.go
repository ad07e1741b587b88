package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/enrich"
	"github.com/sells-group/enrich-cli/internal/scrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <website>",
	Short: "Scrape a firm website for office locations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scraper := newScraper()

		offices, err := scraper.ScrapeOffices(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		zap.L().Info("scrape complete",
			zap.String("website", args[0]),
			zap.Int("offices", len(offices)),
		)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(enrich.NormalizeOffices(offices))
	},
}

// newScraper builds a scraper from the loaded config.
func newScraper() *scrape.Scraper {
	return scrape.New(scrape.Options{
		UserAgent:         cfg.Scrape.UserAgent,
		Timeout:           cfg.Scrape.Timeout(),
		MaxBodyBytes:      int64(cfg.Scrape.MaxBodyKB) * 1024,
		MaxOffices:        cfg.Scrape.MaxOffices,
		RequestsPerSecond: cfg.Scrape.RequestsPerSecond,
	})
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
