package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/enrich-cli/internal/enrich"
	"github.com/sells-group/enrich-cli/internal/model"
)

var (
	batchInput       string
	batchOutput      string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Enrich firms from a CSV file",
	Long:  "Reads firms from a CSV (name, firm_type, address, phone, services, funds; services and funds are semicolon-separated) and enriches them concurrently. Results are written as JSON lines in input order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := readBatchCSV(batchInput)
		if err != nil {
			return err
		}
		if len(reqs) == 0 {
			return eris.New("batch: no firms in input")
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.MaxConcurrentFirms
		}

		zap.L().Info("starting batch enrichment",
			zap.Int("firms", len(reqs)),
			zap.Int("concurrency", concurrency),
		)

		results := make([]model.EnrichResponse, len(reqs))
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(concurrency)
		for i, req := range reqs {
			i, req := i, req
			g.Go(func() error {
				results[i] = enrich.Enrich(req)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return eris.Wrap(err, "batch: create output")
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		enc := json.NewEncoder(out)
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return eris.Wrap(err, "batch: write result")
			}
		}

		zap.L().Info("batch enrichment complete", zap.Int("firms", len(results)))
		return nil
	},
}

// readBatchCSV loads enrichment requests from a CSV file. A header row is
// required; column order is fixed.
func readBatchCSV(path string) ([]model.EnrichRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "batch: open input")
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Skip header.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, eris.Wrap(err, "batch: read header")
	}

	var reqs []model.EnrichRequest
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "batch: read record")
		}
		reqs = append(reqs, requestFromRecord(record))
	}
	return reqs, nil
}

// requestFromRecord maps a CSV row to an enrichment request. Missing
// trailing columns are tolerated.
func requestFromRecord(record []string) model.EnrichRequest {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}
	return model.EnrichRequest{
		FirmName: field(0),
		FirmType: field(1),
		HQ: model.Office{
			Address: field(2),
			Phone:   field(3),
		},
		Services: splitList(field(4)),
		Funds:    splitList(field(5)),
	}
}

// splitList parses a semicolon-separated cell.
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(cell, ";") {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "CSV file of firms to enrich")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output file (default stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent firms (default from config)")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}
