package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/enrich-cli/internal/enrich"
	"github.com/sells-group/enrich-cli/internal/model"
)

var (
	enrichProfile   string
	enrichName      string
	enrichType      string
	enrichAddress   string
	enrichPhone     string
	enrichServices  []string
	enrichFunds     []string
	enrichAboutOnly bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a single firm profile",
	Long:  "Reads a firm profile from a JSON file or flags, enriches it, and prints the result as JSON (or just the About paragraph with --about-only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildEnrichRequest()
		if err != nil {
			return err
		}

		resp := enrich.Enrich(req)

		if enrichAboutOnly {
			fmt.Fprintln(cmd.OutOrStdout(), resp.About)
			return nil
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

// buildEnrichRequest assembles the request from --profile or the individual
// flags. Flags override fields read from the file.
func buildEnrichRequest() (model.EnrichRequest, error) {
	var req model.EnrichRequest

	if enrichProfile != "" {
		data, err := os.ReadFile(enrichProfile)
		if err != nil {
			return req, eris.Wrap(err, "enrich: read profile")
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, eris.Wrap(err, "enrich: parse profile")
		}
	}

	if enrichName != "" {
		req.FirmName = enrichName
	}
	if enrichType != "" {
		req.FirmType = enrichType
	}
	if enrichAddress != "" {
		req.HQ.Address = enrichAddress
	}
	if enrichPhone != "" {
		req.HQ.Phone = enrichPhone
	}
	if len(enrichServices) > 0 {
		req.Services = trimAll(enrichServices)
	}
	if len(enrichFunds) > 0 {
		req.Funds = trimAll(enrichFunds)
	}

	return req, nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func init() {
	enrichCmd.Flags().StringVar(&enrichProfile, "profile", "", "path to a JSON enrichment request")
	enrichCmd.Flags().StringVar(&enrichName, "name", "", "firm name")
	enrichCmd.Flags().StringVar(&enrichType, "type", "", "firm type, e.g. \"private equity\"")
	enrichCmd.Flags().StringVar(&enrichAddress, "address", "", "headquarters address")
	enrichCmd.Flags().StringVar(&enrichPhone, "phone", "", "headquarters phone")
	enrichCmd.Flags().StringSliceVar(&enrichServices, "services", nil, "services offered")
	enrichCmd.Flags().StringSliceVar(&enrichFunds, "funds", nil, "fund types serviced")
	enrichCmd.Flags().BoolVar(&enrichAboutOnly, "about-only", false, "print only the generated About paragraph")
	rootCmd.AddCommand(enrichCmd)
}
