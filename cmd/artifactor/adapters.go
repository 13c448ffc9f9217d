package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kreel/artifactor/sources"
)

var (
	explainURL     string
	explainFixture string
)

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "Inspect the extraction adapter registry",
}

var adaptersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered adapters in selection order",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := sources.DefaultRegistry(sources.DefaultOptions())
		for _, a := range registry.All() {
			meta := a.Metadata()
			fmt.Printf("%-10s priority=%-4d %s\n", meta.Name, meta.Priority, meta.Description)
			fmt.Printf("%-10s matches: %s\n", "", strings.Join(meta.MatchPatterns, ", "))
		}
		return nil
	},
}

var adaptersExplainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show how each adapter responds to a URL",
	Long:  "Reports, for every registered adapter, whether it matches the URL and, when an HTML fixture is supplied, whether extraction succeeds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		html := ""
		if explainFixture != "" {
			data, err := os.ReadFile(explainFixture)
			if err != nil {
				return fmt.Errorf("failed to read HTML fixture: %w", err)
			}
			html = string(data)
		}

		registry := sources.DefaultRegistry(sources.DefaultOptions())
		traces := registry.DebugSelection(explainURL, html)

		out, err := json.MarshalIndent(traces, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	adaptersExplainCmd.Flags().StringVar(&explainURL, "url", "", "URL to test against the registry")
	adaptersExplainCmd.Flags().StringVar(&explainFixture, "html-fixture", "", "HTML file used to test extraction")
	adaptersExplainCmd.MarkFlagRequired("url")
	adaptersCmd.AddCommand(adaptersListCmd)
	adaptersCmd.AddCommand(adaptersExplainCmd)
}
