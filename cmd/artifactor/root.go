package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "artifactor",
	Short:         "Generate Jekyll HTML posts from article data",
	Long:          "Artifactor ingests web article URLs, extracts normalized article data, and emits deterministic Jekyll posts with YAML front matter.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(adaptersCmd)
	rootCmd.AddCommand(discoverCmd)
}
