package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kreel/artifactor/article"
	"github.com/kreel/artifactor/generator"
)

var (
	scaffoldOut     string
	scaffoldFixture string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate a sample post from an article fixture",
	Long:  "Reads a JSON fixture representing an article and generates a Jekyll HTML post with YAML front matter.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := article.LoadFixture(scaffoldFixture)
		if err != nil {
			return err
		}

		gen := generator.New()
		postsDir := filepath.Join(scaffoldOut, "_posts")
		path, err := gen.GeneratePost(a, postsDir)
		if err != nil {
			return err
		}

		fmt.Printf("Generated post: %s\n", path)
		fmt.Printf("  Title: %s\n", a.Title)
		fmt.Printf("  Date: %s\n", a.Date)
		fmt.Printf("  Source: %s\n", a.Source)
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldOut, "out", "site", "output directory for the Jekyll site")
	scaffoldCmd.Flags().StringVar(&scaffoldFixture, "fixture", "", "path to a JSON article fixture")
	scaffoldCmd.MarkFlagRequired("fixture")
}
