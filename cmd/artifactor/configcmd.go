package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kreel/artifactor/config"
)

var (
	configPath string
	configRaw  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(configPath); err != nil {
			return err
		}
		fmt.Println("Configuration is valid")
		return nil
	},
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the resolved configuration in deterministic key order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configRaw {
			if configPath == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				discovered, err := config.Discover(cwd)
				if err != nil {
					return err
				}
				if discovered == "" {
					return fmt.Errorf("no config file found")
				}
				configPath = discovered
			}
			data, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			fmt.Print(string(data))
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		out, err := cfg.ToYAML()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: discover artifactor.yml)")
	configPrintCmd.Flags().BoolVar(&configRaw, "raw", false, "print the raw config file instead of the resolved settings")
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPrintCmd)
}
