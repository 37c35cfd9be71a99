package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tuigames/fruitcatch/internal/config"
)

var flagShowConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the game would play with (custom path,
user config, local configs directory, embedded defaults) and prints it
as YAML. Useful as a starting point for a custom config file.`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom config YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagShowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
