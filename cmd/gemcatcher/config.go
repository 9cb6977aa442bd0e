package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-catcher/internal/config"
	"github.com/vovakirdan/gem-catcher/internal/games/gems"
)

var flagConfigVariant string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would run with, as YAML.

The file is resolved in this order:
  --config path -> ~/.gemcatcher/configs/gems.yaml -> ./configs/gems.yaml -> embedded

The difficulty preset and the variant's features are applied on top.
The source is reported on stderr, so the output can be saved as a starting point.

Examples:
  gemcatcher config > ~/.gemcatcher/configs/gems.yaml
  gemcatcher config --variant classic --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigVariant, "variant", string(config.VariantArena), "Variant whose features are applied")
}

func runConfig(_ *cobra.Command, _ []string) error {
	logger, err := stderrLogger("config")
	if err != nil {
		return err
	}
	if err := setupGames(logger); err != nil {
		return err
	}

	cfg, src, err := gems.LoadConfig(config.Variant(flagConfigVariant))
	if err != nil {
		return err
	}
	for _, skipped := range src.Skipped {
		logger.Warn("skipped config file", "error", skipped)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	_, err = os.Stdout.Write(data)
	return err
}
