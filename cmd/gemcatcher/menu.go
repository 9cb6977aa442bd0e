package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-catcher/internal/platform/tui"
	"github.com/vovakirdan/gem-catcher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start Gem Catcher in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Leaving a game (B/Esc) returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  gemcatcher menu
  gemcatcher menu --fps 30
  gemcatcher menu --difficulty easy --log-file ./gemcatcher.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := setupGames(logger); err != nil {
		return err
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, runCfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}

		// Loop back to menu
	}
}
