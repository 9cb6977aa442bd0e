package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-catcher/internal/config"
	"github.com/vovakirdan/gem-catcher/internal/platform/tui"
	"github.com/vovakirdan/gem-catcher/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (arena when omitted).

Controls:
  W/S or Up/Down  - Move forward/back
  A/D             - Strafe left/right
  Left/Right      - Turn
  Space           - Jump
  P               - Return to the arena centre
  C               - Toggle ghost mode
  R               - Restart
  B/Esc           - Leave
  Q/Ctrl+C        - Quit

Variants:
  classic   - Boxes, gems, boost and levels
  treasure  - Classic plus treasure/trap boxes
  arena     - Everything: slabs, ramps, breaking boxes and lava

Difficulty options:
  easy   - Longer sessions, weaker lava, kinder traps
  normal - Tuning as configured
  hard   - Shorter sessions, more lava, harsher traps
  fixed  - Normal tuning without level progression

Examples:
  gemcatcher play
  gemcatcher play classic
  gemcatcher play arena --difficulty hard
  gemcatcher play treasure --config ./my-gems.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(config.VariantArena)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'gemcatcher list' to see available variants)", gameID)
	}

	logger, closer, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := setupGames(logger); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
