package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-catcher/internal/config"
	"github.com/vovakirdan/gem-catcher/internal/games/gems"
	"github.com/vovakirdan/gem-catcher/internal/registry"
)

var (
	flagSimDuration float64
	flagSimDT       float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a headless session on autopilot",
	Long: `Run a session without a terminal UI. An autopilot chases the nearest
pickup and jumps when blocked. Events are logged to stderr and a summary
is printed when the session ends.

The run stops when the countdown expires or after --duration simulated
seconds, whichever comes first (0 = until time is up).

Examples:
  gemcatcher simulate
  gemcatcher simulate classic --seed 42
  gemcatcher simulate arena --duration 60 --dt 0.05 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimDuration, "duration", 0, "Simulated seconds to run (0 = until time is up)")
	simulateCmd.Flags().Float64Var(&flagSimDT, "dt", 0, "Seconds per tick (0 = 1/fps)")
}

func runSimulate(_ *cobra.Command, args []string) error {
	gameID := string(config.VariantArena)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'gemcatcher list' to see available variants)", gameID)
	}

	logger, err := stderrLogger("simulate")
	if err != nil {
		return err
	}
	if err := setupGames(logger); err != nil {
		return err
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := created.(*gems.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run headless", gameID)
	}

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	dt := flagSimDT
	if dt <= 0 {
		dt = 1 / float64(max(cfg.TickRate, 1))
	}

	game.Reset(cfg)
	logger.Info("session started", "game", gameID, "seed", cfg.Seed, "config", game.Source(), "dt", dt)

	var pilot gems.Autopilot
	ticks, elapsed := 0, 0.0
	limit := math.Inf(1)
	if flagSimDuration > 0 {
		limit = flagSimDuration
	}
	for game.Snapshot().Running && elapsed < limit {
		game.Step(dt, pilot.Next(game.Snapshot(), dt))
		gems.LogEvents(logger, gameID, game.Events())
		ticks++
		elapsed += dt
	}

	snap := game.Snapshot()
	fmt.Printf("Variant:    %s\n", game.Title())
	fmt.Printf("Seed:       %d\n", cfg.Seed)
	fmt.Printf("Ticks:      %d (%.1fs simulated)\n", ticks, elapsed)
	fmt.Printf("Score:      %d\n", snap.Score)
	fmt.Printf("Level:      %d\n", snap.Level)
	fmt.Printf("Gems:       %d\n", snap.Collected)
	fmt.Printf("Time left:  %.1fs\n", max(0, snap.Remaining))
	if n := snap.Stats.PlacementFallbacks; n > 0 {
		fmt.Printf("Fallbacks:  %d\n", n)
	}
	return nil
}
