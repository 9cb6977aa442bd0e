// gemcatcher is a terminal arena game: steer a ball around a walled floor
// and collect gems before the clock runs out.
//
// Usage:
//
//	gemcatcher list                 - List available variants
//	gemcatcher play [variant]       - Play a variant (default: arena)
//	gemcatcher menu                 - Pick variants interactively
//	gemcatcher serve                - Start SSH server for remote play
//	gemcatcher simulate [variant]   - Run a headless session on autopilot
//	gemcatcher config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible sessions
//	--config <path>        - Use a custom gems.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file while the TUI runs
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gem-catcher/internal/config"
	"github.com/vovakirdan/gem-catcher/internal/core"
	"github.com/vovakirdan/gem-catcher/internal/games/gems"
	"github.com/vovakirdan/gem-catcher/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemcatcher",
	Short: "Gem Catcher - collect gems in a terminal arena",
	Long: `Gem Catcher is a terminal arena game. Roll around a walled floor,
jump onto boxes, slabs and ramps and collect gems before time runs out.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  simulate  - Run a headless session on autopilot
  config    - Print the effective configuration

Examples:
  gemcatcher play
  gemcatcher play classic --difficulty easy
  gemcatcher menu --log-file ./gemcatcher.log
  gemcatcher serve --ssh :2222
  gemcatcher simulate treasure --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gems config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setupGames applies the config flags to the gems package.
func setupGames(logger *log.Logger) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	gems.SetConfigPath(flagConfig)
	gems.SetDifficultyPreset(preset)
	gems.SetLogger(logger)
	return nil
}

// tuiLogger logs to --log-file, or nowhere when it is unset.
func tuiLogger() (*log.Logger, io.Closer, error) {
	return logging.OpenFile(flagLogFile, "gemcatcher", flagLogLevel)
}

// stderrLogger logs to stderr for commands that do not own the terminal.
func stderrLogger(prefix string) (*log.Logger, error) {
	return logging.New(os.Stderr, prefix, flagLogLevel)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
