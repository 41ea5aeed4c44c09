// scenelab runs the procedural scene examples headlessly or in a terminal
// inspector and keeps a ledger of run digests.
//
// Usage:
//
//	scenelab list                 - List available examples
//	scenelab run <example>        - Simulate an example without a UI
//	scenelab verify <example>     - Re-run and compare with the recorded digest
//	scenelab history [example]    - Show recorded runs
//	scenelab watch <example>      - Inspect an example in the terminal
//	scenelab serve                - Start SSH server serving the inspector
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed (default: 1)
//	--db <path>          - Set database path (default: ~/.scenelab/runs.db)
//	--config <path>      - Custom YAML for the animation/particles examples
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/examples"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "scenelab",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scenelab",
	Short: "Scene Lab - procedural 3D scene examples in your terminal",
	Long: `Scene Lab builds small procedural 3D scenes (a spinning cube, bouncing
spheres, a particle fountain...) and steps their simulations at a fixed
rate. Runs are deterministic for a given seed and tick rate.

Available commands:
  list     - Show all available examples
  run      - Simulate an example headlessly
  verify   - Check an example still reproduces its recorded digest
  history  - View recorded runs
  watch    - Interactive node inspector
  serve    - Start SSH server for remote inspection

Examples:
  scenelab list
  scenelab run particles --ticks 600 --record
  scenelab verify particles --ticks 600
  scenelab watch animation --seed 7
  scenelab serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		examples.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per simulated second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "RNG seed for reproducible runs")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scenelab/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom example config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig collects the global flags into the config examples see.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
