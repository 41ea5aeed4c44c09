package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/scenelab/internal/platform/tui"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/storage"
)

var flagWatchRecord bool

var watchCmd = &cobra.Command{
	Use:   "watch <example>",
	Short: "Inspect an example in the terminal",
	Long: `Run the example at --fps ticks per second and show its nodes in a
table that refreshes every tick.

Controls:
  P/Space    - Pause
  N          - Step one tick while paused
  R          - Restart with the same seed
  S          - Start/stop the particle emitter
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Examples:
  scenelab watch basic
  scenelab watch particles --fps 30
  scenelab watch animation --record`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&flagWatchRecord, "record", false, "Store the run in the database on restart and quit")
}

func runWatch(_ *cobra.Command, args []string) error {
	exampleID := args[0]

	// Check if example exists
	if !registry.Exists(exampleID) {
		return &registry.NotFoundError{Key: exampleID}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch needs a terminal; use 'scenelab run' for headless runs")
	}

	var store *storage.Store
	if flagWatchRecord {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database", "error", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	return tui.Run(exampleID, store, runtimeConfig())
}
