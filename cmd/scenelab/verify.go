package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenelab/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <example>",
	Short: "Re-run an example and compare with its recorded digest",
	Long: `Simulate the example with the current --seed, --fps and --ticks and
compare the scene digest with the latest recorded run that used the same
parameters. Exits non-zero on mismatch or when nothing was recorded.

Examples:
  scenelab run particles --ticks 600 --record
  scenelab verify particles --ticks 600`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
}

// DigestMismatchError reports a run that no longer reproduces its record.
type DigestMismatchError struct {
	ExampleID string
	Want, Got uint64
}

func (e *DigestMismatchError) Error() string {
	return fmt.Sprintf("verify %s: digest %s, recorded %s",
		e.ExampleID, storage.FormatDigest(e.Got), storage.FormatDigest(e.Want))
}

// verifyRun compares a fresh simulation against the store.
func verifyRun(store *storage.Store, id string, ticks int) (storage.RunRecord, error) {
	cfg := runtimeConfig()
	rec, _, err := simulate(id, cfg, ticks, 0)
	if err != nil {
		return rec, err
	}

	prev, err := store.LatestRun(id, cfg.Seed, cfg.TickRate, ticks)
	if err != nil {
		return rec, err
	}
	if prev == nil {
		return rec, fmt.Errorf("verify %s: no recorded run for seed %d, fps %d, ticks %d",
			id, cfg.Seed, cfg.TickRate, ticks)
	}
	if prev.Digest != rec.Digest {
		return rec, &DigestMismatchError{ExampleID: id, Want: prev.Digest, Got: rec.Digest}
	}
	return rec, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := verifyRun(store, args[0], flagTicks)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok  %s  %s\n", rec.ExampleID, storage.FormatDigest(rec.Digest))
	return nil
}
