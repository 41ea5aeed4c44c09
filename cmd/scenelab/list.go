package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenelab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available examples",
	Long:  `Shows a list of all examples registered in the lab.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	list := registry.List()
	out := cmd.OutOrStdout()

	if len(list) == 0 {
		fmt.Fprintln(out, "No examples available.")
		return
	}

	fmt.Fprintln(out, "Available examples:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range list {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print examples
	for _, e := range list {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'scenelab watch <id>' to inspect an example.")
}
