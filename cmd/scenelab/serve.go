package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenelab/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagDefault     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scene inspector SSH server",
	Long: `Start an SSH server that lets users connect and inspect examples.

Each SSH connection gets its own scene. The example is taken from the
SSH command, falling back to --example.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.scenelab/host_key

Examples:
  scenelab serve                           # Listen on :23234 with auto-generated key
  scenelab serve --ssh :2222               # Listen on port 2222
  scenelab serve --host-key ./my_host_key  # Use specific host key
  scenelab serve --example particles       # Default example for bare sessions

Users can connect with:
  ssh localhost -p 23234 -t animation`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDefault, "example", "basic", "Example shown when the session names none")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		DBPath:         flagDBPath,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
		DefaultExample: flagDefault,
		Runtime:        runtimeConfig(),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting scenelab SSH server on %s\n", cfg.Address)
	fmt.Fprintf(out, "Connect with: ssh localhost -p 23234 -t <example>\n")
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
