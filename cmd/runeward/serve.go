package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calderforge/runeward/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Runeward SSH server",
	Long: `Start an SSH server that lets users connect and walk the ruin.

Each connection gets its own freshly generated episode; finished
episodes land in the server's shared history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runeward/host_key

Examples:
  runeward serve                           # Listen on :23234
  runeward serve --ssh :2222               # Listen on port 2222
  runeward serve --host-key ./my_host_key  # Use specific host key
  runeward serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        loadGameConfig(),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("cannot start SSH server: %w", err)
	}

	return server.ListenAndServe()
}
