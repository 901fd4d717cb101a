package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagVariant     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent session. The SSH user
name pre-fills the login prompt. All players share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --db-driver mysql         # Share a MySQL leaderboard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagVariant, "variant", registry.DefaultVariant, "Rule variant for every connection")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings()
	if err != nil {
		exitf("%v", err)
	}
	rules, err := registry.Rules(flagVariant, cfg.GameRules())
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger(cfg, os.Stderr)
	store := openSessionStore(cmd.Context(), cfg, logger)

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Rules = rules
	srvCfg.StoreTimeout = cfg.Storage.Timeout
	srvCfg.IdleRate = cfg.Rules.IdleRate

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		store.Close()
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()

	//nolint:errcheck // Best-effort close
	store.Close()

	if serveErr != nil {
		exitf("server: %v", serveErr)
	}
}
