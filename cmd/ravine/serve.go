package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/game"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server for remote play",
	Long: `Start an SSH server that lets users connect and fly.

Each connection gets its own game session; the flight log is shared
server-wide.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ravine/host_key

Examples:
  ravine serve                           # Listen on :23234
  ravine serve --ssh :2222               # Listen on port 2222
  ravine serve --host-key ./my_host_key  # Use a specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (empty = config value)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = config value)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.DBPath = cfg.DBPath
	srvCfg.TickRate = cfg.TickRate
	srvCfg.GameOptions = game.Options{
		ShowObjective: cfg.ShowObjective,
		Debug:         cfg.Debug,
	}
	if cfg.SSH.Address != "" {
		srvCfg.Address = cfg.SSH.Address
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	srvCfg.HostKeyPath = cfg.SSH.HostKeyPath
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if cfg.SSH.IdleTimeoutMinutes > 0 {
		srvCfg.IdleTimeout = time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting ravine SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
