package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trek/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagRateLimit   float64
	flagRateBurst   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Star Trek SSH server",
	Long: `Start an SSH server that lets users connect and command their own ship.

Sessions with a terminal get the full-screen console; sessions without
one (ssh -T) play in plain line mode. Every finished mission is recorded
in the server's database under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trek/host_key

Examples:
  trek serve                           # Listen on :23234 with auto-generated key
  trek serve --ssh :2222               # Listen on port 2222
  trek serve --host-key ./my_host_key  # Use specific host key
  trek serve --difficulty hard         # Every session plays hard missions
  trek serve --rate-limit 0            # Do not limit reconnects

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().Float64Var(&flagRateLimit, "rate-limit", 10, "Sessions per minute allowed from one host (0 = unlimited)")
	serveCmd.Flags().IntVar(&flagRateBurst, "rate-burst", 5, "Sessions one host may open back to back")
}

func runServe(_ *cobra.Command, _ []string) {
	rc := runtimeConfig()

	game, err := loadMission(rc)
	if err != nil {
		fatalf("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		Difficulty:  rc.Difficulty,
		RateLimit: tui.RateLimitConfig{
			PerMinute: flagRateLimit,
			Burst:     flagRateBurst,
		},
		Logger: newLogger(os.Stderr, "trek-ssh", rc.Debug),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting Star Trek SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
