package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-trek/internal/assets"
	"github.com/vovakirdan/tui-trek/internal/core"
	"github.com/vovakirdan/tui-trek/internal/platform/console"
	"github.com/vovakirdan/tui-trek/internal/platform/tui"
	"github.com/vovakirdan/tui-trek/internal/storage"
	"github.com/vovakirdan/tui-trek/internal/trek"
)

var (
	flagLineMode  bool
	flagAssetsDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a mission",
	Long: `Take command of the Enterprise.

Commands are typed at the prompt:
  nav  srs  lrs  pha  tor  shi  dam  com  xxx

On a terminal the game runs in a full-screen console; with --line or
when input is piped it reads one answer per line.

Difficulty options:
  easy   - Ten extra days, weaker Klingons
  normal - The classic mission
  hard   - Five fewer days, tougher Klingons
  fixed  - Use the config file exactly as written

Examples:
  trek play
  trek play --seed 1701
  trek play --difficulty hard
  trek play --line < orders.txt
  trek play --config ./my-trek.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagLineMode, "line", false, "Use the plain line console even on a terminal")
	playCmd.Flags().StringVar(&flagAssetsDir, "assets", "", "Directory with text/<name>.txt overrides for the narrative")
}

func runPlay(_ *cobra.Command, _ []string) {
	rc := runtimeConfig()

	cfg, err := loadMission(rc)
	if err != nil {
		fatalf("%v", err)
	}

	res := assets.New()
	if flagAssetsDir != "" {
		res = assets.NewFS(os.DirFS(flagAssetsDir))
	}
	if err := res.Verify(); err != nil {
		fatalf("%v", err)
	}

	interactive := !flagLineMode &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	// The full-screen console owns stdout and stderr.
	logOut := io.Writer(os.Stderr)
	if interactive {
		logOut = io.Discard
		if rc.Debug {
			f, logErr := openDebugLog()
			if logErr != nil {
				fatalf("%v", logErr)
			}
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut, "trek", rc.Debug)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open mission database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := playerName()
	session := &trek.Session{
		Config:    cfg,
		Resources: res,
		Seed:      rc.Seed,
		Options: []trek.Option{
			trek.WithLogger(logger),
			trek.WithDebug(rc.Debug),
		},
		OnMission: func(seed int64, g *trek.Game) {
			saveMission(store, logger, player, seed, rc, g.Result())
		},
	}

	if !interactive {
		con := console.New(os.Stdin, os.Stdout)
		session.Console = con
		session.Run()
		//nolint:errcheck // Nothing left to report to
		con.Flush()
		return
	}

	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	runErr := tui.Run(func(con core.Console) {
		session.Console = con
		session.Run()
	}, width, height)
	if runErr != nil {
		fatalf("running mission: %v", runErr)
	}
}

// saveMission records a finished mission. Best effort: the game goes on
// without a database.
func saveMission(store *storage.Store, logger *log.Logger, player string, seed int64, rc core.RuntimeConfig, r trek.Result) {
	logger.Debug("mission ended", "seed", seed, "outcome", r.Status, "efficiency", r.Efficiency)

	if store == nil {
		return
	}
	if _, err := store.SaveResult(player, seed, rc.Difficulty, r); err != nil {
		logger.Warn("could not save mission", "error", err)
	}
}

// playerName names local missions after the OS account.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

func openDebugLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".trek")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open debug log %s: %w", path, err)
	}
	return f, nil
}
