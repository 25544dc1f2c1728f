// trek is the classic Star Trek mission game for the terminal.
//
// Usage:
//
//	trek play               - Take command of the Enterprise
//	trek serve              - Start SSH server for remote play
//	trek list [id]          - List recent missions or show one
//	trek scores [outcome]   - Show the best recorded missions
//	trek stats              - Show mission statistics by outcome
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for a reproducible galaxy
//	--db <path>           - Set database path (default: ~/.trek/missions.db)
//	--config <path>       - Load mission constants from a YAML file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--debug               - Log engine arithmetic and verify invariants
//
// Every global flag can also come from the environment (TREK_SEED, TREK_DB,
// TREK_CONFIG, TREK_DIFFICULTY, TREK_DEBUG) or a .env file in the working
// directory. Flags given on the command line win.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-trek/internal/config"
	"github.com/vovakirdan/tui-trek/internal/core"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trek",
	Short: "Star Trek - command the Enterprise from your terminal",
	Long: `Star Trek is the classic text mission game. Destroy the Klingon
fleet before the Federation deadline, using starbases to refit.

Available commands:
  play     - Start a mission
  serve    - Start SSH server for remote play
  list     - List recently flown missions
  scores   - View the best recorded missions
  stats    - View mission statistics by outcome

Examples:
  trek play
  trek play --seed 1701 --difficulty hard
  trek serve --ssh :2222
  trek scores victory`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// A missing .env is fine; the real environment still applies.
		_ = godotenv.Load()
		return applyEnv(cmd.Flags())
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trek/missions.db", "Path to mission database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mission config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log engine arithmetic and verify invariants after every command")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// envFlags maps environment variables to the global flags they default.
var envFlags = map[string]string{
	"TREK_SEED":       "seed",
	"TREK_DB":         "db",
	"TREK_CONFIG":     "config",
	"TREK_DIFFICULTY": "difficulty",
	"TREK_DEBUG":      "debug",
}

// applyEnv fills flags that were not set on the command line from the
// environment.
func applyEnv(flags *pflag.FlagSet) error {
	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// runtimeConfig collects the global flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:       flagSeed,
		Difficulty: string(config.ParseDifficulty(flagDifficulty)),
		Debug:      flagDebug,
	}
}

// loadMission loads the mission constants and applies the difficulty preset.
func loadMission(rc core.RuntimeConfig) (config.TrekConfig, error) {
	cfg, err := config.LoadTrek(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyTrekPreset(&cfg, config.DifficultyPreset(rc.Difficulty))
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the CLI logger. Debug mode lowers the level.
func newLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
