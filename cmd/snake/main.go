// snake is a grid snake game for the terminal with a persistent leaderboard.
//
// Usage:
//
//	snake play [variant]     - Play in this terminal
//	snake list               - List rule variants
//	snake scores             - Show the leaderboard
//	snake serve              - Start SSH server for remote play
//	snake db init            - Create the score tables
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Settings file (default: ~/.snake/config.yaml)
//	--env-file <path>    - Dotenv file with SNAKE_* overrides (default: .env)
//	--db-driver <name>   - Score store: sqlite, mysql, memory
//	--db <path>          - SQLite database path
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn, error
//	--difficulty <name>  - easy, normal, hard
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagEnvFile    string
	flagDBDriver   string
	flagDBPath     string
	flagSeed       int64
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal grid game: steer the snake, eat food, grow,
and avoid the walls and your own tail. Every round is saved to a
shared leaderboard.

Available commands:
  play     - Play in this terminal
  list     - Show rule variants
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  db       - Manage the score database
  config   - Print the effective configuration

Examples:
  snake play
  snake play wrap --difficulty hard
  snake scores --limit 5
  snake serve --ssh :2222
  snake db init --sample`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Path to dotenv file (default .env, optional)")
	rootCmd.PersistentFlags().StringVar(&flagDBDriver, "db-driver", "", "Score store driver: sqlite, mysql, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the configuration and applies the global flags on top.
func loadSettings() (config.Settings, error) {
	cfg, err := config.Load(config.LoadOptions{Path: flagConfig, EnvFile: flagEnvFile})
	if err != nil {
		return cfg, err
	}

	if flagDBDriver != "" {
		cfg.Storage.Driver = flagDBDriver
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, cfg.Validate()
}

// newLogger returns a logger writing to w at the configured level.
func newLogger(cfg config.Settings, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           cfg.LogLevel(),
	})
}

// fileLogger opens the log file for interactive play, where stderr belongs
// to the alternate screen. Logging is discarded if the file can't be opened.
func fileLogger(cfg config.Settings) (*log.Logger, func()) {
	path := expandHome(cfg.Log.File)
	if path == "" {
		return newLogger(cfg, io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return newLogger(cfg, io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return newLogger(cfg, io.Discard), func() {}
	}
	return newLogger(cfg, f), func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
}

// openStore opens the configured score store.
func openStore(ctx context.Context, cfg config.Settings) (storage.Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*cfg.Storage.Timeout)
	defer cancel()
	return storage.Open(ctx, cfg.Storage)
}

// openSessionStore opens the configured store for game sessions. When it
// can't be opened yet, sessions get a store that keeps retrying, so players
// see the database as disconnected instead of losing scores silently.
func openSessionStore(ctx context.Context, cfg config.Settings, logger *log.Logger) storage.Backend {
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Warn("score store unavailable, will retry on demand",
			"driver", cfg.Storage.Driver, "err", err)
		return storage.NewLazy(cfg.Storage)
	}
	logger.Debug("score store opened", "driver", cfg.Storage.Driver)
	return store
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
