package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagUser string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake in this terminal",
	Long: `Start a session: log in with a username, then play rounds until you quit.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R/Space      - Play again (after game over)
  L/Tab        - Leaderboard (after game over)
  Q/Esc        - End round / quit
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Exit immediately

Variants (see 'snake list'):
  classic  - Rules as configured (deadly walls by default)
  wrap     - Leaving the board re-enters on the opposite edge
  lethal   - Deadly walls regardless of configuration

Examples:
  snake play
  snake play wrap
  snake play --difficulty hard --user alice
  snake play --db-driver memory`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUser, "user", "", "Pre-fill the login prompt")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := registry.DefaultVariant
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	cfg, err := loadSettings()
	if err != nil {
		exitf("%v", err)
	}
	rules, err := registry.Rules(variant, cfg.GameRules())
	if err != nil {
		exitf("%v", err)
	}

	logger, closeLog := fileLogger(cfg)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if minW, minH := game.MinScreenSize(rules.Width, rules.Height); width < minW || height < minH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", width, height, minW, minH)
	}

	store := openSessionStore(cmd.Context(), cfg, logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(game.Options{
		Rules:    rules,
		Store:    store,
		Logger:   logger,
		Seed:     seed,
		Timeout:  cfg.Storage.Timeout,
		Username: flagUser,
	})
	if err != nil {
		store.Close()
		exitf("%v", err)
	}
	logger.Info("session started", "variant", variant, "seed", seed, "board", fmt.Sprintf("%dx%d", rules.Width, rules.Height))

	runErr := tui.Run(tui.Options{
		Session:  session,
		Logger:   logger,
		IdleRate: cfg.Rules.IdleRate,
		Width:    width,
		Height:   height,
	})

	// Close store before potential exit
	//nolint:errcheck // Best-effort close
	store.Close()

	if runErr != nil {
		closeLog()
		exitf("running game: %v", runErr)
	}
}
