package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout",
	Long: `Start playing the given layout, or the one named in the config.

Controls:
  A/Left, D/Right  - Move
  Space/W/Up       - Jump (only when standing on a platform)
  Esc              - Reset to the spawn point
  P                - Pause
  Ctrl+S           - Screenshot
  ?                - Help
  Q/Ctrl+C         - Quit

Terminals do not report key releases: a movement key counts as held while
it keeps repeating and is released after input.hold_window seconds. The
window must be longer than the terminal's key repeat delay, otherwise a held
key briefly stops at the start of every hold.

Examples:
  platformer play
  platformer play steps
  platformer play --config ./my-level.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the world when the config file changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	layout := ""
	if len(args) > 0 {
		layout = args[0]
		if !registry.Exists(layout) {
			fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layout)
			fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available layouts.")
			os.Exit(1)
		}
	}

	cfg, src := loadConfig()

	logger, closer := openFileLogger(flagLogLevel)
	defer closer.Close()

	var watcher *config.Watcher
	if flagWatch {
		if src == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; using embedded defaults without reload")
		} else {
			w, err := config.NewWatcher(src)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not watch %s: %v\n", src, err)
			} else {
				watcher = w
				defer watcher.Close()
				logger.Info("watching config", "path", watcher.Path())
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.GameOptions{
		Config:    cfg,
		Layout:    layout,
		Store:     store,
		Logger:    logger,
		Runtime:   runtimeConfig(),
		Watcher:   watcher,
		Clipboard: true,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}
