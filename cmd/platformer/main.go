// platformer is a minimal 2D platformer that runs in the terminal.
//
// Usage:
//
//	platformer list              - List available layouts
//	platformer play [layout]     - Play a layout
//	platformer menu              - Pick layouts interactively
//	platformer sim [layout]      - Run a headless simulation and print the trace
//	platformer stats [layout]    - Show recent runs and totals
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: $XDG_DATA_HOME/platformer/runs.db)
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A minimal platformer in your terminal",
	Long: `Platformer is a terminal 2D platformer: a square player runs and jumps
across rectangular platforms under gravity.

Available commands:
  list     - Show all layouts
  play     - Play a layout directly
  menu     - Interactive layout picker
  sim      - Headless simulation trace
  stats    - Recent runs and totals
  serve    - Start SSH server for remote play

Examples:
  platformer list
  platformer play classic
  platformer play --config ./my-level.yaml --watch
  platformer sim --frames 120 --hold right --jump-at 10
  platformer serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", filepath.Join(xdg.DataHome, "platformer", "runs.db"), "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() (config.PlatformerConfig, string) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, src
}
