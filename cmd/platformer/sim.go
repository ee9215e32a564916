package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagSimFrames int
	flagSimDT     float64
	flagSimHold   string
	flagSimJumpAt []int
)

var simCmd = &cobra.Command{
	Use:   "sim [layout]",
	Short: "Run a headless simulation",
	Long: `Step the world without a terminal UI and print the player trace.

The held direction is pressed before the first frame and never released.
Jumps are pressed before the listed frames (1-based).

Examples:
  platformer sim
  platformer sim steps --frames 300 --hold right --jump-at 30,90
  platformer sim --dt 0.1 --frames 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 120, "Number of frames to simulate")
	simCmd.Flags().Float64Var(&flagSimDT, "dt", 1.0/60, "Seconds per frame")
	simCmd.Flags().StringVar(&flagSimHold, "hold", "", "Direction held for the whole run: left or right")
	simCmd.Flags().IntSliceVar(&flagSimJumpAt, "jump-at", nil, "Frames before which jump is pressed")
}

// simOptions describes a scripted run.
type simOptions struct {
	Frames int
	DT     float64
	Hold   core.Key
	JumpAt []int
}

// simFrame is one line of the trace.
type simFrame struct {
	Frame    int
	Position core.Vec2
	Velocity core.Vec2
	Grounded bool
	Contacts []game.Contact
}

// parseHold maps the --hold flag to a key.
func parseHold(s string) (core.Key, error) {
	if s == "" {
		return core.KeyNone, nil
	}
	k, ok := core.ParseKey(s)
	if !ok || (k != core.KeyLeft && k != core.KeyRight) {
		return core.KeyNone, fmt.Errorf("invalid --hold %q: want left or right", s)
	}
	return k, nil
}

// simulate runs the script against w and returns the per-frame trace.
func simulate(w *game.World, opts simOptions) []simFrame {
	jumps := make(map[int]bool, len(opts.JumpAt))
	for _, f := range opts.JumpAt {
		jumps[f] = true
	}

	if opts.Hold != core.KeyNone {
		w.KeyPressed(opts.Hold)
	}

	trace := make([]simFrame, 0, opts.Frames)
	for f := 1; f <= opts.Frames; f++ {
		if jumps[f] {
			w.KeyPressed(core.KeyJump)
		}
		contacts := w.Update(opts.DT)

		p := w.Player()
		trace = append(trace, simFrame{
			Frame:    f,
			Position: p.Position(),
			Velocity: p.JumpVelocity(),
			Grounded: p.Grounded(),
			Contacts: contacts,
		})
	}
	return trace
}

// printTrace writes the trace as aligned columns.
func printTrace(out io.Writer, trace []simFrame) {
	fmt.Fprintf(out, "%6s  %8s  %8s  %8s  %8s  %-6s  %s\n", "frame", "x", "y", "vx", "vy", "ground", "contacts")
	for _, f := range trace {
		var contacts []string
		for _, c := range f.Contacts {
			contacts = append(contacts, fmt.Sprintf("%d:%s", c.Platform, c.Side))
		}
		fmt.Fprintf(out, "%6d  %8.3f  %8.3f  %8.3f  %8.3f  %-6t  %s\n",
			f.Frame, f.Position.X(), f.Position.Y(), f.Velocity.X(), f.Velocity.Y(),
			f.Grounded, strings.Join(contacts, " "))
	}
}

func runSim(_ *cobra.Command, args []string) {
	cfg, _ := loadConfig()

	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}
	layout, err := registry.Resolve(explicit, cfg.PlatformSpecs(), cfg.Layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hold, err := parseHold(flagSimHold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimFrames <= 0 || flagSimDT <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames and --dt must be positive")
		os.Exit(1)
	}

	w := game.NewWorld(cfg.GamePhysics(), cfg.SpawnPoint(), layout.Platforms)
	trace := simulate(w, simOptions{
		Frames: flagSimFrames,
		DT:     flagSimDT,
		Hold:   hold,
		JumpAt: flagSimJumpAt,
	})

	fmt.Printf("Layout %s, %d frames at dt=%g\n\n", layout.ID, flagSimFrames, flagSimDT)
	printTrace(os.Stdout, trace)

	st := w.Stats()
	fmt.Println()
	fmt.Printf("Jumps: %d  Landings: %d  Head bumps: %d  Wall hits: %d\n",
		st.Jumps, st.Landings, st.HeadBumps, st.WallHits)
}
