package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Glyphs used for the scene.
const (
	platformGlyph = '█'
	playerGlyph   = '@'
	hudRows       = 1
)

// Camera maps world units onto a viewport of terminal cells.
// The y axis flips: world up is screen row zero.
type Camera struct {
	Center      core.Vec2
	ColsPerUnit float64
	RowsPerUnit float64
	Width       int // Viewport width in cells
	Height      int // Viewport height in cells
	OffsetY     int // Screen row where the viewport starts
}

// Project converts a world rectangle into a cell rectangle (x, y, w, h).
// Anything with a positive extent covers at least one cell.
func (c Camera) Project(r core.Rect) (x, y, w, h int) {
	cx, cy := c.Center.X(), c.Center.Y()
	halfW, halfH := float64(c.Width/2), float64(c.Height/2)

	x0 := math.Round((r.Left()-cx)*c.ColsPerUnit + halfW)
	x1 := math.Round((r.Right()-cx)*c.ColsPerUnit + halfW)
	y0 := math.Round((cy-r.Top())*c.RowsPerUnit + halfH)
	y1 := math.Round((cy-r.Bottom())*c.RowsPerUnit + halfH)

	x, y = int(x0), int(y0)+c.OffsetY
	w, h = core.Max(1, int(x1-x0)), core.Max(1, int(y1-y0))
	return x, y, w, h
}

// clip intersects a cell rectangle with the viewport.
func (c Camera) clip(x, y, w, h int) (int, int, int, int, bool) {
	x0 := core.Clamp(x, 0, c.Width)
	x1 := core.Clamp(x+w, 0, c.Width)
	y0 := core.Clamp(y, c.OffsetY, c.OffsetY+c.Height)
	y1 := core.Clamp(y+h, c.OffsetY, c.OffsetY+c.Height)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}

// fill draws a world rectangle clipped to the viewport.
func (c Camera) fill(s *core.Screen, r core.Rect, glyph rune, color core.Color) {
	x, y, w, h, ok := c.clip(c.Project(r))
	if !ok {
		return
	}
	s.FillRect(x, y, w, h, glyph, color)
}

// DrawScene renders the world onto s with the camera centered on the first
// player. The top row holds the HUD.
func DrawScene(s *core.Screen, w *game.World, cols, rows float64, status string) Camera {
	s.Clear()

	p := w.Player()
	cam := Camera{
		Center:      p.Position(),
		ColsPerUnit: cols,
		RowsPerUnit: rows,
		Width:       s.Width(),
		Height:      core.Max(0, s.Height()-hudRows),
		OffsetY:     hudRows,
	}

	for _, pl := range w.Platforms() {
		cam.fill(s, pl.Rect(), platformGlyph, core.ColorGreen)
	}

	for i, pl := range w.Players() {
		color := core.ColorYellow
		if pl.Grounded() {
			color = core.ColorCyan
		}
		if i > 0 {
			color = core.ColorGray
		}
		cam.fill(s, pl.Rect(), playerGlyph, color)
	}

	drawHUD(s, p, status)
	return cam
}

// drawHUD writes the player readout on the first row.
func drawHUD(s *core.Screen, p *game.Player, status string) {
	pos, jv := p.Position(), p.JumpVelocity()
	state := "air"
	if p.Grounded() {
		state = "ground"
	}

	hud := fmt.Sprintf(" pos %6.2f %6.2f  vel %6.2f %6.2f  %s", pos.X(), pos.Y(), jv.X(), jv.Y(), state)
	for i, r := range []rune(hud) {
		s.SetColored(i, 0, r, core.ColorBrightWhite)
	}
	if status != "" {
		x := s.Width() - len([]rune(status)) - 1
		for i, r := range []rune(status) {
			s.SetColored(x+i, 0, r, core.ColorGray)
		}
	}
}
