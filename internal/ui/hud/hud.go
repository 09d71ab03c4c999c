// Package hud draws the overlays painted above the playfield: the player's
// health bar and the minimap.
package hud

import (
	"image/color"

	"chosenoffset.com/skirmish/internal/render"
	"chosenoffset.com/skirmish/internal/simulation"
)

// Overlay colours
var (
	HealthFill     = color.RGBA{255, 0, 0, 255}
	HealthOutline  = color.RGBA{0, 0, 0, 255}
	MinimapBack    = color.RGBA{0, 0, 0, 128} // Black at 50% (premultiplied)
	MinimapPlayer  = color.RGBA{0, 128, 0, 255}
	MinimapEnemies = color.RGBA{255, 0, 0, 255}
)

// HealthBar shows health as a filled bar inside a fixed outline.
type HealthBar struct {
	X, Y          float32
	Width, Height float32 // Outline size
	PerPoint      float32 // Fill width per health point
}

// DefaultHealthBar returns a 200x20 bar at (20, 20) filling 2px per point.
func DefaultHealthBar() HealthBar {
	return HealthBar{X: 20, Y: 20, Width: 200, Height: 20, PerPoint: 2}
}

// Draw paints the bar for the given health. The fill is not clipped to the
// outline, and never drawn with a negative width.
func (h HealthBar) Draw(r render.Renderer, dst render.Image, health float64) {
	if fill := float32(health) * h.PerPoint; fill > 0 {
		r.FillRect(dst, h.X, h.Y, fill, h.Height, HealthFill)
	}
	r.StrokeRect(dst, h.X, h.Y, h.Width, h.Height, 1, HealthOutline)
}

// Minimap shows the player and live enemies as dots in a corner box.
type Minimap struct {
	Size       float32 // Box edge length
	Margin     float32 // Gap to the top and right canvas edges
	Scale      float32 // World to map scale
	PlayerDot  float32
	EnemiesDot float32
}

// DefaultMinimap returns a 100x100 map at scale 0.1, which covers a
// 1000x1000 world.
func DefaultMinimap() Minimap {
	return Minimap{Size: 100, Margin: 10, Scale: 0.1, PlayerDot: 4, EnemiesDot: 3}
}

// Origin returns the top-left corner of the box on a canvas of width w.
func (m Minimap) Origin(canvasWidth int) (x, y float32) {
	return float32(canvasWidth) - m.Size - m.Margin, m.Margin
}

// Draw paints the minimap. Dots are not clipped to the box, so entities
// outside the mapped world area land outside it.
func (m Minimap) Draw(r render.Renderer, dst render.Image, s *simulation.State) {
	w, _ := dst.Size()
	ox, oy := m.Origin(w)

	r.FillRect(dst, ox, oy, m.Size, m.Size, MinimapBack)

	p := s.Player.Pos
	r.FillRect(dst, ox+float32(p.X)*m.Scale, oy+float32(p.Y)*m.Scale, m.PlayerDot, m.PlayerDot, MinimapPlayer)

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}
		r.FillRect(dst, ox+float32(e.Pos.X)*m.Scale, oy+float32(e.Pos.Y)*m.Scale, m.EnemiesDot, m.EnemiesDot, MinimapEnemies)
	}
}
