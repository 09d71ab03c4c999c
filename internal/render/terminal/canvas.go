// Package terminal is a render backend that draws the logical canvas onto
// the character cells of a terminal using tcell.
package terminal

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/skirmish/internal/render"
)

// cellWriter is the part of tcell.Screen a canvas flushes into.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas is a render.Image backed by a grid of cell colours. Drawing uses
// logical canvas coordinates which are scaled down onto the grid.
type Canvas struct {
	cols, rows int
	width      float64 // Logical size
	height     float64
	cells      []colorful.Color
}

// NewCanvas creates a cols x rows grid showing a logical width x height area.
func NewCanvas(cols, rows, width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows, width, height)
	return c
}

// Resize changes the grid and logical size, clearing the contents when the
// grid changes.
func (c *Canvas) Resize(cols, rows, width, height int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		c.cells = make([]colorful.Color, cols*rows)
	}
	c.width, c.height = float64(width), float64(height)
}

// Grid returns the cell dimensions.
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Cell returns the colour of the cell at col, row.
func (c *Canvas) Cell(col, row int) colorful.Color {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return colorful.Color{}
	}
	return c.cells[row*c.cols+col]
}

// Bounds returns the logical bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(c.width), int(c.height))
}

// Size returns the logical width and height.
func (c *Canvas) Size() (width, height int) {
	return int(c.width), int(c.height)
}

// Fill paints every cell with clr.
func (c *Canvas) Fill(clr color.Color) {
	c.blendRange(0, 0, c.cols, c.rows, clr)
}

// Clear resets every cell to black.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = colorful.Color{}
	}
}

// Dispose drops the cell grid.
func (c *Canvas) Dispose() {
	c.cells = nil
	c.cols, c.rows = 0, 0
}

// fillRect paints every cell the logical rectangle touches.
func (c *Canvas) fillRect(x, y, w, h float64, clr color.Color) {
	x0, y0, x1, y1, ok := c.cellRange(x, y, w, h)
	if !ok {
		return
	}
	c.blendRange(x0, y0, x1, y1, clr)
}

// strokeRect paints the border cells of the logical rectangle. Cells are far
// coarser than any stroke width, so the outline is always one cell thick.
func (c *Canvas) strokeRect(x, y, w, h float64, clr color.Color) {
	x0, y0, x1, y1, ok := c.cellRange(x, y, w, h)
	if !ok {
		return
	}
	c.blendRange(x0, y0, x1, y0+1, clr)
	c.blendRange(x0, y1-1, x1, y1, clr)
	c.blendRange(x0, y0+1, x0+1, y1-1, clr)
	c.blendRange(x1-1, y0+1, x1, y1-1, clr)
}

// cellRange maps a logical rectangle to the half-open cell range it covers.
// Any rectangle with positive area covers at least one cell.
func (c *Canvas) cellRange(x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	if w <= 0 || h <= 0 || c.width <= 0 || c.height <= 0 {
		return 0, 0, 0, 0, false
	}
	sx := float64(c.cols) / c.width
	sy := float64(c.rows) / c.height

	x0 = int(math.Floor(x * sx))
	y0 = int(math.Floor(y * sy))
	x1 = int(math.Ceil((x + w) * sx))
	y1 = int(math.Ceil((y + h) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = clampSpan(x0, x1, c.cols)
	y0, y1 = clampSpan(y0, y1, c.rows)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func clampSpan(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

// blendRange composites clr over the half-open cell range using its alpha.
func (c *Canvas) blendRange(x0, y0, x1, y1 int, clr color.Color) {
	src, alpha, ok := toColorful(clr)
	if !ok {
		return
	}
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			i := row*c.cols + col
			if alpha >= 1 {
				c.cells[i] = src
			} else {
				c.cells[i] = c.cells[i].BlendRgb(src, alpha)
			}
		}
	}
}

// toColorful splits clr into its straight colour and alpha.
func toColorful(clr color.Color) (colorful.Color, float64, bool) {
	_, _, _, a := clr.RGBA()
	if a == 0 {
		return colorful.Color{}, 0, false
	}
	src, _ := colorful.MakeColor(clr)
	return src, float64(a) / 0xffff, true
}

// Flush writes every cell to dst as a space with the cell colour as
// background.
func (c *Canvas) Flush(dst cellWriter) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			r, g, b := c.cells[row*c.cols+col].Clamped().RGB255()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			dst.SetContent(col, row, ' ', nil, style)
		}
	}
}

// Renderer implements render.Renderer for Canvas images.
type Renderer struct{}

// NewRenderer creates a terminal renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// NewImage creates a canvas whose grid matches its logical size.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewCanvas(width, height, width, height)
}

// FillRect draws a filled rectangle on the destination canvas.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	dst.(*Canvas).fillRect(float64(x), float64(y), float64(width), float64(height), clr)
}

// StrokeRect draws a rectangle outline on the destination canvas.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	if strokeWidth <= 0 {
		return
	}
	dst.(*Canvas).strokeRect(float64(x), float64(y), float64(width), float64(height), clr)
}
