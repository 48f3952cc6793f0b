package core

import (
	"math"
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given position in the default colour.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a coloured rune at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a coloured string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillRect fills a cell rectangle with a coloured rune.
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetColored(cx, cy, r, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1

	s.Set(x, y, '┌')
	s.Set(right, y, '┐')
	s.Set(x, bottom, '└')
	s.Set(right, bottom, '┘')

	for cx := x + 1; cx < right; cx++ {
		s.Set(cx, y, '─')
		s.Set(cx, bottom, '─')
	}
	for cy := y + 1; cy < bottom; cy++ {
		s.Set(x, cy, '│')
		s.Set(right, cy, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// String converts the screen buffer to an uncoloured string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Viewport maps a logical playfield onto a rectangle of screen cells.
// X and Y are scaled independently so the whole playfield is always visible.
type Viewport struct {
	Left, Top  int     // Cell offset of the playfield on screen
	Cols, Rows int     // Cells available for the playfield
	LogicalW   float64 // Playfield width in logical units
	LogicalH   float64 // Playfield height in logical units
}

// NewViewport creates a viewport for the given cell area and logical size.
func NewViewport(left, top, cols, rows int, logicalW, logicalH float64) Viewport {
	return Viewport{
		Left:     left,
		Top:      top,
		Cols:     Max(cols, 1),
		Rows:     Max(rows, 1),
		LogicalW: logicalW,
		LogicalH: logicalH,
	}
}

// ScaleX returns cells per logical unit horizontally.
func (v Viewport) ScaleX() float64 {
	return float64(v.Cols) / v.LogicalW
}

// ScaleY returns cells per logical unit vertically.
func (v Viewport) ScaleY() float64 {
	return float64(v.Rows) / v.LogicalH
}

// ToCell converts a logical point to screen cell coordinates.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.Left + int(math.Floor(x*v.ScaleX()))
	cy := v.Top + int(math.Floor(y*v.ScaleY()))
	return cx, cy
}

// Project converts a logical rectangle into a cell rectangle.
// The result is always at least one cell wide and tall.
func (v Viewport) Project(r Rect) (x, y, w, h int) {
	x, y = v.ToCell(r.X, r.Y)
	x2 := v.Left + int(math.Ceil(r.Right()*v.ScaleX()))
	y2 := v.Top + int(math.Ceil(r.Bottom()*v.ScaleY()))
	return x, y, Max(x2-x, 1), Max(y2-y, 1)
}

// Clip intersects a cell rectangle with the viewport area.
// A zero width or height means nothing is visible.
func (v Viewport) Clip(x, y, w, h int) (int, int, int, int) {
	x2, y2 := Min(x+w, v.Left+v.Cols), Min(y+h, v.Top+v.Rows)
	x, y = Max(x, v.Left), Max(y, v.Top)
	return x, y, Max(x2-x, 0), Max(y2-y, 0)
}

// LogicalX converts a column on screen to a logical x coordinate.
func (v Viewport) LogicalX(col int) float64 {
	return float64(col-v.Left) * v.LogicalW / float64(v.Cols)
}

// Contains reports whether a cell lies inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= v.Left && col < v.Left+v.Cols && row >= v.Top && row < v.Top+v.Rows
}
