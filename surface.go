package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one terminal character of the drawing surface.
type cell struct {
	ch  rune
	fg  color.RGBA
	set bool
}

// Surface is the drawing area: a grid of terminal cells addressed in
// world units, cellWidth x cellHeight world units per cell.
type Surface struct {
	cols, rows int
	cells      [][]cell
	styles     map[color.RGBA]lipgloss.Style
}

func NewSurface(cols, rows int) *Surface {
	s := &Surface{styles: make(map[color.RGBA]lipgloss.Style)}
	s.Resize(cols, rows)
	return s
}

func (s *Surface) Role() Role { return RoleCanvas }

// Resize reallocates the grid. Existing content is dropped; the
// caller re-renders after a resize.
func (s *Surface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols = cols
	s.rows = rows
	s.cells = make([][]cell, rows)
	for i := range s.cells {
		s.cells[i] = make([]cell, cols)
	}
}

// Clear resets every cell to blank. Dimensions are unchanged.
func (s *Surface) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{}
		}
	}
}

func (s *Surface) Cols() int { return s.cols }
func (s *Surface) Rows() int { return s.rows }

func (s *Surface) WorldWidth() float64  { return float64(s.cols) * cellWidth }
func (s *Surface) WorldHeight() float64 { return float64(s.rows) * cellHeight }

func (s *Surface) plot(col, row int, ch rune, c color.RGBA) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	s.cells[row][col] = cell{ch: ch, fg: c, set: true}
}

func toCell(p vec) (int, int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// DrawLine plots a straight segment between two world points.
func (s *Surface) DrawLine(a, b vec, c color.RGBA) {
	x0, y0 := toCell(a)
	x1, y1 := toCell(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.plot(x0, y0, '█', c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *Surface) StrokeTriangle(t triangle, c color.RGBA) {
	s.DrawLine(t[0], t[1], c)
	s.DrawLine(t[1], t[2], c)
	s.DrawLine(t[2], t[0], c)
}

// FillTriangle paints the interior with a horizontal scan per cell
// row: each row's centerline is intersected with the triangle edges
// and the span between the outermost crossings is filled.
func (s *Surface) FillTriangle(t triangle, c color.RGBA) {
	minY := math.Min(t[0].Y, math.Min(t[1].Y, t[2].Y))
	maxY := math.Max(t[0].Y, math.Max(t[1].Y, t[2].Y))

	rowStart := int(math.Floor(minY / cellHeight))
	rowEnd := int(math.Floor(maxY / cellHeight))

	edges := [3][2]vec{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}

	for row := rowStart; row <= rowEnd; row++ {
		y := (float64(row) + 0.5) * cellHeight

		minX := math.Inf(1)
		maxX := math.Inf(-1)
		hit := false
		for _, e := range edges {
			a, b := e[0], e[1]
			if a.Y == b.Y {
				continue
			}
			if (y < a.Y && y < b.Y) || (y > a.Y && y > b.Y) {
				continue
			}
			x := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
			hit = true
		}
		if !hit {
			continue
		}

		colStart := int(math.Floor(minX / cellWidth))
		colEnd := int(math.Floor(maxX / cellWidth))
		for col := colStart; col <= colEnd; col++ {
			s.plot(col, row, '█', c)
		}
	}
}

// CellCount reports how many cells are currently drawn.
func (s *Surface) CellCount() int {
	n := 0
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x].set {
				n++
			}
		}
	}
	return n
}

func (s *Surface) styleFor(c color.RGBA) lipgloss.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	s.styles[c] = st
	return st
}

// Lines returns the surface as styled terminal rows.
func (s *Surface) Lines() []string {
	out := make([]string, s.rows)
	for y := 0; y < s.rows; y++ {
		var row strings.Builder
		for x := 0; x < s.cols; x++ {
			cl := s.cells[y][x]
			if !cl.set {
				row.WriteByte(' ')
				continue
			}
			row.WriteString(s.styleFor(cl.fg).Render(string(cl.ch)))
		}
		out[y] = row.String()
	}
	return out
}

// PlainLines returns the surface rows without any styling, for text
// export and the clipboard snapshot.
func (s *Surface) PlainLines() []string {
	out := make([]string, s.rows)
	for y := 0; y < s.rows; y++ {
		var row strings.Builder
		for x := 0; x < s.cols; x++ {
			cl := s.cells[y][x]
			if !cl.set {
				row.WriteByte(' ')
				continue
			}
			row.WriteRune(cl.ch)
		}
		out[y] = row.String()
	}
	return out
}
