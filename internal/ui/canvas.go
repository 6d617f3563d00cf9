package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/mindful/internal/ambience"
	"github.com/ayoisaiah/mindful/internal/breathing"
)

// Box canvas units per terminal cell. Cells are about twice as tall as they
// are wide.
const (
	boxCellWidth  = 10
	boxCellHeight = 20

	boxCols = breathing.CanvasSize/boxCellWidth + 1
	boxRows = breathing.CanvasSize/boxCellHeight + 1
)

// Particle field size. Each cell is two columns wide to fit an emoji.
const (
	fieldCols = 20
	fieldRows = 8
)

type cell struct {
	style *lipgloss.Style
	glyph string
}

type canvas struct {
	cells [][]cell
	blank string
}

func newCanvas(cols, rows int, blank string) *canvas {
	c := &canvas{
		cells: make([][]cell, rows),
		blank: blank,
	}

	for r := range c.cells {
		c.cells[r] = make([]cell, cols)
	}

	return c
}

func (c *canvas) set(col, row int, glyph string, style *lipgloss.Style) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}

	c.cells[row][col] = cell{glyph: glyph, style: style}
}

// line draws an axis-aligned segment between two cells, inclusive.
func (c *canvas) line(c1, r1, c2, r2 int, glyph string, style *lipgloss.Style) {
	for col := min(c1, c2); col <= max(c1, c2); col++ {
		for row := min(r1, r2); row <= max(r1, r2); row++ {
			c.set(col, row, glyph, style)
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder

	for r, row := range c.cells {
		if r > 0 {
			b.WriteByte('\n')
		}

		for _, cl := range row {
			switch {
			case cl.glyph == "":
				b.WriteString(c.blank)
			case cl.style != nil:
				b.WriteString(cl.style.Render(cl.glyph))
			default:
				b.WriteString(cl.glyph)
			}
		}
	}

	return b.String()
}

func boxCell(p breathing.Point) (col, row int) {
	return (p.X + boxCellWidth/2) / boxCellWidth, (p.Y + boxCellHeight/2) / boxCellHeight
}

// drawBox renders the square, the side being traced and the marker.
func drawBox(v breathing.BoxView, s Styles) string {
	c := newCanvas(boxCols, boxRows, " ")

	var corners []breathing.Point

	for _, side := range []string{
		breathing.SideTop,
		breathing.SideRight,
		breathing.SideBottom,
		breathing.SideLeft,
	} {
		p, _ := breathing.Corner(side)
		corners = append(corners, p)
	}

	for i, from := range corners {
		to := corners[(i+1)%len(corners)]

		c1, r1 := boxCell(from)
		c2, r2 := boxCell(to)
		c.line(c1, r1, c2, r2, "·", &s.Canvas)
	}

	if v.Line != nil {
		c1, r1 := boxCell(v.Line.From)
		c2, r2 := boxCell(v.Line.To)

		glyph := "━"
		if c1 == c2 {
			glyph = "┃"
		}

		c.line(c1, r1, c2, r2, glyph, &s.Accent)
	}

	col, row := boxCell(v.Marker)
	c.set(col, row, "●", &s.Title)

	return c.String()
}

// drawParticles renders the live particles of the ambient visual.
func drawParticles(particles []ambience.Particle, now time.Time) string {
	c := newCanvas(fieldCols, fieldRows, "  ")

	for _, p := range particles {
		col := int(p.X / 100 * fieldCols)
		row := int(p.Y(now)*float64(fieldRows-1) + 0.5)

		c.set(col, row, p.Emoji, nil)
	}

	return c.String()
}
