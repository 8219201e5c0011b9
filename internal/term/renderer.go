package term

import (
	"math"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/gdamore/tcell/v2"
)

// Playfield to grid mapping: each lane is cellsPerColumn cells wide and
// every row covers unitsPerRow units of height.
const (
	cellsPerColumn = 8
	unitsPerRow    = 30
)

// cellRenderer draws engine output onto a tcell screen.
type cellRenderer struct {
	screen   tcell.Screen
	cols     int
	rows     int
	unitsPer float64 // horizontal units per cell
}

func newCellRenderer(s tcell.Screen, r game.Rules) *cellRenderer {
	return &cellRenderer{
		screen:   s,
		cols:     r.Columns() * cellsPerColumn,
		rows:     r.GameHeight / unitsPerRow,
		unitsPer: float64(r.ColumnWidth) / cellsPerColumn,
	}
}

// cell maps a playfield position to a grid cell. Positions above the top
// edge map to negative rows.
func (c *cellRenderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x / c.unitsPer)), int(math.Floor(y / unitsPerRow))
}

func (c *cellRenderer) put(col, row int, r rune, style tcell.Style) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

func (c *cellRenderer) DrawImage(sprite game.SpriteID, x, y float64) {
	if sprite == game.SpriteStars {
		c.drawStars()
		return
	}
	g, ok := glyphs[sprite]
	if !ok {
		return
	}
	col0, row0 := c.cell(x, y)
	for dy, line := range g.lines {
		for dx, r := range line {
			if r == ' ' {
				continue
			}
			c.put(col0+dx, row0+dy, r, g.style)
		}
	}
}

// DrawText treats y as a baseline, so the text sits on the row above it.
func (c *cellRenderer) DrawText(value string, x, y float64) {
	col, row := c.cell(x, y-1)
	for i, r := range value {
		c.put(col+i, row, r, textStyle)
	}
}

// MeasureText returns the width of value in playfield units.
func (c *cellRenderer) MeasureText(value string) float64 {
	return float64(len(value)) * c.unitsPer
}

func (c *cellRenderer) drawStars() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			r := ' '
			if (col*7+row*13)%23 == 0 {
				r = '.'
			}
			c.put(col, row, r, starStyle)
		}
	}
}
