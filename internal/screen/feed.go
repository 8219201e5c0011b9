package screen

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedLineHeight = 14
	feedLines      = 10
	feedTop        = 40
)

var (
	colFeedPanel  = color.RGBA{R: 10, G: 12, B: 20, A: 200}
	colFeedTitle  = color.RGBA{R: 20, G: 24, B: 44, A: 255}
	colFeedRecent = color.RGBA{R: 34, G: 40, B: 70, A: 160}
	colFeedBorder = color.RGBA{R: 60, G: 70, B: 120, A: 200}
)

// feedDotColour tags an entry by kind.
func feedDotColour(k game.EventKind) color.RGBA {
	switch k {
	case game.EventKill:
		return color.RGBA{R: 240, G: 150, B: 60, A: 255}
	case game.EventCollect, game.EventFire:
		return color.RGBA{R: 210, G: 190, B: 60, A: 255}
	case game.EventDeath:
		return color.RGBA{R: 230, G: 60, B: 60, A: 255}
	default:
		return color.RGBA{R: 90, G: 110, B: 160, A: 255}
	}
}

// drawFeed renders the most recent feed entries as a panel over the top of
// the playfield, newest at the bottom.
func drawFeed(screen *ebiten.Image, feed *game.EventFeed, width int) {
	entries := feed.Recent(feedLines)
	panelH := float32(16 + feedLines*feedLineHeight + 4)
	w := float32(width - 8)

	vector.FillRect(screen, 4, feedTop, w, panelH, colFeedPanel, false)
	vector.StrokeRect(screen, 4, feedTop, w, panelH, 1.0, colFeedBorder, false)
	vector.FillRect(screen, 4, feedTop, w, 16, colFeedTitle, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  [H] hide", 12, feedTop+1)

	recent := 3
	y := feedTop + 18
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, 6, float32(y), w-4, feedLineHeight, colFeedRecent, false)
		}
		vector.FillRect(screen, 9, float32(y+4), 3, 5, feedDotColour(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Frame, e.Message), 16, y)
		y += feedLineHeight
	}
}
