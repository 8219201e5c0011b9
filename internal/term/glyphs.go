package term

import (
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/gdamore/tcell/v2"
)

// glyph is ASCII art for one sprite. Spaces are transparent.
type glyph struct {
	lines []string
	style tcell.Style
}

var base = tcell.StyleDefault.Background(tcell.ColorBlack)

var glyphs = map[game.SpriteID]glyph{
	game.SpriteEnemy: {
		lines: []string{
			"   ||   ",
			"  (  )  ",
			" (    ) ",
			" /\\__/\\ ",
			"( o  o )",
			" ( =w= )",
		},
		style: base.Foreground(tcell.ColorOrange).Bold(true),
	},
	game.SpritePlayer: {
		lines: []string{
			"   /\\   ",
			"  /##\\  ",
		},
		style: base.Foreground(tcell.ColorAqua).Bold(true),
	},
	game.SpriteSkull: {
		lines: []string{
			"  .--.  ",
			"  (xx)  ",
		},
		style: base.Foreground(tcell.ColorWhite).Bold(true),
	},
	game.SpriteAmmo: {
		lines: []string{
			" [====] ",
		},
		style: base.Foreground(tcell.ColorYellow),
	},
	game.SpriteAmmoStash: {
		lines: []string{"[=]"},
		style: base.Foreground(tcell.ColorYellow),
	},
	game.SpriteMissile: {
		lines: []string{
			"   ^^   ",
			"   ||   ",
		},
		style: base.Foreground(tcell.ColorRed).Bold(true),
	},
}

var (
	starStyle = base.Foreground(tcell.ColorGray)
	textStyle = base.Foreground(tcell.ColorWhite).Bold(true)
	helpStyle = base.Foreground(tcell.ColorSilver)
)
