package screen

import (
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held keys repeat like a browser keydown: once on press, then after
// repeatDelay ticks every repeatInterval ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

var keyBindings = []struct {
	key ebiten.Key
	cmd game.Command
}{
	{ebiten.KeyArrowLeft, game.CmdMoveLeft},
	{ebiten.KeyA, game.CmdMoveLeft},
	{ebiten.KeyArrowRight, game.CmdMoveRight},
	{ebiten.KeyD, game.CmdMoveRight},
	{ebiten.KeyArrowUp, game.CmdMoveUp},
	{ebiten.KeyW, game.CmdMoveUp},
	{ebiten.KeyArrowDown, game.CmdMoveDown},
	{ebiten.KeyS, game.CmdMoveDown},
	{ebiten.KeySpace, game.CmdFire},
}

// repeatFires reports whether a key held for duration ticks emits a command
// this tick.
func repeatFires(duration int) bool {
	switch {
	case duration == 1:
		return true
	case duration < repeatDelay:
		return false
	default:
		return (duration-repeatDelay)%repeatInterval == 0
	}
}

// pollCommands returns the commands generated by the keyboard this tick, in
// binding order.
func pollCommands() []game.Command {
	var cmds []game.Command
	for _, b := range keyBindings {
		if repeatFires(inpututil.KeyPressDuration(b.key)) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
