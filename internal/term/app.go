package term

import (
	"context"
	"fmt"
	"time"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// frameInterval is the redraw and step cadence (~60 FPS).
const frameInterval = 16 * time.Millisecond

const (
	helpRunning  = "arrows/wasd move  space fire  q quit"
	helpGameOver = "r again  q quit"
)

// App runs a session on a tcell screen. Input and frame ticks are handled
// from one select loop, so the engine is only touched by one goroutine.
type App struct {
	screen   tcell.Screen
	engine   *game.Engine
	driver   *game.Driver
	frames   *game.DisplayList
	renderer *cellRenderer
	log      *zap.Logger
}

// NewApp wires an engine to an initialised screen. A nil clock means the
// system clock.
func NewApp(s tcell.Screen, e *game.Engine, clock game.Clock, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		screen:   s,
		engine:   e,
		driver:   game.NewDriver(e, clock, log),
		renderer: newCellRenderer(s, e.Rules()),
		log:      log,
	}
	a.frames = &game.DisplayList{Metrics: a.renderer}
	e.SetRenderer(a.frames)
	e.Render(a.frames)
	return a
}

// Driver exposes the session driver.
func (a *App) Driver() *game.Driver { return a.driver }

// commandForKey maps a key press to an engine command.
func commandForKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.CmdMoveLeft, true
	case tcell.KeyRight:
		return game.CmdMoveRight, true
	case tcell.KeyUp:
		return game.CmdMoveUp, true
	case tcell.KeyDown:
		return game.CmdMoveDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.CmdMoveLeft, true
		case 'd', 'D':
			return game.CmdMoveRight, true
		case 'w', 'W':
			return game.CmdMoveUp, true
		case 's', 'S':
			return game.CmdMoveDown, true
		case ' ':
			return game.CmdFire, true
		}
	}
	return game.CmdNone, false
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			if a.driver.State() == game.StateGameOver {
				a.driver.Restart()
				a.engine.Render(a.frames)
			}
			return true
		}
		if c, ok := commandForKey(ev); ok {
			a.driver.Apply(c)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Draw replays the last recorded frame plus the help line.
func (a *App) Draw() {
	a.screen.Clear()
	a.frames.Replay(a.renderer)
	help := helpRunning
	if a.frames.Final {
		help = helpGameOver
	}
	line := fmt.Sprintf("%-*s", a.renderer.cols, help)
	for i, r := range line {
		a.screen.SetContent(i, a.renderer.rows, r, nil, helpStyle)
	}
	a.screen.Show()
}

// Step advances one frame if the session is live.
func (a *App) Step() {
	a.driver.Tick()
}

// Run starts the session and loops until ctx is cancelled or the user quits.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.driver.Start()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info("quit requested",
					zap.Int("score", a.engine.DisplayScore()),
					zap.Stringer("state", a.driver.State()))
				return nil
			}
		case <-ticker.C:
			a.Step()
			a.Draw()
		}
	}
}
