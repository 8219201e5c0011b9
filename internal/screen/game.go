package screen

import (
	"image/color"

	"github.com/Garsondee/Kitten-Dodge/internal/assets"
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// statusFrames is how long a status message stays up (~3s at 60 TPS).
const statusFrames = 180

// Game adapts a Driver to ebiten's Update/Draw callbacks. Update applies
// input and steps the engine, which records the frame into a display list;
// Draw replays that list.
type Game struct {
	driver *game.Driver
	engine *game.Engine
	frames *game.DisplayList
	feed   *game.EventFeed
	lib    *assets.Library
	log    *zap.Logger

	renderer *spriteRenderer
	width    int
	height   int

	showFeed    bool
	status      string
	statusUntil int
	ticks       int
}

// New wires a Game around an engine. The engine's renderer is replaced with
// the game's display list.
func New(e *game.Engine, lib *assets.Library, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	r := e.Rules()
	g := &Game{
		engine:   e,
		feed:     game.NewEventFeed(),
		lib:      lib,
		log:      log,
		renderer: newSpriteRenderer(lib, r.FontSize),
		width:    r.GameWidth,
		height:   r.GameHeight,
	}
	g.frames = &game.DisplayList{Metrics: g.renderer}
	e.SetRenderer(g.frames)
	e.Subscribe(g.feed.Push)
	g.driver = game.NewDriver(e, game.SystemClock, log)
	// Draw may run before the first Update.
	e.Render(g.frames)
	return g
}

// Driver exposes the session driver.
func (g *Game) Driver() *game.Driver { return g.driver }

// Feed exposes the event feed shown by the H overlay.
func (g *Game) Feed() *game.EventFeed { return g.feed }

func (g *Game) Update() error {
	g.ticks++
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showFeed = !g.showFeed
	}

	switch g.driver.State() {
	case game.StateIdle:
		g.driver.Start()
	case game.StateGameOver:
		g.handleGameOverKeys()
		return nil
	}

	for _, c := range pollCommands() {
		g.driver.Apply(c)
	}
	g.driver.Tick()
	return nil
}

func (g *Game) handleGameOverKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := setClipboardText(resultLine(g.engine)); err != nil {
			g.log.Warn("copy result failed", zap.Error(err))
			g.setStatus("copy failed")
		} else {
			g.setStatus("result copied")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.feed.Clear()
		g.driver.Restart()
		g.engine.Render(g.frames)
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.ticks + statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.renderer.target = screen
	g.frames.Replay(g.renderer)

	if g.showFeed {
		drawFeed(screen, g.feed, g.width)
	}
	if g.frames.Final {
		ebitenutil.DebugPrintAt(screen, "[R] again  [C] copy result  [Esc] quit", 60, g.height/2)
	}
	if g.status != "" && g.ticks < g.statusUntil {
		ebitenutil.DebugPrintAt(screen, g.status, 60, g.height/2+16)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
