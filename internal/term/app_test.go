package term

import (
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(40, 31)
	t.Cleanup(screen.Fini)
	return screen
}

func quietEngine(t *testing.T) *game.Engine {
	t.Helper()
	r := game.DefaultRules()
	r.MaxEnemies = 0
	r.MaxAmmo = 0
	e, err := game.NewEngine(game.WithRules(r), game.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func rowText(s tcell.Screen, row, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := s.GetContent(x, row)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestCellRenderer_Mapping(t *testing.T) {
	screen := newTestScreen(t)
	r := newCellRenderer(screen, game.DefaultRules())
	if r.cols != 40 || r.rows != 30 {
		t.Fatalf("grid %dx%d, want 40x30", r.cols, r.rows)
	}
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{150, 786, 16, 26},
		{300, 29.9, 32, 0},
		{75, -156, 8, -6},
	}
	for _, tt := range tests {
		col, row := r.cell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("cell(%.1f, %.1f) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestCellRenderer_DrawsSpritesAndClips(t *testing.T) {
	screen := newTestScreen(t)
	r := newCellRenderer(screen, game.DefaultRules())
	r.DrawImage(game.SpritePlayer, 150, 786)
	if got := rowText(screen, 26, 40); !strings.Contains(got, "/\\") {
		t.Fatalf("player not drawn on row 26: %q", got)
	}
	// Partly above the top edge: only the visible rows are drawn.
	r.DrawImage(game.SpriteEnemy, 0, -120)
	if got := rowText(screen, 0, 8); !strings.Contains(got, "o  o") {
		t.Fatalf("expected the enemy face on row 0, got %q", got)
	}
	r.DrawText("42", 5, 30)
	if got := rowText(screen, 0, 40); !strings.Contains(got, "42") {
		t.Fatalf("score not drawn on row 0: %q", got)
	}
}

func TestApp_KeysDriveEngine(t *testing.T) {
	screen := newTestScreen(t)
	e := quietEngine(t)
	e.Player().Ammo = 1
	clock := game.NewManualClock()
	app := NewApp(screen, e, clock, nil)
	app.Driver().Start()

	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
	}
	for _, k := range keys {
		if !app.HandleEvent(k) {
			t.Fatalf("key %v should not quit", k.Name())
		}
	}
	if e.Player().Column != 1 {
		t.Fatalf("player in column %d, want 1", e.Player().Column)
	}
	if e.Player().Ammo != 0 || len(e.Player().Missiles) != 1 {
		t.Fatal("space should fire")
	}

	clock.Advance(16 * time.Millisecond)
	app.Step()
	app.Draw()
	if got := rowText(screen, 30, 40); !strings.Contains(got, "space fire") {
		t.Fatalf("help line missing: %q", got)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	screen := newTestScreen(t)
	app := NewApp(screen, quietEngine(t), game.NewManualClock(), nil)
	for _, k := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if app.HandleEvent(k) {
			t.Errorf("key %v should quit", k.Name())
		}
	}
}

func TestApp_RestartAfterGameOver(t *testing.T) {
	screen := newTestScreen(t)
	e := quietEngine(t)
	e.Enemies().Set(2, &game.Enemy{Column: 2, X: 150, Y: 650})
	clock := game.NewManualClock()
	app := NewApp(screen, e, clock, nil)
	app.Driver().Start()

	clock.Advance(16 * time.Millisecond)
	app.Step()
	if app.Driver().State() != game.StateGameOver {
		t.Fatalf("expected game over, got %s", app.Driver().State())
	}
	app.Draw()
	if got := rowText(screen, 0, 40); !strings.Contains(got, game.GameOverText) {
		t.Fatalf("banner missing from row 0: %q", got)
	}
	if got := rowText(screen, 30, 40); !strings.Contains(got, "r again") {
		t.Fatalf("game over help missing: %q", got)
	}

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if app.Driver().State() != game.StateRunning || e.Dead() {
		t.Fatal("r should start a new session")
	}
}
