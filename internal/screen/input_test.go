package screen

import (
	"testing"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
)

func TestRepeatFires(t *testing.T) {
	var fired []int
	for d := 0; d <= repeatDelay+2*repeatInterval; d++ {
		if repeatFires(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, repeatDelay, repeatDelay + repeatInterval, repeatDelay + 2*repeatInterval}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired at %v, want %v", fired, want)
		}
	}
}

func TestKeyBindingsCoverEveryCommand(t *testing.T) {
	seen := map[game.Command]bool{}
	for _, b := range keyBindings {
		seen[b.cmd] = true
	}
	for _, c := range []game.Command{game.CmdMoveLeft, game.CmdMoveRight, game.CmdMoveUp, game.CmdMoveDown, game.CmdFire} {
		if !seen[c] {
			t.Errorf("no key bound to %s", c)
		}
	}
}

func TestResultLine(t *testing.T) {
	e, err := game.NewEngine(game.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	e.Step(1234)
	want := "Kitten Dodge: scored 12, struck in lane 2 after 1 frames"
	if got := resultLine(e); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
