package game

import "testing"

type recordingRenderer struct {
	images []SpriteID
	texts  []string
}

func (r *recordingRenderer) DrawImage(s SpriteID, _, _ float64) { r.images = append(r.images, s) }
func (r *recordingRenderer) DrawText(v string, _, _ float64)    { r.texts = append(r.texts, v) }

type fixedMetrics float64

func (m fixedMetrics) MeasureText(string) float64 { return float64(m) }

func TestDisplayList_ReplayPreservesOrder(t *testing.T) {
	dl := &DisplayList{}
	dl.DrawImage(SpriteStars, 0, 0)
	dl.DrawText("12", 5, 30)
	dl.DrawImage(SpritePlayer, 150, 786)

	var rec recordingRenderer
	dl.Replay(&rec)
	if len(rec.images) != 2 || rec.images[0] != SpriteStars || rec.images[1] != SpritePlayer {
		t.Fatalf("unexpected images %v", rec.images)
	}
	if len(rec.texts) != 1 || rec.texts[0] != "12" {
		t.Fatalf("unexpected texts %v", rec.texts)
	}

	clone := dl.Clone()
	dl.Reset()
	if len(dl.Ops()) != 0 {
		t.Fatal("reset should empty the list")
	}
	if len(clone.Ops()) != 3 {
		t.Fatal("clone must not share storage with the source list")
	}
}

func TestDisplayList_CentresWithMetrics(t *testing.T) {
	ts := newQuietSim(t, WithEnemyAt(2, 650, 0))
	ts.Frames.Metrics = fixedMetrics(100)
	ts.Engine.Step(16)
	for _, op := range ts.Frames.Ops() {
		if op.Text == GameOverText {
			if op.X != 138 {
				t.Fatalf("banner x %.1f, want 138", op.X)
			}
			return
		}
	}
	t.Fatal("missing game over banner")
}

func TestEngine_RenderWithoutStep(t *testing.T) {
	ts := newQuietSim(t)
	var rec recordingRenderer
	ts.Engine.Render(&rec)
	if ts.Engine.Frame() != 0 {
		t.Fatal("Render must not advance the world")
	}
	want := []SpriteID{SpriteStars, SpritePlayer, SpriteAmmoStash}
	if len(rec.images) != len(want) {
		t.Fatalf("images %v, want %v", rec.images, want)
	}
	for i := range want {
		if rec.images[i] != want[i] {
			t.Fatalf("images %v, want %v", rec.images, want)
		}
	}
}
