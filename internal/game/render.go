package game

import (
	"math"
	"strconv"
)

// Renderer is the drawing sink a frame is handed to. Implementations must
// not retain the engine; everything they need arrives as arguments.
type Renderer interface {
	DrawImage(sprite SpriteID, x, y float64)
	DrawText(value string, x, y float64)
}

// TextMeasurer is optionally implemented by renderers that know their font
// metrics. It is used to centre the game over banner.
type TextMeasurer interface {
	MeasureText(value string) float64
}

// GameOverText is the banner drawn on the final frame.
const GameOverText = "GAME OVER"

// approxGlyphWidth is used for centring when the renderer cannot measure.
const approxGlyphWidth = 0.55

// DrawOp is one recorded draw call. Text is empty for image ops.
type DrawOp struct {
	Sprite SpriteID
	Text   string
	X, Y   float64
}

// IsText reports whether the op draws text.
func (op DrawOp) IsText() bool { return op.Sprite == "" }

// DisplayList is a Renderer that records draw calls so a frontend can
// replay the last completed frame from its own draw callback.
type DisplayList struct {
	ops   []DrawOp
	Final bool

	// Metrics, when set, supplies the replay target's font metrics.
	Metrics TextMeasurer
}

// MeasureText delegates to Metrics, falling back to an estimate.
func (d *DisplayList) MeasureText(value string) float64 {
	if d.Metrics != nil {
		return d.Metrics.MeasureText(value)
	}
	return estimateTextWidth(value, 30)
}

func estimateTextWidth(value string, fontSize float64) float64 {
	return float64(len(value)) * fontSize * approxGlyphWidth
}

func (d *DisplayList) DrawImage(sprite SpriteID, x, y float64) {
	d.ops = append(d.ops, DrawOp{Sprite: sprite, X: x, Y: y})
}

func (d *DisplayList) DrawText(value string, x, y float64) {
	d.ops = append(d.ops, DrawOp{Text: value, X: x, Y: y})
}

// Reset empties the list, keeping its backing storage.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
	d.Final = false
}

// Ops returns the recorded calls in draw order.
func (d *DisplayList) Ops() []DrawOp { return d.ops }

// Replay draws every recorded op onto r.
func (d *DisplayList) Replay(r Renderer) {
	for _, op := range d.ops {
		if op.IsText() {
			r.DrawText(op.Text, op.X, op.Y)
		} else {
			r.DrawImage(op.Sprite, op.X, op.Y)
		}
	}
}

// Clone returns an independent copy.
func (d *DisplayList) Clone() *DisplayList {
	out := &DisplayList{ops: make([]DrawOp, len(d.ops)), Final: d.Final, Metrics: d.Metrics}
	copy(out.ops, d.ops)
	return out
}

// drawFrame renders the world once. final selects the death overlay.
func (e *Engine) drawFrame(r Renderer, final bool) {
	if r == nil {
		return
	}
	if dl, ok := r.(*DisplayList); ok {
		dl.Reset()
		dl.Final = final
	}
	rules := e.rules

	r.DrawImage(SpriteStars, 0, 0)
	e.enemies.Each(func(_ int, en *Enemy) {
		drawEntity(r, en)
	})
	e.ammo.Each(func(_ int, a *Ammo) {
		drawEntity(r, a)
	})
	for _, m := range e.player.Missiles {
		drawEntity(r, m)
	}
	drawEntity(r, e.player)

	fs := float64(rules.FontSize)
	r.DrawText(strconv.Itoa(e.DisplayScore()), 5, fs)
	r.DrawImage(SpriteAmmoStash, 5, float64(rules.GameHeight-rules.FooterHeight))
	r.DrawText(strconv.Itoa(e.player.Ammo), 5+40, float64(rules.GameHeight-10))

	if final {
		w := estimateTextWidth(GameOverText, fs)
		if m, ok := r.(TextMeasurer); ok {
			w = m.MeasureText(GameOverText)
		}
		r.DrawText(GameOverText, math.Round(float64(rules.GameWidth)/2-w/2), fs)
	}
}

func drawEntity(r Renderer, ent Entity) {
	x, y := ent.Position()
	r.DrawImage(ent.Sprite(), x, y)
}
