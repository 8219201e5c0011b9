package screen

import (
	"github.com/Garsondee/Kitten-Dodge/internal/assets"
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the bitmap font used for score, ammo and banners, scaled up to
// the playfield font size.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// fontScale maps the 13px bitmap face to a target pixel size.
func fontScale(fontSize int) float64 {
	return float64(fontSize) / float64(basicfont.Face7x13.Height)
}

// spriteRenderer draws engine output onto an ebiten image. Text y is a
// baseline, as with canvas fillText.
type spriteRenderer struct {
	target *ebiten.Image
	lib    *assets.Library
	scale  float64
}

func newSpriteRenderer(lib *assets.Library, fontSize int) *spriteRenderer {
	return &spriteRenderer{lib: lib, scale: fontScale(fontSize)}
}

func (r *spriteRenderer) DrawImage(sprite game.SpriteID, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.target.DrawImage(r.lib.Image(sprite), op)
}

func (r *spriteRenderer) DrawText(value string, x, y float64) {
	ascent := hudFace.Metrics().HAscent
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.scale, r.scale)
	op.GeoM.Translate(x, y-ascent*r.scale)
	text.Draw(r.target, value, hudFace, op)
}

// MeasureText returns the drawn width of value in playfield units.
func (r *spriteRenderer) MeasureText(value string) float64 {
	return text.Advance(value, hudFace) * r.scale
}
