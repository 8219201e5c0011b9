package assets

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
)

var (
	colSpace   = color.RGBA{8, 8, 24, 255}
	colStar    = color.RGBA{230, 230, 255, 255}
	colFur     = color.RGBA{240, 150, 60, 255}
	colFurDark = color.RGBA{180, 100, 30, 255}
	colEye     = color.RGBA{40, 200, 80, 255}
	colShip    = color.RGBA{80, 170, 255, 255}
	colBone    = color.RGBA{235, 235, 220, 255}
	colBlack   = color.RGBA{0, 0, 0, 255}
	colCrate   = color.RGBA{210, 190, 60, 255}
	colRocket  = color.RGBA{230, 60, 60, 255}
	colFlame   = color.RGBA{255, 200, 40, 255}
)

// stashSize is the ammo counter icon, drawn in the footer.
const stashSize = 40

// PlaceholderSize returns the sprite dimensions used for a generated image.
func PlaceholderSize(id game.SpriteID, r game.Rules) (w, h int) {
	switch id {
	case game.SpriteStars:
		return r.GameWidth, r.GameHeight
	case game.SpriteEnemy:
		return r.EnemyWidth, r.EnemyHeight
	case game.SpritePlayer, game.SpriteSkull:
		return r.PlayerWidth, r.PlayerHeight
	case game.SpriteAmmo:
		return r.AmmoWidth, r.AmmoHeight
	case game.SpriteAmmoStash:
		return stashSize, stashSize
	case game.SpriteMissile:
		return r.MissileWidth, r.MissileHeight
	default:
		return 1, 1
	}
}

// Placeholder draws a simple stand-in for a sprite that has no image file.
func Placeholder(id game.SpriteID, r game.Rules) *image.RGBA {
	w, h := PlaceholderSize(id, r)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	switch id {
	case game.SpriteStars:
		fillRect(img, 0, 0, w, h, colSpace)
		rng := rand.New(rand.NewSource(1975)) // #nosec G404 -- fixed star field
		for i := 0; i < w*h/900; i++ {
			img.SetRGBA(rng.Intn(w), rng.Intn(h), colStar)
		}
	case game.SpriteEnemy:
		drawKitten(img, w, h)
	case game.SpritePlayer:
		fillTriangle(img, w/2, 2, 4, h-8, w-4, h-8, colShip)
		fillRect(img, w/2-6, h-10, w/2+6, h-2, colFlame)
	case game.SpriteSkull:
		fillCircle(img, w/2, h/2-4, h/2-6, colBone)
		fillRect(img, w/2-10, h-14, w/2+10, h-4, colBone)
		fillCircle(img, w/2-8, h/2-6, 5, colBlack)
		fillCircle(img, w/2+8, h/2-6, 5, colBlack)
	case game.SpriteAmmo, game.SpriteAmmoStash:
		fillRect(img, 2, 2, w-2, h-2, colCrate)
		strokeRect(img, 2, 2, w-2, h-2, colFurDark)
		fillRect(img, w/2-3, 6, w/2+3, h-6, colRocket)
	case game.SpriteMissile:
		fillRect(img, w/2-4, 10, w/2+4, h-10, colRocket)
		fillTriangle(img, w/2, 0, w/2-6, 12, w/2+6, 12, colRocket)
		fillRect(img, w/2-3, h-10, w/2+3, h-2, colFlame)
	}
	return img
}

// drawKitten draws a falling cat, head down, so the lower half is the face.
func drawKitten(img *image.RGBA, w, h int) {
	fillRect(img, w/4, 0, w*3/4, h/2, colFurDark) // tail and body
	fillCircle(img, w/2, h/2, w/3, colFur)
	fillCircle(img, w/2, h*3/4, w/3, colFur)
	fillTriangle(img, w/2-w/3, h-4, w/2-w/3+4, h*3/4, w/2-6, h*3/4+8, colFur)
	fillTriangle(img, w/2+w/3, h-4, w/2+w/3-4, h*3/4, w/2+6, h*3/4+8, colFur)
	fillCircle(img, w/2-8, h*3/4+4, 4, colEye)
	fillCircle(img, w/2+8, h*3/4+4, 4, colEye)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	fillRect(img, x0, y0, x1, y0+1, c)
	fillRect(img, x0, y1-1, x1, y1, c)
	fillRect(img, x0, y0, x0+1, y1, c)
	fillRect(img, x1-1, y0, x1, y1, c)
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edge(x1, y1, x2, y2, x, y)
			w1 := edge(x2, y2, x0, y0, x, y)
			w2 := edge(x0, y0, x1, y1, x, y)
			inside := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
			if inside && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
