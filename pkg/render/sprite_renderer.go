// pkg/render/sprite_renderer.go
package render

import (
	"strings"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

type frameKey struct {
	kind  assets.Kind
	frame int
}

// SpriteRenderer рисует сцену: спрайты из битмапов, тексты шрифтом HUD.
// Картинки кадров строятся лениво и кэшируются.
type SpriteRenderer struct {
	images   map[frameKey]*ebiten.Image
	fontFace font.Face
	palette  Palette
}

func NewSpriteRenderer(fontFace font.Face, palette Palette) *SpriteRenderer {
	return &SpriteRenderer{
		images:   make(map[frameKey]*ebiten.Image),
		fontFace: fontFace,
		palette:  palette,
	}
}

func (r *SpriteRenderer) image(kind assets.Kind, frame int) *ebiten.Image {
	key := frameKey{kind: kind, frame: frame}
	if img, ok := r.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(assets.Image(kind, frame, assets.Color(kind)))
	r.images[key] = img
	return img
}

// Draw заливает фон и рисует все видимые элементы сцены
func (r *SpriteRenderer) Draw(screen *ebiten.Image, sc *scene.Scene) {
	screen.Fill(r.palette.BackgroundColor)

	sc.EachVisible(func(s *component.Sprite) {
		r.drawSprite(screen, s)
	})
	for _, t := range sc.Texts() {
		if !t.Visible || t.Value == "" {
			continue
		}
		r.DrawText(screen, t.Value, t.X, t.Y)
	}
}

func (r *SpriteRenderer) drawSprite(screen *ebiten.Image, s *component.Sprite) {
	img := r.image(s.Kind, s.Frame)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.PixelScale, config.PixelScale)
	op.GeoM.Translate(s.X, s.Y)
	screen.DrawImage(img, op)
}

// DrawText рисует многострочный текст; (x, y) — левый верхний угол первой строки.
func (r *SpriteRenderer) DrawText(screen *ebiten.Image, value string, x, y float64) {
	metrics := r.fontFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	lines := strings.Split(strings.TrimRight(value, "\n"), "\n")
	for i, line := range lines {
		lx := int(x)
		ly := int(y) + ascent + i*lineHeight
		text.Draw(screen, line, r.fontFace, lx+1, ly+1, r.palette.ShadowColor)
		text.Draw(screen, line, r.fontFace, lx, ly, r.palette.TextColor)
	}
}
