// internal/tui/renderer.go
package tui

import (
	"math"
	"strings"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/scene"

	"github.com/gdamore/tcell/v2"
)

// Глифы по виду спрайта, по одному на кадр анимации
var glyphs = map[assets.Kind][]rune{
	assets.KindPlayerShip:   {'A'},
	assets.KindPlayerBullet: {'|'},
	assets.KindEnemyBullet:  {'!'},
	assets.KindEnemyTier1:   {'w', 'm'},
	assets.KindEnemyTier2:   {'x', '+'},
	assets.KindEnemyTier3:   {'Y', 'V'},
	assets.KindEnemyTier4:   {'W', 'M'},
	assets.KindExplosion:    {'*', '.'},
}

// Glyph — символ для кадра frame вида k; неизвестный вид рисуется '?'.
func Glyph(k assets.Kind, frame int) rune {
	g, ok := glyphs[k]
	if !ok || len(g) == 0 {
		return '?'
	}
	if frame < 0 {
		frame = -frame
	}
	return g[frame%len(g)]
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// StyleFor — стиль ячейки для вида k
func StyleFor(k assets.Kind) tcell.Style {
	c := assets.Color(k)
	return tcell.StyleDefault.Foreground(rgb(c.R, c.G, c.B)).Background(backgroundColor())
}

func backgroundColor() tcell.Color {
	c := config.BackgroundColor
	return rgb(c.R, c.G, c.B)
}

// Renderer проецирует поле в сетку ячеек терминала. Каждый спрайт занимает
// хотя бы одну ячейку.
type Renderer struct {
	fieldWidth, fieldHeight float64
}

func NewRenderer(fieldWidth, fieldHeight float64) *Renderer {
	return &Renderer{fieldWidth: fieldWidth, fieldHeight: fieldHeight}
}

// Cell переводит точку поля в ячейку сетки cols x rows.
func (r *Renderer) Cell(x, y float64, cols, rows int) (int, int) {
	col := int(math.Floor(x * float64(cols) / r.fieldWidth))
	row := int(math.Floor(y * float64(rows) / r.fieldHeight))
	return clamp(col, 0, cols-1), clamp(row, 0, rows-1)
}

// cellSpan — диапазон ячеек [from, to) по одной оси
func cellSpan(start, end, field float64, cells int) (int, int) {
	from := int(math.Floor(start * float64(cells) / field))
	to := int(math.Ceil(end * float64(cells) / field))
	from = clamp(from, 0, cells-1)
	to = clamp(to, from+1, cells)
	return from, to
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw очищает экран, рисует видимые спрайты и тексты сцены и показывает кадр.
func (r *Renderer) Draw(screen tcell.Screen, sc *scene.Scene) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	screen.Fill(' ', tcell.StyleDefault.Background(backgroundColor()))

	sc.EachVisible(func(s *component.Sprite) {
		r.drawSprite(screen, s, cols, rows)
	})

	textStyle := StyleFor(assets.Kind(-1))
	for _, t := range sc.Texts() {
		if !t.Visible || t.Value == "" {
			continue
		}
		col, row := r.Cell(t.X, t.Y, cols, rows)
		lines := strings.Split(strings.TrimRight(t.Value, "\n"), "\n")
		for i, line := range lines {
			DrawString(screen, col, row+i, line, textStyle)
		}
	}
	screen.Show()
}

func (r *Renderer) drawSprite(screen tcell.Screen, s *component.Sprite, cols, rows int) {
	c0, c1 := cellSpan(s.X, s.X+s.Width, r.fieldWidth, cols)
	r0, r1 := cellSpan(s.Y, s.Y+s.Height, r.fieldHeight, rows)
	glyph := Glyph(s.Kind, s.Frame)
	style := StyleFor(s.Kind)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// DrawString пишет строку с ячейки (col, row), обрезая по правому краю.
func DrawString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	cols, rows := screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, ch := range s {
		if col >= cols {
			return
		}
		screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
