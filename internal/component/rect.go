// internal/component/rect.go
package component

// Rect — ограничивающий прямоугольник, выровненный по осям.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty сообщает, что у прямоугольника нет площади.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect возвращает пересечение двух прямоугольников. Если они не
// пересекаются, результат пустой.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Overlaps — true, если пересечение непустое.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}
