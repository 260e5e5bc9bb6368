// internal/component/movement.go
package component

// GameObject — общая часть всех сущностей: позиция, скорость по осям и
// прикреплённые спрайты. Размер задаётся первым спрайтом и после
// создания не меняется.
type GameObject struct {
	x, y           float64
	width, height  float64
	speedX, speedY float64
	sprites        []*Sprite
}

func newGameObject(sprites ...*Sprite) GameObject {
	o := GameObject{sprites: sprites}
	if len(sprites) > 0 {
		o.width = sprites[0].Width
		o.height = sprites[0].Height
	}
	return o
}

func (o *GameObject) X() float64      { return o.x }
func (o *GameObject) Y() float64      { return o.y }
func (o *GameObject) Width() float64  { return o.width }
func (o *GameObject) Height() float64 { return o.height }
func (o *GameObject) SpeedX() float64 { return o.speedX }
func (o *GameObject) SpeedY() float64 { return o.speedY }

func (o *GameObject) SetX(x float64) {
	o.x = x
	o.sync()
}

func (o *GameObject) SetY(y float64) {
	o.y = y
	o.sync()
}

// SetPosition ставит объект в (x, y).
func (o *GameObject) SetPosition(x, y float64) {
	o.x, o.y = x, y
	o.sync()
}

// SetSpeed задаёт смещение за один шаг по каждой оси.
func (o *GameObject) SetSpeed(dx, dy float64) {
	o.speedX, o.speedY = dx, dy
}

// Движение без проверки границ, ограничивает вызывающий.
func (o *GameObject) MoveLeft()  { o.SetX(o.x - o.speedX) }
func (o *GameObject) MoveRight() { o.SetX(o.x + o.speedX) }
func (o *GameObject) MoveUp()    { o.SetY(o.y - o.speedY) }
func (o *GameObject) MoveDown()  { o.SetY(o.y + o.speedY) }

// Bounds — ограничивающий прямоугольник для проверки столкновений.
func (o *GameObject) Bounds() Rect {
	return Rect{X: o.x, Y: o.y, Width: o.width, Height: o.height}
}

// Sprite возвращает основной спрайт объекта.
func (o *GameObject) Sprite() *Sprite {
	if len(o.sprites) == 0 {
		return nil
	}
	return o.sprites[0]
}

// Sprites возвращает все спрайты объекта (у врагов их два).
func (o *GameObject) Sprites() []*Sprite {
	return o.sprites
}

// Visible — виден ли основной спрайт.
func (o *GameObject) Visible() bool {
	s := o.Sprite()
	return s != nil && s.Visible
}

func (o *GameObject) sync() {
	for _, s := range o.sprites {
		s.X, s.Y = o.x, o.y
	}
}
