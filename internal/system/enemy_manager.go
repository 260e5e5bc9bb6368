// internal/system/enemy_manager.go
package system

import (
	"fmt"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
)

// formationRow — ряд строя: уровень кораблей и их количество.
type formationRow struct {
	tier  int
	count int
}

// Сверху вниз: два самых сильных, восемь самых слабых.
var formationRows = []formationRow{
	{tier: 4, count: 2},
	{tier: 3, count: 4},
	{tier: 2, count: 6},
	{tier: 1, count: 8},
}

// FormationSize — число кораблей в полном строю.
func FormationSize() int {
	n := 0
	for _, row := range formationRows {
		n += row.count
	}
	return n
}

// EnemyManager управляет строем врагов: движение с разворотом, анимация,
// случайные выстрелы общим снарядом и попадания снарядов игрока.
type EnemyManager struct {
	height, width   float64
	ships           []*component.EnemyShip
	enemyBullet     *component.Bullet
	rng             interfaces.Randomizer
	eventDispatcher *event.Dispatcher

	steps       int
	movingRight bool
}

// NewEnemyManager строит и расставляет строй на playfield.
func NewEnemyManager(playfield interfaces.Playfield, height, width float64, rng interfaces.Randomizer, eventDispatcher *event.Dispatcher) (*EnemyManager, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: playfield height %v must be positive", component.ErrInvalidArgument, height)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: playfield width %v must be positive", component.ErrInvalidArgument, width)
	}
	if playfield == nil {
		return nil, fmt.Errorf("%w: playfield is nil", component.ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: randomizer is nil", component.ErrInvalidArgument)
	}

	m := &EnemyManager{
		height:          height,
		width:           width,
		enemyBullet:     component.NewBullet(component.OwnerEnemy),
		rng:             rng,
		eventDispatcher: eventDispatcher,
		steps:           config.FormationInitialSteps,
		movingRight:     true,
	}
	playfield.AddSprite(m.enemyBullet.Sprite())

	m.createAllEnemies()
	for _, ship := range m.ships {
		for _, s := range ship.Sprites() {
			playfield.AddSprite(s)
		}
	}
	m.positionEnemies()
	return m, nil
}

func (m *EnemyManager) createAllEnemies() {
	m.ships = make([]*component.EnemyShip, 0, FormationSize())
	for _, row := range formationRows {
		for i := 0; i < row.count; i++ {
			m.ships = append(m.ships, component.NewEnemyShip(row.tier))
		}
	}
}

// positionEnemies центрирует каждый ряд по ширине поля; зазор между
// кораблями — половина ширины корабля.
func (m *EnemyManager) positionEnemies() {
	if len(m.ships) == 0 {
		return
	}
	shipWidth := m.ships[0].Width()
	shipGap := shipWidth / 2

	i := 0
	for rowIndex, row := range formationRows {
		rowWidth := float64(row.count)*shipWidth + float64(row.count-1)*shipGap
		left := (m.width - rowWidth) / 2
		for n := 0; n < row.count; n++ {
			ship := m.ships[i]
			y := (ship.Height() + config.FormationRowSpacing) * float64(rowIndex+1)
			ship.SetPosition(left+(shipWidth+shipGap)*float64(n), y)
			i++
		}
	}
}

// OnTick выполняет ход врагов: движение, анимация, случайный выстрел,
// полёт снаряда. Порядок фиксирован.
func (m *EnemyManager) OnTick() {
	m.moveEnemies()
	m.animateEnemies()
	m.randomShot()
	m.moveBullet()
}

func (m *EnemyManager) moveEnemies() {
	if m.steps >= config.FormationReversalSteps {
		m.steps = 0
		m.movingRight = !m.movingRight
	}

	for _, ship := range m.ships {
		if m.movingRight {
			ship.MoveRight()
		} else {
			ship.MoveLeft()
		}
	}
	m.steps++
}

func (m *EnemyManager) animateEnemies() {
	for _, ship := range m.ships {
		ship.Animate()
	}
}

func (m *EnemyManager) randomShot() {
	var shooters []*component.EnemyShip
	for _, ship := range m.ships {
		if ship.CanShoot() {
			shooters = append(shooters, ship)
		}
	}

	// Жребий тянется каждый тик, даже когда стрелять некому
	if m.rng.Intn(config.EnemyShotOdds) != config.EnemyShotHit {
		return
	}
	if len(shooters) == 0 || m.enemyBullet.Active() {
		return
	}
	m.spawnEnemyBullet(shooters[m.rng.Intn(len(shooters))])
}

func (m *EnemyManager) spawnEnemyBullet(enemy *component.EnemyShip) {
	b := m.enemyBullet
	b.Activate(
		enemy.X()+0.5*enemy.Width()-0.5*b.Width(),
		enemy.Y()+enemy.Height()+b.Height(),
	)
	m.eventDispatcher.Dispatch(event.Event{Type: event.EnemyFired, Data: enemy})
}

func (m *EnemyManager) moveBullet() {
	b := m.enemyBullet
	if !b.Active() {
		return
	}
	b.MoveDown()
	if b.Y() >= m.height-b.Height() {
		b.Deactivate()
	}
}

// DidPlayerBulletHitEnemy ищет первый корабль, в который попал снаряд,
// убирает его из строя и возвращает его очки. Без попадания возвращает 0.
func (m *EnemyManager) DidPlayerBulletHitEnemy(playerBullet *component.Bullet) int {
	if playerBullet == nil {
		panic(fmt.Errorf("%w: player bullet is nil", component.ErrInvalidArgument))
	}
	for i, ship := range m.ships {
		if !playerBullet.CheckForCollision(ship) {
			continue
		}
		ship.Hide()
		m.ships = append(m.ships[:i], m.ships[i+1:]...)
		m.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: ship})
		return ship.PointValue()
	}
	return 0
}

// EnemiesRemain — остались ли живые корабли.
func (m *EnemyManager) EnemiesRemain() bool {
	return len(m.ships) != 0
}

// EnemyBullet — общий снаряд врагов.
func (m *EnemyManager) EnemyBullet() *component.Bullet {
	return m.enemyBullet
}

// Ships возвращает живые корабли в порядке создания. Срез принадлежит
// менеджеру, менять его нельзя.
func (m *EnemyManager) Ships() []*component.EnemyShip {
	return m.ships
}

func (m *EnemyManager) MovingRight() bool { return m.movingRight }

// Steps — шагов сделано в текущем направлении.
func (m *EnemyManager) Steps() int { return m.steps }
