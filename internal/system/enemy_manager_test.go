package system

import (
	"errors"
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
)

const (
	testHeight = 480.0
	testWidth  = 640.0
)

func newTestManager(t *testing.T, rng *randFunc) (*EnemyManager, *fakePlayfield) {
	t.Helper()
	pf := &fakePlayfield{}
	m, err := NewEnemyManager(pf, testHeight, testWidth, rng, event.NewDispatcher())
	if err != nil {
		t.Fatalf("NewEnemyManager: %v", err)
	}
	return m, pf
}

// TestNewEnemyManagerInvalidArguments verifies argument validation
func TestNewEnemyManagerInvalidArguments(t *testing.T) {
	pf := &fakePlayfield{}
	tests := []struct {
		name          string
		pf            *fakePlayfield
		height, width float64
		rng           *randFunc
	}{
		{"zero height", pf, 0, testWidth, neverFire()},
		{"negative width", pf, testHeight, -1, neverFire()},
		{"nil playfield", nil, testHeight, testWidth, neverFire()},
		{"nil randomizer", pf, testHeight, testWidth, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			switch {
			case tt.pf == nil:
				_, err = NewEnemyManager(nil, tt.height, tt.width, tt.rng, nil)
			case tt.rng == nil:
				_, err = NewEnemyManager(tt.pf, tt.height, tt.width, nil, nil)
			default:
				_, err = NewEnemyManager(tt.pf, tt.height, tt.width, tt.rng, nil)
			}
			if !errors.Is(err, component.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

// TestFormationLayout verifies tiers, counts and row centering
func TestFormationLayout(t *testing.T) {
	m, pf := newTestManager(t, neverFire())
	ships := m.Ships()

	if len(ships) != 20 || FormationSize() != 20 {
		t.Fatalf("Expected 20 ships, got %d", len(ships))
	}
	// снаряд врага + по два кадра на корабль
	if len(pf.sprites) != 1+2*20 {
		t.Errorf("Expected 41 sprites on the playfield, got %d", len(pf.sprites))
	}
	if m.EnemyBullet().Active() {
		t.Error("Expected enemy bullet to start inactive")
	}

	wantTiers := []int{4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1}
	for i, ship := range ships {
		if ship.Tier() != wantTiers[i] {
			t.Errorf("ship %d: expected tier %d, got %d", i, wantTiers[i], ship.Tier())
		}
	}

	w, h := ships[0].Width(), ships[0].Height()
	gap := w / 2
	rows := []struct{ start, count int }{{0, 2}, {2, 4}, {6, 6}, {12, 8}}
	for r, row := range rows {
		rowWidth := float64(row.count)*w + float64(row.count-1)*gap
		left := (testWidth - rowWidth) / 2
		for n := 0; n < row.count; n++ {
			ship := ships[row.start+n]
			wantX := left + (w+gap)*float64(n)
			wantY := (h + 20) * float64(r+1)
			if ship.X() != wantX || ship.Y() != wantY {
				t.Errorf("row %d ship %d: expected (%v, %v), got (%v, %v)", r+1, n, wantX, wantY, ship.X(), ship.Y())
			}
		}
		// ряд центрирован
		last := ships[row.start+row.count-1]
		if got := testWidth - last.X() - w; got != left {
			t.Errorf("row %d: expected right margin %v, got %v", r+1, left, got)
		}
	}
}

// TestFormationSweep verifies the half sweep then reversal every 20 ticks
func TestFormationSweep(t *testing.T) {
	m, _ := newTestManager(t, neverFire())
	startX := m.Ships()[0].X()

	var dirs []bool
	for i := 0; i < 70; i++ {
		m.OnTick()
		dirs = append(dirs, m.MovingRight())
	}

	for i, right := range dirs {
		tick := i + 1
		want := tick <= 10 || (tick > 30 && tick <= 50)
		if right != want {
			t.Fatalf("tick %d: expected movingRight=%v, got %v", tick, want, right)
		}
	}

	// 10 вправо, 20 влево, 20 вправо, 20 влево — на 30 левее старта
	if got := m.Ships()[0].X(); got != startX-30 {
		t.Errorf("Expected X %v after 70 ticks, got %v", startX-30, got)
	}
	for _, ship := range m.Ships() {
		if ship.Y() != ship.Sprites()[0].Y {
			t.Fatal("Expected sprites to follow ship position")
		}
	}
}

// TestFormationNeverDrops verifies the sweep is flat
func TestFormationNeverDrops(t *testing.T) {
	m, _ := newTestManager(t, neverFire())
	var ys []float64
	for _, s := range m.Ships() {
		ys = append(ys, s.Y())
	}
	for i := 0; i < 200; i++ {
		m.OnTick()
	}
	for i, s := range m.Ships() {
		if s.Y() != ys[i] {
			t.Errorf("ship %d: expected Y %v, got %v", i, ys[i], s.Y())
		}
	}
}

// TestAnimateEachTick verifies every ship toggles its frame once per tick
func TestAnimateEachTick(t *testing.T) {
	m, _ := newTestManager(t, neverFire())
	m.OnTick()
	for i, s := range m.Ships() {
		if s.Frame() != 1 {
			t.Errorf("ship %d: expected frame 1 after one tick, got %d", i, s.Frame())
		}
	}
	m.OnTick()
	for i, s := range m.Ships() {
		if s.Frame() != 0 {
			t.Errorf("ship %d: expected frame 0 after two ticks, got %d", i, s.Frame())
		}
	}
}

// TestRandomShotSpawn verifies the shot position and the shooter pick
func TestRandomShotSpawn(t *testing.T) {
	rng := alwaysFire(5)
	m, _ := newTestManager(t, rng)
	d := &recorder{}
	m.eventDispatcher.Subscribe(event.EnemyFired, d)

	m.OnTick()

	b := m.EnemyBullet()
	if !b.Active() {
		t.Fatal("Expected enemy bullet to be fired")
	}
	// шесть стрелков: 2 уровня 4 и 4 уровня 3; индекс 5 — последний из уровня 3
	if len(rng.calls) != 2 || rng.calls[0] != 101 || rng.calls[1] != 6 {
		t.Errorf("Expected draws [101 6], got %v", rng.calls)
	}
	shooter := m.Ships()[5]
	if !shooter.CanShoot() || shooter.Tier() != 3 {
		t.Fatalf("Unexpected shooter %+v", shooter)
	}
	wantX := shooter.X() + 0.5*shooter.Width() - 0.5*b.Width()
	// выстрел, затем один шаг вниз в том же тике
	wantY := shooter.Y() + shooter.Height() + b.Height() + b.SpeedY()
	if b.X() != wantX || b.Y() != wantY {
		t.Errorf("Expected bullet at (%v, %v), got (%v, %v)", wantX, wantY, b.X(), b.Y())
	}
	if len(d.got) != 1 || d.got[0].Data != shooter {
		t.Errorf("Expected one EnemyFired from the shooter, got %+v", d.got)
	}

	// пока снаряд летит, второго выстрела нет
	y := b.Y()
	m.OnTick()
	if b.Y() != y+b.SpeedY() {
		t.Errorf("Expected bullet to keep flying, got Y %v", b.Y())
	}
	if len(d.got) != 1 {
		t.Errorf("Expected no second shot while in flight, got %d", len(d.got))
	}
}

// TestNoShotWithoutShooters verifies that only tiers 3 and 4 fire
func TestNoShotWithoutShooters(t *testing.T) {
	m, _ := newTestManager(t, alwaysFire(0))

	var shooters []*component.EnemyShip
	for _, s := range m.Ships() {
		if s.CanShoot() {
			shooters = append(shooters, s)
		}
	}
	for _, s := range shooters {
		if got := m.DidPlayerBulletHitEnemy(bulletOver(s)); got != s.PointValue() {
			t.Fatalf("Expected to destroy shooter for %d points, got %d", s.PointValue(), got)
		}
	}

	for i := 0; i < 50; i++ {
		m.OnTick()
		if m.EnemyBullet().Active() {
			t.Fatalf("tick %d: expected no enemy shot without shooters", i+1)
		}
	}
}

// TestEnemyBulletLeavesPlayfield verifies deactivation at the bottom edge
func TestEnemyBulletLeavesPlayfield(t *testing.T) {
	fire := true
	rng := &randFunc{fn: func(n int) int {
		if n == 101 && fire {
			fire = false
			return 1
		}
		return 0
	}}
	m, _ := newTestManager(t, rng)
	b := m.EnemyBullet()

	m.OnTick()
	if !b.Active() {
		t.Fatal("Expected bullet to be fired on the first tick")
	}
	ticks := 1
	var lastY float64
	for b.Active() && ticks < 100 {
		lastY = b.Y()
		m.OnTick()
		ticks++
	}
	if b.Active() {
		t.Fatal("Expected bullet to be deactivated before 100 ticks")
	}
	if b.Y() < testHeight-b.Height() {
		t.Errorf("Expected final Y >= %v, got %v", testHeight-b.Height(), b.Y())
	}
	if lastY >= testHeight-b.Height() {
		t.Errorf("Expected bullet to be active only above the bottom, last active Y %v", lastY)
	}
}

// TestDidPlayerBulletHitEnemy verifies one ship per bullet and point values
func TestDidPlayerBulletHitEnemy(t *testing.T) {
	m, _ := newTestManager(t, neverFire())

	miss := component.NewBullet(component.OwnerPlayer)
	miss.Activate(0, 400)
	if got := m.DidPlayerBulletHitEnemy(miss); got != 0 {
		t.Errorf("Expected 0 for a miss, got %d", got)
	}
	if len(m.Ships()) != 20 {
		t.Errorf("Expected no ship removed on a miss, got %d", len(m.Ships()))
	}

	target := m.Ships()[3]
	b := bulletOver(target)
	if got := m.DidPlayerBulletHitEnemy(b); got != 15 {
		t.Errorf("Expected 15 points for a tier 3 ship, got %d", got)
	}
	if len(m.Ships()) != 19 {
		t.Errorf("Expected 19 ships left, got %d", len(m.Ships()))
	}
	for _, s := range target.Sprites() {
		if s.Visible {
			t.Error("Expected destroyed ship to be hidden")
		}
	}
	for _, s := range m.Ships() {
		if s == target {
			t.Fatal("Expected destroyed ship to leave the formation")
		}
	}
	if got := m.DidPlayerBulletHitEnemy(b); got != 0 {
		t.Errorf("Expected consumed bullet to score 0, got %d", got)
	}
}

// TestEnemiesRemain verifies the termination query
func TestEnemiesRemain(t *testing.T) {
	m, _ := newTestManager(t, neverFire())
	total := 0
	for len(m.Ships()) > 0 {
		if !m.EnemiesRemain() {
			t.Fatal("Expected EnemiesRemain while ships are alive")
		}
		total += m.DidPlayerBulletHitEnemy(bulletOver(m.Ships()[0]))
	}
	if m.EnemiesRemain() {
		t.Error("Expected EnemiesRemain to be false after the last ship")
	}
	// 2*20 + 4*15 + 6*10 + 8*5
	if total != 200 {
		t.Errorf("Expected 200 total points, got %d", total)
	}
}

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }
