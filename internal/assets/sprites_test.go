package assets

import (
	"image/color"
	"testing"

	"go-space-invaders/internal/config"
)

// TestBitmapsWellFormed verifies every frame is a rectangle of the same size
func TestBitmapsWellFormed(t *testing.T) {
	kinds := []Kind{KindPlayerShip, KindPlayerBullet, KindEnemyBullet, KindEnemyTier1, KindEnemyTier2, KindEnemyTier3, KindEnemyTier4, KindExplosion}
	for _, k := range kinds {
		first := Bitmap(k, 0)
		if len(first) == 0 {
			t.Fatalf("%s: empty bitmap", k)
		}
		for f := 0; f < Frames(k); f++ {
			bm := Bitmap(k, f)
			if len(bm) != len(first) {
				t.Errorf("%s frame %d: expected %d rows, got %d", k, f, len(first), len(bm))
			}
			for r, row := range bm {
				if len(row) != len(first[0]) {
					t.Errorf("%s frame %d row %d: expected width %d, got %d", k, f, r, len(first[0]), len(row))
				}
			}
		}
	}
}

// TestEnemyFrames verifies the walk cycle has two distinct frames
func TestEnemyFrames(t *testing.T) {
	for tier := 1; tier <= 4; tier++ {
		k := EnemyKind(tier)
		if Frames(k) != 2 {
			t.Errorf("tier %d: expected 2 frames, got %d", tier, Frames(k))
		}
		a, b := Bitmap(k, 0), Bitmap(k, 1)
		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
			}
		}
		if same {
			t.Errorf("tier %d: expected frames to differ", tier)
		}
	}
	if EnemyKind(0) != KindEnemyTier1 || EnemyKind(5) != KindEnemyTier1 {
		t.Error("Expected out-of-range tiers to map to tier 1")
	}
}

// TestSize verifies size is derived from the bitmap and pixel scale
func TestSize(t *testing.T) {
	w, h := Size(KindPlayerShip)
	bm := Bitmap(KindPlayerShip, 0)
	if w != float64(len(bm[0]))*config.PixelScale || h != float64(len(bm))*config.PixelScale {
		t.Errorf("Unexpected player ship size %vx%v", w, h)
	}
	// строй из 8 кораблей с зазорами должен влезать в поле
	ew, _ := Size(KindEnemyTier1)
	if rowWidth := 8*ew + 7*ew/2; rowWidth >= config.ScreenWidth {
		t.Errorf("Expected the widest row (%v) to fit in %d", rowWidth, config.ScreenWidth)
	}
}

// TestImage verifies pixel painting
func TestImage(t *testing.T) {
	clr := color.RGBA{1, 2, 3, 255}
	img := Image(KindPlayerBullet, 0, clr)
	b := img.Bounds()
	if b.Dx() != 2 || b.Dy() != 5 {
		t.Fatalf("Expected 2x5 image, got %dx%d", b.Dx(), b.Dy())
	}
	if img.RGBAAt(0, 0) != clr {
		t.Errorf("Expected painted pixel, got %v", img.RGBAAt(0, 0))
	}

	enemy := Image(KindEnemyBullet, 0, clr)
	if enemy.RGBAAt(1, 0).A != 0 {
		t.Error("Expected '.' to stay transparent")
	}
}

// TestColor verifies per-tier colors come from config
func TestColor(t *testing.T) {
	for tier := 1; tier <= 4; tier++ {
		if got := Color(EnemyKind(tier)); got != config.EnemyTierColors[tier-1] {
			t.Errorf("tier %d: expected %v, got %v", tier, config.EnemyTierColors[tier-1], got)
		}
	}
	if Color(KindPlayerShip) != config.PlayerShipColor {
		t.Error("Unexpected player ship color")
	}
	if Color(Kind(99)) != config.TextLightColor {
		t.Error("Expected unknown kind to fall back to the text color")
	}
}
