package entity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/knifefall/internal/core"
)

var field = Bounds{Width: 800, Height: 500}

func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := New(rng.Float64()*800, rng.Float64()*500, 1+rng.Float64()*60, 1+rng.Float64()*60, Appearance{})
		b := New(rng.Float64()*800, rng.Float64()*500, 1+rng.Float64()*60, 1+rng.Float64()*60, Appearance{})
		if a.Overlaps(&b) != b.Overlaps(&a) {
			t.Fatalf("Overlaps not symmetric for %+v and %+v", a.Rect(), b.Rect())
		}
	}
}

func TestOverlapsEdges(t *testing.T) {
	a := New(0, 0, 10, 10, Appearance{})
	same := New(0, 0, 10, 10, Appearance{})
	if !a.Overlaps(&same) {
		t.Error("coincident entities should overlap")
	}

	gaps := []Entity{
		New(10.5, 0, 10, 10, Appearance{}),
		New(0, 10.5, 10, 10, Appearance{}),
		New(-10.5, 0, 10, 10, Appearance{}),
		New(0, -10.5, 10, 10, Appearance{}),
	}
	for _, g := range gaps {
		if a.Overlaps(&g) {
			t.Errorf("entities separated by a gap should not overlap: %+v", g.Rect())
		}
	}
}

func TestPlayerClampedForAnyInput(t *testing.T) {
	p := NewPlayer(350, 420, 50, 80, 5, field)

	p.Steer(true, false)
	for i := 0; i < 200; i++ {
		p.Advance()
	}
	if p.X != 0 {
		t.Errorf("player should stop at the left wall, x = %v", p.X)
	}

	p.Steer(false, true)
	for i := 0; i < 400; i++ {
		p.Advance()
	}
	if p.X != 750 {
		t.Errorf("player should stop at the right wall, x = %v", p.X)
	}

	for _, center := range []float64{-1e9, -25, 0, 400, 800, 1e9} {
		p.MoveTo(center)
		if p.X < 0 || p.X > 750 {
			t.Errorf("MoveTo(%v) left the playfield: x = %v", center, p.X)
		}
	}
	if p.Y != 420 {
		t.Errorf("player should never move vertically, y = %v", p.Y)
	}
}

func TestPlayerSteer(t *testing.T) {
	p := NewPlayer(350, 420, 50, 80, 5, field)

	tests := []struct {
		left, right bool
		speed       float64
	}{
		{true, false, -5},
		{false, true, 5},
		{true, true, 0},
		{false, false, 0},
	}
	for _, tc := range tests {
		p.Steer(tc.left, tc.right)
		if p.SpeedX != tc.speed {
			t.Errorf("Steer(%v, %v) speed = %v, expected %v", tc.left, tc.right, p.SpeedX, tc.speed)
		}
	}
}

func TestPlayerPose(t *testing.T) {
	p := NewPlayer(350, 420, 50, 80, 5, field)
	if p.Pose() != PoseIdle {
		t.Fatalf("new player should be idle, got %v", p.Pose())
	}
	p.SetPose(PoseHurt)
	if p.Look.Color != core.ColorBrightRed {
		t.Errorf("hurt pose should be red, got %v", p.Look.Color)
	}
}

func TestMuzzle(t *testing.T) {
	p := NewPlayer(350, 420, 50, 80, 5, field)
	x, y := p.Muzzle(15, 32)
	if x != 367.5 || y != 388 {
		t.Errorf("Muzzle() = (%v, %v), expected (367.5, 388)", x, y)
	}
}

func TestKnifeFliesUnclamped(t *testing.T) {
	k := NewKnife(100, 20, 15, 32, 8)
	for i := 0; i < 6; i++ {
		k.Advance()
	}
	if k.Y != -28 {
		t.Errorf("knife y = %v, expected -28", k.Y)
	}
	if k.Expired(0) {
		t.Error("knife still partly visible should not expire")
	}
	k.Advance()
	if !k.Expired(0) {
		t.Errorf("knife with bottom at %v should expire", k.Bottom())
	}
}

func TestHazardBounds(t *testing.T) {
	h := NewHazard(KindBomb, "", 100, 460, 40, 40, 3, BombLook, field)
	if !h.OnFloor() {
		t.Error("bomb with bottom at 500 should be on the floor")
	}
	if h.OutOfBounds() {
		t.Error("bomb still inside should not be out of bounds")
	}

	h.Y = 500
	if h.OutOfBounds() {
		t.Error("top edge exactly at the bottom is still in bounds")
	}
	h.Y = 500.5
	if !h.OutOfBounds() || !h.Expired(0) {
		t.Error("hazard below the playfield should expire")
	}
}

func TestHazardRescale(t *testing.T) {
	h := NewHazard(KindFruit, "apple", 0, -40, 40, 40, 4, Appearance{}, field)
	h.Rescale(1.5)
	if h.SpeedY != 6 {
		t.Errorf("SpeedY = %v, expected 6", h.SpeedY)
	}
}

func TestExplosionExpiry(t *testing.T) {
	e := NewExplosion(core.NewRect(10, 10, 80, 80), 500*time.Millisecond)
	if e.Expired(499 * time.Millisecond) {
		t.Error("explosion expired early")
	}
	if !e.Expired(500 * time.Millisecond) {
		t.Error("explosion should expire at its deadline")
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	knives := []*Knife{
		NewKnife(0, 100, 15, 32, 8),
		NewKnife(20, 100, 15, 32, 8),
		NewKnife(40, 100, 15, 32, 8),
		NewKnife(60, -40, 15, 32, 8),
	}
	knives[1].Consume()

	kept := Compact(knives, 0)
	if len(kept) != 2 {
		t.Fatalf("expected 2 knives, got %d", len(kept))
	}
	if kept[0].X != 0 || kept[1].X != 40 {
		t.Errorf("order not preserved: %v, %v", kept[0].X, kept[1].X)
	}
}

func TestSnowfallStaysInField(t *testing.T) {
	s := NewSnowfall(80, field, rand.New(rand.NewSource(3)))
	if len(s.Flakes()) != 80 {
		t.Fatalf("expected 80 flakes, got %d", len(s.Flakes()))
	}
	for i := 0; i < 1000; i++ {
		s.Advance()
	}
	for _, f := range s.Flakes() {
		if f.X < 0 || f.X > field.Width {
			t.Errorf("flake drifted out horizontally: %+v", f)
		}
		if f.Y < -3 || f.Y > field.Height {
			t.Errorf("flake out of vertical range: %+v", f)
		}
		if f.Radius < 1 || f.Radius > 3 {
			t.Errorf("flake radius out of range: %+v", f)
		}
	}
}

func TestRenderClipsToViewport(t *testing.T) {
	screen := core.NewScreen(80, 26)
	v := core.NewViewport(0, 1, 80, 25, 800, 500)

	h := NewHazard(KindBomb, "", 100, -40, 40, 40, 3, BombLook, field)
	h.Render(screen, v)
	if screen.Get(10, 0) != ' ' {
		t.Error("hazard above the playfield must not draw over the HUD row")
	}

	p := NewPlayer(350, 420, 50, 80, 5, field)
	p.Render(screen, v)
	if screen.Get(35, 22) != '▲' {
		t.Errorf("player head expected at (35, 22), got %q", screen.Get(35, 22))
	}
	if screen.Get(35, 25) != '█' {
		t.Errorf("player body expected at (35, 25), got %q", screen.Get(35, 25))
	}
}
