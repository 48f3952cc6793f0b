package entity

import (
	"time"

	"github.com/vovakirdan/knifefall/internal/core"
)

var knifeLook = Appearance{Glyph: '│', Color: core.ColorBrightWhite}

// Knife is a thrown projectile. It flies straight up and is not clamped.
type Knife struct {
	Entity
}

// NewKnife creates a knife at (x, y) travelling upward at speed units per tick.
func NewKnife(x, y, width, height, speed float64) *Knife {
	k := &Knife{Entity: New(x, y, width, height, knifeLook)}
	k.SpeedY = -speed
	return k
}

// Advance moves the knife without clamping.
func (k *Knife) Advance() {
	k.Move()
}

// OffScreen reports whether the knife has fully left through the top.
func (k *Knife) OffScreen() bool {
	return k.Bottom() <= 0
}

// Expired reports whether the knife hit something or left the playfield.
func (k *Knife) Expired(time.Duration) bool {
	return k.Consumed() || k.OffScreen()
}
