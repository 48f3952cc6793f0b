package entity

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/knifefall/internal/core"
)

var explosionLook = Appearance{Glyph: '✶', Color: core.ColorOrange}

// Explosion is a purely cosmetic burst that disappears at a fixed time.
type Explosion struct {
	Entity
	ExpiresAt time.Duration
}

// NewExplosion creates an explosion covering r until expiresAt on the game clock.
func NewExplosion(r core.Rect, expiresAt time.Duration) *Explosion {
	return &Explosion{
		Entity:    New(r.X, r.Y, r.W, r.H, explosionLook),
		ExpiresAt: expiresAt,
	}
}

// Advance does nothing; explosions stay where they burst.
func (e *Explosion) Advance() {}

// Expired reports whether the burst has run its course.
func (e *Explosion) Expired(now time.Duration) bool {
	return now >= e.ExpiresAt
}

// Snowflake is one background particle.
type Snowflake struct {
	X, Y   float64
	Radius float64
	SpeedY float64
	Drift  float64 // Horizontal motion per tick, negative drifts left
}

// Snowfall is the ambient background. It animates in every phase.
type Snowfall struct {
	flakes []Snowflake
	bounds Bounds
	rng    *rand.Rand
}

// NewSnowfall scatters count flakes over the playfield.
func NewSnowfall(count int, bounds Bounds, rng *rand.Rand) *Snowfall {
	s := &Snowfall{
		flakes: make([]Snowflake, 0, count),
		bounds: bounds,
		rng:    rng,
	}
	for i := 0; i < count; i++ {
		s.flakes = append(s.flakes, Snowflake{
			X:      rng.Float64() * bounds.Width,
			Y:      rng.Float64() * bounds.Height,
			Radius: 1 + rng.Float64()*2,
			SpeedY: 0.5 + rng.Float64()*1.5,
			Drift:  (rng.Float64() - 0.5) * 0.5,
		})
	}
	return s
}

// Flakes returns the current particles.
func (s *Snowfall) Flakes() []Snowflake {
	return s.flakes
}

// Advance moves every flake, recycling the ones that leave the playfield.
func (s *Snowfall) Advance() {
	for i := range s.flakes {
		f := &s.flakes[i]
		f.Y += f.SpeedY
		f.X += f.Drift
		if f.Y > s.bounds.Height {
			f.Y = -f.Radius
			f.X = s.rng.Float64() * s.bounds.Width
		}
		if f.X < 0 {
			f.X = s.bounds.Width
		}
		if f.X > s.bounds.Width {
			f.X = 0
		}
	}
}

// Render draws each flake as a single cell; large flakes are brighter.
func (s *Snowfall) Render(dst *core.Screen, v core.Viewport) {
	for _, f := range s.flakes {
		col, row := v.ToCell(f.X, f.Y)
		if !v.Contains(col, row) {
			continue
		}
		if f.Radius >= 2 {
			dst.SetColored(col, row, '*', core.ColorWhite)
		} else {
			dst.SetColored(col, row, '·', core.ColorGray)
		}
	}
}

// Expired is always false; snow never stops.
func (s *Snowfall) Expired(time.Duration) bool {
	return false
}
