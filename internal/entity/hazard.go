package entity

import (
	"time"

	"github.com/vovakirdan/knifefall/internal/core"
)

// HazardKind distinguishes fruit from bombs.
type HazardKind int

const (
	KindFruit HazardKind = iota
	KindBomb
)

// String returns the kind name.
func (k HazardKind) String() string {
	if k == KindBomb {
		return "bomb"
	}
	return "fruit"
}

// BombLook is how every bomb is drawn.
var BombLook = Appearance{Glyph: '◆', Color: core.ColorBrightMagenta}

// Hazard is a falling fruit or bomb. It is not clamped; it leaves through the bottom.
type Hazard struct {
	Entity
	Kind   HazardKind
	Name   string // Fruit variety, empty for bombs
	bounds Bounds
}

// NewHazard creates a hazard at (x, y) falling at speedY units per tick.
func NewHazard(kind HazardKind, name string, x, y, width, height, speedY float64, look Appearance, bounds Bounds) *Hazard {
	h := &Hazard{
		Entity: New(x, y, width, height, look),
		Kind:   kind,
		Name:   name,
		bounds: bounds,
	}
	h.SpeedY = speedY
	return h
}

// Advance moves the hazard down without clamping.
func (h *Hazard) Advance() {
	h.Move()
}

// OutOfBounds reports whether the hazard's top edge has passed the bottom of the playfield.
func (h *Hazard) OutOfBounds() bool {
	return h.Y > h.bounds.Height
}

// OnFloor reports whether the hazard's bottom edge reached the bottom of the playfield.
func (h *Hazard) OnFloor() bool {
	return h.Bottom() >= h.bounds.Height
}

// Rescale multiplies the fall speed, keeping motion continuous across difficulty changes.
func (h *Hazard) Rescale(ratio float64) {
	h.SpeedY *= ratio
}

// Expired reports whether the hazard was hit or fell out of the playfield.
func (h *Hazard) Expired(time.Duration) bool {
	return h.Consumed() || h.OutOfBounds()
}
