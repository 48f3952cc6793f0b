// Package entity implements the objects that live on the knifefall playfield:
// the player, thrown knives, falling hazards, explosions and snow.
//
// Every object is a positioned rectangle with a velocity. Variants differ only
// in how they advance and when they expire, which is expressed through the
// Object interface rather than a type hierarchy.
package entity

import (
	"time"

	"github.com/vovakirdan/knifefall/internal/core"
)

// Object is anything the game advances and draws each tick.
type Object interface {
	// Advance moves the object by one tick.
	Advance()

	// Render draws the object through the viewport.
	Render(dst *core.Screen, v core.Viewport)

	// Expired reports whether the object should be dropped at the next compaction.
	Expired(now time.Duration) bool
}

// Appearance is how an entity is drawn: one glyph in one colour.
type Appearance struct {
	Glyph rune
	Color core.Color
}

// Bounds is the logical playfield size.
type Bounds struct {
	Width  float64
	Height float64
}

// Entity is a positioned rectangle with a velocity.
// Size is fixed at construction.
type Entity struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Look           Appearance

	width, height float64
	consumed      bool
}

// New creates an entity at (x, y) with the given size and look.
func New(x, y, width, height float64, look Appearance) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Look:   look,
		width:  width,
		height: height,
	}
}

// Width returns the entity width.
func (e *Entity) Width() float64 {
	return e.width
}

// Height returns the entity height.
func (e *Entity) Height() float64 {
	return e.height
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.width, e.height)
}

// Bottom returns the y-coordinate of the bottom edge.
func (e *Entity) Bottom() float64 {
	return e.Y + e.height
}

// Overlaps reports whether the two entities' boxes touch or intersect.
func (e *Entity) Overlaps(other *Entity) bool {
	return e.Rect().Overlaps(other.Rect())
}

// Move applies the velocity once without any bounds policy.
func (e *Entity) Move() {
	e.X += e.SpeedX
	e.Y += e.SpeedY
}

// ClampTo keeps the entity fully inside the playfield.
func (e *Entity) ClampTo(b Bounds) {
	e.X = core.ClampF(e.X, 0, b.Width-e.width)
	e.Y = core.ClampF(e.Y, 0, b.Height-e.height)
}

// Consume flags the entity for removal at the end of the current pass.
func (e *Entity) Consume() {
	e.consumed = true
}

// Consumed reports whether the entity took part in a resolved collision.
func (e *Entity) Consumed() bool {
	return e.consumed
}

// Render fills the entity's cell footprint with its glyph.
func (e *Entity) Render(dst *core.Screen, v core.Viewport) {
	fill(dst, v, e.Rect(), e.Look)
}

// fill draws a logical rectangle clipped to the viewport.
func fill(dst *core.Screen, v core.Viewport, r core.Rect, look Appearance) {
	x, y, w, h := v.Clip(v.Project(r))
	dst.FillRect(x, y, w, h, look.Glyph, look.Color)
}

// Compact drops expired objects in place, keeping order.
func Compact[T Object](items []T, now time.Duration) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.Expired(now) {
			kept = append(kept, it)
		}
	}
	// Release references held past the new length.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

var (
	_ Object = (*Player)(nil)
	_ Object = (*Knife)(nil)
	_ Object = (*Hazard)(nil)
	_ Object = (*Explosion)(nil)
	_ Object = (*Snowfall)(nil)
)
