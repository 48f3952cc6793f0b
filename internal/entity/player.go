package entity

import (
	"time"

	"github.com/vovakirdan/knifefall/internal/core"
)

// Pose is the player's current visual state.
type Pose int

const (
	PoseIdle Pose = iota
	PoseAttack
	PoseHurt
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseAttack:
		return "attack"
	case PoseHurt:
		return "hurt"
	default:
		return "idle"
	}
}

var poseLooks = map[Pose]Appearance{
	PoseIdle:   {Glyph: '█', Color: core.ColorBrightCyan},
	PoseAttack: {Glyph: '█', Color: core.ColorBrightYellow},
	PoseHurt:   {Glyph: '█', Color: core.ColorBrightRed},
}

// Player is the knife thrower. It moves horizontally only and never leaves the playfield.
type Player struct {
	Entity
	bounds Bounds
	speed  float64
	pose   Pose
}

// NewPlayer creates a player at (x, y). speed is the horizontal distance per tick.
func NewPlayer(x, y, width, height, speed float64, bounds Bounds) *Player {
	p := &Player{
		Entity: New(x, y, width, height, poseLooks[PoseIdle]),
		bounds: bounds,
		speed:  speed,
	}
	p.ClampTo(bounds)
	return p
}

// Steer sets horizontal velocity from the held directions.
// Holding both or neither stops the player.
func (p *Player) Steer(left, right bool) {
	switch {
	case left && !right:
		p.SpeedX = -p.speed
	case right && !left:
		p.SpeedX = p.speed
	default:
		p.SpeedX = 0
	}
}

// MoveTo centres the player on a logical x coordinate, clamped to the playfield.
func (p *Player) MoveTo(centerX float64) {
	p.X = centerX - p.Width()/2
	p.ClampTo(p.bounds)
}

// Advance applies horizontal velocity and clamps to the playfield.
func (p *Player) Advance() {
	p.SpeedY = 0
	p.Move()
	p.ClampTo(p.bounds)
}

// Expired is always false; the player lives for the whole session.
func (p *Player) Expired(time.Duration) bool {
	return false
}

// SetPose switches the player's look.
func (p *Player) SetPose(pose Pose) {
	p.pose = pose
	p.Look = poseLooks[pose]
}

// Pose returns the current pose.
func (p *Player) Pose() Pose {
	return p.pose
}

// Muzzle returns where a knife of the given size should appear:
// centred horizontally, just above the player's head.
func (p *Player) Muzzle(knifeW, knifeH float64) (float64, float64) {
	return p.X + p.Width()/2 - knifeW/2, p.Y - knifeH
}

// Render draws the body with a pointed head row.
func (p *Player) Render(dst *core.Screen, v core.Viewport) {
	p.Entity.Render(dst, v)
	x, y, w, h := v.Clip(v.Project(p.Rect()))
	if h > 1 {
		dst.FillRect(x, y, w, 1, '▲', p.Look.Color)
	}
}
