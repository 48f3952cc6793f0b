package game

import (
	"time"

	"github.com/vovakirdan/knifefall/internal/entity"
)

// spawnTimer fires once its interval has passed since the last spawn.
type spawnTimer struct {
	base     time.Duration // Interval at multiplier 1.0
	interval time.Duration // base / multiplier
	last     time.Duration
	primed   bool // Fire on the next check regardless of elapsed time
}

func newSpawnTimer(base time.Duration) spawnTimer {
	return spawnTimer{base: base, interval: base}
}

// prime makes the timer fire on its next check, as at the start of a round.
func (t *spawnTimer) prime() {
	t.primed = true
}

// due reports whether a spawn should happen at now and records it.
func (t *spawnTimer) due(now time.Duration) bool {
	if !t.primed && now-t.last <= t.interval {
		return false
	}
	t.primed = false
	t.last = now
	return true
}

// rescaleTimers recomputes both spawn intervals from the current multiplier.
func (g *Game) rescaleTimers() {
	g.fruitTimer.interval = g.difficulty.Interval(g.fruitTimer.base)
	g.bombTimer.interval = g.difficulty.Interval(g.bombTimer.base)
}

// spawnHazards drops a fruit and a bomb when their timers are due.
func (g *Game) spawnHazards() {
	if g.fruitTimer.due(g.now) {
		g.spawnFruit()
	}
	if g.bombTimer.due(g.now) {
		g.spawnBomb()
	}
}

// spawnFruit drops a random fruit kind from just above the playfield.
func (g *Game) spawnFruit() *entity.Hazard {
	name, look := "fruit", entity.Appearance{Glyph: '●'}
	if kinds := g.cfg.Hazards.Fruits; len(kinds) > 0 {
		i := g.rng.Intn(len(kinds))
		name, look = kinds[i].Name, g.fruitLooks[i]
	}
	h := g.newHazard(entity.KindFruit, name, look)
	g.fruits = append(g.fruits, h)
	return h
}

// spawnBomb drops a bomb from just above the playfield.
func (g *Game) spawnBomb() *entity.Hazard {
	h := g.newHazard(entity.KindBomb, "", entity.BombLook)
	g.bombs = append(g.bombs, h)
	return h
}

// newHazard places a hazard at a random column, fully above the playfield,
// falling at a random base speed scaled by the multiplier.
func (g *Game) newHazard(kind entity.HazardKind, name string, look entity.Appearance) *entity.Hazard {
	hc := g.cfg.Hazards
	x := g.rng.Float64() * (g.bounds.Width - hc.Width)
	speed := (hc.MinSpeed + g.rng.Float64()*(hc.MaxSpeed-hc.MinSpeed)) * g.difficulty.Multiplier()
	return entity.NewHazard(kind, name, x, -hc.Height, hc.Width, hc.Height, speed, look, g.bounds)
}
