package game

import (
	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/entity"
)

// resolveCollisions runs one collision pass. Entities hit during a check are
// only marked; they are dropped by the compaction after it, so one knife can
// score on several fruit in the same pass.
func (g *Game) resolveCollisions() {
	g.hitFruit()
	g.knives = entity.Compact(g.knives, g.now)
	g.fruits = entity.Compact(g.fruits, g.now)

	g.hitBombs()
	g.knives = entity.Compact(g.knives, g.now)
	g.bombs = entity.Compact(g.bombs, g.now)

	if g.phase != PhasePlaying {
		return
	}
	g.landBombs()
	g.bombs = entity.Compact(g.bombs, g.now)
}

// hitFruit scores one point for every knife and fruit pair that overlaps.
func (g *Game) hitFruit() {
	for _, k := range g.knives {
		for _, f := range g.fruits {
			if k.Overlaps(&f.Entity) {
				k.Consume()
				f.Consume()
				g.score++
			}
		}
	}
}

// hitBombs costs a life for every knife and bomb pair that overlaps.
func (g *Game) hitBombs() {
	for _, k := range g.knives {
		for _, b := range g.bombs {
			if g.phase != PhasePlaying {
				return
			}
			if k.Overlaps(&b.Entity) {
				k.Consume()
				b.Consume()
				g.explode(b)
				g.loseLife()
			}
		}
	}
}

// landBombs costs a life for every bomb that reached the floor.
func (g *Game) landBombs() {
	for _, b := range g.bombs {
		if g.phase != PhasePlaying {
			return
		}
		if b.OnFloor() {
			b.Consume()
			g.explode(b)
			g.loseLife()
		}
	}
}

// explode places a burst over the bomb, scaled around its top-left corner.
func (g *Game) explode(b *entity.Hazard) {
	scale := g.cfg.Effects.ExplosionScale
	r := core.NewRect(b.X, b.Y, b.Width()*scale, b.Height()*scale)
	g.explosions = append(g.explosions, entity.NewExplosion(r, g.now+g.cfg.Effects.ExplosionDuration))
}
