package game

import "github.com/vovakirdan/knifefall/internal/entity"

// Phase is the session state.
type Phase int

const (
	PhaseReady    Phase = iota // Waiting for start; hazards frozen
	PhasePlaying               // Hazards spawn, fall and collide
	PhasePaused                // Frozen until reset
	PhaseGameOver              // No lives left; hazards cleared
)

// String returns the phase name shown in the HUD.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Ready"
	}
}

// Start begins a round from Ready. It reports whether the command applied.
func (g *Game) Start() bool {
	if g.phase != PhaseReady {
		return false
	}
	g.phase = PhasePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.difficulty.Reset(g.now)
	g.rescaleTimers()
	g.fruitTimer.prime()
	g.bombTimer.prime()
	return true
}

// Pause freezes a running round. There is no resume; only ResetSession leaves Paused.
func (g *Game) Pause() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.phase = PhasePaused
	return true
}

// ResetSession returns to Ready from any phase, clearing hazards and effects.
// Score and lives stay visible until the next Start.
func (g *Game) ResetSession() bool {
	g.phase = PhaseReady
	g.clearHazards()
	g.difficulty.Reset(g.now)
	g.rescaleTimers()
	return true
}

// AdjustSpeed changes the speed multiplier by delta within its bounds.
// Live hazards keep falling at a speed scaled by the same ratio and both
// spawn intervals are recomputed. It reports whether the multiplier changed.
func (g *Game) AdjustSpeed(delta float64) bool {
	prev, next := g.difficulty.Adjust(delta)
	ratio := next / prev
	for _, h := range g.fruits {
		h.Rescale(ratio)
	}
	for _, h := range g.bombs {
		h.Rescale(ratio)
	}
	g.rescaleTimers()
	return next != prev
}

// Faster raises the multiplier by one button step.
func (g *Game) Faster() bool {
	return g.AdjustSpeed(g.difficulty.ButtonStep())
}

// Slower lowers the multiplier by one button step.
func (g *Game) Slower() bool {
	return g.AdjustSpeed(-g.difficulty.ButtonStep())
}

// rampDifficulty applies the time-based speed-up while Playing.
func (g *Game) rampDifficulty() {
	if step, ok := g.difficulty.Ramp(g.now); ok {
		g.AdjustSpeed(step)
	}
}

// loseLife takes one life and ends the round when none are left.
func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
	g.setPose(entity.PoseHurt, g.cfg.Player.HurtFx)
	if g.lives == 0 {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.clearHazards()
}

func (g *Game) clearHazards() {
	g.fruits = clearSlice(g.fruits)
	g.bombs = clearSlice(g.bombs)
	g.explosions = clearSlice(g.explosions)
}

// clearSlice empties s, keeping its backing array.
func clearSlice[T any](s []T) []T {
	clear(s)
	return s[:0]
}
