// Package game implements knifefall: the player throws knives at falling
// fruit while dodging bombs.
//
// Game owns every entity on the playfield and the session state. It is
// driven one fixed tick at a time through Step and drawn through Render;
// the platform layer decides how often to call them. All timers run on a
// simulated clock (tick count times tick period), so a seed plus an input
// sequence always replays the same round.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/knifefall/internal/config"
	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/entity"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves the game configuration from the CLI settings.
func LoadConfig() (config.KnifefallConfig, error) {
	return config.LoadWithPreset(configPath, difficultyPreset)
}

// Game implements the knifefall game logic.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.KnifefallConfig
	fixed      *config.KnifefallConfig // Set by NewWithConfig; bypasses file lookup
	difficulty *config.DifficultyManager
	bounds     entity.Bounds
	viewport   core.Viewport

	// Randomness: hazards and snow draw from separate streams so that
	// the background never shifts gameplay for a given seed.
	rng     *rand.Rand
	snowRng *rand.Rand

	// Game objects
	player     *entity.Player
	knives     []*entity.Knife
	fruits     []*entity.Hazard
	bombs      []*entity.Hazard
	explosions []*entity.Explosion
	snow       *entity.Snowfall
	fruitLooks []entity.Appearance

	// Session
	phase Phase
	score int
	lives int

	// Clock
	tick   int
	period time.Duration
	now    time.Duration

	fruitTimer spawnTimer
	bombTimer  spawnTimer
	poseTimer  poseTimer
	controls   controls
}

// New creates a game that loads its configuration from the CLI settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.KnifefallConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "knifefall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Knifefall"
}

// Reset initializes the game from scratch in the Ready phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.KnifefallConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := LoadConfig()
		if err != nil {
			loaded = config.DefaultConfig()
		}
		cfg = loaded
	}
	g.cfg = cfg

	g.bounds = entity.Bounds{Width: cfg.Playfield.Width, Height: cfg.Playfield.Height}
	g.viewport = playfieldViewport(runtime.ScreenW, runtime.ScreenH, g.bounds)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.snowRng = rand.New(rand.NewSource(runtime.Seed + 1))

	g.player = entity.NewPlayer(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height, cfg.Player.Speed, g.bounds)
	g.knives = g.knives[:0]
	g.fruits = g.fruits[:0]
	g.bombs = g.bombs[:0]
	g.explosions = g.explosions[:0]
	g.snow = entity.NewSnowfall(cfg.Effects.Snowflakes, g.bounds, g.snowRng)
	g.fruitLooks = fruitLooks(cfg.Hazards.Fruits)

	g.phase = PhaseReady
	g.score = 0
	g.lives = cfg.Gameplay.Lives

	g.tick = 0
	g.period = runtime.TickPeriod()
	g.now = 0

	g.fruitTimer = newSpawnTimer(cfg.Hazards.FruitInterval)
	g.bombTimer = newSpawnTimer(cfg.Hazards.BombInterval)
	g.rescaleTimers()
	g.poseTimer = poseTimer{}
	g.controls = newControls(cfg.Input)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.phase

	g.tick++
	g.now = time.Duration(g.tick) * g.period

	g.applyInput(in)

	g.player.Advance()
	for _, k := range g.knives {
		k.Advance()
	}
	g.knives = entity.Compact(g.knives, g.now)

	// Hazards freeze outside Playing but stay on screen.
	if g.phase == PhasePlaying {
		g.rampDifficulty()
		g.spawnHazards()
		for _, h := range g.fruits {
			h.Advance()
		}
		for _, h := range g.bombs {
			h.Advance()
		}
		g.fruits = entity.Compact(g.fruits, g.now)
		g.bombs = entity.Compact(g.bombs, g.now)
		g.resolveCollisions()
	}

	g.explosions = entity.Compact(g.explosions, g.now)
	g.poseTimer.expire(g.now, g.player)
	g.snow.Advance()

	return core.StepResult{
		State:        g.State(),
		PhaseChanged: g.phase != before,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase.String(),
		Speed:    g.Multiplier(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Multiplier returns the current speed multiplier.
func (g *Game) Multiplier() float64 {
	if g.difficulty == nil {
		return 0
	}
	return g.difficulty.Multiplier()
}

// Now returns the simulated game clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Config returns the configuration the game was reset with.
func (g *Game) Config() config.KnifefallConfig {
	return g.cfg
}

// fruitLooks converts configured fruit kinds to appearances.
// Unknown colours fall back to the terminal default.
func fruitLooks(kinds []config.FruitKind) []entity.Appearance {
	looks := make([]entity.Appearance, 0, len(kinds))
	for _, k := range kinds {
		glyph := '●'
		if r := []rune(k.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		c, _ := core.ParseColor(k.Color)
		looks = append(looks, entity.Appearance{Glyph: glyph, Color: c})
	}
	return looks
}
