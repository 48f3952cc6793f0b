package game

import (
	"time"

	"github.com/vovakirdan/knifefall/internal/config"
	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/entity"
)

// controls turns per-frame key presses into held directions.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held until hold has passed since its last press.
type controls struct {
	hold   time.Duration
	repeat time.Duration

	leftUntil  time.Duration
	rightUntil time.Duration
	lastFire   time.Duration
	fired      bool
}

func newControls(cfg config.InputConfig) controls {
	return controls{hold: cfg.Hold, repeat: cfg.Repeat}
}

// press records a direction press. The opposite direction is released.
func (c *controls) press(a core.Action, now time.Duration) {
	switch a {
	case core.ActionLeft:
		c.leftUntil = now + c.hold
		c.rightUntil = 0
	case core.ActionRight:
		c.rightUntil = now + c.hold
		c.leftUntil = 0
	}
}

// held returns the directions still held at now.
func (c *controls) held(now time.Duration) (left, right bool) {
	return now < c.leftUntil, now < c.rightUntil
}

// release drops both directions, e.g. when the pointer takes over.
func (c *controls) release() {
	c.leftUntil, c.rightUntil = 0, 0
}

// trigger reports whether a fire press is a fresh press rather than
// key auto-repeat. Every press restarts the repeat window.
func (c *controls) trigger(now time.Duration) bool {
	fresh := !c.fired || now-c.lastFire >= c.repeat
	c.fired = true
	c.lastFire = now
	return fresh
}

// poseTimer reverts the player to idle once. A new pose replaces any pending revert.
type poseTimer struct {
	pending  bool
	revertAt time.Duration
}

func (t *poseTimer) expire(now time.Duration, p *entity.Player) {
	if t.pending && now >= t.revertAt {
		t.pending = false
		p.SetPose(entity.PoseIdle)
	}
}

// setPose switches the player's look and schedules the revert to idle.
func (g *Game) setPose(pose entity.Pose, d time.Duration) {
	g.player.SetPose(pose)
	g.poseTimer = poseTimer{pending: true, revertAt: g.now + d}
}

// applyInput handles one frame of input: commands first, then movement and fire.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionReset):
		g.ResetSession()
	case in.Has(core.ActionStart):
		g.Start()
	case in.Has(core.ActionPause):
		g.Pause()
	}
	if in.Has(core.ActionFaster) {
		g.Faster()
	}
	if in.Has(core.ActionSlower) {
		g.Slower()
	}

	if in.Pointer != nil {
		g.PointerMove(in.Pointer.Col, in.Pointer.Row)
	}
	if in.Has(core.ActionLeft) {
		g.controls.press(core.ActionLeft, g.now)
	}
	if in.Has(core.ActionRight) {
		g.controls.press(core.ActionRight, g.now)
	}
	g.player.Steer(g.controls.held(g.now))

	if in.Has(core.ActionFire) && g.controls.trigger(g.now) {
		g.Fire()
	}
}

// PointerMove centres the player on the pointer column. Rows are ignored.
func (g *Game) PointerMove(col, _ int) {
	v := g.viewport
	cell := v.LogicalW / float64(v.Cols)
	g.controls.release()
	g.player.MoveTo(v.LogicalX(col) + cell/2)
}

// Fire throws a knife from the top of the player. Knives fly in every phase.
func (g *Game) Fire() *entity.Knife {
	kc := g.cfg.Knife
	x, y := g.player.Muzzle(kc.Width, kc.Height)
	k := entity.NewKnife(x, y, kc.Width, kc.Height, kc.Speed)
	g.knives = append(g.knives, k)
	g.setPose(entity.PoseAttack, g.cfg.Player.AttackFx)
	return k
}
