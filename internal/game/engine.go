// Package game implements the frame-driven simulation: spawn scheduling,
// item motion, catch and miss resolution, scoring, level progression and
// the life/time termination conditions. Presentation goes through the
// collaborator interfaces in collaborators.go; the package has no
// rendering or terminal dependencies.
package game

import (
	"fmt"
	"math"

	"github.com/tuigames/fruitcatch/internal/config"
	"github.com/tuigames/fruitcatch/internal/core"
)

// Engine owns all mutable game state. All methods must be called from a
// single goroutine; the Bubble Tea update loop provides that ordering, so
// lane signals are always applied fully before or after a tick.
type Engine struct {
	cfg   config.Config
	spawn *spawner

	items  ItemPresenter
	hud    HUDPresenter
	basket BasketPositioner
	sound  SoundEmitter

	// Run state, reset on Start.
	active     []*FallingItem
	score      int
	life       int
	timeLeft   float64
	level      int
	lane       Lane
	running    bool
	spawnTimer float64
	ticks      uint64
}

// New creates an engine wired to its collaborators. Nil collaborators
// are replaced with no-ops.
func New(cfg config.Config, seed int64, c Collaborators) *Engine {
	c = c.withDefaults()
	return &Engine{
		cfg:    cfg,
		spawn:  newSpawner(seed, cfg.Spawn),
		items:  c.Items,
		hud:    c.HUD,
		basket: c.Basket,
		sound:  c.Sound,
	}
}

// Reseed replaces the random source, typically before restarting.
func (e *Engine) Reseed(seed int64) {
	e.spawn.Reset(seed)
}

// Start resets the run state and begins a new game: full lives and time,
// zero score, center lane, empty play area, repainted HUD.
func (e *Engine) Start() {
	e.score = 0
	e.life = e.cfg.Rules.StartingLives
	e.timeLeft = e.cfg.Rules.TimeLimit
	e.level = 1
	e.lane = LaneCenter
	e.running = true
	e.spawnTimer = 0
	e.ticks = 0
	e.active = e.active[:0]

	e.items.Clear()
	e.hud.HideMessage()
	e.refreshHUD()
	e.basket.MoveTo(e.lane)
}

// Stop halts the run and shows the terminal message with the final
// score. Safe to call while already stopped: the message is rewritten
// but no score or life accounting is repeated.
func (e *Engine) Stop() {
	e.running = false
	e.hud.ShowMessage(fmt.Sprintf("GAME OVER  Score: %d", e.score))
}

// Running reports whether the run is still live. The platform uses this
// to decide whether to schedule another frame.
func (e *Engine) Running() bool {
	return e.running
}

// Tick advances the simulation by delta seconds. It is a no-op while
// stopped. A non-finite delta is treated as zero; the very first frame
// may carry a malformed timestamp difference.
func (e *Engine) Tick(delta float64) {
	if !e.running {
		return
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}
	e.ticks++

	// Time limit.
	e.timeLeft -= delta
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.Stop()
		return
	}

	// Spawn schedule.
	e.spawnTimer += delta
	if e.spawnTimer > SpawnInterval(e.cfg.Rules, e.level) {
		e.spawnItem()
		e.spawnTimer = 0
	}

	e.advanceItems(delta)

	e.refreshHUD()
}

// HandleSignal applies an already-classified lane signal: the basket
// jumps to the requested lane. Unrecognized signals, and any signal
// arriving while stopped, leave the state untouched.
func (e *Engine) HandleSignal(sig core.LaneSignal) {
	if !e.running {
		return
	}

	var lane Lane
	switch sig {
	case core.SignalLeft:
		lane = LaneLeft
	case core.SignalCenter:
		lane = LaneCenter
	case core.SignalRight:
		lane = LaneRight
	default:
		return
	}

	e.lane = lane
	e.basket.MoveTo(lane)
}

func (e *Engine) spawnItem() {
	lane, kind, value := e.spawn.Draw()
	y := e.cfg.Playfield.SpawnY

	// The visual exists before the item joins the active collection, so
	// the presenter never sees a reposition for an unknown handle.
	h := e.items.Create(kind, lane, y)
	e.active = append(e.active, &FallingItem{
		Kind:   kind,
		Value:  value,
		Lane:   lane,
		Y:      y,
		Visual: h,
	})
}

// advanceItems moves every active item, resolves catches and misses, and
// compacts the collection in a single pass. Marking survivors into the
// reused backing array avoids the skip-on-removal hazard of deleting
// while iterating.
func (e *Engine) advanceItems(delta float64) {
	speed := FallSpeed(e.cfg.Rules, e.level)
	field := e.cfg.Playfield

	kept := e.active[:0]
	for _, it := range e.active {
		it.Y += speed * delta
		e.items.Reposition(it.Visual, it.Y)

		// Catch zone: strictly inside the band, in the player's lane.
		if it.Y > field.CatchZoneTop && it.Y < field.CatchZoneBottom && it.Lane == e.lane {
			e.resolveCatch(it)
			e.items.Destroy(it.Visual)
			continue
		}

		// Past the miss line: gone either way, but only non-bombs cost a
		// life. A dodged bomb is free.
		if it.Y > field.MissY {
			if it.Kind != KindBomb {
				e.loseLife()
			}
			e.items.Destroy(it.Visual)
			continue
		}

		kept = append(kept, it)
	}
	// Drop trailing references so removed items can be collected.
	for i := len(kept); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = kept
}

// resolveCatch applies the effect of catching an item in the player's
// lane. The level is recomputed after every scoring event.
func (e *Engine) resolveCatch(it *FallingItem) {
	switch it.Kind {
	case KindBomb:
		e.sound.Play(SoundExplosion)
		e.life = 0
		e.score += it.Value
		e.Stop()
	case KindHeart:
		e.sound.Play(SoundPickup)
		e.life++
	default:
		e.sound.Play(SoundPickup)
		e.score += it.Value
	}
	e.level = LevelFor(e.cfg.Rules, e.score)
}

func (e *Engine) loseLife() {
	e.life--
	if e.life <= 0 {
		e.life = 0
		e.Stop()
	}
}

func (e *Engine) refreshHUD() {
	e.hud.RenderScore(e.score)
	e.hud.RenderTime(int(math.Ceil(e.timeLeft)))
	e.hud.RenderLife(core.Max(0, e.life))
}
