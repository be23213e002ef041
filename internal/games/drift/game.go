// Package drift implements Moving Red Circle: a circle that slides
// horizontally, sped up by every left/right key-down and slowed by
// friction on each key-up.
package drift

import (
	"fmt"

	"github.com/vovakirdan/circle-arcade/internal/config"
	"github.com/vovakirdan/circle-arcade/internal/core"
	"github.com/vovakirdan/circle-arcade/internal/physics"
	"github.com/vovakirdan/circle-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path and checks that it loads.
func SetConfigPath(path string) error {
	if _, err := config.LoadDrift(path); err != nil {
		return err
	}
	configPath = path
	return nil
}

// Game implements the Moving Red Circle logic.
type Game struct {
	cfg    config.DriftConfig
	model  physics.Drift
	body   physics.Body
	bounds physics.Bounds
	color  core.Color

	leftHeld  bool
	rightHeld bool
	paused    bool
	tickCount int

	override *config.DriftConfig // used instead of loading, for tests
}

// New creates a new Moving Red Circle game instance.
func New() *Game {
	return &Game{}
}

// newWithConfig creates a game that skips config loading.
func newWithConfig(cfg config.DriftConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "drift"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Moving Red Circle"
}

// Reset centres the circle at rest.
func (g *Game) Reset(_ core.RuntimeConfig) {
	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadDrift(configPath)
		if err != nil {
			cfg = config.DefaultDriftConfig()
		}
		g.cfg = cfg
	}

	w, h := g.cfg.World.Width, g.cfg.World.Height
	r := g.cfg.Player.Radius

	g.model = physics.Drift{
		MaxSpeed:        g.cfg.Physics.MaxSpeed,
		RollingFriction: g.cfg.Physics.RollingFriction,
	}
	g.body = physics.Body{Pos: core.Vec2{X: w / 2, Y: h / 2}, Radius: r}
	g.bounds = physics.ForRadius(w, h, r)
	g.color = g.cfg.Player.Color.Color()

	g.leftHeld = false
	g.rightHeld = false
	g.paused = false
	g.tickCount = 0
}

// Step applies this tick's key events in order, then moves the circle.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		// Key-ups still count so no direction stays held across the pause.
		for _, e := range in.Events {
			if !e.Down {
				g.applyKey(e)
			}
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	for _, e := range in.Events {
		g.applyKey(e)
	}

	g.model.Step(&g.body, g.bounds, !g.leftHeld && !g.rightHeld)

	return core.StepResult{State: g.State()}
}

// applyKey handles one left/right event: key-downs (including repeats)
// accelerate, key-ups apply friction. Other actions are ignored.
func (g *Game) applyKey(e core.InputEvent) {
	var dir float64
	switch e.Action {
	case core.ActionLeft:
		dir = -1
		g.leftHeld = e.Down
	case core.ActionRight:
		dir = 1
		g.rightHeld = e.Down
	default:
		return
	}

	if e.Down {
		g.model.Accelerate(&g.body, dir*g.cfg.Physics.Acceleration)
	} else {
		g.model.ApplyFriction(&g.body, g.cfg.Physics.Friction)
	}
}

// Render draws the circle and the position/velocity readout.
func (g *Game) Render(dst core.Canvas) {
	dst.Begin(core.Vec2{X: g.cfg.World.Width, Y: g.cfg.World.Height}, core.ColorBlack)
	dst.FillCircle(g.body.Circle(), g.color)

	hud := fmt.Sprintf("%s  circleX: %.1f  velocity: %.2f", g.Title(), g.body.Pos.X, g.body.Vel.X)
	dst.Label(core.Vec2{X: 8, Y: 8}, hud, core.ColorWhite)

	if g.paused {
		dst.Banner("PAUSED", "Press P to resume")
	}
}

// Inspect returns the per-frame debug values.
func (g *Game) Inspect() []any {
	return []any{"circleX", g.body.Pos.X, "velocity", g.body.Vel.X}
}

// State returns the current game state. The circle has no score and no
// losing condition.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

func init() {
	registry.Register("drift", func() registry.Game {
		return New()
	})
}
