// Package jumper implements Jump & Shoot: a circle that runs along the
// ground, jumps, and fires a single projectile upward at a row of enemies.
package jumper

import (
	"fmt"

	"github.com/vovakirdan/circle-arcade/internal/config"
	"github.com/vovakirdan/circle-arcade/internal/core"
	"github.com/vovakirdan/circle-arcade/internal/entity"
	"github.com/vovakirdan/circle-arcade/internal/physics"
	"github.com/vovakirdan/circle-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path and checks that it loads.
func SetConfigPath(path string) error {
	if _, err := config.LoadJumper(path); err != nil {
		return err
	}
	configPath = path
	return nil
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Jump & Shoot logic.
type Game struct {
	cfg        config.JumperConfig
	difficulty *config.DifficultyManager
	model      physics.Platformer
	player     physics.Mover
	bounds     physics.Bounds
	projectile *entity.Projectile
	targets    []*entity.Target
	enemies    []entity.Enemy // same targets, in list order, for the collision scan

	leftHeld  bool
	rightHeld bool
	score     int
	gameOver  bool
	paused    bool
	tickCount int

	override *config.JumperConfig // used instead of loading, for tests
}

// New creates a new Jump & Shoot game instance.
func New() *Game {
	return &Game{}
}

// newWithConfig creates a game that skips config loading and presets.
func newWithConfig(cfg config.JumperConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jump & Shoot"
}

// Reset places the player on the ground and restores every enemy.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	w, h := g.cfg.World.Width, g.cfg.World.Height
	r := g.cfg.Player.Radius

	g.model = physics.Platformer{
		Speed:        g.cfg.Physics.MoveSpeed,
		Gravity:      g.cfg.Physics.Gravity,
		JumpVelocity: g.cfg.Physics.JumpVelocity,
		GroundY:      g.cfg.Physics.GroundY,
	}
	g.player = physics.Mover{Body: physics.Body{
		Pos:    core.Vec2{X: g.cfg.Player.StartX, Y: g.cfg.Physics.GroundY},
		Radius: r,
	}}
	g.bounds = physics.ForRadius(w, h, r)
	g.player.Clamp(g.bounds)

	g.projectile = entity.NewProjectile(g.cfg.Projectile.Speed, g.cfg.Projectile.Radius)

	g.targets = make([]*entity.Target, 0, len(g.cfg.Enemies.Positions))
	g.enemies = make([]entity.Enemy, 0, len(g.cfg.Enemies.Positions))
	for _, p := range g.cfg.Enemies.Positions {
		t := entity.NewTarget(core.Vec2{X: p[0], Y: p[1]}, g.cfg.Enemies.Radius,
			g.cfg.Enemies.HitPoints, g.cfg.Enemies.Color.Color())
		t.SetPatrol(g.cfg.Enemies.PatrolSpeed)
		g.targets = append(g.targets, t)
		g.enemies = append(g.enemies, t)
	}

	g.leftHeld = false
	g.rightHeld = false
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

func (g *Game) loadConfig() config.JumperConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	config.ApplyJumperPreset(&cfg, difficultyPreset)
	return cfg
}

// Step runs one frame: input, player physics, projectile and enemy
// movement, then the collision scan.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.handleReleases(in)
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.handleInput(in)
	g.model.Step(&g.player, g.bounds)
	g.projectile.Update()
	g.updateEnemies()

	if entity.Resolve(g.projectile, g.enemies) != nil {
		g.score++
		if g.enemiesLeft() == 0 {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies key events in arrival order.
func (g *Game) handleInput(in core.InputFrame) {
	for _, e := range in.Events {
		switch e.Action {
		case core.ActionLeft, core.ActionRight:
			g.steer(e)
		case core.ActionJump:
			if e.Down {
				g.model.Jump(&g.player)
			}
		case core.ActionShoot:
			if e.Down && !e.Repeat {
				g.projectile.Fire(g.player.Pos)
			}
		}
	}
}

// handleReleases applies only direction key-ups, so keys let go during a
// pause are not still held afterwards.
func (g *Game) handleReleases(in core.InputFrame) {
	for _, e := range in.Events {
		if !e.Down && (e.Action == core.ActionLeft || e.Action == core.ActionRight) {
			g.steer(e)
		}
	}
}

// steer applies one direction event. Releasing one direction while the
// other is still held switches to the held one.
func (g *Game) steer(e core.InputEvent) {
	if e.Action == core.ActionLeft {
		g.leftHeld = e.Down
	} else {
		g.rightHeld = e.Down
	}

	switch {
	case e.Down && e.Action == core.ActionLeft:
		g.model.MoveLeft(&g.player)
	case e.Down:
		g.model.MoveRight(&g.player)
	case g.leftHeld:
		g.model.MoveLeft(&g.player)
	case g.rightHeld:
		g.model.MoveRight(&g.player)
	default:
		g.model.StopHorizontal(&g.player)
	}
}

// updateEnemies moves patrolling targets at the difficulty-scaled speed.
func (g *Game) updateEnemies() {
	if g.cfg.Enemies.PatrolSpeed == 0 {
		return
	}
	speed := g.difficulty.Speed(g.cfg.Enemies.PatrolSpeed, g.score, g.tickCount)
	r := g.cfg.Enemies.Radius
	for _, t := range g.targets {
		t.SetPatrolSpeed(speed)
		t.Update(r, g.cfg.World.Width-r)
	}
}

func (g *Game) enemiesLeft() int {
	n := 0
	for _, e := range g.enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Render draws enemies, the projectile, the player and the HUD.
func (g *Game) Render(dst core.Canvas) {
	dst.Begin(core.Vec2{X: g.cfg.World.Width, Y: g.cfg.World.Height}, core.ColorBlack)

	for _, e := range g.enemies {
		e.Render(dst)
	}
	g.projectile.Render(dst, g.cfg.Projectile.Color.Color())
	dst.FillCircle(g.player.Circle(), g.cfg.Player.Color.Color())

	hud := fmt.Sprintf("%s  Hits: %d  Enemies: %d", g.Title(), g.score, g.enemiesLeft())
	dst.Label(core.Vec2{X: 8, Y: 8}, hud, core.ColorWhite)

	if g.paused {
		dst.Banner("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.Banner("CLEARED", fmt.Sprintf("Hits: %d  |  Press R to restart", g.score))
	}
}

// Inspect returns the per-frame debug values.
func (g *Game) Inspect() []any {
	return []any{
		"x", g.player.Pos.X,
		"y", g.player.Pos.Y,
		"vx", g.player.Vel.X,
		"vy", g.player.Vel.Y,
		"projectile", g.projectile.State().String(),
		"hits", g.score,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
