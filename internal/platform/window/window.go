// Package window runs a game in a desktop window through Ebitengine. The
// window reports real key-down and key-up events, so it matches the
// original keyboard model more closely than the terminal frontend.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/circle-arcade/internal/core"
	"github.com/vovakirdan/circle-arcade/internal/registry"
)

// Auto-repeat timing for held keys, like a typical OS keyboard setting.
const (
	DefaultRepeatDelay    = 500 * time.Millisecond
	DefaultRepeatInterval = 33 * time.Millisecond
)

// Options tune the window frontend.
type Options struct {
	Logger  *log.Logger // nil discards
	ShowTPS bool        // overlay the measured tick rate
}

type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings lists the game keys. Left control is the shoot key.
var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyControlLeft, core.ActionShoot},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}

// keyboard is the slice of inpututil the frontend reads.
type keyboard interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	PressDuration(k ebiten.Key) int // ticks held, 0 when up
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeyboard) PressDuration(k ebiten.Key) int { return inpututil.KeyPressDuration(k) }

// app adapts a registry.Game to ebiten.Game.
type app struct {
	game      registry.Game
	inspector registry.Inspector
	config    core.RuntimeConfig
	keys      keyboard
	logger    *log.Logger
	frame     core.InputFrame
	state     core.GameState
	world     core.Vec2
	showTPS   bool

	repeatDelay    int // ticks before the first auto-repeat
	repeatInterval int // ticks between auto-repeats
}

func newApp(game registry.Game, cfg core.RuntimeConfig, opts Options) *app {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	inspector, _ := game.(registry.Inspector)

	game.Reset(cfg)

	a := &app{
		game:           game,
		inspector:      inspector,
		config:         cfg,
		keys:           ebitenKeyboard{},
		logger:         logger.With("game", game.ID()),
		frame:          core.NewInputFrame(),
		state:          game.State(),
		world:          worldOf(game),
		showTPS:        opts.ShowTPS,
		repeatDelay:    ticks(DefaultRepeatDelay, cfg.TickRate),
		repeatInterval: ticks(DefaultRepeatInterval, cfg.TickRate),
	}
	return a
}

// ticks converts a duration to a whole number of ticks, at least one.
func ticks(d time.Duration, tickRate int) int {
	n := int(d * time.Duration(tickRate) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// worldOf asks the game for its world size by rendering it once onto a
// measuring canvas.
func worldOf(game registry.Game) core.Vec2 {
	var m measure
	game.Render(&m)
	if m.world.X <= 0 || m.world.Y <= 0 {
		return core.Vec2{X: 640, Y: 480}
	}
	return m.world
}

// isRepeat reports whether a key held for d ticks auto-repeats on this
// tick: first after delay ticks, then every interval ticks.
func isRepeat(d, delay, interval int) bool {
	if d <= delay || interval <= 0 {
		return false
	}
	return (d-delay)%interval == 0
}

// actions lists each bound action once, in binding order.
var actions = func() []core.Action {
	var out []core.Action
	seen := map[core.Action]bool{}
	for _, b := range bindings {
		if !seen[b.action] {
			seen[b.action] = true
			out = append(out, b.action)
		}
	}
	return out
}()

// collect fills the input frame from this tick's key transitions. Keys
// bound to the same action act as one key: the action goes down with the
// first of them and up only when the last one is released.
func (a *app) collect() {
	a.frame.Clear()
	for _, act := range actions {
		var wasDown, isDown, repeat bool
		for _, b := range bindings {
			if b.action != act {
				continue
			}
			pressed := a.keys.JustPressed(b.key)
			released := a.keys.JustReleased(b.key)
			d := a.keys.PressDuration(b.key)

			if released || (d > 0 && !pressed) {
				wasDown = true
			}
			if (d > 0 || pressed) && !released {
				isDown = true
			}
			if isRepeat(d, a.repeatDelay, a.repeatInterval) {
				repeat = true
			}
		}

		switch {
		case isDown && !wasDown:
			a.frame.Set(act)
		case wasDown && !isDown:
			a.frame.Release(act)
		case isDown && repeat:
			a.frame.Repeat(act)
		}
	}
}

func (a *app) quitRequested() bool {
	for _, k := range quitKeys {
		if a.keys.JustPressed(k) {
			return true
		}
	}
	return false
}

// Update runs one simulation tick.
func (a *app) Update() error {
	if a.quitRequested() {
		return ebiten.Termination
	}

	a.collect()

	if a.frame.Has(core.ActionRestart) && a.state.GameOver {
		a.game.Reset(a.config)
		a.state = a.game.State()
		a.logger.Info("game restarted")
		return nil
	}

	result := a.game.Step(a.frame)
	if result.State.GameOver && !a.state.GameOver {
		a.logger.Info("round over", "score", result.State.Score)
	}
	a.state = result.State

	if a.inspector != nil {
		a.logger.Debug("frame", a.inspector.Inspect()...)
	}
	return nil
}

// Draw renders the current frame.
func (a *app) Draw(screen *ebiten.Image) {
	c := newCanvas(screen)
	a.game.Render(c)
	if c.world.X > 0 && c.world.Y > 0 {
		a.world = c.world
	}

	if a.showTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()), 8, int(a.world.Y)-20)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it into
// the window.
func (a *app) Layout(_, _ int) (int, int) {
	return int(a.world.X), int(a.world.Y)
}

// Run opens a window sized to the game's world and blocks until the
// player quits or closes it.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	a := newApp(game, cfg, opts)

	ebiten.SetWindowSize(int(a.world.X), int(a.world.Y))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(a.config.TickRate)

	a.logger.Info("window opened", "width", a.world.X, "height", a.world.Y, "fps", a.config.TickRate)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
