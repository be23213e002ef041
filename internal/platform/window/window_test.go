package window

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/circle-arcade/internal/core"
)

// fakeKeyboard reports scripted key state for one tick.
type fakeKeyboard struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	held     map[ebiten.Key]int
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{
		pressed:  map[ebiten.Key]bool{},
		released: map[ebiten.Key]bool{},
		held:     map[ebiten.Key]int{},
	}
}

func (k *fakeKeyboard) JustPressed(key ebiten.Key) bool  { return k.pressed[key] }
func (k *fakeKeyboard) JustReleased(key ebiten.Key) bool { return k.released[key] }
func (k *fakeKeyboard) PressDuration(key ebiten.Key) int { return k.held[key] }

type fakeGame struct {
	frames   []core.InputFrame
	resets   int
	gameOver bool
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.gameOver = false }
func (g *fakeGame) State() core.GameState    { return core.GameState{GameOver: g.gameOver} }
func (g *fakeGame) Render(dst core.Canvas)   { dst.Begin(core.Vec2{X: 800, Y: 600}, core.ColorBlack) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func newTestApp(g *fakeGame) (*app, *fakeKeyboard) {
	a := newApp(g, core.DefaultConfig(), Options{})
	kb := newFakeKeyboard()
	a.keys = kb
	return a, kb
}

func TestIsRepeat(t *testing.T) {
	tests := []struct {
		d, delay, interval int
		want               bool
	}{
		{0, 50, 3, false},
		{1, 50, 3, false},
		{50, 50, 3, false},
		{51, 50, 3, false},
		{53, 50, 3, true},
		{56, 50, 3, true},
		{57, 50, 3, false},
		{60, 50, 0, false},
	}

	for _, tc := range tests {
		if got := isRepeat(tc.d, tc.delay, tc.interval); got != tc.want {
			t.Errorf("isRepeat(%d, %d, %d) = %v, expected %v", tc.d, tc.delay, tc.interval, got, tc.want)
		}
	}
}

func TestTicks(t *testing.T) {
	if got := ticks(DefaultRepeatDelay, 100); got != 50 {
		t.Errorf("ticks(500ms, 100) = %d, expected 50", got)
	}
	if got := ticks(DefaultRepeatInterval, 100); got != 3 {
		t.Errorf("ticks(33ms, 100) = %d, expected 3", got)
	}
	if got := ticks(time.Millisecond, 10); got != 1 {
		t.Errorf("ticks should floor at 1, got %d", got)
	}
}

func TestNewAppMeasuresWorld(t *testing.T) {
	g := &fakeGame{}
	a, _ := newTestApp(g)

	if a.world != (core.Vec2{X: 800, Y: 600}) {
		t.Errorf("world = %+v, expected 800x600", a.world)
	}
	if w, h := a.Layout(1920, 1080); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 800x600", w, h)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestCollectKeyTransitions(t *testing.T) {
	g := &fakeGame{}
	a, kb := newTestApp(g)

	kb.pressed[ebiten.KeyControlLeft] = true
	kb.released[ebiten.KeyArrowLeft] = true
	if err := a.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}

	f := g.frames[0]
	if !f.Has(core.ActionShoot) {
		t.Error("left control should shoot")
	}
	if !f.Released(core.ActionLeft) {
		t.Error("releasing the left arrow should send a key-up")
	}
}

func TestCollectAutoRepeat(t *testing.T) {
	g := &fakeGame{}
	a, kb := newTestApp(g)

	kb.held[ebiten.KeyArrowRight] = a.repeatDelay + a.repeatInterval
	if err := a.Update(); err != nil {
		t.Fatal(err)
	}

	f := g.frames[0]
	if len(f.Events) != 1 || f.Events[0] != (core.InputEvent{Action: core.ActionRight, Down: true, Repeat: true}) {
		t.Errorf("events = %+v, expected one right repeat", f.Events)
	}
}

func TestCollectMergesKeysPerAction(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		held     map[ebiten.Key]int
		want     []core.InputEvent
	}{
		{
			name:     "release one of two held keys",
			released: []ebiten.Key{ebiten.KeyA},
			held:     map[ebiten.Key]int{ebiten.KeyArrowLeft: 10},
			want:     nil,
		},
		{
			name:     "release the last held key",
			released: []ebiten.Key{ebiten.KeyArrowLeft},
			want:     []core.InputEvent{{Action: core.ActionLeft}},
		},
		{
			name:    "second key while the first is held",
			pressed: []ebiten.Key{ebiten.KeyD},
			held:    map[ebiten.Key]int{ebiten.KeyD: 1, ebiten.KeyArrowRight: 10},
			want:    nil,
		},
		{
			name:    "both keys pressed together",
			pressed: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			want:    []core.InputEvent{{Action: core.ActionRight, Down: true}},
		},
		{
			name: "two repeating keys repeat once",
			held: map[ebiten.Key]int{ebiten.KeySpace: 53, ebiten.KeyArrowUp: 53},
			want: []core.InputEvent{{Action: core.ActionJump, Down: true, Repeat: true}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{}
			a, kb := newTestApp(g)
			for _, k := range tc.pressed {
				kb.pressed[k] = true
			}
			for _, k := range tc.released {
				kb.released[k] = true
			}
			for k, d := range tc.held {
				kb.held[k] = d
			}

			a.collect()

			if len(a.frame.Events) != len(tc.want) {
				t.Fatalf("events = %+v, expected %+v", a.frame.Events, tc.want)
			}
			for i, e := range tc.want {
				if a.frame.Events[i] != e {
					t.Errorf("event %d = %+v, expected %+v", i, a.frame.Events[i], e)
				}
			}
		})
	}
}

func TestQuitKeysTerminate(t *testing.T) {
	for _, key := range quitKeys {
		g := &fakeGame{}
		a, kb := newTestApp(g)
		kb.pressed[key] = true

		if err := a.Update(); !errors.Is(err, ebiten.Termination) {
			t.Errorf("key %v: Update() = %v, expected ebiten.Termination", key, err)
		}
		if len(g.frames) != 0 {
			t.Errorf("key %v: game stepped after quit", key)
		}
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	a, kb := newTestApp(g)

	kb.pressed[ebiten.KeyR] = true
	_ = a.Update()
	if g.resets != 1 {
		t.Error("R should not restart a running game")
	}

	g.gameOver = true
	kb.pressed[ebiten.KeyR] = false
	_ = a.Update()

	kb.pressed[ebiten.KeyR] = true
	_ = a.Update()
	if g.resets != 2 {
		t.Errorf("resets = %d, expected restart after game over", g.resets)
	}
}

func TestBannerRect(t *testing.T) {
	r := bannerRect(core.Vec2{X: 800, Y: 600}, 7, 30)

	// 30 glyphs * 7px + 24 padding.
	if r.w != 234 || r.h != 63 {
		t.Errorf("size = %vx%v, expected 234x63", r.w, r.h)
	}
	if r.x != 283 || r.y != 268.5 {
		t.Errorf("origin = (%v,%v), expected centred (283,268.5)", r.x, r.y)
	}
}

func TestToColor(t *testing.T) {
	if got := toColor(core.ColorDefault, colornames.White); got != colornames.White {
		t.Errorf("zero colour = %v, expected the default", got)
	}
	want := color.RGBA{R: 255, A: 255}
	if got := toColor(core.ColorRed, colornames.White); got != want {
		t.Errorf("red = %v, expected %v", got, want)
	}
}
