// Package registry maps game ids to constructors. Each game package
// registers itself from init(), so the CLI and both frontends only need a
// blank import to make a game playable.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/circle-arcade/internal/core"
)

// Game is a fixed-tick simulation driven by a frontend. It never touches
// the terminal or the window directly.
type Game interface {
	// ID is the short name used on the command line and as the config
	// file stem ("drift" -> drift.yaml).
	ID() string

	// Title is shown in the menu, the HUD and the window title bar.
	Title() string

	// Reset loads config and puts the game back to its first frame.
	// Frontends call it before the first tick and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of key events, in arrival order, and advances
	// the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the frame in world coordinates, starting with dst.Begin.
	Render(dst core.Canvas)

	State() core.GameState
}

// Inspector is implemented by games that expose per-frame state for the
// debug trace. Inspect returns alternating key/value pairs.
type Inspector interface {
	Inspect() []any
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet reset game.
type Factory func() Game

type entry struct {
	build Factory
	title string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. Registering the same id twice is a
// programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{build: f, title: f().Title()}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
