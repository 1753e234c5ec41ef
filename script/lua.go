// Package script runs move scripts written in Lua.
//
// A script sees three tables, user, target and move, along with a handful of helper functions,
// and returns an array of result tables:
//
//	return {
//		damage(40),
//		{ kind = "stat_stage", stat = "speed", stage = -1 },
//	}
//
// Helpers:
//
//	random(min, max)      uniform integer in [min, max]
//	crit(rate)            critical hit roll for a crit rate tier
//	damage_range()        damage range roll, 85 to 100
//	damage(power, [crit]) power damage from user to target as a damage result table,
//	                      or an ineffective result when the target is immune
//	effective()           type multiplier of the move against the target
//
// Result kinds are damage, drain, status, stat_stage, flinch, miss and ineffective.
// A damage or drain result with effective = 0 is read as ineffective.
//
// The crit and damage range helpers roll for themselves. A move that mixes script usage
// with built in damage usage gets separate rolls for each, since a MoveEngine only sees the
// rng and not the rolls the rest of the move already made.
package script

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path"
	"strings"
	"sync"

	"github.com/Shopify/go-lua"
	"github.com/nathanieltooley/klefki/battle"
	"github.com/nathanieltooley/klefki/core"
)

var ErrNoSuchScript = errors.New("no script registered with that id")

// LuaEngine is a battle.MoveEngine backed by Lua scripts registered by id.
// Every execution runs in a fresh Lua state, so scripts can't leak state between moves.
type LuaEngine struct {
	mu      sync.RWMutex
	scripts map[string]string
}

var _ battle.MoveEngine = (*LuaEngine)(nil)

func NewLuaEngine() *LuaEngine {
	return &LuaEngine{scripts: make(map[string]string)}
}

// Register compiles the script to check it and stores it under id, replacing any script already there
func (e *LuaEngine) Register(id string, source string) error {
	state := newState()
	if err := lua.LoadBuffer(state, source, id, "t"); err != nil {
		return fmt.Errorf("compile script %s: %w", id, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.scripts[id] = source

	internalLogger.V(1).Info("registered script", "id", id)
	return nil
}

// RegisterFS registers every .lua file in dir, using the file name without extension as the id
func (e *LuaEngine) RegisterFS(fsys fs.FS, dir string) (int, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("read script dir: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".lua" {
			continue
		}

		source, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return count, fmt.Errorf("read script %s: %w", entry.Name(), err)
		}

		if err := e.Register(strings.TrimSuffix(entry.Name(), ".lua"), string(source)); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func (e *LuaEngine) Has(id string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.scripts[id]
	return ok
}

func (e *LuaEngine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.scripts)
}

func (e *LuaEngine) Execute(id string, rng *rand.Rand, used *core.Move, user *battle.Battler, target *battle.Battler) ([]battle.MoveResult, error) {
	e.mu.RLock()
	source, ok := e.scripts[id]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchScript, id)
	}

	state := newState()
	ctx := &scriptContext{rng: rng, move: used, user: user, target: target}
	ctx.register(state)

	if err := lua.LoadBuffer(state, source, id, "t"); err != nil {
		return nil, fmt.Errorf("compile script %s: %w", id, err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run script %s: %w", id, err)
	}

	if state.TypeOf(-1) != lua.TypeTable {
		return nil, fmt.Errorf("script %s must return a table of results, got %s", id, lua.TypeNameOf(state, -1))
	}

	results, err := readResults(state, -1)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", id, err)
	}

	internalLogger.V(1).Info("executed script", "id", id, "move", used.ID, "results", len(results))
	return results, nil
}

// newState opens only the libraries that can't touch the host
func newState() *lua.State {
	state := lua.NewState()
	for _, lib := range []lua.RegistryFunction{
		{Name: "_G", Function: lua.BaseOpen},
		{Name: "table", Function: lua.TableOpen},
		{Name: "string", Function: lua.StringOpen},
		{Name: "math", Function: lua.MathOpen},
	} {
		lua.Require(state, lib.Name, lib.Function, true)
		state.Pop(1)
	}

	return state
}
