package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bzar/spacerocks/internal/component"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the game's tunable rules
// (scoring and level curve). Single-goroutine access only (game loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	ufoScore int
}

// NewEngine creates a Lua engine and loads all scripts under scriptsDir/core.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	e.SetUfoScore(100)

	corePath := filepath.Join(scriptsDir, "core")
	if err := e.loadDir(corePath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load core scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory in name order.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// --- Scoring ---

// AsteroidScore calls Lua asteroid_score(size). Size is 0 (tiny) to 3 (large).
func (e *Engine) AsteroidScore(size component.AsteroidSize) int {
	return int(e.callNumberFunc("asteroid_score", float64(defaultAsteroidScore(size)), float64(size)))
}

// SetUfoScore sets the base ufo reward, exposed to scripts as UFO_SCORE and
// used as the fallback when ufo_score fails.
func (e *Engine) SetUfoScore(n int) {
	e.ufoScore = n
	e.vm.SetGlobal("UFO_SCORE", lua.LNumber(n))
}

// UfoScore calls Lua ufo_score(level).
func (e *Engine) UfoScore(level int) int {
	return int(e.callNumberFunc("ufo_score", float64(e.ufoScore), float64(level)))
}

func defaultAsteroidScore(size component.AsteroidSize) int {
	switch size {
	case component.Tiny:
		return 100
	case component.Small:
		return 50
	case component.Medium:
		return 20
	}
	return 10
}

// --- Level curve ---

// LevelAsteroids calls Lua level_asteroids(level): asteroids spawned at level start.
func (e *Engine) LevelAsteroids(level int) int {
	n := int(e.callNumberFunc("level_asteroids", float64(level+3), float64(level)))
	if n < 1 {
		return 1
	}
	return n
}

// UfoDuration calls Lua ufo_duration(level): seconds a ufo takes to cross.
func (e *Engine) UfoDuration(level int) float64 {
	d := e.callNumberFunc("ufo_duration", 10, float64(level))
	if d <= 0 {
		return 10
	}
	return d
}

// UfoShootDelay calls Lua ufo_shoot_delay(level): seconds between ufo shots.
func (e *Engine) UfoShootDelay(level int) float64 {
	d := e.callNumberFunc("ufo_shoot_delay", 2, float64(level))
	if d <= 0 {
		return 2
	}
	return d
}

// UfoShootAccuracy calls Lua ufo_shoot_accuracy(level), clamped to [0,1].
func (e *Engine) UfoShootAccuracy(level int) float64 {
	a := e.callNumberFunc("ufo_shoot_accuracy", 0.5, float64(level))
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

// --- Lua helpers ---

// callNumberFunc calls a Lua function with number args and returns a number
// result. Missing functions and call errors are logged and yield fallback.
func (e *Engine) callNumberFunc(name string, fallback float64, args ...float64) float64 {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		e.log.Error("lua function not found", zap.String("name", name))
		return fallback
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua result not a number",
			zap.String("func", name), zap.String("type", result.Type().String()))
		return fallback
	}
	return float64(n)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
