package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for world logic that designers iterate
// on without a rebuild: interaction verbs and per-biome decoration sets.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "interaction", "world"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
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

// --- Interaction Bridge ---

// Interaction describes how a prompt for an environment object reads.
type Interaction struct {
	Verb   string // "enter", "pray", "browse", ...
	Prompt string // full prompt line shown by the client
}

// GetInteraction calls Lua get_interaction(kind, name).
// Returns nil when the kind has no interaction defined.
func (e *Engine) GetInteraction(kind, name string) *Interaction {
	fn := e.vm.GetGlobal("get_interaction")
	if fn == lua.LNil {
		return nil
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(kind), lua.LString(name)); err != nil {
		e.log.Error("lua get_interaction error", zap.Error(err), zap.String("kind", kind))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return nil
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil
	}

	return &Interaction{
		Verb:   lStr(rt, "verb"),
		Prompt: lStr(rt, "prompt"),
	}
}

// InteractContext holds pre-packed data for an interaction execution.
type InteractContext struct {
	Kind       string
	ObjectName string
	PlayerName string
	Biome      string
}

// InteractResult is returned by the Lua on_interact function.
type InteractResult struct {
	Message string // text line streamed back to the player
	Effect  string // client-side effect preset name ("" = none)
}

// OnInteract calls Lua on_interact(ctx) when a player confirms a prompt.
func (e *Engine) OnInteract(ctx InteractContext) InteractResult {
	fn := e.vm.GetGlobal("on_interact")
	if fn == lua.LNil {
		e.log.Error("lua function on_interact not found")
		return InteractResult{Message: "Nothing happens."}
	}

	t := e.vm.NewTable()
	t.RawSetString("kind", lua.LString(ctx.Kind))
	t.RawSetString("name", lua.LString(ctx.ObjectName))
	t.RawSetString("player", lua.LString(ctx.PlayerName))
	t.RawSetString("biome", lua.LString(ctx.Biome))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua on_interact error", zap.Error(err))
		return InteractResult{Message: "Nothing happens."}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua on_interact returned non-table")
		return InteractResult{Message: "Nothing happens."}
	}

	return InteractResult{
		Message: lStr(rt, "message"),
		Effect:  lStr(rt, "effect"),
	}
}

// --- Decoration Bridge ---

// DecorationSpec is one prop family scattered over cells of a biome.
type DecorationSpec struct {
	Prop     string  // client prop preset name
	Count    int     // instances per cell
	MinScale float64
	MaxScale float64
}

// GetDecorations calls Lua get_decorations(biome) and returns the prop
// families for that biome. Nil means an undecorated biome.
func (e *Engine) GetDecorations(biome string) []DecorationSpec {
	fn := e.vm.GetGlobal("get_decorations")
	if fn == lua.LNil {
		return nil
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(biome)); err != nil {
		e.log.Error("lua get_decorations error", zap.Error(err), zap.String("biome", biome))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return nil
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil
	}

	var specs []DecorationSpec
	rt.ForEach(func(_, v lua.LValue) {
		if row, ok := v.(*lua.LTable); ok {
			specs = append(specs, DecorationSpec{
				Prop:     lStr(row, "prop"),
				Count:    lInt(row, "count"),
				MinScale: lNum(row, "min_scale"),
				MaxScale: lNum(row, "max_scale"),
			})
		}
	})
	return specs
}

// --- Lua helpers ---

// lInt reads an integer field from a Lua table.
func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}

// lNum reads a float field from a Lua table.
func lNum(t *lua.LTable, key string) float64 {
	return float64(lua.LVAsNumber(t.RawGetString(key)))
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
