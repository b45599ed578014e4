package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testScripts = `
function get_interaction(kind, name)
    if kind == "temple" then
        return { verb = "pray", prompt = "Press E to pray at " .. name }
    end
    return nil
end

function on_interact(ctx)
    return {
        message = ctx.player .. " prays at " .. ctx.name,
        effect = "candle_glow",
    }
end

function get_decorations(biome)
    if biome == "forest" then
        return {
            { prop = "pine_tall", count = 18, min_scale = 0.7, max_scale = 1.6 },
            { prop = "mushroom",  count = 5,  min_scale = 0.5, max_scale = 1.0 },
        }
    end
    return nil
end
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dir := t.TempDir()
	core := filepath.Join(dir, "core")
	require.NoError(t, os.MkdirAll(core, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(core, "world.lua"), []byte(testScripts), 0644))

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestGetInteraction(t *testing.T) {
	e := newTestEngine(t)

	it := e.GetInteraction("temple", "Quiet Sun")
	require.NotNil(t, it)
	require.Equal(t, "pray", it.Verb)
	require.Equal(t, "Press E to pray at Quiet Sun", it.Prompt)

	require.Nil(t, e.GetInteraction("volcano", "Mount Doom"))
}

func TestOnInteract(t *testing.T) {
	e := newTestEngine(t)

	res := e.OnInteract(InteractContext{
		Kind:       "temple",
		ObjectName: "Quiet Sun",
		PlayerName: "Aster",
		Biome:      "village",
	})
	require.Equal(t, "Aster prays at Quiet Sun", res.Message)
	require.Equal(t, "candle_glow", res.Effect)
}

func TestGetDecorations(t *testing.T) {
	e := newTestEngine(t)

	specs := e.GetDecorations("forest")
	require.Len(t, specs, 2)
	require.Equal(t, "pine_tall", specs[0].Prop)
	require.Equal(t, 18, specs[0].Count)
	require.Equal(t, 0.7, specs[0].MinScale)
	require.Equal(t, 1.6, specs[0].MaxScale)

	require.Nil(t, e.GetDecorations("tundra"))
}

func TestMissingFunctionsDegrade(t *testing.T) {
	dir := t.TempDir()
	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	require.Nil(t, e.GetInteraction("temple", "x"))
	require.Nil(t, e.GetDecorations("forest"))
	res := e.OnInteract(InteractContext{Kind: "temple"})
	require.Equal(t, "Nothing happens.", res.Message)
}

func TestBrokenScriptFailsLoad(t *testing.T) {
	dir := t.TempDir()
	core := filepath.Join(dir, "core")
	require.NoError(t, os.MkdirAll(core, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(core, "bad.lua"), []byte("function ("), 0644))

	_, err := NewEngine(dir, zap.NewNop())
	require.Error(t, err)
}
