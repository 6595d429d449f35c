package modelresolve

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*buildctx.Context, *resource.MemoryProvider) {
	t.Helper()
	rp := resource.NewMemoryProvider()
	ctx, err := buildctx.New(buildctx.DefaultBuildOptions(), rp)
	require.NoError(t, err)
	return ctx, rp
}

func TestResolveNormalizesCoordinatesTo01(t *testing.T) {
	ctx, rp := newTestContext(t)
	rp.Strings["models/block/cube.json"] = `{
		"textures": {"all": "block/stone"},
		"elements": [{
			"from": [0, 0, 0],
			"to": [16, 16, 16],
			"faces": {"up": {"texture": "#all"}}
		}]
	}`

	m, err := Resolve(ctx, "block/cube", nil)
	require.NoError(t, err)
	require.Len(t, m.Elements, 1)
	require.Equal(t, [3]float32{0, 0, 0}, m.Elements[0].From)
	require.Equal(t, [3]float32{1, 1, 1}, m.Elements[0].To)
}

func TestResolveMergesParentChildWins(t *testing.T) {
	ctx, rp := newTestContext(t)
	rp.Strings["models/block/parent.json"] = `{
		"textures": {"all": "block/parent_tex", "side": "block/parent_side"},
		"elements": [{"from":[0,0,0],"to":[16,16,16],"faces":{"up":{"texture":"#all"}}}]
	}`
	rp.Strings["models/block/child.json"] = `{
		"parent": "block/parent",
		"textures": {"all": "block/child_tex"}
	}`

	m, err := Resolve(ctx, "block/child", nil)
	require.NoError(t, err)
	require.Equal(t, "block/child_tex", m.Textures["all"], "child texture overrides parent")
	require.Equal(t, "block/parent_side", m.Textures["side"], "parent-only texture keys survive the merge")
	require.Len(t, m.Elements, 1, "elements come from the parent since the child defines none")
}

func TestResolveBreaksCycles(t *testing.T) {
	ctx, rp := newTestContext(t)
	rp.Strings["models/block/a.json"] = `{"parent": "block/b"}`
	rp.Strings["models/block/b.json"] = `{"parent": "block/a"}`

	m, err := Resolve(ctx, "block/a", nil)
	require.NoError(t, err)
	require.Empty(t, m.Elements)
}

func TestResolveMissingResourceIsEmptyNotError(t *testing.T) {
	ctx, _ := newTestContext(t)
	m, err := Resolve(ctx, "block/does_not_exist", nil)
	require.NoError(t, err)
	require.Empty(t, m.Elements)
}

func TestResolveTextureRefFollowsChain(t *testing.T) {
	m := &Model{Textures: map[string]string{
		"particle": "#all",
		"all":      "block/stone",
	}}
	require.Equal(t, "block/stone", ResolveTextureRef(m, "#particle"))
}

func TestResolveTextureRefMissingYieldsSentinel(t *testing.T) {
	m := &Model{Textures: map[string]string{}}
	require.Equal(t, "missing_texture", ResolveTextureRef(m, "#all"))
}

func TestResolveTextureRefDepthExceeded(t *testing.T) {
	m := &Model{Textures: map[string]string{
		"a": "#b", "b": "#c", "c": "#d", "d": "#e", "e": "#f", "f": "#g", "g": "block/stone",
	}}
	require.Equal(t, "missing_texture", ResolveTextureRef(m, "#a"))
}

func TestBuiltinChestOverrideByType(t *testing.T) {
	ctx, _ := newTestContext(t)

	single, err := Resolve(ctx, "block/chest", map[string]string{})
	require.NoError(t, err)
	require.Equal(t, "entity/chest/normal", single.Textures["all"])

	left, err := Resolve(ctx, "block/chest", map[string]string{"type": "left"})
	require.NoError(t, err)
	require.Equal(t, "entity/chest/normal_left", left.Textures["all"])
}
