package face

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/modelresolve"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *buildctx.Context {
	t.Helper()
	ctx, err := buildctx.New(buildctx.DefaultBuildOptions(), resource.NewMemoryProvider())
	require.NoError(t, err)
	return ctx
}

func tintIndex(i int) *int { return &i }

func TestProcessEmptyFacesYieldsEmptyOutput(t *testing.T) {
	ctx := newTestContext(t)
	model := &modelresolve.Model{}
	el := &modelresolve.Element{}

	out := Process(ctx, model, el, nil, category.Solid)
	require.Empty(t, out)
}

func TestProcessAbsentFaceIsNullWithDefaultUV(t *testing.T) {
	ctx := newTestContext(t)
	model := &modelresolve.Model{}
	el := &modelresolve.Element{Faces: map[modelresolve.FaceName]*modelresolve.Face{
		modelresolve.Up: {Texture: "#all"},
	}}

	out := Process(ctx, model, el, nil, category.Solid)
	down := out[modelresolve.Down]
	require.Nil(t, down.MaterialIndex)
	require.Equal(t, [4]float32{0, 0, 1, 1}, down.UV)
}

func TestProcessOverlaySentinelIsNull(t *testing.T) {
	ctx := newTestContext(t)
	model := &modelresolve.Model{Textures: map[string]string{"overlay": "overlay"}}
	el := &modelresolve.Element{Faces: map[modelresolve.FaceName]*modelresolve.Face{
		modelresolve.Up: {Texture: "#overlay"},
	}}

	out := Process(ctx, model, el, nil, category.Solid)
	require.Nil(t, out[modelresolve.Up].MaterialIndex)
}

func TestProcessResolvesTextureAndInternsMaterial(t *testing.T) {
	ctx := newTestContext(t)
	model := &modelresolve.Model{Textures: map[string]string{"all": "block/stone"}}
	el := &modelresolve.Element{Faces: map[modelresolve.FaceName]*modelresolve.Face{
		modelresolve.Up: {Texture: "#all"},
	}}

	out := Process(ctx, model, el, nil, category.Solid)
	up := out[modelresolve.Up]
	require.NotNil(t, up.MaterialIndex)

	entry, ok := ctx.Materials.Lookup(*up.MaterialIndex)
	require.True(t, ok)
	require.Equal(t, "block/stone", entry.Texture)
	require.Equal(t, [3]float32{0, 0, 0}, entry.Tint, "tintindex absent means no tint")
}

func TestProcessRedstonePowerSevenVsEight(t *testing.T) {
	ctx := newTestContext(t)
	model := &modelresolve.Model{Textures: map[string]string{"all": "block/redstone_dust_line0"}}

	el := &modelresolve.Element{Faces: map[modelresolve.FaceName]*modelresolve.Face{
		modelresolve.Up: {Texture: "#all", TintIndex: tintIndex(0)},
	}}

	outSeven := Process(ctx, model, el, map[string]string{"power": "7"}, category.Redstone)
	outEight := Process(ctx, model, el, map[string]string{"power": "8"}, category.Redstone)

	idxSeven := *outSeven[modelresolve.Up].MaterialIndex
	idxEight := *outEight[modelresolve.Up].MaterialIndex
	require.NotEqual(t, idxSeven, idxEight, "different power means different tint means different material")

	entrySeven, _ := ctx.Materials.Lookup(idxSeven)
	entryEight, _ := ctx.Materials.Lookup(idxEight)
	require.Equal(t, entrySeven.Texture, entryEight.Texture, "texture name is unaffected by power")
	require.Equal(t, redstoneColorTable[7], entrySeven.Tint)
	require.NotEqual(t, entrySeven.Tint, entryEight.Tint)
}

func TestRotateUVFourQuarterTurnsIsIdentity(t *testing.T) {
	uv := [4]float32{0.25, 0.0, 0.75, 0.5}
	got := uv
	for i := 0; i < 4; i++ {
		got = RotateUV(got, 90)
	}
	require.InDeltaSlice(t, uv[:], got[:], 1e-6)
}

func TestRotateUV360IsIdentity(t *testing.T) {
	uv := [4]float32{0.1, 0.2, 0.6, 0.9}
	require.Equal(t, uv, RotateUV(uv, 360))
}

func TestRotateUVZeroIsUnchanged(t *testing.T) {
	uv := [4]float32{0.1, 0.2, 0.6, 0.9}
	require.Equal(t, uv, RotateUV(uv, 0))
}
