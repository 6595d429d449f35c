package chunkmerge

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/chunkpart"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
	"github.com/stretchr/testify/require"
)

func fullCubeModel(textureAll string) string {
	return `{
		"textures": {"all": "` + textureAll + `"},
		"elements": [{
			"from": [0,0,0], "to": [16,16,16],
			"faces": {
				"up": {"texture": "#all"}, "down": {"texture": "#all"},
				"north": {"texture": "#all"}, "south": {"texture": "#all"},
				"east": {"texture": "#all"}, "west": {"texture": "#all"}
			}
		}]
	}`
}

func buildPalette(t *testing.T, sch schematic.Schematic, chunkSide int, extraResources map[string]string) *palette.Palette {
	t.Helper()
	rp := resource.NewMemoryProvider()
	rp.Strings["blockstates/stone.json"] = `{"variants": {"": {"model": "block/stone"}}}`
	rp.Strings["models/block/stone.json"] = fullCubeModel("block/stone")
	for k, v := range extraResources {
		rp.Strings[k] = v
	}
	ctx, err := buildctx.New(buildctx.DefaultBuildOptions(), rp)
	require.NoError(t, err)
	p, err := palette.Compile(ctx, sch, chunkSide, palette.DefaultInvisibleSet{}, palette.DefaultCategorizer{})
	require.NoError(t, err)
	return p
}

func TestMergeSingleStoneBlockSixQuads(t *testing.T) {
	sch := schematic.NewMemory(1, 1, 1)
	sch.Set(0, 0, 0, blockkey.New("minecraft:stone", nil))
	pal := buildPalette(t, sch, 16, nil)

	chunks := chunkpart.Partition(sch, 16, pal)
	require.Len(t, chunks, 1)

	meshes, err := Merge(pal, chunks[0])
	require.NoError(t, err)

	solid := meshes[category.Solid]
	require.NotNil(t, solid)
	require.Equal(t, 24, solid.VertexCount(), "6 quads x 4 vertices")
	require.Len(t, solid.Indices16, 36, "6 quads x 2 triangles x 3 indices")

	for i := 0; i < len(solid.Positions); i++ {
		require.Contains(t, []int16{0, PositionScale}, solid.Positions[i])
	}
}

func TestMergeTwoStonesSideBySideCullsSharedFaces(t *testing.T) {
	sch := schematic.NewMemory(2, 1, 1)
	sch.Set(0, 0, 0, blockkey.New("minecraft:stone", nil))
	sch.Set(1, 0, 0, blockkey.New("minecraft:stone", nil))
	pal := buildPalette(t, sch, 16, nil)

	chunks := chunkpart.Partition(sch, 16, pal)
	require.Len(t, chunks, 1)

	meshes, err := Merge(pal, chunks[0])
	require.NoError(t, err)

	solid := meshes[category.Solid]
	require.Equal(t, 40, solid.VertexCount(), "10 quads x 4 vertices: east-of-first and west-of-second culled")
}

func TestMergeStoneNextToGlassCullsBothFacingFaces(t *testing.T) {
	sch := schematic.NewMemory(2, 1, 1)
	sch.Set(0, 0, 0, blockkey.New("minecraft:stone", nil))
	sch.Set(1, 0, 0, blockkey.New("minecraft:glass", nil))
	pal := buildPalette(t, sch, 16, map[string]string{
		"blockstates/glass.json": `{"variants": {"": {"model": "block/glass"}}}`,
		"models/block/glass.json": fullCubeModel("block/glass"),
	})

	chunks := chunkpart.Partition(sch, 16, pal)
	require.Len(t, chunks, 1)

	meshes, err := Merge(pal, chunks[0])
	require.NoError(t, err)

	solid := meshes[category.Solid]
	transparent := meshes[category.Transparent]
	require.Equal(t, 20, solid.VertexCount(), "stone loses its east face against the glass")
	require.Equal(t, 20, transparent.VertexCount(), "glass loses its west face against the stone")
}

func TestMergeNilPaletteIsNotReady(t *testing.T) {
	_, err := Merge(nil, chunkpart.IndexedChunk{})
	require.Error(t, err)
	var recov *buildctx.RecoverableError
	require.ErrorAs(t, err, &recov)
	require.Equal(t, buildctx.ErrNotReady, recov.Kind)
}
