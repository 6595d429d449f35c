package chunkpart

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
	"github.com/stretchr/testify/require"
)

func buildTestPalette(t *testing.T, sch schematic.Schematic, chunkSide int) *palette.Palette {
	t.Helper()
	rp := resource.NewMemoryProvider()
	rp.Strings["blockstates/stone.json"] = `{"variants": {"": {"model": "block/stone"}}}`
	rp.Strings["models/block/stone.json"] = `{
		"textures": {"all": "block/stone"},
		"elements": [{"from":[0,0,0],"to":[16,16,16],"faces":{"up":{"texture":"#all"}}}]
	}`
	ctx, err := buildctx.New(buildctx.DefaultBuildOptions(), rp)
	require.NoError(t, err)

	p, err := palette.Compile(ctx, sch, chunkSide, palette.DefaultInvisibleSet{}, palette.DefaultCategorizer{})
	require.NoError(t, err)
	return p
}

func TestPartitionDropsAllInvisibleChunks(t *testing.T) {
	sch := schematic.NewMemory(32, 1, 1)
	sch.Set(0, 0, 0, blockkey.New("minecraft:air", nil))
	sch.Set(20, 0, 0, blockkey.New("minecraft:stone", nil))

	pal := buildTestPalette(t, sch, 16)
	chunks := Partition(sch, 16, pal)

	require.Len(t, chunks, 1, "the all-air chunk at x=0..15 is dropped")
	require.Equal(t, [3]int32{16, 0, 0}, chunks[0].Origin)
}

func TestPartitionPacksQuadruplesInOrder(t *testing.T) {
	sch := schematic.NewMemory(16, 16, 16)
	sch.Set(2, 0, 0, blockkey.New("minecraft:stone", nil))
	sch.Set(1, 0, 0, blockkey.New("minecraft:stone", nil))

	pal := buildTestPalette(t, sch, 16)
	chunks := Partition(sch, 16, pal)
	require.Len(t, chunks, 1)
	require.Equal(t, 2, chunks[0].Len())

	x0, _, _, idx0 := chunks[0].At(0)
	x1, _, _, idx1 := chunks[0].At(1)
	require.Equal(t, int32(1), x0, "lexicographic world-coordinate order within the chunk")
	require.Equal(t, int32(2), x1)
	require.Equal(t, int32(1), idx0)
	require.Equal(t, int32(1), idx1)
}
