package worker

import (
	"context"
	"sync"
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

func testPalette(t *testing.T) (*palette.Palette, []chunkpart.IndexedChunk) {
	t.Helper()
	rp := resource.NewMemoryProvider()
	rp.Strings["blockstates/stone.json"] = `{"variants": {"": {"model": "block/stone"}}}`
	rp.Strings["models/block/stone.json"] = fullCubeModel("block/stone")

	sch := schematic.NewMemory(2, 1, 1)
	sch.Set(0, 0, 0, blockkey.New("minecraft:stone", nil))
	sch.Set(1, 0, 0, blockkey.New("minecraft:stone", nil))

	ctx, err := buildctx.New(buildctx.DefaultBuildOptions(), rp)
	require.NoError(t, err)

	pal, err := palette.Compile(ctx, sch, 16, palette.DefaultInvisibleSet{}, palette.DefaultCategorizer{})
	require.NoError(t, err)

	chunks := chunkpart.Partition(sch, 16, pal)
	require.Len(t, chunks, 1)
	return pal, chunks
}

func TestDispatchIncrementalBeforeBroadcastIsNotReady(t *testing.T) {
	pal, chunks := testPalette(t)
	_ = pal

	p := New(2, NewTransport(HostCapabilities{}))
	var mu sync.Mutex
	var errs []error
	p.DispatchIncremental(chunks, func(r Result, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		}
	})
	p.Close()

	require.NotEmpty(t, errs)
	var recov *buildctx.RecoverableError
	require.ErrorAs(t, errs[0], &recov)
	require.Equal(t, buildctx.ErrNotReady, recov.Kind)
}

func TestDispatchIncrementalDeliversMergedSolidMesh(t *testing.T) {
	pal, chunks := testPalette(t)

	p := New(2, NewTransport(HostCapabilities{}))
	require.NoError(t, p.BroadcastPalette(context.Background(), pal))

	var mu sync.Mutex
	results := make(map[category.Category]int)
	p.DispatchIncremental(chunks, func(r Result, err error) {
		require.NoError(t, err)
		mu.Lock()
		defer mu.Unlock()
		results[r.Category] += r.Mesh.VertexCount()
	})
	p.Close()

	require.Equal(t, 40, results[category.Solid], "two stones, shared faces culled")
}

func TestDispatchBatchedAccumulatesAcrossChunks(t *testing.T) {
	pal, chunks := testPalette(t)
	doubled := append(append([]chunkpart.IndexedChunk{}, chunks...), chunks...)

	p := New(2, NewTransport(HostCapabilities{SharedMemory: true}))
	require.NoError(t, p.BroadcastPalette(context.Background(), pal))

	acc, err := p.DispatchBatched(doubled)
	require.NoError(t, err)
	p.Close()

	solid := acc[category.Solid]
	require.NotNil(t, solid)
	require.Equal(t, 80, len(solid.Positions)/3, "two copies of the same chunk merged into one batch")
}

func TestOwnershipTransportClearsSourceChunk(t *testing.T) {
	_, chunks := testPalette(t)
	chunk := chunks[0]

	view := OwnershipTransport{}.Send(&chunk)
	require.NotEmpty(t, view.Blocks)
	require.Nil(t, chunk.Packed, "ownership transport must leave the source unusable")
}

func TestSharedMemoryTransportKeepsSourceReadable(t *testing.T) {
	_, chunks := testPalette(t)
	chunk := chunks[0]

	view := SharedMemoryTransport{}.Send(&chunk)
	require.NotEmpty(t, view.Blocks)
	require.NotNil(t, chunk.Packed, "shared memory transport is a view, source stays readable")
}
