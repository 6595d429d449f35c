package buildsession

import (
	"context"
	"sync"
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
	"github.com/nicolasmd87/voxelmesh/internal/worker"
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

func twoStoneSchematic() schematic.Schematic {
	sch := schematic.NewMemory(2, 1, 1)
	sch.Set(0, 0, 0, blockkey.New("minecraft:stone", nil))
	sch.Set(1, 0, 0, blockkey.New("minecraft:stone", nil))
	return sch
}

func stoneResources() *resource.MemoryProvider {
	rp := resource.NewMemoryProvider()
	rp.Strings["blockstates/stone.json"] = `{"variants": {"": {"model": "block/stone"}}}`
	rp.Strings["models/block/stone.json"] = fullCubeModel("block/stone")
	return rp
}

func TestRunIncrementalDeliversSolidMeshForBothStones(t *testing.T) {
	s, err := New(buildctx.DefaultBuildOptions(), stoneResources(), worker.HostCapabilities{})
	require.NoError(t, err)
	defer s.Close()

	var mu sync.Mutex
	total := 0
	_, err = s.RunIncremental(context.Background(), twoStoneSchematic(), palette.DefaultInvisibleSet{}, palette.DefaultCategorizer{}, func(r ChunkResult) {
		mu.Lock()
		defer mu.Unlock()
		if r.Node.Category == category.Solid {
			total += len(r.Node.Positions) / 3
		}
	})
	require.NoError(t, err)
	require.Equal(t, 40, total, "two stones, shared faces culled")
}

func TestRunBatchedReturnsOneNodePerCategory(t *testing.T) {
	s, err := New(buildctx.DefaultBuildOptions(), stoneResources(), worker.HostCapabilities{SharedMemory: true})
	require.NoError(t, err)
	defer s.Close()

	nodes, summary, err := s.RunBatched(context.Background(), twoStoneSchematic(), palette.DefaultInvisibleSet{}, palette.DefaultCategorizer{})
	require.NoError(t, err)
	require.NotNil(t, summary)
	require.Len(t, nodes, 1)
	require.Equal(t, category.Solid, nodes[0].Category)
	require.Equal(t, [3]float32{1, 1, 1}, nodes[0].Scale, "batched mode is already world-space, no quantization scale")
}
