package occlusion

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/modelresolve"
	"github.com/stretchr/testify/require"
)

type mapWorld map[Position]blockkey.BlockKey

func (w mapWorld) BlockAt(p Position) (string, map[string]string, bool) {
	k, ok := w[p]
	if !ok {
		return "", nil, false
	}
	return k.Name, k.Properties, true
}

func TestComputeNoNeighborsIsUncullled(t *testing.T) {
	world := mapWorld{}
	key := blockkey.New("minecraft:stone", nil)
	mask := Compute(world, Position{0, 0, 0}, key, DefaultClassifier{})
	require.Zero(t, mask, "absent neighbors (air) never cull a face")
}

func TestComputeOpaqueNeighborCullsThatFace(t *testing.T) {
	world := mapWorld{
		{X: 1, Y: 0, Z: 0}: blockkey.New("minecraft:stone", nil),
	}
	key := blockkey.New("minecraft:dirt", nil)
	mask := Compute(world, Position{0, 0, 0}, key, DefaultClassifier{})
	require.Equal(t, faceBit[modelresolve.East], mask&faceBit[modelresolve.East], "opaque neighbor to the east culls the east face")
}

func TestComputeGlassCullsOnlyAgainstGlass(t *testing.T) {
	world := mapWorld{
		{X: 1, Y: 0, Z: 0}:  blockkey.New("minecraft:glass", nil),
		{X: -1, Y: 0, Z: 0}: blockkey.New("minecraft:stone", nil),
	}
	key := blockkey.New("minecraft:glass", nil)
	mask := Compute(world, Position{0, 0, 0}, key, DefaultClassifier{})

	require.NotZero(t, mask&faceBit[modelresolve.East], "glass culls against neighboring glass")
	require.Zero(t, mask&faceBit[modelresolve.West], "glass does not cull against opaque stone")
}

func TestComputeExtendedPistonCullsExactlyOppositeFacing(t *testing.T) {
	key := blockkey.New("minecraft:piston", map[string]string{"facing": "north", "extended": "true"})
	mask := Compute(mapWorld{}, Position{0, 0, 0}, key, DefaultClassifier{})
	require.Equal(t, faceBit[modelresolve.South], mask, "north-facing extended piston culls south, nothing else")
}

func TestComputeRetractedPistonUsesDefaultRule(t *testing.T) {
	world := mapWorld{
		{X: 0, Y: -1, Z: 0}: blockkey.New("minecraft:stone", nil),
	}
	key := blockkey.New("minecraft:piston", map[string]string{"facing": "north", "extended": "false"})
	mask := Compute(world, Position{0, 0, 0}, key, DefaultClassifier{})
	require.NotZero(t, mask&faceBit[modelresolve.Down])
}
