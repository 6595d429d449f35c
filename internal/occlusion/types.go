// Package occlusion implements the occlusion oracle (spec 4.E): given a
// world with random block access, a block, and its position, it computes a
// conservative 6-bit culling mask. It is deliberately permissive — the
// chunk merger (4.H) re-checks occlusion_flags face by face and is the
// authoritative, chunk-boundary-safe test.
package occlusion

import "github.com/nicolasmd87/voxelmesh/internal/modelresolve"

// Position is a block's integer world coordinate.
type Position struct {
	X, Y, Z int
}

// World is random block access by world position (spec 4.E "a world with
// random read").
type World interface {
	BlockAt(p Position) (name string, props map[string]string, ok bool)
}

// faceOffset gives each canonical face's unit neighbor offset, in the same
// order as modelresolve.AllFaces so the resulting mask's bit order (east,
// west, up, down, south, north) matches spec 4.E directly.
var faceOffset = map[modelresolve.FaceName]Position{
	modelresolve.East:  {1, 0, 0},
	modelresolve.West:  {-1, 0, 0},
	modelresolve.Up:    {0, 1, 0},
	modelresolve.Down:  {0, -1, 0},
	modelresolve.South: {0, 0, 1},
	modelresolve.North: {0, 0, -1},
}

var faceBit = map[modelresolve.FaceName]uint8{
	modelresolve.East:  1 << 0,
	modelresolve.West:  1 << 1,
	modelresolve.Up:    1 << 2,
	modelresolve.Down:  1 << 3,
	modelresolve.South: 1 << 4,
	modelresolve.North: 1 << 5,
}

var oppositeFace = map[string]modelresolve.FaceName{
	"east":  modelresolve.West,
	"west":  modelresolve.East,
	"up":    modelresolve.Down,
	"down":  modelresolve.Up,
	"south": modelresolve.North,
	"north": modelresolve.South,
}

func add(p Position, o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}
