package blockmesh

import "github.com/nicolasmd87/voxelmesh/internal/modelresolve"

// cornerSelector picks, per axis, whether a corner sits at `from` (0) or
// `to` (1). faceCornerTable lists the 4 corners of each face in the fixed
// order (0,1,2,3) that Quad triangulates as (0,1,2),(2,1,3).
type cornerSelector [3]int

var faceCornerTable = map[modelresolve.FaceName][4]cornerSelector{
	modelresolve.Up:    {{0, 1, 0}, {1, 1, 0}, {0, 1, 1}, {1, 1, 1}},
	modelresolve.Down:  {{0, 0, 1}, {1, 0, 1}, {0, 0, 0}, {1, 0, 0}},
	modelresolve.East:  {{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1}},
	modelresolve.West:  {{0, 0, 1}, {0, 0, 0}, {0, 1, 1}, {0, 1, 0}},
	modelresolve.South: {{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}},
	modelresolve.North: {{1, 0, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}},
}

// faceNormals gives each canonical face's outward unit normal in
// block-local space, before element/holder rotation is applied.
var faceNormals = map[modelresolve.FaceName][3]float32{
	modelresolve.Up:    {0, 1, 0},
	modelresolve.Down:  {0, -1, 0},
	modelresolve.East:  {1, 0, 0},
	modelresolve.West:  {-1, 0, 0},
	modelresolve.South: {0, 0, 1},
	modelresolve.North: {0, 0, -1},
}

// cornerUVSlot assigns each face corner a (u,v) slot in the face's UV
// rectangle [u0,v0,u1,v1], matching the position corner order above.
var cornerUVSlot = [4][2]int{
	{0, 1}, // corner 0: u0, v1
	{1, 1}, // corner 1: u1, v1
	{0, 0}, // corner 2: u0, v0
	{1, 0}, // corner 3: u1, v0
}

func cornerPosition(sel cornerSelector, from, to [3]float32) [3]float32 {
	var p [3]float32
	for axis := 0; axis < 3; axis++ {
		if sel[axis] == 0 {
			p[axis] = from[axis]
		} else {
			p[axis] = to[axis]
		}
	}
	return p
}

// cornerUV reads the corner's (u,v) out of rect and emits (u, 1-v) per
// spec 4.D.5.
func cornerUV(rect [4]float32, slot [2]int) [2]float32 {
	u := rect[slot[0]*2]
	v := rect[1+slot[1]*2]
	return [2]float32{u, 1 - v}
}
