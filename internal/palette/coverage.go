package palette

import "github.com/nicolasmd87/voxelmesh/internal/blockmesh"

const planeEpsilon = 1e-4

// facePlane names the axis-aligned plane and the vertex-axis index the
// other two coordinates must span [0,1] on for that face to fully cover
// the unit square (spec 4.F.3).
type facePlane struct {
	axis      int // 0=x, 1=y, 2=z
	coord     float32
	bit       uint8
	normalRef [3]float32
}

var facePlanes = [6]facePlane{
	{axis: 0, coord: 1, bit: 1 << 0, normalRef: [3]float32{1, 0, 0}},  // east
	{axis: 0, coord: 0, bit: 1 << 1, normalRef: [3]float32{-1, 0, 0}}, // west
	{axis: 1, coord: 1, bit: 1 << 2, normalRef: [3]float32{0, 1, 0}},  // up
	{axis: 1, coord: 0, bit: 1 << 3, normalRef: [3]float32{0, -1, 0}}, // down
	{axis: 2, coord: 1, bit: 1 << 4, normalRef: [3]float32{0, 0, 1}},  // south
	{axis: 2, coord: 0, bit: 1 << 5, normalRef: [3]float32{0, 0, -1}}, // north
}

// computeOcclusionFlags implements spec 4.F.3: bit i is set iff some quad
// lies exactly on face i's plane, faces the right way, and its bounding
// box in the other two axes spans the full [0,1] unit square — i.e. a
// plain full-face quad, the form every vanilla full or directional block
// uses. A rotated or partial element never sets its bit, which is the
// conservative (safe-to-not-cull) direction.
func computeOcclusionFlags(quads []blockmesh.Quad) uint8 {
	var mask uint8
	for _, fp := range facePlanes {
		if mask&fp.bit != 0 {
			continue
		}
		for _, q := range quads {
			if quadFullyCoversFace(q, fp) {
				mask |= fp.bit
				break
			}
		}
	}
	return mask
}

func quadFullyCoversFace(q blockmesh.Quad, fp facePlane) bool {
	if !normalsAligned(q.Vertices[0].Normal, fp.normalRef) {
		return false
	}

	other1, other2 := otherAxes(fp.axis)
	min1, max1 := float32(1), float32(0)
	min2, max2 := float32(1), float32(0)

	for _, v := range q.Vertices {
		if abs32(v.Position[fp.axis]-fp.coord) > planeEpsilon {
			return false
		}
		min1, max1 = minMax(min1, max1, v.Position[other1])
		min2, max2 = minMax(min2, max2, v.Position[other2])
	}

	return nearZero(min1) && nearOne(max1) && nearZero(min2) && nearOne(max2)
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func normalsAligned(n, ref [3]float32) bool {
	dot := n[0]*ref[0] + n[1]*ref[1] + n[2]*ref[2]
	return dot > 0.99
}

func minMax(curMin, curMax, v float32) (float32, float32) {
	if v < curMin {
		curMin = v
	}
	if v > curMax {
		curMax = v
	}
	return curMin, curMax
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func nearZero(v float32) bool { return abs32(v) < planeEpsilon }
func nearOne(v float32) bool  { return abs32(v-1) < planeEpsilon }
