package blockmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/nicolasmd87/voxelmesh/internal/modelresolve"
)

// applyElementRotation implements spec 4.D's element-rotation step: a
// rotation matrix around `axis` by `angle` (deg), applied about
// rotation.origin, with an optional rescale of the two axes orthogonal to
// the rotation axis so a 45-degree face keeps its apparent footprint.
func applyElementRotation(p [3]float32, rot *modelresolve.Rotation) [3]float32 {
	if rot == nil {
		return p
	}

	v := mgl32.Vec3{p[0], p[1], p[2]}.Sub(mgl32.Vec3{rot.Origin[0], rot.Origin[1], rot.Origin[2]})

	angleRad := mgl32.DegToRad(rot.Angle)
	if rot.Rescale {
		scale := float32(1 / math.Cos(float64(angleRad)))
		switch rot.Axis {
		case "x":
			v[1] *= scale
			v[2] *= scale
		case "y":
			v[0] *= scale
			v[2] *= scale
		case "z":
			v[0] *= scale
			v[1] *= scale
		}
	}

	var m mgl32.Mat3
	switch rot.Axis {
	case "x":
		m = mgl32.Rotate3DX(angleRad)
	case "y":
		m = mgl32.Rotate3DY(angleRad)
	case "z":
		m = mgl32.Rotate3DZ(angleRad)
	default:
		m = mgl32.Ident3()
	}

	v = m.Mul3x1(v)
	v = v.Add(mgl32.Vec3{rot.Origin[0], rot.Origin[1], rot.Origin[2]})
	return [3]float32{v[0], v[1], v[2]}
}

// applyElementRotationToNormal rotates a direction vector by the same
// matrix as applyElementRotation, without the translation (normals are not
// rescaled: rescale only stretches the footprint).
func applyElementRotationToNormal(n [3]float32, rot *modelresolve.Rotation) [3]float32 {
	if rot == nil {
		return n
	}
	angleRad := mgl32.DegToRad(rot.Angle)
	var m mgl32.Mat3
	switch rot.Axis {
	case "x":
		m = mgl32.Rotate3DX(angleRad)
	case "y":
		m = mgl32.Rotate3DY(angleRad)
	case "z":
		m = mgl32.Rotate3DZ(angleRad)
	default:
		return n
	}
	v := m.Mul3x1(mgl32.Vec3{n[0], n[1], n[2]})
	return [3]float32{v[0], v[1], v[2]}
}

var blockCenter = mgl32.Vec3{0.5, 0.5, 0.5}

// applyHolderRotation implements spec 4.D's holder-rotation step: x, y, z
// axis rotations in order about the block center, with the sign inversion
// on all three angles pinned by spec §9 ("negate all three components
// before building the matrix") so positive holder angles agree with the
// source-data convention.
func applyHolderRotation(p [3]float32, x, y, z int) [3]float32 {
	if x == 0 && y == 0 && z == 0 {
		return p
	}
	v := mgl32.Vec3{p[0], p[1], p[2]}.Sub(blockCenter)
	v = holderRotationMatrix(x, y, z).Mul3x1(v)
	v = v.Add(blockCenter)
	return [3]float32{v[0], v[1], v[2]}
}

func applyHolderRotationToNormal(n [3]float32, x, y, z int) [3]float32 {
	if x == 0 && y == 0 && z == 0 {
		return n
	}
	v := holderRotationMatrix(x, y, z).Mul3x1(mgl32.Vec3{n[0], n[1], n[2]})
	return [3]float32{v[0], v[1], v[2]}
}

func holderRotationMatrix(x, y, z int) mgl32.Mat3 {
	rx := mgl32.DegToRad(float32(-x))
	ry := mgl32.DegToRad(float32(-y))
	rz := mgl32.DegToRad(float32(-z))
	m := mgl32.Rotate3DX(rx)
	m = mgl32.Rotate3DY(ry).Mul3(m)
	m = mgl32.Rotate3DZ(rz).Mul3(m)
	return m
}
