package face

// normalizeRotation folds an arbitrary degree value onto {0, 90, 180, 270}
// (spec 4.C: "normalize rotation ∈ {0,90,180,270}").
func normalizeRotation(degrees int) int {
	r := degrees % 360
	if r < 0 {
		r += 360
	}
	return (r / 90) * 90
}

// rotateUVStep is one 90-degree quarter turn of a UV rectangle's corners,
// the discrete swap form pinned by spec §9 over an affine rotate-about-
// center ("the discrete form is specified because it is the one used in
// the current renderer").
func rotateUVStep(uv [4]float32) [4]float32 {
	u0, v0, u1, v1 := uv[0], uv[1], uv[2], uv[3]
	return [4]float32{v0, 1 - u1, v1, 1 - u0}
}

// RotateUV applies normalizeRotation(degrees)/90 quarter-turns to uv. Zero
// rotation returns uv unchanged; four quarter-turns is the identity (spec
// §8 "UV rotation law").
func RotateUV(uv [4]float32, degrees int) [4]float32 {
	steps := normalizeRotation(degrees) / 90
	for i := 0; i < steps; i++ {
		uv = rotateUVStep(uv)
	}
	return uv
}
