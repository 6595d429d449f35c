package chunkmerge

// appendTriangle implements spec 4.H.4-6: quantize a kept triangle's three
// vertices chunk-local and extend the currently-open material group, or
// open a new one if the material changed. A vertex identical (position,
// normal, uv) to one of the previous same-material triangle's vertices
// reuses its index, so the two triangles of a quad share their common
// corners (4 vertices per quad).
func appendTriangle(a *vertexAccum, tri keptTriangle, origin [3]int32) {
	var prev []uint32
	if n := len(a.indices); n >= 3 && a.groups[len(a.groups)-1].MaterialIndex == tri.materialIndex {
		prev = a.indices[n-3:]
	}
	for v := 0; v < 3; v++ {
		qPos := quantizePosition(tri.blockX, tri.blockY, tri.blockZ, origin, tri.positions[v])
		qNormal := quantizeNormal(tri.normals[v])

		vertexIndex := uint32(len(a.positions) / 3)
		reused := false
		for _, pi := range prev {
			b := int(pi)
			if [3]int16{a.positions[3*b], a.positions[3*b+1], a.positions[3*b+2]} == qPos &&
				[3]int8{a.normals[3*b], a.normals[3*b+1], a.normals[3*b+2]} == qNormal &&
				[2]float32{a.uvs[2*b], a.uvs[2*b+1]} == tri.uvs[v] {
				vertexIndex, reused = pi, true
			}
		}
		if !reused {
			a.positions = append(a.positions, qPos[0], qPos[1], qPos[2])
			a.normals = append(a.normals, qNormal[0], qNormal[1], qNormal[2])
			a.uvs = append(a.uvs, tri.uvs[v][0], tri.uvs[v][1])
		}
		a.indices = append(a.indices, vertexIndex)

		openOrExtendGroup(a, tri.materialIndex)
	}
}

func vertexUV(flat []float32, idx uint32) [2]float32 {
	base := idx * 2
	return [2]float32{flat[base], flat[base+1]}
}

// openOrExtendGroup implements spec 4.H.5: as vertices are appended,
// extend the current group if material matches, else close it and open a
// new one.
func openOrExtendGroup(a *vertexAccum, materialIndex uint32) {
	n := len(a.groups)
	if n > 0 && a.groups[n-1].MaterialIndex == materialIndex {
		a.groups[n-1].Count++
		return
	}
	a.groups = append(a.groups, Group{
		Start:         len(a.indices) - 1,
		Count:         1,
		MaterialIndex: materialIndex,
	})
}

func quantizePosition(blockX, blockY, blockZ int32, origin [3]int32, local [3]float32) [3]int16 {
	x := (float32(blockX-origin[0]) + local[0]) * PositionScale
	y := (float32(blockY-origin[1]) + local[1]) * PositionScale
	z := (float32(blockZ-origin[2]) + local[2]) * PositionScale
	return [3]int16{round16(x), round16(y), round16(z)}
}

func quantizeNormal(n [3]float32) [3]int8 {
	return [3]int8{round8(n[0] * NormalScale), round8(n[1] * NormalScale), round8(n[2] * NormalScale)}
}

func round16(v float32) int16 {
	if v >= 0 {
		return int16(v + 0.5)
	}
	return int16(v - 0.5)
}

func round8(v float32) int8 {
	if v >= 0 {
		return int8(v + 0.5)
	}
	return int8(v - 0.5)
}
