package chunkpart

// SplitChunk implements the IndexOverflow recovery path (spec §7): when a
// chunk's merged vertex count would exceed a u32 index's range, the chunk
// partitioner quarters its footprint (X/Z) and the caller re-merges each
// quarter independently. Recursing (feeding a quarter back into SplitChunk)
// keeps halving until each piece is small enough.
func SplitChunk(chunk IndexedChunk) []IndexedChunk {
	halfX := (chunk.Size[0] + 1) / 2
	halfZ := (chunk.Size[2] + 1) / 2
	if halfX == 0 {
		halfX = 1
	}
	if halfZ == 0 {
		halfZ = 1
	}

	midX := chunk.Origin[0] + int32(halfX)
	midZ := chunk.Origin[2] + int32(halfZ)

	quarters := [4]IndexedChunk{
		{Origin: chunk.Origin, Size: [3]uint32{halfX, chunk.Size[1], halfZ}},
		{Origin: [3]int32{midX, chunk.Origin[1], chunk.Origin[2]}, Size: [3]uint32{chunk.Size[0] - halfX, chunk.Size[1], halfZ}},
		{Origin: [3]int32{chunk.Origin[0], chunk.Origin[1], midZ}, Size: [3]uint32{halfX, chunk.Size[1], chunk.Size[2] - halfZ}},
		{Origin: [3]int32{midX, chunk.Origin[1], midZ}, Size: [3]uint32{chunk.Size[0] - halfX, chunk.Size[1], chunk.Size[2] - halfZ}},
	}

	for i := 0; i < chunk.Len(); i++ {
		x, y, z, idx := chunk.At(i)
		q := quarterFor(x, z, midX, midZ)
		quarters[q].Packed = append(quarters[q].Packed, x, y, z, idx)
	}

	out := quarters[:0:0]
	for _, q := range quarters {
		if len(q.Packed) > 0 {
			out = append(out, q)
		}
	}
	return out
}

func quarterFor(x, z, midX, midZ int32) int {
	switch {
	case x < midX && z < midZ:
		return 0
	case x >= midX && z < midZ:
		return 1
	case x < midX && z >= midZ:
		return 2
	default:
		return 3
	}
}
