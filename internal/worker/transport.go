// Package worker implements the build session's worker pool and the block
// array transport that feeds it (spec 4.I). It is grounded on the teacher's
// GenerateVoxelsParallel / GenerateSDFParallel pattern in
// internal/loader/voxel_core.go: a pond.Pool, a sync.WaitGroup tracking
// in-flight submissions, and a mutex-guarded merge of per-task local results
// into shared state.
package worker

import "github.com/nicolasmd87/voxelmesh/internal/chunkpart"

// BlockHeader is the 16-byte transport header from spec 4.I:
// (block_count:u32, origin:i32x3).
type BlockHeader struct {
	BlockCount uint32
	Origin     [3]int32
}

// BlockView is what a worker actually reads: a header plus the packed block
// quadruples, either a zero-copy view onto the sender's buffer (shared
// memory transport) or an owned slice whose backing array the sender has
// given up (ownership transport). Size travels alongside the header so the
// receiver can reconstruct a chunkpart.IndexedChunk; the wire format itself
// is just the 16 bytes the spec names followed by the blocks.
type BlockView struct {
	Header BlockHeader
	Size   [3]uint32
	Blocks []int32
}

// Chunk reconstructs the chunkpart.IndexedChunk a worker merges against.
func (v BlockView) Chunk() chunkpart.IndexedChunk {
	return chunkpart.IndexedChunk{
		Origin: v.Header.Origin,
		Size:   v.Size,
		Packed: v.Blocks,
	}
}

// Transport hands a chunk's block array to a worker per spec 4.I: "If the
// host exposes shared memory... the worker reads by view, not by copy.
// Otherwise the block array is transferred (ownership moved) to avoid a
// copy."
type Transport interface {
	Send(chunk *chunkpart.IndexedChunk) BlockView
}

// HostCapabilities reports what the runtime environment offers; a build
// session picks a Transport from this once, up front.
type HostCapabilities struct {
	SharedMemory bool
}

// NewTransport picks the transport spec 4.I describes for the given host.
func NewTransport(caps HostCapabilities) Transport {
	if caps.SharedMemory {
		return SharedMemoryTransport{}
	}
	return OwnershipTransport{}
}

// SharedMemoryTransport returns a view onto the sender's own backing array;
// the sender may keep reading it (e.g. for diagnostics) but must not mutate
// it concurrently with the worker.
type SharedMemoryTransport struct{}

func (SharedMemoryTransport) Send(chunk *chunkpart.IndexedChunk) BlockView {
	return BlockView{
		Header: BlockHeader{BlockCount: uint32(chunk.Len()), Origin: chunk.Origin},
		Size:   chunk.Size,
		Blocks: chunk.Packed,
	}
}

// OwnershipTransport moves the block array to the worker: the sender's
// chunk is left empty so it cannot be reused after the send.
type OwnershipTransport struct{}

func (OwnershipTransport) Send(chunk *chunkpart.IndexedChunk) BlockView {
	blocks := chunk.Packed
	header := BlockHeader{BlockCount: uint32(chunk.Len()), Origin: chunk.Origin}
	size := chunk.Size
	chunk.Packed = nil
	return BlockView{Header: header, Size: size, Blocks: blocks}
}
