// Package buildsession is the top-level coordinator (spec §5): it compiles
// the palette once, partitions the schematic into chunks, broadcasts the
// palette to the worker pool, dispatches chunk jobs, and hands finished
// nodes to the caller's sink. It is the cooperative main coordinator the
// spec describes sitting above the fixed-size worker pool.
package buildsession

import (
	"context"
	"math"
	"runtime"

	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/chunkpart"
	"github.com/nicolasmd87/voxelmesh/internal/log"
	"github.com/nicolasmd87/voxelmesh/internal/meshadapter"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
	"github.com/nicolasmd87/voxelmesh/internal/worker"
	"go.uber.org/zap"
)

// Session owns one build's Context, palette, and worker pool. A schematic
// or resource-pack change means building a new Session (spec §5: "rebuilt
// on schematic change and on resource-pack change").
type Session struct {
	Ctx  *buildctx.Context
	pool *worker.Pool
	pal  *palette.Palette
}

// New builds a Session. caps describes the host's transport capabilities
// (spec 4.I); the zero value picks ownership-transfer transport.
func New(opts buildctx.BuildOptions, resources resource.Provider, caps worker.HostCapabilities) (*Session, error) {
	ctx, err := buildctx.New(opts, resources)
	if err != nil {
		return nil, err
	}

	numWorkers := opts.ResolvedWorkerCount(runtime.NumCPU())
	pool := worker.New(numWorkers, worker.NewTransport(caps))

	return &Session{Ctx: ctx, pool: pool}, nil
}

// ChunkResult is one finished chunk-category mesh, already translated to
// host attributes (spec 4.K).
type ChunkResult struct {
	Origin [3]int32
	Node   *meshadapter.Node
}

// RunIncremental implements spec 4.I's incremental dispatch mode end to
// end: compile the palette, partition the schematic, broadcast, merge every
// chunk, and call onChunkMesh as each one is ready. Returns the build
// summary (spec §7) once every chunk has been processed.
func (s *Session) RunIncremental(ctx context.Context, sch schematic.Schematic, invisible palette.InvisibleSet, cat palette.Categorizer, onChunkMesh func(ChunkResult)) (*buildctx.Summary, error) {
	pal, chunks, err := s.prepare(ctx, sch, invisible, cat)
	if err != nil {
		return nil, err
	}

	chunks = splitOverflowing(chunks)

	s.pool.DispatchIncremental(chunks, func(r worker.Result, err error) {
		if err != nil {
			s.Ctx.Summary.Record(buildctx.ErrTransportFailure, err)
			return
		}
		node := meshadapter.Adapt(r.Mesh, s.Ctx.Materials)
		onChunkMesh(ChunkResult{Origin: r.Origin, Node: node})
	})

	log.Log.Info("build session incremental run complete",
		zap.String("build_id", s.Ctx.BuildID.String()),
		zap.Int("chunks", len(chunks)),
		zap.Int("palette_entries", len(pal.Entries)))

	return s.Ctx.Summary, nil
}

// RunBatched implements spec 4.I's batched dispatch mode: every chunk is
// merged in unquantized world space and folded into one WorldMesh per
// category, returned (already adapted to host nodes) once the whole
// schematic has been processed — the "finish batch" signal.
func (s *Session) RunBatched(ctx context.Context, sch schematic.Schematic, invisible palette.InvisibleSet, cat palette.Categorizer) ([]*meshadapter.Node, *buildctx.Summary, error) {
	pal, chunks, err := s.prepare(ctx, sch, invisible, cat)
	if err != nil {
		return nil, nil, err
	}

	chunks = splitOverflowing(chunks)

	batched, err := s.pool.DispatchBatched(chunks)
	if err != nil {
		s.Ctx.Summary.Record(buildctx.ErrTransportFailure, err)
		return nil, s.Ctx.Summary, err
	}

	nodes := make([]*meshadapter.Node, 0, len(batched))
	for _, mesh := range batched {
		nodes = append(nodes, meshadapter.AdaptWorld(mesh, s.Ctx.Materials))
	}

	log.Log.Info("build session batched run complete",
		zap.String("build_id", s.Ctx.BuildID.String()),
		zap.Int("chunks", len(chunks)),
		zap.Int("palette_entries", len(pal.Entries)))

	return nodes, s.Ctx.Summary, nil
}

func (s *Session) prepare(ctx context.Context, sch schematic.Schematic, invisible palette.InvisibleSet, cat palette.Categorizer) (*palette.Palette, []chunkpart.IndexedChunk, error) {
	pal, err := palette.Compile(s.Ctx, sch, s.Ctx.Options.ChunkSide, invisible, cat)
	if err != nil {
		return nil, nil, err
	}
	s.pal = pal

	if err := s.pool.BroadcastPalette(ctx, pal); err != nil {
		return nil, nil, err
	}

	chunks := chunkpart.Partition(sch, s.Ctx.Options.ChunkSide, pal)
	return pal, chunks, nil
}

// Close stops the worker pool, waiting for in-flight work to drain.
func (s *Session) Close() {
	s.pool.Close()
}

// maxMergeableVertices is the IndexOverflow threshold (spec §7): a chunk
// whose merged vertex count would exceed a u32 index's range is split
// instead of merged whole.
const maxMergeableVertices = math.MaxUint32

// splitOverflowing recursively quarters any chunk whose naive upper-bound
// vertex estimate (24 vertices per block, the full-cube worst case) would
// overflow a u32 index, per the IndexOverflow recovery path (spec §7).
func splitOverflowing(chunks []chunkpart.IndexedChunk) []chunkpart.IndexedChunk {
	out := make([]chunkpart.IndexedChunk, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, splitOneIfOverflowing(c)...)
	}
	return out
}

func splitOneIfOverflowing(c chunkpart.IndexedChunk) []chunkpart.IndexedChunk {
	const worstCaseVerticesPerBlock = 24
	if uint64(c.Len())*worstCaseVerticesPerBlock <= maxMergeableVertices {
		return []chunkpart.IndexedChunk{c}
	}
	if c.Size[0] <= 1 && c.Size[2] <= 1 {
		return []chunkpart.IndexedChunk{c}
	}

	var out []chunkpart.IndexedChunk
	for _, q := range chunkpart.SplitChunk(c) {
		out = append(out, splitOneIfOverflowing(q)...)
	}
	return out
}
