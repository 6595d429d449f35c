package palette

import (
	"sort"
	"strings"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/blockmesh"
	"github.com/nicolasmd87/voxelmesh/internal/blockstate"
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/log"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
	"go.uber.org/zap"
)

const defaultNamespace = "minecraft"

func stripNamespace(name string) string {
	if idx := strings.IndexByte(name, ':'); idx >= 0 && name[:idx] == defaultNamespace {
		return name[idx+1:]
	}
	return name
}

// Compile implements spec 4.F: collect sch's distinct BlockKeys by
// fingerprint, sort them by canonical string (so dense indices are assigned
// deterministically across two builds of the same schematic), and build one
// Entry per real (non-invisible) block.
func Compile(ctx *buildctx.Context, sch schematic.Schematic, chunkSide int, invisible InvisibleSet, cat Categorizer) (*Palette, error) {
	p := &Palette{indexByFingerprint: make(map[uint64]int)}

	seen := make(map[uint64]bool)
	var distinct []blockkey.BlockKey

	cursor := sch.IterChunks(chunkSide)
	for {
		chunk, ok := cursor.Next()
		if !ok {
			break
		}
		for _, b := range chunk.Blocks {
			fp := b.Key.Fingerprint()
			if seen[fp] {
				continue
			}
			seen[fp] = true
			distinct = append(distinct, b.Key)
		}
	}

	// Stable secondary ordering on the canonical string, so a palette built
	// from two cursors that happen to enumerate chunks in different (but
	// still valid) orders still assigns identical indices (spec §8
	// "Determinism").
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Canonical() < distinct[j].Canonical()
	})

	for _, key := range distinct {
		if invisible.Invisible(key.Name) {
			continue
		}

		entry, err := compileEntry(ctx, key, cat)
		if err != nil {
			return nil, err
		}

		idx := len(p.Entries)
		p.Entries = append(p.Entries, entry)
		p.indexByFingerprint[key.Fingerprint()] = idx
	}

	log.Log.Info("palette compiled", zap.Int("distinct_blocks", len(distinct)), zap.Int("real_entries", len(p.Entries)))
	return p, nil
}

func compileEntry(ctx *buildctx.Context, key blockkey.BlockKey, cat Categorizer) (Entry, error) {
	name := stripNamespace(key.Name)
	path := "blockstates/" + name + ".json"

	raw, ok := ctx.Resources.ReadString(path)
	if !ok {
		log.Log.Debug("blockstate resource missing, treating as invisible", zap.String("path", path))
		return Entry{}, nil
	}

	def, err := blockstate.Parse(raw)
	if err != nil {
		return Entry{}, err
	}

	category := cat.Categorize(key.Name, key.Properties)
	quads, err := blockmesh.Build(ctx, key, def, category)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		BlockKey:       key,
		Category:       category,
		OcclusionFlags: computeOcclusionFlags(quads),
		Geometries:     groupByMaterial(quads),
	}, nil
}

// groupByMaterial flattens blockmesh.Quads into one GeometryGroup per
// material_index, preserving first-seen material order (spec 4.F.2).
func groupByMaterial(quads []blockmesh.Quad) []GeometryGroup {
	order := make([]uint32, 0)
	groups := make(map[uint32]*GeometryGroup)

	for _, q := range quads {
		g, ok := groups[q.MaterialIndex]
		if !ok {
			g = &GeometryGroup{MaterialIndex: q.MaterialIndex}
			groups[q.MaterialIndex] = g
			order = append(order, q.MaterialIndex)
		}

		base := uint32(len(g.Positions) / 3)
		for _, v := range q.Vertices {
			g.Positions = append(g.Positions, v.Position[0], v.Position[1], v.Position[2])
			g.Normals = append(g.Normals, v.Normal[0], v.Normal[1], v.Normal[2])
			g.UVs = append(g.UVs, v.UV[0], v.UV[1])
		}
		// spec 4.D.4: two triangles per quad, corner order (0,1,2,2,1,3).
		g.Indices = append(g.Indices, base+0, base+1, base+2, base+2, base+1, base+3)
	}

	result := make([]GeometryGroup, 0, len(order))
	for _, idx := range order {
		result = append(result, *groups[idx])
	}
	return result
}
