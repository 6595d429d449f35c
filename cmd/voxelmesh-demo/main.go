// Command voxelmesh-demo builds a tiny in-memory schematic and resource
// pack and runs one build session end to end, printing each chunk-category
// mesh as it is produced and the final error-kind summary. It exists to
// exercise the whole pipeline (palette compile -> partition -> worker
// dispatch -> mesh adapter) the way the teacher's runtime/main.go exercises
// a full scene load, minus anything that needs a window or a GPU context.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/buildsession"
	"github.com/nicolasmd87/voxelmesh/internal/log"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
	"github.com/nicolasmd87/voxelmesh/internal/worker"
)

const fullCube = `{
	"textures": {"all": "%s"},
	"elements": [{
		"from": [0,0,0], "to": [16,16,16],
		"faces": {
			"up": {"texture": "#all"}, "down": {"texture": "#all"},
			"north": {"texture": "#all"}, "south": {"texture": "#all"},
			"east": {"texture": "#all"}, "west": {"texture": "#all"}
		}
	}]
}`

func main() {
	log.InitDevelopment()

	resources := resource.NewMemoryProvider()
	resources.Strings["blockstates/stone.json"] = `{"variants": {"": {"model": "block/stone"}}}`
	resources.Strings["models/block/stone.json"] = fmt.Sprintf(fullCube, "block/stone")
	resources.Strings["blockstates/glass.json"] = `{"variants": {"": {"model": "block/glass"}}}`
	resources.Strings["models/block/glass.json"] = fmt.Sprintf(fullCube, "block/glass")

	sch := demoSchematic()

	session, err := buildsession.New(buildctx.DefaultBuildOptions(), resources, worker.HostCapabilities{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "build session setup failed:", err)
		os.Exit(1)
	}
	defer session.Close()

	chunkCount := 0
	summary, err := session.RunIncremental(context.Background(), sch, palette.DefaultInvisibleSet{}, palette.DefaultCategorizer{}, func(r buildsession.ChunkResult) {
		chunkCount++
		fmt.Printf("chunk origin=%v category=%s vertices=%d groups=%d\n",
			r.Origin, r.Node.Category, len(r.Node.Positions)/3, len(r.Node.Groups))
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "build run failed:", err)
		os.Exit(1)
	}

	fmt.Printf("delivered %d chunk meshes\n", chunkCount)
	fmt.Printf("error counts: %v\n", summary.Counts())
	if failed := summary.Failed(); len(failed) > 0 {
		fmt.Printf("%d chunk(s) failed terminally\n", len(failed))
	}
}

// demoSchematic lays a 4x1x4 floor of stone with a single glass block
// embedded in it, enough to exercise the chunk merger's culling between
// opaque and transparent neighbors and both mesh categories (solid and
// transparent) in one run.
func demoSchematic() schematic.Schematic {
	sch := schematic.NewMemory(4, 1, 4)
	for x := int32(0); x < 4; x++ {
		for z := int32(0); z < 4; z++ {
			key := blockkey.New("minecraft:stone", nil)
			if x == 2 && z == 2 {
				key = blockkey.New("minecraft:glass", nil)
			}
			sch.Set(x, 0, z, key)
		}
	}
	return sch
}
