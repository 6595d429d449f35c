package palette

// InvisibleSet tells the compiler which block names contribute nothing to
// the occupancy grid (spec 4.F.4: "air, barrier, light, cave_air, etc.").
type InvisibleSet interface {
	Invisible(name string) bool
}

// DefaultInvisibleSet covers the common vanilla-style invisible names.
type DefaultInvisibleSet struct{}

var invisibleNames = map[string]bool{
	"minecraft:air":            true,
	"minecraft:cave_air":       true,
	"minecraft:void_air":       true,
	"minecraft:barrier":        true,
	"minecraft:light":          true,
	"minecraft:structure_void": true,
}

func (DefaultInvisibleSet) Invisible(name string) bool {
	return invisibleNames[name]
}
