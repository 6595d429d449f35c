package occlusion

import "strings"

// Classifier tells the oracle which block names are non-occluding
// (contribute nothing to culling, e.g. air) or transparent (see-through
// but still a real block, e.g. leaves). Spec 4.E leaves the exact set
// pack-defined; Default covers the common vanilla-style names so the
// oracle has sensible behavior out of the box, and callers can swap in a
// pack-driven Classifier built from resource-pack metadata.
type Classifier interface {
	NonOccluding(name string) bool
	Transparent(name string) bool
	Glass(name string) bool
	Piston(name string) bool
}

// DefaultClassifier implements Classifier from name suffixes/substrings,
// the same "namespace:path" block names used throughout this package.
type DefaultClassifier struct{}

var nonOccludingNames = map[string]bool{
	"minecraft:air":       true,
	"minecraft:cave_air":  true,
	"minecraft:void_air":  true,
	"minecraft:structure_void": true,
}

func (DefaultClassifier) NonOccluding(name string) bool {
	return nonOccludingNames[name]
}

func (DefaultClassifier) Transparent(name string) bool {
	return strings.Contains(name, "glass") ||
		strings.Contains(name, "leaves") ||
		strings.Contains(name, "water") ||
		strings.Contains(name, "ice") && !strings.Contains(name, "packed_ice")
}

func (DefaultClassifier) Glass(name string) bool {
	return strings.Contains(name, "glass")
}

func (DefaultClassifier) Piston(name string) bool {
	return strings.Contains(name, "piston")
}
