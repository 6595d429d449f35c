package palette

import (
	"strings"

	"github.com/nicolasmd87/voxelmesh/internal/category"
)

// Categorizer assigns a PaletteEntry's category (spec §3 PaletteEntry
// "category: Solid|Transparent|Water|Emissive|Redstone"). The set of names
// per category is pack-defined; DefaultCategorizer covers the common
// vanilla-style cases so the compiler has sensible behavior standalone.
type Categorizer interface {
	Categorize(name string, props map[string]string) category.Category
}

type DefaultCategorizer struct{}

func (DefaultCategorizer) Categorize(name string, props map[string]string) category.Category {
	switch {
	case strings.Contains(name, "water"):
		return category.Water
	case strings.Contains(name, "redstone"):
		return category.Redstone
	case strings.Contains(name, "lava"),
		strings.Contains(name, "glowstone"),
		strings.Contains(name, "lantern"),
		strings.Contains(name, "torch"):
		return category.Emissive
	case strings.Contains(name, "glass"),
		strings.Contains(name, "leaves"),
		strings.Contains(name, "ice"):
		return category.Transparent
	default:
		return category.Solid
	}
}
