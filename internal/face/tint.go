package face

import "strings"

// Tint sentinels (spec 4.C: "texture begins with a water/lava/redstone
// sentinel"). These mirror the resource-pack path prefixes the resolved
// texture name carries after modelresolve.ResolveTextureRef.
const (
	waterPrefix    = "block/water"
	lavaPrefix     = "block/lava"
	redstonePrefix = "block/redstone_dust"

	// sentinelOverlay marks a face whose texture is a decorative overlay
	// layer rather than real geometry (spec 4.C: "its texture is the
	// sentinel overlay"). Parallels modelresolve's "missing_texture"
	// sentinel convention.
	sentinelOverlay = "overlay"
)

var (
	waterColor = [3]float32{0.247, 0.463, 0.894}
	lavaColor  = [3]float32{1.0, 0.42, 0.0}
	grassColor = [3]float32{0.373, 0.620, 0.250}
)

// redstoneColorTable holds 16 entries, power 0 (off, dark) through 15 (full
// power, bright red), indexed directly by the block's integer `power`
// property (spec 4.C, spec §8 "Redstone dust power=7").
var redstoneColorTable = buildRedstoneColorTable()

func buildRedstoneColorTable() [16][3]float32 {
	var table [16][3]float32
	for power := 0; power < 16; power++ {
		t := float32(power) / 15
		table[power] = [3]float32{
			0.3 + 0.7*t,
			0.05 * t,
			0.05 * t,
		}
	}
	return table
}

func isWaterTexture(texture string) bool {
	return strings.HasPrefix(texture, waterPrefix)
}

func isLavaTexture(texture string) bool {
	return strings.HasPrefix(texture, lavaPrefix)
}

func isRedstoneTexture(texture string) bool {
	return strings.HasPrefix(texture, redstonePrefix)
}

func isOverlaySentinel(texture string) bool {
	return texture == sentinelOverlay
}

// tintFor implements spec 4.C's tint rules: tintindex absent means no tint
// at all (the caller skips tinting); otherwise the texture's domain class
// picks the color, falling back to grass tint for anything untagged.
func tintFor(texture string, props map[string]string) [3]float32 {
	switch {
	case isWaterTexture(texture):
		return waterColor
	case isLavaTexture(texture):
		return lavaColor
	case isRedstoneTexture(texture):
		return redstoneColorTable[redstonePower(props)]
	default:
		return grassColor
	}
}

// redstonePower reads the integer `power` property (0-15), defaulting to 0
// for absent or unparseable values.
func redstonePower(props map[string]string) int {
	raw, ok := props["power"]
	if !ok {
		return 0
	}
	power := 0
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0
		}
		power = power*10 + int(c-'0')
	}
	if power > 15 {
		power = 15
	}
	return power
}
