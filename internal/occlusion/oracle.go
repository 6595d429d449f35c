package occlusion

import (
	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/modelresolve"
)

// Compute implements spec 4.E: a conservative 6-bit culling mask for key at
// pos in world, bit order east/west/up/down/south/north.
//
// The glass and piston special cases are checked ahead of the blanket
// non-occluding/transparent rule because they're strictly more specific:
// glass is itself transparent, but still culls against other glass, and an
// extended piston culls exactly one face regardless of its own
// transparency classification.
func Compute(world World, pos Position, key blockkey.BlockKey, c Classifier) uint8 {
	if c.Glass(key.Name) {
		return glassMask(world, pos, c)
	}

	if c.Piston(key.Name) {
		if extended, ok := key.Get("extended"); ok && extended == "true" {
			return pistonMask(key)
		}
	}

	if c.NonOccluding(key.Name) || c.Transparent(key.Name) {
		return 0
	}

	return defaultMask(world, pos, c)
}

func glassMask(world World, pos Position, c Classifier) uint8 {
	var mask uint8
	for _, name := range modelresolve.AllFaces {
		neighborName, _, ok := world.BlockAt(add(pos, faceOffset[name]))
		if ok && c.Glass(neighborName) {
			mask |= faceBit[name]
		}
	}
	return mask
}

// pistonMask implements spec 4.E.3: an extended piston culls exactly the
// face opposite its `facing` property, independent of any neighbor.
func pistonMask(key blockkey.BlockKey) uint8 {
	facing, ok := key.Get("facing")
	if !ok {
		return 0
	}
	face, ok := oppositeFace[facing]
	if !ok {
		return 0
	}
	return faceBit[face]
}

func defaultMask(world World, pos Position, c Classifier) uint8 {
	var mask uint8
	for _, name := range modelresolve.AllFaces {
		neighborName, _, ok := world.BlockAt(add(pos, faceOffset[name]))
		if !ok {
			continue
		}
		if !c.NonOccluding(neighborName) && !c.Transparent(neighborName) {
			mask |= faceBit[name]
		}
	}
	return mask
}
