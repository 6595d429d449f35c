package modelresolve

// builtinOverrideRef implements spec 4.B.2: a small table of model refs
// that are generated rather than loaded from the resource pack, selected
// by a block property where one applies (chest variants by `type`; the
// shulker box has a single variant). Returns the canned model key and true
// if ref is covered.
func builtinOverrideRef(ref string, props map[string]string) (string, bool) {
	switch ref {
	case "block/chest", "block/trapped_chest", "entity/chest":
		switch props["type"] {
		case "left":
			return "builtin/chest_left", true
		case "right":
			return "builtin/chest_right", true
		default:
			return "builtin/chest_single", true
		}
	case "block/shulker_box", "entity/shulker_box":
		return "builtin/shulker_box", true
	}
	return "", false
}

var fullCube = Element{
	From: [3]float32{0, 0, 0},
	To:   [3]float32{16, 16, 16},
	Faces: map[FaceName]*Face{
		East:  {Texture: "#all", UV: [4]float32{0, 0, 16, 16}},
		West:  {Texture: "#all", UV: [4]float32{0, 0, 16, 16}},
		Up:    {Texture: "#all", UV: [4]float32{0, 0, 16, 16}},
		Down:  {Texture: "#all", UV: [4]float32{0, 0, 16, 16}},
		South: {Texture: "#all", UV: [4]float32{0, 0, 16, 16}},
		North: {Texture: "#all", UV: [4]float32{0, 0, 16, 16}},
	},
}

// builtinModels holds the canned single-element boxes for the overrides
// above. Real packs ship bespoke geometry for these (a chest is usually two
// half-height elements); one full-cube element per variant is enough to
// exercise the override branch end-to-end without depending on any one
// pack's file layout.
var builtinModels = map[string]Model{
	"builtin/chest_single": {Textures: map[string]string{"all": "entity/chest/normal"}, Elements: []Element{fullCube}},
	"builtin/chest_left":   {Textures: map[string]string{"all": "entity/chest/normal_left"}, Elements: []Element{fullCube}},
	"builtin/chest_right":  {Textures: map[string]string{"all": "entity/chest/normal_right"}, Elements: []Element{fullCube}},
	"builtin/shulker_box":  {Textures: map[string]string{"all": "entity/shulker/shulker"}, Elements: []Element{fullCube}},
}
