package modelresolve

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FaceName is one of the six canonical cube faces (spec §3).
type FaceName string

const (
	East  FaceName = "east"
	West  FaceName = "west"
	Up    FaceName = "up"
	Down  FaceName = "down"
	South FaceName = "south"
	North FaceName = "north"
)

// AllFaces lists the canonical faces in a fixed, deterministic order —
// bit order east,west,up,down,south,north matches the occlusion mask in
// spec 4.E.
var AllFaces = [6]FaceName{East, West, Up, Down, South, North}

// Face is one textured quad of an Element (spec §3).
type Face struct {
	Texture    string  `json:"texture"`
	UV         [4]float32 `json:"uv,omitempty"`
	HasUV      bool       `json:"-"`
	Rotation   int        `json:"rotation,omitempty"`
	TintIndex  *int       `json:"tintindex,omitempty"`
	CullFace   string     `json:"cullface,omitempty"`
}

func (f *Face) UnmarshalJSON(data []byte) error {
	type alias Face
	var a alias
	a.UV = [4]float32{0, 0, 16, 16}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var raw map[string]any
	_ = json.Unmarshal(data, &raw)
	_, a.HasUV = raw["uv"]
	*f = Face(a)
	return nil
}

// Rotation is an Element's optional rotation (spec §3).
type Rotation struct {
	Origin  [3]float32 `json:"origin"`
	Axis    string     `json:"axis"`
	Angle   float32    `json:"angle"`
	Rescale bool       `json:"rescale,omitempty"`
}

// Element is one cuboid of a Model (spec §3). From/To arrive in [0,16]
// voxel units in the raw JSON and are normalized to [0,1] by Resolve.
type Element struct {
	From     [3]float32          `json:"from"`
	To       [3]float32          `json:"to"`
	Rotation *Rotation            `json:"rotation,omitempty"`
	Faces    map[FaceName]*Face   `json:"faces,omitempty"`
}

// Model is a resolved (parent-merged, coordinate-normalized) model
// (spec §3).
type Model struct {
	Parent          string            `json:"parent,omitempty"`
	Textures        map[string]string `json:"textures,omitempty"`
	Elements        []Element         `json:"elements,omitempty"`
	AmbientOcclusion bool             `json:"ambientocclusion,omitempty"`

	// Unknown preserves fields neither this nor the spec cares about, per
	// §9 "a lenient decoder that preserves Unknown fields".
	Unknown map[string]any `json:"-"`
}

func (m *Model) UnmarshalJSON(data []byte) error {
	type alias Model
	var a alias
	a.AmbientOcclusion = true
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err == nil {
		known := map[string]bool{"parent": true, "textures": true, "elements": true, "ambientocclusion": true}
		unknown := make(map[string]any)
		for k, v := range raw {
			if !known[k] {
				unknown[k] = v
			}
		}
		a.Unknown = unknown
	}

	*m = Model(a)
	return nil
}
