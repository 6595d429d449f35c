package blockstate

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Holder is a reference to one model plus its placement rotation
// (spec §3 ModelHolder).
type Holder struct {
	ModelRef string `json:"model"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Z        int    `json:"z"`
	UVLock   bool   `json:"uvlock"`
	Weight   int    `json:"weight"`
}

func (h Holder) weightOrDefault() int {
	if h.Weight <= 0 {
		return 1
	}
	return h.Weight
}

// weightedHolder decodes either a single Holder object or a list of
// weighted holder alternatives — the same JSON-shape ambiguity modeled
// elsewhere in this spec for `apply` and variant slots.
type weightedHolder struct {
	single *Holder
	list   []Holder
}

func (w *weightedHolder) UnmarshalJSON(data []byte) error {
	var single Holder
	if err := json.Unmarshal(data, &single); err == nil && single.ModelRef != "" {
		w.single = &single
		return nil
	}
	var list []Holder
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	w.list = list
	return nil
}

func (w weightedHolder) holders() []Holder {
	if w.single != nil {
		return []Holder{*w.single}
	}
	return w.list
}

// Definition is a decoded BlockStateDefinition (spec §3): either `variants`
// or `multipart`, never both in a valid resource pack, but both fields are
// kept so a caller can tell which branch a file used.
type Definition struct {
	Variants  map[string]weightedHolder `json:"variants,omitempty"`
	Multipart []multipartEntry          `json:"multipart,omitempty"`
}

type multipartEntry struct {
	When  *whenClause    `json:"when,omitempty"`
	Apply weightedHolder `json:"apply"`
}

// whenClause is either a flat map of property->value (implicit AND) or an
// {"OR": [...]} clause (spec §3 multipart filter).
type whenClause struct {
	or   []map[string]string
	flat map[string]string
}

func (w *whenClause) UnmarshalJSON(data []byte) error {
	var orShape struct {
		OR []map[string]string `json:"OR"`
	}
	if err := json.Unmarshal(data, &orShape); err == nil && len(orShape.OR) > 0 {
		w.or = orShape.OR
		return nil
	}
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	w.flat = flat
	return nil
}

// Parse decodes a BlockStateDefinition JSON document.
func Parse(raw string) (Definition, error) {
	var def Definition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		return Definition{}, err
	}
	return def, nil
}
