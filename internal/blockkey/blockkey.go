// Package blockkey defines the identity of a typed voxel: a namespaced block
// name plus its property map, and the stable fingerprint the rest of the
// compiler uses as a map key and as a deterministic seed.
package blockkey

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BlockKey is (namespaced_name, sorted canonical property map). Equality is
// structural: two keys with the same name and the same properties are the
// same block, regardless of map iteration order.
type BlockKey struct {
	Name       string
	Properties map[string]string
}

// New builds a BlockKey, defaulting a nil property map to empty so zero
// values compare and hash consistently.
func New(name string, properties map[string]string) BlockKey {
	if properties == nil {
		properties = map[string]string{}
	}
	return BlockKey{Name: name, Properties: properties}
}

// sortedKeys returns the property keys in lexicographic order.
func (k BlockKey) sortedKeys() []string {
	keys := make([]string, 0, len(k.Properties))
	for key := range k.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Canonical renders the key as "name;key=value,key=value" with properties in
// lexicographic key order. Two structurally-equal keys always render the
// same string, regardless of how their property maps were built.
func (k BlockKey) Canonical() string {
	var b strings.Builder
	b.WriteString(k.Name)
	b.WriteByte(';')
	for i, key := range k.sortedKeys() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(k.Properties[key])
	}
	return b.String()
}

// Fingerprint is the stable 64-bit hash of the key: xxhash of the name
// followed by the sorted "key=value" pairs. It is the palette's dedup key
// and the deterministic seed for weighted variant selection (spec 4.A.4).
func (k BlockKey) Fingerprint() uint64 {
	return xxhash.Sum64String(k.Canonical())
}

// Equal reports structural equality.
func (k BlockKey) Equal(other BlockKey) bool {
	if k.Name != other.Name {
		return false
	}
	if len(k.Properties) != len(other.Properties) {
		return false
	}
	for key, val := range k.Properties {
		if other.Properties[key] != val {
			return false
		}
	}
	return true
}

// Get returns a property value and whether it was present.
func (k BlockKey) Get(prop string) (string, bool) {
	v, ok := k.Properties[prop]
	return v, ok
}
