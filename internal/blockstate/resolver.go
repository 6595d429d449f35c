// Package blockstate implements the block-state resolver (spec 4.A): given
// a BlockKey and its BlockStateDefinition, it picks the ModelHolder(s) that
// should be rendered for that exact block.
package blockstate

import (
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
)

// ErrNoModel is returned when neither the variants nor multipart branch
// yields any holder (spec 4.A: "Fails with NoModel").
var ErrNoModel = errors.New("blockstate: no model holder resolved")

const defaultNamespace = "minecraft"

// stripNamespace removes a "minecraft:" prefix (spec 4.A.1).
func stripNamespace(name string) string {
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		if name[:idx] == defaultNamespace {
			return name[idx+1:]
		}
	}
	return name
}

// Resolve implements spec 4.A: returns the ModelHolder(s) to render for key
// under def, or ErrNoModel if neither branch matches.
func Resolve(key blockkey.BlockKey, def Definition) ([]Holder, error) {
	_ = stripNamespace(key.Name) // namespace stripping feeds model-ref resolution (4.B), not selector matching here

	if len(def.Variants) > 0 {
		holders := resolveVariants(key, def.Variants)
		if len(holders) == 0 {
			return nil, ErrNoModel
		}
		return holders, nil
	}

	if len(def.Multipart) > 0 {
		holders := resolveMultipart(key, def.Multipart)
		if len(holders) == 0 {
			return nil, ErrNoModel
		}
		return holders, nil
	}

	return nil, ErrNoModel
}

// resolveVariants implements spec 4.A.2.
func resolveVariants(key blockkey.BlockKey, variants map[string]weightedHolder) []Holder {
	selector := variantSelector(key, variants)

	if wh, ok := variants[selector]; ok {
		return pickWeighted(key.Fingerprint(), 0, wh.holders())
	}
	if wh, ok := variants[""]; ok {
		return pickWeighted(key.Fingerprint(), 0, wh.holders())
	}
	return nil
}

// variantSelector builds the canonical "key=value,key=value" lookup string:
// the property keys referenced by the (deterministically first, by sorted
// key order) variant key, restricted to properties the block actually has
// (spec 4.A.2).
func variantSelector(key blockkey.BlockKey, variants map[string]weightedHolder) string {
	var firstVariantKey string
	var names []string
	for k := range variants {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		if n != "" {
			firstVariantKey = n
			break
		}
	}
	if firstVariantKey == "" {
		return ""
	}

	var propNames []string
	for _, pair := range strings.Split(firstVariantKey, ",") {
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		propNames = append(propNames, parts[0])
	}
	sort.Strings(propNames)

	var b strings.Builder
	for i, name := range propNames {
		val, ok := key.Get(name)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		_ = i
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(val)
	}
	return b.String()
}

// resolveMultipart implements spec 4.A.3.
func resolveMultipart(key blockkey.BlockKey, parts []multipartEntry) []Holder {
	var holders []Holder
	for i, part := range parts {
		if !whenMatches(key, part.When) {
			continue
		}
		holders = append(holders, pickWeighted(key.Fingerprint(), uint64(i+1), part.Apply.holders())...)
	}
	return holders
}

func whenMatches(key blockkey.BlockKey, when *whenClause) bool {
	if when == nil {
		return true
	}
	if len(when.or) > 0 {
		for _, clause := range when.or {
			if allPredicatesTrue(key, clause) {
				return true
			}
		}
		return false
	}
	return allPredicatesTrue(key, when.flat)
}

func allPredicatesTrue(key blockkey.BlockKey, predicates map[string]string) bool {
	for prop, expected := range predicates {
		actual, ok := key.Get(prop)
		if !ok {
			return false
		}
		if !predicateMatches(actual, expected) {
			return false
		}
	}
	return true
}

// predicateMatches implements the single `p=v` test (spec 4.A.3): numeric
// equality if both sides parse as numbers, otherwise membership in a
// `|`-separated set.
func predicateMatches(actual, expected string) bool {
	actualNum, aErr := strconv.ParseFloat(actual, 64)
	expectedNum, eErr := strconv.ParseFloat(expected, 64)
	if aErr == nil && eErr == nil {
		return actualNum == expectedNum
	}
	for _, alt := range strings.Split(expected, "|") {
		if alt == actual {
			return true
		}
	}
	return false
}

// pickWeighted implements spec 4.A.4: deterministic seeded pick using the
// BlockKey fingerprint (optionally salted for a specific multipart slot so
// distinct parts don't always pick the same alternative) as the PRNG seed,
// so the same block always renders the same way across builds.
func pickWeighted(fingerprint, salt uint64, holders []Holder) []Holder {
	if len(holders) <= 1 {
		return holders
	}

	total := 0
	for _, h := range holders {
		total += h.weightOrDefault()
	}
	if total <= 0 {
		return holders[:1]
	}

	rng := rand.New(rand.NewSource(int64(fingerprint ^ salt)))
	pick := rng.Intn(total)
	acc := 0
	for _, h := range holders {
		acc += h.weightOrDefault()
		if pick < acc {
			return []Holder{h}
		}
	}
	return holders[len(holders)-1:]
}
