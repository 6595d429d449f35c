package meshadapter

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/chunkmerge"
	"github.com/nicolasmd87/voxelmesh/internal/material"
	"github.com/stretchr/testify/require"
)

func sampleMesh(cat category.Category) *chunkmerge.MergedMesh {
	return &chunkmerge.MergedMesh{
		Category:  cat,
		Origin:    [3]float32{16, 0, 32},
		Positions: []int16{0, 0, 0, chunkmerge.PositionScale, 0, 0},
		Normals:   []int8{0, chunkmerge.NormalScale, 0, 0, chunkmerge.NormalScale, 0},
		UVs:       []float32{0, 0, 1, 0},
		Indices16: []uint16{0, 1},
		Groups:    []chunkmerge.Group{{Start: 0, Count: 2, MaterialIndex: 0}},
	}
}

func TestAdaptAppliesInverseQuantizationAsNodeScale(t *testing.T) {
	n := Adapt(sampleMesh(category.Solid), nil)

	require.Equal(t, [3]float32{1.0 / chunkmerge.PositionScale, 1.0 / chunkmerge.PositionScale, 1.0 / chunkmerge.PositionScale}, n.Scale)
	require.Equal(t, [3]float32{16, 0, 32}, n.Origin)
	require.Equal(t, float32(chunkmerge.PositionScale), n.Positions[3], "positions stay raw, not pre-scaled")
}

func TestAdaptNormalsAreRenormalized(t *testing.T) {
	n := Adapt(sampleMesh(category.Solid), nil)
	for i := 0; i+2 < len(n.Normals); i += 3 {
		x, y, z := n.Normals[i], n.Normals[i+1], n.Normals[i+2]
		lenSq := x*x + y*y + z*z
		require.InDelta(t, 1.0, lenSq, 1e-4)
	}
}

func TestAdaptRenderAttributesPerCategory(t *testing.T) {
	cases := []struct {
		cat         category.Category
		order       int
		transparent bool
		opacity     float32
		dynamic     bool
	}{
		{category.Solid, 0, false, 1.0, false},
		{category.Emissive, 1, false, 1.0, false},
		{category.Transparent, 2, true, 1.0, false},
		{category.Water, 3, true, 0.8, false},
		{category.Redstone, 0, false, 1.0, true},
	}
	for _, c := range cases {
		n := Adapt(sampleMesh(c.cat), nil)
		require.Equal(t, c.order, n.RenderOrder, c.cat.String())
		require.Equal(t, c.transparent, n.Transparent, c.cat.String())
		require.Equal(t, c.opacity, n.Opacity, c.cat.String())
		require.Equal(t, c.dynamic, n.Dynamic, c.cat.String())
	}
}

func TestAdaptGroupsResolveMaterialFromRegistry(t *testing.T) {
	reg := material.New()
	idx := reg.Intern(material.Key{Texture: "block/stone", UVRotation: 90}, category.Solid)
	mesh := sampleMesh(category.Solid)
	mesh.Groups[0].MaterialIndex = idx

	n := Adapt(mesh, reg)
	require.Len(t, n.Groups, 1)
	require.Equal(t, "block/stone", n.Groups[0].Texture)
	require.Equal(t, 90, n.Groups[0].UVRotation)
}

func TestEncodeDecodeBinaryRoundTrips(t *testing.T) {
	n := Adapt(sampleMesh(category.Water), nil)

	data, err := EncodeBinary(n)
	require.NoError(t, err)

	decoded, err := DecodeBinary(data)
	require.NoError(t, err)

	require.Equal(t, n.Category, decoded.Category)
	require.Equal(t, n.Origin, decoded.Origin)
	require.Equal(t, n.Scale, decoded.Scale)
	require.Equal(t, n.Positions, decoded.Positions)
	require.Equal(t, n.Normals, decoded.Normals)
	require.Equal(t, n.Indices, decoded.Indices)
	require.Len(t, decoded.Groups, 1)
	require.Equal(t, n.Groups[0].MaterialIndex, decoded.Groups[0].MaterialIndex)
}

func TestDecodeBinaryRejectsNonGzipInput(t *testing.T) {
	_, err := DecodeBinary([]byte{0x1f, 0x8b}) // not even a valid gzip stream
	require.Error(t, err)
}
