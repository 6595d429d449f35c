package buildctx

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/resource"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesOptions(t *testing.T) {
	opts := DefaultBuildOptions()
	opts.ChunkSide = 17

	_, err := New(opts, resource.NewMemoryProvider())
	require.Error(t, err)
}

func TestEpochMonotonic(t *testing.T) {
	ctx, err := New(DefaultBuildOptions(), resource.NewMemoryProvider())
	require.NoError(t, err)

	require.Equal(t, int64(0), ctx.Epoch())
	ctx.BumpEpoch()
	ctx.BumpEpoch()
	require.Equal(t, int64(2), ctx.Epoch())
}

func TestModelCacheRoundTrip(t *testing.T) {
	ctx, err := New(DefaultBuildOptions(), resource.NewMemoryProvider())
	require.NoError(t, err)

	ctx.CacheModel("block/stone", "resolved-stone")
	v, ok := ctx.CachedModel("block/stone")
	require.True(t, ok)
	require.Equal(t, "resolved-stone", v)

	_, ok = ctx.CachedModel("block/missing")
	require.False(t, ok)
}

func TestSummaryCountsByKind(t *testing.T) {
	s := NewSummary()
	s.Record(ErrNoModel, errNoModelFixture)
	s.Record(ErrNoModel, errNoModelFixture)
	s.Record(ErrResourceMissing, errNoModelFixture)

	counts := s.Counts()
	require.Equal(t, 2, counts[ErrNoModel])
	require.Equal(t, 1, counts[ErrResourceMissing])
	require.Error(t, s.Err())
}

var errNoModelFixture = Wrap(ErrNoModel, errFixture{})

type errFixture struct{}

func (errFixture) Error() string { return "fixture" }
