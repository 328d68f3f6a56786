package batch

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geohash-batch-system/cache"
	"geohash-batch-system/geohash"
)

func TestEncodeBasic(t *testing.T) {
	lats := []float64{37.7749, 40.7128}
	lons := []float64{-122.4194, -74.0060}

	hashes, err := Encode(lats, lons, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"9q8yy", "dr5re"}, hashes)
}

func TestEncodeEmpty(t *testing.T) {
	hashes, err := Encode([]float64{}, []float64{}, 5)
	require.NoError(t, err)
	assert.NotNil(t, hashes)
	assert.Empty(t, hashes)
}

func TestEncodeMismatchedLengths(t *testing.T) {
	_, err := Encode([]float64{1, 2}, []float64{1}, 5)
	require.ErrorIs(t, err, ErrMismatchedLengths)
	assert.Contains(t, err.Error(), "got 2 and 1")
}

func TestEncodeInvalidCoordinateFailsFast(t *testing.T) {
	// The bad pair sits behind a valid one; nothing may be returned.
	hashes, err := Encode([]float64{10, 91}, []float64{10, 0}, 5)
	require.ErrorIs(t, err, geohash.ErrCoordinateRange)
	assert.Contains(t, err.Error(), "coordinate 1")
	assert.Nil(t, hashes)
}

func TestEncodeInvalidPrecision(t *testing.T) {
	for _, precision := range []int{0, 13} {
		_, err := Encode([]float64{10}, []float64{10}, precision)
		require.ErrorIs(t, err, geohash.ErrPrecision)
	}
}

func TestEncodeMatchesScalar(t *testing.T) {
	lat, lon := 51.5074, -0.1278

	want, err := geohash.Encode(lat, lon, 7)
	require.NoError(t, err)

	hashes, err := Encode([]float64{lat}, []float64{lon}, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{want}, hashes)
}

func TestEncodePreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 1000
	lats := make([]float64, n)
	lons := make([]float64, n)
	for i := range lats {
		lats[i] = rng.Float64()*180 - 90
		lons[i] = rng.Float64()*360 - 180
	}

	hashes, err := Encode(lats, lons, 6)
	require.NoError(t, err)
	require.Len(t, hashes, n)

	for i := range hashes {
		want, err := geohash.Encode(lats[i], lons[i], 6)
		require.NoError(t, err)
		assert.Equal(t, want, hashes[i])
	}
}

func TestEncodeWithMemo(t *testing.T) {
	memo, err := cache.NewMemo(100)
	require.NoError(t, err)

	lats := []float64{37.7749, 37.7749, -33.8688}
	lons := []float64{-122.4194, -122.4194, 151.2093}

	plain, err := Encode(lats, lons, 5)
	require.NoError(t, err)

	memoized, err := EncodeWith(context.Background(), memo, lats, lons, 5)
	require.NoError(t, err)
	assert.Equal(t, plain, memoized)

	// The duplicate pair collapses to one cached entry.
	assert.Equal(t, 2, memo.Len())
}
