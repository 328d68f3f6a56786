package batch

import (
	"context"
	"errors"
	"fmt"

	"geohash-batch-system/cache"
	"geohash-batch-system/geohash"
)

var ErrMismatchedLengths = errors.New("mismatched input lengths")

// validate fast-fails on any bad input so no hashes are computed for a
// batch that cannot complete.
func validate(lats, lons []float64, precision int) error {
	if len(lats) != len(lons) {
		return fmt.Errorf("%w: latitudes and longitudes must have same length, got %d and %d",
			ErrMismatchedLengths, len(lats), len(lons))
	}
	if err := geohash.ValidatePrecision(precision); err != nil {
		return err
	}
	for i := range lats {
		if err := geohash.ValidateCoordinate(lats[i], lons[i]); err != nil {
			return fmt.Errorf("coordinate %d: %w", i, err)
		}
	}
	return nil
}

// Encode computes geohashes for paired coordinate slices, preserving input
// order. The whole batch is validated before the first hash; an empty batch
// returns an empty slice.
func Encode(lats, lons []float64, precision int) ([]string, error) {
	return EncodeWith(context.Background(), cache.Direct{}, lats, lons, precision)
}

// EncodeWith is Encode with every per-coordinate call routed through the
// given encoder, typically a memoizer from the cache package.
func EncodeWith(ctx context.Context, enc cache.Encoder, lats, lons []float64, precision int) ([]string, error) {
	if err := validate(lats, lons, precision); err != nil {
		return nil, err
	}

	hashes := make([]string, 0, len(lats))
	for i := range lats {
		hash, err := enc.Encode(ctx, lats[i], lons[i], precision)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}
