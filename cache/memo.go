package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"geohash-batch-system/geohash"
)

// DefaultMemoSize bounds the in-memory memoizer when no size is configured.
const DefaultMemoSize = 10000

// Encoder is the single-coordinate encoding surface the batch driver
// accepts. The memoizers below wrap the pure encoder behind it.
type Encoder interface {
	Encode(ctx context.Context, lat, lon float64, precision int) (string, error)
}

// memoKey is the exact input tuple. Encoding is referentially transparent,
// so equal tuples always map to the same hash.
type memoKey struct {
	lat       float64
	lon       float64
	precision int
}

// Memo caches geohash results in a bounded in-memory LRU. The underlying
// cache does its own locking; encoding itself is never serialized, so two
// goroutines may race to compute the same key. Both arrive at the same
// answer and one of them wins the insert.
type Memo struct {
	entries *lru.Cache[memoKey, string]
}

// NewMemo creates a memoizer holding at most size entries. A non-positive
// size falls back to DefaultMemoSize.
func NewMemo(size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	entries, err := lru.New[memoKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memo cache: %v", err)
	}
	return &Memo{entries: entries}, nil
}

// Encode returns the cached geohash for the exact (lat, lon, precision)
// tuple, computing and storing it on a miss. Invalid inputs are never
// cached.
func (m *Memo) Encode(_ context.Context, lat, lon float64, precision int) (string, error) {
	key := memoKey{lat: lat, lon: lon, precision: precision}
	if hash, ok := m.entries.Get(key); ok {
		return hash, nil
	}

	hash, err := geohash.Encode(lat, lon, precision)
	if err != nil {
		return "", err
	}
	m.entries.Add(key, hash)
	return hash, nil
}

// Len reports how many entries the memoizer currently holds.
func (m *Memo) Len() int {
	return m.entries.Len()
}

// Direct is a pass-through Encoder with no caching.
type Direct struct{}

func (Direct) Encode(_ context.Context, lat, lon float64, precision int) (string, error) {
	return geohash.Encode(lat, lon, precision)
}
