package cache

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"geohash-batch-system/config"
	"geohash-batch-system/geohash"
)

var Rdb *redis.Client

// InitRedis initializes the Redis client from the loaded configuration.
func InitRedis() error {
	cfg := config.Cfg.Redis
	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Check the Redis connection
	ctx := context.Background()
	_, err := Rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis successfully.")
	return nil
}

// GetRedisClient returns the Redis client
func GetRedisClient() *redis.Client {
	return Rdb
}

// RedisMemo memoizes geohash results in Redis so repeated coordinates are
// shared across processes. A Redis failure is treated as a miss: the hash
// is recomputed locally and the call still succeeds.
type RedisMemo struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisMemo wraps the given client. A zero ttl keeps entries until
// Redis evicts them.
func NewRedisMemo(rdb *redis.Client, ttl time.Duration) *RedisMemo {
	return &RedisMemo{rdb: rdb, ttl: ttl}
}

func (m *RedisMemo) Encode(ctx context.Context, lat, lon float64, precision int) (string, error) {
	key := memoRedisKey(lat, lon, precision)
	if hash, err := m.rdb.Get(ctx, key).Result(); err == nil {
		return hash, nil
	}

	hash, err := geohash.Encode(lat, lon, precision)
	if err != nil {
		return "", err
	}
	if err := m.rdb.Set(ctx, key, hash, m.ttl).Err(); err != nil {
		log.Printf("Failed to cache geohash %s: %v", key, err)
	}
	return hash, nil
}

// memoRedisKey formats the exact input tuple. FormatFloat with -1 precision
// round-trips float64 values, so distinct coordinates never collide.
func memoRedisKey(lat, lon float64, precision int) string {
	return fmt.Sprintf("geohash:%s:%s:%d",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		precision)
}
