package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Encoder EncoderConfig
	Cache   CacheConfig
	Redis   RedisConfig
}

type EncoderConfig struct {
	DefaultPrecision int
}

type CacheConfig struct {
	Backend string // "none", "memory" or "redis"
	Size    int
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var Cfg *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("encoder.defaultprecision", 5)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.size", 10000)
	v.SetDefault("cache.ttl", time.Duration(0))
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// Load reads config.yaml from the given directory. A missing file is not an
// error; the defaults stand.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func InitConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}
	Cfg = cfg
}
