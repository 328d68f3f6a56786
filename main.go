package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"geohash-batch-system/batch"
	"geohash-batch-system/cache"
	"geohash-batch-system/config"
	"geohash-batch-system/models"
)

func main() {
	input := flag.String("input", "-", "CSV file of lat,lon rows; - reads stdin")
	precision := flag.Int("precision", 0, "geohash length 1-12; 0 uses the configured default")
	asJSON := flag.Bool("json", false, "emit JSON lines instead of bare geohashes")
	flag.Parse()

	// Initialize configuration
	config.InitConfig()

	if *precision == 0 {
		*precision = config.Cfg.Encoder.DefaultPrecision
	}

	lats, lons, err := readCoordinates(*input)
	if err != nil {
		log.Fatal(err)
	}

	enc, err := buildEncoder()
	if err != nil {
		log.Fatal(err)
	}

	hashes, err := batch.EncodeWith(context.Background(), enc, lats, lons, *precision)
	if err != nil {
		log.Fatal(err)
	}

	out := json.NewEncoder(os.Stdout)
	for i, hash := range hashes {
		if *asJSON {
			point := models.Point{Latitude: lats[i], Longitude: lons[i], Geohash: hash}
			if err := out.Encode(point); err != nil {
				log.Fatal(err)
			}
		} else {
			fmt.Println(hash)
		}
	}
}

// buildEncoder picks the cache backend from the configuration.
func buildEncoder() (cache.Encoder, error) {
	switch config.Cfg.Cache.Backend {
	case "none":
		return cache.Direct{}, nil
	case "memory":
		return cache.NewMemo(config.Cfg.Cache.Size)
	case "redis":
		if err := cache.InitRedis(); err != nil {
			return nil, err
		}
		return cache.NewRedisMemo(cache.GetRedisClient(), config.Cfg.Cache.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", config.Cfg.Cache.Backend)
	}
}

// readCoordinates parses lat,lon CSV rows into paired slices.
func readCoordinates(path string) ([]float64, []float64, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		in = f
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = 2

	var lats, lons []float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read coordinates: %v", err)
		}
		lat, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: invalid latitude %q", len(lats)+1, record[0])
		}
		lon, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: invalid longitude %q", len(lons)+1, record[1])
		}
		lats = append(lats, lat)
		lons = append(lons, lon)
	}
	return lats, lons, nil
}
