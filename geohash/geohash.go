package geohash

import (
	"errors"
	"fmt"
	"strings"
)

// base32 is the standard geohash alphabet. It skips a, i, l and o.
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// MaxPrecision is the longest supported geohash. Beyond 12 characters the
// cell size drops below float64 resolution.
const MaxPrecision = 12

var (
	ErrCoordinateRange = errors.New("coordinate out of range")
	ErrPrecision       = errors.New("invalid precision")
)

// ValidateCoordinate checks that lat and lon are within the geographic
// domain. Both bounds are inclusive. The checks are written in negated
// form so NaN fails them too.
func ValidateCoordinate(lat, lon float64) error {
	if !(lat >= -90 && lat <= 90) {
		return fmt.Errorf("%w: latitude must be between -90 and 90, got %v", ErrCoordinateRange, lat)
	}
	if !(lon >= -180 && lon <= 180) {
		return fmt.Errorf("%w: longitude must be between -180 and 180, got %v", ErrCoordinateRange, lon)
	}
	return nil
}

// ValidatePrecision checks that precision is within the supported range.
func ValidatePrecision(precision int) error {
	if precision < 1 || precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be between 1 and %d, got %d", ErrPrecision, MaxPrecision, precision)
	}
	return nil
}

// Encode computes the geohash of a coordinate at the given precision.
//
// The latitude and longitude intervals are bisected in turn, longitude
// first. Each bisection contributes one bit: a value at or above the
// midpoint keeps the upper half and emits 1, otherwise the lower half and
// 0. Every 5 bits select one character of the base-32 alphabet, until
// precision characters have been produced.
func Encode(lat, lon float64, precision int) (string, error) {
	if err := ValidateCoordinate(lat, lon); err != nil {
		return "", err
	}
	if err := ValidatePrecision(precision); err != nil {
		return "", err
	}

	latLo, latHi := -90.0, 90.0
	lonLo, lonHi := -180.0, 180.0

	var hash strings.Builder
	hash.Grow(precision)

	charIndex := 0
	bit := 0
	isEven := true

	for hash.Len() < precision {
		if isEven {
			mid := (lonLo + lonHi) / 2
			if lon >= mid {
				charIndex = charIndex<<1 | 1
				lonLo = mid
			} else {
				charIndex = charIndex << 1
				lonHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if lat >= mid {
				charIndex = charIndex<<1 | 1
				latLo = mid
			} else {
				charIndex = charIndex << 1
				latHi = mid
			}
		}
		isEven = !isEven

		bit++
		if bit == 5 {
			hash.WriteByte(base32[charIndex])
			bit = 0
			charIndex = 0
		}
	}

	return hash.String(), nil
}
