package valueobjects

import (
	"math"
	"time"
)

// Tiyin is an amount in minor units; 1 sum = 100 tiyin.
type Tiyin int64

// TiyinFromSum converts a whole-sum amount to minor units.
func TiyinFromSum(sum int64) Tiyin {
	return Tiyin(sum * 100)
}

// TiyinFromFloat rounds a major-unit amount to the nearest tiyin.
func TiyinFromFloat(sum float64) Tiyin {
	return Tiyin(math.Round(sum * 100))
}

func (t Tiyin) Int64() int64 {
	return int64(t)
}

// EpochMillis is a Unix timestamp in milliseconds; zero means unset.
type EpochMillis int64

func EpochMillisOf(t time.Time) EpochMillis {
	return EpochMillis(t.UnixMilli())
}

func (e EpochMillis) IsZero() bool {
	return e == 0
}

func (e EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(e)).UTC()
}

func (e EpochMillis) Int64() int64 {
	return int64(e)
}
