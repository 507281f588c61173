package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	// 2024-03-01 07:30:00 UTC is 12:30 in Tashkent (UTC+5, no DST).
	ts := time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, "01.03.2024, 12:30:00", Format(ts))
}

func TestParseDateAndEndOfDay(t *testing.T) {
	start, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 19, 0, 0, 0, time.UTC), start.UTC())

	end := EndOfDay(start)
	assert.Equal(t, start.Add(24*time.Hour-time.Millisecond).UnixMilli(), end.UnixMilli())

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}
