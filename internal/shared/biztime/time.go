// Package biztime renders instants in the shop's business timezone.
// Storage and transport stay in UTC; only operator-facing text is localized.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Tashkent"

// DisplayLayout matches the dd.mm.yyyy, hh:mm:ss format operators read in notifications.
const DisplayLayout = "02.01.2006, 15:04:05"

var (
	bizLocation *time.Location
	mu          sync.RWMutex
)

// Init sets the business timezone; an empty name selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: %v", err))
		}
		mu.RLock()
		loc = bizLocation
		mu.RUnlock()
	}
	return loc
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// Format renders t in the business timezone with DisplayLayout.
func Format(t time.Time) string {
	return t.In(Location()).Format(DisplayLayout)
}

// ParseDate parses YYYY-MM-DD as business-timezone midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// EndOfDay returns the last millisecond of t's business day.
func EndOfDay(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 23, 59, 59, int(999*time.Millisecond), Location())
}
