// Package dlc holds the expiry calculation and classification engine.
package dlc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DaysToExpiry converts an expiry instant into a whole-day count relative to
// now. Instants carrying a time component (a 'T' separator or anything longer
// than a bare date) are measured with hour precision and floored, so a product
// expiring today at 18:00 reads differently at 06:00 and at 17:00. Bare dates
// compare midnight to midnight and ignore time-of-day entirely.
//
// Both the instant and now are interpreted in the local zone.
func DaysToExpiry(instant string, now time.Time) (int, error) {
	expiry, err := dateparse.ParseIn(instant, now.Location())
	if err != nil {
		return 0, fmt.Errorf("parse expiry instant %q: %w", instant, err)
	}

	hasTime := strings.Contains(instant, "T") || len(instant) > 10
	if hasTime {
		diff := expiry.Sub(now)
		return int(math.Floor(diff.Hours() / 24)), nil
	}

	expiryDay := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Round, not floor: a DST transition inside the span must not shift the
	// calendar-day difference.
	return int(math.Round(expiryDay.Sub(today).Hours() / 24)), nil
}
