package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hmPattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ErrLegacyDateRequired is returned when the legacy date field is empty
var ErrLegacyDateRequired = errors.New("legacy_date required (YYYY-MM-DD)")

// Layouts accepted for inputs that are not a bare YYYY-MM-DD date, e.g. an
// already composed ISO-8601 string coming straight from a client
var permissiveLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseLegacyDate resolves a user-supplied calendar date plus optional clock
// time into a single UTC instant. A bare YYYY-MM-DD date defaults the time to
// 12:00 rather than midnight, so timezone conversion cannot roll the result
// onto the previous calendar day. A malformed time is ignored in favor of the
// noon default, not rejected.
//
// With strict set, inputs that are not YYYY-MM-DD are rejected outright
// instead of being handed to the permissive layouts above.
func ParseLegacyDate(dateRaw, timeRaw string, strict bool) (time.Time, error) {
	dateRaw = strings.TrimSpace(dateRaw)
	if dateRaw == "" {
		return time.Time{}, ErrLegacyDateRequired
	}

	timeRaw = strings.TrimSpace(timeRaw)

	if ymdPattern.MatchString(dateRaw) {
		t := "12:00"
		if hmPattern.MatchString(timeRaw) {
			t = timeRaw
		}
		// Compose in local time, like a wall clock reading at that place
		dt, err := time.ParseInLocation("2006-01-02T15:04:05", dateRaw+"T"+t+":00", time.Local)
		if err != nil {
			return time.Time{}, errors.New("legacy_date invalid (YYYY-MM-DD)")
		}
		return dt.UTC(), nil
	}

	if strict {
		return time.Time{}, errors.New("legacy_date must be YYYY-MM-DD")
	}

	for _, layout := range permissiveLayouts {
		if dt, err := time.ParseInLocation(layout, dateRaw, time.Local); err == nil {
			return dt.UTC(), nil
		}
	}
	return time.Time{}, errors.New("legacy_date invalid (YYYY-MM-DD)")
}
