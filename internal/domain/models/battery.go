package models

import (
	"errors"
	"time"
)

// DefaultBatteryLifespanMonths is the assumed service life of a UPS
// battery set (4 years) when the record does not carry its own value.
const DefaultBatteryLifespanMonths = 48

// DefaultBatteryWarningMonths is the remaining-life threshold below which
// a battery is considered due for replacement.
const DefaultBatteryWarningMonths = 12

// BatteryStatusLevel is a presentation hint derived from remaining battery life
type BatteryStatusLevel string

const (
	BatteryCritical BatteryStatusLevel = "critical" // remaining <= 6 months
	BatteryWarning  BatteryStatusLevel = "warning"  // remaining <= 12 months
	BatteryGood     BatteryStatusLevel = "good"
)

// ErrInvalidBatteryDate is returned when a battery install date cannot be parsed.
// Callers must treat a missing install date as unknown and skip the battery
// calculations entirely instead of calling with an empty string.
var ErrInvalidBatteryDate = errors.New("invalid battery install date")

// batteryDateLayouts are the date formats seen in rack spreadsheets
var batteryDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"1/2/06",
	"January 2006",
}

// ParseBatteryDate parses a battery install date as written in the
// spreadsheet header or stored on a UPS record
func ParseBatteryDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidBatteryDate
	}
	for _, layout := range batteryDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidBatteryDate
}

// BatteryRemainingMonths computes whole calendar months of battery life left
// at the reference time. Day of month is ignored; only year and month count.
// The result is clamped to [0, lifespanMonths], so a future install date
// reports the full lifespan rather than a value above it.
func BatteryRemainingMonths(install, now time.Time, lifespanMonths int) int {
	if lifespanMonths <= 0 {
		lifespanMonths = DefaultBatteryLifespanMonths
	}
	elapsed := (now.Year()-install.Year())*12 + int(now.Month()) - int(install.Month())
	remaining := lifespanMonths - elapsed
	if remaining < 0 {
		return 0
	}
	if remaining > lifespanMonths {
		return lifespanMonths
	}
	return remaining
}

// BatteryDueForReplacement reports whether remaining life at the reference
// time is at or below the warning threshold
func BatteryDueForReplacement(install, now time.Time, lifespanMonths, warningMonths int) bool {
	if warningMonths <= 0 {
		warningMonths = DefaultBatteryWarningMonths
	}
	return BatteryRemainingMonths(install, now, lifespanMonths) <= warningMonths
}

// BatteryStatus maps remaining life to a status level. It shares the
// remaining-months computation with the other battery functions so the
// three can never disagree.
func BatteryStatus(install, now time.Time, lifespanMonths int) BatteryStatusLevel {
	remaining := BatteryRemainingMonths(install, now, lifespanMonths)
	switch {
	case remaining <= 6:
		return BatteryCritical
	case remaining <= 12:
		return BatteryWarning
	default:
		return BatteryGood
	}
}
