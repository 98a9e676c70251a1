package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used throughout the system.
const DateLayout = "2006-01-02"

// Requester roles with a configured maximum reservation duration.
const (
	RequesterResearcher = "Researcher"
	RequesterPhD        = "PhD"
	RequesterMaster     = "Master"
	RequesterShortTerm  = "Short term"
)

// roleDurations maps a requester role to its maximum reservation length.
var roleDurations = map[string]time.Duration{
	RequesterResearcher: 120 * 24 * time.Hour,
	RequesterPhD:        90 * 24 * time.Hour,
	RequesterMaster:     150 * 24 * time.Hour,
	RequesterShortTerm:  14 * 24 * time.Hour,
}

// defaultDuration applies to any role outside the closed mapping.
const defaultDuration = 60 * 24 * time.Hour

// MaxDuration returns the maximum reservation length for a requester role.
func MaxDuration(role string) time.Duration {
	if d, ok := roleDurations[role]; ok {
		return d
	}
	return defaultDuration
}

// ClampEnd caps end so that the span from start does not exceed the maximum
// configured for role. Dates are YYYY-MM-DD strings; a parse failure of
// either date is returned as an error and callers must keep the original
// end date rather than fail the operation.
//
// end >= start is intentionally not validated: a negative span never
// exceeds a positive cap, so inverted ranges pass through untouched.
func ClampEnd(role, start, end string) (string, error) {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return end, fmt.Errorf("parse start date %q: %w", start, err)
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return end, fmt.Errorf("parse end date %q: %w", end, err)
	}

	max := MaxDuration(role)
	if endDate.Sub(startDate) > max {
		return startDate.Add(max).Format(DateLayout), nil
	}
	return end, nil
}
