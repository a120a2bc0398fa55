package planner

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// MaxTripDays caps the date span accepted at save time.
const MaxTripDays = 30

// dateSpanDays returns the inclusive day count between two ISO dates, or
// (0, false) when either date is missing, unparseable, or not ordered
// start < end. Callers fall back to the item-derived day count in that case;
// derivation never errors on a bad range (save-time validation does).
func dateSpanDays(startDate, endDate string) (int, bool) {
	if startDate == "" || endDate == "" {
		return 0, false
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, false
	}
	if !start.Before(end) {
		return 0, false
	}
	span := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return span, true
}

// ValidateDates checks the trip's date range for saving. It returns a
// user-facing message, or "" when the range is acceptable. Day-count
// derivation ignores this result; only the save action is blocked.
func (p *Plan) ValidateDates(now time.Time) string {
	if p.Details.StartDate == "" && p.Details.EndDate == "" {
		return ""
	}
	if p.Details.StartDate == "" || p.Details.EndDate == "" {
		return "Both start and end dates are required"
	}

	start, err := time.Parse(dateLayout, p.Details.StartDate)
	if err != nil {
		return "Start date is not a valid date"
	}
	end, err := time.Parse(dateLayout, p.Details.EndDate)
	if err != nil {
		return "End date is not a valid date"
	}

	today := now.Truncate(24 * time.Hour)
	if start.Before(today) {
		return "Start date cannot be in the past"
	}
	if !start.Before(end) {
		return "End date must be after the start date"
	}
	if span, _ := dateSpanDays(p.Details.StartDate, p.Details.EndDate); span > MaxTripDays {
		return fmt.Sprintf("Trips are limited to %d days", MaxTripDays)
	}
	return ""
}
