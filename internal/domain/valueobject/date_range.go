// Package valueobject contains immutable domain value objects.
package valueobject

import (
	"time"

	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// DateRange is a half-open calendar range [Start, End). Either bound may be
// nil, which leaves the range open on that side. End is always exclusive: a
// user-supplied end date is advanced by one calendar day so that transactions
// dated anywhere within that day are included.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange parses the raw start and end date strings into a DateRange.
// Empty strings leave the corresponding bound open.
func NewDateRange(startStr, endStr string) (DateRange, error) {
	var dr DateRange

	if startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return DateRange{}, domainerror.NewFilterError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid start date: "+startStr,
				domainerror.ErrInvalidDateFormat,
			)
		}
		dr.Start = &start
	}

	if endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return DateRange{}, domainerror.NewFilterError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid end date: "+endStr,
				domainerror.ErrInvalidDateFormat,
			)
		}
		// Day-inclusive end date: advance one day and treat as exclusive.
		exclusive := end.AddDate(0, 0, 1)
		dr.End = &exclusive
	}

	if dr.Start != nil && dr.End != nil && !dr.Start.Before(*dr.End) {
		return DateRange{}, domainerror.NewFilterError(
			domainerror.ErrCodeInvalidDateRange,
			"start date "+startStr+" is after end date "+endStr,
			domainerror.ErrInvalidDateRange,
		)
	}

	return dr, nil
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && !t.Before(*r.End) {
		return false
	}
	return true
}

// IsOpen reports whether the range has no bounds at all.
func (r DateRange) IsOpen() bool {
	return r.Start == nil && r.End == nil
}
