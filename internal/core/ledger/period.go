package ledger

import (
	"fmt"
	"strings"
	"time"
)

// PeriodType selects the width of a reporting window.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// ParsePeriodType validates a period selector from the API surface.
func ParsePeriodType(s string) (PeriodType, error) {
	switch PeriodType(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	default:
		return "", fmt.Errorf("unsupported period type %q", s)
	}
}

// Period is a half-open time window [Start, End). A zero Start means the
// window is unbounded on the left, which carry-forward uses to cover all
// prior activity.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds the day, calendar-month or calendar-year window
// containing the reference date, in the reference date's location.
func NewPeriod(pt PeriodType, ref time.Time) (Period, error) {
	loc := ref.Location()
	switch pt {
	case PeriodDay:
		start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		return Period{Start: start, End: start.AddDate(0, 0, 1)}, nil
	case PeriodMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		return Period{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case PeriodYear:
		start := time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, loc)
		return Period{Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return Period{}, fmt.Errorf("unsupported period type %q", pt)
	}
}

// Before is the unbounded window covering everything strictly before t.
func Before(t time.Time) Period {
	return Period{End: t}
}

// Contains reports period membership. A zero transaction date is never
// in-period: a record with an unresolvable date is excluded rather than
// defaulted to today.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	return t.Before(p.End)
}
