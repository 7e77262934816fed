package dateutils

import (
	"fmt"
	"time"
)

// Period is an inclusive statement period.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return CompareDates(t, p.Start) >= 0 && CompareDates(t, p.End) <= 0
}

// String returns the period as "start..end".
func (p Period) String() string {
	return fmt.Sprintf("%s..%s", ToISODate(p.Start), ToISODate(p.End))
}

// Resolve turns a month/day line item ("03/14", "Mar 14") into a calendar
// date. The period's start year is tried first; if that candidate is not
// within the period, the following year is used. Inputs that already carry
// a year are returned as parsed, which makes Resolve idempotent.
func (p Period) Resolve(monthDay string) (time.Time, bool) {
	if t, _, err := ParseDate(monthDay); err == nil {
		return Truncate(t), true
	}

	year := p.Start.Year()
	if t, ok := p.candidate(monthDay, year); ok && p.Contains(t) {
		return t, true
	}
	return p.candidate(monthDay, year+1)
}

func (p Period) candidate(monthDay string, year int) (time.Time, bool) {
	t, _, err := ParseDate(fmt.Sprintf("%s/%d", CleanDateString(monthDay), year))
	if err != nil {
		return time.Time{}, false
	}
	return Truncate(t), true
}
