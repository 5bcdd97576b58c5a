package stats

import (
	"time"

	"peoplestats/internal/core/people"
	"peoplestats/internal/core/tz"
	perr "peoplestats/internal/platform/errors"
)

// MonthCount is the number of births in one calendar month
type MonthCount struct {
	Month time.Month
	Count int
}

// BirthMonth returns the calendar month of r's birth in its own birth timezone
func BirthMonth(r people.Record) (time.Month, error) {
	loc, err := tz.Resolve(r.BirthTimezone)
	if err != nil {
		return 0, err
	}
	return r.BirthTime().In(loc).Month(), nil
}

// BirthMonthCount returns twelve entries, January through December, zero months included
func BirthMonthCount(ds people.Dataset) ([]MonthCount, error) {
	var counts [12]int
	for i, r := range ds.All() {
		m, err := BirthMonth(r)
		if err != nil {
			return nil, perr.WithField(perr.Wrapf(err, perr.CodeOf(err), "record %d (%s)", i, r.Name), people.FieldBirthTimezone)
		}
		counts[m-1]++
	}

	out := make([]MonthCount, 12)
	for i := range out {
		out[i] = MonthCount{Month: time.Month(i + 1), Count: counts[i]}
	}
	return out, nil
}
