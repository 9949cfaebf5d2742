package humandateparser

import (
	dt "humandate/internal/core/domain/datetime"
	"math"
	"time"

	"github.com/golang-module/carbon/v2"
)

const (
	minYear = 1
	maxYear = 9999
)

// addUnits adds n units to t. Months and years clamp to the last day of the
// target month, so Jan 31 plus one month is the last day of February.
func addUnits(t time.Time, n int, unit dt.TimeUnit) (time.Time, error) {
	switch unit {
	case dt.Day:
		return fromCarbon(carbon.Time2Carbon(t).AddDays(n), t)
	case dt.Week:
		return fromCarbon(carbon.Time2Carbon(t).AddWeeks(n), t)
	case dt.Month:
		return fromCarbon(carbon.Time2Carbon(t).AddMonthsNoOverflow(n), t)
	case dt.Year:
		return fromCarbon(carbon.Time2Carbon(t).AddYearsNoOverflow(n), t)
	case dt.Hour:
		return addFixed(t, n, time.Hour)
	case dt.Minute:
		return addFixed(t, n, time.Minute)
	case dt.Second:
		return addFixed(t, n, time.Second)
	case dt.Millisecond:
		return addFixed(t, n, time.Millisecond)
	default:
		return time.Time{}, dt.NewParseError(dt.InvalidUnit, "Invalid unit %s.", unit)
	}
}

func addFixed(t time.Time, n int, unit time.Duration) (time.Time, error) {
	limit := int64(math.MaxInt64 / unit)
	if int64(n) > limit || int64(n) < -limit {
		return time.Time{}, outOfRange(n, unit.String())
	}
	return checkRange(t.Add(time.Duration(n) * unit))
}

// setClock keeps the calendar date and location of t and replaces the time of day.
func setClock(t time.Time, hour, minute, second int) (time.Time, error) {
	return fromCarbon(carbon.Time2Carbon(t).SetTimeMicro(hour, minute, second, 0), t)
}

func setYear(t time.Time, year int, startOfYear bool) (time.Time, error) {
	if year < minYear || year > maxYear {
		return time.Time{}, dt.NewParseError(dt.InvalidUnit, "Year %d is out of range.", year)
	}
	c := carbon.Time2Carbon(t).SetYearNoOverflow(year)
	if startOfYear {
		c = c.StartOfYear()
	}
	return fromCarbon(c, t)
}

// stepMonth moves to the nearest occurrence of month strictly in the given
// direction; the current month means a whole year.
func stepMonth(t time.Time, month time.Month, future bool) (time.Time, error) {
	current := int(t.Month())
	target := int(month)
	var delta int
	if future {
		delta = (target - current + 12) % 12
		if delta == 0 {
			delta = 12
		}
	} else {
		delta = -((current - target + 12) % 12)
		if delta == 0 {
			delta = -12
		}
	}
	return addUnits(t, delta, dt.Month)
}

// stepWeekday moves to the nearest day named day that is not t's own day:
// 1 to 7 days ahead for the future, 1 to 7 days back for the past.
func stepWeekday(t time.Time, day time.Weekday, future bool) (time.Time, error) {
	current := int(t.Weekday())
	target := int(day)
	var delta int
	if future {
		delta = (target - current + 7) % 7
		if delta == 0 {
			delta = 7
		}
	} else {
		delta = -((current - target + 7) % 7)
		if delta == 0 {
			delta = -7
		}
	}
	return addUnits(t, delta, dt.Day)
}

func fromCarbon(c carbon.Carbon, origin time.Time) (time.Time, error) {
	if c.Error != nil {
		return time.Time{}, dt.NewParseError(dt.Internal, "Calendar arithmetic failed: %v.", c.Error)
	}
	return checkRange(c.Carbon2Time().In(origin.Location()))
}

func checkRange(t time.Time) (time.Time, error) {
	if t.Year() < minYear || t.Year() > maxYear {
		return time.Time{}, dt.NewParseError(dt.InvalidUnit, "Resulting date is out of range.")
	}
	return t, nil
}

func outOfRange(n int, unit string) error {
	return dt.NewParseError(dt.InvalidUnit, "%d x %s is out of range.", n, unit)
}
