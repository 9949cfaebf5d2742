package humandateparser

import (
	dt "humandate/internal/core/domain/datetime"
	"time"
)

const (
	few  = 3
	some = 5
)

var weekdays = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

var months = map[string]time.Month{
	"JAN":       time.January,
	"JANUARY":   time.January,
	"FEB":       time.February,
	"FEBRUARY":  time.February,
	"FEBUARY":   time.February,
	"MAR":       time.March,
	"MARCH":     time.March,
	"APR":       time.April,
	"APRIL":     time.April,
	"MAY":       time.May,
	"JUN":       time.June,
	"JUNE":      time.June,
	"JUL":       time.July,
	"JULY":      time.July,
	"AUG":       time.August,
	"AUGUST":    time.August,
	"SEP":       time.September,
	"SEPTEMBER": time.September,
	"OCT":       time.October,
	"OCTOBER":   time.October,
	"NOV":       time.November,
	"NOVEMBER":  time.November,
	"DEC":       time.December,
	"DECEMBER":  time.December,
}

var keywords = map[string]dt.Token{
	"TODAY":     dt.TodayToken{},
	"NOW":       dt.TodayToken{},
	"TOMORROW":  dt.TomorrowToken{},
	"YESTERDAY": dt.YesterdayToken{},

	"Y":     dt.TimeUnitToken{Unit: dt.Year},
	"YEAR":  dt.TimeUnitToken{Unit: dt.Year},
	"YEARS": dt.TimeUnitToken{Unit: dt.Year},

	"MO":     dt.TimeUnitToken{Unit: dt.Month},
	"MONTH":  dt.TimeUnitToken{Unit: dt.Month},
	"MONTHS": dt.TimeUnitToken{Unit: dt.Month},

	"W":     dt.TimeUnitToken{Unit: dt.Week},
	"WEEK":  dt.TimeUnitToken{Unit: dt.Week},
	"WEEKS": dt.TimeUnitToken{Unit: dt.Week},

	"D":    dt.TimeUnitToken{Unit: dt.Day},
	"DAY":  dt.TimeUnitToken{Unit: dt.Day},
	"DAYS": dt.TimeUnitToken{Unit: dt.Day},

	"S":       dt.TimeUnitToken{Unit: dt.Second},
	"SEC":     dt.TimeUnitToken{Unit: dt.Second},
	"SECOND":  dt.TimeUnitToken{Unit: dt.Second},
	"SECONDS": dt.TimeUnitToken{Unit: dt.Second},

	"M":       dt.TimeUnitToken{Unit: dt.Minute},
	"MIN":     dt.TimeUnitToken{Unit: dt.Minute},
	"MINUTE":  dt.TimeUnitToken{Unit: dt.Minute},
	"MINUTES": dt.TimeUnitToken{Unit: dt.Minute},

	"H":     dt.TimeUnitToken{Unit: dt.Hour},
	"HOUR":  dt.TimeUnitToken{Unit: dt.Hour},
	"HOURS": dt.TimeUnitToken{Unit: dt.Hour},

	"MS":           dt.TimeUnitToken{Unit: dt.Millisecond},
	"MSEC":         dt.TimeUnitToken{Unit: dt.Millisecond},
	"MILLIS":       dt.TimeUnitToken{Unit: dt.Millisecond},
	"MILLISEC":     dt.TimeUnitToken{Unit: dt.Millisecond},
	"MILLISECOND":  dt.TimeUnitToken{Unit: dt.Millisecond},
	"MILLISECONDS": dt.TimeUnitToken{Unit: dt.Millisecond},

	"NEXT": dt.RelativeToken{Relative: dt.Next},
	"LAST": dt.RelativeToken{Relative: dt.Last},
	"AGO":  dt.RelativeToken{Relative: dt.Ago},

	"AT": dt.TriviaToken{Trivia: dt.At},
	"TO": dt.TriviaToken{Trivia: dt.To},
	"IN": dt.TriviaToken{Trivia: dt.In},
	"AM": dt.TriviaToken{Trivia: dt.Am},
	"PM": dt.TriviaToken{Trivia: dt.Pm},

	"END": dt.EndToken{},

	"A":    dt.NumberToken{Value: 1},
	"FEW":  dt.NumberToken{Value: few},
	"SOME": dt.NumberToken{Value: some},
}

// classifyWord maps an upper-cased identifier to its token.
func classifyWord(identifier string) (dt.Token, bool) {
	if day, ok := weekdays[identifier]; ok {
		return dt.DayOfWeekToken{Day: day}, true
	}
	if month, ok := months[identifier]; ok {
		return dt.MonthToken{Month: month}, true
	}
	token, ok := keywords[identifier]
	return token, ok
}
