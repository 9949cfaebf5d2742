// Package humandate resolves informal English date expressions such as
// "tomorrow at 5 PM", "3 days ago" or "last june" to an instant.
package humandate

import (
	"context"
	c "humandate/internal/core/domain/common"
	dt "humandate/internal/core/domain/datetime"
	humandateparser "humandate/internal/implementations/human_date_parser"
	"time"
)

type (
	Options        = dt.Options
	BareYearPolicy = dt.BareYearPolicy
	DetailedResult = dt.DetailedResult
	Token          = dt.Token
	ParseError     = dt.ParseError
	FailReason     = dt.FailReason
)

const (
	SetToJanuaryFirst           = dt.SetToJanuaryFirst
	SetToSameCalendarDateInYear = dt.SetToSameCalendarDateInYear
	ThrowOnBareYear             = dt.ThrowOnBareYear
)

const (
	InvalidUnit              = dt.InvalidUnit
	InvalidDayOfWeek         = dt.InvalidDayOfWeek
	UnitExpected             = dt.UnitExpected
	NumberExpected           = dt.NumberExpected
	Internal                 = dt.Internal
	TooOld                   = dt.TooOld
	TooFar                   = dt.TooFar
	RelativeTokensNotAllowed = dt.RelativeTokensNotAllowed
)

var (
	ErrParsing                  = dt.ErrParsing
	ErrInvalidUnit              = dt.ErrInvalidUnit
	ErrInvalidDayOfWeek         = dt.ErrInvalidDayOfWeek
	ErrUnitExpected             = dt.ErrUnitExpected
	ErrNumberExpected           = dt.ErrNumberExpected
	ErrInternal                 = dt.ErrInternal
	ErrTooOld                   = dt.ErrTooOld
	ErrTooFar                   = dt.ErrTooFar
	ErrRelativeTokensNotAllowed = dt.ErrRelativeTokensNotAllowed
)

var parser = humandateparser.New(time.Now)

// DefaultOptions allows relative tokens and moves bare years to January 1st.
func DefaultOptions() Options {
	return dt.DefaultOptions()
}

// RelativeTo returns the default options anchored at t.
func RelativeTo(t time.Time) Options {
	options := dt.DefaultOptions()
	options.RelativeTo = c.Some(t)
	return options
}

// Parse resolves query. Without options.RelativeTo the current moment is used.
func Parse(query string, options Options) (time.Time, error) {
	return parser.Parse(context.Background(), query, options)
}

func ParseDetailed(query string, options Options) (DetailedResult, error) {
	return parser.ParseDetailed(context.Background(), query, options)
}

// ReasonOf extracts the fail reason from an error returned by Parse.
func ReasonOf(err error) (FailReason, bool) {
	return dt.ReasonOf(err)
}
