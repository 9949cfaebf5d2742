package datetime

import (
	"errors"
	"fmt"
)

// FailReason classifies why a parse was rejected.
type FailReason uint8

const (
	InvalidUnit FailReason = iota
	InvalidDayOfWeek
	UnitExpected
	NumberExpected
	Internal
	TooOld
	TooFar
	RelativeTokensNotAllowed
)

var ErrParsing = errors.New("could not parse date")

var (
	ErrInvalidUnit              = fmt.Errorf("%w: invalid unit", ErrParsing)
	ErrInvalidDayOfWeek         = fmt.Errorf("%w: invalid day of week", ErrParsing)
	ErrUnitExpected             = fmt.Errorf("%w: unit expected", ErrParsing)
	ErrNumberExpected           = fmt.Errorf("%w: number expected", ErrParsing)
	ErrInternal                 = fmt.Errorf("%w: internal error", ErrParsing)
	ErrTooOld                   = fmt.Errorf("%w: date is too old", ErrParsing)
	ErrTooFar                   = fmt.Errorf("%w: date is too far", ErrParsing)
	ErrRelativeTokensNotAllowed = fmt.Errorf("%w: relative tokens are not allowed", ErrParsing)
)

var reasons = [...]struct {
	name     string
	sentinel error
}{
	InvalidUnit:              {"InvalidUnit", ErrInvalidUnit},
	InvalidDayOfWeek:         {"InvalidDayOfWeek", ErrInvalidDayOfWeek},
	UnitExpected:             {"UnitExpected", ErrUnitExpected},
	NumberExpected:           {"NumberExpected", ErrNumberExpected},
	Internal:                 {"Internal", ErrInternal},
	TooOld:                   {"TooOld", ErrTooOld},
	TooFar:                   {"TooFar", ErrTooFar},
	RelativeTokensNotAllowed: {"RelativeTokensNotAllowed", ErrRelativeTokensNotAllowed},
}

func (r FailReason) String() string {
	if int(r) < len(reasons) {
		return reasons[r].name
	}
	return fmt.Sprintf("FailReason(%d)", r)
}

// ParseError is the only error type returned by a failed parse.
type ParseError struct {
	Reason FailReason
	Msg    string
}

func NewParseError(reason FailReason, format string, args ...interface{}) *ParseError {
	return &ParseError{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	if int(e.Reason) < len(reasons) {
		return reasons[e.Reason].sentinel
	}
	return ErrInternal
}

// ReasonOf extracts the fail reason from err, if err carries one.
func ReasonOf(err error) (FailReason, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return 0, false
}
