package humandateparser

import (
	dt "humandate/internal/core/domain/datetime"
	"time"
)

// interpreter folds the token stream into a single instant. Every rule
// consumes exactly the followers it needs; anything left over at the top of
// the loop is skipped.
type interpreter struct {
	tokens  *cursor[dt.Token]
	options dt.Options
	at      time.Time
}

func newInterpreter(tokens []dt.Token, relativeTo time.Time, options dt.Options) *interpreter {
	return &interpreter{
		tokens:  newCursor(tokens),
		options: options,
		at:      relativeTo,
	}
}

func (p *interpreter) run() (time.Time, error) {
	for {
		token, ok := p.tokens.advance()
		if !ok {
			break
		}
		if err := p.dispatch(token); err != nil {
			return time.Time{}, err
		}
	}
	if err := p.options.CheckBounds(p.at); err != nil {
		return time.Time{}, err
	}
	return p.at, nil
}

func (p *interpreter) dispatch(token dt.Token) (err error) {
	switch t := token.(type) {
	case dt.TriviaToken:
		switch t.Trivia {
		case dt.In:
			return p.readIn()
		case dt.At:
			return p.readAt()
		}
	case dt.NumberToken:
		return p.readNumber(t)
	case dt.RelativeToken:
		switch t.Relative {
		case dt.Last:
			return p.readRelative(false)
		case dt.Next:
			return p.readRelative(true)
		}
	case dt.TodayToken:
	case dt.TomorrowToken:
		p.at, err = addUnits(p.at, 1, dt.Day)
	case dt.YesterdayToken:
		p.at, err = addUnits(p.at, -1, dt.Day)
	case dt.TimeUnitToken, dt.MonthToken, dt.DayOfWeekToken, dt.DateToken, dt.EndToken:
	}
	return err
}

// next consumes the following token. An End token counts as end of input.
func (p *interpreter) next() (dt.Token, bool) {
	token, ok := p.tokens.advance()
	if !ok {
		return nil, false
	}
	if _, isEnd := token.(dt.EndToken); isEnd {
		return nil, false
	}
	return token, true
}

func (p *interpreter) readIn() error {
	token, _ := p.next()
	n, ok := token.(dt.NumberToken)
	if !ok {
		return dt.NewParseError(dt.NumberExpected, "Expected a number to come after 'in'.")
	}
	token, _ = p.next()
	unit, ok := token.(dt.TimeUnitToken)
	if !ok {
		return dt.NewParseError(dt.UnitExpected, "Cannot have 'in %d' without units following.", n.Value)
	}
	return p.applySpan(n, unit)
}

func (p *interpreter) readAt() error {
	token, _ := p.next()
	hours, ok := token.(dt.NumberToken)
	if !ok {
		return dt.NewParseError(dt.UnitExpected, "Cannot have 'at' without a time following.")
	}
	token, _ = p.next()
	marker, ok := token.(dt.TriviaToken)
	if !ok {
		return dt.NewParseError(dt.UnitExpected, "Cannot have 'at %d' without an AM, PM, or colon following.", hours.Value)
	}
	return p.applyClock(hours.Value, marker.Trivia)
}

func (p *interpreter) readNumber(n dt.NumberToken) error {
	token, present := p.next()
	if !present {
		return p.applyBareYear(n.Value)
	}
	switch t := token.(type) {
	case dt.TimeUnitToken:
		return p.applySpan(n, t)
	case dt.TriviaToken:
		if isClockMarker(t.Trivia) {
			return p.applyClock(n.Value, t.Trivia)
		}
	}
	return dt.NewParseError(dt.InvalidUnit, "Expected AM, PM, a colon, or a time unit after %d. Received %s.", n.Value, token.Kind())
}

func (p *interpreter) applySpan(n dt.NumberToken, unit dt.TimeUnitToken) (err error) {
	value := n.Value
	if p.tokens.contains(isAgo) {
		if !p.options.AllowRelativeTokens {
			return dt.NewParseError(dt.RelativeTokensNotAllowed, "'%d %s ago' is relative and relative tokens are not allowed.", n.Value, unit.Unit)
		}
		value = -value
	}
	p.at, err = addUnits(p.at, value, unit.Unit)
	return err
}

func (p *interpreter) applyClock(hours int, marker dt.TriviaKind) (err error) {
	minutes, seconds := p.at.Minute(), p.at.Second()
	switch marker {
	case dt.Am, dt.Pm:
		hours = to24Hour(hours, marker)
	case dt.Colon:
		if minutes, err = p.readClockPart("minute"); err != nil {
			return err
		}
		if token, ok := p.tokens.peek(1); ok && isTrivia(token, dt.Colon) {
			p.tokens.advance()
			if seconds, err = p.readClockPart("second"); err != nil {
				return err
			}
		}
		token, _ := p.next()
		meridiem, ok := token.(dt.TriviaToken)
		if !ok {
			return dt.NewParseError(dt.UnitExpected, "Expected an AM or PM specifier.")
		}
		if meridiem.Trivia != dt.Am && meridiem.Trivia != dt.Pm {
			return dt.NewParseError(dt.InvalidUnit, "Invalid unit '%s', expected AM or PM.", meridiem.Trivia)
		}
		hours = to24Hour(hours, meridiem.Trivia)
	default:
		return dt.NewParseError(dt.InvalidUnit, "Invalid unit '%s', expected AM, PM, or a colon.", marker)
	}

	if hours >= 24 || minutes >= 60 || seconds >= 60 {
		return dt.NewParseError(dt.InvalidUnit, "%02d:%02d:%02d is not a valid time of day.", hours, minutes, seconds)
	}
	p.at, err = setClock(p.at, hours, minutes, seconds)
	return err
}

func (p *interpreter) readClockPart(name string) (int, error) {
	token, present := p.next()
	if !present {
		return 0, dt.NewParseError(dt.NumberExpected, "Expected a %s specifier to follow the colon.", name)
	}
	n, ok := token.(dt.NumberToken)
	if !ok {
		return 0, dt.NewParseError(dt.InvalidUnit, "Expected a number to follow the colon. Received %s.", token.Kind())
	}
	return n.Value, nil
}

func (p *interpreter) readRelative(future bool) (err error) {
	word := "last"
	if future {
		word = "next"
	}
	if !p.options.AllowRelativeTokens {
		return dt.NewParseError(dt.RelativeTokensNotAllowed, "'%s' is relative and relative tokens are not allowed.", word)
	}
	token, present := p.next()
	if !present {
		return dt.NewParseError(dt.UnitExpected, "Cannot have '%s' without day of week, or specifier unit following.", word)
	}

	step := -1
	if future {
		step = 1
	}
	switch t := token.(type) {
	case dt.TimeUnitToken:
		switch t.Unit {
		case dt.Year, dt.Month, dt.Week, dt.Day:
			p.at, err = addUnits(p.at, step, t.Unit)
			return err
		}
		return dt.NewParseError(dt.InvalidUnit, "Cannot use '%s %s'.", word, t.Unit)
	case dt.MonthToken:
		p.at, err = stepMonth(p.at, t.Month, future)
		return err
	case dt.DayOfWeekToken:
		if t.Day < time.Sunday || t.Day > time.Saturday {
			return dt.NewParseError(dt.InvalidDayOfWeek, "%d is not a day of the week.", t.Day)
		}
		p.at, err = stepWeekday(p.at, t.Day, future)
		return err
	}
	return dt.NewParseError(dt.InvalidUnit, "%s is not a valid unit type.", token.Kind())
}

func (p *interpreter) applyBareYear(year int) (err error) {
	switch p.options.BareYearPolicy {
	case dt.SetToJanuaryFirst:
		p.at, err = setYear(p.at, year, true)
	case dt.SetToSameCalendarDateInYear:
		p.at, err = setYear(p.at, year, false)
	case dt.ThrowOnBareYear:
		err = dt.NewParseError(dt.UnitExpected, "Cannot have number without units following.")
	default:
		err = dt.NewParseError(dt.Internal, "Unknown bare year policy '%s'.", p.options.BareYearPolicy)
	}
	return err
}

func to24Hour(hours int, meridiem dt.TriviaKind) int {
	switch {
	case meridiem == dt.Am && hours == 12:
		return 0
	case meridiem == dt.Pm && hours != 12:
		return hours + 12
	}
	return hours
}

func isClockMarker(kind dt.TriviaKind) bool {
	return kind == dt.Am || kind == dt.Pm || kind == dt.Colon
}

func isTrivia(token dt.Token, kind dt.TriviaKind) bool {
	t, ok := token.(dt.TriviaToken)
	return ok && t.Trivia == kind
}

func isAgo(token dt.Token) bool {
	t, ok := token.(dt.RelativeToken)
	return ok && t.Relative == dt.Ago
}
