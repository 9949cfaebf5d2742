package datetime

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies the lexical category of a Token.
type Kind uint8

const (
	KindNumber Kind = iota
	KindTimeUnit
	KindMonth
	KindDayOfWeek
	KindRelative
	KindTrivia
	KindToday
	KindTomorrow
	KindYesterday
	KindDate
	KindEnd
)

var kindNames = [...]string{
	KindNumber:    "Number",
	KindTimeUnit:  "TimeUnit",
	KindMonth:     "LiteralMonth",
	KindDayOfWeek: "LiteralDayOfWeek",
	KindRelative:  "Relative",
	KindTrivia:    "Trivia",
	KindToday:     "Today",
	KindTomorrow:  "Tomorrow",
	KindYesterday: "Yesterday",
	KindDate:      "DateLiteral",
	KindEnd:       "End",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

type TimeUnit uint8

const (
	Millisecond TimeUnit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var timeUnitNames = [...]string{"millisecond", "second", "minute", "hour", "day", "week", "month", "year"}

func (u TimeUnit) String() string {
	if int(u) < len(timeUnitNames) {
		return timeUnitNames[u]
	}
	return fmt.Sprintf("TimeUnit(%d)", u)
}

type RelativeKind uint8

const (
	Next RelativeKind = iota
	Last
	Ago
)

var relativeNames = [...]string{"next", "last", "ago"}

func (r RelativeKind) String() string {
	if int(r) < len(relativeNames) {
		return relativeNames[r]
	}
	return fmt.Sprintf("RelativeKind(%d)", r)
}

type TriviaKind uint8

const (
	At TriviaKind = iota
	Dash
	In
	Am
	Pm
	To
	Colon
)

var triviaNames = [...]string{"at", "dash", "in", "am", "pm", "to", "colon"}

func (t TriviaKind) String() string {
	if int(t) < len(triviaNames) {
		return triviaNames[t]
	}
	return fmt.Sprintf("TriviaKind(%d)", t)
}

// Token is a closed union: only the types declared in this file implement it.
type Token interface {
	Kind() Kind
	String() string
	isToken()
}

type NumberToken struct{ Value int }

type TimeUnitToken struct{ Unit TimeUnit }

type MonthToken struct{ Month time.Month }

// DayOfWeekToken carries a Sunday-based weekday.
type DayOfWeekToken struct{ Day time.Weekday }

type RelativeToken struct{ Relative RelativeKind }

type TriviaToken struct{ Trivia TriviaKind }

type TodayToken struct{}

type TomorrowToken struct{}

type YesterdayToken struct{}

// DateToken holds a fully resolved calendar date such as 21-10-2019.
type DateToken struct{ Value time.Time }

type EndToken struct{}

func (NumberToken) Kind() Kind    { return KindNumber }
func (TimeUnitToken) Kind() Kind  { return KindTimeUnit }
func (MonthToken) Kind() Kind     { return KindMonth }
func (DayOfWeekToken) Kind() Kind { return KindDayOfWeek }
func (RelativeToken) Kind() Kind  { return KindRelative }
func (TriviaToken) Kind() Kind    { return KindTrivia }
func (TodayToken) Kind() Kind     { return KindToday }
func (TomorrowToken) Kind() Kind  { return KindTomorrow }
func (YesterdayToken) Kind() Kind { return KindYesterday }
func (DateToken) Kind() Kind      { return KindDate }
func (EndToken) Kind() Kind       { return KindEnd }

func (t NumberToken) String() string    { return fmt.Sprintf("Number(%d)", t.Value) }
func (t TimeUnitToken) String() string  { return fmt.Sprintf("TimeUnit(%s)", t.Unit) }
func (t MonthToken) String() string     { return fmt.Sprintf("LiteralMonth(%s)", t.Month) }
func (t DayOfWeekToken) String() string { return fmt.Sprintf("LiteralDayOfWeek(%s)", t.Day) }
func (t RelativeToken) String() string  { return fmt.Sprintf("Relative(%s)", t.Relative) }
func (t TriviaToken) String() string    { return fmt.Sprintf("Trivia(%s)", t.Trivia) }
func (TodayToken) String() string       { return "Today" }
func (TomorrowToken) String() string    { return "Tomorrow" }
func (YesterdayToken) String() string   { return "Yesterday" }
func (t DateToken) String() string      { return fmt.Sprintf("DateLiteral(%s)", t.Value.Format("2006-01-02")) }
func (EndToken) String() string         { return "End" }

func (NumberToken) isToken()    {}
func (TimeUnitToken) isToken()  {}
func (MonthToken) isToken()     {}
func (DayOfWeekToken) isToken() {}
func (RelativeToken) isToken()  {}
func (TriviaToken) isToken()    {}
func (TodayToken) isToken()     {}
func (TomorrowToken) isToken()  {}
func (YesterdayToken) isToken() {}
func (DateToken) isToken()      {}
func (EndToken) isToken()       {}

// FormatTokens renders tokens as a space separated list for diagnostics.
func FormatTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}
