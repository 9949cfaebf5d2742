package humandateparser

import (
	dt "humandate/internal/core/domain/datetime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// Day-first layouts are tried before handing the literal to dateparse,
// which resolves the remaining shapes month-first.
var dateLiteralLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2-1-06",
	"2/1/06",
}

type lexer struct {
	chars  charCursor
	loc    *time.Location
	tokens []dt.Token
}

// tokenize splits text into tokens. The result always ends with an End token.
// Date literals are resolved in loc.
func tokenize(text string, loc *time.Location) ([]dt.Token, error) {
	l := &lexer{chars: newCharCursor(text), loc: loc}
	for {
		ch := l.chars.next()
		switch {
		case ch == ' ':
		case ch == eof:
			l.tokens = append(l.tokens, dt.EndToken{})
			return l.tokens, nil
		case ch == '-':
			l.tokens = append(l.tokens, dt.TriviaToken{Trivia: dt.Dash})
		case ch == ':':
			l.tokens = append(l.tokens, dt.TriviaToken{Trivia: dt.Colon})
		case unicode.IsLetter(ch):
			token, err := l.word()
			if err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token)
		case unicode.IsDigit(ch):
			token, err := l.numberOrDate()
			if err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token)
		}
	}
}

func (l *lexer) word() (dt.Token, error) {
	identifier := strings.ToUpper(l.readRun(isWordChar))
	token, ok := classifyWord(identifier)
	if !ok {
		return nil, dt.NewParseError(dt.InvalidUnit, "Unknown token '%s'.", identifier)
	}
	return token, nil
}

// numberOrDate looks two and three characters ahead for a date separator
// to tell 21-10-2019 and 1/2/2020 apart from a plain number.
func (l *lexer) numberOrDate() (dt.Token, error) {
	if isDateSeparator(l.chars.peekRune(2)) || isDateSeparator(l.chars.peekRune(3)) {
		literal := l.readRun(isWordChar)
		date, err := parseDateLiteral(literal, l.loc)
		if err != nil {
			return nil, dt.NewParseError(dt.InvalidUnit, "%s is not a valid date.", literal)
		}
		return dt.DateToken{Value: date}, nil
	}

	digits := l.readDigits()
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return nil, dt.NewParseError(dt.InvalidUnit, "The provided number '%s' was not a valid integer.", digits)
	}
	return dt.NumberToken{Value: int(n)}, nil
}

// readRun reads the current character plus every following character that is
// either accepted by class or one of the identifier punctuation marks.
func (l *lexer) readRun(class func(rune) bool) string {
	var b strings.Builder
	b.WriteRune(l.current())
	for {
		ch := l.chars.next()
		if ch == eof {
			break
		}
		if !class(ch) && !isIdentifierPunct(ch) {
			l.chars.backUp()
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (l *lexer) readDigits() string {
	var b strings.Builder
	b.WriteRune(l.current())
	for {
		ch := l.chars.next()
		if ch == eof {
			break
		}
		if !unicode.IsDigit(ch) {
			l.chars.backUp()
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (l *lexer) current() rune {
	return l.chars.peekRune(0)
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isDateSeparator(ch rune) bool {
	return ch == '-' || ch == '/'
}

func isIdentifierPunct(ch rune) bool {
	return ch == '_' || ch == '/' || ch == '-' || ch == '.'
}

func parseDateLiteral(literal string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLiteralLayouts {
		if date, err := time.ParseInLocation(layout, literal, loc); err == nil {
			return date, nil
		}
	}
	return dateparse.ParseIn(literal, loc)
}
