package humandateparser

import (
	"context"
	dt "humandate/internal/core/domain/datetime"
	e "humandate/internal/core/domain/errors"
	"time"
)

type Parser struct {
	now func() time.Time
}

func New(now func() time.Time) dt.Parser {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Parser{now: now}
}

func (p *Parser) Parse(ctx context.Context, query string, options dt.Options) (time.Time, error) {
	result, err := p.ParseDetailed(ctx, query, options)
	return result.At, err
}

// ParseDetailed resolves query against options.RelativeTo and also returns
// the tokens the query was split into.
func (p *Parser) ParseDetailed(
	ctx context.Context,
	query string,
	options dt.Options,
) (result dt.DetailedResult, err error) {
	if err := options.Validate(); err != nil {
		return result, dt.NewParseError(dt.Internal, "Invalid parser options: %v.", err)
	}
	relativeTo := options.RelativeTo.Value
	if !options.RelativeTo.IsPresent {
		relativeTo = p.now()
	}

	tokens, err := tokenize(query, relativeTo.Location())
	if err != nil {
		return result, err
	}
	at, err := newInterpreter(tokens, relativeTo, options).run()
	if err != nil {
		return result, err
	}
	return dt.DetailedResult{At: at, Tokens: tokens}, nil
}
