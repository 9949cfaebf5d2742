package datetime

import (
	"context"
	"sync"
	"time"
)

type TestParserCall struct {
	Query   string
	Options Options
}

type TestParser struct {
	Result     DetailedResult
	ParseError error
	CalledWith []TestParserCall
	lock       sync.Mutex
}

func NewTestParser() *TestParser {
	return &TestParser{}
}

func (p *TestParser) Parse(ctx context.Context, query string, options Options) (time.Time, error) {
	result, err := p.ParseDetailed(ctx, query, options)
	return result.At, err
}

func (p *TestParser) ParseDetailed(ctx context.Context, query string, options Options) (DetailedResult, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.CalledWith = append(p.CalledWith, TestParserCall{Query: query, Options: options})
	if p.ParseError != nil {
		return DetailedResult{}, p.ParseError
	}
	return p.Result, nil
}
