package datetime

import (
	"context"
	"time"
)

type DetailedResult struct {
	At     time.Time
	Tokens []Token
}

type Parser interface {
	Parse(ctx context.Context, query string, options Options) (time.Time, error)
	ParseDetailed(ctx context.Context, query string, options Options) (DetailedResult, error)
}
