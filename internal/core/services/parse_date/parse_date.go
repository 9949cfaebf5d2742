package parsedate

import (
	"context"
	"errors"
	c "humandate/internal/core/domain/common"
	dt "humandate/internal/core/domain/datetime"
	e "humandate/internal/core/domain/errors"
	"humandate/internal/core/domain/logging"
	"humandate/internal/core/services"
	"time"
)

// Overrides replace the configured defaults for a single call.
type Overrides struct {
	RelativeTo          c.Optional[time.Time]
	TimeZone            c.Optional[*time.Location]
	OldestBound         c.Optional[time.Time]
	NewestBound         c.Optional[time.Time]
	AllowRelativeTokens c.Optional[bool]
	BareYearPolicy      c.Optional[dt.BareYearPolicy]
}

type Input struct {
	ClientKey string
	Query     string
	Overrides Overrides
	Detailed  bool
}

func (i Input) GetRateLimitKey() string {
	return "parse::" + i.ClientKey
}

type Result struct {
	At     time.Time
	Tokens []dt.Token
}

type service struct {
	log      logging.Logger
	parser   dt.Parser
	defaults dt.Options
	location *time.Location
	now      func() time.Time
}

// New builds the parse service. Calls that name no time zone resolve their
// reference instant in location.
func New(
	log logging.Logger,
	parser dt.Parser,
	defaults dt.Options,
	location *time.Location,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if location == nil {
		panic(e.NewNilArgumentError("location"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:      log,
		parser:   parser,
		defaults: defaults,
		location: location,
		now:      now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	options := s.options(input.Overrides)
	detailed, err := s.parser.ParseDetailed(ctx, input.Query, options)
	if err != nil {
		var parseErr *dt.ParseError
		switch {
		case errors.As(err, &parseErr) && parseErr.Reason != dt.Internal:
			s.log.Info(
				ctx,
				"Query rejected.",
				logging.Entry("query", input.Query),
				logging.Entry("reason", parseErr.Reason.String()),
				logging.Entry("msg", parseErr.Msg),
			)
		default:
			logging.Error(ctx, s.log, err, logging.Entry("query", input.Query))
		}
		return result, err
	}

	s.log.Info(
		ctx,
		"Query parsed.",
		logging.Entry("query", input.Query),
		logging.Entry("relativeTo", options.RelativeTo.Value),
		logging.Entry("at", detailed.At),
	)
	result.At = detailed.At
	if input.Detailed {
		result.Tokens = detailed.Tokens
	}
	return result, nil
}

func (s *service) options(overrides Overrides) dt.Options {
	options := s.defaults
	location := overrides.TimeZone.ValueOr(s.location)

	relativeTo := s.now().In(location)
	if overrides.RelativeTo.IsPresent {
		relativeTo = overrides.RelativeTo.Value
		if overrides.TimeZone.IsPresent {
			relativeTo = relativeTo.In(location)
		}
	}
	options.RelativeTo = c.Some(relativeTo)

	options.OldestBound = overrides.OldestBound.Or(s.defaults.OldestBound)
	options.NewestBound = overrides.NewestBound.Or(s.defaults.NewestBound)
	options.AllowRelativeTokens = overrides.AllowRelativeTokens.ValueOr(s.defaults.AllowRelativeTokens)
	options.BareYearPolicy = overrides.BareYearPolicy.ValueOr(s.defaults.BareYearPolicy)
	return options
}
