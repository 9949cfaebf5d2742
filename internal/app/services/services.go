package services

import (
	"humandate/internal/app/deps"
	drl "humandate/internal/core/domain/rate_limiter"
	"humandate/internal/core/services"
	parsedate "humandate/internal/core/services/parse_date"
	ratelimiting "humandate/internal/core/services/rate_limiting"
)

type Services struct {
	ParseDate services.Service[parsedate.Input, parsedate.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.ParseDate = ratelimiting.WithRateLimiting[parsedate.Input, parsedate.Result](
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: deps.Config.RateLimitPerMinute, Interval: drl.Minute},
		parsedate.New(
			deps.Logger,
			deps.Parser,
			deps.Config.ParserDefaults(),
			deps.Config.Location(),
			deps.Now,
		),
	)

	return s
}
