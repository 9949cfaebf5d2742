package main

import (
	"fmt"
	"humandate/internal/config"
	c "humandate/internal/core/domain/common"
	dt "humandate/internal/core/domain/datetime"
	"time"

	"github.com/spf13/cobra"
)

// parserFlags are shared by every command that parses queries. Unset flags
// fall back to the environment configuration.
type parserFlags struct {
	relativeTo string
	timeZone   string
	bareYear   string
	noRelative bool
	tokens     bool
}

func (f *parserFlags) register(cmd *cobra.Command, showTokens bool) {
	cmd.Flags().StringVar(&f.relativeTo, "relative-to", "", "Reference instant (RFC3339), defaults to now")
	cmd.Flags().StringVar(&f.timeZone, "tz", "", "Time zone of the reference instant, e.g. Europe/Berlin")
	cmd.Flags().StringVar(&f.bareYear, "bare-year", "", "Bare year policy (january_first, same_date, throw)")
	cmd.Flags().BoolVar(&f.noRelative, "no-relative", false, "Reject next, last and ago")
	cmd.Flags().BoolVar(&f.tokens, "tokens", showTokens, "Print the tokens the query was split into")
}

func (f *parserFlags) options(cfg *config.Config, now time.Time) (dt.Options, error) {
	options := cfg.ParserDefaults()

	location := cfg.Location()
	if f.timeZone != "" {
		loc, err := time.LoadLocation(f.timeZone)
		if err != nil {
			return options, fmt.Errorf("invalid --tz value: %w", err)
		}
		location = loc
	}

	relativeTo := now.In(location)
	if f.relativeTo != "" {
		at, err := time.Parse(time.RFC3339, f.relativeTo)
		if err != nil {
			return options, fmt.Errorf("invalid --relative-to value: %w", err)
		}
		relativeTo = at
		if f.timeZone != "" {
			relativeTo = at.In(location)
		}
	}
	options.RelativeTo = c.Some(relativeTo)

	if f.bareYear != "" {
		policy, err := dt.ParseBareYearPolicy(f.bareYear)
		if err != nil {
			return options, fmt.Errorf("invalid --bare-year value: %w", err)
		}
		options.BareYearPolicy = policy
	}
	if f.noRelative {
		options.AllowRelativeTokens = false
	}
	return options, nil
}
