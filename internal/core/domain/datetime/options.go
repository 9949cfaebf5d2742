package datetime

import (
	"errors"
	"fmt"
	c "humandate/internal/core/domain/common"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// BareYearPolicy decides what a standalone trailing number such as "2019" does.
type BareYearPolicy string

const (
	SetToJanuaryFirst           BareYearPolicy = "january_first"
	SetToSameCalendarDateInYear BareYearPolicy = "same_date"
	ThrowOnBareYear             BareYearPolicy = "throw"
)

var BareYearPolicies = []BareYearPolicy{SetToJanuaryFirst, SetToSameCalendarDateInYear, ThrowOnBareYear}

func ParseBareYearPolicy(raw string) (BareYearPolicy, error) {
	for _, p := range BareYearPolicies {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown bare year policy %q", raw)
}

type Options struct {
	// RelativeTo is the reference instant; the current moment is used when absent.
	RelativeTo          c.Optional[time.Time]
	OldestBound         c.Optional[time.Time]
	NewestBound         c.Optional[time.Time]
	AllowRelativeTokens bool
	BareYearPolicy      BareYearPolicy
}

func DefaultOptions() Options {
	return Options{
		AllowRelativeTokens: true,
		BareYearPolicy:      SetToJanuaryFirst,
	}
}

var errBoundsOrder = errors.New("must not be after the newest bound")

func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(
			&o.BareYearPolicy,
			validation.Required,
			validation.In(SetToJanuaryFirst, SetToSameCalendarDateInYear, ThrowOnBareYear),
		),
		validation.Field(&o.OldestBound, validation.By(func(interface{}) error {
			if o.OldestBound.IsPresent && o.NewestBound.IsPresent && o.OldestBound.Value.After(o.NewestBound.Value) {
				return errBoundsOrder
			}
			return nil
		})),
	)
}

// CheckBounds reports TooOld or TooFar when at falls outside the configured bounds.
func (o Options) CheckBounds(at time.Time) error {
	if o.OldestBound.IsPresent && at.Before(o.OldestBound.Value) {
		return NewParseError(TooOld, "%s is before the oldest allowed time %s.",
			at.Format(time.RFC3339), o.OldestBound.Value.Format(time.RFC3339))
	}
	if o.NewestBound.IsPresent && at.After(o.NewestBound.Value) {
		return NewParseError(TooFar, "%s is after the newest allowed time %s.",
			at.Format(time.RFC3339), o.NewestBound.Value.Format(time.RFC3339))
	}
	return nil
}
