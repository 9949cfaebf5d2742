package parsedate

import (
	"encoding/json"
	"errors"
	c "humandate/internal/core/domain/common"
	dt "humandate/internal/core/domain/datetime"
	e "humandate/internal/core/domain/errors"
	ratelimiter "humandate/internal/core/domain/rate_limiter"
	"humandate/internal/core/services"
	service "humandate/internal/core/services/parse_date"
	"humandate/internal/http/handlers/response"
	"io"
	"net"
	"net/http"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation"
)

const maxQueryLength = 256

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Query               string     `json:"query"`
	RelativeTo          *time.Time `json:"relative_to"`
	TimeZone            *string    `json:"time_zone"`
	OldestBound         *time.Time `json:"oldest_bound"`
	NewestBound         *time.Time `json:"newest_bound"`
	AllowRelativeTokens *bool      `json:"allow_relative_tokens"`
	BareYearPolicy      *string    `json:"bare_year_policy"`
	Detailed            bool       `json:"detailed"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	e.DisallowUnknownFields()
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Query, validation.Required, validation.Length(1, maxQueryLength)),
		validation.Field(&i.TimeZone, validation.By(validateTimeZone)),
		validation.Field(
			&i.BareYearPolicy,
			validation.In(
				string(dt.SetToJanuaryFirst),
				string(dt.SetToSameCalendarDateInYear),
				string(dt.ThrowOnBareYear),
			),
		),
		validation.Field(&i.OldestBound, validation.By(func(interface{}) error {
			if i.OldestBound != nil && i.NewestBound != nil && i.OldestBound.After(*i.NewestBound) {
				return errors.New("must not be after newest_bound")
			}
			return nil
		})),
	)
}

func validateTimeZone(value interface{}) error {
	name, _ := value.(*string)
	if name == nil {
		return nil
	}
	if _, err := time.LoadLocation(*name); err != nil {
		return errors.New("unknown time zone")
	}
	return nil
}

// overrides converts a validated input into per-call service overrides.
func (i Input) overrides() service.Overrides {
	o := service.Overrides{}
	if i.RelativeTo != nil {
		o.RelativeTo = c.Some(*i.RelativeTo)
	}
	if i.TimeZone != nil {
		if location, err := time.LoadLocation(*i.TimeZone); err == nil {
			o.TimeZone = c.Some(location)
		}
	}
	if i.OldestBound != nil {
		o.OldestBound = c.Some(*i.OldestBound)
	}
	if i.NewestBound != nil {
		o.NewestBound = c.Some(*i.NewestBound)
	}
	if i.AllowRelativeTokens != nil {
		o.AllowRelativeTokens = c.Some(*i.AllowRelativeTokens)
	}
	if i.BareYearPolicy != nil {
		o.BareYearPolicy = c.Some(dt.BareYearPolicy(*i.BareYearPolicy))
	}
	return o
}

type Token struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type Result struct {
	At     time.Time `json:"at"`
	Tokens []Token   `json:"tokens,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		ClientKey: clientKey(r),
		Query:     input.Query,
		Overrides: input.overrides(),
		Detailed:  input.Detailed,
	})
	if err != nil {
		var parseErr *dt.ParseError
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.As(err, &parseErr):
			response.RenderReasonedError(rw, parseErr.Msg, parseErr.Reason.String(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{At: result.At}
	for _, token := range result.Tokens {
		res.Tokens = append(res.Tokens, Token{Kind: token.Kind().String(), Text: token.String()})
	}
	response.Render(rw, res, http.StatusOK)
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
