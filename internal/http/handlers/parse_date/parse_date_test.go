package parsedate

import (
	"context"
	"encoding/json"
	"errors"
	dt "humandate/internal/core/domain/datetime"
	ratelimiter "humandate/internal/core/domain/rate_limiter"
	service "humandate/internal/core/services/parse_date"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var ParsedAt = time.Date(2020, 6, 16, 21, 30, 0, 0, time.UTC)

type stubService struct {
	result     service.Result
	err        error
	calledWith []service.Input
	lock       sync.Mutex
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.calledWith = append(s.calledWith, input)
	if s.err != nil {
		return service.Result{}, s.err
	}
	return s.result, nil
}

func serve(t *testing.T, s *stubService, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(body))
	r.RemoteAddr = "10.0.0.7:52100"
	rw := httptest.NewRecorder()
	New(s).ServeHTTP(rw, r)
	return rw
}

func TestParsed(t *testing.T) {
	s := &stubService{result: service.Result{At: ParsedAt}}
	rw := serve(t, s, `{"query": "tomorrow"}`)

	require.Equal(t, http.StatusOK, rw.Code)
	require.JSONEq(t, `{"at": "2020-06-16T21:30:00Z"}`, rw.Body.String())

	require.Len(t, s.calledWith, 1)
	input := s.calledWith[0]
	require.Equal(t, "tomorrow", input.Query)
	require.Equal(t, "10.0.0.7", input.ClientKey)
	require.False(t, input.Detailed)
	require.Equal(t, service.Overrides{}, input.Overrides)
}

func TestParsedWithTokens(t *testing.T) {
	s := &stubService{result: service.Result{
		At:     ParsedAt,
		Tokens: []dt.Token{dt.NumberToken{Value: 2}, dt.TimeUnitToken{Unit: dt.Day}, dt.EndToken{}},
	}}
	rw := serve(t, s, `{"query": "2 days", "detailed": true}`)

	require.Equal(t, http.StatusOK, rw.Code)
	require.JSONEq(t, `{
		"at": "2020-06-16T21:30:00Z",
		"tokens": [
			{"kind": "Number", "text": "Number(2)"},
			{"kind": "TimeUnit", "text": "TimeUnit(day)"},
			{"kind": "End", "text": "End"}
		]
	}`, rw.Body.String())
	require.True(t, s.calledWith[0].Detailed)
}

func TestOverridesArePassed(t *testing.T) {
	s := &stubService{result: service.Result{At: ParsedAt}}
	rw := serve(t, s, `{
		"query": "2020",
		"relative_to": "2019-05-16T14:30:15+02:00",
		"time_zone": "Europe/Berlin",
		"oldest_bound": "2010-01-01T00:00:00Z",
		"newest_bound": "2030-01-01T00:00:00Z",
		"allow_relative_tokens": false,
		"bare_year_policy": "same_date"
	}`)
	require.Equal(t, http.StatusOK, rw.Code)

	o := s.calledWith[0].Overrides
	require.True(t, o.RelativeTo.IsPresent)
	require.True(t, o.RelativeTo.Value.Equal(time.Date(2019, 5, 16, 12, 30, 15, 0, time.UTC)))
	require.True(t, o.TimeZone.IsPresent)
	require.Equal(t, "Europe/Berlin", o.TimeZone.Value.String())
	require.True(t, o.OldestBound.Value.Equal(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, o.NewestBound.Value.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, o.AllowRelativeTokens.IsPresent)
	require.False(t, o.AllowRelativeTokens.Value)
	require.Equal(t, dt.SetToSameCalendarDateInYear, o.BareYearPolicy.Value)
}

func TestBadRequest(t *testing.T) {
	cases := []struct {
		id    string
		body  string
		field string
	}{
		{id: "not json", body: `tomorrow`},
		{id: "unknown field", body: `{"query": "tomorrow", "foo": 1}`},
		{id: "empty query", body: `{"query": ""}`, field: "query"},
		{id: "long query", body: `{"query": "` + strings.Repeat("a", maxQueryLength+1) + `"}`, field: "query"},
		{id: "time zone", body: `{"query": "today", "time_zone": "Mars/Olympus"}`, field: "time_zone"},
		{id: "policy", body: `{"query": "2020", "bare_year_policy": "ignore"}`, field: "bare_year_policy"},
		{
			id:    "bounds",
			body:  `{"query": "today", "oldest_bound": "2030-01-01T00:00:00Z", "newest_bound": "2010-01-01T00:00:00Z"}`,
			field: "oldest_bound",
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{}
			rw := serve(t, s, testcase.body)

			require.Equal(t, http.StatusBadRequest, rw.Code)
			require.Empty(t, s.calledWith)
			if testcase.field != "" {
				body := map[string]interface{}{}
				require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
				require.Contains(t, body, testcase.field)
			}
		})
	}
}

func TestServiceErrors(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
		body   string
	}{
		{
			id:     "parse error",
			err:    dt.NewParseError(dt.UnitExpected, "Cannot have 'in 5' without units following."),
			status: http.StatusUnprocessableEntity,
			body:   `{"error": "Cannot have 'in 5' without units following.", "reason": "UnitExpected"}`,
		},
		{
			id:     "too far",
			err:    dt.NewParseError(dt.TooFar, "Too far."),
			status: http.StatusUnprocessableEntity,
			body:   `{"error": "Too far.", "reason": "TooFar"}`,
		},
		{
			id:     "rate limit",
			err:    ratelimiter.ErrRateLimitExceeded,
			status: http.StatusTooManyRequests,
			body:   `{"error": "rate limit exceeded"}`,
		},
		{
			id:     "unexpected",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error": "internal error"}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.err}
			rw := serve(t, s, `{"query": "in 5"}`)

			require.Equal(t, testcase.status, rw.Code)
			require.JSONEq(t, testcase.body, rw.Body.String())
		})
	}
}

func TestNewPanicsOnNilService(t *testing.T) {
	require.Panics(t, func() { New(nil) })
}
