package app

import (
	"humandate/internal/app/deps"
	"humandate/internal/app/services"
	"humandate/internal/config"
	"humandate/internal/core/domain/logging"
	drl "humandate/internal/core/domain/rate_limiter"
	humandateparser "humandate/internal/implementations/human_date_parser"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2019, 5, 16, 14, 30, 15, 0, time.UTC)

func createRouter(rateLimiter drl.RateLimiter) http.Handler {
	now := func() time.Time { return Now }
	d := &deps.Deps{
		Config: &config.Config{
			Port:                8080,
			AllowedOrigins:      []string{"*"},
			RateLimitPerMinute:  60,
			AllowRelativeTokens: true,
		},
		Logger:      logging.NewFakeLogger(),
		Now:         now,
		RateLimiter: rateLimiter,
		Parser:      humandateparser.New(now),
	}
	return NewRouter(d, services.InitServices(d))
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(body)))
	return rw
}

func TestParseEndpoint(t *testing.T) {
	router := createRouter(drl.NewFakeRateLimiter(true))

	cases := []struct {
		body     string
		status   int
		expected string
	}{
		{
			body:     `{"query": "tomorrow at 5 PM"}`,
			status:   http.StatusOK,
			expected: `{"at": "2019-05-17T17:30:15Z"}`,
		},
		{
			body:     `{"query": "last june", "time_zone": "Asia/Tokyo"}`,
			status:   http.StatusOK,
			expected: `{"at": "2018-06-16T23:30:15+09:00"}`,
		},
		{
			body:     `{"query": "2 days ago", "relative_to": "2020-03-01T10:00:00Z"}`,
			status:   http.StatusOK,
			expected: `{"at": "2020-02-28T10:00:00Z"}`,
		},
		{
			body:   `{"query": "in 2 days", "detailed": true}`,
			status: http.StatusOK,
			expected: `{"at": "2019-05-18T14:30:15Z", "tokens": [
				{"kind": "Trivia", "text": "Trivia(in)"},
				{"kind": "Number", "text": "Number(2)"},
				{"kind": "TimeUnit", "text": "TimeUnit(day)"},
				{"kind": "End", "text": "End"}
			]}`,
		},
		{
			body:     `{"query": "in 5"}`,
			status:   http.StatusUnprocessableEntity,
			expected: `{"error": "Cannot have 'in 5' without units following.", "reason": "UnitExpected"}`,
		},
		{
			body:     `{"query": "next week", "allow_relative_tokens": false}`,
			status:   http.StatusUnprocessableEntity,
			expected: `{"error": "'next' is relative and relative tokens are not allowed.", "reason": "RelativeTokensNotAllowed"}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.body, func(t *testing.T) {
			rw := post(router, testcase.body)
			require.Equal(t, testcase.status, rw.Code)
			require.JSONEq(t, testcase.expected, rw.Body.String())
		})
	}
}

func TestParseEndpointRateLimited(t *testing.T) {
	router := createRouter(drl.NewFakeRateLimiter(false))
	rw := post(router, `{"query": "today"}`)
	require.Equal(t, http.StatusTooManyRequests, rw.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := createRouter(drl.NewFakeRateLimiter(true))
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rw.Code)
}

func TestInitHttpServerAddress(t *testing.T) {
	d := &deps.Deps{
		Config:      &config.Config{Port: 9090},
		Logger:      logging.NewFakeLogger(),
		Now:         time.Now,
		RateLimiter: drl.NewFakeRateLimiter(true),
		Parser:      humandateparser.New(time.Now),
	}
	server := InitHttpServer(d, services.InitServices(d))
	require.Equal(t, "0.0.0.0:9090", server.Addr)
}
