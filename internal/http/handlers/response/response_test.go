package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	rw := httptest.NewRecorder()
	Render(rw, map[string]int{"n": 1}, http.StatusOK)

	require.Equal(t, http.StatusOK, rw.Code)
	require.Equal(t, "application/json", rw.Header().Get("Content-Type"))
	require.JSONEq(t, `{"n": 1}`, rw.Body.String())
}

func TestRenderErrors(t *testing.T) {
	cases := []struct {
		id     string
		render func(rw http.ResponseWriter)
		status int
		body   string
	}{
		{
			id:     "internal",
			render: RenderInternalError,
			status: http.StatusInternalServerError,
			body:   `{"error": "internal error"}`,
		},
		{
			id:     "rate limit",
			render: RenderRateLimitExceeded,
			status: http.StatusTooManyRequests,
			body:   `{"error": "rate limit exceeded"}`,
		},
		{
			id: "reasoned",
			render: func(rw http.ResponseWriter) {
				RenderReasonedError(rw, "Expected a number.", "NumberExpected", http.StatusUnprocessableEntity)
			},
			status: http.StatusUnprocessableEntity,
			body:   `{"error": "Expected a number.", "reason": "NumberExpected"}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rw := httptest.NewRecorder()
			testcase.render(rw)
			require.Equal(t, testcase.status, rw.Code)
			require.JSONEq(t, testcase.body, rw.Body.String())
		})
	}
}

func TestRenderUnsupportedValue(t *testing.T) {
	rw := httptest.NewRecorder()
	Render(rw, make(chan int), http.StatusOK)
	require.Equal(t, http.StatusInternalServerError, rw.Code)
}
