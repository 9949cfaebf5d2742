package health

import (
	"context"
	e "humandate/internal/core/domain/errors"
	"humandate/internal/core/domain/logging"
	"humandate/internal/http/handlers/response"
	"net/http"
	"time"
)

const checkTimeout = 2 * time.Second

// Check reports whether a dependency is reachable.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

type Handler struct {
	log    logging.Logger
	checks []Check
}

func New(log logging.Logger, checks ...Check) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Handler{log: log, checks: checks}
}

type Result struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	result := Result{Status: "ok"}
	status := http.StatusOK
	for _, check := range h.checks {
		if result.Checks == nil {
			result.Checks = make(map[string]string, len(h.checks))
		}
		if err := check.Run(ctx); err != nil {
			h.log.Warning(ctx, "Health check failed.", logging.Entry("check", check.Name), logging.Entry("err", err))
			result.Checks[check.Name] = "unavailable"
			result.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		result.Checks[check.Name] = "ok"
	}
	response.Render(rw, result, status)
}
