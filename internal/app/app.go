package app

import (
	"fmt"
	"humandate/internal/app/deps"
	"humandate/internal/app/services"
	"humandate/internal/http/handlers/health"
	parsedate "humandate/internal/http/handlers/parse_date"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const requestTimeout = 10 * time.Second

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps, s)
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadHeaderTimeout: requestTimeout,
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodPost, "/parse", parsedate.New(s.ParseDate))
	router.Method(http.MethodGet, "/healthz", health.New(deps.Logger, deps.HealthChecks...))
	return router
}
