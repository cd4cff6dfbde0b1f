package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service routes
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Patch("/api/auth/verify", h.verify)
		r.Patch("/api/auth/resend-otp", h.resendOTP)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/api/auth/change-password", h.changePassword)

		r.Get("/api/user/me", h.getMyProfile)
		r.Get("/api/user", h.getUserByEmail)
		r.Get("/api/user/{id}", h.getUserByID)
		r.Patch("/api/user/{id}", h.updateUser)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
