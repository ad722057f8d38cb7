package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withCORS(),
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		withGZip,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.health)
	router.Post("/api/register", h.register)
	router.Post("/api/login", h.login)
	router.Get("/api/items", h.listItems)
	router.Handle("/metrics", h.metrics.handler())

	// routes with optional authorization
	router.Group(func(r chi.Router) {
		if h.requireAuth {
			r.Use(h.auth)
		}

		r.Post("/api/orders", h.createOrder)
		r.With(h.ownUser).Get("/api/orders/{id}", h.listOrders)
		r.Delete("/api/orders/{id}", h.deleteOrder)

		r.With(h.ownUser).Get("/api/user/{id}", h.getUser)
		r.With(h.ownUser).Put("/api/user/{id}/password", h.changePassword)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
