package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/users", h.getAllUsers)
		r.Get("/users/{email}", h.getUserByEmail)
		r.Post("/sign-in", h.signIn)
		r.Post("/register", h.register)
		r.Get("/validate", h.validate)
		r.Get("/items", h.getAllItems)
		r.Get("/items/{key}", h.getItem)
	})

	// order routes require a resolvable user behind the Authorization header
	router.Route("/orders", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createOrder)
		r.Patch("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})

	return router
}
