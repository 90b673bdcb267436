package server

import (
	"compress/gzip"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"myshop/internal/handler"
	"myshop/internal/middleware"
)

func (s *Server) setupRoutes(handler *handler.Handler) {
	s.setupMiddleware()

	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/session", http.HandlerFunc(handler.Login))
		r.Delete("/session", http.HandlerFunc(handler.Logout))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(s.sessions, s.config.TokenSecret))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", http.HandlerFunc(handler.GetOrders))
				r.Post("/", http.HandlerFunc(handler.CreateOrder))

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", http.HandlerFunc(handler.GetOrder))
					r.Put("/", http.HandlerFunc(handler.EditOrder))
					r.Delete("/", http.HandlerFunc(handler.DeleteOrder))
					r.Post("/status", http.HandlerFunc(handler.TransitionOrder))
					r.Get("/receipt", http.HandlerFunc(handler.GetReceipt))
				})
			})

			r.Get("/stats", http.HandlerFunc(handler.GetStats))

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", http.HandlerFunc(handler.GetCustomers))
				r.Post("/", http.HandlerFunc(handler.AddCustomer))
				r.Delete("/{id}", http.HandlerFunc(handler.DeleteCustomer))
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", http.HandlerFunc(handler.GetServices))
				r.Post("/", http.HandlerFunc(handler.AddService))
				r.Patch("/{id}", http.HandlerFunc(handler.UpdateService))
				r.Delete("/{id}", http.HandlerFunc(handler.DeleteService))
			})
		})
	})
}

func (s *Server) setupMiddleware() {
	s.mux.Use(
		middleware.Logger,
		chiMiddleware.Compress(gzip.BestCompression, "application/json", "text/html", "text/plain"),
	)
}
