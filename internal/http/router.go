package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ricardomaia/credo/internal/http/credit"
	"github.com/ricardomaia/credo/internal/http/importcsv"
	"github.com/ricardomaia/credo/internal/http/order"
)

func New(
	creditV1 *credit.Handler,
	ordersV1 *order.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/credit", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			creditV1.Routes(r)
		})

		r.Route("/orders", ordersV1.Routes)

		r.Route("/sync", ordersV1.SyncRoutes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
