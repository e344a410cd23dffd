package router

import (
	"net/http"

	"github.com/opentender/radar/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// InitRoutes собирает маршруты API.
func InitRoutes(tenderHandler *handlers.TenderHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlers.PingHandler)
		r.Route("/tenders", func(r chi.Router) {
			r.Get("/", tenderHandler.GetTenders)
			r.Post("/new", tenderHandler.CreateTender)
			r.Get("/{tenderId}", tenderHandler.GetTender)
			r.Get("/{tenderId}/score", tenderHandler.GetTenderScore)
		})
		r.Get("/countries", tenderHandler.GetCountries)
		r.Get("/sectors", tenderHandler.GetSectors)
	})

	return r
}
