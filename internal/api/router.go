package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"netbound/internal/api/handler"
	"netbound/internal/api/middleware"
	"netbound/internal/domain"
	"netbound/internal/lifecycle"
	"netbound/internal/storage"
)

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(
	store storage.Store,
	networkExts lifecycle.Extensions[domain.Network],
	policyExts lifecycle.Extensions[domain.QosPolicy],
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	networks := lifecycle.New(
		lifecycle.NetworkSpec(),
		lifecycle.StaticRepository(store.Networks()),
		networkExts,
	)
	policies := lifecycle.New(
		lifecycle.QosPolicySpec(),
		lifecycle.StaticRepository(store.Policies()),
		policyExts,
	)

	// API routes (JSON Content-Type)
	r.Route("/v2.0", func(r chi.Router) {
		r.Use(middleware.ContentType)

		// Networks
		networkHandler := handler.NewNetworkHandler(networks)
		r.Post("/networks", networkHandler.Create)
		r.Get("/networks", networkHandler.List)
		r.Get("/networks/{id}", networkHandler.Get)
		r.Put("/networks/{id}", networkHandler.Update)
		r.Delete("/networks/{id}", networkHandler.Delete)

		// QoS policies
		policyHandler := handler.NewQosPolicyHandler(policies)
		r.Post("/qos/policies", policyHandler.Create)
		r.Get("/qos/policies", policyHandler.List)
		r.Get("/qos/policies/{id}", policyHandler.Get)
		r.Put("/qos/policies/{id}", policyHandler.Update)
		r.Delete("/qos/policies/{id}", policyHandler.Delete)
	})

	return r
}
