package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"netbound/internal/domain"
	"netbound/internal/lifecycle"
)

// networkFilterKeys are the query parameters a network list may filter on.
var networkFilterKeys = []string{
	"id", "name", "admin_state_up", "status", "shared", "tenant_id",
	"router_external", "provider_network_type", "provider_physical_network",
	"provider_segmentation_id",
}

// NetworkHandler handles network endpoints.
type NetworkHandler struct {
	networks *lifecycle.Orchestrator[domain.Network]
}

// NewNetworkHandler creates a new NetworkHandler.
func NewNetworkHandler(networks *lifecycle.Orchestrator[domain.Network]) *NetworkHandler {
	return &NetworkHandler{networks: networks}
}

// List lists networks matching the query filters.
func (h *NetworkHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r, networkFilterKeys)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	page, err := h.networks.List(r.Context(), q)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := map[string]any{"networks": page.Items}
	if len(page.Links) > 0 {
		resp["networks_links"] = page.Links
	}
	respondJSON(w, http.StatusOK, resp)
}

// Get returns a single network.
func (h *NetworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	network, err := h.networks.Get(r.Context(), id, r.URL.Query()["fields"])
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.NetworkEnvelope{Network: &network})
}

// Create creates one network or a bulk batch of networks.
func (h *NetworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var env domain.NetworkEnvelope
	if err := decodeJSON(r, &env); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if env.Network != nil && env.Networks != nil {
		respondError(w, http.StatusBadRequest, "request must be a single network or a bulk list, not both")
		return
	}
	if env.Network == nil && env.Networks == nil {
		respondError(w, http.StatusBadRequest, "request carries no network")
		return
	}

	items := env.Networks
	if env.IsSingleton() {
		items = []domain.Network{*env.Network}
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = generateID()
		}
	}

	created, err := h.networks.Create(r.Context(), items)
	if err != nil {
		handleError(w, err)
		return
	}

	if env.IsSingleton() {
		respondJSON(w, http.StatusCreated, domain.NetworkEnvelope{Network: &created[0]})
		return
	}
	respondJSON(w, http.StatusCreated, domain.NetworkEnvelope{Networks: created})
}

// Update applies a singleton delta to a network.
func (h *NetworkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var env domain.NetworkEnvelope
	if err := decodeJSON(r, &env); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !env.IsSingleton() || env.Networks != nil {
		respondError(w, http.StatusBadRequest, "only singleton edits supported")
		return
	}

	updated, err := h.networks.Update(r.Context(), id, *env.Network)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.NetworkEnvelope{Network: &updated})
}

// Delete deletes a network.
func (h *NetworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.networks.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
