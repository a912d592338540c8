package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"netbound/internal/domain"
	"netbound/internal/lifecycle"
)

var policyFilterKeys = []string{"id", "name", "tenant_id", "shared"}

// QosPolicyHandler handles QoS policy endpoints.
type QosPolicyHandler struct {
	policies *lifecycle.Orchestrator[domain.QosPolicy]
}

// NewQosPolicyHandler creates a new QosPolicyHandler.
func NewQosPolicyHandler(policies *lifecycle.Orchestrator[domain.QosPolicy]) *QosPolicyHandler {
	return &QosPolicyHandler{policies: policies}
}

// List lists QoS policies matching the query filters.
func (h *QosPolicyHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r, policyFilterKeys)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	page, err := h.policies.List(r.Context(), q)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := map[string]any{"policies": page.Items}
	if len(page.Links) > 0 {
		resp["policies_links"] = page.Links
	}
	respondJSON(w, http.StatusOK, resp)
}

// Get returns a single QoS policy.
func (h *QosPolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	policy, err := h.policies.Get(r.Context(), id, r.URL.Query()["fields"])
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.QosPolicyEnvelope{Policy: &policy})
}

// Create creates one QoS policy or a bulk batch.
func (h *QosPolicyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var env domain.QosPolicyEnvelope
	if err := decodeJSON(r, &env); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if env.Policy != nil && env.Policies != nil {
		respondError(w, http.StatusBadRequest, "request must be a single policy or a bulk list, not both")
		return
	}
	if env.Policy == nil && env.Policies == nil {
		respondError(w, http.StatusBadRequest, "request carries no policy")
		return
	}

	items := env.Policies
	if env.IsSingleton() {
		items = []domain.QosPolicy{*env.Policy}
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = generateID()
		}
		for j := range items[i].BandwidthLimitRules {
			if items[i].BandwidthLimitRules[j].ID == "" {
				items[i].BandwidthLimitRules[j].ID = generateID()
			}
		}
		for j := range items[i].DSCPMarkingRules {
			if items[i].DSCPMarkingRules[j].ID == "" {
				items[i].DSCPMarkingRules[j].ID = generateID()
			}
		}
	}

	created, err := h.policies.Create(r.Context(), items)
	if err != nil {
		handleError(w, err)
		return
	}

	if env.IsSingleton() {
		respondJSON(w, http.StatusCreated, domain.QosPolicyEnvelope{Policy: &created[0]})
		return
	}
	respondJSON(w, http.StatusCreated, domain.QosPolicyEnvelope{Policies: created})
}

// Update applies a singleton delta to a QoS policy.
func (h *QosPolicyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var env domain.QosPolicyEnvelope
	if err := decodeJSON(r, &env); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !env.IsSingleton() || env.Policies != nil {
		respondError(w, http.StatusBadRequest, "only singleton edits supported")
		return
	}

	updated, err := h.policies.Update(r.Context(), id, *env.Policy)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.QosPolicyEnvelope{Policy: &updated})
}

// Delete deletes a QoS policy.
func (h *QosPolicyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.policies.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
