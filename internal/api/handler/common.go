package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"netbound/internal/domain"
	"netbound/internal/lifecycle"
)

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a JSON error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &domain.APIError{
		Code:    status,
		Message: message,
	})
}

// handleError converts domain errors to HTTP errors. An extension veto is
// passed through with its exact status.
func handleError(w http.ResponseWriter, err error) {
	var veto *domain.VetoError
	switch {
	case errors.As(err, &veto):
		respondError(w, veto.Status, "rejected by extension")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInUse):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes JSON from request body.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// generateID generates a new UUID.
func generateID() string {
	return uuid.New().String()
}

// parseQuery turns the request's query parameters into a lifecycle query.
// Filter values are picked from the allowed keys for the resource; fields,
// limit, marker and page_reverse control projection and pagination.
func parseQuery(r *http.Request, filterKeys []string) (lifecycle.Query, error) {
	values := r.URL.Query()
	q := lifecycle.Query{
		Filters: make(map[string]string),
		Fields:  values["fields"],
		Marker:  values.Get("marker"),
		Base:    requestURL(r),
	}
	for _, key := range filterKeys {
		if values.Has(key) {
			q.Filters[key] = values.Get(key)
		}
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return lifecycle.Query{}, domain.ErrInvalidInput
		}
		q.Limit = limit
	}
	if raw := values.Get("page_reverse"); raw != "" {
		reverse, err := strconv.ParseBool(raw)
		if err != nil {
			return lifecycle.Query{}, domain.ErrInvalidInput
		}
		q.Reverse = reverse
	}
	return q, nil
}

func requestURL(r *http.Request) *url.URL {
	u := *r.URL
	if u.Host == "" {
		u.Host = r.Host
	}
	if u.Scheme == "" {
		u.Scheme = "http"
		if r.TLS != nil {
			u.Scheme = "https"
		}
	}
	return &u
}
