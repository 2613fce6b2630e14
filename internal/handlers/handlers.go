package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/jwt"
	"github.com/evstratovd/home-manager/internal/middlewares"
	"github.com/evstratovd/home-manager/internal/models"
)

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// claimsFromRequest returns the token claims set by the auth middleware.
// Writes a 401 and returns nil when the request carries none.
func claimsFromRequest(w http.ResponseWriter, r *http.Request) *jwt.Claims {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	return claims
}

// idParam parses a UUID path parameter from the chi route context.
func idParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// pageFromQuery reads page and per_page query parameters, clamped to bounds.
func pageFromQuery(r *http.Request) models.Page {
	number, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return models.NewPage(number, perPage)
}
