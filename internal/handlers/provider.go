package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

// ProviderService defines the service-provider operations used by these handlers.
type ProviderService interface {
	Create(ctx context.Context, provider *models.ServiceProviderDB) (uuid.UUID, error)
	Get(ctx context.Context, providerID uuid.UUID) (*models.ServiceProviderDB, error)
	List(ctx context.Context, filter models.ProviderFilter, page models.Page) (*models.PagedResult[models.ServiceProviderDB], error)
	Update(ctx context.Context, userID uuid.UUID, provider *models.ServiceProviderDB) error
	Delete(ctx context.Context, userID, providerID uuid.UUID) error
}

// ServiceProviderRequest represents the JSON body for creating or updating a service provider
// swagger:model ServiceProviderRequest
type ServiceProviderRequest struct {
	// Contact name
	// required: true
	// default: Mike Rowe
	Name string `json:"name"`

	// Company the contact works for
	Company *string `json:"company"`

	// Trade or specialty
	// required: true
	// default: Plumbing
	Specialty string `json:"specialty"`

	// Phone number
	Phone *string `json:"phone"`

	// Email address
	Email *string `json:"email"`

	// Street address
	Address *string `json:"address"`

	// Hourly rate charged
	HourlyRate *float64 `json:"hourly_rate"`

	// Household rating from 0 to 5
	Rating *float64 `json:"rating"`

	// Whether this is the household's go-to provider for the specialty
	IsPreferred bool `json:"is_preferred"`

	// Free-form notes
	Notes *string `json:"notes"`
}

func (req *ServiceProviderRequest) toModel(createdBy uuid.UUID) *models.ServiceProviderDB {
	return &models.ServiceProviderDB{
		Name:        req.Name,
		Company:     req.Company,
		Specialty:   req.Specialty,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		HourlyRate:  req.HourlyRate,
		Rating:      req.Rating,
		IsPreferred: req.IsPreferred,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
	}
}

// NewCreateServiceProviderHandler returns an HTTP handler for adding service providers.
// @Summary Create service provider
// @Tags providers
// @Accept json
// @Produce json
// @Param request body handlers.ServiceProviderRequest true "Service provider"
// @Success 201 {object} handlers.CreatedResponse "Provider created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /providers [post]
// @Security BearerAuth
func NewCreateServiceProviderHandler(svc ProviderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req ServiceProviderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		providerID, err := svc.Create(r.Context(), req.toModel(claims.UserID))
		if err != nil {
			writeProviderError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{ID: providerID})
	}
}

// NewGetServiceProviderHandler returns an HTTP handler for fetching one service provider.
// @Summary Get service provider
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} models.ServiceProviderDB "Service provider"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /providers/{id} [get]
// @Security BearerAuth
func NewGetServiceProviderHandler(svc ProviderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid provider id")
			return
		}

		provider, err := svc.Get(r.Context(), providerID)
		if err != nil {
			writeProviderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, provider)
	}
}

// NewListServiceProvidersHandler returns an HTTP handler for listing service providers.
// @Summary List service providers
// @Description Returns a paginated list with preferred providers first, filterable by specialty and name search
// @Tags providers
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param specialty query string false "Filter by specialty"
// @Param preferred query bool false "Only preferred providers"
// @Param search query string false "Substring match on name or company"
// @Success 200 {object} models.PagedResult[models.ServiceProviderDB] "Service providers"
// @Router /providers [get]
// @Security BearerAuth
func NewListServiceProvidersHandler(svc ProviderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter models.ProviderFilter
		if specialty := query.Get("specialty"); specialty != "" {
			filter.Specialty = &specialty
		}
		if query.Get("preferred") == "true" {
			filter.PreferredOnly = true
		}
		if search := query.Get("search"); search != "" {
			filter.Search = &search
		}

		result, err := svc.List(r.Context(), filter, pageFromQuery(r))
		if err != nil {
			writeProviderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewUpdateServiceProviderHandler returns an HTTP handler for updating service providers.
// @Summary Update service provider
// @Tags providers
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body handlers.ServiceProviderRequest true "Service provider"
// @Success 200 {object} models.ServiceProviderDB "Updated provider"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /providers/{id} [put]
// @Security BearerAuth
func NewUpdateServiceProviderHandler(svc ProviderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		providerID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid provider id")
			return
		}

		var req ServiceProviderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		provider := req.toModel(claims.UserID)
		provider.ProviderID = providerID

		if err := svc.Update(r.Context(), claims.UserID, provider); err != nil {
			writeProviderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, provider)
	}
}

// NewDeleteServiceProviderHandler returns an HTTP handler for deleting service providers.
// @Summary Delete service provider
// @Description Deactivates the provider. Maintenance history keeps its reference.
// @Tags providers
// @Param id path string true "Provider ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /providers/{id} [delete]
// @Security BearerAuth
func NewDeleteServiceProviderHandler(svc ProviderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		providerID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid provider id")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, providerID); err != nil {
			writeProviderError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeProviderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Service provider not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
