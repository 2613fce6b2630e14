package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

// MaintenanceService defines the maintenance operations used by these handlers.
type MaintenanceService interface {
	Create(ctx context.Context, item *models.MaintenanceItemDB) (uuid.UUID, error)
	Get(ctx context.Context, itemID uuid.UUID) (*models.MaintenanceItemDB, error)
	List(ctx context.Context, filter models.MaintenanceFilter, page models.Page) (*models.PagedResult[models.MaintenanceItemDB], error)
	Update(ctx context.Context, userID uuid.UUID, item *models.MaintenanceItemDB) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	Complete(ctx context.Context, record *models.MaintenanceHistoryDB) (*models.MaintenanceItemDB, error)
	History(ctx context.Context, itemID uuid.UUID) ([]models.MaintenanceHistoryDB, error)
}

// MaintenanceItemRequest represents the JSON body for creating or updating a maintenance item
// swagger:model MaintenanceItemRequest
type MaintenanceItemRequest struct {
	// Item name
	// required: true
	// default: Replace HVAC filter
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`

	// Category
	// required: true
	// default: HVAC
	Category string `json:"category"`

	// Location in the home
	Location *string `json:"location"`

	// Recurrence interval in months
	FrequencyMonths *int `json:"frequency_months"`

	// Next scheduled date
	NextDueDate *time.Time `json:"next_due_date"`

	// Priority
	// default: medium
	Priority string `json:"priority"`

	// Status, used on update only
	Status string `json:"status"`

	// Whether the item repeats
	IsRecurring bool `json:"is_recurring"`

	// Expected cost
	EstimatedCost *float64 `json:"estimated_cost"`

	// Free-form notes
	Notes *string `json:"notes"`

	// User responsible for the item
	AssignedTo *uuid.UUID `json:"assigned_to"`
}

func (req *MaintenanceItemRequest) toModel(createdBy uuid.UUID) *models.MaintenanceItemDB {
	return &models.MaintenanceItemDB{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		FrequencyMonths: req.FrequencyMonths,
		NextDueDate:     req.NextDueDate,
		Priority:        req.Priority,
		Status:          req.Status,
		IsRecurring:     req.IsRecurring,
		EstimatedCost:   req.EstimatedCost,
		Notes:           req.Notes,
		CreatedBy:       createdBy,
		AssignedTo:      req.AssignedTo,
	}
}

// CreatedResponse represents a successful creation response
// swagger:model CreatedResponse
type CreatedResponse struct {
	// Identifier of the created resource
	ID uuid.UUID `json:"id"`
}

// NewCreateMaintenanceItemHandler returns an HTTP handler for creating maintenance items.
// @Summary Create maintenance item
// @Description Schedules a new home maintenance item
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body handlers.MaintenanceItemRequest true "Maintenance item"
// @Success 201 {object} handlers.CreatedResponse "Item created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /maintenance [post]
// @Security BearerAuth
func NewCreateMaintenanceItemHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req MaintenanceItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		itemID, err := svc.Create(r.Context(), req.toModel(claims.UserID))
		if err != nil {
			writeMaintenanceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{ID: itemID})
	}
}

// NewGetMaintenanceItemHandler returns an HTTP handler for fetching one maintenance item.
// @Summary Get maintenance item
// @Tags maintenance
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.MaintenanceItemDB "Maintenance item"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /maintenance/{id} [get]
// @Security BearerAuth
func NewGetMaintenanceItemHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		item, err := svc.Get(r.Context(), itemID)
		if err != nil {
			writeMaintenanceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewListMaintenanceItemsHandler returns an HTTP handler for listing maintenance items.
// @Summary List maintenance items
// @Description Returns a paginated list, filterable by category, status, and overdue
// @Tags maintenance
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param overdue query bool false "Only overdue items"
// @Success 200 {object} models.PagedResult[models.MaintenanceItemDB] "Maintenance items"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /maintenance [get]
// @Security BearerAuth
func NewListMaintenanceItemsHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter models.MaintenanceFilter
		if category := query.Get("category"); category != "" {
			filter.Category = &category
		}
		if status := query.Get("status"); status != "" {
			filter.Status = &status
		}
		filter.OverdueOnly = query.Get("overdue") == "true"

		result, err := svc.List(r.Context(), filter, pageFromQuery(r))
		if err != nil {
			writeMaintenanceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewUpdateMaintenanceItemHandler returns an HTTP handler for updating maintenance items.
// @Summary Update maintenance item
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body handlers.MaintenanceItemRequest true "Maintenance item"
// @Success 200 {object} models.MaintenanceItemDB "Updated item"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /maintenance/{id} [put]
// @Security BearerAuth
func NewUpdateMaintenanceItemHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		itemID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		var req MaintenanceItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item := req.toModel(claims.UserID)
		item.ItemID = itemID
		if item.Status == "" {
			item.Status = models.StatusPending
		}

		if err := svc.Update(r.Context(), claims.UserID, item); err != nil {
			writeMaintenanceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewDeleteMaintenanceItemHandler returns an HTTP handler for deleting maintenance items.
// @Summary Delete maintenance item
// @Tags maintenance
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /maintenance/{id} [delete]
// @Security BearerAuth
func NewDeleteMaintenanceItemHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		itemID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, itemID); err != nil {
			writeMaintenanceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CompleteMaintenanceRequest represents the JSON body for recording a completion
// swagger:model CompleteMaintenanceRequest
type CompleteMaintenanceRequest struct {
	// When the work was done, defaults to now
	CompletionDate *time.Time `json:"completion_date"`

	// What the work cost
	ActualCost *float64 `json:"actual_cost"`

	// Registered service provider who did the work
	ProviderID *uuid.UUID `json:"provider_id"`

	// Who performed the work, free-form
	ServiceProvider *string `json:"service_provider"`

	// Description of the work
	WorkPerformed *string `json:"work_performed"`

	// How well the work was done, 1 to 5
	QualityRating *int `json:"quality_rating"`

	// How satisfied the household is, 1 to 5
	SatisfactionRating *int `json:"satisfaction_rating"`

	// Whether a follow-up visit is needed
	FollowUpRequired bool `json:"follow_up_required"`

	// What the follow-up should cover
	FollowUpNotes *string `json:"follow_up_notes"`

	// Additional notes
	Notes *string `json:"notes"`
}

// NewCompleteMaintenanceItemHandler returns an HTTP handler for recording a completion.
// @Summary Complete maintenance item
// @Description Records a completion. Recurring items reset to pending with their next due date rolled forward.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body handlers.CompleteMaintenanceRequest true "Completion record"
// @Success 200 {object} models.MaintenanceItemDB "Updated item"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Already completed"
// @Router /maintenance/{id}/complete [post]
// @Security BearerAuth
func NewCompleteMaintenanceItemHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		itemID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		var req CompleteMaintenanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		record := &models.MaintenanceHistoryDB{
			ItemID:             itemID,
			ActualCost:         req.ActualCost,
			ProviderID:         req.ProviderID,
			ServiceProvider:    req.ServiceProvider,
			WorkPerformed:      req.WorkPerformed,
			QualityRating:      req.QualityRating,
			SatisfactionRating: req.SatisfactionRating,
			FollowUpRequired:   req.FollowUpRequired,
			FollowUpNotes:      req.FollowUpNotes,
			Notes:              req.Notes,
			CompletedBy:        claims.UserID,
		}
		if req.CompletionDate != nil {
			record.CompletionDate = *req.CompletionDate
		}

		item, err := svc.Complete(r.Context(), record)
		if err != nil {
			writeMaintenanceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// HistoryResponse represents the completion history of a maintenance item
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Completion records, newest first
	History []models.MaintenanceHistoryDB `json:"history"`
}

// NewMaintenanceHistoryHandler returns an HTTP handler for listing completion history.
// @Summary Maintenance item history
// @Tags maintenance
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} handlers.HistoryResponse "Completion history"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /maintenance/{id}/history [get]
// @Security BearerAuth
func NewMaintenanceHistoryHandler(svc MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		records, err := svc.History(r.Context(), itemID)
		if err != nil {
			writeMaintenanceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, HistoryResponse{History: records})
	}
}

func writeMaintenanceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Maintenance item not found")
	case errors.Is(err, services.ErrAlreadyCompleted):
		writeError(w, http.StatusConflict, "Item is already completed")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
