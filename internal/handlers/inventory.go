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

// InventoryService defines the inventory operations used by these handlers.
type InventoryService interface {
	Create(ctx context.Context, item *models.InventoryItemDB) (uuid.UUID, error)
	Get(ctx context.Context, itemID uuid.UUID) (*models.InventoryItemDB, error)
	List(ctx context.Context, filter models.InventoryFilter, page models.Page) (*models.PagedResult[models.InventoryItemDB], error)
	ListLowStock(ctx context.Context) ([]models.InventoryItemDB, error)
	Update(ctx context.Context, userID uuid.UUID, item *models.InventoryItemDB) error
	Adjust(ctx context.Context, userID, itemID uuid.UUID, delta int) (*models.InventoryItemDB, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// InventoryItemRequest represents the JSON body for creating or updating an inventory item
// swagger:model InventoryItemRequest
type InventoryItemRequest struct {
	// Item name
	// required: true
	// default: Furnace filters
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`

	// Category
	// required: true
	// default: Supplies
	Category string `json:"category"`

	// Where the item is stored
	Location *string `json:"location"`

	// Current quantity
	Quantity int `json:"quantity"`

	// Low-stock threshold
	MinQuantity int `json:"min_quantity"`

	// Price per unit
	UnitPrice *float64 `json:"unit_price"`

	// When the item was bought
	PurchaseDate *time.Time `json:"purchase_date"`

	// Warranty end date
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
}

func (req *InventoryItemRequest) toModel(createdBy uuid.UUID) *models.InventoryItemDB {
	return &models.InventoryItemDB{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Location:       req.Location,
		Quantity:       req.Quantity,
		MinQuantity:    req.MinQuantity,
		UnitPrice:      req.UnitPrice,
		PurchaseDate:   req.PurchaseDate,
		WarrantyExpiry: req.WarrantyExpiry,
		CreatedBy:      createdBy,
	}
}

// NewCreateInventoryItemHandler returns an HTTP handler for creating inventory items.
// @Summary Create inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body handlers.InventoryItemRequest true "Inventory item"
// @Success 201 {object} handlers.CreatedResponse "Item created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /inventory [post]
// @Security BearerAuth
func NewCreateInventoryItemHandler(svc InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req InventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		itemID, err := svc.Create(r.Context(), req.toModel(claims.UserID))
		if err != nil {
			writeInventoryError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{ID: itemID})
	}
}

// NewGetInventoryItemHandler returns an HTTP handler for fetching one inventory item.
// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.InventoryItemDB "Inventory item"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /inventory/{id} [get]
// @Security BearerAuth
func NewGetInventoryItemHandler(svc InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		item, err := svc.Get(r.Context(), itemID)
		if err != nil {
			writeInventoryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewListInventoryItemsHandler returns an HTTP handler for listing inventory items.
// @Summary List inventory items
// @Description Returns a paginated list, filterable by category, location, and name search
// @Tags inventory
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param category query string false "Filter by category"
// @Param location query string false "Filter by location"
// @Param search query string false "Substring match on name"
// @Success 200 {object} models.PagedResult[models.InventoryItemDB] "Inventory items"
// @Router /inventory [get]
// @Security BearerAuth
func NewListInventoryItemsHandler(svc InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter models.InventoryFilter
		if category := query.Get("category"); category != "" {
			filter.Category = &category
		}
		if location := query.Get("location"); location != "" {
			filter.Location = &location
		}
		if search := query.Get("search"); search != "" {
			filter.Search = &search
		}

		result, err := svc.List(r.Context(), filter, pageFromQuery(r))
		if err != nil {
			writeInventoryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// LowStockResponse represents items at or below their low-stock threshold
// swagger:model LowStockResponse
type LowStockResponse struct {
	// Low-stock items
	Items []models.InventoryItemDB `json:"items"`
}

// NewLowStockHandler returns an HTTP handler for listing low-stock items.
// @Summary List low-stock items
// @Tags inventory
// @Produce json
// @Success 200 {object} handlers.LowStockResponse "Low-stock items"
// @Router /inventory/low-stock [get]
// @Security BearerAuth
func NewLowStockHandler(svc InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListLowStock(r.Context())
		if err != nil {
			writeInventoryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LowStockResponse{Items: items})
	}
}

// NewUpdateInventoryItemHandler returns an HTTP handler for updating inventory items.
// @Summary Update inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body handlers.InventoryItemRequest true "Inventory item"
// @Success 200 {object} models.InventoryItemDB "Updated item"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /inventory/{id} [put]
// @Security BearerAuth
func NewUpdateInventoryItemHandler(svc InventoryService) http.HandlerFunc {
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

		var req InventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item := req.toModel(claims.UserID)
		item.ItemID = itemID

		if err := svc.Update(r.Context(), claims.UserID, item); err != nil {
			writeInventoryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// AdjustQuantityRequest represents the JSON body for a stock adjustment
// swagger:model AdjustQuantityRequest
type AdjustQuantityRequest struct {
	// Signed quantity change
	// required: true
	// default: -1
	Delta int `json:"delta"`
}

// NewAdjustInventoryQuantityHandler returns an HTTP handler for stock adjustments.
// @Summary Adjust inventory quantity
// @Description Applies a signed delta to an item's quantity. Rejects adjustments below zero.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body handlers.AdjustQuantityRequest true "Adjustment"
// @Success 200 {object} models.InventoryItemDB "Updated item"
// @Failure 400 {object} handlers.ErrorResponse "Insufficient quantity"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /inventory/{id}/adjust [post]
// @Security BearerAuth
func NewAdjustInventoryQuantityHandler(svc InventoryService) http.HandlerFunc {
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

		var req AdjustQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Adjust(r.Context(), claims.UserID, itemID, req.Delta)
		if err != nil {
			writeInventoryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewDeleteInventoryItemHandler returns an HTTP handler for deleting inventory items.
// @Summary Delete inventory item
// @Tags inventory
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /inventory/{id} [delete]
// @Security BearerAuth
func NewDeleteInventoryItemHandler(svc InventoryService) http.HandlerFunc {
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
			writeInventoryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeInventoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInsufficientQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Inventory item not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
