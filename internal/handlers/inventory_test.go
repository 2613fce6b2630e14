package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

func TestCreateInventoryItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	mockSvc := NewMockInventoryService(ctrl)
	mockSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, item *models.InventoryItemDB) (uuid.UUID, error) {
			assert.Equal(t, "Furnace filters", item.Name)
			assert.Equal(t, 6, item.Quantity)
			assert.Equal(t, testUserID, item.CreatedBy)
			return itemID, nil
		})

	handler := NewCreateInventoryItemHandler(mockSvc)

	bodyBytes, _ := json.Marshal(InventoryItemRequest{
		Name:        "Furnace filters",
		Category:    "Supplies",
		Quantity:    6,
		MinQuantity: 2,
	})
	req := authedRequest(http.MethodPost, "/inventory", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp CreatedResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, itemID, resp.ID)
}

func TestListInventoryItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockInventoryService(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter models.InventoryFilter, page models.Page) (*models.PagedResult[models.InventoryItemDB], error) {
			assert.NotNil(t, filter.Search)
			assert.Equal(t, "filter", *filter.Search)
			result := models.NewPagedResult([]models.InventoryItemDB{{Name: "Furnace filters"}}, 1, page)
			return &result, nil
		})

	handler := NewListInventoryItemsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/inventory?search=filter", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLowStockHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockInventoryService(ctrl)
	mockSvc.EXPECT().
		ListLowStock(gomock.Any()).
		Return([]models.InventoryItemDB{
			{Name: "Light bulbs", Quantity: 1, MinQuantity: 4},
		}, nil)

	handler := NewLowStockHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/inventory/low-stock", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp LowStockResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
}

func TestAdjustInventoryQuantityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	tests := []struct {
		name         string
		delta        int
		mockSetup    func(m *MockInventoryService)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:  "success",
			delta: -2,
			mockSetup: func(m *MockInventoryService) {
				m.EXPECT().
					Adjust(gomock.Any(), testUserID, itemID, -2).
					Return(&models.InventoryItemDB{ItemID: itemID, Quantity: 3}, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "insufficient quantity",
			delta: -10,
			mockSetup: func(m *MockInventoryService) {
				m.EXPECT().
					Adjust(gomock.Any(), testUserID, itemID, -10).
					Return(nil, services.ErrInsufficientQuantity)
			},
			expectedCode: 400,
		},
		{
			name:  "not found",
			delta: 1,
			mockSetup: func(m *MockInventoryService) {
				m.EXPECT().
					Adjust(gomock.Any(), testUserID, itemID, 1).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Inventory item not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockInventoryService(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewAdjustInventoryQuantityHandler(mockSvc)

			bodyBytes, _ := json.Marshal(AdjustQuantityRequest{Delta: tt.delta})
			req := authedRequest(http.MethodPost, "/inventory/"+itemID.String()+"/adjust", bytes.NewBuffer(bodyBytes))
			req = withIDParam(req, "id", itemID.String())

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}

func TestDeleteInventoryItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	mockSvc := NewMockInventoryService(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), testUserID, itemID).
		Return(nil)

	handler := NewDeleteInventoryItemHandler(mockSvc)

	req := authedRequest(http.MethodDelete, "/inventory/"+itemID.String(), nil)
	req = withIDParam(req, "id", itemID.String())

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
