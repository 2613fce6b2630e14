package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

func TestCreateMaintenanceItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	tests := []struct {
		name         string
		reqBody      MaintenanceItemRequest
		mockSetup    func(m *MockMaintenanceService)
		expectedCode int
	}{
		{
			name: "success",
			reqBody: MaintenanceItemRequest{
				Name:     "Replace HVAC filter",
				Category: "HVAC",
			},
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, item *models.MaintenanceItemDB) (uuid.UUID, error) {
						assert.Equal(t, "Replace HVAC filter", item.Name)
						assert.Equal(t, testUserID, item.CreatedBy)
						return itemID, nil
					})
			},
			expectedCode: 201,
		},
		{
			name:    "validation error",
			reqBody: MaintenanceItemRequest{Category: "HVAC"},
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrInvalidInput)
			},
			expectedCode: 400,
		},
		{
			name: "internal server error",
			reqBody: MaintenanceItemRequest{
				Name:     "Replace HVAC filter",
				Category: "HVAC",
			},
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMaintenanceService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateMaintenanceItemHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := authedRequest(http.MethodPost, "/maintenance", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == 201 {
				var resp CreatedResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, itemID, resp.ID)
			}
		})
	}
}

func TestCreateMaintenanceItemHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCreateMaintenanceItemHandler(NewMockMaintenanceService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/maintenance", bytes.NewBufferString("{}"))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMaintenanceItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	tests := []struct {
		name         string
		paramID      string
		mockSetup    func(m *MockMaintenanceService)
		expectedCode int
	}{
		{
			name:    "success",
			paramID: itemID.String(),
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Get(gomock.Any(), itemID).
					Return(&models.MaintenanceItemDB{ItemID: itemID, Name: "Gutter cleaning"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:    "not found",
			paramID: itemID.String(),
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Get(gomock.Any(), itemID).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "invalid id",
			paramID:      "not-a-uuid",
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMaintenanceService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetMaintenanceItemHandler(mockSvc)

			req := withIDParam(httptest.NewRequest(http.MethodGet, "/maintenance/"+tt.paramID, nil), "id", tt.paramID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListMaintenanceItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMaintenanceService(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter models.MaintenanceFilter, page models.Page) (*models.PagedResult[models.MaintenanceItemDB], error) {
			assert.NotNil(t, filter.Category)
			assert.Equal(t, "plumbing", *filter.Category)
			assert.True(t, filter.OverdueOnly)
			assert.Equal(t, 2, page.Number)
			result := models.NewPagedResult([]models.MaintenanceItemDB{{Name: "Flush water heater"}}, 21, page)
			return &result, nil
		})

	handler := NewListMaintenanceItemsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/maintenance?category=plumbing&overdue=true&page=2&per_page=20", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result models.PagedResult[models.MaintenanceItemDB]
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 21, result.Total)
	assert.Len(t, result.Items, 1)
}

func TestCompleteMaintenanceItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	providerID := uuid.New()
	cost := 49.99
	quality := 4

	tests := []struct {
		name         string
		mockSetup    func(m *MockMaintenanceService)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, record *models.MaintenanceHistoryDB) (*models.MaintenanceItemDB, error) {
						assert.Equal(t, itemID, record.ItemID)
						assert.Equal(t, testUserID, record.CompletedBy)
						assert.Equal(t, &cost, record.ActualCost)
						assert.Equal(t, &providerID, record.ProviderID)
						assert.Equal(t, &quality, record.QualityRating)
						assert.True(t, record.FollowUpRequired)
						return &models.MaintenanceItemDB{ItemID: itemID, Status: models.StatusPending}, nil
					})
			},
			expectedCode: 200,
		},
		{
			name: "already completed",
			mockSetup: func(m *MockMaintenanceService) {
				m.EXPECT().
					Complete(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrAlreadyCompleted)
			},
			expectedCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMaintenanceService(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCompleteMaintenanceItemHandler(mockSvc)

			bodyBytes, _ := json.Marshal(CompleteMaintenanceRequest{
				ActualCost:       &cost,
				ProviderID:       &providerID,
				QualityRating:    &quality,
				FollowUpRequired: true,
			})
			req := authedRequest(http.MethodPost, "/maintenance/"+itemID.String()+"/complete", bytes.NewBuffer(bodyBytes))
			req = withIDParam(req, "id", itemID.String())

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteMaintenanceItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	mockSvc := NewMockMaintenanceService(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), testUserID, itemID).
		Return(nil)

	handler := NewDeleteMaintenanceItemHandler(mockSvc)

	req := authedRequest(http.MethodDelete, "/maintenance/"+itemID.String(), nil)
	req = withIDParam(req, "id", itemID.String())

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestMaintenanceHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	mockSvc := NewMockMaintenanceService(ctrl)
	mockSvc.EXPECT().
		History(gomock.Any(), itemID).
		Return([]models.MaintenanceHistoryDB{
			{ItemID: itemID, CompletedBy: testUserID},
		}, nil)

	handler := NewMaintenanceHistoryHandler(mockSvc)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/maintenance/"+itemID.String()+"/history", nil), "id", itemID.String())
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HistoryResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.History, 1)
}
