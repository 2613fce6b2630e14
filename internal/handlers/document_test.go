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

func TestRegisterDocumentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documentID := uuid.New()

	tests := []struct {
		name         string
		reqBody      DocumentRequest
		mockSetup    func(m *MockDocumentService)
		expectedCode int
	}{
		{
			name: "success",
			reqBody: DocumentRequest{
				Name:        "boiler-manual.pdf",
				Category:    "Manuals",
				ContentType: "application/pdf",
				SizeBytes:   1024,
			},
			mockSetup: func(m *MockDocumentService) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, doc *models.DocumentDB) (*services.DocumentUpload, error) {
						assert.Equal(t, "boiler-manual.pdf", doc.Name)
						assert.Equal(t, testUserID, doc.UploadedBy)
						return &services.DocumentUpload{
							DocumentID: documentID,
							UploadURL:  "https://storage.example.com/upload",
						}, nil
					})
			},
			expectedCode: 201,
		},
		{
			name: "rejected extension",
			reqBody: DocumentRequest{
				Name:      "setup.exe",
				Category:  "Manuals",
				SizeBytes: 1024,
			},
			mockSetup: func(m *MockDocumentService) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrInvalidInput)
			},
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDocumentService(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterDocumentHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := authedRequest(http.MethodPost, "/documents", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == 201 {
				var resp DocumentUploadResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, documentID, resp.DocumentID)
				assert.Equal(t, "https://storage.example.com/upload", resp.UploadURL)
			}
		})
	}
}

func TestListDocumentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDocumentService(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter models.DocumentFilter, page models.Page) (*models.PagedResult[models.DocumentDB], error) {
			assert.NotNil(t, filter.Category)
			assert.Equal(t, "Receipts", *filter.Category)
			result := models.NewPagedResult([]models.DocumentDB{{Name: "dishwasher-receipt.pdf"}}, 1, page)
			return &result, nil
		})

	handler := NewListDocumentsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/documents?category=Receipts", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDocumentDownloadURLHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documentID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockDocumentService)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockDocumentService) {
				m.EXPECT().
					DownloadURL(gomock.Any(), documentID).
					Return("https://storage.example.com/download", nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			mockSetup: func(m *MockDocumentService) {
				m.EXPECT().
					DownloadURL(gomock.Any(), documentID).
					Return("", services.ErrNotFound)
			},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDocumentService(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewDocumentDownloadURLHandler(mockSvc)

			req := withIDParam(httptest.NewRequest(http.MethodGet, "/documents/"+documentID.String()+"/download", nil), "id", documentID.String())
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == 200 {
				var resp DocumentDownloadResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "https://storage.example.com/download", resp.DownloadURL)
			}
		})
	}
}

func TestDeleteDocumentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documentID := uuid.New()

	mockSvc := NewMockDocumentService(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), testUserID, documentID).
		Return(nil)

	handler := NewDeleteDocumentHandler(mockSvc)

	req := authedRequest(http.MethodDelete, "/documents/"+documentID.String(), nil)
	req = withIDParam(req, "id", documentID.String())

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
