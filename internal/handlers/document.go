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

// DocumentService defines the document operations used by these handlers.
type DocumentService interface {
	Register(ctx context.Context, doc *models.DocumentDB) (*services.DocumentUpload, error)
	Get(ctx context.Context, documentID uuid.UUID) (*models.DocumentDB, error)
	List(ctx context.Context, filter models.DocumentFilter, page models.Page) (*models.PagedResult[models.DocumentDB], error)
	DownloadURL(ctx context.Context, documentID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID, documentID uuid.UUID) error
}

// DocumentRequest represents the JSON body for registering a document
// swagger:model DocumentRequest
type DocumentRequest struct {
	// Original file name
	// required: true
	// default: boiler-manual.pdf
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`

	// Category
	// required: true
	// default: Manuals
	Category string `json:"category"`

	// MIME type
	// default: application/pdf
	ContentType string `json:"content_type"`

	// Declared file size in bytes
	// required: true
	SizeBytes int64 `json:"size_bytes"`
}

// DocumentUploadResponse carries the presigned upload target
// swagger:model DocumentUploadResponse
type DocumentUploadResponse struct {
	DocumentID uuid.UUID `json:"document_id"`
	UploadURL  string    `json:"upload_url"`
}

// NewRegisterDocumentHandler returns an HTTP handler that registers document
// metadata and hands back a presigned upload URL.
// @Summary Register document
// @Description Stores document metadata and returns a presigned URL the client uploads the file to
// @Tags documents
// @Accept json
// @Produce json
// @Param request body handlers.DocumentRequest true "Document"
// @Success 201 {object} handlers.DocumentUploadResponse "Upload target"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /documents [post]
// @Security BearerAuth
func NewRegisterDocumentHandler(svc DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req DocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		upload, err := svc.Register(r.Context(), &models.DocumentDB{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			ContentType: req.ContentType,
			SizeBytes:   req.SizeBytes,
			UploadedBy:  claims.UserID,
		})
		if err != nil {
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, DocumentUploadResponse{
			DocumentID: upload.DocumentID,
			UploadURL:  upload.UploadURL,
		})
	}
}

// NewGetDocumentHandler returns an HTTP handler for fetching document metadata.
// @Summary Get document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.DocumentDB "Document"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /documents/{id} [get]
// @Security BearerAuth
func NewGetDocumentHandler(svc DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid document id")
			return
		}

		doc, err := svc.Get(r.Context(), documentID)
		if err != nil {
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

// NewListDocumentsHandler returns an HTTP handler for listing documents.
// @Summary List documents
// @Tags documents
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param category query string false "Filter by category"
// @Param search query string false "Case-insensitive substring match on name"
// @Success 200 {object} models.PagedResult[models.DocumentDB] "Documents"
// @Router /documents [get]
// @Security BearerAuth
func NewListDocumentsHandler(svc DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter models.DocumentFilter
		if category := query.Get("category"); category != "" {
			filter.Category = &category
		}
		if search := query.Get("search"); search != "" {
			filter.Search = &search
		}

		result, err := svc.List(r.Context(), filter, pageFromQuery(r))
		if err != nil {
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// DocumentDownloadResponse carries the presigned download target
// swagger:model DocumentDownloadResponse
type DocumentDownloadResponse struct {
	DownloadURL string `json:"download_url"`
}

// NewDocumentDownloadURLHandler returns an HTTP handler that presigns a download.
// @Summary Get download URL
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} handlers.DocumentDownloadResponse "Download target"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /documents/{id}/download [get]
// @Security BearerAuth
func NewDocumentDownloadURLHandler(svc DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid document id")
			return
		}

		url, err := svc.DownloadURL(r.Context(), documentID)
		if err != nil {
			writeDocumentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DocumentDownloadResponse{DownloadURL: url})
	}
}

// NewDeleteDocumentHandler returns an HTTP handler for deleting documents.
// @Summary Delete document
// @Description Removes document metadata and the stored object
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /documents/{id} [delete]
// @Security BearerAuth
func NewDeleteDocumentHandler(svc DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		documentID, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid document id")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, documentID); err != nil {
			writeDocumentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeDocumentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Document not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
