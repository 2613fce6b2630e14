package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
)

// DocumentReader defines read operations for document metadata.
type DocumentReader interface {
	GetByID(ctx context.Context, documentID uuid.UUID) (*models.DocumentDB, error)
	List(ctx context.Context, filter models.DocumentFilter, page models.Page) ([]models.DocumentDB, int, error)
}

// DocumentWriter defines write operations for document metadata.
type DocumentWriter interface {
	Save(ctx context.Context, doc *models.DocumentDB) (uuid.UUID, error)
	Delete(ctx context.Context, documentID uuid.UUID) error
}

// DocumentStorage issues presigned URLs and removes stored objects.
type DocumentStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}

// DocumentUpload is the result of registering a document: the stored
// metadata plus a presigned URL the client PUTs the file bytes to.
type DocumentUpload struct {
	DocumentID uuid.UUID `json:"document_id"`
	UploadURL  string    `json:"upload_url"`
}

// DocumentService manages document metadata and object storage access.
type DocumentService struct {
	reader   DocumentReader
	writer   DocumentWriter
	storage  DocumentStorage
	recorder ActivityRecorder
	keyFn    func() string
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(reader DocumentReader, writer DocumentWriter, storage DocumentStorage, recorder ActivityRecorder, keyFn func() string) *DocumentService {
	return &DocumentService{
		reader:   reader,
		writer:   writer,
		storage:  storage,
		recorder: recorder,
		keyFn:    keyFn,
	}
}

// Register validates the document metadata, stores it, and returns a
// presigned upload URL. The file bytes never pass through this service.
func (svc *DocumentService) Register(ctx context.Context, doc *models.DocumentDB) (*DocumentUpload, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !models.IsAllowedDocumentName(doc.Name) {
		return nil, fmt.Errorf("%w: file type of %q is not allowed", ErrInvalidInput, doc.Name)
	}
	if doc.SizeBytes <= 0 || doc.SizeBytes > models.MaxDocumentSize {
		return nil, fmt.Errorf("%w: size must be between 1 and %d bytes", ErrInvalidInput, models.MaxDocumentSize)
	}
	if doc.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	doc.FileKey = svc.keyFn()

	uploadURL, err := svc.storage.PresignUpload(ctx, doc.FileKey, doc.ContentType)
	if err != nil {
		logger.Log.Errorw("failed to presign upload", "key", doc.FileKey, "err", err)
		return nil, err
	}

	documentID, err := svc.writer.Save(ctx, doc)
	if err != nil {
		logger.Log.Errorw("failed to save document", "name", doc.Name, "err", err)
		return nil, err
	}

	svc.recorder.Record(ctx, doc.UploadedBy, "document_registered", "document", documentID)

	return &DocumentUpload{DocumentID: documentID, UploadURL: uploadURL}, nil
}

// Get returns document metadata by id.
func (svc *DocumentService) Get(ctx context.Context, documentID uuid.UUID) (*models.DocumentDB, error) {
	doc, err := svc.reader.GetByID(ctx, documentID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get document", "documentID", documentID, "err", err)
		return nil, err
	}
	return doc, nil
}

// List returns a page of document metadata matching the filter.
func (svc *DocumentService) List(ctx context.Context, filter models.DocumentFilter, page models.Page) (*models.PagedResult[models.DocumentDB], error) {
	docs, total, err := svc.reader.List(ctx, filter, page)
	if err != nil {
		logger.Log.Errorw("failed to list documents", "err", err)
		return nil, err
	}

	result := models.NewPagedResult(docs, total, page)
	return &result, nil
}

// DownloadURL returns a presigned GET URL for the document's stored bytes.
func (svc *DocumentService) DownloadURL(ctx context.Context, documentID uuid.UUID) (string, error) {
	doc, err := svc.Get(ctx, documentID)
	if err != nil {
		return "", err
	}

	downloadURL, err := svc.storage.PresignDownload(ctx, doc.FileKey)
	if err != nil {
		logger.Log.Errorw("failed to presign download", "key", doc.FileKey, "err", err)
		return "", err
	}
	return downloadURL, nil
}

// Delete removes the metadata row and then the stored object. A storage
// failure after the row is gone is logged but not returned, the object
// becomes unreachable either way.
func (svc *DocumentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	doc, err := svc.Get(ctx, documentID)
	if err != nil {
		return err
	}

	err = svc.writer.Delete(ctx, documentID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete document", "documentID", documentID, "err", err)
		return err
	}

	if err := svc.storage.DeleteObject(ctx, doc.FileKey); err != nil {
		logger.Log.Warnw("failed to delete stored object", "key", doc.FileKey, "err", err)
	}

	svc.recorder.Record(ctx, userID, "document_deleted", "document", documentID)

	return nil
}
