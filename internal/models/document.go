package models

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxDocumentSize is the upload size limit in bytes.
const MaxDocumentSize = 10 * 1024 * 1024

// allowedDocumentExtensions is the upload extension allow-list.
var allowedDocumentExtensions = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".txt":  {},
	".doc":  {},
	".docx": {},
	".xlsx": {},
	".csv":  {},
}

// IsAllowedDocumentName reports whether the file name carries an allowed extension.
func IsAllowedDocumentName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowedDocumentExtensions[ext]
	return ok
}

// DocumentDB represents a stored document's metadata row in the database.
// The document bytes themselves live in object storage under FileKey.
type DocumentDB struct {
	DocumentID  uuid.UUID `json:"document_id" db:"document_id"` // Primary key
	Name        string    `json:"name" db:"name"`               // Original file name
	Description *string   `json:"description" db:"description"` // Optional description
	Category    string    `json:"category" db:"category"`       // Manuals, Receipts, Insurance, etc.
	FileKey     string    `json:"file_key" db:"file_key"`       // Object storage key
	ContentType string    `json:"content_type" db:"content_type"` // MIME type
	SizeBytes   int64     `json:"size_bytes" db:"size_bytes"`   // Declared file size
	UploadedBy  uuid.UUID `json:"uploaded_by" db:"uploaded_by"` // User who registered the document
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
