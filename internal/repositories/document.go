package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

const documentColumns = `
	document_id, name, description, category, file_key, content_type,
	size_bytes, uploaded_by, created_at, updated_at
`

// DocumentReadRepository handles document metadata read operations
type DocumentReadRepository struct {
	db *sqlx.DB
}

func NewDocumentReadRepository(db *sqlx.DB) *DocumentReadRepository {
	return &DocumentReadRepository{db: db}
}

// GetByID returns document metadata by id or ErrNotFound.
func (r *DocumentReadRepository) GetByID(ctx context.Context, documentID uuid.UUID) (*models.DocumentDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE document_id = $1`, documentColumns)

	var doc models.DocumentDB
	err := r.db.GetContext(ctx, &doc, query, documentID)

	logger.Log.Debugw("document query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{documentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// List returns a page of documents matching the filter, newest first, together
// with the total match count.
func (r *DocumentReadRepository) List(ctx context.Context, filter models.DocumentFilter, page models.Page) ([]models.DocumentDB, int, error) {
	where := []string{"TRUE"}
	args := []any{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM documents WHERE %s`, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Debugw("document query", "query", countQuery, "error", err)
		return nil, 0, err
	}

	args = append(args, page.PerPage, page.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM documents WHERE %s ORDER BY created_at DESC, name LIMIT $%d OFFSET $%d`,
		documentColumns, whereClause, len(args)-1, len(args),
	)

	docs := make([]models.DocumentDB, 0)
	err := r.db.SelectContext(ctx, &docs, listQuery, args...)

	logger.Log.Debugw("document query",
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", args,
		"rows", len(docs),
		"error", err,
	)

	return docs, total, err
}

// DocumentWriteRepository handles document metadata write operations
type DocumentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDocumentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DocumentWriteRepository {
	return &DocumentWriteRepository{db: db, txGetter: txGetter}
}

func (r *DocumentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts new document metadata and returns its id.
func (r *DocumentWriteRepository) Save(ctx context.Context, doc *models.DocumentDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO documents (
			name, description, category, file_key, content_type, size_bytes,
			uploaded_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING document_id
	`
	args := []any{
		doc.Name, doc.Description, doc.Category, doc.FileKey,
		doc.ContentType, doc.SizeBytes, doc.UploadedBy,
	}

	var documentID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &documentID, query, args...)

	logger.Log.Debugw("document insert",
		"query", strings.Join(strings.Fields(query), " "),
		"name", doc.Name,
		"file_key", doc.FileKey,
		"error", err,
	)

	return documentID, err
}

// Delete removes document metadata permanently.
func (r *DocumentWriteRepository) Delete(ctx context.Context, documentID uuid.UUID) error {
	const query = `DELETE FROM documents WHERE document_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, documentID)

	logger.Log.Debugw("document delete",
		"query", query,
		"args", []any{documentID},
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
