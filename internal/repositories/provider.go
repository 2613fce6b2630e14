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

const providerColumns = `
	provider_id, name, company, specialty, phone, email, address, hourly_rate,
	rating, is_preferred, notes, is_active, created_by, created_at, updated_at
`

// ProviderReadRepository handles service provider read operations
type ProviderReadRepository struct {
	db *sqlx.DB
}

func NewProviderReadRepository(db *sqlx.DB) *ProviderReadRepository {
	return &ProviderReadRepository{db: db}
}

// GetByID returns an active service provider by id or ErrNotFound.
func (r *ProviderReadRepository) GetByID(ctx context.Context, providerID uuid.UUID) (*models.ServiceProviderDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_providers WHERE provider_id = $1 AND is_active`, providerColumns)

	var provider models.ServiceProviderDB
	err := r.db.GetContext(ctx, &provider, query, providerID)

	logger.Log.Debugw("provider query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{providerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &provider, nil
}

// List returns a page of active service providers matching the filter together
// with the total match count. Preferred providers sort first.
func (r *ProviderReadRepository) List(ctx context.Context, filter models.ProviderFilter, page models.Page) ([]models.ServiceProviderDB, int, error) {
	where := []string{"is_active"}
	args := []any{}

	if filter.Specialty != nil {
		args = append(args, *filter.Specialty)
		where = append(where, fmt.Sprintf("specialty = $%d", len(args)))
	}
	if filter.PreferredOnly {
		where = append(where, "is_preferred")
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR company ILIKE $%d)", len(args), len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM service_providers WHERE %s`, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Debugw("provider query", "query", countQuery, "error", err)
		return nil, 0, err
	}

	args = append(args, page.PerPage, page.Offset())
	listQuery := fmt.Sprintf(
		`SELECT %s FROM service_providers WHERE %s ORDER BY is_preferred DESC, name LIMIT $%d OFFSET $%d`,
		providerColumns, whereClause, len(args)-1, len(args),
	)

	providers := make([]models.ServiceProviderDB, 0)
	err := r.db.SelectContext(ctx, &providers, listQuery, args...)

	logger.Log.Debugw("provider query",
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", args,
		"rows", len(providers),
		"error", err,
	)

	return providers, total, err
}

// ProviderWriteRepository handles service provider write operations
type ProviderWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProviderWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProviderWriteRepository {
	return &ProviderWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProviderWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new service provider and returns its id.
func (r *ProviderWriteRepository) Save(ctx context.Context, provider *models.ServiceProviderDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO service_providers (
			name, company, specialty, phone, email, address, hourly_rate,
			rating, is_preferred, notes, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING provider_id
	`
	args := []any{
		provider.Name, provider.Company, provider.Specialty, provider.Phone,
		provider.Email, provider.Address, provider.HourlyRate, provider.Rating,
		provider.IsPreferred, provider.Notes, provider.CreatedBy,
	}

	var providerID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &providerID, query, args...)

	logger.Log.Debugw("provider insert",
		"query", strings.Join(strings.Fields(query), " "),
		"name", provider.Name,
		"specialty", provider.Specialty,
		"error", err,
	)

	return providerID, err
}

// Update overwrites the mutable fields of a service provider.
func (r *ProviderWriteRepository) Update(ctx context.Context, provider *models.ServiceProviderDB) error {
	const query = `
		UPDATE service_providers
		SET name = $2, company = $3, specialty = $4, phone = $5, email = $6,
		    address = $7, hourly_rate = $8, rating = $9, is_preferred = $10,
		    notes = $11, updated_at = NOW()
		WHERE provider_id = $1 AND is_active
	`
	args := []any{
		provider.ProviderID, provider.Name, provider.Company, provider.Specialty,
		provider.Phone, provider.Email, provider.Address, provider.HourlyRate,
		provider.Rating, provider.IsPreferred, provider.Notes,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("provider update",
		"query", strings.Join(strings.Fields(query), " "),
		"provider_id", provider.ProviderID,
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

// SoftDelete marks a service provider inactive. History rows keep their
// provider reference.
func (r *ProviderWriteRepository) SoftDelete(ctx context.Context, providerID uuid.UUID) error {
	const query = `UPDATE service_providers SET is_active = FALSE, updated_at = NOW() WHERE provider_id = $1 AND is_active`

	res, err := r.executor(ctx).ExecContext(ctx, query, providerID)

	logger.Log.Debugw("provider delete",
		"query", query,
		"args", []any{providerID},
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
