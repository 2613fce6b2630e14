package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching the given username or
// email. Returns (nil, nil) when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, full_name, role, is_active,
		       last_login, timezone, theme, language, email_alerts, task_alerts,
		       budget_alerts, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, full_name, role, is_active,
		       last_login, timezone, theme, language, email_alerts, task_alerts,
		       budget_alerts, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all users ordered by username.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, full_name, role, is_active,
		       last_login, timezone, theme, language, email_alerts, task_alerts,
		       budget_alerts, created_at, updated_at
		FROM users
		ORDER BY username
	`

	users := make([]models.UserDB, 0)
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns its id.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash, fullName, role string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{username, email, passwordHash, fullName, role}

	var userID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &userID, query, args...)

	logger.Log.Debugw("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, fullName, role},
		"error", err,
	)

	return userID, err
}

// UpdateProfile updates profile and preference fields of a user.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET full_name = $2, timezone = $3, theme = $4, language = $5,
		    email_alerts = $6, task_alerts = $7, budget_alerts = $8,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{
		user.UserID, user.FullName, user.Timezone, user.Theme, user.Language,
		user.EmailAlerts, user.TaskAlerts, user.BudgetAlerts,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
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

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE user_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Debugw("user update",
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
