package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	userID, err := repo.Save(ctx, "alice", "alice@example.com", "hash123", "Alice Smith", models.RoleFamilyMember)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	var user struct {
		Username     string `db:"username"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
	}
	err = db.Get(&user, "SELECT username, email, password_hash, role FROM users WHERE user_id=$1", userID)
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.Equal(t, models.RoleFamilyMember, user.Role)
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Save(ctx, "bob", "bob@example.com", "hash", "Bob", models.RoleFamilyMember)
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "bob", "other@example.com", "hash", "Bob", models.RoleFamilyMember)
	assert.Error(t, err)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "secret", "Charlie", models.RoleAdmin)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "secret2", "Dave", models.RoleGuest)
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("NoMatch", func(t *testing.T) {
		username := "ghost"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "erin")

	user, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "erin", user.Username)
	assert.True(t, user.IsActive)

	_, err = readRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "zoe")
	createTestUser(t, db, "adam")

	users, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "adam", users[0].Username)
	assert.Equal(t, "zoe", users[1].Username)
}

func TestUserWriteRepository_UpdateProfile(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "frank")

	err := writeRepo.UpdateProfile(ctx, &models.UserDB{
		UserID:      userID,
		FullName:    "Frank N. Stein",
		Timezone:    "Europe/Berlin",
		Theme:       "dark",
		Language:    "de",
		EmailAlerts: true,
		TaskAlerts:  false,
	})
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "Frank N. Stein", user.FullName)
	assert.Equal(t, "dark", user.Theme)
	assert.False(t, user.TaskAlerts)

	err = writeRepo.UpdateProfile(ctx, &models.UserDB{UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserWriteRepository_UpdateLastLogin(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "grace")

	user, err := readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Nil(t, user.LastLogin)

	assert.NoError(t, writeRepo.UpdateLastLogin(ctx, userID))

	user, err = readRepo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, user.LastLogin)
}
