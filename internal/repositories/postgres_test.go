package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/migrations"
)

// setupPostgresContainer starts a disposable Postgres, applies the embedded
// migrations, and returns a connected handle plus a teardown func.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	goose.SetBaseFS(migrations.Migrations)
	assert.NoError(t, goose.SetDialect("postgres"))
	assert.NoError(t, goose.Up(db.DB, "."))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// createTestUser inserts a user row and returns its id. Most tables reference
// users, so nearly every test needs one.
func createTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.Get(&userID, `
		INSERT INTO users (username, email, password_hash, full_name)
		VALUES ($1, $2, 'hash', 'Test User')
		RETURNING user_id
	`, username, username+"@example.com")
	assert.NoError(t, err)

	return userID
}
