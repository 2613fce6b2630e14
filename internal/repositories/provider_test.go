package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
)

func TestProviderRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProviderWriteRepository(db, nil)
	readRepo := NewProviderReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	company := "HeatCo Ltd"
	phone := "+1-555-0134"
	rate := 95.0
	rating := 4.5

	providerID, err := writeRepo.Save(ctx, &models.ServiceProviderDB{
		Name:        "Mike Rowe",
		Company:     &company,
		Specialty:   "HVAC",
		Phone:       &phone,
		HourlyRate:  &rate,
		Rating:      &rating,
		IsPreferred: true,
		CreatedBy:   userID,
	})
	assert.NoError(t, err)

	provider, err := readRepo.GetByID(ctx, providerID)
	assert.NoError(t, err)
	assert.Equal(t, "Mike Rowe", provider.Name)
	assert.Equal(t, &company, provider.Company)
	assert.Equal(t, "HVAC", provider.Specialty)
	assert.Equal(t, &phone, provider.Phone)
	assert.Equal(t, &rate, provider.HourlyRate)
	assert.Equal(t, &rating, provider.Rating)
	assert.True(t, provider.IsPreferred)
	assert.True(t, provider.IsActive)

	_, err = readRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProviderReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProviderWriteRepository(db, nil)
	readRepo := NewProviderReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	save := func(name, specialty string, company *string, preferred bool) {
		_, err := writeRepo.Save(ctx, &models.ServiceProviderDB{
			Name:        name,
			Company:     company,
			Specialty:   specialty,
			IsPreferred: preferred,
			CreatedBy:   userID,
		})
		assert.NoError(t, err)
	}

	rooterCo := "Rooter Brothers"
	save("Alan Pike", "Plumbing", &rooterCo, false)
	save("Beth Ohm", "Electrical", nil, true)
	save("Carl Drain", "Plumbing", nil, true)

	t.Run("PreferredFirst", func(t *testing.T) {
		providers, total, err := readRepo.List(ctx, models.ProviderFilter{}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, "Beth Ohm", providers[0].Name)
		assert.Equal(t, "Carl Drain", providers[1].Name)
		assert.Equal(t, "Alan Pike", providers[2].Name)
	})

	t.Run("BySpecialty", func(t *testing.T) {
		specialty := "Plumbing"
		providers, total, err := readRepo.List(ctx, models.ProviderFilter{Specialty: &specialty}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, providers, 2)
	})

	t.Run("PreferredOnly", func(t *testing.T) {
		_, total, err := readRepo.List(ctx, models.ProviderFilter{PreferredOnly: true}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("SearchMatchesCompany", func(t *testing.T) {
		search := "rooter"
		providers, total, err := readRepo.List(ctx, models.ProviderFilter{Search: &search}, models.NewPage(1, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Alan Pike", providers[0].Name)
	})
}

func TestProviderWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProviderWriteRepository(db, nil)
	readRepo := NewProviderReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	providerID, err := writeRepo.Save(ctx, &models.ServiceProviderDB{
		Name:      "Alan Pike",
		Specialty: "Plumbing",
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	rating := 3.5
	err = writeRepo.Update(ctx, &models.ServiceProviderDB{
		ProviderID:  providerID,
		Name:        "Alan Pike",
		Specialty:   "Plumbing",
		Rating:      &rating,
		IsPreferred: true,
	})
	assert.NoError(t, err)

	provider, err := readRepo.GetByID(ctx, providerID)
	assert.NoError(t, err)
	assert.Equal(t, &rating, provider.Rating)
	assert.True(t, provider.IsPreferred)

	err = writeRepo.Update(ctx, &models.ServiceProviderDB{ProviderID: uuid.New(), Name: "Ghost", Specialty: "None"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProviderWriteRepository_SoftDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProviderWriteRepository(db, nil)
	readRepo := NewProviderReadRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "owner")

	providerID, err := writeRepo.Save(ctx, &models.ServiceProviderDB{
		Name:      "Beth Ohm",
		Specialty: "Electrical",
		CreatedBy: userID,
	})
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.SoftDelete(ctx, providerID))

	_, err = readRepo.GetByID(ctx, providerID)
	assert.ErrorIs(t, err, ErrNotFound)

	// second delete finds nothing
	assert.ErrorIs(t, writeRepo.SoftDelete(ctx, providerID), ErrNotFound)
}
