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

// ProviderReader defines read operations for service providers.
type ProviderReader interface {
	GetByID(ctx context.Context, providerID uuid.UUID) (*models.ServiceProviderDB, error)
	List(ctx context.Context, filter models.ProviderFilter, page models.Page) ([]models.ServiceProviderDB, int, error)
}

// ProviderWriter defines write operations for service providers.
type ProviderWriter interface {
	Save(ctx context.Context, provider *models.ServiceProviderDB) (uuid.UUID, error)
	Update(ctx context.Context, provider *models.ServiceProviderDB) error
	SoftDelete(ctx context.Context, providerID uuid.UUID) error
}

// ProviderService manages the household's contractor and service company book.
type ProviderService struct {
	reader   ProviderReader
	writer   ProviderWriter
	recorder ActivityRecorder
}

// NewProviderService creates a new ProviderService.
func NewProviderService(reader ProviderReader, writer ProviderWriter, recorder ActivityRecorder) *ProviderService {
	return &ProviderService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

func (svc *ProviderService) validate(provider *models.ServiceProviderDB) error {
	if provider.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if provider.Specialty == "" {
		return fmt.Errorf("%w: specialty is required", ErrInvalidInput)
	}
	if provider.HourlyRate != nil && *provider.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative", ErrInvalidInput)
	}
	if provider.Rating != nil && (*provider.Rating < 0 || *provider.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	return nil
}

// Create validates and stores a new service provider.
func (svc *ProviderService) Create(ctx context.Context, provider *models.ServiceProviderDB) (uuid.UUID, error) {
	if err := svc.validate(provider); err != nil {
		return uuid.Nil, err
	}

	providerID, err := svc.writer.Save(ctx, provider)
	if err != nil {
		logger.Log.Errorw("failed to save provider", "name", provider.Name, "err", err)
		return uuid.Nil, err
	}

	svc.recorder.Record(ctx, provider.CreatedBy, "provider_created", "service_provider", providerID)

	return providerID, nil
}

// Get returns a service provider by id.
func (svc *ProviderService) Get(ctx context.Context, providerID uuid.UUID) (*models.ServiceProviderDB, error) {
	provider, err := svc.reader.GetByID(ctx, providerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get provider", "providerID", providerID, "err", err)
		return nil, err
	}
	return provider, nil
}

// List returns a page of service providers matching the filter.
func (svc *ProviderService) List(ctx context.Context, filter models.ProviderFilter, page models.Page) (*models.PagedResult[models.ServiceProviderDB], error) {
	providers, total, err := svc.reader.List(ctx, filter, page)
	if err != nil {
		logger.Log.Errorw("failed to list providers", "err", err)
		return nil, err
	}

	result := models.NewPagedResult(providers, total, page)
	return &result, nil
}

// Update validates and overwrites an existing service provider.
func (svc *ProviderService) Update(ctx context.Context, userID uuid.UUID, provider *models.ServiceProviderDB) error {
	if err := svc.validate(provider); err != nil {
		return err
	}

	err := svc.writer.Update(ctx, provider)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update provider", "providerID", provider.ProviderID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "provider_updated", "service_provider", provider.ProviderID)

	return nil
}

// Delete marks a service provider inactive. Past completion records keep
// referring to it.
func (svc *ProviderService) Delete(ctx context.Context, userID, providerID uuid.UUID) error {
	err := svc.writer.SoftDelete(ctx, providerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete provider", "providerID", providerID, "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "provider_deleted", "service_provider", providerID)

	return nil
}
