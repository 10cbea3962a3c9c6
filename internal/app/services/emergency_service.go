package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/repositories"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

// EmergencyStore persists incident reports
type EmergencyStore interface {
	Create(ctx context.Context, record map[string]interface{}) (int64, error)
	List(ctx context.Context) ([]*models.EmergencySummary, error)
	GetByID(ctx context.Context, id int64) (map[string]interface{}, error)
	Update(ctx context.Context, id int64, record map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// EmergencyService handles incident report operations
type EmergencyService interface {
	Create(ctx context.Context, record map[string]interface{}) (int64, error)
	List(ctx context.Context) (*dto.EmergencyListResponse, error)
	Get(ctx context.Context, id int64) (*dto.EmergencyResponse, error)
	Update(ctx context.Context, id int64, record map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type emergencyServiceImpl struct {
	emergencyRepo EmergencyStore
}

// NewEmergencyService creates a new EmergencyService
func NewEmergencyService(emergencyRepo EmergencyStore) EmergencyService {
	return &emergencyServiceImpl{emergencyRepo: emergencyRepo}
}

// Create stores a new incident report from a sparse field map
func (s *emergencyServiceImpl) Create(ctx context.Context, record map[string]interface{}) (int64, error) {
	id, err := s.emergencyRepo.Create(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("error creating emergency report: %w", err)
	}
	return id, nil
}

// List returns summaries of all incident reports, newest first
func (s *emergencyServiceImpl) List(ctx context.Context) (*dto.EmergencyListResponse, error) {
	summaries, err := s.emergencyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing emergency reports: %w", err)
	}
	return &dto.EmergencyListResponse{Emergencies: summaries, Count: len(summaries)}, nil
}

// Get returns one full incident report
func (s *emergencyServiceImpl) Get(ctx context.Context, id int64) (*dto.EmergencyResponse, error) {
	record, err := s.emergencyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmergencyNotFound) {
			return nil, apperrors.ErrEmergencyNotFound
		}
		return nil, fmt.Errorf("error fetching emergency report: %w", err)
	}
	return &dto.EmergencyResponse{Emergency: record}, nil
}

// Update replaces the stored fields of an incident report
func (s *emergencyServiceImpl) Update(ctx context.Context, id int64, record map[string]interface{}) error {
	if err := s.emergencyRepo.Update(ctx, id, record); err != nil {
		if errors.Is(err, repositories.ErrEmergencyNotFound) {
			return apperrors.ErrEmergencyNotFound
		}
		return fmt.Errorf("error updating emergency report: %w", err)
	}
	return nil
}

// Delete removes an incident report
func (s *emergencyServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.emergencyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEmergencyNotFound) {
			return apperrors.ErrEmergencyNotFound
		}
		return fmt.Errorf("error deleting emergency report: %w", err)
	}
	return nil
}
