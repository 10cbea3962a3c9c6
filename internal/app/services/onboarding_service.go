package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/repositories"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

// Intake form keys whose columns are boolean. The form submits these as
// yes/no answers, they are converted before the record is stored.
var onboardingBooleanFields = []string{
	"medicalConditions", "operations", "disability", "medication",
	"congenital", "smoking", "recreation", "psychological",
}

// OnboardingStore persists intake records
type OnboardingStore interface {
	Exists(ctx context.Context, studentNumber string) (bool, error)
	Create(ctx context.Context, record map[string]interface{}) (int64, error)
	GetByStudent(ctx context.Context, studentNumber string) (*models.OnboardingRecord, error)
	ListSummaries(ctx context.Context, from, to string) ([]*models.OnboardingSummary, error)
}

// OnboardingService handles student intake submissions
type OnboardingService interface {
	Create(ctx context.Context, record map[string]interface{}) (int64, error)
	Exists(ctx context.Context, studentNumber string) (bool, error)
	Get(ctx context.Context, studentNumber string) (*models.OnboardingRecord, error)
	ListSummaries(ctx context.Context, from, to string) (*dto.OnboardingDataResponse, error)
}

type onboardingServiceImpl struct {
	onboardingRepo OnboardingStore
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(onboardingRepo OnboardingStore) OnboardingService {
	return &onboardingServiceImpl{onboardingRepo: onboardingRepo}
}

// Create stores a completed intake form. Each student may onboard once,
// a second submission for the same student number is rejected.
func (s *onboardingServiceImpl) Create(ctx context.Context, record map[string]interface{}) (int64, error) {
	studentNumber, ok := record["studentNumber"].(string)
	if !ok || studentNumber == "" {
		return 0, apperrors.NewValidationError("Student number is required")
	}

	exists, err := s.onboardingRepo.Exists(ctx, studentNumber)
	if err != nil {
		return 0, fmt.Errorf("error checking existing onboarding record: %w", err)
	}
	if exists {
		return 0, apperrors.ErrOnboardingExists
	}

	for _, field := range onboardingBooleanFields {
		if v, present := record[field]; present {
			record[field] = toBoolean(v)
		}
	}

	id, err := s.onboardingRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, repositories.ErrOnboardingAlreadyExists) {
			return 0, apperrors.ErrOnboardingExists
		}
		return 0, fmt.Errorf("error creating onboarding record: %w", err)
	}
	return id, nil
}

// Exists reports whether the student has completed onboarding
func (s *onboardingServiceImpl) Exists(ctx context.Context, studentNumber string) (bool, error) {
	if studentNumber == "" {
		return false, apperrors.NewValidationError("Student number is required")
	}
	return s.onboardingRepo.Exists(ctx, studentNumber)
}

// Get returns a student's full intake record for the staff review view
func (s *onboardingServiceImpl) Get(ctx context.Context, studentNumber string) (*models.OnboardingRecord, error) {
	if studentNumber == "" {
		return nil, apperrors.NewValidationError("Student number is required")
	}

	record, err := s.onboardingRepo.GetByStudent(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrOnboardingNotFound) {
			return nil, apperrors.ErrOnboardingNotFound
		}
		return nil, fmt.Errorf("error fetching onboarding record: %w", err)
	}
	return record, nil
}

// ListSummaries returns the intake overview rows for the staff dashboard,
// optionally bounded by completion date.
func (s *onboardingServiceImpl) ListSummaries(ctx context.Context, from, to string) (*dto.OnboardingDataResponse, error) {
	summaries, err := s.onboardingRepo.ListSummaries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing onboarding records: %w", err)
	}

	records := make([]*dto.OnboardingSummaryItem, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, &dto.OnboardingSummaryItem{
			ID:   s.StudentNumber,
			Name: s.Surname + ", " + s.FullNames,
			Role: "Student",
			Date: s.Date,
		})
	}
	return &dto.OnboardingDataResponse{Records: records, Count: len(records)}, nil
}

// toBoolean interprets form answers as booleans. "yes" and "true" in any
// casing are true, any other string is false.
func toBoolean(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(val)
		return lower == "yes" || lower == "true"
	case float64:
		return val != 0
	case nil:
		return false
	default:
		return true
	}
}
