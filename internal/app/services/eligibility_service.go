package services

import (
	"context"
	"fmt"

	"github.com/chwc/clinicops/internal/app/models/dto"
)

// OnboardingChecker reports intake form completion
type OnboardingChecker interface {
	Exists(ctx context.Context, studentNumber string) (bool, error)
}

// DocumentStatusChecker reports registration document state
type DocumentStatusChecker interface {
	GetStatus(ctx context.Context, studentNumber string) (exists bool, approved bool, err error)
}

// EligibilityService evaluates the booking gate for students
type EligibilityService interface {
	Check(ctx context.Context, studentNumber string) (*dto.EligibilityResponse, error)
	CheckOnboarding(ctx context.Context, studentNumber string) (*dto.ExistsResponse, error)
	CheckDocument(ctx context.Context, studentNumber string) (*dto.DocumentStatusResponse, error)
}

type eligibilityServiceImpl struct {
	onboardingRepo OnboardingChecker
	documentRepo   DocumentStatusChecker
}

// NewEligibilityService creates a new EligibilityService
func NewEligibilityService(onboardingRepo OnboardingChecker, documentRepo DocumentStatusChecker) EligibilityService {
	return &eligibilityServiceImpl{
		onboardingRepo: onboardingRepo,
		documentRepo:   documentRepo,
	}
}

// Check reports onboarding and document state for a student. Booking is
// gated on document approval; the onboarded and uploaded flags are
// informational for client messaging.
func (s *eligibilityServiceImpl) Check(ctx context.Context, studentNumber string) (*dto.EligibilityResponse, error) {
	onboarded, err := s.onboardingRepo.Exists(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking onboarding status: %w", err)
	}

	uploaded, approved, err := s.documentRepo.GetStatus(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking document status: %w", err)
	}

	return &dto.EligibilityResponse{
		StudentNumber:    studentNumber,
		Onboarded:        onboarded,
		DocumentUploaded: uploaded,
		DocumentApproved: approved,
		Eligible:         approved,
	}, nil
}

// CheckOnboarding answers the single onboarding presence check
func (s *eligibilityServiceImpl) CheckOnboarding(ctx context.Context, studentNumber string) (*dto.ExistsResponse, error) {
	exists, err := s.onboardingRepo.Exists(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking onboarding status: %w", err)
	}
	return &dto.ExistsResponse{Exists: exists}, nil
}

// CheckDocument answers the document presence and approval check
func (s *eligibilityServiceImpl) CheckDocument(ctx context.Context, studentNumber string) (*dto.DocumentStatusResponse, error) {
	exists, approved, err := s.documentRepo.GetStatus(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking document status: %w", err)
	}
	return &dto.DocumentStatusResponse{Exists: exists, Approved: approved}, nil
}
