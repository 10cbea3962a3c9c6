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

// AppointmentStore persists appointments
type AppointmentStore interface {
	Create(ctx context.Context, a *models.Appointment) (int64, error)
	ListByStudent(ctx context.Context, studentNumber string) ([]*models.Appointment, error)
	ListScheduleByStudent(ctx context.Context, studentNumber string) ([]*models.Appointment, error)
	ListAll(ctx context.Context) ([]*models.Appointment, error)
	Update(ctx context.Context, id int64, date, timeSlot, appointmentFor, status string) error
	Cancel(ctx context.Context, id int64) error
}

// AppointmentService handles booking lifecycle operations
type AppointmentService interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (int64, error)
	ListByStudent(ctx context.Context, studentNumber string) (*dto.AppointmentListResponse, error)
	ListScheduleByStudent(ctx context.Context, studentNumber string) (*dto.AppointmentListResponse, error)
	ListAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) error
	Cancel(ctx context.Context, id int64) error
}

type appointmentServiceImpl struct {
	appointmentRepo AppointmentStore
	eligibility     EligibilityService
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(appointmentRepo AppointmentStore, eligibility EligibilityService) AppointmentService {
	return &appointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		eligibility:     eligibility,
	}
}

// Create books a new appointment. The booking gate applies here, a
// student who is not onboarded with an approved document cannot book.
// The date is optional, walk-in bookings carry a time slot only.
func (s *appointmentServiceImpl) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (int64, error) {
	var missing []string
	if req.ReferenceNumber == "" {
		missing = append(missing, "referenceNumber")
	}
	if req.StudentNumber == "" {
		missing = append(missing, "studentNumber")
	}
	if req.AppointmentType == "" {
		missing = append(missing, "appointmentType")
	}
	if req.AppointmentFor == "" {
		missing = append(missing, "appointmentFor")
	}
	if req.AppointmentTime == "" {
		missing = append(missing, "appointmentTime")
	}
	if len(missing) > 0 {
		return 0, apperrors.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	gate, err := s.eligibility.Check(ctx, req.StudentNumber)
	if err != nil {
		return 0, fmt.Errorf("error evaluating booking eligibility: %w", err)
	}
	if !gate.Eligible {
		return 0, apperrors.ErrStudentNotEligible
	}

	appointment := &models.Appointment{
		ReferenceNumber:        req.ReferenceNumber,
		StudentNumber:          req.StudentNumber,
		AppointmentType:        req.AppointmentType,
		AppointmentFor:         req.AppointmentFor,
		AppointmentDate:        emptyToNil(req.AppointmentDate),
		AppointmentTime:        req.AppointmentTime,
		PreviousAppointmentRef: emptyToNil(req.PreviousAppointmentRef),
	}

	id, err := s.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		return 0, fmt.Errorf("error creating appointment: %w", err)
	}
	return id, nil
}

// ListByStudent returns the student's bookings, most recently made first
func (s *appointmentServiceImpl) ListByStudent(ctx context.Context, studentNumber string) (*dto.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.ListByStudent(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	return &dto.AppointmentListResponse{Appointments: appointments, Count: len(appointments)}, nil
}

// ListScheduleByStudent returns the student's bookings in schedule order
func (s *appointmentServiceImpl) ListScheduleByStudent(ctx context.Context, studentNumber string) (*dto.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.ListScheduleByStudent(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	return &dto.AppointmentListResponse{Appointments: appointments, Count: len(appointments)}, nil
}

// ListAll returns every booking in schedule order, for the staff view
func (s *appointmentServiceImpl) ListAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	return &dto.AppointmentListResponse{Appointments: appointments, Count: len(appointments)}, nil
}

// Update reschedules a booking. All of date, time and reason are required
// here, and a missing status falls back to scheduled. Cancelled bookings
// may still be updated, rescheduling one revives it.
func (s *appointmentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) error {
	if req.AppointmentDate == "" || req.AppointmentTime == "" || req.AppointmentFor == "" {
		return apperrors.NewValidationError("appointmentDate, appointmentTime, and appointmentFor are required")
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentScheduled
	}

	if err := s.appointmentRepo.Update(ctx, id, req.AppointmentDate, req.AppointmentTime, req.AppointmentFor, status); err != nil {
		if errors.Is(err, repositories.ErrAppointmentNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return fmt.Errorf("error updating appointment: %w", err)
	}
	return nil
}

// Cancel marks a booking cancelled. Cancelling twice succeeds and leaves
// the booking cancelled.
func (s *appointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAppointmentNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return fmt.Errorf("error cancelling appointment: %w", err)
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
