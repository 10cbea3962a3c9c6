package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/repositories"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
	"github.com/chwc/clinicops/internal/pkg/auth"
)

// StudentDirectory persists student accounts
type StudentDirectory interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudentPassword(ctx context.Context, studentNumber, hashedPassword string) error
	GetRoleByName(ctx context.Context, roleName string) (*models.Role, error)
}

// StudentService handles staff-side student account management
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	List(ctx context.Context) (*dto.StudentListResponse, error)
	ResetPassword(ctx context.Context, studentNumber, newPassword string) error
}

type studentServiceImpl struct {
	userRepo StudentDirectory
}

// NewStudentService creates a new StudentService
func NewStudentService(userRepo StudentDirectory) StudentService {
	return &studentServiceImpl{userRepo: userRepo}
}

// Create registers a student account with a hashed password and the
// STUDENT role.
func (s *studentServiceImpl) Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	role, err := s.userRepo.GetRoleByName(ctx, models.RoleStudent)
	if err != nil {
		return 0, fmt.Errorf("error resolving student role: %w", err)
	}

	id, err := s.userRepo.CreateStudent(ctx, &models.Student{
		Username:      req.Username,
		Email:         req.Email,
		Password:      hashed,
		StudentNumber: req.StudentNumber,
		FullName:      req.FullName,
		RoleID:        role.ID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating student account: %w", err)
	}
	return id, nil
}

// List returns every student account for the staff view
func (s *studentServiceImpl) List(ctx context.Context) (*dto.StudentListResponse, error) {
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return &dto.StudentListResponse{Students: students, Count: len(students)}, nil
}

// ResetPassword replaces a student's password by student number
func (s *studentServiceImpl) ResetPassword(ctx context.Context, studentNumber, newPassword string) error {
	if studentNumber == "" || newPassword == "" {
		return apperrors.NewValidationError("Student number and new password are required")
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdateStudentPassword(ctx, studentNumber, hashed); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error resetting password: %w", err)
	}
	return nil
}
