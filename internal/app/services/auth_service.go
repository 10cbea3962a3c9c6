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
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// UserFinder looks up accounts for authentication
type UserFinder interface {
	FindStaffByIdentifier(ctx context.Context, identifier string) (*models.StaffUser, error)
	FindStudentByIdentifier(ctx context.Context, identifier string) (*models.Student, error)
}

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	userRepo    UserFinder
	eligibility EligibilityService
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserFinder, eligibility EligibilityService, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		eligibility: eligibility,
		jwtService:  jwtService,
	}
}

// Login authenticates a staff member or student. Student responses carry
// the eligibility flags so the client can route the student straight to
// the step they are missing.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	switch req.UserType {
	case dto.UserTypeStaff:
		return s.loginStaff(ctx, req)
	case dto.UserTypeStudent:
		return s.loginStudent(ctx, req)
	default:
		return nil, apperrors.NewValidationError("Invalid user type")
	}
}

func (s *authServiceImpl) loginStaff(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindStaffByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding staff account: %w", err)
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		logger.Warn().Str("identifier", req.Identifier).Msg("Staff login rejected, password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, refreshToken, err := s.issueTokens(user.ID, models.RoleStaff)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:      "Login successful",
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
		UserType:     dto.UserTypeStaff,
	}, nil
}

func (s *authServiceImpl) loginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.userRepo.FindStudentByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding student account: %w", err)
	}

	if !auth.CheckPassword(req.Password, student.Password) {
		logger.Warn().Str("identifier", req.Identifier).Msg("Student login rejected, password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, refreshToken, err := s.issueTokens(student.ID, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	gate, err := s.eligibility.Check(ctx, student.StudentNumber)
	if err != nil {
		return nil, fmt.Errorf("error evaluating eligibility at login: %w", err)
	}

	return &dto.LoginResponse{
		Message:             "Login successful",
		Token:               token,
		RefreshToken:        refreshToken,
		User:                student,
		UserType:            dto.UserTypeStudent,
		OnboardingCompleted: &gate.Onboarded,
		DocumentUploaded:    &gate.DocumentUploaded,
		DocumentApproved:    &gate.DocumentApproved,
	}, nil
}

func (s *authServiceImpl) issueTokens(userID int64, roleType string) (string, string, error) {
	token, err := s.jwtService.GenerateAccessToken(userID, roleType)
	if err != nil {
		return "", "", fmt.Errorf("error generating access token: %w", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(userID, roleType)
	if err != nil {
		return "", "", fmt.Errorf("error generating refresh token: %w", err)
	}
	return token, refreshToken, nil
}
