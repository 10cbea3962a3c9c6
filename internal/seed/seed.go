package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/repositories"
	"github.com/chwc/clinicops/internal/pkg/auth"
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// CreateDefaultData seeds the roles and a default staff account so a fresh
// install has someone who can review documents and manage the schedule.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(dbPool)

	logger.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, roleName := range []string{models.RoleStudent, models.RoleStaff} {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO roles (role_name) VALUES ($1) ON CONFLICT (role_name) DO NOTHING`,
			roleName,
		); err != nil {
			logger.Error().Err(err).Str("role", roleName).Msg("Error seeding role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	staffRole, err := userRepo.GetRoleByName(ctx, models.RoleStaff)
	if err != nil {
		logger.Error().Err(err).Msg("Error resolving staff role")
		return errors.Join(finalErr, err)
	}

	if _, err := userRepo.FindStaffByIdentifier(ctx, "admin"); err == nil {
		return finalErr
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		logger.Error().Err(err).Msg("Error checking for default staff account")
		return errors.Join(finalErr, err)
	}

	logger.Info().Msg("Creating default staff account...")
	hashedPassword, err := auth.HashPassword("Admin123!")
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing default staff password")
		return errors.Join(finalErr, err)
	}

	admin := &models.StaffUser{
		Username:    "admin",
		Email:       "admin@chwc.ac.za",
		Password:    hashedPassword,
		StaffNumber: "STF0001",
		FullName:    "Default Administrator",
		RoleID:      staffRole.ID,
	}
	if _, err := userRepo.CreateStaff(ctx, admin); err != nil && !errors.Is(err, repositories.ErrUserAlreadyExists) {
		logger.Error().Err(err).Msg("Error creating default staff account")
		return errors.Join(finalErr, fmt.Errorf("failed to create default staff account: %w", err))
	}

	return finalErr
}
