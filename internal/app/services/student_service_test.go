package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
	"github.com/chwc/clinicops/internal/pkg/auth"
)

func TestStudentCreate(t *testing.T) {
	ctx := context.Background()
	userRepo := newMockUserRepo()
	svc := NewStudentService(userRepo)

	req := &dto.CreateStudentRequest{
		Username:      "sipho.d",
		Email:         "sipho@example.ac.za",
		Password:      "Secret123!",
		StudentNumber: "ST5001",
		FullName:      "Sipho Dlamini",
	}

	t.Run("PasswordStoredHashed", func(t *testing.T) {
		id, err := svc.Create(ctx, req)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id == 0 {
			t.Fatal("expected a non-zero student id")
		}

		stored := userRepo.students["ST5001"]
		if stored.Password == req.Password {
			t.Fatal("password must not be stored in plain text")
		}
		if !auth.CheckPassword(req.Password, stored.Password) {
			t.Fatal("stored hash does not verify against the plain password")
		}
		if stored.RoleID != userRepo.roles["STUDENT"].ID {
			t.Fatalf("expected student role, got role id %d", stored.RoleID)
		}
	})

	t.Run("DuplicateStudentNumberRejected", func(t *testing.T) {
		_, err := svc.Create(ctx, req)
		if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			t.Fatalf("expected already-exists error, got %v", err)
		}
	})
}

func TestStudentResetPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := newMockUserRepo()
	svc := NewStudentService(userRepo)

	if _, err := svc.Create(ctx, &dto.CreateStudentRequest{
		Username:      "lerato.m",
		Email:         "lerato@example.ac.za",
		Password:      "OldPass1!",
		StudentNumber: "ST5002",
		FullName:      "Lerato Mokoena",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		if err := svc.ResetPassword(ctx, "ST5002", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("UnknownStudentNotFound", func(t *testing.T) {
		if err := svc.ResetPassword(ctx, "ST5999", "NewPass1!"); !errors.Is(err, apperrors.ErrStudentNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("PasswordReplaced", func(t *testing.T) {
		if err := svc.ResetPassword(ctx, "ST5002", "NewPass1!"); err != nil {
			t.Fatalf("ResetPassword: %v", err)
		}
		stored := userRepo.students["ST5002"]
		if !auth.CheckPassword("NewPass1!", stored.Password) {
			t.Fatal("new password does not verify")
		}
		if auth.CheckPassword("OldPass1!", stored.Password) {
			t.Fatal("old password must no longer verify")
		}
	})
}

func TestStudentList(t *testing.T) {
	ctx := context.Background()
	userRepo := newMockUserRepo()
	svc := NewStudentService(userRepo)

	for _, sn := range []string{"ST5003", "ST5004"} {
		if _, err := svc.Create(ctx, &dto.CreateStudentRequest{
			Username:      sn,
			Email:         sn + "@example.ac.za",
			Password:      "Secret123!",
			StudentNumber: sn,
			FullName:      "Student " + sn,
		}); err != nil {
			t.Fatalf("Create %s: %v", sn, err)
		}
	}

	resp, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Count != 2 || len(resp.Students) != 2 {
		t.Fatalf("expected 2 students, got %+v", resp)
	}
	for _, s := range resp.Students {
		if s.Password == "" {
			t.Fatal("expected stored hash to be present on the model")
		}
	}
}
