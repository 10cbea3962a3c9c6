package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

// Walks a new student through the whole intake to booking sequence.
func TestBookingFlow(t *testing.T) {
	ctx := context.Background()
	onboardingRepo := newMockOnboardingRepo()
	documentRepo := newMockDocumentRepo()
	appointmentRepo := newMockAppointmentRepo()
	storage := newMockStorage()

	eligibilitySvc := NewEligibilityService(onboardingRepo, documentRepo)
	onboardingSvc := NewOnboardingService(onboardingRepo)
	documentSvc := NewDocumentService(documentRepo, storage)
	appointmentSvc := NewAppointmentService(appointmentRepo, eligibilitySvc)

	const student = "ST9001"

	onboarded, err := eligibilitySvc.CheckOnboarding(ctx, student)
	if err != nil {
		t.Fatalf("CheckOnboarding: %v", err)
	}
	if onboarded.Exists {
		t.Fatal("expected no onboarding record before intake")
	}

	if _, err := onboardingSvc.Create(ctx, map[string]interface{}{
		"studentNumber": student,
		"surname":       "Dlamini",
		"fullNames":     "Sipho",
		"smoking":       "no",
	}); err != nil {
		t.Fatalf("onboarding Create: %v", err)
	}

	onboarded, err = eligibilitySvc.CheckOnboarding(ctx, student)
	if err != nil {
		t.Fatalf("CheckOnboarding: %v", err)
	}
	if !onboarded.Exists {
		t.Fatal("expected onboarding record after intake")
	}

	if _, err := appointmentSvc.Create(ctx, &dto.CreateAppointmentRequest{
		ReferenceNumber: "R0",
		StudentNumber:   student,
		AppointmentType: "followup",
		AppointmentFor:  "checkup",
		AppointmentTime: "10:00",
	}); !errors.Is(err, apperrors.ErrStudentNotEligible) {
		t.Fatalf("expected booking blocked before approval, got %v", err)
	}

	if _, err := documentSvc.Upload(ctx, student, uploadHeader("por.pdf", 2048)); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	status, err := eligibilitySvc.CheckDocument(ctx, student)
	if err != nil {
		t.Fatalf("CheckDocument: %v", err)
	}
	if !status.Exists || status.Approved {
		t.Fatalf("expected uploaded but unapproved document, got %+v", status)
	}

	if err := documentSvc.Decide(ctx, student, "approved"); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	status, err = eligibilitySvc.CheckDocument(ctx, student)
	if err != nil {
		t.Fatalf("CheckDocument: %v", err)
	}
	if !status.Exists || !status.Approved {
		t.Fatalf("expected approved document, got %+v", status)
	}

	id, err := appointmentSvc.Create(ctx, &dto.CreateAppointmentRequest{
		ReferenceNumber: "R1",
		StudentNumber:   student,
		AppointmentType: "followup",
		AppointmentFor:  "checkup",
		AppointmentTime: "10:00",
	})
	if err != nil {
		t.Fatalf("appointment Create after approval: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero appointment id")
	}
}
