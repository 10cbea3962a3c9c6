package services

import (
	"context"
	"testing"

	"github.com/chwc/clinicops/internal/app/models"
)

func TestEligibilityCheck(t *testing.T) {
	ctx := context.Background()
	onboardingRepo := newMockOnboardingRepo()
	documentRepo := newMockDocumentRepo()
	svc := NewEligibilityService(onboardingRepo, documentRepo)

	t.Run("NewStudentNotEligible", func(t *testing.T) {
		resp, err := svc.Check(ctx, "ST1001")
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if resp.Onboarded || resp.DocumentUploaded || resp.DocumentApproved || resp.Eligible {
			t.Fatalf("expected all checks false for unknown student, got %+v", resp)
		}
	})

	t.Run("OnboardedOnlyNotEligible", func(t *testing.T) {
		onboardingRepo.records["ST1002"] = map[string]interface{}{"studentNumber": "ST1002"}

		resp, err := svc.Check(ctx, "ST1002")
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if !resp.Onboarded {
			t.Fatal("expected onboarded true")
		}
		if resp.Eligible {
			t.Fatal("onboarding alone must not make a student eligible")
		}
	})

	t.Run("PendingDocumentNotEligible", func(t *testing.T) {
		onboardingRepo.records["ST1003"] = map[string]interface{}{"studentNumber": "ST1003"}
		documentRepo.docs["ST1003"] = &models.RegistrationDocument{
			ID:             1,
			StudentNumber:  "ST1003",
			ApprovalStatus: models.ApprovalPending,
		}

		resp, err := svc.Check(ctx, "ST1003")
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if !resp.DocumentUploaded {
			t.Fatal("expected documentUploaded true")
		}
		if resp.DocumentApproved || resp.Eligible {
			t.Fatal("pending document must not make a student eligible")
		}
	})

	t.Run("ApprovedDocumentEligible", func(t *testing.T) {
		onboardingRepo.records["ST1004"] = map[string]interface{}{"studentNumber": "ST1004"}
		documentRepo.docs["ST1004"] = &models.RegistrationDocument{
			ID:             2,
			StudentNumber:  "ST1004",
			ApprovalStatus: models.ApprovalApproved,
		}

		resp, err := svc.Check(ctx, "ST1004")
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if !resp.Eligible {
			t.Fatalf("expected eligible student, got %+v", resp)
		}
	})

	t.Run("RejectedDocumentNotEligible", func(t *testing.T) {
		onboardingRepo.records["ST1005"] = map[string]interface{}{"studentNumber": "ST1005"}
		documentRepo.docs["ST1005"] = &models.RegistrationDocument{
			ID:             3,
			StudentNumber:  "ST1005",
			ApprovalStatus: models.ApprovalRejected,
		}

		resp, err := svc.Check(ctx, "ST1005")
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if resp.Eligible {
			t.Fatal("rejected document must not make a student eligible")
		}
	})

	t.Run("ApprovedWithoutOnboardingStillEligible", func(t *testing.T) {
		documentRepo.docs["ST1006"] = &models.RegistrationDocument{
			ID:             4,
			StudentNumber:  "ST1006",
			ApprovalStatus: models.ApprovalApproved,
		}

		resp, err := svc.Check(ctx, "ST1006")
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if resp.Onboarded {
			t.Fatal("expected onboarded false")
		}
		if !resp.Eligible {
			t.Fatal("booking is gated on document approval alone")
		}
	})
}

func TestEligibilitySingleChecks(t *testing.T) {
	ctx := context.Background()
	onboardingRepo := newMockOnboardingRepo()
	documentRepo := newMockDocumentRepo()
	svc := NewEligibilityService(onboardingRepo, documentRepo)

	onboardingRepo.records["ST2001"] = map[string]interface{}{"studentNumber": "ST2001"}
	documentRepo.docs["ST2001"] = &models.RegistrationDocument{
		ID:             1,
		StudentNumber:  "ST2001",
		ApprovalStatus: models.ApprovalApproved,
	}

	onboarding, err := svc.CheckOnboarding(ctx, "ST2001")
	if err != nil {
		t.Fatalf("CheckOnboarding: %v", err)
	}
	if !onboarding.Exists {
		t.Fatal("expected onboarding record to exist")
	}

	document, err := svc.CheckDocument(ctx, "ST2001")
	if err != nil {
		t.Fatalf("CheckDocument: %v", err)
	}
	if !document.Exists || !document.Approved {
		t.Fatalf("expected uploaded and approved document, got %+v", document)
	}

	missing, err := svc.CheckDocument(ctx, "ST2002")
	if err != nil {
		t.Fatalf("CheckDocument: %v", err)
	}
	if missing.Exists || missing.Approved {
		t.Fatal("expected no document for unknown student")
	}
}
