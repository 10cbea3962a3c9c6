package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

func intakeForm(studentNumber string) map[string]interface{} {
	return map[string]interface{}{
		"studentNumber":     studentNumber,
		"surname":           "Dlamini",
		"fullNames":         "Thabo Dlamini",
		"dateOfBirth":       "2004-06-15",
		"gender":            "male",
		"physicalAddress":   "12 Campus Rd",
		"postalAddress":     "PO Box 100",
		"code":              "2000",
		"email":             "thabo@example.ac.za",
		"cell":              "0821234567",
		"emergencyName":     "N Dlamini",
		"emergencyRelation": "mother",
		"emergencyCell":     "0837654321",
		"medicalConditions": "no",
		"operations":        "no",
		"disability":        "no",
		"medication":        "yes",
		"medicationDetails": "asthma pump",
		"congenital":        "no",
		"smoking":           "no",
		"recreation":        "no",
		"psychological":     "no",
		"date":              "2026-02-10",
	}
}

func TestOnboardingCreate(t *testing.T) {
	ctx := context.Background()
	repo := newMockOnboardingRepo()
	svc := NewOnboardingService(repo)

	t.Run("MissingStudentNumberRejected", func(t *testing.T) {
		record := intakeForm("")
		delete(record, "studentNumber")
		if _, err := svc.Create(ctx, record); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("FirstSubmissionStored", func(t *testing.T) {
		id, err := svc.Create(ctx, intakeForm("ST5001"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id == 0 {
			t.Fatal("expected non-zero record id")
		}
	})

	t.Run("YesNoAnswersConverted", func(t *testing.T) {
		stored := repo.records["ST5001"]
		if stored == nil {
			t.Fatal("record not stored")
		}
		if v, ok := stored["medication"].(bool); !ok || !v {
			t.Fatalf("expected medication converted to true, got %v", stored["medication"])
		}
		if v, ok := stored["smoking"].(bool); !ok || v {
			t.Fatalf("expected smoking converted to false, got %v", stored["smoking"])
		}
		// Free text answers stay untouched
		if stored["medicationDetails"] != "asthma pump" {
			t.Fatalf("expected details preserved, got %v", stored["medicationDetails"])
		}
	})

	t.Run("DuplicateSubmissionRejected", func(t *testing.T) {
		if _, err := svc.Create(ctx, intakeForm("ST5001")); !errors.Is(err, apperrors.ErrOnboardingExists) {
			t.Fatalf("expected duplicate onboarding error, got %v", err)
		}
	})
}

func TestOnboardingExists(t *testing.T) {
	ctx := context.Background()
	repo := newMockOnboardingRepo()
	svc := NewOnboardingService(repo)

	if _, err := svc.Exists(ctx, ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for empty student number, got %v", err)
	}

	exists, err := svc.Exists(ctx, "ST5100")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("expected no record for new student")
	}

	if _, err := svc.Create(ctx, intakeForm("ST5100")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = svc.Exists(ctx, "ST5100")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("expected record after onboarding")
	}
}

func TestOnboardingGet(t *testing.T) {
	ctx := context.Background()
	repo := newMockOnboardingRepo()
	svc := NewOnboardingService(repo)

	t.Run("MissingStudentNumberRejected", func(t *testing.T) {
		if _, err := svc.Get(ctx, ""); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("UnknownStudentNotFound", func(t *testing.T) {
		if _, err := svc.Get(ctx, "ST5200"); !errors.Is(err, apperrors.ErrOnboardingNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("StoredRecordReturned", func(t *testing.T) {
		if _, err := svc.Create(ctx, intakeForm("ST5200")); err != nil {
			t.Fatalf("Create: %v", err)
		}

		record, err := svc.Get(ctx, "ST5200")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if record.StudentNumber != "ST5200" || record.Surname != "Dlamini" {
			t.Fatalf("unexpected record %+v", record)
		}
	})
}

func TestOnboardingListSummaries(t *testing.T) {
	ctx := context.Background()
	repo := newMockOnboardingRepo()
	svc := NewOnboardingService(repo)

	early := intakeForm("ST5301")
	early["date"] = "2026-01-05"
	late := intakeForm("ST5302")
	late["date"] = "2026-03-20"
	for _, form := range []map[string]interface{}{early, late} {
		if _, err := svc.Create(ctx, form); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	t.Run("AllRecordsListed", func(t *testing.T) {
		resp, err := svc.ListSummaries(ctx, "", "")
		if err != nil {
			t.Fatalf("ListSummaries: %v", err)
		}
		if resp.Count != 2 {
			t.Fatalf("expected 2 rows, got %+v", resp)
		}
		for _, row := range resp.Records {
			if row.Role != "Student" {
				t.Fatalf("expected Student role label, got %s", row.Role)
			}
			if row.Name != "Dlamini, Thabo Dlamini" {
				t.Fatalf("unexpected name %q", row.Name)
			}
		}
	})

	t.Run("DateBoundsApplied", func(t *testing.T) {
		resp, err := svc.ListSummaries(ctx, "2026-02-01", "")
		if err != nil {
			t.Fatalf("ListSummaries: %v", err)
		}
		if resp.Count != 1 || resp.Records[0].ID != "ST5302" {
			t.Fatalf("expected only the later record, got %+v", resp)
		}
	})
}
