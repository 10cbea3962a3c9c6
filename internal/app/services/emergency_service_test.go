package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

func TestEmergencyLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMockEmergencyRepo()
	svc := NewEmergencyService(repo)

	report := map[string]interface{}{
		"date":          "2026-02-11",
		"timeOfCall":    "14:05",
		"callerName":    "J Naidoo",
		"department":    "Engineering",
		"problemNature": "collapsed in lecture hall",
		"eastCampus":    true,
		"studentNumber": "ST6001",
	}

	id, err := svc.Create(ctx, report)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero report id")
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Count != 1 {
		t.Fatalf("expected 1 report, got %d", list.Count)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Emergency["callerName"] != "J Naidoo" {
		t.Fatalf("unexpected report contents: %v", got.Emergency)
	}

	report["hospitalName"] = "Charlotte Maxeke"
	if err := svc.Update(ctx, id, report); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, apperrors.ErrEmergencyNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, apperrors.ErrEmergencyNotFound) {
		t.Fatalf("expected not found for second delete, got %v", err)
	}
	if err := svc.Update(ctx, 9999, report); !errors.Is(err, apperrors.ErrEmergencyNotFound) {
		t.Fatalf("expected not found for unknown id, got %v", err)
	}
}
