package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

// -- Mock Storage --

type mockStorage struct {
	files   map[string]string
	nextID  int
	deleted []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: make(map[string]string)}
}

func (m *mockStorage) SaveFile(file *multipart.FileHeader) (string, error) {
	m.nextID++
	path := fmt.Sprintf("stored-%d", m.nextID)
	m.files[path] = file.Filename
	return path, nil
}

func (m *mockStorage) Open(path string) (io.ReadCloser, error) {
	name, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return io.NopCloser(strings.NewReader(name)), nil
}

func (m *mockStorage) DeleteFile(path string) error {
	delete(m.files, path)
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStorage) FullPath(path string) string { return "/uploads/" + path }

func uploadHeader(filename string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", "application/pdf")
	return &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   header,
	}
}

func TestDocumentUpload(t *testing.T) {
	ctx := context.Background()
	documentRepo := newMockDocumentRepo()
	storage := newMockStorage()
	svc := NewDocumentService(documentRepo, storage)

	t.Run("MissingFileRejected", func(t *testing.T) {
		if _, err := svc.Upload(ctx, "ST4001", nil); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("expected validation error for missing file, got %v", err)
		}
	})

	t.Run("FirstUploadPending", func(t *testing.T) {
		doc, err := svc.Upload(ctx, "ST4001", uploadHeader("por.pdf", 2048))
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if doc.ApprovalStatus != models.ApprovalPending {
			t.Fatalf("expected pending status, got %q", doc.ApprovalStatus)
		}
		if doc.FileName != "por.pdf" || doc.FileSize != 2048 {
			t.Fatalf("unexpected stored metadata: %+v", doc)
		}
	})

	t.Run("ReuploadResetsApproval", func(t *testing.T) {
		if err := svc.Decide(ctx, "ST4001", models.ApprovalApproved); err != nil {
			t.Fatalf("Decide: %v", err)
		}

		doc, err := svc.Upload(ctx, "ST4001", uploadHeader("por-v2.pdf", 4096))
		if err != nil {
			t.Fatalf("re-upload: %v", err)
		}
		if doc.ApprovalStatus != models.ApprovalPending {
			t.Fatalf("re-upload must reset approval to pending, got %q", doc.ApprovalStatus)
		}

		latest, err := svc.GetLatest(ctx, "ST4001")
		if err != nil {
			t.Fatalf("GetLatest: %v", err)
		}
		if latest.FileName != "por-v2.pdf" {
			t.Fatalf("expected replacement file, got %q", latest.FileName)
		}
		if latest.ApprovedAt != nil {
			t.Fatal("expected approvedAt cleared after re-upload")
		}
	})
}

func TestDocumentDecide(t *testing.T) {
	ctx := context.Background()
	documentRepo := newMockDocumentRepo()
	storage := newMockStorage()
	svc := NewDocumentService(documentRepo, storage)

	if _, err := svc.Upload(ctx, "ST4100", uploadHeader("por.pdf", 1024)); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	t.Run("InvalidDecisionRejected", func(t *testing.T) {
		if err := svc.Decide(ctx, "ST4100", "maybe"); !errors.Is(err, apperrors.ErrInvalidDecision) {
			t.Fatalf("expected invalid decision error, got %v", err)
		}
	})

	t.Run("Approve", func(t *testing.T) {
		if err := svc.Decide(ctx, "ST4100", models.ApprovalApproved); err != nil {
			t.Fatalf("Decide: %v", err)
		}
		doc, err := svc.GetLatest(ctx, "ST4100")
		if err != nil {
			t.Fatalf("GetLatest: %v", err)
		}
		if doc.ApprovalStatus != models.ApprovalApproved || doc.ApprovedAt == nil {
			t.Fatalf("expected approved with timestamp, got %+v", doc)
		}
	})

	t.Run("ApproveAgainIsStable", func(t *testing.T) {
		if err := svc.Decide(ctx, "ST4100", models.ApprovalApproved); err != nil {
			t.Fatalf("second approve: %v", err)
		}
		doc, err := svc.GetLatest(ctx, "ST4100")
		if err != nil {
			t.Fatalf("GetLatest: %v", err)
		}
		if doc.ApprovalStatus != models.ApprovalApproved {
			t.Fatalf("expected approved after repeated decision, got %q", doc.ApprovalStatus)
		}
	})

	t.Run("Reject", func(t *testing.T) {
		if err := svc.Decide(ctx, "ST4100", models.ApprovalRejected); err != nil {
			t.Fatalf("reject: %v", err)
		}
		doc, err := svc.GetLatest(ctx, "ST4100")
		if err != nil {
			t.Fatalf("GetLatest: %v", err)
		}
		if doc.ApprovalStatus != models.ApprovalRejected || doc.ApprovedAt != nil {
			t.Fatalf("expected rejected with no timestamp, got %+v", doc)
		}
	})

	t.Run("NoUploadNotFound", func(t *testing.T) {
		if err := svc.Decide(ctx, "ST4101", models.ApprovalApproved); !errors.Is(err, apperrors.ErrDocumentNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestDocumentDownload(t *testing.T) {
	ctx := context.Background()
	documentRepo := newMockDocumentRepo()
	storage := newMockStorage()
	svc := NewDocumentService(documentRepo, storage)

	uploaded, err := svc.Upload(ctx, "ST4200", uploadHeader("por.pdf", 512))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	doc, reader, err := svc.Download(ctx, uploaded.ID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	defer reader.Close()
	if doc.FileName != "por.pdf" {
		t.Fatalf("unexpected document: %+v", doc)
	}

	if _, _, err := svc.Download(ctx, 9999); !errors.Is(err, apperrors.ErrDocumentNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
