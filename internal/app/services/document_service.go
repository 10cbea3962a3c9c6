package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/repositories"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
	"github.com/chwc/clinicops/internal/pkg/filestorage"
)

// DocumentStore persists registration document rows
type DocumentStore interface {
	GetLatest(ctx context.Context, studentNumber string) (*models.RegistrationDocument, error)
	GetByID(ctx context.Context, id int64) (*models.RegistrationDocument, error)
	Upsert(ctx context.Context, doc *models.RegistrationDocument) error
	Decide(ctx context.Context, studentNumber, decision string) error
	ListByStudent(ctx context.Context, studentNumber string) ([]*models.RegistrationDocument, error)
}

// DocumentService handles proof of registration uploads and review
type DocumentService interface {
	Upload(ctx context.Context, studentNumber string, file *multipart.FileHeader) (*models.RegistrationDocument, error)
	GetLatest(ctx context.Context, studentNumber string) (*models.RegistrationDocument, error)
	Decide(ctx context.Context, studentNumber, decision string) error
	ListFiles(ctx context.Context, studentNumber string) (*dto.FileListResponse, error)
	Download(ctx context.Context, id int64) (*models.RegistrationDocument, io.ReadCloser, error)
}

type documentServiceImpl struct {
	documentRepo DocumentStore
	storage      filestorage.FileStorage
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentRepo DocumentStore, storage filestorage.FileStorage) DocumentService {
	return &documentServiceImpl{
		documentRepo: documentRepo,
		storage:      storage,
	}
}

// Upload stores the file and records it against the student. Re-uploads
// replace the previous document and send it back for review.
func (s *documentServiceImpl) Upload(ctx context.Context, studentNumber string, file *multipart.FileHeader) (*models.RegistrationDocument, error) {
	if studentNumber == "" {
		return nil, apperrors.NewValidationError("Student number is required")
	}
	if file == nil {
		return nil, apperrors.NewValidationError("No file uploaded")
	}

	storedPath, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, fmt.Errorf("error storing uploaded file: %w", err)
	}

	doc := &models.RegistrationDocument{
		StudentNumber:  studentNumber,
		FileName:       file.Filename,
		FilePath:       storedPath,
		FileSize:       file.Size,
		Mimetype:       file.Header.Get("Content-Type"),
		ApprovalStatus: models.ApprovalPending,
	}

	if err := s.documentRepo.Upsert(ctx, doc); err != nil {
		_ = s.storage.DeleteFile(storedPath)
		return nil, fmt.Errorf("error recording uploaded document: %w", err)
	}
	return doc, nil
}

// GetLatest returns the student's most recent document
func (s *documentServiceImpl) GetLatest(ctx context.Context, studentNumber string) (*models.RegistrationDocument, error) {
	doc, err := s.documentRepo.GetLatest(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error fetching document: %w", err)
	}
	return doc, nil
}

// Decide records an approval decision against the student's most recent
// upload. Repeating a decision is allowed and leaves the same state.
func (s *documentServiceImpl) Decide(ctx context.Context, studentNumber, decision string) error {
	if decision != models.ApprovalApproved && decision != models.ApprovalRejected {
		return apperrors.ErrInvalidDecision
	}

	if err := s.documentRepo.Decide(ctx, studentNumber, decision); err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("error recording decision: %w", err)
	}
	return nil
}

// ListFiles returns the student's uploads, newest first
func (s *documentServiceImpl) ListFiles(ctx context.Context, studentNumber string) (*dto.FileListResponse, error) {
	docs, err := s.documentRepo.ListByStudent(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}

	files := make([]*dto.FileInfo, 0, len(docs))
	for _, doc := range docs {
		files = append(files, &dto.FileInfo{
			ID:         doc.ID,
			FileName:   doc.FileName,
			FileSize:   doc.FileSize,
			Mimetype:   doc.Mimetype,
			UploadedAt: doc.UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return &dto.FileListResponse{Files: files, Count: len(files)}, nil
}

// Download opens the stored file for a document row
func (s *documentServiceImpl) Download(ctx context.Context, id int64) (*models.RegistrationDocument, io.ReadCloser, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, nil, apperrors.ErrDocumentNotFound
		}
		return nil, nil, fmt.Errorf("error fetching document: %w", err)
	}

	reader, err := s.storage.Open(doc.FilePath)
	if err != nil {
		return nil, nil, apperrors.NewNotFoundError("File not found on server")
	}
	return doc, reader, nil
}
