package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// Document error types
var (
	ErrDocumentNotFound = errors.New("registration document not found")
)

// DocumentRepository handles proof of registration database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetStatus reports whether the student has an upload and whether its
// latest row is approved. Rows from before the approval columns existed
// read as pending.
func (r *DocumentRepository) GetStatus(ctx context.Context, studentNumber string) (exists bool, approved bool, err error) {
	sqlQuery, args, err := r.sb.Select("id", "COALESCE(approval_status, 'pending')").
		From("por_uploads").
		Where(squirrel.Eq{"student_number": studentNumber}).
		OrderBy("uploaded_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building document status SQL")
		return false, false, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	var status string
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error checking document status")
		return false, false, fmt.Errorf("failed to check document status: %w", err)
	}
	return true, status == models.ApprovalApproved, nil
}

// GetLatest returns the student's most recent upload
func (r *DocumentRepository) GetLatest(ctx context.Context, studentNumber string) (*models.RegistrationDocument, error) {
	sqlQuery, args, err := r.sb.Select(
		"id", "student_number", "file_name", "file_path", "file_size",
		"mimetype", "uploaded_at", "COALESCE(approval_status, 'pending')", "approved_at",
	).
		From("por_uploads").
		Where(squirrel.Eq{"student_number": studentNumber}).
		OrderBy("uploaded_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get latest document SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var doc models.RegistrationDocument
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&doc.ID, &doc.StudentNumber, &doc.FileName, &doc.FilePath, &doc.FileSize,
		&doc.Mimetype, &doc.UploadedAt, &doc.ApprovalStatus, &doc.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error scanning latest document")
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return &doc, nil
}

// GetByID returns a single upload row
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.RegistrationDocument, error) {
	sqlQuery, args, err := r.sb.Select(
		"id", "student_number", "file_name", "file_path", "file_size",
		"mimetype", "uploaded_at", "COALESCE(approval_status, 'pending')", "approved_at",
	).
		From("por_uploads").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get document by ID SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var doc models.RegistrationDocument
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&doc.ID, &doc.StudentNumber, &doc.FileName, &doc.FilePath, &doc.FileSize,
		&doc.Mimetype, &doc.UploadedAt, &doc.ApprovalStatus, &doc.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		logger.Error().Err(err).Int64("documentID", id).Msg("Error scanning document by ID")
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return &doc, nil
}

// Upsert stores a new upload for the student. An existing row is replaced
// in place and its approval status reset to pending, so a fresh upload
// always requires a fresh review.
func (r *DocumentRepository) Upsert(ctx context.Context, doc *models.RegistrationDocument) error {
	updateSql, updateArgs, err := r.sb.Update("por_uploads").
		Set("file_name", doc.FileName).
		Set("file_path", doc.FilePath).
		Set("file_size", doc.FileSize).
		Set("mimetype", doc.Mimetype).
		Set("uploaded_at", squirrel.Expr("NOW()")).
		Set("approval_status", models.ApprovalPending).
		Set("approved_at", nil).
		Where(squirrel.Eq{"student_number": doc.StudentNumber}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building document update SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, updateSql, updateArgs...)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", doc.StudentNumber).Msg("Error replacing document")
		return fmt.Errorf("failed to replace document: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		logger.Info().Str("studentNumber", doc.StudentNumber).Msg("Document replaced, approval reset to pending")
		return nil
	}

	insertSql, insertArgs, err := r.sb.Insert("por_uploads").
		Columns("student_number", "file_name", "file_path", "file_size", "mimetype", "uploaded_at", "approval_status").
		Values(doc.StudentNumber, doc.FileName, doc.FilePath, doc.FileSize, doc.Mimetype, squirrel.Expr("NOW()"), models.ApprovalPending).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building document insert SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, insertSql, insertArgs...); err != nil {
		logger.Error().Err(err).Str("studentNumber", doc.StudentNumber).Msg("Error inserting document")
		return fmt.Errorf("failed to store document: %w", err)
	}

	logger.Info().Str("studentNumber", doc.StudentNumber).Msg("Document stored")
	return nil
}

// Decide records an approval decision against the student's most recent
// upload. ApprovedAt is set for approvals and cleared for rejections.
func (r *DocumentRepository) Decide(ctx context.Context, studentNumber, decision string) error {
	var approvedAt interface{}
	if decision == models.ApprovalApproved {
		approvedAt = time.Now()
	}

	sqlQuery := `
		UPDATE por_uploads
		SET approval_status = $1, approved_at = $3
		WHERE student_number = $2 AND id = (
			SELECT id FROM por_uploads
			WHERE student_number = $2
			ORDER BY uploaded_at DESC
			LIMIT 1
		)`

	cmdTag, err := r.db.Exec(ctx, sqlQuery, decision, studentNumber, approvedAt)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error recording document decision")
		return fmt.Errorf("failed to record decision: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}

	logger.Info().Str("studentNumber", studentNumber).Str("decision", decision).Msg("Document decision recorded")
	return nil
}

// ListByStudent returns every upload for a student, newest first
func (r *DocumentRepository) ListByStudent(ctx context.Context, studentNumber string) ([]*models.RegistrationDocument, error) {
	sqlQuery, args, err := r.sb.Select(
		"id", "student_number", "file_name", "file_path", "file_size",
		"mimetype", "uploaded_at", "COALESCE(approval_status, 'pending')", "approved_at",
	).
		From("por_uploads").
		Where(squirrel.Eq{"student_number": studentNumber}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list documents SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error listing documents")
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]*models.RegistrationDocument, 0)
	for rows.Next() {
		var doc models.RegistrationDocument
		if err := rows.Scan(
			&doc.ID, &doc.StudentNumber, &doc.FileName, &doc.FilePath, &doc.FileSize,
			&doc.Mimetype, &doc.UploadedAt, &doc.ApprovalStatus, &doc.ApprovedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning document row")
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}
