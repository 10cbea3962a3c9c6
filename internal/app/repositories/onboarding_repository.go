package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/dberrors"
	"github.com/chwc/clinicops/internal/pkg/logger"
	"github.com/chwc/clinicops/internal/pkg/recordmap"
)

// Onboarding error types
var (
	ErrOnboardingAlreadyExists = errors.New("onboarding record already exists")
	ErrOnboardingNotFound      = errors.New("onboarding record not found")
)

// onboardingDictionary maps intake form keys to onboarding_students columns.
// Order here is the column order of every generated insert.
var onboardingDictionary = recordmap.Dictionary{
	{Name: "studentNumber", Column: "student_number"},
	{Name: "surname", Column: "surname"},
	{Name: "fullNames", Column: "full_names"},
	{Name: "dateOfBirth", Column: "date_of_birth"},
	{Name: "gender", Column: "gender"},
	{Name: "otherGender", Column: "other_gender"},
	{Name: "physicalAddress", Column: "physical_address"},
	{Name: "postalAddress", Column: "postal_address"},
	{Name: "code", Column: "code"},
	{Name: "email", Column: "email"},
	{Name: "cell", Column: "cell"},
	{Name: "altNumber", Column: "alt_number"},
	{Name: "emergencyName", Column: "emergency_name"},
	{Name: "emergencyRelation", Column: "emergency_relation"},
	{Name: "emergencyWorkTel", Column: "emergency_work_tel"},
	{Name: "emergencyCell", Column: "emergency_cell"},
	{Name: "medicalConditions", Column: "medical_conditions"},
	{Name: "operations", Column: "operations"},
	{Name: "conditionsDetails", Column: "conditions_details"},
	{Name: "disability", Column: "disability"},
	{Name: "disabilityDetails", Column: "disability_details"},
	{Name: "medication", Column: "medication"},
	{Name: "medicationDetails", Column: "medication_details"},
	{Name: "otherConditions", Column: "other_conditions"},
	{Name: "congenital", Column: "congenital"},
	{Name: "familyOther", Column: "family_other"},
	{Name: "smoking", Column: "smoking"},
	{Name: "recreation", Column: "recreation"},
	{Name: "psychological", Column: "psychological"},
	{Name: "psychologicalDetails", Column: "psychological_details"},
	{Name: "date", Column: "date"},
	{Name: "signatureData", Column: "signature_data"},
}

// OnboardingDictionary exposes the intake field dictionary for validation
func OnboardingDictionary() recordmap.Dictionary {
	return onboardingDictionary
}

// OnboardingRepository handles intake form database operations
type OnboardingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOnboardingRepository creates a new OnboardingRepository
func NewOnboardingRepository(db *pgxpool.Pool) *OnboardingRepository {
	return &OnboardingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Exists reports whether a student has completed the intake form
func (r *OnboardingRepository) Exists(ctx context.Context, studentNumber string) (bool, error) {
	sqlQuery, args, err := r.sb.Select("id").
		From("onboarding_students").
		Where(squirrel.Eq{"student_number": studentNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building onboarding exists SQL")
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error checking onboarding record")
		return false, fmt.Errorf("failed to check onboarding record: %w", err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to check onboarding record: %w", err)
	}
	return exists, nil
}

// Create inserts a new intake record from a sparse field map. Only keys
// present in the dictionary participate in the insert.
func (r *OnboardingRepository) Create(ctx context.Context, record map[string]interface{}) (int64, error) {
	columns, values, err := onboardingDictionary.Map(record)
	if err != nil {
		return 0, err
	}

	sqlQuery := fmt.Sprintf(
		"INSERT INTO onboarding_students (%s) VALUES (%s) RETURNING id",
		strings.Join(columns, ", "),
		strings.Join(recordmap.Placeholders(len(columns)), ", "),
	)

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, values...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrOnboardingAlreadyExists
		}
		logger.Error().Err(err).Msg("Error creating onboarding record")
		return 0, fmt.Errorf("failed to create onboarding record: %w", err)
	}

	logger.Info().Int64("recordID", id).Msg("Onboarding record created")
	return id, nil
}

// GetByStudent returns a student's full intake record. Sparse submissions
// leave text columns NULL, so those are read back as empty strings or nil
// pointers depending on the field.
func (r *OnboardingRepository) GetByStudent(ctx context.Context, studentNumber string) (*models.OnboardingRecord, error) {
	sqlQuery, args, err := r.sb.Select(
		"id", "student_number",
		"COALESCE(surname, '')", "COALESCE(full_names, '')",
		"COALESCE(date_of_birth, '')", "COALESCE(gender, '')", "other_gender",
		"COALESCE(physical_address, '')", "COALESCE(postal_address, '')",
		"COALESCE(code, '')", "COALESCE(email, '')", "COALESCE(cell, '')",
		"alt_number", "COALESCE(emergency_name, '')",
		"COALESCE(emergency_relation, '')", "emergency_work_tel",
		"COALESCE(emergency_cell, '')",
		"COALESCE(medical_conditions, FALSE)", "COALESCE(operations, FALSE)",
		"conditions_details", "COALESCE(disability, FALSE)", "disability_details",
		"COALESCE(medication, FALSE)", "medication_details", "other_conditions",
		"COALESCE(congenital, FALSE)", "family_other",
		"COALESCE(smoking, FALSE)", "COALESCE(recreation, FALSE)",
		"COALESCE(psychological, FALSE)", "psychological_details",
		"COALESCE(date, '')", "signature_data", "created_at",
	).
		From("onboarding_students").
		Where(squirrel.Eq{"student_number": studentNumber}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get onboarding SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rec models.OnboardingRecord
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&rec.ID, &rec.StudentNumber,
		&rec.Surname, &rec.FullNames,
		&rec.DateOfBirth, &rec.Gender, &rec.OtherGender,
		&rec.PhysicalAddress, &rec.PostalAddress,
		&rec.Code, &rec.Email, &rec.Cell,
		&rec.AltNumber, &rec.EmergencyName,
		&rec.EmergencyRelation, &rec.EmergencyWorkTel,
		&rec.EmergencyCell,
		&rec.MedicalConditions, &rec.Operations,
		&rec.ConditionsDetails, &rec.Disability, &rec.DisabilityDetails,
		&rec.Medication, &rec.MedicationDetails, &rec.OtherConditions,
		&rec.Congenital, &rec.FamilyOther,
		&rec.Smoking, &rec.Recreation,
		&rec.Psychological, &rec.PsychologicalDetails,
		&rec.Date, &rec.SignatureData, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOnboardingNotFound
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error fetching onboarding record")
		return nil, fmt.Errorf("failed to fetch onboarding record: %w", err)
	}
	return &rec, nil
}

// ListSummaries returns intake overview rows, newest first. The optional
// from and to bounds filter on the form's completion date (inclusive).
func (r *OnboardingRepository) ListSummaries(ctx context.Context, from, to string) ([]*models.OnboardingSummary, error) {
	builder := r.sb.Select(
		"student_number", "COALESCE(surname, '')",
		"COALESCE(full_names, '')", "COALESCE(date, '')",
	).
		From("onboarding_students")

	if from != "" {
		builder = builder.Where(squirrel.GtOrEq{"date": from})
	}
	if to != "" {
		builder = builder.Where(squirrel.LtOrEq{"date": to})
	}

	sqlQuery, args, err := builder.OrderBy("date DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building onboarding summaries SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing onboarding summaries")
		return nil, fmt.Errorf("failed to list onboarding records: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.OnboardingSummary, 0)
	for rows.Next() {
		var s models.OnboardingSummary
		if err := rows.Scan(&s.StudentNumber, &s.Surname, &s.FullNames, &s.Date); err != nil {
			logger.Error().Err(err).Msg("Error scanning onboarding summary row")
			return nil, fmt.Errorf("failed to scan onboarding record: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate onboarding records: %w", err)
	}
	return summaries, nil
}
