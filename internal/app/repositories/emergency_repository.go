package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/logger"
	"github.com/chwc/clinicops/internal/pkg/recordmap"
)

// Emergency error types
var (
	ErrEmergencyNotFound = errors.New("emergency report not found")
)

// emergencyDictionary maps incident report keys to emergencies columns.
// Reports arrive sparsely, a responder fills in only the sections that
// applied to the callout, so all writes go through this dictionary.
var emergencyDictionary = recordmap.Dictionary{
	{Name: "date", Column: "date"},
	{Name: "timeOfCall", Column: "time_of_call"},
	{Name: "personResponsible", Column: "person_responsible"},
	{Name: "callerName", Column: "caller_name"},
	{Name: "department", Column: "department"},
	{Name: "contactNumber", Column: "contact_number"},
	{Name: "problemNature", Column: "problem_nature"},
	{Name: "eastCampus", Column: "east_campus"},
	{Name: "westCampus", Column: "west_campus"},
	{Name: "educationCampus", Column: "education_campus"},
	{Name: "otherCampus", Column: "other_campus"},
	{Name: "building", Column: "building"},
	{Name: "roomNumber", Column: "room_number"},
	{Name: "floor", Column: "floor"},
	{Name: "otherLocation", Column: "other_location"},
	{Name: "staffInformed", Column: "staff_informed"},
	{Name: "notificationTime", Column: "notification_time"},
	{Name: "teamResponding", Column: "team_responding"},
	{Name: "timeLeftClinic", Column: "time_left_clinic"},
	{Name: "chwcVehicle", Column: "chwc_vehicle"},
	{Name: "sistersOnFoot", Column: "sisters_on_foot"},
	{Name: "otherTransport", Column: "other_transport"},
	{Name: "otherTransportDetail", Column: "other_transport_detail"},
	{Name: "arrivalTime", Column: "arrival_time"},
	{Name: "studentNumber", Column: "student_number"},
	{Name: "patientName", Column: "patient_name"},
	{Name: "patientSurname", Column: "patient_surname"},
	{Name: "primaryAssessment", Column: "primary_assessment"},
	{Name: "intervention", Column: "intervention"},
	{Name: "medicalConsent", Column: "medical_consent"},
	{Name: "transportConsent", Column: "transport_consent"},
	{Name: "signature", Column: "signature"},
	{Name: "consentDate", Column: "consent_date"},
	{Name: "ptCHWCVehicle", Column: "pt_chwc_vehicle"},
	{Name: "ptAmbulance", Column: "pt_ambulance"},
	{Name: "ptOther", Column: "pt_other"},
	{Name: "ptOtherDetail", Column: "pt_other_detail"},
	{Name: "patientTransportedTo", Column: "patient_transported_to"},
	{Name: "departureTime", Column: "departure_time"},
	{Name: "chwcArrivalTime", Column: "chwc_arrival_time"},
	{Name: "existingFile", Column: "existing_file"},
	{Name: "referred", Column: "referred"},
	{Name: "hospitalName", Column: "hospital_name"},
	{Name: "dischargeCondition", Column: "discharge_condition"},
	{Name: "dischargeTime", Column: "discharge_time"},
}

// EmergencyDictionary exposes the incident field dictionary
func EmergencyDictionary() recordmap.Dictionary {
	return emergencyDictionary
}

// EmergencyRepository handles incident report database operations
type EmergencyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmergencyRepository creates a new EmergencyRepository
func NewEmergencyRepository(db *pgxpool.Pool) *EmergencyRepository {
	return &EmergencyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new incident report from a sparse field map
func (r *EmergencyRepository) Create(ctx context.Context, record map[string]interface{}) (int64, error) {
	columns, values, err := emergencyDictionary.Map(record)
	if err != nil {
		return 0, err
	}

	sqlQuery := fmt.Sprintf(
		"INSERT INTO emergencies (%s) VALUES (%s) RETURNING id",
		strings.Join(columns, ", "),
		strings.Join(recordmap.Placeholders(len(columns)), ", "),
	)

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, values...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error creating emergency report")
		return 0, fmt.Errorf("failed to create emergency report: %w", err)
	}

	logger.Info().Int64("emergencyID", id).Msg("Emergency report created")
	return id, nil
}

// List returns summaries of all incident reports, newest first
func (r *EmergencyRepository) List(ctx context.Context) ([]*models.EmergencySummary, error) {
	sqlQuery, args, err := r.sb.Select(
		"id", "date", "time_of_call", "caller_name", "department",
		"patient_name", "patient_surname", "student_number", "created_at",
	).
		From("emergencies").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list emergencies SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing emergency reports")
		return nil, fmt.Errorf("failed to list emergency reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.EmergencySummary, 0)
	for rows.Next() {
		var s models.EmergencySummary
		if err := rows.Scan(
			&s.ID, &s.Date, &s.TimeOfCall, &s.CallerName, &s.Department,
			&s.PatientName, &s.PatientSurname, &s.StudentNumber, &s.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning emergency summary row")
			return nil, fmt.Errorf("failed to scan emergency report: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate emergency reports: %w", err)
	}
	return summaries, nil
}

// GetByID returns one full incident report as a column keyed map, so
// sparse rows round-trip without a fixed struct shape.
func (r *EmergencyRepository) GetByID(ctx context.Context, id int64) (map[string]interface{}, error) {
	sqlQuery, args, err := r.sb.Select("*").
		From("emergencies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get emergency SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("emergencyID", id).Msg("Error fetching emergency report")
		return nil, fmt.Errorf("failed to fetch emergency report: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch emergency report: %w", err)
		}
		return nil, ErrEmergencyNotFound
	}

	values, err := rows.Values()
	if err != nil {
		logger.Error().Err(err).Int64("emergencyID", id).Msg("Error reading emergency row values")
		return nil, fmt.Errorf("failed to read emergency report: %w", err)
	}

	record := make(map[string]interface{}, len(values))
	for i, fd := range rows.FieldDescriptions() {
		record[string(fd.Name)] = values[i]
	}
	return record, nil
}

// Update replaces an incident report in full. Every dictionary column is
// written; fields the new submission omits become NULL.
func (r *EmergencyRepository) Update(ctx context.Context, id int64, record map[string]interface{}) error {
	setMap, err := emergencyDictionary.ReplaceMap(record)
	if err != nil {
		return err
	}

	sqlQuery, args, err := r.sb.Update("emergencies").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update emergency SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("emergencyID", id).Msg("Error updating emergency report")
		return fmt.Errorf("failed to update emergency report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("emergencyID", id).Msg("Attempted to update non-existent emergency report")
		return ErrEmergencyNotFound
	}

	logger.Info().Int64("emergencyID", id).Msg("Emergency report updated")
	return nil
}

// Delete removes an incident report
func (r *EmergencyRepository) Delete(ctx context.Context, id int64) error {
	sqlQuery, args, err := r.sb.Delete("emergencies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete emergency SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("emergencyID", id).Msg("Error deleting emergency report")
		return fmt.Errorf("failed to delete emergency report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrEmergencyNotFound
	}

	logger.Info().Int64("emergencyID", id).Msg("Emergency report deleted")
	return nil
}
