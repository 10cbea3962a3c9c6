package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// Appointment error types
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

var appointmentColumns = []string{
	"id", "reference_number", "student_number", "appointment_type",
	"appointment_for", "appointment_date", "appointment_time",
	"previous_appointment_ref", "status", "created_at", "updated_at",
}

// AppointmentRepository handles appointment database operations
type AppointmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(
		&a.ID, &a.ReferenceNumber, &a.StudentNumber, &a.AppointmentType,
		&a.AppointmentFor, &a.AppointmentDate, &a.AppointmentTime,
		&a.PreviousAppointmentRef, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new appointment and returns its id
func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("appointments").
		Columns(
			"reference_number", "student_number", "appointment_type",
			"appointment_for", "appointment_date", "appointment_time", "previous_appointment_ref",
		).
		Values(
			a.ReferenceNumber, a.StudentNumber, a.AppointmentType,
			a.AppointmentFor, a.AppointmentDate, a.AppointmentTime, a.PreviousAppointmentRef,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create appointment SQL")
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("referenceNumber", a.ReferenceNumber).Msg("Error creating appointment")
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}

	logger.Info().Int64("appointmentID", id).Str("referenceNumber", a.ReferenceNumber).Msg("Appointment created")
	return id, nil
}

func (r *AppointmentRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Appointment, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list appointments SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing appointments")
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]*models.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning appointment row")
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}
	return appointments, nil
}

// ListByStudent returns a student's appointments, most recently booked first
func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentNumber string) ([]*models.Appointment, error) {
	return r.list(ctx, r.sb.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"student_number": studentNumber}).
		OrderBy("created_at DESC"))
}

// ListScheduleByStudent returns a student's appointments in schedule order,
// latest appointment slot first
func (r *AppointmentRepository) ListScheduleByStudent(ctx context.Context, studentNumber string) ([]*models.Appointment, error) {
	return r.list(ctx, r.sb.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"student_number": studentNumber}).
		OrderBy("appointment_date DESC", "appointment_time DESC"))
}

// ListAll returns every appointment in schedule order
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*models.Appointment, error) {
	return r.list(ctx, r.sb.Select(appointmentColumns...).
		From("appointments").
		OrderBy("appointment_date DESC", "appointment_time DESC"))
}

// Update reschedules an appointment
func (r *AppointmentRepository) Update(ctx context.Context, id int64, date, timeSlot, appointmentFor, status string) error {
	sqlQuery, args, err := r.sb.Update("appointments").
		Set("appointment_date", date).
		Set("appointment_time", timeSlot).
		Set("appointment_for", appointmentFor).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update appointment SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("appointmentID", id).Msg("Error updating appointment")
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("appointmentID", id).Msg("Attempted to update non-existent appointment")
		return ErrAppointmentNotFound
	}

	logger.Info().Int64("appointmentID", id).Msg("Appointment updated")
	return nil
}

// Cancel marks an appointment as cancelled. Already cancelled rows still
// count as updated, so cancelling twice is not an error.
func (r *AppointmentRepository) Cancel(ctx context.Context, id int64) error {
	sqlQuery, args, err := r.sb.Update("appointments").
		Set("status", models.AppointmentCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building cancel appointment SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("appointmentID", id).Msg("Error cancelling appointment")
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	logger.Info().Int64("appointmentID", id).Msg("Appointment cancelled")
	return nil
}
