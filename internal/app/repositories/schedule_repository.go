package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// ScheduleRepository handles staff lunch schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert saves one staff member's lunch cover for a day. The table holds
// one row per (staff_name, month, day); saving again replaces the times.
func (r *ScheduleRepository) Upsert(ctx context.Context, e *models.StaffScheduleEntry) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("staff_lunch_schedule").
		Columns("staff_name", "month", "day",
			"lunch1_start", "lunch1_end", "lunch2_start", "lunch2_end", "notes").
		Values(e.StaffName, e.Month, e.Day,
			e.Lunch1Start, e.Lunch1End, e.Lunch2Start, e.Lunch2End, e.Notes).
		Suffix(`ON CONFLICT (staff_name, month, day) DO UPDATE SET
			lunch1_start = EXCLUDED.lunch1_start,
			lunch1_end = EXCLUDED.lunch1_end,
			lunch2_start = EXCLUDED.lunch2_start,
			lunch2_end = EXCLUDED.lunch2_end,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save schedule SQL")
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("staffName", e.StaffName).Msg("Error saving staff schedule")
		return 0, fmt.Errorf("failed to save staff schedule: %w", err)
	}

	logger.Info().Int64("entryID", id).Str("staffName", e.StaffName).Msg("Staff schedule saved")
	return id, nil
}

// ListForDay returns the lunch cover entries for one calendar day,
// ordered by staff name.
func (r *ScheduleRepository) ListForDay(ctx context.Context, month string, day int) ([]*models.StaffScheduleEntry, error) {
	sqlQuery, args, err := r.sb.Select(
		"id", "staff_name", "month", "day",
		"lunch1_start", "lunch1_end", "lunch2_start", "lunch2_end",
		"COALESCE(notes, '')", "created_at", "updated_at",
	).
		From("staff_lunch_schedule").
		Where(squirrel.Eq{"month": month, "day": day}).
		OrderBy("staff_name").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building day schedule SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("month", month).Int("day", day).Msg("Error fetching day schedule")
		return nil, fmt.Errorf("failed to fetch staff schedule: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.StaffScheduleEntry, 0)
	for rows.Next() {
		var e models.StaffScheduleEntry
		if err := rows.Scan(
			&e.ID, &e.StaffName, &e.Month, &e.Day,
			&e.Lunch1Start, &e.Lunch1End, &e.Lunch2Start, &e.Lunch2End,
			&e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning schedule row")
			return nil, fmt.Errorf("failed to scan staff schedule: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff schedule: %w", err)
	}
	return entries, nil
}
