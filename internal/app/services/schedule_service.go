package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/pkg/apperrors"
)

// ScheduleStore persists staff lunch schedule entries
type ScheduleStore interface {
	Upsert(ctx context.Context, e *models.StaffScheduleEntry) (int64, error)
	ListForDay(ctx context.Context, month string, day int) ([]*models.StaffScheduleEntry, error)
}

// ScheduleService handles the staff lunch schedule board
type ScheduleService interface {
	Save(ctx context.Context, req *dto.SaveScheduleRequest) (int64, error)
	Today(ctx context.Context) (*dto.TodayScheduleResponse, error)
}

type scheduleServiceImpl struct {
	scheduleRepo ScheduleStore
	now          func() time.Time
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo ScheduleStore) ScheduleService {
	return &scheduleServiceImpl{scheduleRepo: scheduleRepo, now: time.Now}
}

// Save stores one staff member's lunch cover for a day, replacing any
// prior entry for the same staff member and day.
func (s *scheduleServiceImpl) Save(ctx context.Context, req *dto.SaveScheduleRequest) (int64, error) {
	if req.StaffName == "" || req.Month == "" || req.Day == 0 {
		return 0, apperrors.NewValidationError("Staff name, month, and day are required")
	}

	id, err := s.scheduleRepo.Upsert(ctx, &models.StaffScheduleEntry{
		StaffName:   req.StaffName,
		Month:       req.Month,
		Day:         req.Day,
		Lunch1Start: emptyToNil(&req.Lunch1Start),
		Lunch1End:   emptyToNil(&req.Lunch1End),
		Lunch2Start: emptyToNil(&req.Lunch2Start),
		Lunch2End:   emptyToNil(&req.Lunch2End),
		Notes:       req.Notes,
	})
	if err != nil {
		return 0, fmt.Errorf("error saving staff schedule: %w", err)
	}
	return id, nil
}

// Today returns the lunch board for the current calendar day
func (s *scheduleServiceImpl) Today(ctx context.Context) (*dto.TodayScheduleResponse, error) {
	now := s.now()
	month := now.Month().String()
	day := now.Day()

	entries, err := s.scheduleRepo.ListForDay(ctx, month, day)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff schedule: %w", err)
	}

	schedule := make([]*dto.ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		schedule = append(schedule, &dto.ScheduleEntryResponse{
			StaffName:   e.StaffName,
			Lunch1Start: e.Lunch1Start,
			Lunch1End:   e.Lunch1End,
			Lunch2Start: e.Lunch2Start,
			Lunch2End:   e.Lunch2End,
			Notes:       e.Notes,
			LunchTimes:  formatLunchTimes(e),
		})
	}

	return &dto.TodayScheduleResponse{
		Schedule: schedule,
		Date:     fmt.Sprintf("%s %d", month, day),
		Count:    len(schedule),
	}, nil
}

// formatLunchTimes builds the display string for the daily board, for
// example "12:00 PM - 12:30 PM / 03:00 PM - 03:30 PM".
func formatLunchTimes(e *models.StaffScheduleEntry) string {
	first := formatTimeRange(e.Lunch1Start, e.Lunch1End)
	second := formatTimeRange(e.Lunch2Start, e.Lunch2End)
	if first != "" && second != "" {
		return first + " / " + second
	}
	return first + second
}

func formatTimeRange(start, end *string) string {
	if start == nil || end == nil {
		return ""
	}
	return formatClock(*start) + " - " + formatClock(*end)
}

// formatClock renders a stored time as 12 hour clock text. Stored values
// come back as either HH:MM or HH:MM:SS.
func formatClock(value string) string {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return value
}
