package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
)

// cronParser accepts standard 5-field expressions (minute hour dom month dow)
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// reminderMessages are the texts sent when a reminder fires
var reminderMessages = map[string]string{
	constants.ReminderWater: "💧 Время выпить стакан воды!",
	constants.ReminderMeal:  "🍽 Не забудьте записать приём пищи в дневник!",
	constants.ReminderWeigh: "⚖️ Пора взвеситься и записать результат!",
}

// ReminderService manages user notification schedules
type ReminderService struct {
	reminders *persistence.ReminderRepository
}

func NewReminderService(reminders *persistence.ReminderRepository) *ReminderService {
	return &ReminderService{reminders: reminders}
}

// Create validates the schedule and stores a new active reminder
func (s *ReminderService) Create(ctx context.Context, userID int64, reminderType, schedule string) (int64, error) {
	if _, ok := reminderMessages[reminderType]; !ok {
		return 0, errors.NewValidationError("type", "неизвестный тип напоминания")
	}
	parsed, err := cronParser.Parse(schedule)
	if err != nil {
		return 0, errors.NewValidationError("schedule", "некорректное расписание")
	}

	nextRun := parsed.Next(time.Now().UTC()).Format(time.RFC3339)
	return s.reminders.Create(ctx, &models.Reminder{
		UserID:    userID,
		Type:      reminderType,
		Schedule:  schedule,
		IsActive:  true,
		NextRunAt: &nextRun,
	})
}

// CreateDaily stores a reminder that fires every day at HH:MM
func (s *ReminderService) CreateDaily(ctx context.Context, userID int64, reminderType string, hour, minute int) (int64, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.NewValidationError("time", "время должно быть в формате ЧЧ:ММ")
	}
	return s.Create(ctx, userID, reminderType, fmt.Sprintf("%d %d * * *", minute, hour))
}

// ListForUser returns a user's reminders
func (s *ReminderService) ListForUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return s.reminders.ListForUser(ctx, userID)
}

// SetActive enables or disables a reminder, checking it belongs to
// the user
func (s *ReminderService) SetActive(ctx context.Context, userID, id int64, active bool) error {
	if err := s.checkOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.reminders.SetActive(ctx, id, active)
}

// Delete removes a reminder, checking it belongs to the user
func (s *ReminderService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.checkOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.reminders.Delete(ctx, id)
}

func (s *ReminderService) checkOwned(ctx context.Context, userID, id int64) error {
	reminders, err := s.reminders.ListForUser(ctx, userID)
	if err != nil {
		return err
	}
	for i := range reminders {
		if reminders[i].ID == id {
			return nil
		}
	}
	return errors.NewNotFoundError("reminder", fmt.Sprintf("%d", id))
}

// Message returns the notification text for a reminder type
func Message(reminderType string) string {
	if msg, ok := reminderMessages[reminderType]; ok {
		return msg
	}
	return "⏰ Напоминание"
}

// NextRun computes the next fire time for a schedule after the given moment
func NextRun(schedule string, after time.Time) (time.Time, error) {
	parsed, err := cronParser.Parse(schedule)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression: %w", err)
	}
	return parsed.Next(after), nil
}
