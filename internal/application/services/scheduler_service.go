package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/domain/ports"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
)

// notifyTimeout bounds a single reminder delivery
const notifyTimeout = 30 * time.Second

// SchedulerService fires due reminders in a background loop
type SchedulerService struct {
	reminders *persistence.ReminderRepository
	notifier  ports.Notifier
	interval  time.Duration
	log       *zap.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
	stopped  bool // prevents double-close of stopChan
}

func NewSchedulerService(reminders *persistence.ReminderRepository, notifier ports.Notifier, interval time.Duration, log *zap.Logger) *SchedulerService {
	return &SchedulerService{
		reminders: reminders,
		notifier:  notifier,
		interval:  interval,
		log:       log,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the scheduler background loop. Blocks until Stop.
func (s *SchedulerService) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.log.Info("scheduler starting", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.runDueReminders()

	for {
		select {
		case <-ticker.C:
			s.runDueReminders()
		case <-s.stopChan:
			s.wg.Wait() // wait for in-flight notifications
			s.log.Info("scheduler stopped")
			return
		}
	}
}

// Stop gracefully stops the scheduler
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	if !s.running || s.stopped {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.stopped = true
	s.mu.Unlock()

	close(s.stopChan)
}

// runDueReminders finds and dispatches all due reminders
func (s *SchedulerService) runDueReminders() {
	reminders, err := s.reminders.ListActive(context.Background())
	if err != nil {
		s.log.Error("failed to load active reminders", zap.Error(err))
		return
	}

	now := time.Now().UTC()
	for _, rem := range reminders {
		if !s.isDue(&rem, now) {
			continue
		}

		s.wg.Add(1)
		go func(r models.Reminder) {
			defer s.wg.Done()
			s.fire(&r)
		}(rem)
	}
}

// isDue checks whether a reminder should fire now
func (s *SchedulerService) isDue(rem *models.Reminder, now time.Time) bool {
	if rem.NextRunAt != nil {
		next, err := time.Parse(time.RFC3339, *rem.NextRunAt)
		if err != nil {
			s.log.Warn("malformed next_run_at, rescheduling",
				zap.Int64("reminder_id", rem.ID), zap.String("value", *rem.NextRunAt))
			s.reschedule(rem, now)
			return false
		}
		return !now.Before(next)
	}

	// a reminder that never ran and has no next_run_at fires once
	// immediately, then gets a proper schedule
	return rem.LastRunAt == nil
}

// fire delivers one reminder and advances its schedule
func (s *SchedulerService) fire(rem *models.Reminder) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic in reminder delivery",
				zap.Int64("reminder_id", rem.ID), zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, rem.UserID, Message(rem.Type)); err != nil {
		s.log.Warn("reminder delivery failed",
			zap.Int64("reminder_id", rem.ID),
			zap.Int64("user_id", rem.UserID),
			zap.Error(err))
	}

	now := time.Now().UTC()
	next, err := NextRun(rem.Schedule, now)
	if err != nil {
		s.log.Error("invalid reminder schedule, disabling",
			zap.Int64("reminder_id", rem.ID), zap.Error(err))
		if err := s.reminders.SetActive(context.Background(), rem.ID, false); err != nil {
			s.log.Error("failed to disable reminder", zap.Int64("reminder_id", rem.ID), zap.Error(err))
		}
		return
	}

	if err := s.reminders.MarkRun(context.Background(), rem.ID,
		now.Format(time.RFC3339), next.Format(time.RFC3339)); err != nil {
		s.log.Error("failed to record reminder run",
			zap.Int64("reminder_id", rem.ID), zap.Error(err))
	}
}

// reschedule sets next_run_at from the cron expression without firing
func (s *SchedulerService) reschedule(rem *models.Reminder, now time.Time) {
	next, err := NextRun(rem.Schedule, now)
	if err != nil {
		return
	}
	if err := s.reminders.SetNextRun(context.Background(), rem.ID, next.Format(time.RFC3339)); err != nil {
		s.log.Error("failed to reschedule reminder",
			zap.Int64("reminder_id", rem.ID), zap.Error(err))
	}
}
