// internal/service/sweep.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/realtime"
	"github.com/dealdesk/dealdesk/internal/repository"
)

// SweepService finds pending tasks whose latest follow-up has lapsed by more
// than a day and notifies the responsible supervisor. With renotify disabled,
// a supervisor is not nagged again while an earlier overdue notice for the
// same task sits unread.
type SweepService struct {
	tasks         repository.TaskRepositoryIface
	notifications repository.NotificationRepositoryIface
	users         repository.UserRepositoryIface
	dispatcher    realtime.Publisher
	renotify      bool
}

func NewSweepService(
	tasks repository.TaskRepositoryIface,
	notifications repository.NotificationRepositoryIface,
	users repository.UserRepositoryIface,
	dispatcher realtime.Publisher,
	renotify bool,
) *SweepService {
	return &SweepService{
		tasks:         tasks,
		notifications: notifications,
		users:         users,
		dispatcher:    dispatcher,
		renotify:      renotify,
	}
}

// SweepOverdue runs one pass and returns the number of notifications raised.
// A failure on one task is logged and does not stop the rest of the pass.
func (s *SweepService) SweepOverdue(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-24 * time.Hour)

	overdue, err := s.tasks.FindOverdue(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("finding overdue tasks: %w", err)
	}

	raised := 0
	for _, row := range overdue {
		if !s.renotify {
			exists, err := s.notifications.ExistsUnreadForTask(ctx, row.TaskID)
			if err != nil {
				slog.Error("sweep dedupe check failed", "task_id", row.TaskID, "error", err)
				continue
			}
			if exists {
				continue
			}
		}

		message := s.overdueMessage(ctx, row)

		taskID := row.TaskID
		notification := &model.Notification{
			UserID:  row.SupervisorID,
			TaskID:  &taskID,
			Message: message,
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			slog.Error("sweep notification create failed", "task_id", row.TaskID, "error", err)
			continue
		}
		raised++

		if err := s.dispatcher.Publish(row.SupervisorID, realtime.Event{
			Type:    realtime.EventTaskOverdue,
			Title:   "Task Overdue",
			Message: message,
		}); err != nil {
			slog.Warn("realtime push failed", "user_id", row.SupervisorID, "event", realtime.EventTaskOverdue, "error", err)
		}
	}

	return raised, nil
}

// Run executes SweepOverdue on a fixed interval until the context is
// cancelled. The first pass runs immediately.
func (s *SweepService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		count, err := s.SweepOverdue(ctx)
		if err != nil {
			slog.Error("overdue sweep failed", "error", err)
		} else {
			slog.Info("overdue sweep complete", "notifications", count)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *SweepService) overdueMessage(ctx context.Context, row repository.OverdueTask) string {
	salesperson, err := s.users.FindByID(ctx, row.SalespersonID)
	if err != nil {
		return "A salesperson has not completed their task."
	}
	return fmt.Sprintf("Salesperson %s %s has not completed their task.", salesperson.FirstName, salesperson.LastName)
}
