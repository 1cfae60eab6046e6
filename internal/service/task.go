// internal/service/task.go
package service

import (
	"context"
	"time"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// TaskService schedules the follow-up chain attached to every sales card.
// Advancement walks the organization's configured iterations in position
// order; an organization with no configuration gets the F1 default and the
// chain ends after it.
type TaskService struct {
	tasks      repository.TaskRepositoryIface
	iterations repository.FollowupIterationRepositoryIface
	users      repository.UserRepositoryIface
}

func NewTaskService(
	tasks repository.TaskRepositoryIface,
	iterations repository.FollowupIterationRepositoryIface,
	users repository.UserRepositoryIface,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		iterations: iterations,
		users:      users,
	}
}

// Open creates the task for a freshly created sales card together with its
// first follow-up. The first configured iteration of the salesperson's
// organization supplies the label and offset; without configuration the
// follow-up lands DefaultFirstFollowupDays out under the F1 label.
func (s *TaskService) Open(ctx context.Context, salesCardID, salespersonID uuid.UUID) (*model.Task, error) {
	now := time.Now()

	label := model.DefaultFirstIteration
	days := model.DefaultFirstFollowupDays

	if cadence, err := s.cadenceFor(ctx, salespersonID); err != nil {
		return nil, err
	} else if len(cadence) > 0 {
		label = cadence[0].Iteration
		days = cadence[0].Days
	}

	task := &model.Task{
		SalesCardID:   salesCardID,
		SalespersonID: salespersonID,
		Status:        model.TaskPending,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	followup := &model.TaskFollowup{
		TaskID:       task.ID,
		Iteration:    label,
		FollowupDate: now.AddDate(0, 0, days),
	}
	if err := s.tasks.CreateFollowup(ctx, followup); err != nil {
		return nil, err
	}
	task.Followups = []model.TaskFollowup{*followup}

	return task, nil
}

// Complete marks a task done and, when the organization's cadence has a next
// iteration after the task's current one, appends the next follow-up. A task
// on the last configured iteration, or on an iteration no longer in the
// configuration, terminates silently.
func (s *TaskService) Complete(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == model.TaskCompleted {
		return nil, domain.ErrTaskCompleted
	}

	if err := s.tasks.MarkCompleted(ctx, taskID); err != nil {
		return nil, err
	}
	task.Status = model.TaskCompleted

	latest, err := s.tasks.LatestFollowup(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return task, nil
	}

	cadence, err := s.cadenceFor(ctx, task.SalespersonID)
	if err != nil {
		return nil, err
	}

	next, ok := nextIteration(cadence, latest.Iteration)
	if !ok {
		return task, nil
	}

	followup := &model.TaskFollowup{
		TaskID:       task.ID,
		Iteration:    next.Iteration,
		FollowupDate: time.Now().AddDate(0, 0, next.Days),
	}
	if err := s.tasks.CreateFollowup(ctx, followup); err != nil {
		return nil, err
	}

	return task, nil
}

// List returns tasks visible to the caller. Scoped roles see only their
// organization; salespeople see only their own tasks.
func (s *TaskService) List(ctx context.Context, caller *auth.Identity, filter repository.TaskFilter) ([]*model.Task, error) {
	if caller.Role.Scoped() {
		filter.OrgID = caller.OrgID
	}
	if caller.Role == model.RoleSalesperson {
		id := caller.UserID
		filter.SalespersonID = &id
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.tasks.FindAll(ctx, filter)
}

// cadenceFor loads the configured iterations for the salesperson's
// organization, position ordered. A salesperson without an organization has
// no cadence.
func (s *TaskService) cadenceFor(ctx context.Context, salespersonID uuid.UUID) ([]model.FollowupIteration, error) {
	salesperson, err := s.users.FindByID(ctx, salespersonID)
	if err != nil {
		return nil, err
	}
	if salesperson.OrgID == nil {
		return nil, nil
	}
	return s.iterations.FindAllByOrg(ctx, *salesperson.OrgID)
}

// nextIteration finds the entry after the one matching current. ok is false
// when current is absent from the cadence or already last.
func nextIteration(cadence []model.FollowupIteration, current string) (model.FollowupIteration, bool) {
	for i, it := range cadence {
		if it.Iteration == current {
			if i+1 < len(cadence) {
				return cadence[i+1], true
			}
			return model.FollowupIteration{}, false
		}
	}
	return model.FollowupIteration{}, false
}
