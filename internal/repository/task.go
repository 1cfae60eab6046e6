// internal/repository/task.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskFilter narrows task listings. A nil OrgID means no organization
// restriction (superAdmin).
type TaskFilter struct {
	OrgID         *uuid.UUID
	SalespersonID *uuid.UUID
	Status        model.TaskStatus
	StartDate     *time.Time
	EndDate       *time.Time
	Offset        int
	Limit         int
}

// OverdueTask is one row of the sweep query: a pending task whose latest
// follow-up has lapsed, joined to the salesperson's supervisor.
type OverdueTask struct {
	TaskID        uuid.UUID
	SalespersonID uuid.UUID
	SupervisorID  uuid.UUID
	FollowupDate  time.Time
}

type TaskRepositoryIface interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, filter TaskFilter) ([]*model.Task, error)

	CreateFollowup(ctx context.Context, followup *model.TaskFollowup) error
	LatestFollowup(ctx context.Context, taskID uuid.UUID) (*model.TaskFollowup, error)

	FindOverdue(ctx context.Context, dueBefore time.Time) ([]OverdueTask, error)
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Create(task)
	if result.Error != nil {
		return fmt.Errorf("failed to create task: %w", result.Error)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", result.Error)
	}
	return &task, nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     model.TaskCompleted,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) FindAll(ctx context.Context, filter TaskFilter) ([]*model.Task, error) {
	var tasks []*model.Task

	query := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Joins("JOIN users ON users.id = tasks.salesperson_id")

	if filter.OrgID != nil {
		query = query.Where("users.org_id = ?", *filter.OrgID)
	}
	if filter.SalespersonID != nil {
		query = query.Where("tasks.salesperson_id = ?", *filter.SalespersonID)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("tasks.created_at BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}

	result := query.
		Preload("Followups").
		Order("tasks.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&tasks)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", result.Error)
	}

	return tasks, nil
}

func (r *TaskRepository) CreateFollowup(ctx context.Context, followup *model.TaskFollowup) error {
	result := r.db.WithContext(ctx).Create(followup)
	if result.Error != nil {
		return fmt.Errorf("failed to create task followup: %w", result.Error)
	}
	return nil
}

// LatestFollowup returns the most recently created follow-up for a task, or
// nil when the task has none.
func (r *TaskRepository) LatestFollowup(ctx context.Context, taskID uuid.UUID) (*model.TaskFollowup, error) {
	var followup model.TaskFollowup
	result := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		First(&followup)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest followup: %w", result.Error)
	}
	return &followup, nil
}

// FindOverdue selects pending tasks whose most recent follow-up was due before
// the cutoff, joined to the owning salesperson's supervisor. Tasks without a
// supervisor in the reporting chain are skipped; there is nobody to notify.
func (r *TaskRepository) FindOverdue(ctx context.Context, dueBefore time.Time) ([]OverdueTask, error) {
	var rows []OverdueTask
	result := r.db.WithContext(ctx).Raw(`
		SELECT t.id AS task_id, t.salesperson_id, u.supervisor_id, tf.followup_date
		FROM tasks t
		JOIN users u ON u.id = t.salesperson_id
		JOIN task_followups tf ON tf.task_id = t.id
		WHERE t.status = ?
		  AND u.supervisor_id IS NOT NULL
		  AND tf.followup_date < ?
		  AND tf.created_at = (
			SELECT MAX(tf2.created_at) FROM task_followups tf2 WHERE tf2.task_id = t.id
		  )`,
		model.TaskPending, dueBefore,
	).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find overdue tasks: %w", result.Error)
	}
	return rows, nil
}
