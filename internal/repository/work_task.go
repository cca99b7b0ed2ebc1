// internal/repository/work_task.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkTaskRepositoryIface interface {
	Create(ctx context.Context, task *model.WorkTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WorkTask, error)
	Update(ctx context.Context, task *model.WorkTask) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.WorkTask, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]*model.WorkTask, error)
	AverageRateForAssignee(ctx context.Context, userID uuid.UUID, since time.Time) (*float64, error)
	AverageRateForStructure(ctx context.Context, structureID uuid.UUID, since time.Time) (*float64, error)
}

type WorkTaskRepository struct {
	db *gorm.DB
}

func NewWorkTaskRepository(db *gorm.DB) *WorkTaskRepository {
	return &WorkTaskRepository{db: db}
}

func (r *WorkTaskRepository) Create(ctx context.Context, task *model.WorkTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("creating work task: %w", err)
	}
	return nil
}

func (r *WorkTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WorkTask, error) {
	var task model.WorkTask
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("finding work task: %w", err)
	}
	return &task, nil
}

func (r *WorkTaskRepository) Update(ctx context.Context, task *model.WorkTask) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Select("name", "description", "comments", "status", "rate", "complete_by").
		Updates(task)
	if result.Error != nil {
		return fmt.Errorf("updating work task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *WorkTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WorkTask{})
	if result.Error != nil {
		return fmt.Errorf("deleting work task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *WorkTaskRepository) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.WorkTask, error) {
	var tasks []*model.WorkTask
	if err := r.db.WithContext(ctx).
		Where("assignee_id = ?", userID).
		Order("complete_by").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("finding assigned tasks: %w", err)
	}
	return tasks, nil
}

func (r *WorkTaskRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]*model.WorkTask, error) {
	var tasks []*model.WorkTask
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", userID).
		Order("complete_by").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("finding created tasks: %w", err)
	}
	return tasks, nil
}

// AverageRateForAssignee averages the rated tasks of userID due since since.
// A nil result means there is nothing to average.
func (r *WorkTaskRepository) AverageRateForAssignee(ctx context.Context, userID uuid.UUID, since time.Time) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&model.WorkTask{}).
		Select("AVG(rate)").
		Where("assignee_id = ? AND rate > 0 AND complete_by >= ?", userID, since).
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("averaging user rate: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// AverageRateForStructure averages the rated tasks whose assignee holds a role in
// structureID and that are due since since.
func (r *WorkTaskRepository) AverageRateForStructure(ctx context.Context, structureID uuid.UUID, since time.Time) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&model.WorkTask{}).
		Select("AVG(work_tasks.rate)").
		Joins("JOIN users ON users.id = work_tasks.assignee_id").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.structure_id = ? AND work_tasks.rate > 0 AND work_tasks.complete_by >= ?", structureID, since).
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("averaging team rate: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
