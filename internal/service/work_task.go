package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RatingWindow bounds how far back rated tasks count towards an average.
const RatingWindow = 90 * 24 * time.Hour

const (
	userRatingPrefix = "rating:user:"
	teamRatingPrefix = "rating:team:"
)

type WorkTaskService struct {
	tasks     repository.WorkTaskRepositoryIface
	users     repository.UserRepositoryIface
	roles     repository.RoleRepositoryIface
	relations repository.RelationRepositoryIface
	gate      *auth.Gate
	cache     *CacheService
	validate  *validator.Validate
	opts      options
}

func NewWorkTaskService(
	tasks repository.WorkTaskRepositoryIface,
	users repository.UserRepositoryIface,
	roles repository.RoleRepositoryIface,
	relations repository.RelationRepositoryIface,
	gate *auth.Gate,
	cache *CacheService,
	opts ...Option,
) *WorkTaskService {
	return &WorkTaskService{
		tasks:     tasks,
		users:     users,
		roles:     roles,
		relations: relations,
		gate:      gate,
		cache:     cache,
		validate:  newValidator(),
		opts:      applyOptions(opts),
	}
}

type CreateWorkTaskInput struct {
	Name        string    `json:"name" validate:"required,notblank,max=255"`
	Description string    `json:"description"`
	Comments    string    `json:"comments"`
	CompleteBy  time.Time `json:"complete_by" validate:"required"`
	AssigneeID  uuid.UUID `json:"assignee_id" validate:"required"`
}

type UpdateWorkTaskInput struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Description *string    `json:"description,omitempty"`
	Comments    *string    `json:"comments,omitempty"`
	CompleteBy  *time.Time `json:"complete_by,omitempty"`
}

type UpdateStatusInput struct {
	Status model.WorkTaskStatus `json:"status" validate:"required"`
}

type UpdateRateInput struct {
	Rate model.WorkTaskRate `json:"rate"`
}

// AuthorizeTaskCreation allows creatorRoleID to hand work to assigneeID only
// when a relation links the two roles directly.
func (s *WorkTaskService) AuthorizeTaskCreation(ctx context.Context, creatorRoleID, assigneeID uuid.UUID) error {
	assignee, err := s.users.FindByID(ctx, assigneeID)
	if err != nil {
		return err
	}
	if !assignee.HasRole() {
		return domain.ErrRoleNotFound
	}

	assigneeRole, err := s.roles.FindByID(ctx, *assignee.RoleID)
	if err != nil {
		return err
	}

	direct, err := s.relations.Exists(ctx, creatorRoleID, assigneeRole.ID, assigneeRole.StructureID)
	if err != nil {
		return fmt.Errorf("checking relation: %w", err)
	}
	if !direct {
		return domain.ErrNotDirectSuperior
	}
	return nil
}

// CreateTask records a task from creator to input.AssigneeID.
func (s *WorkTaskService) CreateTask(ctx context.Context, creator *model.User, input CreateWorkTaskInput) (*model.WorkTask, error) {
	role, err := s.gate.ResolveCurrentRole(ctx, creator)
	if err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if !input.CompleteBy.After(s.opts.now()) {
		return nil, domain.ErrTaskBeforeNow
	}
	if err := s.AuthorizeTaskCreation(ctx, role.ID, input.AssigneeID); err != nil {
		return nil, err
	}

	task := &model.WorkTask{
		Name:        input.Name,
		Description: input.Description,
		Comments:    input.Comments,
		Status:      model.TaskStatusCreated,
		Rate:        model.RateUnset,
		CompleteBy:  input.CompleteBy,
		CreatorID:   creator.ID,
		AssigneeID:  input.AssigneeID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.opts.recorder.RecordMutation("work_task", "create")
	return task, nil
}

func (s *WorkTaskService) ownedTask(ctx context.Context, taskID, creatorID uuid.UUID) (*model.WorkTask, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.CreatorID != creatorID {
		return nil, domain.ErrNotTaskCreator
	}
	return task, nil
}

// UpdateTask edits the descriptive fields of a task the user created.
func (s *WorkTaskService) UpdateTask(ctx context.Context, user *model.User, taskID uuid.UUID, input UpdateWorkTaskInput) (*model.WorkTask, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if input.CompleteBy != nil && !input.CompleteBy.After(s.opts.now()) {
		return nil, domain.ErrTaskBeforeNow
	}

	task, err := s.ownedTask(ctx, taskID, user.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Comments != nil {
		task.Comments = *input.Comments
	}
	dueMoved := input.CompleteBy != nil && !input.CompleteBy.Equal(task.CompleteBy)
	if input.CompleteBy != nil {
		task.CompleteBy = *input.CompleteBy
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	// complete_by decides whether a rated task falls inside RatingWindow.
	if dueMoved && task.Rate != model.RateUnset {
		s.invalidateRatings(ctx, task.AssigneeID)
	}
	return task, nil
}

// UpdateStatus moves a task one step along CREATED -> IN_WORK -> COMPLETED.
// Only the assignee may do so.
func (s *WorkTaskService) UpdateStatus(ctx context.Context, user *model.User, taskID uuid.UUID, input UpdateStatusInput) (*model.WorkTask, error) {
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, input.Status)
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.AssigneeID != user.ID {
		return nil, domain.ErrNotTaskAssignee
	}
	if !task.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, task.Status, input.Status)
	}

	task.Status = input.Status
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateRate grades a task. Only its creator may do so.
func (s *WorkTaskService) UpdateRate(ctx context.Context, user *model.User, taskID uuid.UUID, input UpdateRateInput) (*model.WorkTask, error) {
	if !input.Rate.Valid() {
		return nil, domain.ErrInvalidRate
	}

	task, err := s.ownedTask(ctx, taskID, user.ID)
	if err != nil {
		return nil, err
	}

	task.Rate = input.Rate
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.invalidateRatings(ctx, task.AssigneeID)
	return task, nil
}

// DeleteTask removes a task the user created.
func (s *WorkTaskService) DeleteTask(ctx context.Context, user *model.User, taskID uuid.UUID) error {
	task, err := s.ownedTask(ctx, taskID, user.ID)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return err
	}

	if task.Rate != model.RateUnset {
		s.invalidateRatings(ctx, task.AssigneeID)
	}
	s.opts.recorder.RecordMutation("work_task", "delete")
	return nil
}

func (s *WorkTaskService) AssignedTasks(ctx context.Context, user *model.User) ([]*model.WorkTask, error) {
	return s.tasks.FindByAssignee(ctx, user.ID)
}

func (s *WorkTaskService) CreatedTasks(ctx context.Context, user *model.User) ([]*model.WorkTask, error) {
	return s.tasks.FindByCreator(ctx, user.ID)
}

// UserRating averages the user's rated tasks due within RatingWindow.
func (s *WorkTaskService) UserRating(ctx context.Context, userID uuid.UUID) (float64, error) {
	return s.rating(ctx, userRatingPrefix+userID.String(), func(since time.Time) (*float64, error) {
		return s.tasks.AverageRateForAssignee(ctx, userID, since)
	})
}

// TeamRating averages the rated tasks of everyone holding a role in structureID.
func (s *WorkTaskService) TeamRating(ctx context.Context, structureID uuid.UUID) (float64, error) {
	return s.rating(ctx, teamRatingPrefix+structureID.String(), func(since time.Time) (*float64, error) {
		return s.tasks.AverageRateForStructure(ctx, structureID, since)
	})
}

func (s *WorkTaskService) rating(ctx context.Context, key string, average func(since time.Time) (*float64, error)) (float64, error) {
	var result float64
	err := s.cache.GetOrSet(ctx, key, &result, func() (interface{}, error) {
		avg, err := average(s.opts.now().Add(-RatingWindow))
		if err != nil {
			return nil, err
		}
		if avg == nil {
			return nil, domain.ErrTasksNotFound
		}
		return *avg, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrTasksNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("computing rating: %w", err)
	}
	return result, nil
}

// invalidateRatings drops the assignee's cached average and every team average.
func (s *WorkTaskService) invalidateRatings(ctx context.Context, assigneeID uuid.UUID) {
	_ = s.cache.Delete(ctx, userRatingPrefix+assigneeID.String())
	s.cache.DeletePrefix(ctx, teamRatingPrefix)
}
