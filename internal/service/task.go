package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/repository"
)

type taskService struct {
	authorizer
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) TaskService {
	return &taskService{
		authorizer: authorizer{userRepo: userRepo},
		taskRepo:   taskRepo,
	}
}

func (s *taskService) CreateTask(ctx context.Context, callerID int32, title, description string, assignedTo int32, projectID *int32) (*domain.Task, error) {
	creator, err := s.requireRole(ctx, callerID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" || assignedTo == 0 {
		return nil, ErrTaskFieldsRequired
	}

	assignee, err := s.userRepo.GetByID(ctx, assignedTo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	task := &domain.Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      domain.TaskStatusTodo,
		ProjectID:   projectID,
		AssignedTo:  assignee.Ref(),
		CreatedBy:   creator.Ref(),
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, callerID, taskID int32) (*domain.Task, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleMember && task.AssignedTo.ID != callerID {
		return nil, ErrNotAssignedTask
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, callerID int32) ([]domain.Task, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}

	if caller.Role == domain.RoleAdmin {
		return s.taskRepo.ListAll(ctx)
	}
	return s.taskRepo.ListByAssignee(ctx, callerID)
}

func (s *taskService) UpdateTask(ctx context.Context, callerID, taskID int32, update domain.TaskUpdate) (*domain.Task, error) {
	if _, err := s.requireRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *update.Status
	}
	if update.Progress != nil {
		task.Progress = *update.Progress
	}
	if update.AssignedTo != nil {
		assignee, err := s.userRepo.GetByID(ctx, *update.AssignedTo)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to resolve assignee: %w", err)
		}
		task.AssignedTo = assignee.Ref()
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, callerID, taskID int32) error {
	if _, err := s.requireRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *taskService) UpdateTaskProgress(ctx context.Context, callerID, taskID int32, progress *int32, status *domain.TaskStatus) (*domain.Task, error) {
	if _, err := s.requireRole(ctx, callerID, domain.RoleMember); err != nil {
		return nil, err
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.AssignedTo.ID != callerID {
		return nil, ErrNotAssignedTask
	}

	if progress != nil {
		task.Progress = *progress
	}
	if status != nil {
		if !status.Valid() {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *status
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *taskService) getTask(ctx context.Context, taskID int32) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}
