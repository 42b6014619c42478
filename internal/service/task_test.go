package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/repository"
	"teamsync-backend/internal/service"
)

func newTaskService() (service.TaskService, *MockTaskRepo, *MockUserRepo) {
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	return service.NewTaskService(taskRepo, userRepo), taskRepo, userRepo
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, Name: "Alice", Email: "alice@test.com", Role: domain.RoleAdmin}
	member := &domain.User{ID: 5, Name: "Bob", Email: "bob@test.com", Role: domain.RoleMember}

	t.Run("Success", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)
		taskRepo.On("Create", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Title == "Write docs" && task.Status == domain.TaskStatusTodo &&
				task.AssignedTo.ID == 5 && task.CreatedBy.ID == 1
		})).Return(nil)

		task, err := svc.CreateTask(ctx, 1, " Write docs ", "user guide", 5, nil)
		assert.NoError(t, err)
		assert.Equal(t, "Bob", task.AssignedTo.Name)
	})

	t.Run("MemberForbidden", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)

		_, err := svc.CreateTask(ctx, 5, "Write docs", "", 5, nil)
		assert.ErrorIs(t, err, service.ErrAdminOnly)
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)

		_, err := svc.CreateTask(ctx, 1, "  ", "", 5, nil)
		assert.ErrorIs(t, err, service.ErrTaskFieldsRequired)

		_, err = svc.CreateTask(ctx, 1, "Write docs", "", 0, nil)
		assert.ErrorIs(t, err, service.ErrTaskFieldsRequired)
	})

	t.Run("UnknownAssignee", func(t *testing.T) {
		svc, _, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.CreateTask(ctx, 1, "Write docs", "", 99, nil)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestTaskService_GetTask(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	member := &domain.User{ID: 5, Role: domain.RoleMember}
	task := &domain.Task{ID: 3, Title: "Write docs", AssignedTo: domain.UserRef{ID: 5}}

	t.Run("AdminSeesAny", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(task, nil)

		got, err := svc.GetTask(ctx, 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), got.ID)
	})

	t.Run("AssigneeSeesOwn", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(task, nil)

		_, err := svc.GetTask(ctx, 5, 3)
		assert.NoError(t, err)
	})

	t.Run("OtherMemberForbidden", func(t *testing.T) {
		other := &domain.User{ID: 6, Role: domain.RoleMember}
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(6)).Return(other, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(task, nil)

		_, err := svc.GetTask(ctx, 6, 3)
		assert.ErrorIs(t, err, service.ErrNotAssignedTask)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		taskRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.GetTask(ctx, 1, 99)
		assert.ErrorIs(t, err, service.ErrTaskNotFound)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	member := &domain.User{ID: 5, Role: domain.RoleMember}

	t.Run("AdminListsAll", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		taskRepo.On("ListAll", ctx).Return([]domain.Task{{ID: 1}, {ID: 2}}, nil)

		got, err := svc.ListTasks(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		taskRepo.AssertNotCalled(t, "ListByAssignee", mock.Anything, mock.Anything)
	})

	t.Run("MemberListsOwn", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)
		taskRepo.On("ListByAssignee", ctx, int32(5)).Return([]domain.Task{{ID: 1}}, nil)

		got, err := svc.ListTasks(ctx, 5)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		taskRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	member := &domain.User{ID: 5, Name: "Bob", Role: domain.RoleMember}

	t.Run("AppliesPartialUpdate", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(&domain.Task{ID: 3, Title: "Old", Status: domain.TaskStatusTodo}, nil)
		taskRepo.On("Update", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Title == "New" && task.Status == domain.TaskStatusInProgress &&
				task.AssignedTo.ID == 5
		})).Return(nil)

		title := "New"
		status := domain.TaskStatusInProgress
		assignee := int32(5)
		got, err := svc.UpdateTask(ctx, 1, 3, domain.TaskUpdate{Title: &title, Status: &status, AssignedTo: &assignee})
		assert.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("BadStatus", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(&domain.Task{ID: 3}, nil)

		bad := domain.TaskStatus("paused")
		_, err := svc.UpdateTask(ctx, 1, 3, domain.TaskUpdate{Status: &bad})
		assert.ErrorIs(t, err, service.ErrInvalidTaskStatus)
	})

	t.Run("MemberForbidden", func(t *testing.T) {
		svc, _, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)

		_, err := svc.UpdateTask(ctx, 5, 3, domain.TaskUpdate{})
		assert.ErrorIs(t, err, service.ErrAdminOnly)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		taskRepo.On("Delete", ctx, int32(3)).Return(nil)

		assert.NoError(t, svc.DeleteTask(ctx, 1, 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		taskRepo.On("Delete", ctx, int32(99)).Return(repository.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteTask(ctx, 1, 99), service.ErrTaskNotFound)
	})
}

func TestTaskService_UpdateTaskProgress(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	member := &domain.User{ID: 5, Role: domain.RoleMember}
	task := &domain.Task{ID: 3, Progress: 10, Status: domain.TaskStatusTodo, AssignedTo: domain.UserRef{ID: 5}}

	t.Run("AssigneeUpdates", func(t *testing.T) {
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(5)).Return(member, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(task, nil)
		taskRepo.On("Update", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Progress == 60 && task.Status == domain.TaskStatusInProgress
		})).Return(nil)

		progress := int32(60)
		status := domain.TaskStatusInProgress
		got, err := svc.UpdateTaskProgress(ctx, 5, 3, &progress, &status)
		assert.NoError(t, err)
		assert.Equal(t, int32(60), got.Progress)
	})

	t.Run("AdminForbidden", func(t *testing.T) {
		svc, _, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)

		progress := int32(60)
		_, err := svc.UpdateTaskProgress(ctx, 1, 3, &progress, nil)
		assert.ErrorIs(t, err, service.ErrMemberOnly)
	})

	t.Run("NotAssignee", func(t *testing.T) {
		other := &domain.User{ID: 6, Role: domain.RoleMember}
		svc, taskRepo, userRepo := newTaskService()
		userRepo.On("GetByID", ctx, int32(6)).Return(other, nil)
		taskRepo.On("GetByID", ctx, int32(3)).Return(task, nil)

		progress := int32(60)
		_, err := svc.UpdateTaskProgress(ctx, 6, 3, &progress, nil)
		assert.ErrorIs(t, err, service.ErrNotAssignedTask)
	})
}
