package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"teamsync-backend/internal/domain"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, string, error) {
	args := m.Called(ctx, name, email, password, role)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

// MockProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, creatorID int32, name, description string, status domain.ProjectStatus, memberIDs []int32) (*domain.Project, error) {
	args := m.Called(ctx, creatorID, name, description, status, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProject(ctx context.Context, id int32) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListActiveProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) ListMyProjects(ctx context.Context, creatorID int32) ([]domain.Project, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) ListMemberProjects(ctx context.Context, userID int32) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) AddMembers(ctx context.Context, callerID, projectID int32, memberIDs []int32) (*domain.Project, error) {
	args := m.Called(ctx, callerID, projectID, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) AddMeeting(ctx context.Context, callerID, projectID int32, title string, date time.Time, link string) (*domain.Meeting, error) {
	args := m.Called(ctx, callerID, projectID, title, date, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Meeting), args.Error(1)
}

// MockMembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) RequestToJoin(ctx context.Context, userID int32, joinCode string) error {
	args := m.Called(ctx, userID, joinCode)
	return args.Error(0)
}
func (m *MockMembershipService) DecideJoinRequest(ctx context.Context, callerID, projectID, targetUserID int32, decision domain.JoinRequestStatus) error {
	args := m.Called(ctx, callerID, projectID, targetUserID, decision)
	return args.Error(0)
}
func (m *MockMembershipService) ListPendingJoinRequests(ctx context.Context, callerID int32) ([]domain.JoinRequestSummary, error) {
	args := m.Called(ctx, callerID)
	return args.Get(0).([]domain.JoinRequestSummary), args.Error(1)
}
func (m *MockMembershipService) ListOwnJoinRequests(ctx context.Context, userID int32) ([]domain.JoinRequestSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JoinRequestSummary), args.Error(1)
}

// MockTaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, callerID int32, title, description string, assignedTo int32, projectID *int32) (*domain.Task, error) {
	args := m.Called(ctx, callerID, title, description, assignedTo, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) GetTask(ctx context.Context, callerID, taskID int32) (*domain.Task, error) {
	args := m.Called(ctx, callerID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) ListTasks(ctx context.Context, callerID int32) ([]domain.Task, error) {
	args := m.Called(ctx, callerID)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskService) UpdateTask(ctx context.Context, callerID, taskID int32, update domain.TaskUpdate) (*domain.Task, error) {
	args := m.Called(ctx, callerID, taskID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) DeleteTask(ctx context.Context, callerID, taskID int32) error {
	args := m.Called(ctx, callerID, taskID)
	return args.Error(0)
}
func (m *MockTaskService) UpdateTaskProgress(ctx context.Context, callerID, taskID int32, progress *int32, status *domain.TaskStatus) (*domain.Task, error) {
	args := m.Called(ctx, callerID, taskID, progress, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
