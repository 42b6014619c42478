package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"teamsync-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project, memberIDs []int32) error {
	args := m.Called(ctx, project, memberIDs)
	return args.Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) GetByJoinCode(ctx context.Context, joinCode string) (*domain.Project, error) {
	args := m.Called(ctx, joinCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) ListByCreator(ctx context.Context, creatorID int32) ([]domain.Project, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) ListByMember(ctx context.Context, userID int32) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) AddMembers(ctx context.Context, projectID int32, userIDs []int32) error {
	args := m.Called(ctx, projectID, userIDs)
	return args.Error(0)
}
func (m *MockProjectRepo) ListMembers(ctx context.Context, projectID int32) ([]domain.UserRef, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.UserRef), args.Error(1)
}
func (m *MockProjectRepo) IsMember(ctx context.Context, projectID, userID int32) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockProjectRepo) AddMeeting(ctx context.Context, meeting *domain.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}
func (m *MockProjectRepo) ListMeetings(ctx context.Context, projectID int32) ([]domain.Meeting, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Meeting), args.Error(1)
}
func (m *MockProjectRepo) ListMeetingsBetween(ctx context.Context, from, to time.Time) ([]domain.Meeting, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Meeting), args.Error(1)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) CreatePending(ctx context.Context, projectID, userID int32) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) HasPending(ctx context.Context, projectID, userID int32) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockJoinRequestRepo) Decide(ctx context.Context, projectID, userID int32, status domain.JoinRequestStatus) error {
	args := m.Called(ctx, projectID, userID, status)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) ListByProject(ctx context.Context, projectID int32) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) ListPendingByCreator(ctx context.Context, creatorID int32) ([]domain.JoinRequestSummary, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]domain.JoinRequestSummary), args.Error(1)
}
func (m *MockJoinRequestRepo) ListByUser(ctx context.Context, userID int32) ([]domain.JoinRequestSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JoinRequestSummary), args.Error(1)
}

// MockTaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockTaskRepo) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockTaskRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTaskRepo) ListAll(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) ListByAssignee(ctx context.Context, userID int32) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Task), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJoinDecisionNotice(ctx context.Context, email, name, projectName string, decision domain.JoinRequestStatus) error {
	args := m.Called(ctx, email, name, projectName, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendMeetingReminder(ctx context.Context, email, name, projectName, meetingTitle string, date time.Time, link string) error {
	args := m.Called(ctx, email, name, projectName, meetingTitle, date, link)
	return args.Error(0)
}
