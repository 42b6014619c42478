package service

import (
	"context"
	"time"

	"teamsync-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, creatorID int32, name, description string, status domain.ProjectStatus, memberIDs []int32) (*domain.Project, error)
	GetProject(ctx context.Context, id int32) (*domain.Project, error)
	ListActiveProjects(ctx context.Context) ([]domain.Project, error)
	ListMyProjects(ctx context.Context, creatorID int32) ([]domain.Project, error)
	ListMemberProjects(ctx context.Context, userID int32) ([]domain.Project, error)
	AddMembers(ctx context.Context, callerID, projectID int32, memberIDs []int32) (*domain.Project, error)
	AddMeeting(ctx context.Context, callerID, projectID int32, title string, date time.Time, link string) (*domain.Meeting, error)
}

type MembershipService interface {
	RequestToJoin(ctx context.Context, userID int32, joinCode string) error
	DecideJoinRequest(ctx context.Context, callerID, projectID, targetUserID int32, decision domain.JoinRequestStatus) error
	ListPendingJoinRequests(ctx context.Context, callerID int32) ([]domain.JoinRequestSummary, error)
	ListOwnJoinRequests(ctx context.Context, userID int32) ([]domain.JoinRequestSummary, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, callerID int32, title, description string, assignedTo int32, projectID *int32) (*domain.Task, error)
	GetTask(ctx context.Context, callerID, taskID int32) (*domain.Task, error)
	ListTasks(ctx context.Context, callerID int32) ([]domain.Task, error)
	UpdateTask(ctx context.Context, callerID, taskID int32, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, callerID, taskID int32) error
	UpdateTaskProgress(ctx context.Context, callerID, taskID int32, progress *int32, status *domain.TaskStatus) (*domain.Task, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendJoinDecisionNotice(ctx context.Context, email, name, projectName string, decision domain.JoinRequestStatus) error
	SendMeetingReminder(ctx context.Context, email, name, projectName, meetingTitle string, date time.Time, link string) error
}
