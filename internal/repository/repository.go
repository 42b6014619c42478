package repository

import (
	"context"
	"errors"
	"time"

	"teamsync-backend/internal/domain"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	// Postgres implementations translate sql.ErrNoRows into it.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateJoinCode signals a join-code collision on project insert.
	ErrDuplicateJoinCode = errors.New("join code already in use")

	// ErrDuplicateEmail signals a signup with an email that is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicatePending signals a second pending join request for the
	// same (project, user) pair.
	ErrDuplicatePending = errors.New("pending join request already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project, memberIDs []int32) error
	GetByID(ctx context.Context, id int32) (*domain.Project, error)
	GetByJoinCode(ctx context.Context, joinCode string) (*domain.Project, error)
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	ListByCreator(ctx context.Context, creatorID int32) ([]domain.Project, error)
	ListByMember(ctx context.Context, userID int32) ([]domain.Project, error)

	// Member set. AddMembers has set-union semantics: ids already present
	// are silently skipped.
	AddMembers(ctx context.Context, projectID int32, userIDs []int32) error
	ListMembers(ctx context.Context, projectID int32) ([]domain.UserRef, error)
	IsMember(ctx context.Context, projectID, userID int32) (bool, error)

	AddMeeting(ctx context.Context, meeting *domain.Meeting) error
	ListMeetings(ctx context.Context, projectID int32) ([]domain.Meeting, error)
	// ListMeetingsBetween returns meetings scheduled in [from, to),
	// regardless of project. Used by the reminder job.
	ListMeetingsBetween(ctx context.Context, from, to time.Time) ([]domain.Meeting, error)
}

type JoinRequestRepository interface {
	// CreatePending appends a pending request. The insert is guarded so a
	// concurrent duplicate cannot race past the uniqueness checks: when
	// the user already has a pending request, or is already a member, no
	// row is written and ErrDuplicatePending is returned. Callers that
	// want the distinct "already a member" message pre-check membership.
	CreatePending(ctx context.Context, projectID, userID int32) error
	HasPending(ctx context.Context, projectID, userID int32) (bool, error)

	// Decide transitions the pending request for (projectID, userID) to
	// the given terminal status and, on approval, adds the user to the
	// member set. Both writes happen in one transaction. Returns
	// ErrNotFound when no pending request exists.
	Decide(ctx context.Context, projectID, userID int32, status domain.JoinRequestStatus) error

	ListByProject(ctx context.Context, projectID int32) ([]domain.JoinRequest, error)
	ListPendingByCreator(ctx context.Context, creatorID int32) ([]domain.JoinRequestSummary, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.JoinRequestSummary, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int32) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int32) error
	ListAll(ctx context.Context) ([]domain.Task, error)
	ListByAssignee(ctx context.Context, userID int32) ([]domain.Task, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
