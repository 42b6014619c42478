package postgres

import (
	"database/sql"
	"errors"

	"teamsync-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProjectRepository
	repository.JoinRequestRepository
	repository.TaskRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ProjectRepository:      NewProjectRepository(db),
		JoinRequestRepository:  NewJoinRequestRepository(db),
		TaskRepository:         NewTaskRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// isUniqueViolation reports whether err is a unique-constraint violation
// on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}

// notFound translates sql.ErrNoRows into the repository sentinel.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
