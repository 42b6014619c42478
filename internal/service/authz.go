package service

import (
	"context"
	"errors"
	"fmt"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/repository"
)

// authorizer is the single capability-check path every operation goes
// through. Role gates and the project-owner gate return typed errors so
// callers never compare role strings inline.
type authorizer struct {
	userRepo repository.UserRepository
}

// requireRole resolves the caller and checks their global role.
func (a authorizer) requireRole(ctx context.Context, userID int32, role domain.Role) (*domain.User, error) {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	if user.Role != role {
		if role == domain.RoleAdmin {
			return nil, ErrAdminOnly
		}
		return nil, ErrMemberOnly
	}
	return user, nil
}

// requireProjectOwner checks that the caller created the project. Join
// request decisions demand ownership on top of the admin role; plain
// member addition does not.
func (a authorizer) requireProjectOwner(project *domain.Project, userID int32) error {
	if project.CreatedBy != userID {
		return ErrNotProjectOwner
	}
	return nil
}
