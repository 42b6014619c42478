package service

import (
	"context"
	"errors"
	"fmt"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/logger"
	"teamsync-backend/internal/repository"
)

type membershipService struct {
	authorizer
	projectRepo repository.ProjectRepository
	reqRepo     repository.JoinRequestRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewMembershipService(
	projectRepo repository.ProjectRepository,
	reqRepo repository.JoinRequestRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) MembershipService {
	return &membershipService{
		authorizer:  authorizer{userRepo: userRepo},
		projectRepo: projectRepo,
		reqRepo:     reqRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *membershipService) RequestToJoin(ctx context.Context, userID int32, joinCode string) error {
	if joinCode == "" {
		return ErrJoinCodeRequired
	}

	project, err := s.projectRepo.GetByJoinCode(ctx, joinCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to look up join code: %w", err)
	}

	// Pre-checks give the caller a precise reason; the guarded insert
	// below re-verifies both under a single atomic statement so two
	// concurrent requests cannot both pass.
	isMember, err := s.projectRepo.IsMember(ctx, project.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return ErrAlreadyMember
	}

	hasPending, err := s.reqRepo.HasPending(ctx, project.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to check pending requests: %w", err)
	}
	if hasPending {
		return ErrAlreadyRequested
	}

	if err := s.reqRepo.CreatePending(ctx, project.ID, userID); err != nil {
		if errors.Is(err, repository.ErrDuplicatePending) {
			return ErrAlreadyRequested
		}
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

func (s *membershipService) DecideJoinRequest(ctx context.Context, callerID, projectID, targetUserID int32, decision domain.JoinRequestStatus) error {
	if !decision.ValidDecision() {
		return ErrInvalidDecision
	}
	if _, err := s.requireRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return err
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if err := s.requireProjectOwner(project, callerID); err != nil {
		return err
	}

	// Transition + member add happen atomically in the repository; only
	// a pending request can be decided, so a repeat decision is NotFound.
	if err := s.reqRepo.Decide(ctx, projectID, targetUserID, decision); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJoinRequestNotFound
		}
		return fmt.Errorf("failed to decide join request: %w", err)
	}

	s.notifyDecision(ctx, project, targetUserID, decision)
	return nil
}

// notifyDecision records an in-app notification and sends an email to the
// requester. Both are best effort: the decision already committed.
func (s *membershipService) notifyDecision(ctx context.Context, project *domain.Project, targetUserID int32, decision domain.JoinRequestStatus) {
	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		logger.Error("Failed to resolve join request user for notification", "user_id", targetUserID, "error", err)
		return
	}

	note := &domain.Notification{
		UserID:  target.ID,
		Title:   "Join request " + string(decision),
		Message: fmt.Sprintf("Your request to join %q was %s.", project.Name, decision),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to create decision notification", "user_id", target.ID, "error", err)
	}

	if err := s.emailSvc.SendJoinDecisionNotice(ctx, target.Email, target.Name, project.Name, decision); err != nil {
		logger.Error("Failed to send decision email", "email", target.Email, "error", err)
	}
}

func (s *membershipService) ListPendingJoinRequests(ctx context.Context, callerID int32) ([]domain.JoinRequestSummary, error) {
	if _, err := s.requireRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.reqRepo.ListPendingByCreator(ctx, callerID)
}

func (s *membershipService) ListOwnJoinRequests(ctx context.Context, userID int32) ([]domain.JoinRequestSummary, error) {
	return s.reqRepo.ListByUser(ctx, userID)
}
