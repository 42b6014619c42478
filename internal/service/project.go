package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/logger"
	"teamsync-backend/internal/repository"
)

type projectService struct {
	authorizer
	projectRepo repository.ProjectRepository
	reqRepo     repository.JoinRequestRepository
}

func NewProjectService(projectRepo repository.ProjectRepository, reqRepo repository.JoinRequestRepository, userRepo repository.UserRepository) ProjectService {
	return &projectService{
		authorizer:  authorizer{userRepo: userRepo},
		projectRepo: projectRepo,
		reqRepo:     reqRepo,
	}
}

func (s *projectService) CreateProject(ctx context.Context, creatorID int32, name, description string, status domain.ProjectStatus, memberIDs []int32) (*domain.Project, error) {
	if _, err := s.requireRole(ctx, creatorID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if status == "" {
		status = domain.ProjectStatusActive
	}
	if !status.Valid() {
		return nil, ErrInvalidProjectStatus
	}

	// Allocate a join code. The unique index on projects.join_code makes
	// insert-and-retry a single atomic check-and-act per attempt; with
	// 62^8 possible codes the loop all but always terminates first try.
	for {
		code, err := generateJoinCode()
		if err != nil {
			return nil, err
		}

		project := &domain.Project{
			Name:        strings.TrimSpace(name),
			Description: description,
			Status:      status,
			CreatedBy:   creatorID,
			JoinCode:    code,
		}
		err = s.projectRepo.Create(ctx, project, memberIDs)
		if errors.Is(err, repository.ErrDuplicateJoinCode) {
			logger.Warn("Join code collision, regenerating", "project", project.Name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create project: %w", err)
		}
		return project, nil
	}
}

func (s *projectService) GetProject(ctx context.Context, id int32) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.Members, err = s.projectRepo.ListMembers(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if project.JoinRequests, err = s.reqRepo.ListByProject(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	if project.Meetings, err = s.projectRepo.ListMeetings(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return project, nil
}

func (s *projectService) ListActiveProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListByStatus(ctx, domain.ProjectStatusActive)
}

func (s *projectService) ListMyProjects(ctx context.Context, creatorID int32) ([]domain.Project, error) {
	return s.projectRepo.ListByCreator(ctx, creatorID)
}

func (s *projectService) ListMemberProjects(ctx context.Context, userID int32) ([]domain.Project, error) {
	return s.projectRepo.ListByMember(ctx, userID)
}

// AddMembers requires the global admin capability only; unlike join
// request decisions, project ownership is not checked.
func (s *projectService) AddMembers(ctx context.Context, callerID, projectID int32, memberIDs []int32) (*domain.Project, error) {
	if _, err := s.requireRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if len(memberIDs) > 0 {
		if err := s.projectRepo.AddMembers(ctx, projectID, memberIDs); err != nil {
			return nil, fmt.Errorf("failed to add members: %w", err)
		}
	}

	if project.Members, err = s.projectRepo.ListMembers(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return project, nil
}

func (s *projectService) AddMeeting(ctx context.Context, callerID, projectID int32, title string, date time.Time, link string) (*domain.Meeting, error) {
	if _, err := s.requireRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" || date.IsZero() {
		return nil, ErrMeetingFieldsRequired
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	meeting := &domain.Meeting{
		ProjectID: projectID,
		Title:     strings.TrimSpace(title),
		Date:      date,
		Link:      link,
	}
	if err := s.projectRepo.AddMeeting(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to add meeting: %w", err)
	}
	return meeting, nil
}
