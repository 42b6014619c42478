package postgres

import (
	"context"
	"database/sql"
	"time"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/repository"

	"github.com/lib/pq"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project, memberIDs []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO projects (name, description, status, created_by, join_code, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`
	now := time.Now()
	p.CreatedOn = now
	p.UpdatedOn = now
	err = tx.QueryRowContext(ctx, query, p.Name, p.Description, p.Status, p.CreatedBy, p.JoinCode, now).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err, "projects_join_code_key") {
			return repository.ErrDuplicateJoinCode
		}
		return err
	}

	if len(memberIDs) > 0 {
		memberQuery := `INSERT INTO project_members (project_id, user_id)
		                SELECT $1, unnest($2::int[])
		                ON CONFLICT DO NOTHING`
		if _, err := tx.ExecContext(ctx, memberQuery, p.ID, pq.Array(memberIDs)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const projectColumns = `id, name, description, status, created_by, join_code, created_on, updated_on`

func scanProject(row *sql.Row, p *domain.Project) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.JoinCode, &p.CreatedOn, &p.UpdatedOn)
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	p := &domain.Project{}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	if err := scanProject(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *projectRepository) GetByJoinCode(ctx context.Context, joinCode string) (*domain.Project, error) {
	p := &domain.Project{}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE join_code = $1`
	if err := scanProject(r.db.QueryRowContext(ctx, query, joinCode), p); err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *projectRepository) listProjects(ctx context.Context, query string, args ...interface{}) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.JoinCode, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = $1 ORDER BY created_on DESC`
	return r.listProjects(ctx, query, status)
}

func (r *projectRepository) ListByCreator(ctx context.Context, creatorID int32) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE created_by = $1 ORDER BY created_on DESC`
	return r.listProjects(ctx, query, creatorID)
}

func (r *projectRepository) ListByMember(ctx context.Context, userID int32) ([]domain.Project, error) {
	query := `SELECT p.id, p.name, p.description, p.status, p.created_by, p.join_code, p.created_on, p.updated_on
	          FROM projects p
	          JOIN project_members pm ON pm.project_id = p.id
	          WHERE pm.user_id = $1
	          ORDER BY p.created_on DESC`
	return r.listProjects(ctx, query, userID)
}

func (r *projectRepository) AddMembers(ctx context.Context, projectID int32, userIDs []int32) error {
	query := `INSERT INTO project_members (project_id, user_id)
	          SELECT $1, unnest($2::int[])
	          ON CONFLICT DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, projectID, pq.Array(userIDs))
	return err
}

func (r *projectRepository) ListMembers(ctx context.Context, projectID int32) ([]domain.UserRef, error) {
	query := `SELECT u.id, u.name, u.email, u.role
	          FROM project_members pm
	          JOIN users u ON u.id = pm.user_id
	          WHERE pm.project_id = $1
	          ORDER BY pm.added_on`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.UserRef
	for rows.Next() {
		var m domain.UserRef
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *projectRepository) IsMember(ctx context.Context, projectID, userID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&exists)
	return exists, err
}

func (r *projectRepository) AddMeeting(ctx context.Context, m *domain.Meeting) error {
	query := `INSERT INTO meetings (project_id, title, meeting_date, link) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.ProjectID, m.Title, m.Date, m.Link).Scan(&m.ID)
}

func (r *projectRepository) listMeetings(ctx context.Context, query string, args ...interface{}) ([]domain.Meeting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []domain.Meeting
	for rows.Next() {
		var m domain.Meeting
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Date, &m.Link); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func (r *projectRepository) ListMeetings(ctx context.Context, projectID int32) ([]domain.Meeting, error) {
	query := `SELECT id, project_id, title, meeting_date, link FROM meetings WHERE project_id = $1 ORDER BY id`
	return r.listMeetings(ctx, query, projectID)
}

func (r *projectRepository) ListMeetingsBetween(ctx context.Context, from, to time.Time) ([]domain.Meeting, error) {
	query := `SELECT id, project_id, title, meeting_date, link FROM meetings
	          WHERE meeting_date >= $1 AND meeting_date < $2 ORDER BY meeting_date`
	return r.listMeetings(ctx, query, from, to)
}
