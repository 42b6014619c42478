package postgres

import (
	"context"
	"database/sql"
	"time"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/repository"
)

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) CreatePending(ctx context.Context, projectID, userID int32) error {
	// Single guarded insert: the membership and pending-duplicate checks
	// run in the same statement as the write, so a concurrent request
	// cannot slip between check and insert. The partial unique index on
	// (project_id, user_id) WHERE status='pending' backs this up.
	query := `INSERT INTO join_requests (project_id, user_id, status, requested_at)
	          SELECT $1, $2, 'pending', $3
	          WHERE NOT EXISTS (
	              SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2
	          ) AND NOT EXISTS (
	              SELECT 1 FROM join_requests WHERE project_id = $1 AND user_id = $2 AND status = 'pending'
	          )`
	res, err := r.db.ExecContext(ctx, query, projectID, userID, time.Now())
	if err != nil {
		if isUniqueViolation(err, "join_requests_pending_uniq") {
			return repository.ErrDuplicatePending
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrDuplicatePending
	}
	return nil
}

func (r *joinRequestRepository) HasPending(ctx context.Context, projectID, userID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM join_requests WHERE project_id = $1 AND user_id = $2 AND status = 'pending')`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&exists)
	return exists, err
}

func (r *joinRequestRepository) Decide(ctx context.Context, projectID, userID int32, status domain.JoinRequestStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Only a pending request can be decided; once resolved there is
	// nothing left to transition, so a second decision sees zero rows.
	update := `UPDATE join_requests SET status = $3, decided_at = $4
	           WHERE project_id = $1 AND user_id = $2 AND status = 'pending'`
	res, err := tx.ExecContext(ctx, update, projectID, userID, status, time.Now())
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	if status == domain.JoinRequestStatusApproved {
		add := `INSERT INTO project_members (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.ExecContext(ctx, add, projectID, userID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *joinRequestRepository) ListByProject(ctx context.Context, projectID int32) ([]domain.JoinRequest, error) {
	query := `SELECT r.id, r.project_id, r.status, r.requested_at, u.id, u.name, u.email
	          FROM join_requests r
	          JOIN users u ON u.id = r.user_id
	          WHERE r.project_id = $1
	          ORDER BY r.requested_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.JoinRequest
	for rows.Next() {
		var jr domain.JoinRequest
		if err := rows.Scan(&jr.ID, &jr.ProjectID, &jr.Status, &jr.RequestedAt, &jr.User.ID, &jr.User.Name, &jr.User.Email); err != nil {
			return nil, err
		}
		reqs = append(reqs, jr)
	}
	return reqs, rows.Err()
}

func (r *joinRequestRepository) ListPendingByCreator(ctx context.Context, creatorID int32) ([]domain.JoinRequestSummary, error) {
	query := `SELECT p.id, p.name, r.status, r.requested_at, u.id, u.name, u.email
	          FROM join_requests r
	          JOIN projects p ON p.id = r.project_id
	          JOIN users u ON u.id = r.user_id
	          WHERE p.created_by = $1 AND r.status = 'pending'
	          ORDER BY r.requested_at`
	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.JoinRequestSummary
	for rows.Next() {
		var s domain.JoinRequestSummary
		var user domain.UserRef
		if err := rows.Scan(&s.ProjectID, &s.ProjectName, &s.Status, &s.RequestedAt, &user.ID, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		s.User = &user
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *joinRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.JoinRequestSummary, error) {
	query := `SELECT p.id, p.name, r.status, r.requested_at
	          FROM join_requests r
	          JOIN projects p ON p.id = r.project_id
	          WHERE r.user_id = $1
	          ORDER BY r.requested_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.JoinRequestSummary
	for rows.Next() {
		var s domain.JoinRequestSummary
		if err := rows.Scan(&s.ProjectID, &s.ProjectName, &s.Status, &s.RequestedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
