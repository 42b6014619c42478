package postgres

import (
	"context"
	"database/sql"
	"time"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/repository"
)

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (title, description, status, progress, project_id, assigned_to, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	now := time.Now()
	t.CreatedOn = now
	t.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		t.Title, t.Description, t.Status, t.Progress, t.ProjectID, t.AssignedTo.ID, t.CreatedBy.ID, now,
	).Scan(&t.ID)
}

const taskSelect = `SELECT t.id, t.title, t.description, t.status, t.progress, t.project_id,
	       a.id, a.name, a.email, a.role,
	       c.id, c.name, c.email, c.role,
	       t.created_on, t.updated_on
	FROM tasks t
	JOIN users a ON a.id = t.assigned_to
	JOIN users c ON c.id = t.created_by`

func scanTask(scanner interface{ Scan(...interface{}) error }, t *domain.Task) error {
	return scanner.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Progress, &t.ProjectID,
		&t.AssignedTo.ID, &t.AssignedTo.Name, &t.AssignedTo.Email, &t.AssignedTo.Role,
		&t.CreatedBy.ID, &t.CreatedBy.Name, &t.CreatedBy.Email, &t.CreatedBy.Role,
		&t.CreatedOn, &t.UpdatedOn,
	)
}

func (r *taskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	t := &domain.Task{}
	query := taskSelect + ` WHERE t.id = $1`
	if err := scanTask(r.db.QueryRowContext(ctx, query, id), t); err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *taskRepository) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = $1, description = $2, status = $3, progress = $4, assigned_to = $5, updated_on = $6
	          WHERE id = $7`
	t.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, query, t.Title, t.Description, t.Status, t.Progress, t.AssignedTo.ID, t.UpdatedOn, t.ID)
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
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
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
	return nil
}

func (r *taskRepository) listTasks(ctx context.Context, query string, args ...interface{}) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	return r.listTasks(ctx, taskSelect+` ORDER BY t.created_on DESC`)
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID int32) ([]domain.Task, error) {
	return r.listTasks(ctx, taskSelect+` WHERE t.assigned_to = $1 ORDER BY t.created_on DESC`, userID)
}
