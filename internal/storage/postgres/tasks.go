package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
)

const taskColumns = "id, usuario_id, titulo, descricao, data, categoria, status, created_at"

func (s *Storage) Tasks(ctx context.Context, userID int64) ([]models.Task, error) {
	const op = "storage.postgres.Tasks"

	tasks, err := s.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tarefas WHERE usuario_id = $1 ORDER BY data DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tasks, nil
}

func (s *Storage) RecentTasks(ctx context.Context, userID int64, limit int) ([]models.Task, error) {
	const op = "storage.postgres.RecentTasks"

	tasks, err := s.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tarefas WHERE usuario_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tasks, nil
}

func (s *Storage) PendingTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	const op = "storage.postgres.PendingTasks"

	tasks, err := s.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tarefas WHERE usuario_id = $1 AND status = $2 ORDER BY data ASC, id ASC",
		userID, models.TaskPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tasks, nil
}

func (s *Storage) CountPendingTasksOn(ctx context.Context, userID int64, date string) (int, error) {
	const op = "storage.postgres.CountPendingTasksOn"

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tarefas WHERE usuario_id = $1 AND data = $2 AND status = $3",
		userID, date, models.TaskPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *Storage) SaveTask(ctx context.Context, task *models.Task) (int64, error) {
	const op = "storage.postgres.SaveTask"

	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO tarefas (usuario_id, titulo, descricao, data, categoria) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		task.UserID, task.Title, task.Description, task.Date, task.Category,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateTask(ctx context.Context, id int64, upd models.TaskUpdate) error {
	const op = "storage.postgres.UpdateTask"

	_, err := s.db.ExecContext(ctx,
		"UPDATE tarefas SET titulo = $1, descricao = $2, data = $3, categoria = $4, status = $5 WHERE id = $6",
		upd.Title, upd.Description, upd.Date, upd.Category, upd.Status, id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SetTaskStatus(ctx context.Context, id int64, status int) error {
	const op = "storage.postgres.SetTaskStatus"

	if _, err := s.db.ExecContext(ctx, "UPDATE tarefas SET status = $1 WHERE id = $2", status, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteTask"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM tarefas WHERE id = $1", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) queryTasks(ctx context.Context, query string, args ...any) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Date, &t.Category, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}
