package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
)

const taskColumns = "id, usuario_id, titulo, descricao, data, categoria, status, created_at"

func (s *Storage) Tasks(ctx context.Context, userID int64) ([]models.Task, error) {
	const op = "storage.sqlite.Tasks"

	tasks, err := s.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tarefas WHERE usuario_id = ? ORDER BY data DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tasks, nil
}

// RecentTasks orders by insertion. created_at only has second precision
// here, so id breaks the ties.
func (s *Storage) RecentTasks(ctx context.Context, userID int64, limit int) ([]models.Task, error) {
	const op = "storage.sqlite.RecentTasks"

	tasks, err := s.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tarefas WHERE usuario_id = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tasks, nil
}

func (s *Storage) PendingTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	const op = "storage.sqlite.PendingTasks"

	tasks, err := s.queryTasks(ctx,
		"SELECT "+taskColumns+" FROM tarefas WHERE usuario_id = ? AND status = ? ORDER BY data ASC, id ASC",
		userID, models.TaskPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tasks, nil
}

func (s *Storage) CountPendingTasksOn(ctx context.Context, userID int64, date string) (int, error) {
	const op = "storage.sqlite.CountPendingTasksOn"

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tarefas WHERE usuario_id = ? AND data = ? AND status = ?",
		userID, date, models.TaskPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *Storage) SaveTask(ctx context.Context, task *models.Task) (int64, error) {
	const op = "storage.sqlite.SaveTask"

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO tarefas (usuario_id, titulo, descricao, data, categoria) VALUES (?, ?, ?, ?, ?)",
		task.UserID, task.Title, task.Description, task.Date, task.Category,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateTask(ctx context.Context, id int64, upd models.TaskUpdate) error {
	const op = "storage.sqlite.UpdateTask"

	_, err := s.db.ExecContext(ctx,
		"UPDATE tarefas SET titulo = ?, descricao = ?, data = ?, categoria = ?, status = ? WHERE id = ?",
		upd.Title, upd.Description, upd.Date, upd.Category, upd.Status, id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SetTaskStatus(ctx context.Context, id int64, status int) error {
	const op = "storage.sqlite.SetTaskStatus"

	if _, err := s.db.ExecContext(ctx, "UPDATE tarefas SET status = ? WHERE id = ?", status, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeleteTask"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM tarefas WHERE id = ?", id); err != nil {
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
