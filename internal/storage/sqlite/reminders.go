package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
)

func (s *Storage) Reminders(ctx context.Context, userID int64) ([]models.Reminder, error) {
	const op = "storage.sqlite.Reminders"

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, usuario_id, tipo, descricao, data FROM lembretes WHERE usuario_id = ? ORDER BY data ASC, id ASC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.UserID, &r.Type, &r.Description, &r.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reminders, nil
}

func (s *Storage) SaveReminder(ctx context.Context, reminder *models.Reminder) (int64, error) {
	const op = "storage.sqlite.SaveReminder"

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO lembretes (usuario_id, tipo, descricao, data) VALUES (?, ?, ?, ?)",
		reminder.UserID, reminder.Type, reminder.Description, reminder.Date,
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

func (s *Storage) DeleteReminder(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeleteReminder"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM lembretes WHERE id = ?", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
