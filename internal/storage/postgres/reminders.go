package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
)

func (s *Storage) Reminders(ctx context.Context, userID int64) ([]models.Reminder, error) {
	const op = "storage.postgres.Reminders"

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, usuario_id, tipo, descricao, data FROM lembretes WHERE usuario_id = $1 ORDER BY data ASC, id ASC",
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
	const op = "storage.postgres.SaveReminder"

	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO lembretes (usuario_id, tipo, descricao, data) VALUES ($1, $2, $3, $4) RETURNING id",
		reminder.UserID, reminder.Type, reminder.Description, reminder.Date,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) DeleteReminder(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteReminder"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM lembretes WHERE id = $1", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
