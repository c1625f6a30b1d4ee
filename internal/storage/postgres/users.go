package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/datefy/datefy-api/internal/storage"
	"github.com/shopspring/decimal"
)

const userColumns = "id, nome, email, senha, balance, notif_email, notif_push, notif_relatorio"

func (s *Storage) SaveUser(ctx context.Context, name, email, passHash string) (int64, error) {
	const op = "storage.postgres.SaveUser"

	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO usuarios (nome, email, senha) VALUES ($1, $2, $3) RETURNING id",
		name, email, passHash,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM usuarios WHERE email = $1", email)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) User(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.User"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM usuarios WHERE id = $1", id)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id int64, name, email string, balance decimal.Decimal) error {
	const op = "storage.postgres.UpdateUser"

	_, err := s.db.ExecContext(ctx,
		"UPDATE usuarios SET nome = $1, email = $2, balance = $3 WHERE id = $4",
		name, email, balance, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdatePreferences saves profile, notification choices and, when
// p.PasswordHash is set, a new password in a single statement.
func (s *Storage) UpdatePreferences(ctx context.Context, id int64, p models.Preferences) error {
	const op = "storage.postgres.UpdatePreferences"

	_, err := s.db.ExecContext(ctx,
		`UPDATE usuarios SET nome = $1, email = $2, notif_email = $3, notif_push = $4, notif_relatorio = $5,
			senha = COALESCE(NULLIF($6, ''), senha)
		WHERE id = $7`,
		p.Name, p.Email, p.EmailAlerts, p.PushAlerts, p.MonthlyReport, p.PasswordHash, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Balance,
		&user.EmailAlerts, &user.PushAlerts, &user.MonthlyReport); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
