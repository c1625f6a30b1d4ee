package sqlite

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
	const op = "storage.sqlite.SaveUser"

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO usuarios (nome, email, senha) VALUES (?, ?, ?)",
		name, email, passHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.sqlite.UserByEmail"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM usuarios WHERE email = ?", email)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) User(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.sqlite.User"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM usuarios WHERE id = ?", id)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id int64, name, email string, balance decimal.Decimal) error {
	const op = "storage.sqlite.UpdateUser"

	_, err := s.db.ExecContext(ctx,
		"UPDATE usuarios SET nome = ?, email = ?, balance = ? WHERE id = ?",
		name, email, balance.String(), id,
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
	const op = "storage.sqlite.UpdatePreferences"

	_, err := s.db.ExecContext(ctx,
		`UPDATE usuarios SET nome = ?, email = ?, notif_email = ?, notif_push = ?, notif_relatorio = ?,
			senha = COALESCE(NULLIF(?, ''), senha)
		WHERE id = ?`,
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
