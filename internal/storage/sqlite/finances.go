package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
)

func (s *Storage) Finances(ctx context.Context, userID int64) ([]models.FinanceEntry, error) {
	const op = "storage.sqlite.Finances"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, usuario_id, tipo, valor, descricao, data, categoria, forma_pagamento, parcelas
		FROM financas WHERE usuario_id = ? ORDER BY data DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	entries := make([]models.FinanceEntry, 0)
	for rows.Next() {
		var e models.FinanceEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Amount, &e.Description, &e.Date,
			&e.Category, &e.PaymentMethod, &e.Installments); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// FinanceTotals sums in floating point, as sqlite has no decimal type;
// ROUND keeps the cents exact. ROUND(NULL) stays NULL.
func (s *Storage) FinanceTotals(ctx context.Context, userID int64) (models.FinanceTotals, error) {
	const op = "storage.sqlite.FinanceTotals"

	var totals models.FinanceTotals
	err := s.db.QueryRowContext(ctx,
		`SELECT
			ROUND(SUM(CASE WHEN tipo = ? THEN valor END), 2) AS entrada,
			ROUND(SUM(CASE WHEN tipo = ? THEN valor END), 2) AS saida
		FROM financas WHERE usuario_id = ?`,
		models.Inflow, models.Outflow, userID,
	).Scan(&totals.Inflow, &totals.Outflow)
	if err != nil {
		return models.FinanceTotals{}, fmt.Errorf("%s: %w", op, err)
	}

	return totals, nil
}

func (s *Storage) FinanceCategoryTotals(ctx context.Context, userID int64) ([]models.CategoryTotal, error) {
	const op = "storage.sqlite.FinanceCategoryTotals"

	rows, err := s.db.QueryContext(ctx,
		`SELECT categoria, tipo, ROUND(SUM(valor), 2) FROM financas WHERE usuario_id = ?
		GROUP BY categoria, tipo ORDER BY MIN(id)`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	totals := make([]models.CategoryTotal, 0)
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Type, &t.Total); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return totals, nil
}

func (s *Storage) SaveFinance(ctx context.Context, entry *models.FinanceEntry) (int64, error) {
	const op = "storage.sqlite.SaveFinance"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO financas (usuario_id, tipo, valor, descricao, data, categoria, forma_pagamento, parcelas)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Type, entry.Amount.String(), entry.Description, entry.Date,
		entry.Category, entry.PaymentMethod, entry.Installments,
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

func (s *Storage) DeleteFinance(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeleteFinance"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM financas WHERE id = ?", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
