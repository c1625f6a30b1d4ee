package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/datefy/datefy-api/internal/domain/models"
)

func (s *Storage) Finances(ctx context.Context, userID int64) ([]models.FinanceEntry, error) {
	const op = "storage.postgres.Finances"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, usuario_id, tipo, valor, descricao, data, categoria, forma_pagamento, parcelas
		FROM financas WHERE usuario_id = $1 ORDER BY data DESC, id DESC`, userID)
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

func (s *Storage) FinanceTotals(ctx context.Context, userID int64) (models.FinanceTotals, error) {
	const op = "storage.postgres.FinanceTotals"

	var totals models.FinanceTotals
	err := s.db.QueryRowContext(ctx,
		`SELECT
			SUM(CASE WHEN tipo = $2 THEN valor END) AS entrada,
			SUM(CASE WHEN tipo = $3 THEN valor END) AS saida
		FROM financas WHERE usuario_id = $1`,
		userID, models.Inflow, models.Outflow,
	).Scan(&totals.Inflow, &totals.Outflow)
	if err != nil {
		return models.FinanceTotals{}, fmt.Errorf("%s: %w", op, err)
	}

	return totals, nil
}

func (s *Storage) FinanceCategoryTotals(ctx context.Context, userID int64) ([]models.CategoryTotal, error) {
	const op = "storage.postgres.FinanceCategoryTotals"

	rows, err := s.db.QueryContext(ctx,
		`SELECT categoria, tipo, SUM(valor) FROM financas WHERE usuario_id = $1
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
	const op = "storage.postgres.SaveFinance"

	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO financas (usuario_id, tipo, valor, descricao, data, categoria, forma_pagamento, parcelas)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		entry.UserID, entry.Type, entry.Amount, entry.Description, entry.Date,
		entry.Category, entry.PaymentMethod, entry.Installments,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) DeleteFinance(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteFinance"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM financas WHERE id = $1", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
