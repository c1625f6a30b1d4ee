package models

import (
	"github.com/shopspring/decimal"
)

// Finance entry types.
const (
	Inflow  = "entrada"
	Outflow = "saida"
)

type FinanceEntry struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"usuario_id"`
	Type          string          `json:"tipo"`
	Amount        decimal.Decimal `json:"valor"`
	Description   string          `json:"descricao"`
	Date          string          `json:"data"`
	Category      string          `json:"categoria"`
	PaymentMethod string          `json:"forma_pagamento"`
	Installments  int             `json:"parcelas"`
}

func ValidFinanceType(t string) bool {
	return t == Inflow || t == Outflow
}

// FinanceTotals holds per-type sums. A side with no rows is null, not zero.
type FinanceTotals struct {
	Inflow  decimal.NullDecimal `json:"entrada"`
	Outflow decimal.NullDecimal `json:"saida"`
}

// Balance returns inflow minus outflow, counting absent sides as zero.
func (t FinanceTotals) Balance() decimal.Decimal {
	return orZero(t.Inflow).Sub(orZero(t.Outflow))
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// CategoryTotal is the sum of one user's entries of a single type in one category.
type CategoryTotal struct {
	Category string
	Type     string
	Total    decimal.Decimal
}

type Category struct {
	Key   string
	Label string
	Color string
}

const (
	uncategorized     = "outras"
	unknownColor      = "#999999"
	categoryPrecision = 2
)

var FinanceCategories = []Category{
	{Key: "salario", Label: "Salário/Trabalho", Color: "#4CAF50"},
	{Key: "casa", Label: "Casa", Color: "#2196F3"},
	{Key: "utilidades", Label: "Utilidades", Color: "#FF9800"},
	{Key: "alimentacao", Label: "Alimentação", Color: "#FF5722"},
	{Key: "transporte", Label: "Transporte", Color: "#9C27B0"},
	{Key: "parcelas", Label: "Créditos / Parcelas", Color: "#795548"},
	{Key: "mercado", Label: "Mercado", Color: "#3F51B5"},
	{Key: "saude", Label: "Saúde", Color: "#E91E63"},
	{Key: "tecnologia", Label: "Tecnologia", Color: "#00BCD4"},
	{Key: "lazer", Label: "Lazer", Color: "#FFC107"},
}

// CategoryChart is the chart-ready net amount per category.
type CategoryChart struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
	Colors []string          `json:"colors"`
}

// SummarizeByCategory nets inflows against outflows per category. Known
// categories come first in their declared order, unknown ones follow in the
// order they first appear. Categories netting to zero are left out.
func SummarizeByCategory(totals []CategoryTotal) CategoryChart {
	type slot struct {
		Category
		net decimal.Decimal
	}

	slots := make([]*slot, 0, len(FinanceCategories))
	byKey := make(map[string]*slot, len(FinanceCategories))
	for _, c := range FinanceCategories {
		s := &slot{Category: c}
		slots = append(slots, s)
		byKey[c.Key] = s
	}

	for _, t := range totals {
		key := t.Category
		if key == "" {
			key = uncategorized
		}
		s, ok := byKey[key]
		if !ok {
			s = &slot{Category: Category{Key: key, Label: key, Color: unknownColor}}
			slots = append(slots, s)
			byKey[key] = s
		}
		if t.Type == Inflow {
			s.net = s.net.Add(t.Total)
		} else {
			s.net = s.net.Sub(t.Total)
		}
	}

	chart := CategoryChart{Labels: []string{}, Values: []decimal.Decimal{}, Colors: []string{}}
	for _, s := range slots {
		if s.net.IsZero() {
			continue
		}
		chart.Labels = append(chart.Labels, s.Label)
		chart.Values = append(chart.Values, s.net.Round(categoryPrecision))
		chart.Colors = append(chart.Colors, s.Color)
	}
	return chart
}
