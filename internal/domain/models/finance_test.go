package models

import (
	"encoding/json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFinanceTotalsJSON(t *testing.T) {
	totals := FinanceTotals{
		Inflow:  decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Outflow: decimal.NewNullDecimal(decimal.NewFromInt(40)),
	}
	b, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entrada":100,"saida":40}`, string(b))

	onlyInflow := FinanceTotals{Inflow: decimal.NewNullDecimal(decimal.NewFromInt(100))}
	b, err = json.Marshal(onlyInflow)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entrada":100,"saida":null}`, string(b))
}

func TestFinanceTotalsBalance(t *testing.T) {
	assert.True(t, FinanceTotals{}.Balance().IsZero())

	totals := FinanceTotals{Outflow: decimal.NewNullDecimal(decimal.RequireFromString("12.50"))}
	assert.Equal(t, "-12.5", totals.Balance().String())
}

func TestValidFinanceType(t *testing.T) {
	assert.True(t, ValidFinanceType(Inflow))
	assert.True(t, ValidFinanceType(Outflow))
	assert.False(t, ValidFinanceType("transfer"))
	assert.False(t, ValidFinanceType(""))
}

func TestSummarizeByCategory(t *testing.T) {
	chart := SummarizeByCategory([]CategoryTotal{
		{Category: "viagem", Type: Outflow, Total: decimal.NewFromInt(300)},
		{Category: "salario", Type: Inflow, Total: decimal.NewFromInt(5000)},
		{Category: "mercado", Type: Outflow, Total: decimal.RequireFromString("120.456")},
		{Category: "", Type: Outflow, Total: decimal.NewFromInt(10)},
		{Category: "lazer", Type: Inflow, Total: decimal.NewFromInt(50)},
		{Category: "lazer", Type: Outflow, Total: decimal.NewFromInt(50)},
	})

	assert.Equal(t, []string{"Salário/Trabalho", "Mercado", "viagem", "outras"}, chart.Labels)
	assert.Equal(t, []string{"#4CAF50", "#3F51B5", "#999999", "#999999"}, chart.Colors)

	values := make([]string, len(chart.Values))
	for i, v := range chart.Values {
		values[i] = v.String()
	}
	assert.Equal(t, []string{"5000", "-120.46", "-300", "-10"}, values)
}

func TestSummarizeByCategoryEmpty(t *testing.T) {
	b, err := json.Marshal(SummarizeByCategory(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":[],"values":[],"colors":[]}`, string(b))
}

func TestNewDashboard(t *testing.T) {
	d := NewDashboard("Ana", FinanceTotals{Inflow: decimal.NewNullDecimal(decimal.NewFromInt(100))}, 2)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nome":"Ana","entradas":100,"saidas":0,"saldo":100,"tarefas_do_dia":2}`, string(b))
}
