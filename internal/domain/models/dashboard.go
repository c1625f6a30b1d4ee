package models

import "github.com/shopspring/decimal"

type Dashboard struct {
	Name       string          `json:"nome"`
	Inflow     decimal.Decimal `json:"entradas"`
	Outflow    decimal.Decimal `json:"saidas"`
	Balance    decimal.Decimal `json:"saldo"`
	TasksToday int             `json:"tarefas_do_dia"`
}

func NewDashboard(name string, totals FinanceTotals, tasksToday int) Dashboard {
	return Dashboard{
		Name:       name,
		Inflow:     orZero(totals.Inflow),
		Outflow:    orZero(totals.Outflow),
		Balance:    totals.Balance(),
		TasksToday: tasksToday,
	}
}
