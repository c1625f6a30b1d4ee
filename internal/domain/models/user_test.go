package models

import (
	"encoding/json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	u := User{
		ID: 7, Name: "Ana", Email: "ana@example.com", PasswordHash: "$2a$10$hash", Balance: decimal.RequireFromString("10.5"),
		Notifications: Notifications{EmailAlerts: true, MonthlyReport: true},
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.JSONEq(t, `{"id":7,"nome":"Ana","email":"ana@example.com","balance":10.5,
		"notif_email":true,"notif_push":false,"notif_relatorio":true}`, string(b))

	assert.Equal(t, PublicUser{ID: 7, Name: "Ana", Email: "ana@example.com"}, u.Public())
}

func TestCalendarEvent(t *testing.T) {
	ev := NewCalendarEvent(Task{Title: "Dentista", Date: "2024-05-02"})

	assert.Equal(t, CalendarEvent{Title: "Dentista", Start: "2024-05-02", AllDay: true, Color: "#FF5722"}, ev)
	assert.True(t, ValidTaskStatus(TaskDone))
	assert.False(t, ValidTaskStatus(2))
}

func TestDecimalsEncodeAsNumbers(t *testing.T) {
	b, err := json.Marshal(FinanceEntry{Amount: decimal.RequireFromString("12.34")})
	require.NoError(t, err)

	assert.Contains(t, string(b), `"valor":12.34`)
	assert.NotContains(t, string(b), `"valor":"12.34"`)
}
