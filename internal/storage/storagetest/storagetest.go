// Package storagetest holds the behaviour every storage driver must share,
// written once as a testify suite and run by each driver's tests.
package storagetest

import (
	"context"
	"fmt"
	"github.com/datefy/datefy-api/internal/api"
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/datefy/datefy-api/internal/lib/password"
	"github.com/datefy/datefy-api/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Storage is the gateway the API server uses, plus the lifecycle the
// binaries manage.
type Storage interface {
	api.Storage
	Stop() error
}

// Suite runs against a fresh, empty store for every test.
type Suite struct {
	suite.Suite

	// Open returns an empty store.
	Open func() (Storage, error)

	store Storage
	ctx   context.Context
}

func (s *Suite) SetupTest() {
	store, err := s.Open()
	s.Require().NoError(err, "failed to open storage")
	s.store = store
	s.ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Stop()
	}
}

func (s *Suite) newUser(email string) int64 {
	hash, err := password.Hash("s3nha")
	s.Require().NoError(err)

	id, err := s.store.SaveUser(s.ctx, "Ana", email, hash)
	s.Require().NoError(err)
	return id
}

func (s *Suite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func (s *Suite) TestSaveUserDuplicateEmail() {
	first, err := s.store.SaveUser(s.ctx, "Ana", "ana@example.com", "hash")
	s.Require().NoError(err)
	s.NotZero(first)

	_, err = s.store.SaveUser(s.ctx, "Outra Ana", "ana@example.com", "hash2")
	s.ErrorIs(err, storage.ErrUserExists)
}

func (s *Suite) TestUserLookups() {
	id := s.newUser("ana@example.com")

	byEmail, err := s.store.UserByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Equal(id, byEmail.ID)
	s.Equal("Ana", byEmail.Name)
	s.NoError(password.Compare(byEmail.PasswordHash, "s3nha"))
	s.True(byEmail.Balance.IsZero())

	byID, err := s.store.User(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("ana@example.com", byID.Email)

	_, err = s.store.UserByEmail(s.ctx, "ghost@example.com")
	s.ErrorIs(err, storage.ErrUserNotFound)

	_, err = s.store.User(s.ctx, id+100)
	s.ErrorIs(err, storage.ErrUserNotFound)
}

func (s *Suite) TestUpdateUser() {
	id := s.newUser("ana@example.com")
	other := s.newUser("bia@example.com")

	err := s.store.UpdateUser(s.ctx, id, "Ana Maria", "anamaria@example.com", decimal.RequireFromString("1520.75"))
	s.Require().NoError(err)

	u, err := s.store.User(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Ana Maria", u.Name)
	s.Equal("anamaria@example.com", u.Email)
	s.Equal("1520.75", u.Balance.String())

	s.NoError(s.store.UpdateUser(s.ctx, id+100, "x", "x@example.com", decimal.Zero), "missing user is not an error")

	err = s.store.UpdateUser(s.ctx, other, "Bia", "anamaria@example.com", decimal.Zero)
	s.ErrorIs(err, storage.ErrUserExists)
}

func (s *Suite) TestUpdatePreferences() {
	id := s.newUser("ana@example.com")
	other := s.newUser("bia@example.com")

	prefs := models.Preferences{
		Name:          "Ana Maria",
		Email:         "anamaria@example.com",
		Notifications: models.Notifications{EmailAlerts: true, PushAlerts: true},
	}
	s.Require().NoError(s.store.UpdatePreferences(s.ctx, id, prefs))

	u, err := s.store.User(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Ana Maria", u.Name)
	s.Equal("anamaria@example.com", u.Email)
	s.Equal(models.Notifications{EmailAlerts: true, PushAlerts: true}, u.Notifications)
	s.NoError(password.Compare(u.PasswordHash, "s3nha"), "empty hash keeps the password")

	hash, err := password.Hash("nova")
	s.Require().NoError(err)
	prefs.PasswordHash = hash
	prefs.Notifications = models.Notifications{MonthlyReport: true}
	s.Require().NoError(s.store.UpdatePreferences(s.ctx, id, prefs))

	u, err = s.store.User(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(models.Notifications{MonthlyReport: true}, u.Notifications)
	s.NoError(password.Compare(u.PasswordHash, "nova"))

	err = s.store.UpdatePreferences(s.ctx, other, models.Preferences{Name: "Bia", Email: "anamaria@example.com"})
	s.ErrorIs(err, storage.ErrUserExists)
}

func (s *Suite) saveTask(userID int64, title, date string) int64 {
	id, err := s.store.SaveTask(s.ctx, &models.Task{UserID: userID, Title: title, Description: "d", Date: date, Category: "casa"})
	s.Require().NoError(err)
	return id
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func (s *Suite) TestTasksOrderedByDateDesc() {
	user := s.newUser("ana@example.com")
	other := s.newUser("bia@example.com")

	s.saveTask(user, "b", "2024-03-01")
	s.saveTask(user, "a", "2024-05-01")
	s.saveTask(user, "c", "2024-01-15")
	s.saveTask(other, "x", "2024-04-01")

	tasks, err := s.store.Tasks(s.ctx, user)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, titles(tasks))
	s.Equal(models.TaskPending, tasks[0].Status)
	s.Equal(user, tasks[0].UserID)
	s.False(tasks[0].CreatedAt.IsZero())

	empty, err := s.store.Tasks(s.ctx, user+100)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *Suite) TestRecentTasksByCreationOrder() {
	user := s.newUser("ana@example.com")

	for i := 0; i < 10; i++ {
		// Dates go backwards so creation order and date order disagree.
		s.saveTask(user, fmt.Sprintf("t%d", i), fmt.Sprintf("2024-01-%02d", 20-i))
	}

	recent, err := s.store.RecentTasks(s.ctx, user, 8)
	s.Require().NoError(err)
	s.Equal([]string{"t9", "t8", "t7", "t6", "t5", "t4", "t3", "t2"}, titles(recent))
}

func (s *Suite) TestUpdateTaskReplacesAllFields() {
	user := s.newUser("ana@example.com")
	id := s.saveTask(user, "old", "2024-01-01")

	upd := models.TaskUpdate{Title: "new", Description: "nova", Date: "2024-02-02", Category: "lazer", Status: models.TaskDone}
	s.Require().NoError(s.store.UpdateTask(s.ctx, id, upd))

	tasks, err := s.store.Tasks(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	got := tasks[0]
	s.Equal(upd, models.TaskUpdate{Title: got.Title, Description: got.Description, Date: got.Date, Category: got.Category, Status: got.Status})

	s.NoError(s.store.UpdateTask(s.ctx, id+100, upd), "missing task is not an error")
}

func (s *Suite) TestTaskStatusAndCalendar() {
	user := s.newUser("ana@example.com")
	done := s.saveTask(user, "done", "2024-06-01")
	s.saveTask(user, "later", "2024-06-03")
	s.saveTask(user, "today", "2024-06-02")

	s.Require().NoError(s.store.SetTaskStatus(s.ctx, done, models.TaskDone))

	pending, err := s.store.PendingTasks(s.ctx, user)
	s.Require().NoError(err)
	s.Equal([]string{"today", "later"}, titles(pending))

	count, err := s.store.CountPendingTasksOn(s.ctx, user, "2024-06-02")
	s.Require().NoError(err)
	s.Equal(1, count)

	count, err = s.store.CountPendingTasksOn(s.ctx, user, "2024-06-01")
	s.Require().NoError(err)
	s.Zero(count)

	s.Require().NoError(s.store.SetTaskStatus(s.ctx, done, models.TaskPending))
	pending, err = s.store.PendingTasks(s.ctx, user)
	s.Require().NoError(err)
	s.Len(pending, 3)
}

func (s *Suite) TestDeleteTask() {
	user := s.newUser("ana@example.com")
	keep := s.saveTask(user, "keep", "2024-01-01")
	drop := s.saveTask(user, "drop", "2024-01-02")

	s.Require().NoError(s.store.DeleteTask(s.ctx, drop))
	s.NoError(s.store.DeleteTask(s.ctx, drop), "deleting twice is not an error")

	tasks, err := s.store.Tasks(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(keep, tasks[0].ID)
}

func (s *Suite) saveFinance(userID int64, kind, amount, category, date string) int64 {
	id, err := s.store.SaveFinance(s.ctx, &models.FinanceEntry{
		UserID:       userID,
		Type:         kind,
		Amount:       decimal.RequireFromString(amount),
		Description:  kind + " " + amount,
		Date:         date,
		Category:     category,
		Installments: 1,
	})
	s.Require().NoError(err)
	return id
}

func (s *Suite) TestFinanceTotals() {
	user := s.newUser("ana@example.com")
	s.saveFinance(user, models.Inflow, "100", "salario", "2024-01-01")
	s.saveFinance(user, models.Outflow, "40", "mercado", "2024-01-02")

	totals, err := s.store.FinanceTotals(s.ctx, user)
	s.Require().NoError(err)
	s.True(totals.Inflow.Valid)
	s.True(totals.Outflow.Valid)
	s.Equal("100", totals.Inflow.Decimal.String())
	s.Equal("40", totals.Outflow.Decimal.String())

	onlyIn := s.newUser("bia@example.com")
	s.saveFinance(onlyIn, models.Inflow, "10.10", "", "2024-01-01")
	s.saveFinance(onlyIn, models.Inflow, "0.20", "", "2024-01-01")

	totals, err = s.store.FinanceTotals(s.ctx, onlyIn)
	s.Require().NoError(err)
	s.Equal("10.3", totals.Inflow.Decimal.String())
	s.False(totals.Outflow.Valid, "outflow must be absent, not zero")

	totals, err = s.store.FinanceTotals(s.ctx, onlyIn+100)
	s.Require().NoError(err)
	s.False(totals.Inflow.Valid)
	s.False(totals.Outflow.Valid)
}

func (s *Suite) TestFinancesListAndDelete() {
	user := s.newUser("ana@example.com")
	s.saveFinance(user, models.Outflow, "12.34", "mercado", "2024-02-01")
	newest := s.saveFinance(user, models.Inflow, "1000", "salario", "2024-03-01")

	entries, err := s.store.Finances(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(newest, entries[0].ID)
	s.Equal("12.34", entries[1].Amount.String())
	s.Equal("mercado", entries[1].Category)
	s.Equal(1, entries[1].Installments)

	s.Require().NoError(s.store.DeleteFinance(s.ctx, newest))
	s.NoError(s.store.DeleteFinance(s.ctx, newest+100))

	entries, err = s.store.Finances(s.ctx, user)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *Suite) TestFinanceCategoryTotals() {
	user := s.newUser("ana@example.com")
	s.saveFinance(user, models.Outflow, "30", "mercado", "2024-01-01")
	s.saveFinance(user, models.Inflow, "500", "salario", "2024-01-02")
	s.saveFinance(user, models.Outflow, "20", "mercado", "2024-01-03")

	totals, err := s.store.FinanceCategoryTotals(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(totals, 2)
	s.Equal("mercado", totals[0].Category)
	s.Equal(models.Outflow, totals[0].Type)
	s.Equal("50", totals[0].Total.String())
	s.Equal("salario", totals[1].Category)
}

func (s *Suite) TestReminderRoundTrip() {
	user := s.newUser("ana@example.com")

	later, err := s.store.SaveReminder(s.ctx, &models.Reminder{UserID: user, Type: "y", Description: "depois", Date: "2024-02-01"})
	s.Require().NoError(err)
	id, err := s.store.SaveReminder(s.ctx, &models.Reminder{UserID: user, Type: "x", Description: "d", Date: "2024-01-01"})
	s.Require().NoError(err)

	reminders, err := s.store.Reminders(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(reminders, 2)
	s.Equal(models.Reminder{ID: id, UserID: user, Type: "x", Description: "d", Date: "2024-01-01"}, reminders[0])
	s.Equal(later, reminders[1].ID)

	s.Require().NoError(s.store.DeleteReminder(s.ctx, id))

	reminders, err = s.store.Reminders(s.ctx, user)
	s.Require().NoError(err)
	s.Require().Len(reminders, 1)
	s.Equal(later, reminders[0].ID)
}
