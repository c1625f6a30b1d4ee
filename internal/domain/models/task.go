package models

import "time"

// Task status values. New rows get TaskPending from the column default.
const (
	TaskPending = 0
	TaskDone    = 1
)

type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"usuario_id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Date        string    `json:"data"`
	Category    string    `json:"categoria"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskUpdate carries every mutable field of a Task; edits always replace all of them.
type TaskUpdate struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Date        string `json:"data"`
	Category    string `json:"categoria"`
	Status      int    `json:"status"`
}

func ValidTaskStatus(status int) bool {
	return status == TaskPending || status == TaskDone
}

// CalendarEvent is a pending task as shown on the dashboard calendar.
type CalendarEvent struct {
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
	Color  string `json:"color"`
}

const calendarColor = "#FF5722"

func NewCalendarEvent(t Task) CalendarEvent {
	return CalendarEvent{Title: t.Title, Start: t.Date, AllDay: true, Color: calendarColor}
}
