package api

import (
	"github.com/datefy/datefy-api/internal/domain/models"
	"net/http"
)

const recentTasksLimit = 8

type CreateTaskRequest struct {
	UserID      int64  `json:"usuario_id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Date        string `json:"data"`
	Category    string `json:"categoria"`
}

func (s *APIServer) tasksHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		tasks, err := s.storage.Tasks(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to list tasks", err)
			return
		}

		writeJSON(w, http.StatusOK, tasks)
	}
}

// recentTasksHandler lists the most recently added tasks, whatever their date.
func (s *APIServer) recentTasksHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		tasks, err := s.storage.RecentTasks(r.Context(), userID, recentTasksLimit)
		if err != nil {
			s.internalError(w, r, "Failed to list recent tasks", err)
			return
		}

		writeJSON(w, http.StatusOK, tasks)
	}
}

func (s *APIServer) calendarHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		tasks, err := s.storage.PendingTasks(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to list pending tasks", err)
			return
		}

		events := make([]models.CalendarEvent, 0, len(tasks))
		for _, t := range tasks {
			events = append(events, models.NewCalendarEvent(t))
		}

		writeJSON(w, http.StatusOK, events)
	}
}

func (s *APIServer) createTaskHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTaskRequest
		if !decodeBody(w, r, &req) {
			return
		}

		_, err := s.storage.SaveTask(r.Context(), &models.Task{
			UserID:      req.UserID,
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Category:    req.Category,
		})
		if err != nil {
			s.internalError(w, r, "Failed to save task", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}

// editTaskHandler replaces every mutable field; a field left out of the
// body is written as its zero value.
func (s *APIServer) editTaskHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req models.TaskUpdate
		if !decodeBody(w, r, &req) {
			return
		}

		if !models.ValidTaskStatus(req.Status) {
			writeError(w, http.StatusBadRequest, msgBadTaskStatus)
			return
		}

		if err := s.mutator.UpdateTask(r.Context(), id, req); err != nil {
			s.internalError(w, r, "Failed to update task", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}

func (s *APIServer) taskStatusHandler(status int) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := s.mutator.SetTaskStatus(r.Context(), id, status); err != nil {
			s.internalError(w, r, "Failed to set task status", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}

func (s *APIServer) deleteTaskHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := s.mutator.DeleteTask(r.Context(), id); err != nil {
			s.internalError(w, r, "Failed to delete task", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}
