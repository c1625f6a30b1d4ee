package api

import (
	"github.com/datefy/datefy-api/internal/domain/models"
	"net/http"
)

type CreateReminderRequest struct {
	UserID      int64  `json:"usuario_id"`
	Type        string `json:"tipo"`
	Description string `json:"descricao"`
	Date        string `json:"data"`
}

// remindersHandler lists soonest first, unlike tasks and finances.
func (s *APIServer) remindersHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		reminders, err := s.storage.Reminders(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to list reminders", err)
			return
		}

		writeJSON(w, http.StatusOK, reminders)
	}
}

func (s *APIServer) createReminderHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateReminderRequest
		if !decodeBody(w, r, &req) {
			return
		}

		_, err := s.storage.SaveReminder(r.Context(), &models.Reminder{
			UserID:      req.UserID,
			Type:        req.Type,
			Description: req.Description,
			Date:        req.Date,
		})
		if err != nil {
			s.internalError(w, r, "Failed to save reminder", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}

func (s *APIServer) deleteReminderHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := s.mutator.DeleteReminder(r.Context(), id); err != nil {
			s.internalError(w, r, "Failed to delete reminder", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}
