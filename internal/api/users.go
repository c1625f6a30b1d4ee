package api

import (
	"errors"
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/datefy/datefy-api/internal/lib/password"
	"github.com/datefy/datefy-api/internal/storage"
	"github.com/shopspring/decimal"
	"net/http"
)

type UpdateUserRequest struct {
	Name    string          `json:"nome"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

type PreferencesRequest struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	EmailAlerts     bool   `json:"notif_email"`
	PushAlerts      bool   `json:"notif_push"`
	MonthlyReport   bool   `json:"notif_relatorio"`
	CurrentPassword string `json:"senha_atual"`
	NewPassword     string `json:"nova_senha"`
	ConfirmPassword string `json:"confirmar_senha"`
}

// userHandler answers 200 with an empty body when the user does not exist.
func (s *APIServer) userHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		user, err := s.storage.User(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				return
			}
			s.internalError(w, r, "Failed to get user", err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func (s *APIServer) updateUserHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := s.storage.UpdateUser(r.Context(), id, req.Name, req.Email, req.Balance); err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				writeError(w, http.StatusBadRequest, msgEmailTaken)
				return
			}
			s.internalError(w, r, "Failed to update user", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}

// preferencesHandler saves the settings page. The password only changes when
// nova_senha is sent, matches confirmar_senha and senha_atual is correct.
func (s *APIServer) preferencesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req PreferencesRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := s.storage.User(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, msgUserNotFound)
				return
			}
			s.internalError(w, r, "Failed to get user", err)
			return
		}

		prefs := models.Preferences{
			Name:  req.Name,
			Email: req.Email,
			Notifications: models.Notifications{
				EmailAlerts:   req.EmailAlerts,
				PushAlerts:    req.PushAlerts,
				MonthlyReport: req.MonthlyReport,
			},
		}

		if req.NewPassword != "" {
			if req.NewPassword != req.ConfirmPassword {
				writeError(w, http.StatusBadRequest, msgPasswordsDiffer)
				return
			}

			if err := password.Compare(user.PasswordHash, req.CurrentPassword); err != nil {
				if errors.Is(err, password.ErrMismatch) {
					writeError(w, http.StatusBadRequest, msgWrongPassword)
					return
				}
				s.internalError(w, r, "Failed to compare password", err)
				return
			}

			prefs.PasswordHash, err = password.Hash(req.NewPassword)
			if err != nil {
				s.internalError(w, r, "Failed to hash password", err)
				return
			}
		}

		if err := s.storage.UpdatePreferences(r.Context(), id, prefs); err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				writeError(w, http.StatusBadRequest, msgEmailTaken)
				return
			}
			s.internalError(w, r, "Failed to save preferences", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}
