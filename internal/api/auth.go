package api

import (
	"errors"
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/datefy/datefy-api/internal/lib/password"
	"github.com/datefy/datefy-api/internal/storage"
	"log/slog"
	"net/http"
)

type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResponse carries the public profile only; no token or cookie is issued.
type LoginResponse struct {
	Success bool              `json:"sucesso"`
	User    models.PublicUser `json:"usuario"`
}

func (s *APIServer) registerHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		hash, err := password.Hash(req.Password)
		if err != nil {
			s.internalError(w, r, "Failed to hash password", err)
			return
		}

		id, err := s.storage.SaveUser(r.Context(), req.Name, req.Email, hash)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				writeError(w, http.StatusBadRequest, msgEmailTaken)
				return
			}
			s.internalError(w, r, "Failed to save user", err)
			return
		}

		s.log(r).Info("Register new user", slog.Int64("id", id))

		writeJSON(w, http.StatusOK, success)
	}
}

func (s *APIServer) loginHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := s.storage.UserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				writeError(w, http.StatusBadRequest, msgUserNotFound)
				return
			}
			s.internalError(w, r, "Failed to get user", err)
			return
		}

		if err := password.Compare(user.PasswordHash, req.Password); err != nil {
			if errors.Is(err, password.ErrMismatch) {
				writeError(w, http.StatusBadRequest, msgWrongPassword)
				return
			}
			s.internalError(w, r, "Failed to compare password", err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Success: true, User: user.Public()})
	}
}
