package api

import (
	"errors"
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/datefy/datefy-api/internal/storage"
	"net/http"
)

const dateLayout = "2006-01-02"

func (s *APIServer) dashboardHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		user, err := s.storage.User(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, msgUserNotFound)
				return
			}
			s.internalError(w, r, "Failed to get user", err)
			return
		}

		totals, err := s.storage.FinanceTotals(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to sum finances", err)
			return
		}

		today, err := s.storage.CountPendingTasksOn(r.Context(), userID, s.now().Format(dateLayout))
		if err != nil {
			s.internalError(w, r, "Failed to count today's tasks", err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewDashboard(user.Name, totals, today))
	}
}
