package api

import (
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/shopspring/decimal"
	"net/http"
)

type CreateFinanceRequest struct {
	UserID        int64           `json:"usuario_id"`
	Type          string          `json:"tipo"`
	Amount        decimal.Decimal `json:"valor"`
	Description   string          `json:"descricao"`
	Date          string          `json:"data"`
	Category      string          `json:"categoria"`
	PaymentMethod string          `json:"forma_pagamento"`
	Installments  int             `json:"parcelas"`
}

func (s *APIServer) financesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		entries, err := s.storage.Finances(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to list finances", err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// financeTotalsHandler reports null for a type the user has no entries of.
func (s *APIServer) financeTotalsHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		totals, err := s.storage.FinanceTotals(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to sum finances", err)
			return
		}

		writeJSON(w, http.StatusOK, totals)
	}
}

func (s *APIServer) financeCategoriesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		totals, err := s.storage.FinanceCategoryTotals(r.Context(), userID)
		if err != nil {
			s.internalError(w, r, "Failed to sum finances by category", err)
			return
		}

		writeJSON(w, http.StatusOK, models.SummarizeByCategory(totals))
	}
}

func (s *APIServer) createFinanceHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateFinanceRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if !models.ValidFinanceType(req.Type) {
			writeError(w, http.StatusBadRequest, msgBadFinanceType)
			return
		}

		installments := req.Installments
		if installments < 1 {
			installments = 1
		}

		_, err := s.storage.SaveFinance(r.Context(), &models.FinanceEntry{
			UserID:        req.UserID,
			Type:          req.Type,
			Amount:        req.Amount,
			Description:   req.Description,
			Date:          req.Date,
			Category:      req.Category,
			PaymentMethod: req.PaymentMethod,
			Installments:  installments,
		})
		if err != nil {
			s.internalError(w, r, "Failed to save finance entry", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}

func (s *APIServer) deleteFinanceHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := s.mutator.DeleteFinance(r.Context(), id); err != nil {
			s.internalError(w, r, "Failed to delete finance entry", err)
			return
		}

		writeJSON(w, http.StatusOK, success)
	}
}
