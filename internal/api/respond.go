package api

import (
	"encoding/json"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
)

// Client-facing messages.
const (
	msgEmailTaken       = "Email já cadastrado."
	msgUserNotFound     = "Usuário não encontrado"
	msgWrongPassword    = "Senha incorreta"
	msgPasswordsDiffer  = "As senhas não coincidem"
	msgBadRequest       = "Formato de requisição inválido"
	msgBadID            = "Identificador inválido"
	msgBadTaskStatus    = "Status inválido"
	msgBadFinanceType   = "Tipo inválido"
	msgNotFound         = "Rota não encontrada"
	msgMethodNotAllowed = "Método não permitido"
	msgInternal         = "Erro interno do servidor"
)

type SuccessResponse struct {
	Success bool `json:"sucesso"`
}

type ErrorResponse struct {
	Error string `json:"erro"`
}

var success = SuccessResponse{Success: true}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// internalError logs err and answers with an opaque 500.
func (s *APIServer) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log(r).Error(msg, "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return false
	}
	return true
}

// pathID parses the numeric path variable name, answering 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgBadID)
		return 0, false
	}
	return id, true
}
