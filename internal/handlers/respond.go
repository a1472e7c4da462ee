package handlers

import (
	"Nuremento/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	OpenOn string `json:"openOn,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError маппит ошибки сервисов в HTTP-ответы.
// Всё неизвестное логируется и отдаётся как 500 без подробностей.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	var ve *service.ValidationError
	var le *service.LockedError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Reason, Field: ve.Field})
	case errors.As(err, &le):
		writeJSON(w, http.StatusLocked, errorResponse{Error: "locked", OpenOn: le.OpenOn.String()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not-found"})
	case errors.Is(err, service.ErrStorageDisabled):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "image"})
	default:
		logger.Errorw(op+": service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
