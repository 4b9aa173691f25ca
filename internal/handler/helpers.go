package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/dto"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondServiceError maps an error to its category's HTTP status and
// machine code. Storage failures keep a generic message; the cause is
// already logged by the request logger.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrValidation):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	case errors.Is(err, my_errors.ErrNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrConflict):
		respondError(w, http.StatusConflict, dto.ErrCodeConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeStore, "internal server error")
	}
}
