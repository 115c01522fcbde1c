package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/procureflow/procurement-service/internal/apperrors"

	log "github.com/sirupsen/logrus"
)

// errorResponse описывает тело ошибки с причиной.
type errorResponse struct {
	Message string `json:"reason"`
}

// SendErrorResponse отправляет ошибку в формате JSON.
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		log.WithError(err).Error("failed to encode error response")
	}
}

// StatusForError сопоставляет доменную ошибку с HTTP-статусом.
// Инфраструктурные ошибки отображаются в 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendServiceError отправляет ошибку сервисного слоя с подходящим статусом.
// Текст инфраструктурных ошибок наружу не уходит.
func SendServiceError(w http.ResponseWriter, err error) {
	if apperrors.IsDomain(err) {
		SendErrorResponse(w, StatusForError(err), err.Error())
		return
	}
	SendErrorResponse(w, http.StatusInternalServerError, "internal server error")
}

// ParseLimitOffset обрабатывает limit и offset.
func ParseLimitOffset(limitStr, offsetStr string) (int, int, error) {
	var limit, offset int
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > 50 {
			return 0, 0, fmt.Errorf("invalid limit parameter, must be a positive integer [0:50]")
		}
	} else {
		limit = 5
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset parameter, must be a non-negative integer")
		}
	} else {
		offset = 0
	}

	return limit, offset, nil
}
