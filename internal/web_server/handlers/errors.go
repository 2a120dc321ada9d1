package handlers

import (
	"errors"
	"net/http"
)

// Package-level errors
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrSubmitInProgress  = errors.New("search is already in progress")
	ErrSessionNotStarted = errors.New("search session is not started")
)

type APIError struct {
	Code    string `json:"code"`    // для фронтенда: "SEARCH_IN_PROGRESS"
	Message string `json:"message"` // для пользователя
}

// функция - маппер для формирования нужного результата в зависимости от типа ошибки
func ToAPIError(err error) (int, APIError) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, APIError{
			Code:    "INVALID_REQUEST",
			Message: "Request body must be JSON like {\"query\": \"...\"}",
		}
	case errors.Is(err, ErrSubmitInProgress):
		return http.StatusConflict, APIError{
			Code:    "SEARCH_IN_PROGRESS",
			Message: "Please wait for the current search to finish",
		}
	default:
		return http.StatusInternalServerError, APIError{
			Code:    "INTERNAL_ERROR",
			Message: "Something went wrong",
		}
	}
}
