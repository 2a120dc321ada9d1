package search_client

import (
	"errors"
	"fmt"
)

var (
	ErrTransport         = errors.New("search backend is unreachable")
	ErrMalformedResponse = errors.New("search backend returned malformed response")
	ErrResponseTooLarge  = errors.New("search backend response is too large")
)

// ServerError - бэкенд ответил не-2xx статусом
// Message - значение поля error из тела ответа (пусто, если его нет)
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("search backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("search backend returned status %d: %s", e.StatusCode, e.Message)
}

// сообщение сервера, если оно было в ответе (для показа пользователю)
func ServerMessage(err error) (string, bool) {
	var srvErr *ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message, true
	}
	return "", false
}
