package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// SearchRequest - DTO исходящего запроса к бэкенду поиска
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse - DTO ответа бэкенда поиска
// Error и Vacancies необязательны, Note бэкенд ставит, когда отдаёт запасные (кэшированные) данные
type SearchResponse struct {
	Error     string       `json:"error,omitempty"`
	Vacancies []VacancyDTO `json:"vacancies,omitempty"`
	Note      string       `json:"note,omitempty"`
}

// VacancyDTO - вакансия в ответе бэкенда
type VacancyDTO struct {
	Name       FlexString `json:"name"`
	Employer   FlexString `json:"employer"`
	Salary     FlexString `json:"salary"` // уже отформатирована бэкендом
	Experience FlexString `json:"experience"`
	Skills     []string   `json:"skills"`
}

// ErrorBody - тело ответа с ошибкой (для не-2xx статусов)
type ErrorBody struct {
	Error string `json:"error"`
}

// FlexString - строковое поле, которое бэкенд иногда присылает числом, булевым значением или null
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*s = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = FlexString(str)
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		*s = FlexString(trimmed)
	default:
		// число: оставляем запись как есть, без экспоненты для целых
		var num json.Number
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return err
		}
		if i, err := num.Int64(); err == nil {
			*s = FlexString(strconv.FormatInt(i, 10))
			return nil
		}
		*s = FlexString(num.String())
	}

	return nil
}

func (s FlexString) String() string {
	return string(s)
}
