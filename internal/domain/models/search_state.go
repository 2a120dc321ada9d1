package models

import "fmt"

// вид состояния представления поиска
type StateKind int

const (
	StateIdle StateKind = iota
	StateSubmitting
	StateSuccess
	StateFailure
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// SearchState - размеченное объединение Idle | Submitting | Success(ResultSet) | Failure(message)
// результаты заполнены только у Success, сообщение - только у Failure
type SearchState struct {
	kind    StateKind
	results ResultSet
	message string
}

func Idle() SearchState {
	return SearchState{kind: StateIdle}
}

func Submitting() SearchState {
	return SearchState{kind: StateSubmitting}
}

func Success(results ResultSet) SearchState {
	return SearchState{kind: StateSuccess, results: results}
}

func Failure(message string) SearchState {
	return SearchState{kind: StateFailure, message: message}
}

func (s SearchState) Kind() StateKind {
	return s.kind
}

func (s SearchState) IsLoading() bool {
	return s.kind == StateSubmitting
}

// результаты поиска, ok=false для любого состояния кроме Success
func (s SearchState) Results() (ResultSet, bool) {
	if s.kind != StateSuccess {
		return ResultSet{}, false
	}
	return s.results, true
}

// сообщение об ошибке, ok=false для любого состояния кроме Failure
func (s SearchState) Error() (string, bool) {
	if s.kind != StateFailure {
		return "", false
	}
	return s.message, true
}

// запрос завершён (успехом или ошибкой)
func (s SearchState) IsResolved() bool {
	return s.kind == StateSuccess || s.kind == StateFailure
}

func (s SearchState) String() string {
	switch s.kind {
	case StateSuccess:
		return fmt.Sprintf("success(%d vacancies)", s.results.Len())
	case StateFailure:
		return fmt.Sprintf("failure(%q)", s.message)
	default:
		return s.kind.String()
	}
}
