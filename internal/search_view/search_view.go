// Package search_view - представление поиска вакансий: запрос пользователя,
// один вызов бэкенда на каждую отправку и состояние Idle | Submitting | Success | Failure.
//
//	Idle / Success / Failure --submit(пустой запрос)--> Failure("Please enter a search query")
//	Idle / Success / Failure --submit(запрос)---------> Submitting
//	Submitting --ответ/ошибка--> Success | Failure
//
// Пока идёт запрос, кнопка поиска недоступна: повторная отправка игнорируется,
// а уже отправленный запрос не отменяется.
package search_view

import (
	"context"
	"fmt"
	"search_ui/internal/domain/models"
	"search_ui/internal/search_client/dto"
	"search_ui/pkg/logging"
	"strings"
	"sync"
)

// SearchClient - бэкенд поиска
type SearchClient interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type SearchView struct {
	mu     sync.Mutex
	client SearchClient
	logger *logging.Logger

	query string
	state models.SearchState
	done  chan struct{} // закрывается, когда текущий запрос завершился
}

// Snapshot - согласованный срез представления для отрисовки
type Snapshot struct {
	Query string
	State models.SearchState
}

func NewSearchView(client SearchClient, logger *logging.Logger) *SearchView {
	return &SearchView{
		client: client,
		logger: logger.With("component", "search_view"),
		state:  models.Idle(),
	}
}

// редактирование запроса; пока идёт поиск, поле ввода заблокировано
func (v *SearchView) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.IsLoading() {
		return
	}
	v.query = query
}

func (v *SearchView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

func (v *SearchView) State() models.SearchState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *SearchView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{Query: v.query, State: v.state}
}

// Begin - нажатие кнопки поиска (или Enter) с текущим запросом.
// Возвращает новое состояние и признак того, что нужно выполнить запрос к бэкенду
// (в этом случае вызывающий обязан вызвать Complete ровно один раз).
func (v *SearchView) Begin(query string) (models.SearchState, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// кнопка недоступна, пока идёт поиск
	if v.state.IsLoading() {
		return v.state, false
	}

	v.query = query

	if strings.TrimSpace(query) == "" {
		v.state = models.Failure(MsgEmptyQuery)
		return v.state, false
	}

	// новый поиск сбрасывает и прошлую ошибку, и прошлые результаты
	v.state = models.Submitting()
	v.done = make(chan struct{})
	return v.state, true
}

// Complete выполняет запрос, начатый Begin, и фиксирует итоговое состояние.
func (v *SearchView) Complete(ctx context.Context, query string) models.SearchState {
	resp, err := v.client.Search(ctx, query)
	if err != nil {
		v.logger.Error("search failed", "query", query, "err", err)
	}

	state := Interpret(resp, err)
	v.logger.Debug("search resolved", "query", query, "state", state.String())

	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = state
	if v.done != nil {
		close(v.done)
		v.done = nil
	}
	return state
}

// Submit - Begin и, если нужно, Complete в текущей горутине
func (v *SearchView) Submit(ctx context.Context, query string) models.SearchState {
	state, started := v.Begin(query)
	if !started {
		return state
	}
	return v.Complete(ctx, query)
}

// Start - Begin и, если нужно, Complete в отдельной горутине.
// возвращает состояние сразу после нажатия (Submitting или ошибка валидации)
func (v *SearchView) Start(ctx context.Context, query string) models.SearchState {
	state, started := v.Begin(query)
	if started {
		go v.Complete(ctx, query)
	}
	return state
}

// канал закрывается, когда текущий запрос завершён; если запроса нет - уже закрыт
func (v *SearchView) Done() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return v.done
}

// кнопка поиска недоступна, пока идёт запрос
func (s Snapshot) ControlDisabled() bool {
	return s.State.IsLoading()
}

// надпись на кнопке: вместо "Search" во время запроса показывается индикатор
func (s Snapshot) ButtonLabel() string {
	if s.State.IsLoading() {
		return LabelSearching
	}
	return LabelSearch
}

// заголовок над таблицей результатов
func ResultsTitle(results models.ResultSet) string {
	return fmt.Sprintf(resultsTitleFmt, results.Len())
}
