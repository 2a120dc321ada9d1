package tui

import (
	"bytes"
	"context"
	"search_ui/internal/domain/models"
	"search_ui/internal/search_client/dto"
	"search_ui/internal/search_view"
	"search_ui/pkg/logging"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchClient for testing
type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchResponse), args.Error(1)
}

func backendDevResponse() *dto.SearchResponse {
	return &dto.SearchResponse{
		Vacancies: []dto.VacancyDTO{{
			Name:       "Backend Dev",
			Employer:   "Acme",
			Salary:     "100000",
			Experience: "3 years",
			Skills:     []string{"Python", "SQL"},
		}},
		Note: "Using cached data",
	}
}

func newTestModel(client search_view.SearchClient) Model {
	return New(context.Background(), search_view.NewSearchView(client, logging.NewNop()))
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

// выполняет команду (и вложенные batch-команды), возвращает первое сообщение о завершении поиска
func findResolved(cmd tea.Cmd) (searchResolvedMsg, bool) {
	if cmd == nil {
		return searchResolvedMsg{}, false
	}

	switch msg := cmd().(type) {
	case searchResolvedMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if resolved, ok := findResolved(c); ok {
				return resolved, true
			}
		}
	}
	return searchResolvedMsg{}, false
}

func TestInitialView(t *testing.T) {
	m := newTestModel(&MockSearchClient{})

	out := m.View()
	assert.Contains(t, out, "HH.ru Parser")
	assert.Contains(t, out, "Enter search query")
	assert.Contains(t, out, "Search")
	assert.NotContains(t, out, "Searching...")
}

func TestEnterWithEmptyQueryShowsValidationError(t *testing.T) {
	client := &MockSearchClient{}
	m := newTestModel(client)

	m = typeText(t, m, "   ")
	m, cmd := pressEnter(t, m)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), search_view.MsgEmptyQuery)
	client.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchFlow(t *testing.T) {
	client := &MockSearchClient{}
	client.On("Search", mock.Anything, "Python Developer").Return(backendDevResponse(), nil).Once()
	m := newTestModel(client)

	m = typeText(t, m, "Python Developer")
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)

	// пока запрос не завершён - индикатор вместо надписи, ввод заблокирован
	assert.True(t, m.view.State().IsLoading())
	assert.Contains(t, m.View(), "Searching...")
	m = typeText(t, m, "x")
	assert.Equal(t, "Python Developer", m.input.Value())

	resolved, ok := findResolved(cmd)
	require.True(t, ok)

	next, _ := m.Update(resolved)
	m = next.(Model)

	out := m.View()
	assert.NotContains(t, out, "Searching...")
	assert.Contains(t, out, "Search Results (1 vacancies found)")
	assert.Contains(t, out, "Using cached data")
	assert.Contains(t, out, "Backend Dev")
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Python, SQL", m.table.Rows()[0][4])
	client.AssertExpectations(t)
}

func TestSecondEnterWhileSearchingIsIgnored(t *testing.T) {
	client := &MockSearchClient{}
	client.On("Search", mock.Anything, "go").Return(backendDevResponse(), nil).Once()
	m := newTestModel(client)

	m = typeText(t, m, "go")
	m, first := pressEnter(t, m)
	require.NotNil(t, first)

	m, second := pressEnter(t, m)
	assert.Nil(t, second)

	_, ok := findResolved(first)
	require.True(t, ok)
	client.AssertNumberOfCalls(t, "Search", 1)
}

func TestErrorClearsPreviousResults(t *testing.T) {
	client := &MockSearchClient{}
	client.On("Search", mock.Anything, "go").Return(backendDevResponse(), nil).Once()
	client.On("Search", mock.Anything, "gox").Return(&dto.SearchResponse{Error: "Parser is down"}, nil).Once()
	m := newTestModel(client)

	m = typeText(t, m, "go")
	m, cmd := pressEnter(t, m)
	resolved, _ := findResolved(cmd)
	next, _ := m.Update(resolved)
	m = next.(Model)
	require.Len(t, m.table.Rows(), 1)

	m = typeText(t, m, "x")
	m, cmd = pressEnter(t, m)
	assert.Empty(t, m.table.Rows())

	resolved, _ = findResolved(cmd)
	next, _ = m.Update(resolved)
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "Parser is down")
	assert.NotContains(t, out, "Backend Dev")
}

func TestErrorFieldWinsOverVacancies(t *testing.T) {
	resp := backendDevResponse()
	resp.Error = "Search service is temporarily unavailable"

	client := &MockSearchClient{}
	client.On("Search", mock.Anything, "go").Return(resp, nil).Once()
	m := newTestModel(client)

	m = typeText(t, m, "go")
	m, cmd := pressEnter(t, m)
	resolved, ok := findResolved(cmd)
	require.True(t, ok)
	next, _ := m.Update(resolved)
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "Search service is temporarily unavailable")
	assert.NotContains(t, out, "Backend Dev")
	assert.NotContains(t, out, "Search Results")
	assert.Empty(t, m.table.Rows())
}

func TestLongQueryIsNotTruncated(t *testing.T) {
	query := strings.Repeat("python ", 100)

	client := &MockSearchClient{}
	client.On("Search", mock.Anything, query).Return(backendDevResponse(), nil).Once()
	m := newTestModel(client)

	m = typeText(t, m, query)
	assert.Equal(t, query, m.input.Value())

	_, cmd := pressEnter(t, m)
	_, ok := findResolved(cmd)
	require.True(t, ok)
	client.AssertExpectations(t)
}

func TestEscQuits(t *testing.T) {
	m := newTestModel(&MockSearchClient{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderState(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		out := RenderState(models.Success(models.ResultSet{
			Vacancies: []models.Vacancy{{Name: "Backend Dev", Employer: "Acme", Salary: "100000", Experience: "3 years", Skills: []string{"Python", "SQL"}}},
		}))

		assert.Contains(t, out, "Search Results (1 vacancies found)")
		for _, col := range models.ResultColumns {
			assert.Contains(t, out, col)
		}
		assert.Contains(t, out, "Python, SQL")
	})

	t.Run("error", func(t *testing.T) {
		out := RenderState(models.Failure(search_view.MsgNoVacancies))
		assert.Contains(t, out, search_view.MsgNoVacancies)
		assert.NotContains(t, out, "Position")
	})

	t.Run("idle", func(t *testing.T) {
		assert.Empty(t, RenderState(models.Idle()))
	})
}

func TestRunOnce(t *testing.T) {
	client := &MockSearchClient{}
	client.On("Search", mock.Anything, "Python Developer").Return(backendDevResponse(), nil).Once()
	view := search_view.NewSearchView(client, logging.NewNop())

	var buf bytes.Buffer
	state, err := RunOnce(context.Background(), view, "Python Developer", &buf)

	require.NoError(t, err)
	assert.Equal(t, models.StateSuccess, state.Kind())
	assert.Contains(t, buf.String(), "Backend Dev")
}
