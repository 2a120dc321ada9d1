// Package tui - терминальный интерфейс поиска вакансий на bubbletea.
package tui

import (
	"context"
	"search_ui/internal/domain/models"
	"search_ui/internal/search_view"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxColumnWidth = 40
	maxTableHeight = 15
)

// сообщение о завершении запроса к бэкенду
type searchResolvedMsg struct {
	state models.SearchState
}

type Model struct {
	ctx     context.Context
	view    *search_view.SearchView
	input   textinput.Model
	spinner spinner.Model
	table   table.Model
	width   int
}

func New(ctx context.Context, view *search_view.SearchView) Model {
	input := textinput.New()
	input.Placeholder = search_view.InputHint
	input.Width = 40
	input.SetValue(view.Query())
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		view:    view,
		input:   input,
		spinner: sp,
		table:   table.New(table.WithFocused(true)),
	}
	m.syncTable(view.State())
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.syncTable(m.view.State())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		// спиннер крутится только пока идёт поиск
		if !m.view.State().IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchResolvedMsg:
		m.syncTable(msg.state)
		m.input.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	// пока идёт поиск, поле ввода заблокировано
	if m.view.State().IsLoading() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.view.SetQuery(m.input.Value())
	return m, cmd
}

// Enter: нажатие кнопки поиска
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := m.input.Value()

	state, started := m.view.Begin(query)
	m.syncTable(state)
	if !started {
		return m, nil
	}

	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, m.searchCmd(query))
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, view := m.ctx, m.view
	return func() tea.Msg {
		return searchResolvedMsg{state: view.Complete(ctx, query)}
	}
}

// таблица всегда отражает текущее состояние: без Success она пустая
func (m *Model) syncTable(state models.SearchState) {
	results, ok := state.Results()
	if !ok {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, results.Len())
	for _, row := range results.Rows() {
		rows = append(rows, table.Row(row))
	}

	m.table.SetRows(nil)
	m.table.SetColumns(columnsFor(results, m.width))
	m.table.SetRows(rows)
	m.table.SetHeight(min(len(rows)+2, maxTableHeight))
	m.table.GotoTop()
}

// ширина колонки - по самому длинному значению, но не больше maxColumnWidth
func columnsFor(results models.ResultSet, termWidth int) []table.Column {
	widths := make([]int, len(models.ResultColumns))
	for i, title := range models.ResultColumns {
		widths[i] = lipgloss.Width(title)
	}
	for _, row := range results.Rows() {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	limit := maxColumnWidth
	if termWidth > 0 {
		limit = max(10, min(maxColumnWidth, termWidth/len(widths)-2))
	}

	columns := make([]table.Column, len(widths))
	for i, title := range models.ResultColumns {
		columns[i] = table.Column{Title: title, Width: min(widths[i], limit)}
	}
	return columns
}

func (m Model) View() string {
	snap := m.view.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(search_view.PageTitle))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(search_view.InputLabel))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(m.buttonView(snap))
	b.WriteString("\n")

	if msg, ok := snap.State.Error(); ok {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(msg))
		b.WriteString("\n")
	}

	if results, ok := snap.State.Results(); ok {
		b.WriteString(resultsTitleStyle.Render(search_view.ResultsTitle(results)))
		b.WriteString("\n")
		if results.Note != "" {
			b.WriteString(noteStyle.Render(results.Note))
			b.WriteString("\n")
		}
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: search • ↑/↓: scroll results • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// кнопка поиска; во время запроса вместо надписи - спиннер
func (m Model) buttonView(snap search_view.Snapshot) string {
	if snap.ControlDisabled() {
		return busyButtonStyle.Render(m.spinner.View() + " " + snap.ButtonLabel())
	}
	return buttonStyle.Render(snap.ButtonLabel())
}

// интерактивный режим
func Run(ctx context.Context, view *search_view.SearchView) error {
	_, err := tea.NewProgram(New(ctx, view), tea.WithContext(ctx)).Run()
	return err
}
