package tui

import (
	"context"
	"fmt"
	"io"
	"search_ui/internal/domain/models"
	"search_ui/internal/search_view"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// неинтерактивный режим: одна отправка, результат печатается в w
func RunOnce(ctx context.Context, view *search_view.SearchView, query string, w io.Writer) (models.SearchState, error) {
	state := view.Submit(ctx, query)
	if _, err := io.WriteString(w, RenderState(state)); err != nil {
		return state, fmt.Errorf("failed to write result: %w", err)
	}
	return state, nil
}

// текстовое представление итогового состояния: таблица результатов или сообщение об ошибке
func RenderState(state models.SearchState) string {
	if msg, ok := state.Error(); ok {
		return alertStyle.Render(msg) + "\n"
	}

	results, ok := state.Results()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(resultsTitleStyle.Render(search_view.ResultsTitle(results)))
	b.WriteString("\n")
	if results.Note != "" {
		b.WriteString(noteStyle.Render(results.Note))
		b.WriteString("\n")
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(models.ResultColumns...).
		Rows(results.Rows()...)

	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
