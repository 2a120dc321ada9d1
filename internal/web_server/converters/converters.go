package converters

import (
	"search_ui/internal/domain/models"
	"search_ui/internal/search_view"
	"search_ui/internal/web_server/dto"
)

// как часто страница перезапрашивает себя, пока идёт поиск
const pageRefreshSeconds = 1

// конвертация снимка представления в ответ JSON API
func SnapshotToStateResponse(snap search_view.Snapshot) dto.StateResponse {
	resp := dto.StateResponse{
		Query:       snap.Query,
		State:       snap.State.Kind().String(),
		Loading:     snap.State.IsLoading(),
		ButtonLabel: snap.ButtonLabel(),
	}

	if msg, ok := snap.State.Error(); ok {
		resp.Error = msg
	}

	if results, ok := snap.State.Results(); ok {
		resp.ResultsTitle = search_view.ResultsTitle(results)
		resp.Note = results.Note
		resp.Vacancies = make([]dto.VacancyResponse, 0, results.Len())
		for _, v := range results.Vacancies {
			resp.Vacancies = append(resp.Vacancies, ConvertVacancyToDTO(v))
		}
	}

	return resp
}

// Вспомогательная функция для конвертации одной вакансии
func ConvertVacancyToDTO(v models.Vacancy) dto.VacancyResponse {
	skills := v.Skills
	if skills == nil {
		skills = []string{}
	}

	return dto.VacancyResponse{
		Name:       v.Name,
		Employer:   v.Employer,
		Salary:     v.Salary,
		Experience: v.Experience,
		Skills:     skills,
		SkillsLine: v.SkillsLine(),
	}
}

// конвертация снимка представления в данные страницы
// на странице одновременно показывается только одно из: ошибка, индикатор загрузки, таблица
func SnapshotToPageData(snap search_view.Snapshot) dto.PageData {
	page := dto.PageData{
		Title:       search_view.PageTitle,
		InputLabel:  search_view.InputLabel,
		Placeholder: search_view.InputHint,
		Query:       snap.Query,
		Disabled:    snap.ControlDisabled(),
		Loading:     snap.State.IsLoading(),
		ButtonLabel: snap.ButtonLabel(),
		Columns:     models.ResultColumns,
	}

	if page.Loading {
		page.RefreshSeconds = pageRefreshSeconds
	}

	if msg, ok := snap.State.Error(); ok {
		page.Error = msg
	}

	if results, ok := snap.State.Results(); ok && results.Len() > 0 {
		page.HasResults = true
		page.ResultsTitle = search_view.ResultsTitle(results)
		page.Note = results.Note
		page.Rows = results.Rows()
	}

	return page
}
