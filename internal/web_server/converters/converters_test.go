package converters

import (
	"search_ui/internal/domain/models"
	"search_ui/internal/search_view"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successSnapshot() search_view.Snapshot {
	return search_view.Snapshot{
		Query: "Python Developer",
		State: models.Success(models.ResultSet{
			Vacancies: []models.Vacancy{
				{Name: "Backend Dev", Employer: "Acme", Salary: "100000", Experience: "3 years", Skills: []string{"Python", "SQL"}},
				{Name: "Analyst", Employer: "Initech", Salary: "N/A", Experience: "no experience"},
			},
			Note: "Using cached data",
		}),
	}
}

func TestSnapshotToPageData(t *testing.T) {
	t.Run("результаты", func(t *testing.T) {
		page := SnapshotToPageData(successSnapshot())

		assert.True(t, page.HasResults)
		assert.Empty(t, page.Error)
		assert.False(t, page.Loading)
		assert.False(t, page.Disabled)
		assert.Zero(t, page.RefreshSeconds)
		assert.Equal(t, "Search Results (2 vacancies found)", page.ResultsTitle)
		assert.Equal(t, "Using cached data", page.Note)
		require.Len(t, page.Rows, 2)
		assert.Equal(t, []string{"Backend Dev", "Acme", "100000", "3 years", "Python, SQL"}, page.Rows[0])
		assert.Equal(t, "", page.Rows[1][4])
	})

	t.Run("идёт поиск", func(t *testing.T) {
		page := SnapshotToPageData(search_view.Snapshot{Query: "go", State: models.Submitting()})

		assert.True(t, page.Loading)
		assert.True(t, page.Disabled)
		assert.Equal(t, search_view.LabelSearching, page.ButtonLabel)
		assert.Equal(t, 1, page.RefreshSeconds)
		assert.False(t, page.HasResults)
		assert.Empty(t, page.Error)
	})

	t.Run("ошибка", func(t *testing.T) {
		page := SnapshotToPageData(search_view.Snapshot{State: models.Failure(search_view.MsgNoVacancies)})

		assert.Equal(t, search_view.MsgNoVacancies, page.Error)
		assert.False(t, page.HasResults)
		assert.False(t, page.Loading)
		assert.Equal(t, search_view.LabelSearch, page.ButtonLabel)
	})

	t.Run("начальное состояние", func(t *testing.T) {
		page := SnapshotToPageData(search_view.Snapshot{State: models.Idle()})

		assert.Equal(t, "HH.ru Parser", page.Title)
		assert.Equal(t, "e.g. Python Developer", page.Placeholder)
		assert.Equal(t, models.ResultColumns, page.Columns)
		assert.False(t, page.HasResults)
		assert.Empty(t, page.Error)
	})
}

func TestSnapshotToStateResponse(t *testing.T) {
	resp := SnapshotToStateResponse(successSnapshot())

	assert.Equal(t, "success", resp.State)
	assert.Equal(t, "Python Developer", resp.Query)
	require.Len(t, resp.Vacancies, 2)
	assert.Equal(t, "Python, SQL", resp.Vacancies[0].SkillsLine)
	assert.Equal(t, []string{}, resp.Vacancies[1].Skills)
	assert.Empty(t, resp.Error)

	failed := SnapshotToStateResponse(search_view.Snapshot{State: models.Failure("boom")})
	assert.Equal(t, "failure", failed.State)
	assert.Equal(t, "boom", failed.Error)
	assert.Nil(t, failed.Vacancies)
}
