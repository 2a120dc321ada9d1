package converters

import (
	"search_ui/internal/domain/models"
	"search_ui/internal/search_client/dto"
)

// конвертация ответа бэкенда в доменный список результатов (порядок сохраняется)
func SearchResponseDTOToResultSet(resp dto.SearchResponse) models.ResultSet {
	vacancies := make([]models.Vacancy, 0, len(resp.Vacancies))
	for _, v := range resp.Vacancies {
		vacancies = append(vacancies, VacancyDTOToDomain(v))
	}

	return models.ResultSet{
		Vacancies: vacancies,
		Note:      resp.Note,
	}
}

// конвертация одной вакансии
func VacancyDTOToDomain(v dto.VacancyDTO) models.Vacancy {
	skills := make([]string, 0, len(v.Skills))
	skills = append(skills, v.Skills...)

	return models.Vacancy{
		Name:       v.Name.String(),
		Employer:   v.Employer.String(),
		Salary:     v.Salary.String(),
		Experience: v.Experience.String(),
		Skills:     skills,
	}
}
