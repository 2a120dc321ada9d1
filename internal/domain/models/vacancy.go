package models

import "strings"

// разделитель навыков при отображении
const SkillsSeparator = ", "

// Vacancy - вакансия в том виде, в котором её отдаёт бэкенд поиска
// зарплата уже отформатирована бэкендом, идентификатора нет (строку определяет её позиция)
type Vacancy struct {
	Name       string
	Employer   string
	Salary     string
	Experience string
	Skills     []string
}

// навыки одной строкой, в исходном порядке
func (v Vacancy) SkillsLine() string {
	return strings.Join(v.Skills, SkillsSeparator)
}

// ячейки строки таблицы результатов: Position | Company | Salary | Experience | Skills
func (v Vacancy) Cells() []string {
	return []string{v.Name, v.Employer, v.Salary, v.Experience, v.SkillsLine()}
}

// заголовки колонок таблицы результатов
var ResultColumns = []string{"Position", "Company", "Salary", "Experience", "Skills"}

// ResultSet - упорядоченный список найденных вакансий (порядок ответа = порядок отображения)
type ResultSet struct {
	Vacancies []Vacancy
	Note      string // пометка бэкенда, например "Using cached data"
}

func (r ResultSet) Len() int {
	return len(r.Vacancies)
}

// строки таблицы результатов
func (r ResultSet) Rows() [][]string {
	rows := make([][]string, 0, len(r.Vacancies))
	for _, v := range r.Vacancies {
		rows = append(rows, v.Cells())
	}
	return rows
}
