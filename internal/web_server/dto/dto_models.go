package dto

// SearchRequest - DTO входящего запроса JSON API (пустой запрос - не ошибка разбора,
// его отклоняет само представление поиска)
type SearchRequest struct {
	Query string `json:"query"`
}

// VacancyResponse - строка таблицы результатов
type VacancyResponse struct {
	Name       string   `json:"name"`
	Employer   string   `json:"employer"`
	Salary     string   `json:"salary"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	SkillsLine string   `json:"skills_line"` // навыки через ", "
}

// StateResponse - снимок представления поиска для клиента
type StateResponse struct {
	Query        string            `json:"query"`
	State        string            `json:"state"` // idle | submitting | success | failure
	Loading      bool              `json:"loading"`
	ButtonLabel  string            `json:"button_label"`
	Error        string            `json:"message,omitempty"`
	ResultsTitle string            `json:"results_title,omitempty"`
	Note         string            `json:"note,omitempty"`
	Vacancies    []VacancyResponse `json:"vacancies,omitempty"`
}

// PageData - данные для html шаблона страницы поиска
type PageData struct {
	Title          string
	InputLabel     string
	Placeholder    string
	Query          string
	Disabled       bool
	Loading        bool
	ButtonLabel    string
	Error          string
	HasResults     bool
	ResultsTitle   string
	Note           string
	Columns        []string
	Rows           [][]string
	RefreshSeconds int // автообновление страницы, пока идёт поиск (0 - выключено)
}
