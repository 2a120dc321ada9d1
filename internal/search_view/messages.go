package search_view

// тексты, которые видит пользователь
const (
	MsgEmptyQuery   = "Please enter a search query"
	MsgNoVacancies  = "No vacancies found for your query"
	MsgFetchFailed  = "Error fetching results. Please try again."
	LabelSearch     = "Search"
	LabelSearching  = "Searching..."
	PageTitle       = "HH.ru Parser"
	InputLabel      = "Enter search query"
	InputHint       = "e.g. Python Developer"
	resultsTitleFmt = "Search Results (%d vacancies found)"
)
