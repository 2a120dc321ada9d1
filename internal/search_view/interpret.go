package search_view

import (
	"search_ui/internal/domain/models"
	"search_ui/internal/search_client"
	"search_ui/internal/search_client/converters"
	"search_ui/internal/search_client/dto"
)

// Interpret переводит результат запроса в итоговое состояние представления:
//   - ошибка транспорта/сервера: сообщение сервера, если есть, иначе общее сообщение
//   - поле error в ответе: это сообщение, даже если vacancies тоже пришли
//   - пустой (или отсутствующий) список вакансий: "No vacancies found"
//   - иначе Success со списком в исходном порядке
func Interpret(resp *dto.SearchResponse, err error) models.SearchState {
	if err != nil {
		if msg, ok := search_client.ServerMessage(err); ok {
			return models.Failure(msg)
		}
		return models.Failure(MsgFetchFailed)
	}

	if resp == nil {
		return models.Failure(MsgFetchFailed)
	}

	if resp.Error != "" {
		return models.Failure(resp.Error)
	}

	if len(resp.Vacancies) == 0 {
		return models.Failure(MsgNoVacancies)
	}

	return models.Success(converters.SearchResponseDTOToResultSet(*resp))
}
