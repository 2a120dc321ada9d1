// описание и инициализация всех общих зависимостей
package core

import (
	"context"
	"fmt"
	"search_ui/configs"
	"search_ui/internal/search_client"
	"search_ui/internal/search_view"
	"search_ui/internal/web_server/handlers"
	"search_ui/internal/web_server/sessions"
	"search_ui/pkg/logging"
	"search_ui/shared/cookie"
)

// SearchUIDependencies содержит все общие зависимости веб-интерфейса
type SearchUIDependencies struct {
	Config        *configs.SearchUIConfig
	Logger        *logging.Logger
	SearchClient  *search_client.SearchClient
	Sessions      *sessions.Store
	SearchHandler *handlers.SearchHandler
}

// InitDependencies инициализирует общие зависимости для веб-интерфейса поиска
// ctx - корневой контекст, его отмена прерывает все незавершённые поиски
func InitDependencies(ctx context.Context, envPath string) (*SearchUIDependencies, error) {
	// Получаем конфигурацию
	conf, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(conf.Logger.Level, conf.Logger.OutputPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// создаём http клиента бэкенда поиска
	searchClient, err := search_client.NewSearchClient(conf.SearchClient, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}
	logger.Info("search backend", "url", searchClient.URL())

	// хранилище сессий: каждое новое представление поиска работает через общий клиент
	store, err := sessions.NewStore(conf.Sessions, func() *search_view.SearchView {
		return search_view.NewSearchView(searchClient, logger)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions store: %w", err)
	}

	// мэнеджер куки сессии
	cookieManager := cookie.NewManager(*conf.Cookie)

	// создаём хэндлер веб-интерфейса
	searchHandler := handlers.NewSearchHandler(ctx, store, cookieManager, conf.Sessions.CookieName, logger)

	// возвращаем указатель на структуру зависимостей
	return &SearchUIDependencies{
		Config:        conf,
		Logger:        logger,
		SearchClient:  searchClient,
		Sessions:      store,
		SearchHandler: searchHandler,
	}, nil
}
