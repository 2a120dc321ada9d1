// хранилище сессий поиска: у каждого браузера своё представление поиска
package sessions

import (
	"fmt"
	"search_ui/configs"
	"search_ui/internal/search_view"
	"search_ui/shared/inmemory_cache"
	"time"
)

// функция-конструктор представления для новой сессии
type ViewFactory func() *search_view.SearchView

type Store struct {
	cache   *inmemory_cache.InmemoryShardedCache
	idleTTL time.Duration
	factory ViewFactory
}

func NewStore(cfg *configs.SessionsConfig, factory ViewFactory) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("sessions config is nil")
	}
	if factory == nil {
		return nil, fmt.Errorf("view factory is nil")
	}

	cache, err := inmemory_cache.NewInmemoryShardedCache(cfg.NumOfShards, cfg.CleanUp)
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions cache: %w", err)
	}

	return &Store{
		cache:   cache,
		idleTTL: cfg.IdleTTL,
		factory: factory,
	}, nil
}

// представление сессии; каждое обращение продлевает жизнь сессии.
// второй результат - true, если сессия только что создана
func (s *Store) View(sessionID string) (*search_view.SearchView, bool) {
	value, created := s.cache.GetOrAddWithTTL(sessionID, s.idleTTL, func() interface{} {
		return s.factory()
	})

	view, ok := value.(*search_view.SearchView)
	if !ok {
		// в кэш кладём только *SearchView, сюда попасть невозможно
		panic(fmt.Sprintf("sessions: unexpected value type %T", value))
	}
	return view, created
}

// удаление сессии (представление поиска пересоздастся при следующем обращении)
func (s *Store) Drop(sessionID string) {
	s.cache.DeleteItem(sessionID)
}

// количество сессий в хранилище
func (s *Store) Len() int {
	return s.cache.Len()
}

// остановка фоновой очистки
func (s *Store) Close() {
	s.cache.Stop()
}
