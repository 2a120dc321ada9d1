package inmemory_cache

import (
	"sync"
	"time"
)

// основная структура inmemory cache. Кэш - шардирован
// ключ - идентификатор сессии поиска, значение - состояние представления этой сессии
type InmemoryShardedCache struct {
	shards    []*Shard
	numShards int
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// структура отдельного шарда
// у него есть мапа с CashItems и мьютекс для доступа к мапе
type Shard struct {
	Items map[string]CashItem
	mu    sync.RWMutex
}

// структура отдельного элемента inmemory cache
type CashItem struct {
	value   interface{}
	expTime time.Time
}
