package inmemory_cache

import "time"

// метод для вызова интервальной очистки кэша или его остановки
func (c *InmemoryShardedCache) cleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanUpExpired()
		case <-c.stopChan:
			return
		}
	}
}

// метод для очистки кэша от устаревших данных
func (c *InmemoryShardedCache) cleanUpExpired() {
	start := time.Now()
	for _, shard := range c.shards {
		shard.mu.Lock()
		for key, value := range shard.Items {
			if start.After(value.expTime) {
				delete(shard.Items, key)
			}
		}
		shard.mu.Unlock()
	}
}
