package inmemory_cache

import (
	"fmt"
	"hash/fnv"
	"time"
)

// конструктор для создания кэша с указаным количеством шардов и интервалом очистки кэша
func NewInmemoryShardedCache(numShards int, cleanUpInterval time.Duration) (*InmemoryShardedCache, error) {
	// Валидация входных параметров
	if numShards <= 0 {
		return nil, fmt.Errorf("numShards must be positive, got %d", numShards)
	}

	if cleanUpInterval < 0 {
		return nil, fmt.Errorf("cleanUpInterval must be non-negative, got %v", cleanUpInterval)
	}

	if numShards > 1000 {
		return nil, fmt.Errorf("numShards is too large: %d", numShards)
	}

	cache := &InmemoryShardedCache{
		shards:    make([]*Shard, numShards),
		numShards: numShards,
		stopChan:  make(chan struct{}),
	}

	// для каждого шарда инициализируем внутреннюю мапу
	for i := 0; i < numShards; i++ {
		cache.shards[i] = &Shard{
			Items: map[string]CashItem{},
		}
	}

	// Запускаем очистку только если интервал > 0
	if cleanUpInterval > 0 {
		go cache.cleanUp(cleanUpInterval)
	}

	return cache, nil
}

// метод атомарно возвращает живое значение по ключу, продлевая его TTL,
// либо создаёт новое через fn. второй результат - true, если значение было создано
func (c *InmemoryShardedCache) GetOrAddWithTTL(key string, ttl time.Duration, fn func() interface{}) (interface{}, bool) {
	shard := c.getShard(key)
	now := time.Now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if val, ok := shard.Items[key]; ok && !now.After(val.expTime) {
		val.expTime = now.Add(ttl)
		shard.Items[key] = val
		return val.value, false
	}

	value := fn()
	shard.Items[key] = CashItem{
		value:   value,
		expTime: now.Add(ttl),
	}
	return value, true
}

// метод, чтобы находить нужный шард по заданному ключу
func (c *InmemoryShardedCache) getShard(key string) *Shard {
	hashf := fnv.New32a()
	// запись в hash.Hash никогда не возвращает ошибку
	_, _ = hashf.Write([]byte(key))
	// хэш по ключу % количество шардов = индекс шарда в диапазоне от 0 до shardNum-1
	shardIndex := int(hashf.Sum32() % uint32(c.numShards))

	return c.shards[shardIndex]
}

// метод удаления элемента из кэша по ключу
func (c *InmemoryShardedCache) DeleteItem(key string) {
	shard := c.getShard(key)

	shard.mu.Lock()
	delete(shard.Items, key)
	shard.mu.Unlock()
}

// количество элементов во всех шардах (включая ещё не вычищенные просроченные)
func (c *InmemoryShardedCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.Items)
		shard.mu.RUnlock()
	}
	return total
}

// остановка фоновой очистки, повторный вызов безопасен
func (c *InmemoryShardedCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}
