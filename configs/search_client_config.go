package configs

import "time"

// структура конфига http клиента бэкенда поиска
type SearchClientConfig struct {
	BaseURL         string        `yaml:"base_url" validate:"required,url"`   // базовый адрес бэкенда поиска
	SearchPath      string        `yaml:"search_path" validate:"required"`    // путь эндпоинта поиска
	Timeout         time.Duration `yaml:"timeout" validate:"gte=0"`           // 0 = без таймаута (запрос ждёт ответа сколько угодно)
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`    // максимальное количество keep-alive соединений
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout" validate:"gte=0"` // через сколько закрывать неиспользуемое соединение
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"gt=0"`     // ограничение на размер тела ответа
}

// функция, которая возвращает указатель на дэфолтный конфиг клиента
func DefaultSearchClientConfig() *SearchClientConfig {
	return &SearchClientConfig{
		BaseURL:         "http://localhost:5001",
		SearchPath:      "/search",
		Timeout:         0,
		MaxIdleConns:    4,
		IdleConnTimeout: 90 * time.Second,
		MaxBodyBytes:    10 << 20,
	}
}
