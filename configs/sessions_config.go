package configs

import "time"

// структура конфига хранилища сессий поиска (по одному представлению поиска на браузер)
type SessionsConfig struct {
	NumOfShards int           `yaml:"num_of_shards" validate:"gt=0,lte=1000"` // количество шардов
	IdleTTL     time.Duration `yaml:"idle_ttl" validate:"gt=0"`               // сколько живёт сессия без обращений
	CleanUp     time.Duration `yaml:"clean_up" validate:"gte=0"`              // интервал самоочистки
	CookieName  string        `yaml:"cookie_name" validate:"required"`        // имя куки с идентификатором сессии
}

func DefaultSessionsConfig() *SessionsConfig {
	return &SessionsConfig{
		NumOfShards: 8,
		IdleTTL:     30 * time.Minute,
		CleanUp:     time.Minute,
		CookieName:  "session",
	}
}
