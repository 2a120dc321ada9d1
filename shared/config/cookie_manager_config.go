package config

import "time"

type CookieManagerConfig struct {
	Domain        string        `yaml:"domain"`                                                       // Domain для production (пустая строка для localhost)
	ProjectMode   string        `yaml:"project_mode" validate:"omitempty,oneof=production staging development"` // Режим работы: production, staging, development
	Secure        bool          `yaml:"secure"`                                                       // Secure flag (true в production)
	SameSite      string        `yaml:"same_site" validate:"oneof=lax strict none"`                   // SameSite режим: lax, strict, none
	DefaultPath   string        `yaml:"default_path" validate:"required"`                             // Путь по умолчанию для кук
	SessionMaxAge time.Duration `yaml:"session_max_age" validate:"gt=0"`                              // время жизни куки сессии поиска
	Prefix        string        `yaml:"prefix"`                                                       // Префикс для имен кук (опционально)
}

// DefaultConfig возвращает конфиг по умолчанию
func DefaultCookieConfig() *CookieManagerConfig {
	return &CookieManagerConfig{
		SameSite:      "lax",
		DefaultPath:   "/",
		Secure:        false,
		SessionMaxAge: 24 * time.Hour,
		Prefix:        "vacancy_search",
		// Domain и ProjectMode пустые - должны быть явно заданы
	}
}
