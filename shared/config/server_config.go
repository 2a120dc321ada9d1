package config

import (
	"time"
)

// структура для конфига сервера
type ServerConfig struct {
	Host            string        `yaml:"host" validate:"required"`
	Port            string        `yaml:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" validate:"gte=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins"` // список доменов для CORS
}

// функция для создания конфига сервера по - дефолту
func UseDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            "localhost",
		Port:            "8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    0, // синхронный /api/search ждёт бэкенд столько, сколько нужно
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxHeaderBytes:  1 << 20,
		AllowedOrigins:  []string{"http://localhost:8080"},
	}
}

// метод конфига сервера для формирования адреса
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Вспомогательная структура для ошибок конфигурации
type ConfigError struct {
	Field string
	Msg   string
}

// метод вспомогательной функции для формирования ошибок
func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Msg
}
