package configs

// структура конфига логгера
type LoggerConfig struct {
	Level       string   `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	OutputPaths []string `yaml:"output_paths"` // пусто = stderr
}

func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level: "info",
	}
}
