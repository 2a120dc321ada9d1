// описание общего конфига для представления поиска вакансий
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"search_ui/shared/config"

	"github.com/joho/godotenv"
)

// переменные окружения с путями к yml файлам и точечными переопределениями
const (
	EnvServerConfigPath       = "SERVER_CONFIG_ADDRESS_STRING"
	EnvSearchClientConfigPath = "SEARCH_CLIENT_CONFIG_ADDRESS_STRING"
	EnvSessionsConfigPath     = "SESSIONS_CONFIG_ADDRESS_STRING"
	EnvCookieConfigPath       = "COOKIE_CONFIG_ADDRESS_STRING"
	EnvLoggerConfigPath       = "LOGGER_CONFIG_ADDRESS_STRING"
	EnvSearchBackendURL       = "SEARCH_BACKEND_URL"
	EnvLogLevel               = "LOG_LEVEL"
)

type SearchUIConfig struct {
	ServerConf   *config.ServerConfig
	SearchClient *SearchClientConfig
	Sessions     *SessionsConfig
	Cookie       *config.CookieManagerConfig
	Logger       *LoggerConfig
}

// загружаем конфиг-данные из .env и yml файлов
// envPath - путь к .env (пустая строка или отсутствующий файл - не ошибка, берём окружение процесса)
func LoadConfig(envPath string) (*SearchUIConfig, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error during loading .env: %w", err)
		}
	}

	serverConfig, err := config.LoadYAMLConfig(os.Getenv(EnvServerConfigPath), config.UseDefaultServerConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading server config: %w", err)
	}

	searchClientConfig, err := config.LoadYAMLConfig(os.Getenv(EnvSearchClientConfigPath), DefaultSearchClientConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading search client config: %w", err)
	}

	sessionsConfig, err := config.LoadYAMLConfig(os.Getenv(EnvSessionsConfigPath), DefaultSessionsConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading sessions config: %w", err)
	}

	cookieConfig, err := config.LoadYAMLConfig(os.Getenv(EnvCookieConfigPath), config.DefaultCookieConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading cookie config: %w", err)
	}

	loggerConfig, err := config.LoadYAMLConfig(os.Getenv(EnvLoggerConfigPath), DefaultLoggerConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading logger config: %w", err)
	}

	// точечные переопределения из окружения
	if url := os.Getenv(EnvSearchBackendURL); url != "" {
		searchClientConfig.BaseURL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		loggerConfig.Level = level
	}

	conf := &SearchUIConfig{
		ServerConf:   serverConfig,
		SearchClient: searchClientConfig,
		Sessions:     sessionsConfig,
		Cookie:       cookieConfig,
		Logger:       loggerConfig,
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// проверка всех секций конфига
func (c *SearchUIConfig) Validate() error {
	sections := []any{c.ServerConf, c.SearchClient, c.Sessions, c.Cookie, c.Logger}

	var errs []error
	for _, section := range sections {
		if err := config.Validate(section); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
