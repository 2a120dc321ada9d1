package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"search_ui/shared/config"

	"github.com/gin-gonic/gin"
)

var ErrCookieNotFound = errors.New("cookie not found")

// интерфейс для использовании во внешних модулях
type CookieManagerInterface interface {
	SetCookie(c *gin.Context, opts CookieOptions) error
	GetCookie(c *gin.Context, name string) (string, error)
	DeleteCookie(c *gin.Context, name, path string)
}

// Manager - только базовая установка кук
type Manager struct {
	config config.CookieManagerConfig
}

// конструктор для мэнеджера куки
func NewManager(config config.CookieManagerConfig) *Manager {
	return &Manager{config: config}
}

// структура опций для работы с куки
type CookieOptions struct {
	Name     string // имя куки
	Value    string // значение
	MaxAge   int    // в секундах, 0 = берём SessionMaxAge из конфига
	Path     string // путь
	HttpOnly *bool  // nil = использовать дефолт (true)
}

// SetCookie - установка куки, согласно переданным параетрам
func (m *Manager) SetCookie(c *gin.Context, opts CookieOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("cookie name must not be empty")
	}

	maxAge := opts.MaxAge
	if maxAge == 0 {
		maxAge = int(m.config.SessionMaxAge.Seconds())
	}

	// HttpOnly по умолчанию true
	httpOnly := true
	if opts.HttpOnly != nil {
		httpOnly = *opts.HttpOnly
	}

	c.SetSameSite(m.parseSameSite())
	c.SetCookie(m.cookieName(opts.Name), opts.Value, maxAge, m.path(opts.Path), m.getDomain(), m.config.Secure, httpOnly)

	return nil
}

// GetCookie - получить куку по имени
func (m *Manager) GetCookie(c *gin.Context, name string) (string, error) {
	cookieName := m.cookieName(name)

	value, err := c.Cookie(cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", fmt.Errorf("%w: %s", ErrCookieNotFound, cookieName)
		}
		return "", fmt.Errorf("failed to get cookie %s: %w", cookieName, err)
	}

	return value, nil
}

// DeleteCookie - очистить куку по имени и path
func (m *Manager) DeleteCookie(c *gin.Context, name, path string) {
	c.SetSameSite(m.parseSameSite())
	// отрицательный MaxAge = удалить куку
	c.SetCookie(m.cookieName(name), "", -1, m.path(path), m.getDomain(), m.config.Secure, true)
}

// Вспомогательные методы

// префикс нужен, если несколько приложений используют этот менеджер на одном домене
func (m *Manager) cookieName(name string) string {
	if m.config.Prefix != "" {
		return fmt.Sprintf("%s_%s", m.config.Prefix, name)
	}
	return name
}

func (m *Manager) path(path string) string {
	if path == "" {
		return m.config.DefaultPath
	}
	return path
}

func (m *Manager) getDomain() string {
	if m.config.ProjectMode == "production" && m.config.Domain != "" {
		return m.config.Domain
	}
	return "" // для localhost/development
}

func (m *Manager) parseSameSite() http.SameSite {
	switch m.config.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		fallthrough
	default:
		return http.SameSiteLaxMode
	}
}
