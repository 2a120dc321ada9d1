package web_server

import (
	"context"
	"fmt"
	"net/http"
	"search_ui/internal/web_server/dto"
	"search_ui/internal/web_server/handlers"
	"search_ui/internal/web_server/sessions"
	"search_ui/internal/web_server/templates"
	"search_ui/pkg/logging"
	"search_ui/shared/config"
	"search_ui/shared/middleware"
	"search_ui/shared/toolkit"

	"github.com/gin-gonic/gin"
)

// структура веб-сервера представления поиска
type SearchUIServer struct {
	httpServer *http.Server
	router     *gin.Engine
	config     *config.ServerConfig
	Handler    *handlers.SearchHandler
	sessions   *sessions.Store
	logger     *logging.Logger
}

// Конструктор для сервера
func NewSearchUIServer(config *config.ServerConfig, handler *handlers.SearchHandler, store *sessions.Store, logger *logging.Logger) (*SearchUIServer, error) {
	// создаём экземпляр роутера (логируем через zap, а не стандартным логгером gin)
	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(gin.Recovery())
	router.Use(toolkit.RequestIDMiddleware())                 // проброс request id в контекст
	router.Use(toolkit.LoggerMiddleware(logger))              // логирование запросов
	router.Use(toolkit.CORSMiddleware(config.AllowedOrigins)) // используем для всех маршрутов работу с CORS

	s := &SearchUIServer{
		router:   router,
		config:   config,
		Handler:  handler,
		sessions: store,
		logger:   logger.With("component", "web_server"),
	}
	s.SetUpRoutes()

	return s, nil
}

// Метод для маршрутизации сервера
func (s *SearchUIServer) SetUpRoutes() {
	s.router.GET("/hello", s.Handler.EchoSearchServer)         // тестовый ендпоинт
	s.router.DELETE("/api/session", s.Handler.ResetSession) // сброс сессии поиска

	// всё остальное работает в рамках сессии поиска
	session := s.router.Group("/", s.Handler.SessionMiddleware())
	{
		session.GET("/", s.Handler.RenderPage)                     // страница поиска
		session.POST("/", s.Handler.SubmitForm)                    // отправка формы поиска
		session.GET("/api/state", s.Handler.GetState)              // текущее состояние представления
		session.POST("/api/search", // синхронный поиск
			middleware.ValidateJSONMiddleware(&dto.SearchRequest{}),
			s.Handler.ProcessSearchRequest,
		)
	}
}

// роутер сервера (для тестов и встраивания)
func (s *SearchUIServer) Router() http.Handler {
	return s.router
}

// Метод для запуска сервера
func (s *SearchUIServer) Run() error {
	s.httpServer = &http.Server{
		Addr:           s.config.Addr(),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	s.logger.Info("server is running", "addr", s.config.Addr())
	return s.httpServer.ListenAndServe()
}

// Метод для graceful shutdown
func (s *SearchUIServer) Shutdown(ctx context.Context) error {
	// прерываем незавершённые запросы к бэкенду, иначе синхронные /api/search держат остановку
	s.Handler.ShutDown()
	defer s.sessions.Close()

	// Останавливаем HTTP сервер
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown http server: %w", err)
		}
	}

	s.logger.Info("server shutdown completed")
	return nil
}
