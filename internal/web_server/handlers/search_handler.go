// хэндлеры веб-интерфейса поиска вакансий
package handlers

import (
	"context"
	"net/http"
	"search_ui/internal/search_view"
	"search_ui/internal/web_server/converters"
	"search_ui/internal/web_server/dto"
	"search_ui/internal/web_server/templates"
	"search_ui/pkg/logging"
	"search_ui/shared/cookie"
	"search_ui/shared/middleware"
	"search_ui/shared/toolkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ключ gin контекста, под которым лежит представление поиска текущей сессии
const viewContextKey = "search_view"

// хранилище сессий (по одному представлению поиска на браузер)
type SessionStore interface {
	View(sessionID string) (*search_view.SearchView, bool)
	Drop(sessionID string)
}

type SearchHandler struct {
	baseCtx    context.Context // отменяется при остановке сервера
	cancel     context.CancelFunc
	sessions   SessionStore
	cookies    cookie.CookieManagerInterface
	cookieName string
	logger     *logging.Logger
}

// конструктор для создания хэндлера веб-интерфейса
func NewSearchHandler(ctx context.Context, sessions SessionStore, cookies cookie.CookieManagerInterface, cookieName string, logger *logging.Logger) *SearchHandler {
	baseCtx, cancel := context.WithCancel(ctx)

	return &SearchHandler{
		baseCtx:    baseCtx,
		cancel:     cancel,
		sessions:   sessions,
		cookies:    cookies,
		cookieName: cookieName,
		logger:     logger.With("component", "search_handler"),
	}
}

// middleware: находим (или заводим) сессию по куке и кладём её представление поиска в контекст
func (h *SearchHandler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := h.cookies.GetCookie(c, h.cookieName)
		if err == nil {
			_, err = uuid.Parse(sessionID)
		}
		if err != nil {
			sessionID = uuid.NewString()
		}

		// каждый запрос продлевает жизнь куки
		if err := h.cookies.SetCookie(c, cookie.CookieOptions{Name: h.cookieName, Value: sessionID}); err != nil {
			h.logger.Error("failed to set session cookie", "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
			return
		}

		view, created := h.sessions.View(sessionID)
		if created {
			h.logger.Debug("new search session",
				"session_id", sessionID,
				"request_id", toolkit.RequestIDFromContext(c.Request.Context()),
			)
		}

		c.Set(viewContextKey, view)
		c.Next()
	}
}

// метод для теста запуска сервера
func (h *SearchHandler) EchoSearchServer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from search UI server!"})
}

// метод хэндлера для остановки: прерываем все незавершённые запросы к бэкенду
func (h *SearchHandler) ShutDown() {
	h.cancel()
}

// сброс сессии: забываем представление поиска и удаляем куку
// следующий запрос начнёт с пустой страницы
func (h *SearchHandler) ResetSession(c *gin.Context) {
	sessionID, err := h.cookies.GetCookie(c, h.cookieName)
	if err == nil {
		h.sessions.Drop(sessionID)
		h.logger.Debug("search session dropped", "session_id", sessionID)
	}

	h.cookies.DeleteCookie(c, h.cookieName, "")
	c.Status(http.StatusNoContent)
}

// страница поиска
func (h *SearchHandler) RenderPage(c *gin.Context) {
	view, ok := h.viewFromContext(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, templates.SearchPage, converters.SnapshotToPageData(view.Snapshot()))
}

// отправка html формы: запускаем поиск в фоне и возвращаем пользователя на страницу,
// которая обновляется, пока поиск не завершится
func (h *SearchHandler) SubmitForm(c *gin.Context) {
	view, ok := h.viewFromContext(c)
	if !ok {
		return
	}

	query := c.PostForm("query")
	state := view.Start(h.baseCtx, query)
	h.logger.Debug("form submitted", "query", query, "state", state.String())

	c.Redirect(http.StatusSeeOther, "/")
}

// текущее состояние представления в JSON
func (h *SearchHandler) GetState(c *gin.Context) {
	view, ok := h.viewFromContext(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, converters.SnapshotToStateResponse(view.Snapshot()))
}

// метод обработки JSON запроса на поиск: ждём ответа бэкенда и отдаём итоговое состояние
func (h *SearchHandler) ProcessSearchRequest(c *gin.Context) {
	view, ok := h.viewFromContext(c)
	if !ok {
		return
	}

	// тело уже разобрано и проверено ValidateJSONMiddleware
	validatedData, exists := c.Get(middleware.ValidatedDataKey)
	req, ok := validatedData.(*dto.SearchRequest)
	if !exists || !ok {
		code, apiErr := ToAPIError(ErrInvalidRequest)
		c.JSON(code, gin.H{"error": apiErr})
		return
	}

	state, started := view.Begin(req.Query)
	if !started {
		if state.IsLoading() {
			code, apiErr := ToAPIError(ErrSubmitInProgress)
			c.JSON(code, gin.H{"error": apiErr})
			return
		}
		// ошибка валидации уже записана в состояние
		c.JSON(http.StatusOK, converters.SnapshotToStateResponse(view.Snapshot()))
		return
	}

	// запрос к бэкенду прерывается, если клиент ушёл или сервер останавливается
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	stop := context.AfterFunc(h.baseCtx, cancel)
	defer stop()

	view.Complete(ctx, req.Query)

	c.JSON(http.StatusOK, converters.SnapshotToStateResponse(view.Snapshot()))
}

// представление поиска, которое положил SessionMiddleware
func (h *SearchHandler) viewFromContext(c *gin.Context) (*search_view.SearchView, bool) {
	value, exists := c.Get(viewContextKey)
	if !exists {
		code, apiErr := ToAPIError(ErrSessionNotStarted)
		c.JSON(code, gin.H{"error": apiErr})
		return nil, false
	}

	view, ok := value.(*search_view.SearchView)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return nil, false
	}
	return view, true
}
