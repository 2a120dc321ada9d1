package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"search_ui/internal/search_view"
	"search_ui/pkg/logging"
	"search_ui/shared/config"
	"search_ui/shared/cookie"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// хранилище сессий в памяти без TTL
type fakeStore struct {
	views map[string]*search_view.SearchView
}

func (s *fakeStore) View(sessionID string) (*search_view.SearchView, bool) {
	if v, ok := s.views[sessionID]; ok {
		return v, false
	}
	v := search_view.NewSearchView(nil, logging.NewNop())
	s.views[sessionID] = v
	return v, true
}

func (s *fakeStore) Drop(sessionID string) {
	delete(s.views, sessionID)
}

func newTestHandler() (*SearchHandler, *fakeStore) {
	store := &fakeStore{views: map[string]*search_view.SearchView{}}
	cookies := cookie.NewManager(*config.DefaultCookieConfig())
	return NewSearchHandler(context.Background(), store, cookies, "session", logging.NewNop()), store
}

func TestToAPIError(t *testing.T) {
	tests := []struct {
		err  error
		code int
		name string
	}{
		{ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{fmt.Errorf("bind: %w", ErrSubmitInProgress), http.StatusConflict, "SEARCH_IN_PROGRESS"},
		{ErrSessionNotStarted, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, apiErr := ToAPIError(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.name, apiErr.Code)
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("новая сессия для запроса без куки", func(t *testing.T) {
		h, store := newTestHandler()
		router := gin.New()
		router.GET("/", h.SessionMiddleware(), h.GetState)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		_, err := uuid.Parse(cookies[0].Value)
		assert.NoError(t, err)
		assert.Len(t, store.views, 1)
	})

	t.Run("существующая сессия переиспользуется", func(t *testing.T) {
		h, store := newTestHandler()
		router := gin.New()
		router.GET("/", h.SessionMiddleware(), h.GetState)

		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "vacancy_search_session", Value: id})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, store.views, id)
		assert.Equal(t, id, w.Result().Cookies()[0].Value)
	})

	t.Run("подделанная кука заменяется", func(t *testing.T) {
		h, store := newTestHandler()
		router := gin.New()
		router.GET("/", h.SessionMiddleware(), h.GetState)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "vacancy_search_session", Value: "../../etc/passwd"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, store.views, "../../etc/passwd")
		assert.Len(t, store.views, 1)
	})
}

func TestHandlersWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler()

	router := gin.New()
	router.GET("/api/state", h.GetState)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestResetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, store := newTestHandler()

	router := gin.New()
	router.DELETE("/api/session", h.ResetSession)

	id := uuid.NewString()
	store.View(id)

	req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: "vacancy_search_session", Value: id})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.NotContains(t, store.views, id)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "vacancy_search_session", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestResetSessionWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler()

	router := gin.New()
	router.DELETE("/api/session", h.ResetSession)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/session", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
