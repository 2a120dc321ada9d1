package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Query string `json:"query" validate:"max=5"`
}

func newTestRouter(got *testRequest) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", ValidateJSONMiddleware(&testRequest{}), func(c *gin.Context) {
		data, _ := c.Get(ValidatedDataKey)
		*got = *data.(*testRequest)
		c.Status(http.StatusOK)
	})
	return router
}

func TestValidateJSONMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{"валидный запрос", `{"query":"go"}`, http.StatusOK, ""},
		{"пустой запрос допустим", `{"query":""}`, http.StatusOK, ""},
		{"битый json", `{"query":`, http.StatusBadRequest, "INVALID_JSON"},
		{"не проходит валидацию", `{"query":"too long"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got testRequest
			router := newTestRouter(&got)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestValidateJSONMiddlewareStoresRequest(t *testing.T) {
	var got testRequest
	router := newTestRouter(&got)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"query":"go"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "go", got.Query)
}
