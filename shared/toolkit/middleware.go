package toolkit

import (
	"context"
	"net/http"
	"search_ui/pkg/logging"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// middleware для CORS политики
// allowedOrigins - список разрешенных доменов (из конфига сервера)
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Если Origin не указан (например, запрос из curl, postman или с той же страницы)
		if origin == "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			// страница, которую отдаёт этот же сервер, шлёт свой Origin (например, при отправке формы)
			if !isSameOrigin(c.Request, origin) && !slices.Contains(allowedOrigins, origin) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":  "Origin not allowed",
					"origin": origin,
				})
				return
			}
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			// Разрешаем отправку кук (сессия поиска живёт в куке)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, "+RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, "+RequestIDHeader)

		// Кеширование предзапроса (в секундах)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Origin совпадает со схемой и хостом самого запроса
func isSameOrigin(r *http.Request, origin string) bool {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return strings.EqualFold(origin, scheme+"://"+r.Host)
}

// middleware для проброса request id в контекст запроса (генерируем, если клиент не прислал)
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// получение request id из контекста (пустая строка, если его нет)
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// middleware для логирования запросов через zap (вместо стандартного логгера gin)
func LoggerMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", RequestIDFromContext(c.Request.Context()),
			"client_ip", c.ClientIP(),
		)
	}
}
