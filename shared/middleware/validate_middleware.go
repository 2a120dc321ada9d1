package middleware

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ключ gin контекста с уже разобранным и проверенным телом запроса
const ValidatedDataKey = "validatedData"

// создаём экзмепляр валидатора (чтобы он создавался в памяти только при загрузке модуля)
var validate = validator.New()

// ValidateJSONMiddleware разбирает JSON тело в новый экземпляр типа model и валидирует его.
// model - указатель на структуру, например &dto.SearchRequest{}
func ValidateJSONMiddleware(model interface{}) gin.HandlerFunc {
	modelType := reflect.TypeOf(model).Elem()

	return func(c *gin.Context) {
		// Создаем новый экземпляр структуры для валидации
		request := reflect.New(modelType).Interface()

		// Парсим БЕЗ встроенной валидации Gin
		if err := c.ShouldBindBodyWith(request, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid JSON format",
				"code":  "INVALID_JSON",
			})
			return
		}

		// Валидируем структуру
		if err := validate.Struct(request); err != nil {
			details := make(map[string]string)

			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				for _, fe := range validationErrs {
					details[fe.Field()] = fe.Tag()
				}
			}

			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"code":    "VALIDATION_FAILED",
				"details": details,
			})
			return
		}

		// Сохраняем валидированные данные в контекст для использования в обработчике
		c.Set(ValidatedDataKey, request)
		c.Next()
	}
}
