package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// создаём экзмепляр валидатора (чтобы он создавался в памяти только при загрузке модуля)
var validate = validator.New()

// проверка конфига по validate-тегам; каждая ошибка поля превращается в ConfigError
func Validate(cfg any) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ConfigError{
			Field: fe.Namespace(),
			Msg:   fmt.Sprintf("failed on '%s' rule (value: %v)", fe.Tag(), fe.Value()),
		})
	}
	return errors.Join(errs...)
}
