package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"pdf-share-server/internal/apperrors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator : общий экземпляр валидатора (он потокобезопасен и кэширует структуры)
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// в сообщениях об ошибках поля называются так же, как в JSON
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct : проверяет теги validate и возвращает apperrors.ErrInvalidInput с перечнем полей
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperrors.Wrap(err, apperrors.ErrInvalidInput, "")
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return apperrors.Clone(apperrors.ErrInvalidInput, "неверные поля: "+strings.Join(fields, ", "))
}
