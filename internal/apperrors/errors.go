package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error : типизированная ошибка приложения, знает свой HTTP статус
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is : ошибки сравниваются по коду, поэтому errors.Is работает и для клонов с другим текстом
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap : оборачивает инфраструктурную ошибку в ошибку приложения того же кода, что и base
func Wrap(err error, base *Error, message string) *Error {
	if message == "" {
		message = base.Message
	}
	return &Error{Code: base.Code, Status: base.Status, Message: message, Err: err}
}

// Clone : копия ошибки с другим текстом
func Clone(base *Error, message string) *Error {
	if base == nil {
		return nil
	}
	clone := *base
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// FromError : приводит любую ошибку к *Error, всё неизвестное считается внутренней ошибкой
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal, "")
}

var (
	ErrNotFound      = New("NOT_FOUND", http.StatusNotFound, "ресурс не найден")
	ErrForbidden     = New("FORBIDDEN", http.StatusForbidden, "доступ запрещён")
	ErrAlreadyShared = New("ALREADY_SHARED", http.StatusConflict, "у пользователя уже есть доступ к документу")
	ErrInvalidInput  = New("INVALID_INPUT", http.StatusBadRequest, "неверные входные данные")
	ErrUnauthorized  = New("UNAUTHORIZED", http.StatusUnauthorized, "пользователь не авторизован")
	ErrConflict      = New("CONFLICT", http.StatusConflict, "конфликт данных")
	ErrTooLarge      = New("PAYLOAD_TOO_LARGE", http.StatusRequestEntityTooLarge, "файл слишком большой")
	ErrInternal      = New("INTERNAL_ERROR", http.StatusInternalServerError, "внутренняя ошибка сервера")
)
