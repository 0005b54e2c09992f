package util

import (
	"fmt"

	"go.uber.org/zap"
)

// LogError : пишет ошибку в лог и возвращает её обёрнутой с сообщением
func LogError(message string, err error) error {
	zap.L().Error(message, zap.Error(err))
	return fmt.Errorf("%s: %w", message, err)
}

// LogWarn : для ошибок, после которых запрос продолжается (кэш, метрики)
func LogWarn(message string, err error, fields ...zap.Field) {
	zap.L().Warn(message, append(fields, zap.Error(err))...)
}
