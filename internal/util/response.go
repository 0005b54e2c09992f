package util

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"pdf-share-server/internal/apperrors"
)

// Envelope : единый формат всех ответов API
type Envelope struct {
	Data  interface{}      `json:"data,omitempty"`
	Count *int             `json:"count,omitempty"`
	Error *apperrors.Error `json:"error,omitempty"`
}

// WriteJSON : успешный ответ с данными
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	writeEnvelope(w, statusCode, Envelope{Data: data})
}

// WriteList : успешный ответ со списком и количеством элементов
func WriteList(w http.ResponseWriter, data interface{}, count int) {
	writeEnvelope(w, http.StatusOK, Envelope{Data: data, Count: &count})
}

// HandleError : переводит ошибку в HTTP статус и пишет её в конверте
func HandleError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		zap.L().Error("внутренняя ошибка при обработке запроса", zap.Error(err))
		appErr = apperrors.ErrInternal
	}
	writeEnvelope(w, appErr.Status, Envelope{Error: appErr})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		zap.L().Warn("не удалось записать ответ", zap.Error(err))
	}
}
