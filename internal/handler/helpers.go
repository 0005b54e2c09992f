package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/security"
	"pdf-share-server/internal/util"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	uploadTimeout  = 60 * time.Second
	maxJSONBody    = 1 << 20
)

// decodeJSON : читает тело и валидирует его тегами validate, при ошибке ответ уже записан
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := decoder.Decode(target); err != nil {
		util.HandleError(w, apperrors.Wrap(err, apperrors.ErrInvalidInput, "некорректный JSON"))
		return false
	}

	if err := util.ValidateStruct(target); err != nil {
		util.HandleError(w, err)
		return false
	}
	return true
}

// requireActor : UUID пользователя из JWT, при отсутствии пишет 401
func requireActor(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, err)
		return "", false
	}
	return claims.UserUUID, true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
