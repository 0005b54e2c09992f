package handler

import (
	"context"
	"net/http"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model/requestresponse"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/util"
	"strings"

	"github.com/go-chi/chi/v5"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	ports.JWTServiceInterface
	ports.UserService
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	jwtService ports.JWTServiceInterface,
	userService ports.UserService,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		jwtService,
		userService,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт пару access и refresh токенов по email и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} util.Envelope{data=model.Session}
// @Failure 400 {object} util.Envelope "Некорректный JSON или пустые поля"
// @Failure 401 {object} util.Envelope "Неверный email или пароль"
// @Failure 500 {object} util.Envelope
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := h.AuthenticationService.Login(ctx, req.Email, req.Password, r.UserAgent(), clientIP(r))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, session)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags Authentication
// @Produce json
// @Success 200 {object} util.Envelope{data=model.UserSummary}
// @Failure 401 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := h.UserService.GetUser(ctx, actorUUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, user)
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Обновляет пару токенов по access токену (можно просроченному) и refresh токену
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} util.Envelope{data=model.TokensPair}
// @Failure 400 {object} util.Envelope "Неверный JSON"
// @Failure 401 {object} util.Envelope "Токены невалидны или уже использованы"
// @Failure 500 {object} util.Envelope
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	accessToken, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(accessToken) == "" {
		util.HandleError(w, apperrors.Clone(apperrors.ErrUnauthorized, "пустой или неверный заголовок Authorization"))
		return
	}

	var req requestresponse.RefreshTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	tokens, err := h.AuthenticationService.RefreshToken(ctx, r.UserAgent(), clientIP(r), strings.TrimSpace(accessToken), req.RefreshToken)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Помечает использованным refresh-токен, связанный с access-токеном из URL.
// @Tags Authentication
// @Produce json
// @Param token path string true "Access-токен пользователя (JWT)"
// @Success 200 {object} util.Envelope{data=requestresponse.LogoutResponse}
// @Failure 400 {object} util.Envelope
// @Failure 401 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Router /api/auth/{token} [delete]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken := chi.URLParam(r, "token")
	if accessToken == "" {
		util.HandleError(w, apperrors.Clone(apperrors.ErrInvalidInput, "токен не указан"))
		return
	}

	claims, err := h.JWTServiceInterface.ParseExpiredJWT(accessToken)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.AuthenticationService.Logout(ctx, claims.RefreshTokenUUID); err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.LogoutResponse{LoggedOut: true})
}
