package handler

import (
	"context"
	"net/http"
	"pdf-share-server/internal/model/requestresponse"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/util"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и сразу выдаёт пару токенов.
// @Description Пароль: от 8 символов, строчные и заглавные буквы, цифра и спецсимвол.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Данные пользователя"
// @Success 201 {object} util.Envelope{data=model.Session}
// @Failure 400 {object} util.Envelope "Некорректные данные или слабый пароль"
// @Failure 409 {object} util.Envelope "Email уже занят"
// @Failure 500 {object} util.Envelope
// @Router /api/auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := h.UserService.Register(ctx, req.Name, req.Email, req.Password, r.UserAgent(), clientIP(r))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, session)
}
