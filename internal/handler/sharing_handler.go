package handler

import (
	"context"
	"net/http"
	"pdf-share-server/internal/model/requestresponse"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type SharingHandler struct {
	ports.SharingService
}

func NewSharingHandler(sharingService ports.SharingService) *SharingHandler {
	return &SharingHandler{sharingService}
}

// ShareWithUser godoc
// @Summary Открыть документ пользователю
// @Description Владелец выдаёт доступ пользователю. Email должен совпадать с email пользователя.
// @Tags Sharing
// @Accept json
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param body body requestresponse.GrantAccessRequest true "Кому открыть доступ"
// @Success 201 {object} util.Envelope{data=model.Grant}
// @Failure 400 {object} util.Envelope "Не указан пользователь или email"
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope "Вы не владелец документа"
// @Failure 404 {object} util.Envelope "Документ или пользователь не найден"
// @Failure 409 {object} util.Envelope "У пользователя уже есть доступ"
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id}/share/user [post]
func (h *SharingHandler) ShareWithUser(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req requestresponse.GrantAccessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	grant, err := h.SharingService.GrantAccess(ctx, actorUUID, chi.URLParam(r, "doc_id"), req.UserUUID, req.Email)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, grant)
}

// CreatePublicLink godoc
// @Summary Публичная ссылка на документ
// @Description Выпускает новый токен, предыдущая публичная ссылка перестаёт работать.
// @Tags Sharing
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Success 200 {object} util.Envelope{data=requestresponse.PublicLinkResponse}
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id}/share/public [post]
func (h *SharingHandler) CreatePublicLink(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	link, err := h.SharingService.GeneratePublicLink(ctx, actorUUID, chi.URLParam(r, "doc_id"))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.PublicLinkResponse{URL: link})
}

// GetPublicDocument godoc
// @Summary Документ по публичной ссылке
// @Description Анонимный просмотр. Гранты и токены в ответ не попадают.
// @Tags Public Documents
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param token query string true "Публичный токен"
// @Success 200 {object} util.Envelope{data=model.DocumentView}
// @Failure 403 {object} util.Envelope "Неверная или устаревшая ссылка"
// @Failure 500 {object} util.Envelope
// @Router /public/docs/{doc_id} [get]
func (h *SharingHandler) GetPublicDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	view, err := h.SharingService.ResolvePublicAccess(ctx, chi.URLParam(r, "doc_id"), r.URL.Query().Get("token"))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, view)
}

// GetExternalDocument godoc
// @Summary Документ, которым со мной поделились
// @Description Просмотр документа пользователем с грантом. Владелец пользуется /api/docs/{doc_id}.
// @Tags Sharing
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Success 200 {object} util.Envelope{data=model.DocumentView}
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id}/external-access [get]
func (h *SharingHandler) GetExternalDocument(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	view, err := h.SharingService.ResolveGrantedAccess(ctx, actorUUID, chi.URLParam(r, "doc_id"))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, view)
}

// ListSharedWithMe godoc
// @Summary Документы, которыми со мной поделились
// @Tags Sharing
// @Produce json
// @Success 200 {object} util.Envelope{data=[]model.SharedDocument}
// @Failure 401 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/shared-with-me [get]
func (h *SharingHandler) ListSharedWithMe(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	documents, err := h.SharingService.ListSharedWithMe(ctx, actorUUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteList(w, documents, len(documents))
}

// ListShareCandidates godoc
// @Summary С кем можно поделиться
// @Description Все пользователи кроме текущего, по имени и email.
// @Tags Sharing
// @Produce json
// @Success 200 {object} util.Envelope{data=[]model.UserSummary}
// @Failure 401 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/users/share-candidates [get]
func (h *SharingHandler) ListShareCandidates(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := h.SharingService.ListShareCandidates(ctx, actorUUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteList(w, users, len(users))
}
