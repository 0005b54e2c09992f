package handler

import (
	"context"
	"net/http"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/model/requestresponse"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/security"
	"pdf-share-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type CommentHandler struct {
	ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService}
}

// CreateComment godoc
// @Summary Добавить комментарий
// @Description Комментировать могут владелец и пользователи с грантом.
// @Tags Comments
// @Accept json
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param body body requestresponse.CommentRequest true "Текст комментария"
// @Success 201 {object} util.Envelope{data=model.Comment}
// @Failure 400 {object} util.Envelope
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id}/comments [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req requestresponse.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	comment, err := h.CommentService.Create(ctx, actorUUID, chi.URLParam(r, "doc_id"), req.Text)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, comment)
}

// ListComments godoc
// @Summary Комментарии к документу
// @Description Доступно владельцу и пользователям с грантом, а анонимно по действующему публичному токену.
// @Tags Comments
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param token query string false "Публичный токен"
// @Success 200 {object} util.Envelope{data=[]model.CommentWithAuthor}
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Router /api/docs/{doc_id}/comments [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	access := model.CommentAccess{
		ActorUUID:   security.ActorUUID(r.Context()),
		PublicToken: r.URL.Query().Get("token"),
	}

	comments, err := h.CommentService.List(ctx, chi.URLParam(r, "doc_id"), access)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteList(w, comments, len(comments))
}

// UpdateComment godoc
// @Summary Изменить комментарий
// @Description Менять текст может только автор.
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment_id path string true "UUID комментария"
// @Param body body requestresponse.CommentRequest true "Новый текст"
// @Success 200 {object} util.Envelope{data=model.Comment}
// @Failure 400 {object} util.Envelope
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/comments/{comment_id} [put]
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req requestresponse.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	comment, err := h.CommentService.Update(ctx, actorUUID, chi.URLParam(r, "comment_id"), req.Text)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Удалить комментарий
// @Description Удалить может только автор, владелец документа тоже не может.
// @Tags Comments
// @Produce json
// @Param comment_id path string true "UUID комментария"
// @Success 200 {object} util.Envelope{data=requestresponse.DeleteCommentResponse}
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	commentUUID := chi.URLParam(r, "comment_id")
	if err := h.CommentService.Delete(ctx, actorUUID, commentUUID); err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DeleteCommentResponse{UUID: commentUUID, Deleted: true})
}
