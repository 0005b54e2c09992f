package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model/requestresponse"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/util"

	"github.com/go-chi/chi/v5"
)

// MaxUploadSize : предельный размер загружаемого PDF
const MaxUploadSize = 20 << 20

type DocumentHandler struct {
	ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService}
}

// UploadDocument godoc
// @Summary Загрузка PDF документа
// @Description Принимает multipart/form-data с полем file (PDF) и необязательным title.
// @Description Файл проверяется, сохраняется во внешнее хранилище, а метаданные в БД.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF файл"
// @Param title formData string false "Название документа, по умолчанию имя файла"
// @Success 201 {object} util.Envelope{data=requestresponse.DocumentResponse}
// @Failure 400 {object} util.Envelope "Файл не передан или не является PDF"
// @Failure 401 {object} util.Envelope
// @Failure 413 {object} util.Envelope "Файл слишком большой"
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs [post]
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			util.HandleError(w, apperrors.ErrTooLarge)
			return
		}
		util.HandleError(w, apperrors.Wrap(err, apperrors.ErrInvalidInput, "неверный формат запроса"))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, apperrors.Wrap(err, apperrors.ErrInvalidInput, "файл не найден в запросе"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		util.HandleError(w, util.LogError("[DocumentHandler] ошибка чтения файла", err))
		return
	}
	if len(content) > MaxUploadSize {
		util.HandleError(w, apperrors.ErrTooLarge)
		return
	}

	document, err := h.DocumentService.Upload(ctx, actorUUID, r.FormValue("title"), header.Filename, content)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.DocumentResponseFromModel(document))
}

// ListDocuments godoc
// @Summary Мои документы
// @Description Документы текущего пользователя, новые первыми.
// @Tags Documents
// @Produce json
// @Success 200 {object} util.Envelope{data=[]requestresponse.DocumentResponse}
// @Failure 401 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	documents, err := h.DocumentService.ListMine(ctx, actorUUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	response := make([]requestresponse.DocumentResponse, 0, len(documents))
	for i := range documents {
		response = append(response, requestresponse.DocumentResponseFromModel(&documents[i]))
	}
	util.WriteList(w, response, len(response))
}

// GetDocument godoc
// @Summary Карточка документа
// @Description Полные данные документа, включая гранты и публичный токен. Только для владельца.
// @Tags Documents
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Success 200 {object} util.Envelope{data=requestresponse.DocumentResponse}
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	document, err := h.DocumentService.GetDetails(ctx, actorUUID, chi.URLParam(r, "doc_id"))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DocumentResponseFromModel(document))
}

// RenameDocument godoc
// @Summary Переименование документа
// @Tags Documents
// @Accept json
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param body body requestresponse.RenameDocumentRequest true "Новое название"
// @Success 200 {object} util.Envelope{data=requestresponse.DocumentResponse}
// @Failure 400 {object} util.Envelope
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id} [put]
func (h *DocumentHandler) RenameDocument(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req requestresponse.RenameDocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	document, err := h.DocumentService.Rename(ctx, actorUUID, chi.URLParam(r, "doc_id"), req.Title)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DocumentResponseFromModel(document))
}

// DeleteDocument godoc
// @Summary Удаление документа
// @Description Удаляет документ вместе со всеми комментариями и файлом в хранилище.
// @Tags Documents
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Success 200 {object} util.Envelope{data=requestresponse.DeleteDocumentResponse}
// @Failure 401 {object} util.Envelope
// @Failure 403 {object} util.Envelope
// @Failure 404 {object} util.Envelope
// @Failure 500 {object} util.Envelope
// @Security ApiKeyAuth
// @Router /api/docs/{doc_id} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	actorUUID, ok := requireActor(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	documentUUID := chi.URLParam(r, "doc_id")
	if err := h.DocumentService.Delete(ctx, actorUUID, documentUUID); err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DeleteDocumentResponse{UUID: documentUUID, Deleted: true})
}
