package service

import (
	"context"
	"path/filepath"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/sharing"
	"pdf-share-server/internal/util"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxTitleLength = 255

type DocumentService struct {
	documentLoader
	fileStorage ports.FileStorage
	now         func() time.Time
}

func NewDocumentService(
	documentRepository ports.DocumentRepository,
	cacheRepository ports.CacheRepository,
	fileStorage ports.FileStorage,
	metrics *MetricsService,
) *DocumentService {
	return &DocumentService{
		documentLoader: documentLoader{
			documentRepository: documentRepository,
			cacheRepository:    cacheRepository,
			metrics:            metrics,
		},
		fileStorage: fileStorage,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Upload : проверяет PDF, кладёт файл в хранилище и сохраняет метаданные
// Если запись в БД не удалась, загруженный файл удаляется
func (s *DocumentService) Upload(ctx context.Context, ownerUUID, title, filename string, content []byte) (*model.Document, error) {
	if ownerUUID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if len(content) == 0 {
		return nil, apperrors.Clone(apperrors.ErrInvalidInput, "файл не передан")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		name := sanitizeFilename(filename)
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	info, err := util.InspectPDF(content)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidInput, "файл не является корректным PDF")
	}

	documentUUID := uuid.New().String()
	stored, err := s.fileStorage.Upload(ctx, documentKey(ownerUUID, documentUUID), filename, content)
	if err != nil {
		return nil, err
	}

	now := s.now()
	document := &model.Document{
		UUID:          documentUUID,
		OwnerUUID:     ownerUUID,
		Title:         title,
		FileReference: stored.Reference,
		FileURL:       stored.ViewURL,
		PageCount:     info.PageCount,
		SizeBytes:     info.SizeBytes,
		Grants:        []model.Grant{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.documentRepository.Create(ctx, s.documentRepository.Conn(), document); err != nil {
		if deleteErr := s.fileStorage.Delete(ctx, stored.Reference); deleteErr != nil {
			util.LogWarn("[DocumentService] не удалось удалить файл после ошибки сохранения", deleteErr,
				zap.String("file_reference", stored.Reference))
		}
		return nil, err
	}

	s.metrics.RecordUpload(info.SizeBytes)
	zap.L().Info("[DocumentService] документ загружен",
		zap.String("document_uuid", document.UUID),
		zap.String("owner_uuid", ownerUUID),
		zap.Int("pages", info.PageCount),
	)

	document.FileURL = resolveFileURL(ctx, s.fileStorage, document.FileReference, document.FileURL)
	return document, nil
}

// ListMine : документы владельца, новые первыми
func (s *DocumentService) ListMine(ctx context.Context, ownerUUID string) ([]model.Document, error) {
	if ownerUUID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	documents, err := s.documentRepository.ListByOwner(ctx, s.documentRepository.Conn(), ownerUUID)
	if err != nil {
		return nil, err
	}

	for i := range documents {
		documents[i].FileURL = resolveFileURL(ctx, s.fileStorage, documents[i].FileReference, documents[i].FileURL)
	}
	return documents, nil
}

// GetDetails : полная карточка документа вместе с грантами и токеном, только для владельца
func (s *DocumentService) GetDetails(ctx context.Context, actorUUID, documentUUID string) (*model.Document, error) {
	document, err := s.load(ctx, documentUUID)
	if err != nil {
		return nil, err
	}

	if !sharing.IsOwner(actorUUID, document) {
		s.metrics.RecordAccessDenied("document_details")
		return nil, apperrors.Clone(apperrors.ErrForbidden, "карточка документа доступна только владельцу")
	}

	document.FileURL = resolveFileURL(ctx, s.fileStorage, document.FileReference, document.FileURL)
	return document, nil
}

// Rename : сначала имя в хранилище, потом в БД
func (s *DocumentService) Rename(ctx context.Context, actorUUID, documentUUID, title string) (*model.Document, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	document, err := s.loadFresh(ctx, documentUUID)
	if err != nil {
		return nil, err
	}

	if !sharing.IsOwner(actorUUID, document) {
		s.metrics.RecordAccessDenied("rename_document")
		return nil, apperrors.Clone(apperrors.ErrForbidden, "переименовать документ может только владелец")
	}

	if err := s.fileStorage.Rename(ctx, document.FileReference, title); err != nil {
		return nil, err
	}

	if err := s.documentRepository.UpdateTitle(ctx, s.documentRepository.Conn(), documentUUID, title); err != nil {
		return nil, err
	}
	s.invalidate(ctx, documentUUID)

	document.Title = title
	document.UpdatedAt = s.now()
	document.FileURL = resolveFileURL(ctx, s.fileStorage, document.FileReference, document.FileURL)
	return document, nil
}

// Delete : комментарии и документ удаляются в одной транзакции, файл после коммита
func (s *DocumentService) Delete(ctx context.Context, actorUUID, documentUUID string) error {
	document, err := s.loadFresh(ctx, documentUUID)
	if err != nil {
		return err
	}

	if !sharing.IsOwner(actorUUID, document) {
		s.metrics.RecordAccessDenied("delete_document")
		return apperrors.Clone(apperrors.ErrForbidden, "удалить документ может только владелец")
	}

	exec, rollback, commit, err := s.documentRepository.BeginTX(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := rollback(); err != nil {
			util.LogWarn("[DocumentService] ошибка отката транзакции", err)
		}
	}()

	if err := s.documentRepository.Delete(ctx, exec, documentUUID); err != nil {
		return err
	}

	if err := commit(); err != nil {
		return util.LogError("[DocumentService] не удалось закоммитить транзакцию", err)
	}

	s.invalidate(ctx, documentUUID)

	if err := s.fileStorage.Delete(ctx, document.FileReference); err != nil {
		util.LogWarn("[DocumentService] документ удалён, но файл остался в хранилище", err,
			zap.String("file_reference", document.FileReference))
	}

	zap.L().Info("[DocumentService] документ удалён", zap.String("document_uuid", documentUUID))
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return apperrors.Clone(apperrors.ErrInvalidInput, "название документа не может быть пустым")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return apperrors.Clone(apperrors.ErrInvalidInput, "название документа слишком длинное")
	}
	return nil
}
