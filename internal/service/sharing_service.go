package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/sharing"
	"strings"
	"time"

	"go.uber.org/zap"
)

type SharingService struct {
	documentLoader
	grantRepository ports.GrantDocumentRepository
	userRepository  ports.UserRepository
	fileStorage     ports.FileStorage
	publicBaseURL   string
	now             func() time.Time
}

func NewSharingService(
	documentRepository ports.DocumentRepository,
	grantRepository ports.GrantDocumentRepository,
	userRepository ports.UserRepository,
	cacheRepository ports.CacheRepository,
	fileStorage ports.FileStorage,
	metrics *MetricsService,
	publicBaseURL string,
) *SharingService {
	return &SharingService{
		documentLoader: documentLoader{
			documentRepository: documentRepository,
			cacheRepository:    cacheRepository,
			metrics:            metrics,
		},
		grantRepository: grantRepository,
		userRepository:  userRepository,
		fileStorage:     fileStorage,
		publicBaseURL:   strings.TrimRight(publicBaseURL, "/"),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// GrantAccess : владелец открывает документ пользователю, email должен совпадать с текущим email пользователя
func (s *SharingService) GrantAccess(ctx context.Context, actorUUID, documentUUID, granteeUUID, granteeEmail string) (*model.Grant, error) {
	granteeUUID = strings.TrimSpace(granteeUUID)
	granteeEmail = strings.TrimSpace(granteeEmail)
	if granteeUUID == "" || granteeEmail == "" {
		return nil, apperrors.Clone(apperrors.ErrInvalidInput, "нужно указать пользователя и его email")
	}

	document, err := s.load(ctx, documentUUID)
	if err != nil {
		return nil, err
	}

	if !sharing.CanManageSharing(actorUUID, document) {
		return nil, s.deny("grant_access", actorUUID, documentUUID, "делиться документом может только владелец")
	}

	if granteeUUID == document.OwnerUUID {
		return nil, apperrors.Clone(apperrors.ErrInvalidInput, "владелец уже имеет доступ к документу")
	}

	grantee, err := s.userRepository.FindByUUID(ctx, s.userRepository.Conn(), granteeUUID)
	if err != nil {
		return nil, err
	}
	if grantee.Email != granteeEmail {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "пользователь не найден")
	}

	grant, err := sharing.AddGrant(document, grantee.UUID, grantee.Email, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.grantRepository.AddGrant(ctx, s.grantRepository.Conn(), &grant)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, documentUUID)
	if !created {
		return nil, sharing.ErrDuplicateGrant
	}

	s.metrics.RecordGrant()
	zap.L().Info("[SharingService] доступ к документу выдан",
		zap.String("document_uuid", documentUUID),
		zap.String("grantee_uuid", grant.GranteeUUID),
	)

	return &grant, nil
}

// GeneratePublicLink : выпускает новый публичный токен, прежняя ссылка перестаёт работать
func (s *SharingService) GeneratePublicLink(ctx context.Context, actorUUID, documentUUID string) (string, error) {
	document, err := s.loadFresh(ctx, documentUUID)
	if err != nil {
		return "", err
	}

	if !sharing.CanManageSharing(actorUUID, document) {
		return "", s.deny("generate_public_link", actorUUID, documentUUID, "публичную ссылку может создать только владелец")
	}

	token, err := sharing.IssuePublicToken(document)
	if err != nil {
		return "", err
	}

	if err := s.documentRepository.SetPublicToken(ctx, s.documentRepository.Conn(), documentUUID, token); err != nil {
		return "", err
	}
	s.invalidate(ctx, documentUUID)
	s.metrics.RecordPublicLink()

	return s.publicURL(documentUUID, token), nil
}

// ResolvePublicAccess : анонимный просмотр по токену, токен сверяется с БД, а не с кэшем
func (s *SharingService) ResolvePublicAccess(ctx context.Context, documentUUID, token string) (*model.DocumentView, error) {
	if token == "" {
		return nil, s.deny("public_access", "", documentUUID, "неверная публичная ссылка")
	}

	document, err := s.loadFresh(ctx, documentUUID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, s.deny("public_access", "", documentUUID, "неверная публичная ссылка")
	}
	if err != nil {
		return nil, err
	}

	if !sharing.TokenMatches(document, token) {
		return nil, s.deny("public_access", "", documentUUID, "неверная публичная ссылка")
	}

	view := resolveView(ctx, s.fileStorage, document)
	return &view, nil
}

// ResolveGrantedAccess : просмотр документа пользователем, которому выдан доступ
func (s *SharingService) ResolveGrantedAccess(ctx context.Context, actorUUID, documentUUID string) (*model.DocumentView, error) {
	document, err := s.load(ctx, documentUUID)
	if err != nil {
		return nil, err
	}

	if !sharing.HasDirectGrant(actorUUID, document) {
		return nil, s.deny("granted_access", actorUUID, documentUUID, "у вас нет доступа к документу")
	}

	view := resolveView(ctx, s.fileStorage, document)
	return &view, nil
}

// ListSharedWithMe : документы, которыми поделились с пользователем, последние гранты первыми
func (s *SharingService) ListSharedWithMe(ctx context.Context, actorUUID string) ([]model.SharedDocument, error) {
	rows, err := s.grantRepository.ListSharedWith(ctx, s.grantRepository.Conn(), actorUUID)
	if err != nil {
		return nil, err
	}

	documents := make([]model.SharedDocument, 0, len(rows))
	for _, row := range rows {
		shared := row.ToSharedDocument()
		shared.FileURL = resolveFileURL(ctx, s.fileStorage, shared.FileReference, shared.FileURL)
		documents = append(documents, shared)
	}
	return documents, nil
}

// ListShareCandidates : все пользователи кроме текущего, для выбора в интерфейсе
func (s *SharingService) ListShareCandidates(ctx context.Context, actorUUID string) ([]model.UserSummary, error) {
	if actorUUID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.userRepository.ListExcept(ctx, s.userRepository.Conn(), actorUUID)
}

func (s *SharingService) publicURL(documentUUID, token string) string {
	return fmt.Sprintf("%s/shared/%s?token=%s", s.publicBaseURL, url.PathEscape(documentUUID), url.QueryEscape(token))
}

func (s *SharingService) deny(operation, actorUUID, documentUUID, message string) error {
	s.metrics.RecordAccessDenied(operation)
	zap.L().Info("[SharingService] доступ запрещён",
		zap.String("operation", operation),
		zap.String("actor_uuid", actorUUID),
		zap.String("document_uuid", documentUUID),
	)
	return apperrors.Clone(apperrors.ErrForbidden, message)
}
