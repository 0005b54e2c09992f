package service

import (
	"context"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/sharing"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxCommentLength = 5000

type CommentService struct {
	documentLoader
	commentRepository ports.CommentRepository
	now               func() time.Time
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	documentRepository ports.DocumentRepository,
	cacheRepository ports.CacheRepository,
	metrics *MetricsService,
) *CommentService {
	return &CommentService{
		documentLoader: documentLoader{
			documentRepository: documentRepository,
			cacheRepository:    cacheRepository,
			metrics:            metrics,
		},
		commentRepository: commentRepository,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Create : комментировать могут владелец и пользователи с грантом, по публичной ссылке нельзя
func (s *CommentService) Create(ctx context.Context, actorUUID, documentUUID, text string) (*model.Comment, error) {
	text, err := normalizeCommentText(text)
	if err != nil {
		return nil, err
	}

	document, err := s.load(ctx, documentUUID)
	if err != nil {
		return nil, err
	}

	if !sharing.CanComment(actorUUID, document) {
		s.metrics.RecordAccessDenied("create_comment")
		return nil, apperrors.Clone(apperrors.ErrForbidden, "нет доступа к документу")
	}

	now := s.now()
	comment := &model.Comment{
		UUID:         uuid.New().String(),
		DocumentUUID: documentUUID,
		AuthorUUID:   actorUUID,
		Text:         text,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.commentRepository.Create(ctx, s.commentRepository.Conn(), comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List : читать комментарии может тот, кто видит документ, либо владелец верной публичной ссылки
func (s *CommentService) List(ctx context.Context, documentUUID string, access model.CommentAccess) ([]model.CommentWithAuthor, error) {
	if access.ActorUUID == "" && access.PublicToken == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var document *model.Document
	var err error
	if access.PublicToken == "" {
		document, err = s.load(ctx, documentUUID)
	} else {
		// токен сверяем только со свежей записью
		document, err = s.loadFresh(ctx, documentUUID)
	}
	if err != nil {
		return nil, err
	}

	allowed := sharing.CanView(access.ActorUUID, document) ||
		(access.PublicToken != "" && sharing.TokenMatches(document, access.PublicToken))
	if !allowed {
		s.metrics.RecordAccessDenied("list_comments")
		return nil, apperrors.Clone(apperrors.ErrForbidden, "нет доступа к документу")
	}

	return s.commentRepository.ListByDocument(ctx, s.commentRepository.Conn(), documentUUID)
}

// Update : править комментарий может только его автор, даже владелец документа не может
func (s *CommentService) Update(ctx context.Context, actorUUID, commentUUID, text string) (*model.Comment, error) {
	text, err := normalizeCommentText(text)
	if err != nil {
		return nil, err
	}

	comment, err := s.authorizeCommentChange(ctx, actorUUID, commentUUID, "update_comment")
	if err != nil {
		return nil, err
	}

	if err := s.commentRepository.UpdateText(ctx, s.commentRepository.Conn(), commentUUID, text); err != nil {
		return nil, err
	}

	comment.Text = text
	comment.UpdatedAt = s.now()
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, actorUUID, commentUUID string) error {
	if _, err := s.authorizeCommentChange(ctx, actorUUID, commentUUID, "delete_comment"); err != nil {
		return err
	}
	return s.commentRepository.Delete(ctx, s.commentRepository.Conn(), commentUUID)
}

func (s *CommentService) authorizeCommentChange(ctx context.Context, actorUUID, commentUUID, operation string) (*model.Comment, error) {
	comment, err := s.commentRepository.GetByUUID(ctx, s.commentRepository.Conn(), commentUUID)
	if err != nil {
		return nil, err
	}

	if !sharing.CanModifyComment(actorUUID, comment) {
		s.metrics.RecordAccessDenied(operation)
		return nil, apperrors.Clone(apperrors.ErrForbidden, "изменять комментарий может только его автор")
	}
	return comment, nil
}

func normalizeCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.Clone(apperrors.ErrInvalidInput, "текст комментария не может быть пустым")
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return "", apperrors.Clone(apperrors.ErrInvalidInput, "комментарий слишком длинный")
	}
	return text, nil
}
