package repository

import (
	"context"
	"database/sql"
	"errors"
	"pdf-share-server/config"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type CommentRepository struct {
	*config.Database
}

func NewCommentRepository(database *config.Database) *CommentRepository {
	return &CommentRepository{database}
}

// Create : сохраняет комментарий
func (r *CommentRepository) Create(ctx context.Context, exec sqlx.ExtContext, comment *model.Comment) error {
	_, err := exec.ExecContext(ctx, `
		INSERT INTO comments (uuid, document_uuid, author_uuid, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.UUID, comment.DocumentUUID, comment.AuthorUUID, comment.Text, comment.CreatedAt, comment.UpdatedAt)
	if err != nil {
		return util.LogError("[CommentRepo] не удалось сохранить комментарий", err)
	}
	return nil
}

func (r *CommentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, commentUUID string) (*model.Comment, error) {
	var comment model.Comment
	err := sqlx.GetContext(ctx, exec, &comment, `
		SELECT uuid, document_uuid, author_uuid, text, created_at, updated_at
		FROM comments WHERE uuid = $1
	`, commentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Wrap(err, apperrors.ErrNotFound, "комментарий не найден")
	}
	if err != nil {
		return nil, util.LogError("[CommentRepo] не удалось получить комментарий", err)
	}
	return &comment, nil
}

// ListByDocument : комментарии документа, старые первыми, с именем автора
func (r *CommentRepository) ListByDocument(ctx context.Context, exec sqlx.ExtContext, documentUUID string) ([]model.CommentWithAuthor, error) {
	comments := []model.CommentWithAuthor{}
	err := sqlx.SelectContext(ctx, exec, &comments, `
		SELECT c.uuid, c.document_uuid, c.author_uuid, c.text, c.created_at, c.updated_at,
		       u.name AS author_name, u.email AS author_email
		FROM comments AS c
		INNER JOIN users AS u ON u.uuid = c.author_uuid
		WHERE c.document_uuid = $1
		ORDER BY c.created_at ASC
	`, documentUUID)
	if err != nil {
		return nil, util.LogError("[CommentRepo] не удалось получить список комментариев", err)
	}
	return comments, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, exec sqlx.ExtContext, commentUUID, text string) error {
	result, err := exec.ExecContext(ctx, `
		UPDATE comments SET text = $2, updated_at = NOW() WHERE uuid = $1
	`, commentUUID, text)
	if err != nil {
		return util.LogError("[CommentRepo] не удалось обновить комментарий", err)
	}
	return expectAffected(result, "комментарий не найден")
}

func (r *CommentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, commentUUID string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM comments WHERE uuid = $1`, commentUUID)
	if err != nil {
		return util.LogError("[CommentRepo] не удалось удалить комментарий", err)
	}
	return expectAffected(result, "комментарий не найден")
}

func (r *CommentRepository) Conn() sqlx.ExtContext {
	return r.DB
}
