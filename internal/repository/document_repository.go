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

const documentColumns = `uuid, owner_uuid, title, file_reference, file_url, page_count, size_bytes,
		       public_token, created_at, updated_at`

type DocumentRepository struct {
	*config.Database
}

func NewDocumentRepository(database *config.Database) *DocumentRepository {
	return &DocumentRepository{database}
}

// Create : сохраняем новый документ
func (r *DocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	query := `
		INSERT INTO documents (uuid, owner_uuid, title, file_reference, file_url, page_count, size_bytes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		document.UUID,
		document.OwnerUUID,
		document.Title,
		document.FileReference,
		document.FileURL,
		document.PageCount,
		document.SizeBytes,
		document.CreatedAt,
		document.UpdatedAt,
	)
	if err != nil {
		return util.LogError("[DocumentRepo] не удалось сохранить документ", err)
	}

	return nil
}

// GetByUUID : документ вместе с грантами, ErrNotFound если документа нет
func (r *DocumentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE uuid = $1`

	var document model.Document
	err := sqlx.GetContext(ctx, exec, &document, query, documentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Wrap(err, apperrors.ErrNotFound, "документ не найден")
	}
	if err != nil {
		return nil, util.LogError("[DocumentRepo] не удалось получить документ", err)
	}

	grants := []model.Grant{}
	err = sqlx.SelectContext(ctx, exec, &grants, `
		SELECT document_uuid, grantee_uuid, grantee_email, access_token, granted_at
		FROM document_grants
		WHERE document_uuid = $1
		ORDER BY granted_at ASC
	`, documentUUID)
	if err != nil {
		return nil, util.LogError("[DocumentRepo] не удалось получить список грантов", err)
	}
	document.Grants = grants

	return &document, nil
}

// ListByOwner : документы владельца, новые первыми
func (r *DocumentRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE owner_uuid = $1 ORDER BY created_at DESC`

	docs := []model.Document{}
	if err := sqlx.SelectContext(ctx, exec, &docs, query, ownerUUID); err != nil {
		return nil, util.LogError("[DocumentRepo] не удалось получить список документов", err)
	}

	return docs, nil
}

// UpdateTitle : переименование, ErrNotFound если строки нет
func (r *DocumentRepository) UpdateTitle(ctx context.Context, exec sqlx.ExtContext, documentUUID, title string) error {
	result, err := exec.ExecContext(ctx, `
		UPDATE documents SET title = $2, updated_at = NOW() WHERE uuid = $1
	`, documentUUID, title)
	if err != nil {
		return util.LogError("[DocumentRepo] не удалось переименовать документ", err)
	}

	return expectAffected(result, "документ не найден")
}

// SetPublicToken : записывает новый публичный токен, старый перестаёт действовать
func (r *DocumentRepository) SetPublicToken(ctx context.Context, exec sqlx.ExtContext, documentUUID, token string) error {
	result, err := exec.ExecContext(ctx, `
		UPDATE documents SET public_token = $2, updated_at = NOW() WHERE uuid = $1
	`, documentUUID, token)
	if err != nil {
		return util.LogError("[DocumentRepo] не удалось сохранить публичный токен", err)
	}

	return expectAffected(result, "документ не найден")
}

// Delete : удаляет комментарии и сам документ, вызывать внутри транзакции
func (r *DocumentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM comments WHERE document_uuid = $1`, documentUUID); err != nil {
		return util.LogError("[DocumentRepo] не удалось удалить комментарии документа", err)
	}

	result, err := exec.ExecContext(ctx, `DELETE FROM documents WHERE uuid = $1`, documentUUID)
	if err != nil {
		return util.LogError("[DocumentRepo] не удалось удалить документ", err)
	}

	return expectAffected(result, "документ не найден")
}

// Conn : соединение для одиночных запросов вне транзакции
func (r *DocumentRepository) Conn() sqlx.ExtContext {
	return r.DB
}

// BeginTX : возвращает транзакцию и функции rollback / commit
func (r *DocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	return beginTX(ctx, r.DB)
}

func beginTX(ctx context.Context, db *sqlx.DB) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, util.LogError("не удалось начать транзакцию", err)
	}

	rollback := func() error {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return err
		}
		return nil
	}

	return tx, rollback, tx.Commit, nil
}

func expectAffected(result sql.Result, notFoundMessage string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("не удалось проверить число изменённых строк", err)
	}
	if rowsAffected == 0 {
		return apperrors.Clone(apperrors.ErrNotFound, notFoundMessage)
	}
	return nil
}
