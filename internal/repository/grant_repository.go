package repository

import (
	"context"
	"pdf-share-server/config"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type GrantDocumentRepository struct {
	database *config.Database
}

func NewGrantDocumentRepository(database *config.Database) *GrantDocumentRepository {
	return &GrantDocumentRepository{database: database}
}

// AddGrant : атомарно добавляет грант, false если у пользователя уже есть доступ
func (r *GrantDocumentRepository) AddGrant(ctx context.Context, exec sqlx.ExtContext, grant *model.Grant) (bool, error) {
	query := `
		INSERT INTO document_grants (document_uuid, grantee_uuid, grantee_email, access_token, granted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (document_uuid, grantee_uuid) DO NOTHING
	`
	result, err := exec.ExecContext(ctx, query,
		grant.DocumentUUID,
		grant.GranteeUUID,
		grant.GranteeEmail,
		grant.AccessToken,
		grant.GrantedAt,
	)
	if err != nil {
		return false, util.LogError("[GrantRepo] не удалось предоставить доступ к документу", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[GrantRepo] не удалось проверить вставку гранта", err)
	}

	return rowsAffected == 1, nil
}

// ListSharedWith : документы, к которым у пользователя есть грант, новые гранты первыми
func (r *GrantDocumentRepository) ListSharedWith(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedDocumentRow, error) {
	rows := []model.SharedDocumentRow{}
	err := sqlx.SelectContext(ctx, exec, &rows, `
		SELECT d.uuid AS document_uuid, d.title, d.file_reference, d.file_url, d.created_at,
		       u.uuid AS owner_uuid, u.name AS owner_name, u.email AS owner_email,
		       g.granted_at, g.access_token
		FROM document_grants AS g
		INNER JOIN documents AS d ON d.uuid = g.document_uuid
		INNER JOIN users AS u ON u.uuid = d.owner_uuid
		WHERE g.grantee_uuid = $1
		ORDER BY g.granted_at DESC
	`, userUUID)
	if err != nil {
		return nil, util.LogError("[GrantRepo] не удалось получить список документов с доступом", err)
	}
	return rows, nil
}

func (r *GrantDocumentRepository) Conn() sqlx.ExtContext {
	return r.database.DB
}
