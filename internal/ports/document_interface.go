package ports

import (
	"context"
	"pdf-share-server/internal/model"

	"github.com/jmoiron/sqlx"
)

// DocumentRepository : SQL слой
type DocumentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Document, error)
	UpdateTitle(ctx context.Context, exec sqlx.ExtContext, documentUUID, title string) error
	SetPublicToken(ctx context.Context, exec sqlx.ExtContext, documentUUID, token string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string) error
	Conn() sqlx.ExtContext
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type GrantDocumentRepository interface {
	AddGrant(ctx context.Context, exec sqlx.ExtContext, grant *model.Grant) (bool, error)
	ListSharedWith(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedDocumentRow, error)
	Conn() sqlx.ExtContext
}

type DocumentService interface {
	Upload(ctx context.Context, ownerUUID, title, filename string, content []byte) (*model.Document, error)
	ListMine(ctx context.Context, ownerUUID string) ([]model.Document, error)
	GetDetails(ctx context.Context, actorUUID, documentUUID string) (*model.Document, error)
	Rename(ctx context.Context, actorUUID, documentUUID, title string) (*model.Document, error)
	Delete(ctx context.Context, actorUUID, documentUUID string) error
}

type SharingService interface {
	GrantAccess(ctx context.Context, actorUUID, documentUUID, granteeUUID, granteeEmail string) (*model.Grant, error)
	GeneratePublicLink(ctx context.Context, actorUUID, documentUUID string) (string, error)
	ResolvePublicAccess(ctx context.Context, documentUUID, token string) (*model.DocumentView, error)
	ResolveGrantedAccess(ctx context.Context, actorUUID, documentUUID string) (*model.DocumentView, error)
	ListSharedWithMe(ctx context.Context, actorUUID string) ([]model.SharedDocument, error)
	ListShareCandidates(ctx context.Context, actorUUID string) ([]model.UserSummary, error)
}
