package ports

import (
	"context"
	"pdf-share-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type CommentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, comment *model.Comment) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, commentUUID string) (*model.Comment, error)
	ListByDocument(ctx context.Context, exec sqlx.ExtContext, documentUUID string) ([]model.CommentWithAuthor, error)
	UpdateText(ctx context.Context, exec sqlx.ExtContext, commentUUID, text string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, commentUUID string) error
	Conn() sqlx.ExtContext
}

type CommentService interface {
	Create(ctx context.Context, actorUUID, documentUUID, text string) (*model.Comment, error)
	List(ctx context.Context, documentUUID string, access model.CommentAccess) ([]model.CommentWithAuthor, error)
	Update(ctx context.Context, actorUUID, commentUUID, text string) (*model.Comment, error)
	Delete(ctx context.Context, actorUUID, commentUUID string) error
}
