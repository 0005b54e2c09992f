package ports

import (
	"context"
	"pdf-share-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	ListExcept(ctx context.Context, exec sqlx.ExtContext, uuid string) ([]model.UserSummary, error)
	Conn() sqlx.ExtContext
}

type UserService interface {
	Register(ctx context.Context, name, email, password, userAgent, ipAddress string) (*model.Session, error)
	GetUser(ctx context.Context, uuid string) (*model.UserSummary, error)
}
