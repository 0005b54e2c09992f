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
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя, ErrConflict если email занят
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, name, email, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING uuid, name, email, created_at
	`

	createdUser := &model.User{}
	err := exec.QueryRowxContext(ctx, query, user.UUID, user.Name, user.Email, user.PasswordHash).
		Scan(&createdUser.UUID, &createdUser.Name, &createdUser.Email, &createdUser.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, apperrors.Wrap(err, apperrors.ErrConflict, "пользователь с таким email уже существует")
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	query := `SELECT uuid, name, email, password_hash, created_at FROM users WHERE uuid = $1`
	return r.findOne(ctx, exec, query, uuid)
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	query := `SELECT uuid, name, email, password_hash, created_at FROM users WHERE email = $1`
	return r.findOne(ctx, exec, query, email)
}

// ListExcept : все пользователи кроме указанного, по имени, затем по email
func (r *UserRepository) ListExcept(ctx context.Context, exec sqlx.ExtContext, uuid string) ([]model.UserSummary, error) {
	users := []model.UserSummary{}
	err := sqlx.SelectContext(ctx, exec, &users, `
		SELECT uuid, name, email
		FROM users
		WHERE uuid <> $1
		ORDER BY name ASC, email ASC
	`, uuid)
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось получить список пользователей", err)
	}
	return users, nil
}

func (r *UserRepository) Conn() sqlx.ExtContext {
	return r.DB
}

func (r *UserRepository) findOne(ctx context.Context, exec sqlx.ExtContext, query string, arg string) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Wrap(err, apperrors.ErrNotFound, "пользователь не найден")
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}
