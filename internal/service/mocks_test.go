package service_test

import (
	"context"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/security"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// ===== REPOSITORIES =====

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	return m.Called(ctx, exec, document).Error(0)
}

func (m *MockDocumentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error) {
	args := m.Called(ctx, exec, documentUUID)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Document, error) {
	args := m.Called(ctx, exec, ownerUUID)
	if d, ok := args.Get(0).([]model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) UpdateTitle(ctx context.Context, exec sqlx.ExtContext, documentUUID, title string) error {
	return m.Called(ctx, exec, documentUUID, title).Error(0)
}

func (m *MockDocumentRepository) SetPublicToken(ctx context.Context, exec sqlx.ExtContext, documentUUID, token string) error {
	return m.Called(ctx, exec, documentUUID, token).Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string) error {
	return m.Called(ctx, exec, documentUUID).Error(0)
}

func (m *MockDocumentRepository) Conn() sqlx.ExtContext {
	return nil
}

func (m *MockDocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	rollback, _ := args.Get(0).(func() error)
	commit, _ := args.Get(1).(func() error)
	return nil, rollback, commit, args.Error(2)
}

type MockGrantRepository struct {
	mock.Mock
}

func (m *MockGrantRepository) AddGrant(ctx context.Context, exec sqlx.ExtContext, grant *model.Grant) (bool, error) {
	args := m.Called(ctx, exec, grant)
	return args.Bool(0), args.Error(1)
}

func (m *MockGrantRepository) ListSharedWith(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.SharedDocumentRow, error) {
	args := m.Called(ctx, exec, userUUID)
	if rows, ok := args.Get(0).([]model.SharedDocumentRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrantRepository) Conn() sqlx.ExtContext {
	return nil
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	args := m.Called(ctx, exec, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	args := m.Called(ctx, exec, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListExcept(ctx context.Context, exec sqlx.ExtContext, uuid string) ([]model.UserSummary, error) {
	args := m.Called(ctx, exec, uuid)
	if u, ok := args.Get(0).([]model.UserSummary); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Conn() sqlx.ExtContext {
	return nil
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, exec sqlx.ExtContext, comment *model.Comment) error {
	return m.Called(ctx, exec, comment).Error(0)
}

func (m *MockCommentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, commentUUID string) (*model.Comment, error) {
	args := m.Called(ctx, exec, commentUUID)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) ListByDocument(ctx context.Context, exec sqlx.ExtContext, documentUUID string) ([]model.CommentWithAuthor, error) {
	args := m.Called(ctx, exec, documentUUID)
	if c, ok := args.Get(0).([]model.CommentWithAuthor); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) UpdateText(ctx context.Context, exec sqlx.ExtContext, commentUUID, text string) error {
	return m.Called(ctx, exec, commentUUID, text).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, commentUUID string) error {
	return m.Called(ctx, exec, commentUUID).Error(0)
}

func (m *MockCommentRepository) Conn() sqlx.ExtContext {
	return nil
}

// ===== CACHE =====

// memoryCache : кэш документов в памяти, хранит копии, как Redis хранит JSON
type memoryCache struct {
	documents map[string]model.Document
	gets      int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{documents: map[string]model.Document{}}
}

func (c *memoryCache) SetDocument(_ context.Context, document *model.Document) error {
	copied := *document
	copied.Grants = append([]model.Grant(nil), document.Grants...)
	c.documents[document.UUID] = copied
	return nil
}

func (c *memoryCache) GetDocument(_ context.Context, uuid string) (*model.Document, error) {
	c.gets++
	document, ok := c.documents[uuid]
	if !ok {
		return nil, nil
	}
	document.Grants = append([]model.Grant(nil), document.Grants...)
	return &document, nil
}

func (c *memoryCache) DeleteDocument(_ context.Context, uuid string) error {
	delete(c.documents, uuid)
	return nil
}

// ===== FILE STORAGE =====

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Upload(ctx context.Context, key, filename string, content []byte) (*model.StoredFile, error) {
	args := m.Called(ctx, key, filename, content)
	if f, ok := args.Get(0).(*model.StoredFile); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileStorage) Rename(ctx context.Context, reference, title string) error {
	return m.Called(ctx, reference, title).Error(0)
}

func (m *MockFileStorage) Delete(ctx context.Context, reference string) error {
	return m.Called(ctx, reference).Error(0)
}

func (m *MockFileStorage) ResolveURL(ctx context.Context, reference, storedURL string) (string, error) {
	args := m.Called(ctx, reference, storedURL)
	return args.String(0), args.Error(1)
}

// passthroughStorage : отдаёт сохранённую ссылку, остальные вызовы через mock
type passthroughStorage struct {
	MockFileStorage
}

func (s *passthroughStorage) ResolveURL(_ context.Context, _, storedURL string) (string, error) {
	return storedURL, nil
}

// ===== JWT =====

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error) {
	args := m.Called(userUUID)

	var tokens *model.TokensPair
	if t := args.Get(0); t != nil {
		tokens = t.(*model.TokensPair)
	}

	var refresh *model.RefreshToken
	if r := args.Get(1); r != nil {
		refresh = r.(*model.RefreshToken)
	}

	return tokens, refresh, args.Error(2)
}

func (m *MockJWTService) ValidateJWT(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseExpiredJWT(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJWTRepo struct {
	mock.Mock
}

func (m *MockJWTRepo) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockJWTRepo) MarkRefreshTokenUsedByUUID(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

func (m *MockJWTRepo) FindByUUID(ctx context.Context, uuid string) (*model.RefreshToken, error) {
	args := m.Called(ctx, uuid)
	if t, ok := args.Get(0).(*model.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
