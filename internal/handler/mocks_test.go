package handler_test

import (
	"context"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/security"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, ownerUUID, title, filename string, content []byte) (*model.Document, error) {
	args := m.Called(ctx, ownerUUID, title, filename, content)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) ListMine(ctx context.Context, ownerUUID string) ([]model.Document, error) {
	args := m.Called(ctx, ownerUUID)
	if d, ok := args.Get(0).([]model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) GetDetails(ctx context.Context, actorUUID, documentUUID string) (*model.Document, error) {
	args := m.Called(ctx, actorUUID, documentUUID)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) Rename(ctx context.Context, actorUUID, documentUUID, title string) (*model.Document, error) {
	args := m.Called(ctx, actorUUID, documentUUID, title)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, actorUUID, documentUUID string) error {
	return m.Called(ctx, actorUUID, documentUUID).Error(0)
}

type MockSharingService struct {
	mock.Mock
}

func (m *MockSharingService) GrantAccess(ctx context.Context, actorUUID, documentUUID, granteeUUID, granteeEmail string) (*model.Grant, error) {
	args := m.Called(ctx, actorUUID, documentUUID, granteeUUID, granteeEmail)
	if g, ok := args.Get(0).(*model.Grant); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSharingService) GeneratePublicLink(ctx context.Context, actorUUID, documentUUID string) (string, error) {
	args := m.Called(ctx, actorUUID, documentUUID)
	return args.String(0), args.Error(1)
}

func (m *MockSharingService) ResolvePublicAccess(ctx context.Context, documentUUID, token string) (*model.DocumentView, error) {
	args := m.Called(ctx, documentUUID, token)
	if v, ok := args.Get(0).(*model.DocumentView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSharingService) ResolveGrantedAccess(ctx context.Context, actorUUID, documentUUID string) (*model.DocumentView, error) {
	args := m.Called(ctx, actorUUID, documentUUID)
	if v, ok := args.Get(0).(*model.DocumentView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSharingService) ListSharedWithMe(ctx context.Context, actorUUID string) ([]model.SharedDocument, error) {
	args := m.Called(ctx, actorUUID)
	if d, ok := args.Get(0).([]model.SharedDocument); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSharingService) ListShareCandidates(ctx context.Context, actorUUID string) ([]model.UserSummary, error) {
	args := m.Called(ctx, actorUUID)
	if u, ok := args.Get(0).([]model.UserSummary); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, actorUUID, documentUUID, text string) (*model.Comment, error) {
	args := m.Called(ctx, actorUUID, documentUUID, text)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, documentUUID string, access model.CommentAccess) ([]model.CommentWithAuthor, error) {
	args := m.Called(ctx, documentUUID, access)
	if c, ok := args.Get(0).([]model.CommentWithAuthor); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, actorUUID, commentUUID, text string) (*model.Comment, error) {
	args := m.Called(ctx, actorUUID, commentUUID, text)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, actorUUID, commentUUID string) error {
	return m.Called(ctx, actorUUID, commentUUID).Error(0)
}

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*model.Session, error) {
	args := m.Called(ctx, email, password, userAgent, ipAddress)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) RefreshToken(ctx context.Context, userAgent, ipAddress, accessToken, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, userAgent, ipAddress, accessToken, refreshToken)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, refreshTokenUUID string) error {
	return m.Called(ctx, refreshTokenUUID).Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error) {
	args := m.Called(userUUID)
	var tokens *model.TokensPair
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		tokens = t
	}
	var refresh *model.RefreshToken
	if r, ok := args.Get(1).(*model.RefreshToken); ok {
		refresh = r
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

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email, password, userAgent, ipAddress string) (*model.Session, error) {
	args := m.Called(ctx, name, email, password, userAgent, ipAddress)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, uuid string) (*model.UserSummary, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.UserSummary); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
