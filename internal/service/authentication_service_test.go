package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/security"
	"pdf-share-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockJWTService, *MockJWTRepo) {
	mockUserRepo := new(MockUserRepository)
	mockJWTService := new(MockJWTService)
	mockJWTRepo := new(MockJWTRepo)

	svc := service.NewAuthenticationService(mockJWTRepo, mockJWTService, mockUserRepo)

	return svc, mockUserRepo, mockJWTService, mockJWTRepo
}

func storedRefreshToken(t *testing.T, plain string) *model.RefreshToken {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.RefreshToken{
		UUID:      "rt1",
		UserUUID:  "u1",
		TokenHash: string(hash),
		ExpireAt:  time.Now().Add(time.Hour),
		UserAgent: "agent",
		IpAddress: "127.0.0.1",
	}
}

// ===== LOGIN =====

// 1. Пользователь не найден
func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()

	mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.Login(context.Background(), " Test@Example.com ", "pass", "agent", "127.0.0.1")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "неверный email или пароль")
	mockUserRepo.AssertExpectations(t)
}

// 2. Неверный пароль
func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()

	hash, _ := security.HashPassword("goodpass")
	user := &model.User{UUID: "u1", PasswordHash: hash}

	mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), "test@example.com", "badpass", "agent", "127.0.0.1")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "неверный email или пароль")
}

// 3. Ошибка БД не маскируется под неверный пароль
func TestLogin_RepositoryError(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()

	mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").
		Return(nil, errors.New("connection refused"))

	_, err := svc.Login(context.Background(), "test@example.com", "pass", "agent", "127.0.0.1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
}

// 4. Ошибка генерации токенов
func TestLogin_GenerateTokensError(t *testing.T) {
	svc, mockUserRepo, mockJWTService, _ := newTestAuthService()

	hash, _ := security.HashPassword("goodpass")
	mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").
		Return(&model.User{UUID: "u1", PasswordHash: hash}, nil)
	mockJWTService.On("GenerateAccessRefreshTokens", "u1").Return(nil, nil, errors.New("jwt fail"))

	_, err := svc.Login(context.Background(), "test@example.com", "goodpass", "agent", "127.0.0.1")

	assert.EqualError(t, err, "jwt fail")
}

// 5. Успешный вход сохраняет refresh токен с User-Agent и IP
func TestLogin_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService, mockJWTRepo := newTestAuthService()

	hash, _ := security.HashPassword("goodpass")
	user := &model.User{UUID: "u1", Name: "Анна", Email: "test@example.com", PasswordHash: hash}
	tokens := &model.TokensPair{AccessToken: "access", RefreshToken: "refresh"}
	refresh := &model.RefreshToken{UUID: "rt1", UserUUID: "u1"}

	mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(user, nil)
	mockJWTService.On("GenerateAccessRefreshTokens", "u1").Return(tokens, refresh, nil)
	mockJWTRepo.On("SaveRefreshToken", mock.Anything, mock.MatchedBy(func(token *model.RefreshToken) bool {
		return token.UUID == "rt1" && token.UserAgent == "agent" && token.IpAddress == "127.0.0.1"
	})).Return(nil)

	session, err := svc.Login(context.Background(), "test@example.com", "goodpass", "agent", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "access", session.Tokens.AccessToken)
	assert.Equal(t, model.UserSummary{UUID: "u1", Name: "Анна", Email: "test@example.com"}, session.User)
	mockJWTRepo.AssertExpectations(t)
}

// ===== REFRESH =====

// 6. Невалидный access токен
func TestRefreshToken_InvalidAccessToken(t *testing.T) {
	svc, _, mockJWTService, _ := newTestAuthService()

	mockJWTService.On("ParseExpiredJWT", "bad").Return(nil, apperrors.ErrUnauthorized)

	_, err := svc.RefreshToken(context.Background(), "agent", "127.0.0.1", "bad", "refresh")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

// 7. Повторное использование refresh токена
func TestRefreshToken_AlreadyUsed(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	stored := storedRefreshToken(t, "refresh")
	stored.Used = true
	mockJWTService.On("ParseExpiredJWT", "access").Return(&security.Claims{UserUUID: "u1", RefreshTokenUUID: "rt1"}, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "rt1").Return(stored, nil)

	_, err := svc.RefreshToken(context.Background(), "agent", "127.0.0.1", "access", "refresh")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockJWTRepo.AssertNotCalled(t, "SaveRefreshToken", mock.Anything, mock.Anything)
}

// 8. Просроченный refresh токен
func TestRefreshToken_Expired(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	stored := storedRefreshToken(t, "refresh")
	stored.ExpireAt = time.Now().Add(-time.Minute)
	mockJWTService.On("ParseExpiredJWT", "access").Return(&security.Claims{UserUUID: "u1", RefreshTokenUUID: "rt1"}, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "rt1").Return(stored, nil)

	_, err := svc.RefreshToken(context.Background(), "agent", "127.0.0.1", "access", "refresh")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

// 9. Смена User-Agent завершает сессию
func TestRefreshToken_UserAgentChanged(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	mockJWTService.On("ParseExpiredJWT", "access").Return(&security.Claims{UserUUID: "u1", RefreshTokenUUID: "rt1"}, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "rt1").Return(storedRefreshToken(t, "refresh"), nil)
	mockJWTRepo.On("MarkRefreshTokenUsedByUUID", mock.Anything, "rt1").Return(nil)

	_, err := svc.RefreshToken(context.Background(), "other-agent", "127.0.0.1", "access", "refresh")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockJWTRepo.AssertCalled(t, "MarkRefreshTokenUsedByUUID", mock.Anything, "rt1")
	mockJWTService.AssertNotCalled(t, "GenerateAccessRefreshTokens", mock.Anything)
}

// 10. Refresh токен не из этой пары
func TestRefreshToken_WrongRefreshToken(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	mockJWTService.On("ParseExpiredJWT", "access").Return(&security.Claims{UserUUID: "u1", RefreshTokenUUID: "rt1"}, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "rt1").Return(storedRefreshToken(t, "refresh"), nil)

	_, err := svc.RefreshToken(context.Background(), "agent", "127.0.0.1", "access", "other")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockJWTRepo.AssertNotCalled(t, "MarkRefreshTokenUsedByUUID", mock.Anything, mock.Anything)
}

// 11. Успешное обновление с нового IP: старый токен использован, новый сохранён
func TestRefreshToken_SuccessFromNewIP(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	newTokens := &model.TokensPair{AccessToken: "access2", RefreshToken: "refresh2"}
	newRefresh := &model.RefreshToken{UUID: "rt2", UserUUID: "u1"}

	mockJWTService.On("ParseExpiredJWT", "access").Return(&security.Claims{UserUUID: "u1", RefreshTokenUUID: "rt1"}, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "rt1").Return(storedRefreshToken(t, "refresh"), nil)
	mockJWTRepo.On("MarkRefreshTokenUsedByUUID", mock.Anything, "rt1").Return(nil)
	mockJWTService.On("GenerateAccessRefreshTokens", "u1").Return(newTokens, newRefresh, nil)
	mockJWTRepo.On("SaveRefreshToken", mock.Anything, mock.MatchedBy(func(token *model.RefreshToken) bool {
		return token.UUID == "rt2" && token.IpAddress == "10.0.0.5" && token.UserAgent == "agent"
	})).Return(nil)

	tokens, err := svc.RefreshToken(context.Background(), "agent", "10.0.0.5", "access", "refresh")

	require.NoError(t, err)
	assert.Equal(t, newTokens, tokens)
	mockJWTRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// ===== LOGOUT =====

// 12. Выход помечает refresh токен использованным
func TestLogout(t *testing.T) {
	svc, _, _, mockJWTRepo := newTestAuthService()

	mockJWTRepo.On("MarkRefreshTokenUsedByUUID", mock.Anything, "rt1").Return(nil)
	mockJWTRepo.On("MarkRefreshTokenUsedByUUID", mock.Anything, "gone").Return(apperrors.ErrUnauthorized)

	assert.NoError(t, svc.Logout(context.Background(), "rt1"))
	assert.ErrorIs(t, svc.Logout(context.Background(), "gone"), apperrors.ErrUnauthorized)
}
