package service

import (
	"context"
	"errors"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/security"
	"pdf-share-server/internal/util"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = apperrors.Clone(apperrors.ErrUnauthorized, "неверный email или пароль")
var errInvalidRefresh = apperrors.Clone(apperrors.ErrUnauthorized, "невалидный токен")

type AuthenticationService struct {
	jwtRepoInterface    ports.JWTRepositoryInterface
	jwtServiceInterface ports.JWTServiceInterface
	userRepository      ports.UserRepository
}

func NewAuthenticationService(
	repo ports.JWTRepositoryInterface,
	service ports.JWTServiceInterface,
	userInterface ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		jwtRepoInterface:    repo,
		jwtServiceInterface: service,
		userRepository:      userInterface,
	}
}

// Login : проверяет пароль и открывает новую сессию
func (s *AuthenticationService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*model.Session, error) {
	user, err := s.userRepository.FindByEmail(ctx, s.userRepository.Conn(), strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	tokens, refreshToken, err := s.jwtServiceInterface.GenerateAccessRefreshTokens(user.UUID)
	if err != nil {
		return nil, err
	}

	refreshToken.UserAgent = userAgent
	refreshToken.IpAddress = ipAddress

	if err := s.jwtRepoInterface.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &model.Session{User: user.Summary(), Tokens: *tokens}, nil
}

// RefreshToken обновляет пару токенов
//  1. Обновить можно только той парой токенов, которая была выдана вместе.
//  2. При смене User-Agent обновление запрещено, а сессия завершается.
//  3. Смена IP адреса только логируется.
func (s *AuthenticationService) RefreshToken(ctx context.Context, userAgent string, ipAddress string, accessToken string, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtServiceInterface.ParseExpiredJWT(accessToken)
	if err != nil {
		return nil, err
	}

	refreshTokenUUID := claims.RefreshTokenUUID
	userUUID := claims.UserUUID

	storedRefreshToken, err := s.jwtRepoInterface.FindByUUID(ctx, refreshTokenUUID)
	if err != nil {
		return nil, err
	}
	if storedRefreshToken.Used {
		zap.L().Warn("refresh токен уже был использован", zap.String("refresh_token_uuid", refreshTokenUUID))
		return nil, errInvalidRefresh
	}

	if time.Now().UTC().After(storedRefreshToken.ExpireAt) {
		zap.L().Info("refresh токен просрочен", zap.String("refresh_token_uuid", refreshTokenUUID))
		return nil, errInvalidRefresh
	}

	if storedRefreshToken.UserAgent != userAgent {
		if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
			util.LogWarn("не удалось пометить токен использованным", err)
		}
		zap.L().Warn("попытка обновления токенов с другого User-Agent", zap.String("refresh_token_uuid", refreshTokenUUID))
		return nil, errInvalidRefresh
	}

	if storedRefreshToken.IpAddress != ipAddress {
		zap.L().Warn("обновление токенов с нового ip адреса",
			zap.String("user_uuid", userUUID),
			zap.String("previous_ip", storedRefreshToken.IpAddress),
			zap.String("ip", ipAddress),
		)
	}

	err = bcrypt.CompareHashAndPassword([]byte(storedRefreshToken.TokenHash), []byte(refreshToken))
	if err != nil {
		return nil, errInvalidRefresh
	}

	if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
		return nil, err
	}

	tokensPair, newRefreshToken, err := s.jwtServiceInterface.GenerateAccessRefreshTokens(userUUID)
	if err != nil {
		return nil, err
	}

	newRefreshToken.UserAgent = userAgent
	newRefreshToken.IpAddress = ipAddress
	if err := s.jwtRepoInterface.SaveRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, err
	}

	return tokensPair, nil
}

// Logout помечает refresh-токен использованным, access токен этой сессии перестаёт приниматься
func (s *AuthenticationService) Logout(ctx context.Context, refreshTokenUUID string) error {
	return s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID)
}
