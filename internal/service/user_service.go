package service

import (
	"context"
	"fmt"
	"net/mail"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/security"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
	jwtRepository  ports.JWTRepositoryInterface
}

func NewUserService(
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
	jwtRepository ports.JWTRepositoryInterface,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		jwtService:     jwtService,
		jwtRepository:  jwtRepository,
	}
}

// Register : создаёт пользователя и сразу выдаёт пару токенов
func (s *UserService) Register(ctx context.Context, name, email, password, userAgent, ipAddress string) (*model.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperrors.Clone(apperrors.ErrInvalidInput, "имя не может быть пустым")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidInput, "неверный email")
	}
	if err := validatePassword(password); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidInput, err.Error())
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, s.userRepository.Conn(), user)
	if err != nil {
		return nil, err
	}

	tokens, refreshToken, err := s.jwtService.GenerateAccessRefreshTokens(created.UUID)
	if err != nil {
		return nil, err
	}

	refreshToken.UserAgent = userAgent
	refreshToken.IpAddress = ipAddress
	if err := s.jwtRepository.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	zap.L().Info("[UserService] зарегистрирован пользователь", zap.String("user_uuid", created.UUID))

	return &model.Session{User: created.Summary(), Tokens: *tokens}, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("пароль должен содержать минимум 8 символов")
	}

	var upperCount, lowerCount, digitCount, specialCount int

	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upperCount++
		case unicode.IsLower(c):
			lowerCount++
		case unicode.IsDigit(c):
			digitCount++
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			specialCount++
		}
	}

	if upperCount == 0 || lowerCount == 0 {
		return fmt.Errorf("пароль должен содержать буквы в разных регистрах")
	}
	if digitCount < 1 {
		return fmt.Errorf("пароль должен содержать хотя бы одну цифру")
	}
	if specialCount < 1 {
		return fmt.Errorf("пароль должен содержать хотя бы один специальный символ")
	}

	return nil
}

// GetUser : публичные данные пользователя
func (s *UserService) GetUser(ctx context.Context, uuid string) (*model.UserSummary, error) {
	if uuid == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepository.FindByUUID(ctx, s.userRepository.Conn(), uuid)
	if err != nil {
		return nil, err
	}

	summary := user.Summary()
	return &summary, nil
}
