package security

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"pdf-share-server/config"
	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
	issuer                    = "pdf-share-server"
)

type Claims struct {
	UserUUID         string `json:"user_uuid"`
	RefreshTokenUUID string `json:"refresh_token_id"`
	jwt.RegisteredClaims
}

// RefreshTokenFinder : нужен middleware, чтобы не пускать с access токеном после logout
type RefreshTokenFinder interface {
	FindByUUID(ctx context.Context, uuid string) (*model.RefreshToken, error)
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

func (service *JWTService) GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error) {
	refreshToken, refreshTokenStr, err := GenerateRefreshToken()
	if err != nil {
		return nil, nil, util.LogError("ошибка генерации рефреш токена", err)
	}

	refreshToken.UserUUID = userUUID
	timeDuration, err := time.ParseDuration(service.RefreshTokenTTL)
	if err != nil {
		return nil, nil, util.LogError("ошибка парсинга", err)
	}
	refreshToken.ExpireAt = time.Now().UTC().Add(timeDuration)

	timeDuration, err = time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return nil, nil, util.LogError("ошибка парсинга", err)
	}
	claims := Claims{
		UserUUID:         userUUID,
		RefreshTokenUUID: refreshToken.UUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	accessToken, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return nil, nil, util.LogError("ошибка подписи токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenStr,
	}, refreshToken, nil
}

func GenerateRefreshToken() (*model.RefreshToken, string, error) {
	jwtTokenBytes := make([]byte, 32)
	_, err := rand.Read(jwtTokenBytes)
	if err != nil {
		return nil, "", util.LogError("ошибка генерации", err)
	}
	refreshUUID := uuid.New().String()
	refreshTokenStr := base64.StdEncoding.EncodeToString(jwtTokenBytes)

	hashedToken, err := bcrypt.GenerateFromPassword([]byte(refreshTokenStr), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", util.LogError("ошибка хэширования", err)
	}

	// refreshTokenStr отдается клиенту
	// hashedToken сохраняется в БД
	return &model.RefreshToken{
		UUID:      refreshUUID,
		TokenHash: string(hashedToken),
		Used:      false,
	}, refreshTokenStr, nil
}

// ValidateJWT : проверяет подпись и срок действия, истёкший токен тоже ошибка
func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(service.SecretKey), nil
	})

	if err != nil || !jwtToken.Valid {
		return nil, apperrors.Wrap(err, apperrors.ErrUnauthorized, "невалидный токен")
	}

	return claims, nil
}

// ParseExpiredJWT : для refresh, подпись проверяется, а срок действия нет
func (service *JWTService) ParseExpiredJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	_, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(service.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnauthorized, "невалидный токен")
	}

	return claims, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", util.LogError("ошибка хэширования пароля", err)
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// JWTMiddleware : пускает только с валидным access токеном, чья сессия не завершена
func JWTMiddleware(jwtService *JWTService, refreshTokens RefreshTokenFinder) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := bearerToken(request)
			if !ok {
				util.HandleError(writer, apperrors.ErrUnauthorized)
				return
			}

			claims, err := authenticate(request.Context(), jwtService, refreshTokens, token)
			if err != nil {
				util.HandleError(writer, err)
				return
			}

			next.ServeHTTP(writer, request.WithContext(WithClaims(request.Context(), claims)))
		})
	}
}

// OptionalJWTMiddleware : без заголовка пропускает анонимно, с неверным токеном отвечает 401
func OptionalJWTMiddleware(jwtService *JWTService, refreshTokens RefreshTokenFinder) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := bearerToken(request)
			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := authenticate(request.Context(), jwtService, refreshTokens, token)
			if err != nil {
				util.HandleError(writer, err)
				return
			}

			next.ServeHTTP(writer, request.WithContext(WithClaims(request.Context(), claims)))
		})
	}
}

func authenticate(ctx context.Context, jwtService *JWTService, refreshTokens RefreshTokenFinder, token string) (*Claims, error) {
	claims, err := jwtService.ValidateJWT(token)
	if err != nil {
		zap.L().Debug("невалидный токен", zap.Error(err))
		return nil, err
	}

	refreshToken, err := refreshTokens.FindByUUID(ctx, claims.RefreshTokenUUID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnauthorized, "сессия не найдена")
	}
	if refreshToken.Used {
		return nil, apperrors.Clone(apperrors.ErrUnauthorized, "сессия завершена")
	}

	return claims, nil
}

func bearerToken(request *http.Request) (string, bool) {
	authorizationHeader := request.Header.Get("Authorization")
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
	return token, token != ""
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.Clone(apperrors.ErrUnauthorized, "пользователь не авторизован")
	}
	return claims, nil
}

// ActorUUID : пустая строка для анонимного запроса
func ActorUUID(ctx context.Context) string {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return ""
	}
	return claims.UserUUID
}
