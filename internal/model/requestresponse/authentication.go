package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ivan@example.com"`
	Password string `json:"password" validate:"required" example:"P@ssw0rd123"`
}

// RefreshTokenRequest : запрос на обновление пары токенов
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"sfuqwejqjoiu93e29"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	LoggedOut bool `json:"logged_out" example:"true"`
}
