package requestresponse

// GrantAccessRequest : представляет тело запроса для предоставления доступа пользователю
type GrantAccessRequest struct {
	UserUUID string `json:"user_uuid" validate:"required" example:"5b1a0c4e-21f7-4a57-b8c3-0e2b7dbd1f3e"`
	Email    string `json:"email" validate:"required,email" example:"u2@example.com"`
}

// PublicLinkResponse : сгенерированная публичная ссылка
type PublicLinkResponse struct {
	URL string `json:"url" example:"https://pdf.example.com/shared/0b6f6e0e?token=9f86d081884c7d65"`
}
