package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100" example:"Иван Петров"`
	Email    string `json:"email" validate:"required,email" example:"ivan@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"P@ssw0rd!"`
}
