package requestresponse

// CommentRequest : тело запроса на создание или изменение комментария
type CommentRequest struct {
	Text string `json:"text" validate:"required,max=5000" example:"На странице 3 опечатка"`
}

// DeleteCommentResponse : ответ на удаление комментария
type DeleteCommentResponse struct {
	UUID    string `json:"uuid" example:"c1"`
	Deleted bool   `json:"deleted" example:"true"`
}
