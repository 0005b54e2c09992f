package model

import "time"

type Comment struct {
	UUID         string    `db:"uuid" json:"uuid"`
	DocumentUUID string    `db:"document_uuid" json:"document_uuid"`
	AuthorUUID   string    `db:"author_uuid" json:"author_uuid"`
	Text         string    `db:"text" json:"text"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CommentWithAuthor : комментарий вместе с именем и email автора
type CommentWithAuthor struct {
	Comment
	AuthorName  string `db:"author_name" json:"author_name"`
	AuthorEmail string `db:"author_email" json:"author_email"`
}

// CommentAccess : кто читает комментарии, авторизованный пользователь или владелец публичной ссылки
type CommentAccess struct {
	ActorUUID   string
	PublicToken string
}
