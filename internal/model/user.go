package model

import "time"

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// UserSummary : публичные данные пользователя (для выбора, с кем поделиться)
type UserSummary struct {
	UUID  string `db:"uuid" json:"uuid"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{UUID: u.UUID, Name: u.Name, Email: u.Email}
}
