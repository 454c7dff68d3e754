package models

import "time"

const (
	RoleArtist = "artista"
	RoleAdmin  = "admin"
)

const (
	UserStatusActive   = "Activa"
	UserStatusInactive = "Inactiva"
)

type User struct {
	ID                 int64     `json:"-" db:"id"`
	Email              string    `json:"email" db:"email"`
	Password           string    `json:"password,omitempty" db:"password_hash"`
	Role               string    `json:"role" db:"role"`
	Status             string    `json:"status" db:"status"`
	MustChangePassword bool      `json:"must_change_password" db:"must_change_password"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
