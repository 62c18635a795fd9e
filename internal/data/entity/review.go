package entity

import "github.com/google/uuid"

type Review struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	SafariID    uuid.UUID `db:"safari_id"`
	Rating      int       `db:"rating"` // 1-5
	Comment     string    `db:"comment"`
	IsModerated bool      `db:"is_moderated"`
}
