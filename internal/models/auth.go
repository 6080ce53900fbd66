package models

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	ID        uint64    `db:"id"         json:"id"`
	UserID    uuid.UUID `db:"user_id"    json:"userId"`
	TokenHash string    `db:"token_hash" json:"tokenHash"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	Revoked   bool      `db:"revoked"    json:"revoked"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
