package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/auth/jwt"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Core is the user-plane credential service: password hashing and the
// JWT lifecycle. The device plane does not go through here, device
// tokens are compared by the controller against the stored row.
type Core interface {
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
	GetAccessTime() time.Time
	GetRefreshTime() time.Time
	GenPair(ctx context.Context, uid uuid.UUID) (string, string, error)
	NewToken(ctx context.Context, uid uuid.UUID, d time.Duration) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (jwt.Claims, error)
}

type core struct {
	*jwt.Core
}

func New(conf config.Config) Core {
	return &core{Core: jwt.New(conf)}
}

func (c *core) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), 7)
	return string(bytes), err
}

func (c *core) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
