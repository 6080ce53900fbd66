package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

// Refresh tokens are stored hashed, the raw value only ever lives in the
// client cookie.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r *Repository) CreateToken(
	ctx context.Context,
	userID uuid.UUID,
	token string,
	expiresAt time.Time,
) error {
	const op = "auth.CreateToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenCreateQ, userID, hashToken(token), expiresAt)
	return err
}

func (r *Repository) IsTokenValid(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	const op = "auth.IsTokenValid.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var valid bool
	err := r.conn.GetContext(ctx, &valid, tokenIsValidQ, userID, hashToken(token))
	if err != nil {
		return false, err
	}

	return valid, nil
}

func (r *Repository) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.RevokeAllTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenRevokeAllQ, userID)
	return err
}
