package db

const tokenCreateQ = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)
`

const tokenIsValidQ = `
SELECT EXISTS (
	SELECT 1
	FROM refresh_tokens
	WHERE user_id = $1
	  AND token_hash = $2
	  AND revoked = FALSE
	  AND expires_at > NOW()
)
`

const tokenRevokeAllQ = `
UPDATE refresh_tokens
SET revoked = TRUE
WHERE user_id = $1 AND revoked = FALSE
`
