package db

const userGetByIDQ = `
SELECT
	u.id,
	u.email,
	u.full_name,
	u.phone_number,
	u.created_at,
	u.updated_at
FROM users u
WHERE u.id = $1
`

const userGetByEmailQ = `
SELECT
    u.id,
    u.email,
    u.password,
    u.full_name,
    u.phone_number,
    u.created_at,
    u.updated_at
FROM users u
WHERE email = $1
`

const userCreateQ = `
INSERT INTO users (email, password, full_name, phone_number)
VALUES ($1, $2, $3, $4)
RETURNING id
`
