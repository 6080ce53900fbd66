package db

const deviceGetByIDQ = `
SELECT
	d.device_id,
	d.owner_id,
	d.device_token,
	d.device_type,
	d.created_at
FROM devices d
WHERE d.device_id = $1
`

const deviceGetOwnedQ = `
SELECT
	d.device_id,
	d.owner_id,
	d.device_token,
	d.device_type,
	d.created_at
FROM devices d
WHERE d.device_id = $1 AND d.owner_id = $2
`

const deviceListByOwnerQ = `
SELECT
	d.device_id,
	d.owner_id,
	d.device_token,
	d.device_type,
	d.created_at
FROM devices d
WHERE d.owner_id = $1
ORDER BY d.created_at DESC
`
