package db

const outputCreateQ = `
INSERT INTO device_outputs (device_id, output_name, gpio_pin, is_active)
VALUES ($1, $2, $3, $4)
RETURNING id, device_id, output_name, gpio_pin, is_active, last_updated
`

const outputListQ = `
SELECT
	o.id,
	o.device_id,
	o.output_name,
	o.gpio_pin,
	o.is_active,
	o.last_updated
FROM device_outputs o
WHERE o.device_id = $1
ORDER BY o.id
`

const outputGetQ = `
SELECT
	o.id,
	o.device_id,
	o.output_name,
	o.gpio_pin,
	o.is_active,
	o.last_updated
FROM device_outputs o
WHERE o.id = $1
`

const outputUpdateStateQ = `
UPDATE device_outputs
SET is_active = $1,
    last_updated = NOW()
WHERE id = $2
RETURNING id, device_id, output_name, gpio_pin, is_active, last_updated
`
