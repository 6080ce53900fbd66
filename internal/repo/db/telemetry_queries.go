package db

const sensorCreateQ = `
INSERT INTO sensor_data (device_id, gas, temperature, humidity, distance, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, device_id, timestamp, gas, temperature, humidity, distance, status
`

const ldrCreateQ = `
INSERT INTO ldr_readings (device_id, digital_value, analog_value)
VALUES ($1, $2, $3)
RETURNING id, device_id, timestamp, digital_value, analog_value
`

const ldrListQ = `
SELECT
	l.id,
	l.device_id,
	l.timestamp,
	l.digital_value,
	l.analog_value
FROM ldr_readings l
WHERE l.device_id = $1
ORDER BY l.timestamp DESC
LIMIT $2
`
