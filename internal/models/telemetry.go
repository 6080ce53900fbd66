package models

import "time"

type Status string

const (
	StatusSafe    Status = "SAFE"
	StatusWarning Status = "WARNING"
	StatusDanger  Status = "DANGER"
)

// SensorData is an immutable gas-sensor reading. Optional fields stay
// nullable in the row so an absent value is distinguishable from zero.
type SensorData struct {
	ID          uint64    `db:"id"          json:"id"`
	DeviceID    string    `db:"device_id"   json:"deviceId"`
	Timestamp   time.Time `db:"timestamp"   json:"timestamp"`
	Gas         *float64  `db:"gas"         json:"gas"`
	Temperature *float64  `db:"temperature" json:"temperature"`
	Humidity    *float64  `db:"humidity"    json:"humidity"`
	Distance    *float64  `db:"distance"    json:"distance"`
	Status      Status    `db:"status"      json:"status"`
}

// LDRReading is an immutable light-sensor reading.
type LDRReading struct {
	ID           uint64    `db:"id"            json:"id"`
	DeviceID     string    `db:"device_id"     json:"deviceId"`
	Timestamp    time.Time `db:"timestamp"     json:"timestamp"`
	DigitalValue bool      `db:"digital_value" json:"digitalValue"`
	AnalogValue  int       `db:"analog_value"  json:"analogValue"`
}

// DeviceOutput is a controllable binary channel (relay, bulb). GpioPin is
// informational only. The row is mutated in place, no history is kept.
type DeviceOutput struct {
	ID          uint64    `db:"id"           json:"id"`
	DeviceID    string    `db:"device_id"    json:"deviceId"`
	OutputName  string    `db:"output_name"  json:"outputName"`
	GpioPin     int       `db:"gpio_pin"     json:"gpioPin"`
	IsActive    bool      `db:"is_active"    json:"isActive"`
	LastUpdated time.Time `db:"last_updated" json:"lastUpdated"`
}
