package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is identified by a caller-assigned id (e.g. "ESP32_01").
// DeviceToken is the sole credential the firmware presents; it is stored
// and compared as-is, no expiry or rotation is modeled.
type Device struct {
	ID          string    `db:"device_id"    json:"deviceId"`
	OwnerID     uuid.UUID `db:"owner_id"     json:"ownerId"`
	DeviceToken string    `db:"device_token" json:"-"`
	DeviceType  string    `db:"device_type"  json:"deviceType"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
}
