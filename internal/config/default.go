package config

import "time"

type ctxKey string

const (
	UidKey ctxKey = "uid"
)

const (
	DefaultPage        = 1
	DefaultSize        = 40
	DefaultReadingsCap = 50
	DefaultCacheTime   = time.Hour
	MinCacheTime       = time.Minute * 5
)

const (
	AccessCookieName     = "access"
	RefreshCookieName    = "refresh"
	AccessTokenDuration  = time.Minute * 30
	RefreshTokenDuration = time.Hour * 24 * 7
)

// DeviceTokenHeader carries the per-device shared secret on every
// device-facing request.
const DeviceTokenHeader = "Device-Token"

const ErrorSpanTag = "error"
