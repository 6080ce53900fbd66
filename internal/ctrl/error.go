package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidDeviceToken is returned when a device presents a token that
// does not match the one stored for its id.
var ErrInvalidDeviceToken = errors.New("invalid device token")

// ErrAccessDenied is returned when an authenticated user acts on a
// device they do not own.
var ErrAccessDenied = errors.New("access denied")
