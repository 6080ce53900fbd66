package validation

import "errors"

var ErrEmailIsRequired = errors.New("email is required")
var ErrPasswordIsRequired = errors.New("password is required")
