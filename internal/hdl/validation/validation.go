package validation

import "github.com/indianiiot/telemetry-backend/internal/dto"

func CreateUserRequest(req *dto.CreateUserRequest) error {
	if req.Email == "" {
		return ErrEmailIsRequired
	}

	if req.Password == "" {
		return ErrPasswordIsRequired
	}
	return nil
}
