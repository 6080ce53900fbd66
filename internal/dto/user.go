package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=8"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateUserResponse struct {
	ID uuid.UUID `json:"id"`
}

type ExistsUserResponse struct {
	Exists bool `json:"exists"`
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
