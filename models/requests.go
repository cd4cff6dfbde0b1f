package models

import "errors"

// ErrValidation is wrapped by every request validation failure.
var ErrValidation = errors.New("validation failed")

// Request payloads carry go-playground/validator tags. "name" is a custom
// rule registered by internal/validators: 2 to 50 characters after trimming.

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	FirstName  string  `json:"first_name" validate:"name"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,name"`
	LastName   string  `json:"last_name" validate:"name"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Password   string  `json:"password" validate:"required"`
}

// VerifyRequest is the payload of PATCH /api/auth/verify.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// ResendOTPRequest is the payload of PATCH /api/auth/resend-otp.
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the payload of PATCH /api/auth/change-password.
// Password is the current password, NewPassword its replacement.
type ChangePasswordRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// EmailQuery is the email passed to GET /api/user as a query parameter.
type EmailQuery struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest is the payload of PATCH /api/user/{id}. Only profile
// fields can be changed through it, and at least one must be present.
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,name"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,name"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,name"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FirstName == nil && r.MiddleName == nil && r.LastName == nil
}

// Update converts the request into a repository-level partial update.
func (r UpdateProfileRequest) Update() AccountUpdate {
	return AccountUpdate{
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
	}
}
