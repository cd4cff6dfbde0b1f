package service

import (
	"context"

	"github.com/MKhiriev/go-account-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService runs the registration, verification, login and credential
// rotation workflows. Every returned error wraps one of the ErrKind values.
type AuthService interface {
	// Register creates an inactive account and emails it a verification
	// code. The insert is rolled back when the email cannot be sent.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicAccount, error)

	// ResendOTP replaces the verification code of an inactive account and
	// emails the new one. Nothing changes when the email cannot be sent.
	ResendOTP(ctx context.Context, req models.ResendOTPRequest) error

	// Verify activates the account when the code matches and has not expired.
	Verify(ctx context.Context, req models.VerifyRequest) error

	// Login checks the password and issues an access/refresh token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// ChangePassword replaces the credential of account after checking the
	// current password. Issued tokens stay valid.
	ChangePassword(ctx context.Context, account models.Account, req models.ChangePasswordRequest) error

	// Authenticate resolves an access token to the account it was issued for.
	Authenticate(ctx context.Context, accessToken string) (models.Account, error)
}

// AccountService serves the profile endpoints.
type AccountService interface {
	GetByID(ctx context.Context, id string) (models.PublicAccount, error)
	GetByEmail(ctx context.Context, email string) (models.PublicAccount, error)

	// UpdateProfile changes the name fields of the account with the given id.
	// Only the caller's own account can be updated.
	UpdateProfile(ctx context.Context, caller models.Account, id string, req models.UpdateProfileRequest) (models.PublicAccount, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
