package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-auth/models"
)

func ptr[T any](v T) *T { return &v }

func TestRegisterRequest(t *testing.T) {
	v := NewRequestValidator()
	valid := models.RegisterRequest{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Password: "secret"}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "valid with middle name", mutate: func(r *models.RegisterRequest) { r.MiddleName = ptr("Jane") }},
		{name: "names count characters", mutate: func(r *models.RegisterRequest) { r.FirstName, r.LastName = "Юя", "Li" }},
		{name: "short first name", mutate: func(r *models.RegisterRequest) { r.FirstName = "A" }, wantMsg: "First Name must be 2 to 50 characters long"},
		{name: "padded first name", mutate: func(r *models.RegisterRequest) { r.FirstName = "  A  " }, wantMsg: "First Name must be 2 to 50 characters long"},
		{name: "long last name", mutate: func(r *models.RegisterRequest) { r.LastName = strings.Repeat("x", 51) }, wantMsg: "Last Name must be 2 to 50 characters long"},
		{name: "blank middle name", mutate: func(r *models.RegisterRequest) { r.MiddleName = ptr(" ") }, wantMsg: "Middle Name must be 2 to 50 characters long"},
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantMsg: "email should not be empty"},
		{name: "malformed email", mutate: func(r *models.RegisterRequest) { r.Email = "alice" }, wantMsg: "email must be an email"},
		{name: "display name email", mutate: func(r *models.RegisterRequest) { r.Email = "Alice <alice@example.com>" }, wantMsg: "email must be an email"},
		{name: "empty password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantMsg: "password should not be empty"},
		{name: "first failing field wins", mutate: func(r *models.RegisterRequest) { r.FirstName, r.Email = "", "" }, wantMsg: "First Name must be 2 to 50 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := v.Validate(context.Background(), r)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, "validation failed: "+tt.wantMsg, err.Error())
		})
	}
}

func TestOtherRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantMsg string
	}{
		{name: "verify", obj: models.VerifyRequest{Email: "alice@example.com", OTP: "123456"}},
		{name: "verify without otp", obj: models.VerifyRequest{Email: "alice@example.com"}, wantMsg: "otp should not be empty"},
		{name: "verify without email", obj: &models.VerifyRequest{OTP: "123456"}, wantMsg: "email should not be empty"},
		{name: "login", obj: models.LoginRequest{Email: "alice@example.com", Password: "x"}},
		{name: "login without password", obj: models.LoginRequest{Email: "alice@example.com"}, wantMsg: "password should not be empty"},
		{name: "resend", obj: models.ResendOTPRequest{Email: "alice@example.com"}},
		{name: "resend bad email", obj: models.ResendOTPRequest{Email: "nope"}, wantMsg: "email must be an email"},
		{name: "email query", obj: models.EmailQuery{Email: ""}, wantMsg: "email should not be empty"},
		{name: "change password", obj: models.ChangePasswordRequest{Password: "old", NewPassword: "new"}},
		{name: "change password without old", obj: models.ChangePasswordRequest{NewPassword: "new"}, wantMsg: "password should not be empty"},
		{name: "change password without new", obj: models.ChangePasswordRequest{Password: "old"}, wantMsg: "newPassword should not be empty"},
		{name: "profile change", obj: models.UpdateProfileRequest{FirstName: ptr("Alicia")}},
		{name: "profile without changes", obj: models.UpdateProfileRequest{}, wantMsg: "nothing to update"},
		{name: "profile short name", obj: models.UpdateProfileRequest{LastName: ptr("x")}, wantMsg: "Last Name must be 2 to 50 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_Fields(t *testing.T) {
	v := NewRequestValidator()
	r := models.RegisterRequest{Email: "alice@example.com"}

	assert.NoError(t, v.Validate(context.Background(), r, FieldEmail))
	assert.ErrorContains(t, v.Validate(context.Background(), r, FieldEmail, FieldPassword), "password should not be empty")
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	for _, obj := range []any{nil, "alice@example.com", models.Account{}, 42} {
		err := v.Validate(context.Background(), obj)
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.NotErrorIs(t, err, models.ErrValidation)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "First Name", label("FirstName"))
	assert.Equal(t, "Email", label("Email"))
}
