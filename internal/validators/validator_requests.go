package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-account-auth/models"
)

// Field names accepted by Validate for partial checks.
const (
	FieldEmail       = "Email"
	FieldPassword    = "Password"
	FieldNewPassword = "NewPassword"
	FieldOTP         = "OTP"
	FieldFirstName   = "FirstName"
	FieldMiddleName  = "MiddleName"
	FieldLastName    = "LastName"
)

const (
	nameTag          = "name"
	profileChangeTag = "profile_change"

	nameMinLength = 2
	nameMaxLength = 50
)

// RequestValidator implements [Validator] for the auth and user request
// payloads of models.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// only fails for an empty or reserved tag
	if err := v.RegisterValidation(nameTag, validName); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(requireProfileChange, models.UpdateProfileRequest{})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its tags. With fields, only those struct
// fields are checked. The error message names the first failing field.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.VerifyRequest, *models.VerifyRequest,
		models.ResendOTPRequest, *models.ResendOTPRequest,
		models.LoginRequest, *models.LoginRequest,
		models.ChangePasswordRequest, *models.ChangePasswordRequest,
		models.UpdateProfileRequest, *models.UpdateProfileRequest,
		models.EmailQuery, *models.EmailQuery:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return fmt.Errorf("%w: %s", models.ErrValidation, message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " should not be empty"
	case "email":
		return fe.Field() + " must be an email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case nameTag:
		return fmt.Sprintf("%s must be %d to %d characters long", label(fe.StructField()), nameMinLength, nameMaxLength)
	case profileChangeTag:
		return "nothing to update"
	default:
		return fe.Field() + " is invalid"
	}
}

func validName(fl validator.FieldLevel) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))
	return n >= nameMinLength && n <= nameMaxLength
}

func requireProfileChange(sl validator.StructLevel) {
	if r, ok := sl.Current().Interface().(models.UpdateProfileRequest); ok && r.IsEmpty() {
		sl.ReportError(r.FirstName, "first_name", FieldFirstName, profileChangeTag, "")
	}
}

// jsonFieldName reports fields under their JSON names so messages match what
// the client sent.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// label turns a Go field name into words: "FirstName" becomes "First Name".
func label(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
