package models

import "time"

// Account is the single persisted entity of the service. It holds the
// profile, the credential pair, and the email-verification state.
//
// Credential and OTP fields are excluded from JSON serialization; use
// [Account.Public] to build the view that may leave the server.
type Account struct {
	// ID is the opaque identifier assigned at creation. It never changes.
	ID string `json:"id"`

	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`

	// Email is globally unique; the store rejects duplicates.
	Email string `json:"email"`

	// PasswordDigest and PasswordSalt are always written and read as a pair.
	PasswordDigest string `json:"-"`
	PasswordSalt   string `json:"-"`

	// OTP and OTPExpiry are always written together.
	OTP       string    `json:"-"`
	OTPExpiry time.Time `json:"-"`

	// IsActive flips to true after a successful verification and never
	// goes back.
	IsActive bool `json:"is_active"`

	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Public returns the account with credential and OTP fields stripped.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:         a.ID,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		Email:      a.Email,
		IsActive:   a.IsActive,
		IsArchived: a.IsArchived,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// PublicAccount is the account view returned to callers. It carries no
// credential or verification secrets.
type PublicAccount struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccountUpdate is a partial update of an account row. Nil fields are left
// untouched. Credential fields must be set together, as must OTP fields;
// the repository rejects an update that sets only one half of a pair.
type AccountUpdate struct {
	FirstName  *string
	MiddleName *string
	LastName   *string

	PasswordDigest *string
	PasswordSalt   *string

	OTP       *string
	OTPExpiry *time.Time

	IsActive *bool
}

// IsEmpty reports whether the update changes nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.MiddleName == nil && u.LastName == nil &&
		u.PasswordDigest == nil && u.PasswordSalt == nil &&
		u.OTP == nil && u.OTPExpiry == nil &&
		u.IsActive == nil
}
