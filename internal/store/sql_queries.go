package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-auth/models"
)

const accountsTable = "accounts"

// accountColumns is the column order every account SELECT returns and
// scanAccount reads.
var accountColumns = []string{
	"id",
	"first_name",
	"middle_name",
	"last_name",
	"email",
	"password_digest",
	"password_salt",
	"otp",
	"otp_expiry",
	"is_active",
	"is_archived",
	"created_at",
	"updated_at",
}

// buildFindAccountQuery selects the non-archived account whose column equals
// value.
func buildFindAccountQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	query, args, err := b.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{column: value}).
		Where(sq.Eq{"is_archived": false}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertAccountQuery inserts every writable column. Timestamps and the
// archival flag are left to column defaults.
func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Insert(accountsTable).
		Columns(
			"id",
			"first_name",
			"middle_name",
			"last_name",
			"email",
			"password_digest",
			"password_salt",
			"otp",
			"otp_expiry",
			"is_active",
		).
		Values(
			account.ID,
			account.FirstName,
			account.MiddleName,
			account.LastName,
			account.Email,
			account.PasswordDigest,
			account.PasswordSalt,
			account.OTP,
			account.OTPExpiry,
			account.IsActive,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateAccountQuery sets the non-nil fields of update on the
// non-archived account with the given id and bumps updated_at.
func buildUpdateAccountQuery(b sq.StatementBuilderType, id string, update models.AccountUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}
	if (update.PasswordDigest == nil) != (update.PasswordSalt == nil) {
		return "", nil, fmt.Errorf("%w: password_digest and password_salt", ErrIncompletePair)
	}
	if (update.OTP == nil) != (update.OTPExpiry == nil) {
		return "", nil, fmt.Errorf("%w: otp and otp_expiry", ErrIncompletePair)
	}

	set := make(map[string]any, 9)
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.MiddleName != nil {
		set["middle_name"] = *update.MiddleName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.PasswordDigest != nil {
		set["password_digest"] = *update.PasswordDigest
		set["password_salt"] = *update.PasswordSalt
	}
	if update.OTP != nil {
		set["otp"] = *update.OTP
		set["otp_expiry"] = *update.OTPExpiry
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}
	set["updated_at"] = sq.Expr("CURRENT_TIMESTAMP")

	query, args, err := b.
		Update(accountsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"is_archived": false}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
