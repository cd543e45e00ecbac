package accounts

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrDuplicateAccount is returned when a registration collides with an
// existing email or username. We return the same error whether the
// duplicate was caught by the fast-path lookup or by the storage-level
// unique constraint.
var ErrDuplicateAccount = errors.New("username or email already exists", errors.CategoryConflict).
	WithTextCode("DUPLICATE_ACCOUNT").
	WithCode(errors.CodeConflict)

// ErrInvalidCredentials covers both an unknown email and a password
// mismatch. Callers must not be able to tell which one occurred.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode("INVALID_CREDENTIALS").
	WithCode(errors.CodeUnauthorized)

// ErrProfileNotFound is returned when a profile update targets an account
// id with no profile row. Profiles are created alongside accounts, so this
// should not happen in practice; we surface it rather than treat it as fatal.
var ErrProfileNotFound = errors.New("profile not found", errors.CategoryNotFound).
	WithTextCode("PROFILE_NOT_FOUND").
	WithCode(errors.CodeNotFound)

// ErrTokenExpired is the expired token error
var ErrTokenExpired = errors.New("invalid or expired token", errors.CategoryAuth).
	WithTextCode("TOKEN_EXPIRED").
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers bad signatures and undecodable payloads
var ErrTokenMalformed = errors.New("invalid or expired token", errors.CategoryAuth).
	WithTextCode("TOKEN_MALFORMED").
	WithCode(errors.CodeUnauthorized)

// ErrUnauthenticated is returned when the Authorization header is missing
// or does not carry a bearer token
var ErrUnauthenticated = errors.New("authentication required", errors.CategoryAuth).
	WithTextCode("AUTHENTICATION_REQUIRED").
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword is the bcrypt mismatch error
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password", errors.CategoryAuth).
	WithTextCode("PASSWORD_MISMATCH").
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString rejects empty input where a value is required
var ErrNoEmptyString = errors.New("value should not be an empty string", errors.CategoryValidation).
	WithTextCode("EMPTY_STRING").
	WithCode(errors.CodeBadRequest)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) && richErr.TextCode == ErrTokenMalformed.TextCode {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsUniqueViolationError reports whether err came from a storage-level
// unique constraint. Matched by message since the driver behind bun varies
// between sqlite and postgres deployments.
func IsUniqueViolationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "constraint failed: accounts")
}
