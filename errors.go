package auth

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrIdentityNotFound is returned when a token subject or identifier does
// not resolve to an account. Login paths never surface this directly, see
// ErrMismatchedHashAndPassword.
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryNotFound).
	WithTextCode("IDENTITY_NOT_FOUND").
	WithCode(goerrors.CodeNotFound)

// ErrMismatchedHashAndPassword covers both unknown identifiers and wrong
// passwords during login, so callers cannot enumerate accounts.
var ErrMismatchedHashAndPassword = goerrors.New("invalid credentials", goerrors.CategoryAuth).
	WithTextCode("BAD_CREDENTIALS")

// ErrDuplicateUsername rejects a registration re-using an existing username
var ErrDuplicateUsername = goerrors.New("username already in use", goerrors.CategoryConflict).
	WithTextCode("DUPLICATE_USERNAME")

// ErrDuplicateEmail rejects a registration re-using an existing email
var ErrDuplicateEmail = goerrors.New("email already in use", goerrors.CategoryConflict).
	WithTextCode("DUPLICATE_EMAIL")

// ErrTokenExpired is returned when a token's expiry is at or before the
// verification time
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed covers structural and signature failures during
// token validation
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithTextCode("TOKEN_MALFORMED")

// ErrNoEmptyString rejects empty required values
var ErrNoEmptyString = goerrors.New("value must not be empty", goerrors.CategoryBadInput).
	WithTextCode("EMPTY_VALUE")

// ErrMissingSigningSecret is fatal at startup: the process must not serve
// requests without configured key material.
var ErrMissingSigningSecret = goerrors.New("signing secret is not configured", goerrors.CategoryBadInput).
	WithTextCode("MISSING_SIGNING_SECRET")

// ErrWeakSigningSecret is returned in strict mode when the derived key
// material is shorter than the HS512 minimum.
var ErrWeakSigningSecret = goerrors.New("signing secret is shorter than the HS512 minimum", goerrors.CategoryBadInput).
	WithTextCode("WEAK_SIGNING_SECRET")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
