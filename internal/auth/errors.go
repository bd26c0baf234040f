package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	// TextCodeInvalidCreds is returned for any credential failure
	TextCodeInvalidCreds = "INVALID_CREDENTIALS"
	// TextCodeInvalidToken is returned for any token failure
	TextCodeInvalidToken = "INVALID_TOKEN"
	// TextCodeDuplicateUser is returned when an email is already registered
	TextCodeDuplicateUser = "DUPLICATE_USER"
	// TextCodeEmptyPassword is returned when hashing an empty password
	TextCodeEmptyPassword = "EMPTY_PASSWORD"
)

// ErrInvalidCredentials covers both an unknown email and a password mismatch.
// The two cases must stay indistinguishable to callers.
var ErrInvalidCredentials = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds)

// ErrTokenInvalid is the single error for every token rejection: bad
// signature, wrong audience, expired, malformed, or revoked.
var ErrTokenInvalid = errors.New("the token provided is invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken)

// ErrDuplicateUser is returned when registration hits the email unique constraint
var ErrDuplicateUser = errors.New("a user with that email already exists", errors.CategoryConflict).
	WithTextCode(TextCodeDuplicateUser)

// ErrNoEmptyPassword is returned when we are asked to hash an empty string
var ErrNoEmptyPassword = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword)
