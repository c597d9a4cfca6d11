package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// two are indistinguishable to a caller probing for account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDeactivated is returned when the account's IsActive flag is false.
	ErrAccountDeactivated = errors.New("account is deactivated")
	// ErrUserExists is returned by signup when the email is already registered.
	ErrUserExists = errors.New("user with this email already exists")
	// ErrInvalidTokenType is returned when a token's type does not match the
	// operation it is used for.
	ErrInvalidTokenType = errors.New("invalid token type")
)

// ValidationError reports malformed or missing client input. The message is
// user-facing and is written verbatim into the error response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
