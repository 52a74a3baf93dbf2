package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSkinModelNotLoaded is returned when the skin type model artifact was
	// missing at startup
	ErrSkinModelNotLoaded = errors.New("skin type model not loaded")
	// ErrRoutineModelNotLoaded is returned when the routine model artifact was
	// missing at startup
	ErrRoutineModelNotLoaded = errors.New("skincare routine model not loaded")
	// ErrCatalogNotLoaded is returned when the product catalog was missing at
	// startup
	ErrCatalogNotLoaded = errors.New("product catalog not loaded")
	// ErrNotFound is returned when a username lookup finds no account
	ErrNotFound = errors.New("user not found")
	// ErrUserExists is returned when registering an already taken username
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks malformed request input. Handlers map it to a
// 400-class response carrying the message.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf creates a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
