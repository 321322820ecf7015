package signature

import "fmt"

// Error codes for signing failures
const (
	ErrCodeKeyNotFound = "KEY_NOT_FOUND"
	ErrCodeKeyInvalid  = "KEY_INVALID"
	ErrCodeSignFailed  = "SIGN_FAILED"
)

// SignatureError represents a signing failure.
type SignatureError struct {
	Code    string
	Message string
	Cause   error
}

func (e *SignatureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SignatureError) Unwrap() error {
	return e.Cause
}

// NewSignatureError creates a new signature error
func NewSignatureError(code, message string, cause error) *SignatureError {
	return &SignatureError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrKeyNotFound returns error when the key file cannot be read
func ErrKeyNotFound(path string, cause error) *SignatureError {
	return NewSignatureError(ErrCodeKeyNotFound, fmt.Sprintf("signing key not readable: %s", path), cause)
}

// ErrKeyInvalid returns error when the key material cannot be parsed
func ErrKeyInvalid(reason string, cause error) *SignatureError {
	return NewSignatureError(ErrCodeKeyInvalid, reason, cause)
}

// ErrSignFailed returns error when the signing primitive fails
func ErrSignFailed(cause error) *SignatureError {
	return NewSignatureError(ErrCodeSignFailed, "signing failed", cause)
}
