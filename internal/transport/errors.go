package transport

import "fmt"

// Error codes mapped from registrar HTTP status codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeServer       = "SERVER_ERROR"
	ErrCodeUnknown      = "UNKNOWN_STATUS"
)

// APIError is the thin mapping of a registrar HTTP outcome. The raw
// response travels alongside it untouched.
type APIError struct {
	Code       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s (http %d)", e.Code, e.Message, e.StatusCode)
}

// mapSubmitStatus interprets a document submission response. 201 means
// accepted for processing.
func mapSubmitStatus(code int) error {
	switch code {
	case 201:
		return nil
	case 400:
		return &APIError{Code: ErrCodeBadRequest, StatusCode: code, Message: "bad request"}
	case 401:
		return &APIError{Code: ErrCodeUnauthorized, StatusCode: code, Message: "client certificate check failed"}
	case 409:
		return &APIError{Code: ErrCodeConflict, StatusCode: code, Message: "document with the same id already exists"}
	case 503:
		return &APIError{Code: ErrCodeServer, StatusCode: code, Message: "registrar unavailable"}
	default:
		return &APIError{Code: ErrCodeUnknown, StatusCode: code, Message: "unexpected response code"}
	}
}

// mapStatusStatus interprets a status poll response. 200 carries the
// processed result, 202 means still processing.
func mapStatusStatus(code int) error {
	switch code {
	case 200, 202:
		return nil
	case 400:
		return &APIError{Code: ErrCodeBadRequest, StatusCode: code, Message: "bad request"}
	case 401:
		return &APIError{Code: ErrCodeUnauthorized, StatusCode: code, Message: "client certificate check failed"}
	case 404:
		return &APIError{Code: ErrCodeNotFound, StatusCode: code, Message: "document not found"}
	default:
		return &APIError{Code: ErrCodeUnknown, StatusCode: code, Message: "unexpected response code"}
	}
}
