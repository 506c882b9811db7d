package errors

import (
	"fmt"

	"corebank/internal/result"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// NewErrorResponse creates a standardized error response with the given
// error code and optional detail messages.
func NewErrorResponse(code ErrorCode, details ...string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: details,
		},
	}
}

// NewValidationError creates a validation error response with
// field-specific detail messages.
func NewValidationError(fieldErrors map[string]string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return NewErrorResponse(ValidationGeneral, details...)
}

// FromStatus converts a failed result status into the wire error shape,
// preserving every message the core collected.
func FromStatus(status result.Status) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    codeForKind(status.Kind),
			Message: status.Message(),
			Details: status.Errors,
		},
	}
}

func codeForKind(kind result.Kind) string {
	switch kind {
	case result.KindValidation:
		return string(ValidationGeneral)
	case result.KindNotFound:
		return string(AccountNotFound)
	case result.KindUnauthorized:
		return string(AuthMissingToken)
	case result.KindForbidden:
		return string(AuthInsufficientPermission)
	case result.KindConflict, result.KindBusinessRule:
		return string(TransactionConflict)
	default:
		return string(SystemInternalError)
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s", er.Error.Code, er.Error.Message)
}
