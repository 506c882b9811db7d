package errors

import (
	"net/http"

	"corebank/internal/result"
)

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication and authorization error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_002"
	AuthInsufficientPermission ErrorCode = "AUTH_003"
	AuthUnknownScope           ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidAmount ErrorCode = "VALIDATION_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound     ErrorCode = "ACCOUNT_001"
	AccountInactive     ErrorCode = "ACCOUNT_002"
	AccountInsufficient ErrorCode = "ACCOUNT_003"
	BankInactive        ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransferSameAccount      ErrorCode = "TRANSACTION_003"
	TransactionConflict      ErrorCode = "TRANSACTION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemConcurrentUpdate  ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthUnknownScope:           "Failed to resolve access scope",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidAmount: "Amount must be a positive value with at most two decimal places",

	AccountNotFound:     "Account not found",
	AccountInactive:     "Account or its owner is inactive",
	AccountInsufficient: "Insufficient account balance",
	BankInactive:        "The owning bank is inactive",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransferSameAccount:      "Cannot transfer to the same account",
	TransactionConflict:      "Transaction conflicts with the current account state",

	SystemInternalError:     "An unexpected error occurred",
	SystemConcurrentUpdate:  "Concurrent update detected, try again later",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidAmount,
		TransactionInvalidAmount, TransferSameAccount:
		return http.StatusBadRequest

	case AuthMissingToken, AuthInvalidTokenFormat:
		return http.StatusUnauthorized

	case AuthInsufficientPermission, AuthUnknownScope:
		return http.StatusForbidden

	case AccountNotFound, TransactionNotFound:
		return http.StatusNotFound

	case AccountInactive, AccountInsufficient, BankInactive, TransactionConflict:
		return http.StatusConflict

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemInternalError, SystemConcurrentUpdate:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// StatusForKind maps a result failure kind to a transport status code.
// The core only guarantees the kind is discoverable; this mapping is the
// presentation edge's concern.
func StatusForKind(kind result.Kind) int {
	switch kind {
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindUnauthorized:
		return http.StatusUnauthorized
	case result.KindForbidden:
		return http.StatusForbidden
	case result.KindConflict, result.KindBusinessRule:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
