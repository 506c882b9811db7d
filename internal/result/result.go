package result

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies an expected failure so callers can map it to a
// transport-level status without parsing messages.
type Kind string

const (
	KindNone         Kind = ""
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindBusinessRule Kind = "business_rule"
	KindUnknown      Kind = "unknown"
)

// Status is the value-less success/failure carrier used by authorization
// checks and validation stages. Expected failures travel as Status values,
// never as Go errors.
type Status struct {
	Kind   Kind
	Errors []string
}

// OK returns a successful status.
func OK() Status {
	return Status{}
}

// Fail builds a failure of the given kind with one or more messages.
func Fail(kind Kind, messages ...string) Status {
	return Status{Kind: kind, Errors: messages}
}

// NotFound reports a missing entity. A missing record is never reported
// as Forbidden.
func NotFound(entity string, id any) Status {
	return Status{
		Kind:   KindNotFound,
		Errors: []string{fmt.Sprintf("%s with id %v was not found", entity, id)},
	}
}

// Forbidden reports that the actor is authenticated but lacks rights.
func Forbidden(message string) Status {
	return Status{Kind: KindForbidden, Errors: []string{message}}
}

// Unauthorized reports a missing or unresolvable identity.
func Unauthorized(message string) Status {
	return Status{Kind: KindUnauthorized, Errors: []string{message}}
}

// BadRequest reports malformed or rejected input.
func BadRequest(message string) Status {
	return Status{Kind: KindValidation, Errors: []string{message}}
}

// Conflict reports a business-rule collision (inactive party, duplicate,
// concurrent state change).
func Conflict(message string) Status {
	return Status{Kind: KindConflict, Errors: []string{message}}
}

// BusinessRule reports a generic domain violation.
func BusinessRule(message string) Status {
	return Status{Kind: KindBusinessRule, Errors: []string{message}}
}

// InsufficientFunds reports a funds check failure carrying both figures.
func InsufficientFunds(requested, available decimal.Decimal) Status {
	return Status{
		Kind: KindConflict,
		Errors: []string{fmt.Sprintf(
			"insufficient funds: requested %s, available %s",
			requested.StringFixed(2), available.StringFixed(2),
		)},
	}
}

// AccountInactive reports that an account cannot take part in transactions.
func AccountInactive(accountNumber string) Status {
	return Status{
		Kind:   KindConflict,
		Errors: []string{fmt.Sprintf("account %s is inactive", accountNumber)},
	}
}

// IsSuccess reports whether the status carries no failure.
func (s Status) IsSuccess() bool {
	return len(s.Errors) == 0
}

// IsFailure reports whether the status carries at least one error.
func (s Status) IsFailure() bool {
	return !s.IsSuccess()
}

// Is reports whether the status is a failure of the given kind.
func (s Status) Is(kind Kind) bool {
	return s.IsFailure() && s.Kind == kind
}

// Message joins all error messages into one human-readable string.
func (s Status) Message() string {
	return strings.Join(s.Errors, "; ")
}

// Combine aggregates independent checks into one status. All failure
// messages are collected; the kind of the first failure wins. Dependent
// checks should short-circuit sequentially instead of using Combine.
func Combine(statuses ...Status) Status {
	combined := Status{}
	for _, st := range statuses {
		if st.IsSuccess() {
			continue
		}
		if combined.IsSuccess() {
			combined.Kind = st.Kind
		}
		combined.Errors = append(combined.Errors, st.Errors...)
	}
	return combined
}

// ValidateAll runs every check and aggregates the failures, evaluating
// all of them even when an early one fails.
func ValidateAll(checks ...func() Status) Status {
	statuses := make([]Status, 0, len(checks))
	for _, check := range checks {
		statuses = append(statuses, check())
	}
	return Combine(statuses...)
}

// Result carries a value on success and the Status failure contract
// otherwise.
type Result[T any] struct {
	Status
	Value T
}

// Ok wraps a value in a successful result.
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// FailWith lifts a failed status into a typed result.
func FailWith[T any](status Status) Result[T] {
	return Result[T]{Status: status}
}
