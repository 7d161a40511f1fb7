package service

import (
	"errors"
	"fmt"
)

// Kind is the stable error category surfaced to callers. Handlers map kinds to
// HTTP statuses; the services themselves never retry.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindValidation        Kind = "validation"
	KindInsufficientStock Kind = "insufficient_stock"
	KindEmptyCart         Kind = "empty_cart"
	KindConflict          Kind = "conflict"
	KindAuthFailure       Kind = "auth_failure"
	KindTransactionFailed Kind = "transaction_failed"
)

type Error struct {
	Kind    Kind
	Message string
	// Product names the offending product for insufficient-stock errors.
	Product string
}

func (e *Error) Error() string {
	if e.Product != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Product)
	}
	return e.Message
}

func errNotFound(what string) error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func errValidation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func errInsufficientStock(product string) error {
	return &Error{Kind: KindInsufficientStock, Message: "not enough stock for", Product: product}
}

func errEmptyCart() error {
	return &Error{Kind: KindEmptyCart, Message: "cart is empty"}
}

func errConflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func errAuthFailure(msg string) error {
	return &Error{Kind: KindAuthFailure, Message: msg}
}

// ErrKind extracts the Kind from err, or KindTransactionFailed for anything
// that is not a service error (driver failures, rolled-back transactions).
func ErrKind(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindTransactionFailed
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}
