package apperr

import "errors"

// Kind classifies a failure so controllers can pick a status code and
// callers/tests can branch without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUnavailable
	KindForbidden
	KindUnauthenticated
	KindInvalidTransition
	KindEmptyCart
	KindEmptyOrder
	KindLimitExceeded
	KindAlreadyCancelled
	KindAlreadyDelivered
	KindValidation
	KindConflict
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is lets errors.Is match on kind: errors.Is(err, apperr.NotFound("")).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func NotFound(msg string) *Error          { return New(KindNotFound, msg) }
func Unavailable(msg string) *Error       { return New(KindUnavailable, msg) }
func Forbidden(msg string) *Error         { return New(KindForbidden, msg) }
func Unauthenticated(msg string) *Error   { return New(KindUnauthenticated, msg) }
func InvalidTransition(msg string) *Error { return New(KindInvalidTransition, msg) }
func EmptyCart(msg string) *Error         { return New(KindEmptyCart, msg) }
func EmptyOrder(msg string) *Error        { return New(KindEmptyOrder, msg) }
func LimitExceeded(msg string) *Error     { return New(KindLimitExceeded, msg) }
func AlreadyCancelled(msg string) *Error  { return New(KindAlreadyCancelled, msg) }
func AlreadyDelivered(msg string) *Error  { return New(KindAlreadyDelivered, msg) }
func Validation(msg string) *Error        { return New(KindValidation, msg) }
func Conflict(msg string) *Error          { return New(KindConflict, msg) }

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
