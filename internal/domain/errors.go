package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a typed failure carrying a kind and a human-readable message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewInvalidArgument creates an InvalidArgument error
func NewInvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a NotFound error
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInternal creates an InternalFault error
func NewInternal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err. Errors that are not domain errors are
// internal faults.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	ErrInvalidProductID   = NewInvalidArgument("Invalid productId")
	ErrInvalidQuantity    = NewInvalidArgument("Invalid quantity")
	ErrQuantityTooLarge   = NewInvalidArgument("quantity exceeds %d", MaxLineQuantity)
	ErrInvalidRequestBody = NewInvalidArgument("Invalid request body")

	ErrProductNotFound  = NewNotFound("Product not found")
	ErrCartLineNotFound = NewNotFound("Cart item not found")

	ErrCartInconsistent = NewInternal("cart line references a missing product")
)
