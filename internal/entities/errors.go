package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every business error returned by the services wraps exactly one
// of them, so callers can branch with errors.Is.
var (
	ErrNotFound                  = errors.New("resource not found")
	ErrDuplicateResource         = errors.New("duplicate resource")
	ErrInsufficientStock         = errors.New("insufficient stock")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrOrderCancellationRejected = errors.New("order cancellation rejected")
	ErrEmptyOrder                = errors.New("empty order")
	ErrProductUnavailable        = errors.New("product unavailable")
	ErrInvalidQuantity           = errors.New("invalid quantity")
	ErrInvalidArgument           = errors.New("invalid argument")
)

// ErrInvalidOrder is returned when a cached order can not be decoded.
var ErrInvalidOrder = errors.New("invalid order data")

const (
	CodeNotFound                = "NOT_FOUND"
	CodeDuplicateResource       = "DUPLICATE_RESOURCE"
	CodeInsufficientStock       = "INSUFFICIENT_STOCK"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodeOrderAlreadyShipped     = "ORDER_ALREADY_SHIPPED"
	CodeOrderAlreadyDelivered   = "ORDER_ALREADY_DELIVERED"
	CodeOrderAlreadyCancelled   = "ORDER_ALREADY_CANCELLED"
	CodeEmptyOrder              = "ORDER_EMPTY"
	CodeProductUnavailable      = "PRODUCT_NOT_AVAILABLE"
	CodeInvalidQuantity         = "INVALID_QUANTITY"
	CodeInvalidArgument         = "INVALID_ARGUMENT"
)

// BusinessError is a caller-facing rule violation with a stable code.
type BusinessError struct {
	kind    error
	code    string
	message string
}

func NewBusinessError(kind error, code, message string) *BusinessError {
	return &BusinessError{kind: kind, code: code, message: message}
}

func (e *BusinessError) Error() string { return e.message }
func (e *BusinessError) Unwrap() error { return e.kind }
func (e *BusinessError) Code() string  { return e.code }

// InsufficientStockError reports the stock observed when a reservation was refused.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d", e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
func (e *InsufficientStockError) Code() string  { return CodeInsufficientStock }

type StatusTransitionError struct {
	From Status
	To   Status
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *StatusTransitionError) Unwrap() error { return ErrInvalidStatusTransition }
func (e *StatusTransitionError) Code() string  { return CodeInvalidStatusTransition }

func NotFound(resource, field string, value any) error {
	return NewBusinessError(ErrNotFound, CodeNotFound,
		fmt.Sprintf("%s not found with %s: %v", resource, field, value))
}

func Duplicate(resource, field string, value any) error {
	return NewBusinessError(ErrDuplicateResource, CodeDuplicateResource,
		fmt.Sprintf("%s already exists with %s: %v", resource, field, value))
}

func InvalidArgument(format string, args ...any) error {
	return NewBusinessError(ErrInvalidArgument, CodeInvalidArgument, fmt.Sprintf(format, args...))
}

func InvalidQuantity(productID string, quantity int) error {
	return NewBusinessError(ErrInvalidQuantity, CodeInvalidQuantity,
		fmt.Sprintf("quantity for product %s must be at least 1, got %d", productID, quantity))
}

func ProductUnavailable(name string) error {
	return NewBusinessError(ErrProductUnavailable, CodeProductUnavailable,
		fmt.Sprintf("product %q is not available", name))
}

func EmptyOrder() error {
	return NewBusinessError(ErrEmptyOrder, CodeEmptyOrder, "order must contain at least one line")
}

// ErrorCode returns the machine readable code of a business error, or an empty
// string for anything else.
func ErrorCode(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}

// IsBusiness reports whether err is one of the caller-facing error kinds.
func IsBusiness(err error) bool {
	return ErrorCode(err) != ""
}
