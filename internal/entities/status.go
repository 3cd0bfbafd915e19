package entities

import (
	"slices"
	"strings"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// DELIVERED and CANCELLED have no outgoing edges.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(statusTransitions[s], to)
}

// CheckTransition validates a generic status update.
func CheckTransition(from, to Status) error {
	if !from.CanTransitionTo(to) {
		return &StatusTransitionError{From: from, To: to}
	}
	return nil
}

// CheckCancellable validates the dedicated cancellation path. Each refusal
// carries its own code.
func CheckCancellable(s Status) error {
	switch s {
	case StatusShipped:
		return NewBusinessError(ErrOrderCancellationRejected, CodeOrderAlreadyShipped,
			"order has already been shipped and can not be cancelled")
	case StatusDelivered:
		return NewBusinessError(ErrOrderCancellationRejected, CodeOrderAlreadyDelivered,
			"order has already been delivered and can not be cancelled")
	case StatusCancelled:
		return NewBusinessError(ErrOrderCancellationRejected, CodeOrderAlreadyCancelled,
			"order is already cancelled")
	}
	return CheckTransition(s, StatusCancelled)
}

func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", InvalidArgument("unknown order status: %s", value)
	}
	return s, nil
}

