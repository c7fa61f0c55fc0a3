package order

import "errors"

var (
	ErrInvalidQuantity      = errors.New("order quantity must be positive")
	ErrInsufficientQuantity = errors.New("ticket quantity is not enough")
	ErrAlreadyCompleted     = errors.New("order has been completed")
	ErrAlreadyPending       = errors.New("order is already pending")
	ErrAlreadyCancelled     = errors.New("order is already cancelled")
	ErrCancelled            = errors.New("order has been cancelled")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransition enforces the order state machine:
//
//	created → pending | cancelled | completed
//	pending → cancelled | completed
//	completed, cancelled → (terminal)
//
// Re-requesting the current state is rejected as redundant rather than
// treated as a no-op, so callers can surface it to the client.
func CanTransition(from, to Status) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrInvalidStatus
	}

	switch from {
	case StatusCompleted:
		return ErrAlreadyCompleted
	case StatusCancelled:
		if to == StatusCancelled {
			return ErrAlreadyCancelled
		}
		return ErrCancelled
	}

	switch to {
	case StatusCreated:
		return ErrInvalidTransition
	case StatusPending:
		if from == StatusPending {
			return ErrAlreadyPending
		}
	}

	return nil
}
