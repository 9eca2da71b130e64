package domain

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// validTransitions is the order state machine. Forward moves advance one step;
// cancellation is allowed from every non-terminal state.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus accepts the exact status names used on the wire.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := validTransitions[st]; !ok {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// IsTerminal reports whether no transition out of s exists.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition checks the transition table.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// StatusChange records one applied transition of an order
type StatusChange struct {
	OrderID   string
	Number    int
	From      Status
	To        Status
	ChangedBy string
	ChangedAt time.Time
}
