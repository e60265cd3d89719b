package domain

import (
	"errors"
	"time"
)

// HireStatus represents the lifecycle state of a hire request.
type HireStatus string

const (
	StatusPending  HireStatus = "Pending"
	StatusAccepted HireStatus = "Accepted"
	StatusRejected HireStatus = "Rejected"
)

// validTransitions defines the allowed state machine transitions. Accepted and
// Rejected are terminal: no transition is defined out of them.
var validTransitions = map[HireStatus][]HireStatus{
	StatusPending: {StatusAccepted, StatusRejected},
}

var ErrHireNotFound = errors.New("hire not found")
var ErrWorkerNotFound = errors.New("worker not found")
var ErrClientNotFound = errors.New("client not found")
var ErrAlreadyProcessed = errors.New("hire already processed")
var ErrInvalidTransition = errors.New("status must be Accepted or Rejected")
var ErrForbidden = errors.New("access forbidden")
var ErrConflict = errors.New("unable to delete user with related records")

// IsDecision reports whether s is one of the two terminal states a worker can
// move a pending hire into.
func (s HireStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether a transition from the current status to next
// is valid.
func (s HireStatus) CanTransitionTo(next HireStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Hire is one work request from a client to a worker. It is created by the
// client, decided by the assigned worker (or an admin), and only ever removed
// by the cascade when one of its endpoint users is deleted.
type Hire struct {
	ID             int64      `json:"id" db:"id"`
	ClientID       int64      `json:"client_id" db:"client_id"`
	WorkerID       int64      `json:"worker_id" db:"worker_id"`
	Date           time.Time  `json:"date" db:"date"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	Status         HireStatus `json:"status" db:"status"`
	IdempotencyKey *string    `json:"-" db:"idempotency_key"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}
