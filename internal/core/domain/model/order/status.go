package order

import (
	"moveout/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The order's status is a projection of its jobs' statuses: every transition
// except the student's own Pending cancellation is applied by command
// handlers reacting to job events, never by clients directly.
//
//	Pending ──> Accepted ──> PickedUp ──> InStorage ──> Accepted ──> Completed
//	   │            (storage phase)            │        (return phase)
//	   └──────────────> Cancelled <────────────┘
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusPending means the storage job is still available; no mover has
	// committed yet. The only state a student may cancel from directly.
	StatusPending

	// StatusAccepted means a mover holds the order's current job, either
	// the storage pickup or the return delivery.
	StatusAccepted

	// StatusPickedUp means the student handed the goods to the mover.
	StatusPickedUp

	// StatusInStorage means the goods sit in the warehouse and the order is
	// waiting for the student to schedule a return.
	StatusInStorage

	// StatusCompleted is terminal: the goods were returned to the student.
	StatusCompleted

	// StatusCancelled is terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusPickedUp:  "PickedUp",
		StatusInStorage: "InStorage",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("order status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, valid or not.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Accept mirrors a job acceptance onto the order. Valid from Pending (a
// mover took the storage job) and from InStorage (a mover took the return
// job).
func (s Status) Accept() (Status, error) {
	if s != StatusPending && s != StatusInStorage {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// MarkPickedUp mirrors the student's storage-pickup confirmation.
func (s Status) MarkPickedUp() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusPickedUp.String())
	}
	return StatusPickedUp, nil
}

// MarkInStorage mirrors the storage job's warehouse drop-off.
func (s Status) MarkInStorage() (Status, error) {
	if s != StatusPickedUp {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusInStorage.String())
	}
	return StatusInStorage, nil
}

// ReturnToStorage rewinds a return-phase order back to InStorage after its
// return job was cancelled, so the student can schedule a new return. A
// no-op when the order never left InStorage, which happens when the return
// job is cancelled before any mover accepts it.
func (s Status) ReturnToStorage() (Status, error) {
	if s == StatusInStorage {
		return StatusInStorage, nil
	}
	if s != StatusAccepted {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusInStorage.String())
	}
	return StatusInStorage, nil
}

// Complete mirrors the student's confirmation of the return delivery.
func (s Status) Complete() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusCompleted.String())
	}
	return StatusCompleted, nil
}

// CanCancel reports whether the status permits cancellation at all. Whether
// a particular actor may cancel is a separate question the aggregate
// answers.
func (s Status) CanCancel() bool {
	return !s.IsTerminal()
}
