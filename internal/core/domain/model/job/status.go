package job

import (
	"moveout/internal/pkg/errs"
)

// Status represents the lifecycle state of a job. It is a value object that
// validates every transition, so an illegal status change is impossible to
// express without an error.
type Status int

const (
	// StatusUnknown is the invalid zero value; it catches uninitialized
	// Status fields.
	StatusUnknown Status = iota

	// StatusAvailable means no mover holds the job; any mover may accept it.
	StatusAvailable

	// StatusAccepted means exactly one mover won the job and is on the way.
	StatusAccepted

	// StatusAwaitingStudentConfirmation means the mover signalled arrival
	// and the student has not yet confirmed the handoff.
	StatusAwaitingStudentConfirmation

	// StatusPickedUp means the student confirmed the handoff and the goods
	// are with the mover.
	StatusPickedUp

	// StatusCompleted is terminal: the job's delivery leg is done and the
	// mover has been credited.
	StatusCompleted

	// StatusCancelled is terminal: the job was withdrawn before completion.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                     "Unknown",
		StatusAvailable:                   "Available",
		StatusAccepted:                    "Accepted",
		StatusAwaitingStudentConfirmation: "AwaitingStudentConfirmation",
		StatusPickedUp:                    "PickedUp",
		StatusCompleted:                   "Completed",
		StatusCancelled:                   "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("job status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("job status")
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

// RequiresMover reports whether a job in this status must carry a mover ID.
// Available jobs must not; cancelled jobs may or may not, depending on
// whether they were assigned before cancellation.
func (s Status) RequiresMover() bool {
	switch s {
	case StatusAccepted, StatusAwaitingStudentConfirmation, StatusPickedUp, StatusCompleted:
		return true
	default:
		return false
	}
}

// Accept transitions Available -> Accepted. Any other origin loses the
// acceptance race or is simply illegal; both surface as AlreadyAssigned at
// the repository layer, and as InvalidTransition here.
func (s Status) Accept() (Status, error) {
	if s != StatusAvailable {
		return 0, errs.NewInvalidTransitionError("job", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// RequestConfirmation transitions Accepted -> AwaitingStudentConfirmation.
func (s Status) RequestConfirmation() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewInvalidTransitionError("job", s.String(),
			StatusAwaitingStudentConfirmation.String())
	}
	return StatusAwaitingStudentConfirmation, nil
}

// Confirm applies the student's confirmation. For storage jobs the goods
// change hands and the job proceeds to PickedUp; for return jobs the
// confirmation is the final delivery sign-off and completes the job.
func (s Status) Confirm(jobType Type) (Status, error) {
	target := StatusPickedUp
	if jobType == TypeReturn {
		target = StatusCompleted
	}

	if s != StatusAwaitingStudentConfirmation {
		return 0, errs.NewInvalidTransitionError("job", s.String(), target.String())
	}
	return target, nil
}

// CompleteDelivery transitions PickedUp -> Completed, the warehouse
// drop-off of a storage job.
func (s Status) CompleteDelivery() (Status, error) {
	if s != StatusPickedUp {
		return 0, errs.NewInvalidTransitionError("job", s.String(), StatusCompleted.String())
	}
	return StatusCompleted, nil
}

// CanCancel reports whether the status permits cancellation. The aggregate
// turns a false result into AlreadyCancelled or InvalidTransition, where the
// job's identity is known.
func (s Status) CanCancel() bool {
	return !s.IsTerminal()
}
