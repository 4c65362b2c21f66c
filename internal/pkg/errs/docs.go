// Package errs provides standardized error types for the moveout application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the coordination core's full error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input, rejected
//     before any state is touched
//   - ObjectNotFoundError: the referenced order, job, or mover does not exist
//   - UnauthorizedError: the actor does not own the resource or role the
//     action requires
//   - InvalidTransitionError: the requested status change is not legal from
//     the current status
//   - AlreadyAssignedError: the caller lost the race on an atomic
//     conditional update (the job was taken by another mover)
//   - InvalidStateError: a precondition on the order or job does not hold
//   - AlreadyCancelledError: the entity is already in its cancelled state
//   - AlreadyExistsError: an idempotent no-op; the existing entity is the
//     result, not a failure
//   - PaymentFailedError: the payment collaborator declined a charge or
//     refund
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAlreadyAssigned)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause is useful
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
package errs
