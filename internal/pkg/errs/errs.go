package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers classify failures with errors.Is against these;
// the concrete error structs carry the details.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrUnauthorized      = errors.New("actor is not authorized")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrAlreadyAssigned   = errors.New("job is already assigned")
	ErrInvalidState      = errors.New("operation is not allowed in current state")
	ErrAlreadyCancelled  = errors.New("already cancelled")
	ErrAlreadyExists     = errors.New("already exists")
	ErrPaymentFailed     = errors.New("payment failed")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// UnauthorizedError indicates that the acting party does not own the
// resource or role required for the operation.
type UnauthorizedError struct {
	ActorID  string
	Resource string
}

func NewUnauthorizedError(actorID string, resource string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Resource: resource}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: actor %s is not allowed to act on %s",
		ErrUnauthorized, e.ActorID, e.Resource))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidTransitionError indicates that a status change was requested that
// the lifecycle graph does not permit from the current status.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyAssignedError indicates a lost race on job acceptance: the
// conditional update found the job no longer available. The caller should
// refresh its job list rather than retry the same job.
type AlreadyAssignedError struct {
	JobID string
}

func NewAlreadyAssignedError(jobID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{JobID: jobID}
}

func (e *AlreadyAssignedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAlreadyAssigned, e.JobID))
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// InvalidStateError indicates a precondition on an order or job that does
// not hold, such as cancelling an order a mover already accepted.
type InvalidStateError struct {
	Entity string
	ID     string
	State  string
}

func NewInvalidStateError(entity, id, state string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, State: state}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s is in state %s",
		ErrInvalidState, e.Entity, e.ID, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// AlreadyCancelledError indicates the entity is already cancelled. Kept
// distinct from InvalidStateError so callers can render the two cases
// differently.
type AlreadyCancelledError struct {
	Entity string
	ID     string
}

func NewAlreadyCancelledError(entity, id string) *AlreadyCancelledError {
	return &AlreadyCancelledError{Entity: entity, ID: id}
}

func (e *AlreadyCancelledError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s", ErrAlreadyCancelled, e.Entity, e.ID))
}

func (e *AlreadyCancelledError) Unwrap() error {
	return ErrAlreadyCancelled
}

// AlreadyExistsError reports an idempotent no-op: the requested entity was
// already created by an earlier identical request. Handlers treat it as
// success and return the existing entity.
type AlreadyExistsError struct {
	Entity string
	ID     string
}

func NewAlreadyExistsError(entity, id string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, ID: id}
}

func (e *AlreadyExistsError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s", ErrAlreadyExists, e.Entity, e.ID))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// PaymentFailedError indicates the payment collaborator declined a charge or
// refund. It is deliberately distinct from validation failures: the input
// was fine, the money was not.
type PaymentFailedError struct {
	Operation string
	Amount    float64
	Cause     error
}

func NewPaymentFailedError(operation string, amount float64, cause error) *PaymentFailedError {
	return &PaymentFailedError{Operation: operation, Amount: amount, Cause: cause}
}

func (e *PaymentFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s of %.2f (cause: %s)",
			ErrPaymentFailed, e.Operation, e.Amount, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s of %.2f", ErrPaymentFailed, e.Operation, e.Amount))
}

func (e *PaymentFailedError) Unwrap() error {
	return ErrPaymentFailed
}
