package commands

import (
	"context"
	"errors"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
)

// Rejection reasons reported per job in an AssignmentResult.
const (
	RejectionAlreadyAssigned   = "AlreadyAssigned"
	RejectionNotFound          = "NotFound"
	RejectionInvalidTransition = "InvalidTransition"
	RejectionInternal          = "Internal"
)

// RejectedJob names a job the mover did not win and why.
type RejectedJob struct {
	JobID  kernel.UUID
	Reason string
}

// AssignmentResult reports a batch acceptance per job. Partial success is
// the expected outcome, not an error: jobs taken by a competing mover
// between suggestion and acceptance land in Rejected while the rest are
// won normally.
type AssignmentResult struct {
	Accepted []*job.Job
	Rejected []RejectedJob
}

// AcceptRouteCommandHandler claims each job of a suggested route
// independently, one transaction per job, with no cross-job rollback. A job
// lost to a competitor never blocks the remaining claims.
type AcceptRouteCommandHandler struct {
	acceptJob AcceptJobCommandHandler
}

// NewAcceptRouteCommandHandler creates a handler for batch acceptance.
func NewAcceptRouteCommandHandler(acceptJob AcceptJobCommandHandler) AcceptRouteCommandHandler {
	return AcceptRouteCommandHandler{
		acceptJob: acceptJob,
	}
}

// Handle claims every job in the command and reports the per-job outcomes.
func (h *AcceptRouteCommandHandler) Handle(ctx context.Context, cmd AcceptRouteCommand) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	result := AssignmentResult{}
	for _, jobID := range cmd.JobIDs() {
		claim, err := NewAcceptJobCommand(jobID, cmd.MoverID())
		if err != nil {
			return AssignmentResult{}, err
		}

		won, err := h.acceptJob.Handle(ctx, claim)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedJob{
				JobID:  jobID,
				Reason: rejectionReason(err),
			})
			continue
		}
		result.Accepted = append(result.Accepted, won)
	}

	return result, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrAlreadyAssigned):
		return RejectionAlreadyAssigned
	case errors.Is(err, errs.ErrObjectNotFound):
		return RejectionNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return RejectionInvalidTransition
	default:
		return RejectionInternal
	}
}
