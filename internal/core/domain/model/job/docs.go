// Package job contains the Job aggregate: a single pickup-or-delivery task
// tied to one phase of a storage order.
//
// A job moves along a fixed lifecycle graph:
//
//	Available ──> Accepted ──> AwaitingStudentConfirmation ──> PickedUp ──> Completed
//	     │            │                     │                     │
//	     └────────────┴─────────────────────┴─────────────────────┴──> Cancelled
//
// The step from AwaitingStudentConfirmation forward is a two-party
// handshake: the mover signals arrival, the student confirms. Neither party
// alone can move a job past the awaiting state, which prevents a mover from
// self-reporting a completed pickup. For return jobs the student's
// confirmation is the final delivery confirmation, so it completes the job
// directly.
//
// The Available -> Accepted step is special: it is raced by concurrent
// movers, and the authoritative write is the conditional update in the job
// repository. The aggregate's Accept method expresses the same rule for the
// in-memory path and for tests.
package job
