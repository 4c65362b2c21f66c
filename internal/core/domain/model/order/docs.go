// Package order contains the Order aggregate, the customer-facing side of a
// storage booking.
//
// An order owns at most two jobs over its life: a storage job created at
// checkout and, later, at most one live return job. The order's status is a
// projection of those jobs' statuses; the only transition a client applies
// directly is the student's cancellation of a still-Pending order. Command
// handlers are the single writer of that projection.
package order
