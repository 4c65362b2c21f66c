// Package mover contains the Mover aggregate: a worker who accepts pickup
// and return jobs, earns credit per completed job, and declares a weekly
// availability schedule the route planner filters against.
package mover
