// Package services provides domain services that span multiple aggregates.
//
// RoutePlanner is the main one: a pure computation that turns the current
// snapshot of available jobs into a suggested route for one mover. It never
// mutates job or order state; the jobs it suggests stay up for grabs until
// the mover explicitly accepts them.
package services
