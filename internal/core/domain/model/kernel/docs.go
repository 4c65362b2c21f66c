// Package kernel contains the shared value objects of the moveout domain:
// identifiers, city-grid locations, and time-of-day windows.
//
// Everything in this package is immutable after construction and safe for
// concurrent use. Zero values are invalid; instances must be created through
// the provided constructors, which is enforced by constructor guards.
package kernel
