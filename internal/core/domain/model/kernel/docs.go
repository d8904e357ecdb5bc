// Package kernel contains shared value objects used across domain aggregates.
// These types carry their own validation so that entities built from them can
// rely on their invariants.
package kernel
