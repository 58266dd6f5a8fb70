// Package services contains stateless domain services that implement
// behavior spanning several aggregates.
//
// The Relocator moves equipment between yards on behalf of an order: it
// frees the departure slot, picks the lowest free position at the arrival
// yard, and keeps the equipment's active flag and site assignment in sync.
// Persistence of the resulting state is left to the caller.
package services
