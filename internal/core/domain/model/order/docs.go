// Package order contains the Order aggregate: a scheduled movement of an
// equipment bundle and a driver from a departure yard to an arrival yard.
//
// An order carries two independent status axes. Outcome classifies the
// order's fate (Pending until intake validation, Completed once accepted,
// Failed terminally on any processing error). MovePhase tracks physical
// progress (Pending, Departured once the bundle left the departure yard,
// Arrived once it reached the arrival yard). The background monitor is the
// only writer of either axis after intake.
package order
