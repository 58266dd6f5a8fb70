// Package inventory models yard inventory: the authoritative record of
// which equipment unit is physically present at which yard, and at which
// numbered position within the yard's site for its kind.
//
// A slot row existing means the unit is present and available. Departure
// deletes the slot; arrival creates a fresh one with a position handed out
// by NextFreePosition. This delete-on-relocate model keeps the position
// uniqueness invariant trivially true: the available positions at a
// (yard, kind) pair are exactly the positions of its slot rows.
package inventory
