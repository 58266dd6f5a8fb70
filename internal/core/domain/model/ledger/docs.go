// Package ledger contains the Entry entity, an append-only record of every
// equipment movement performed on behalf of an order.
//
// Entries double as the idempotency mechanism of the order monitor: before
// performing a movement leg the monitor checks whether an entry for the same
// order and move phase already exists, and skips the leg when it does. This
// makes a crashed or re-run monitor tick safe to repeat.
package ledger
