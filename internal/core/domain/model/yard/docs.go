// Package yard models the physical locations equipment moves between. A
// Yard contains one Site per equipment kind; each site bounds how many
// units of that kind the yard can hold concurrently.
//
// Yards and sites are created and maintained by the external master-data
// screens; the movement engine only reads them, so the entities here expose
// no mutating operations.
package yard
