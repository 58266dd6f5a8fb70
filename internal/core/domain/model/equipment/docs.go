// Package equipment models the physical transport equipment moved between
// yards: trucks, chassis, containers, and trailers.
//
// The package provides three concepts:
//
//   - Kind, the equipment category. Each category maps to one site type
//     inside a yard and carries a default site capacity.
//   - Ref, a tagged reference (kind + serial number) used by orders and the
//     movement ledger instead of four separate nullable foreign keys. A
//     Bundle groups the refs attached to one order and enforces the
//     combination rules (a chassis needs a truck, a container needs a
//     chassis, a trailer excludes a chassis).
//   - Equipment, the master-data entity whose site assignment and active
//     flag are flipped as a side effect of relocation. All other equipment
//     fields are owned by the external catalog.
package equipment
