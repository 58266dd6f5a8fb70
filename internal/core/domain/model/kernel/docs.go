// Package kernel contains shared value objects used across the yard
// management domain model. The kernel holds only concepts that carry no
// business rules of their own, currently the UUID identity value object.
package kernel
