// Package driver contains the Driver entity. Drivers are reference data
// managed outside the movement engine: the engine only reads them to decide
// whether an order without equipment can be fulfilled in the driver's
// personal vehicle.
package driver

import (
	"errors"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created
	// through a constructor.
	ErrDriverIsNotConstructed = errors.New("driver is not constructed")
)

// Driver is a yard driver who can be assigned to transportation orders.
type Driver struct {
	id                 kernel.UUID
	name               string
	hasPersonalVehicle bool

	guard guard.ConstructorGuard
}

// RestoreDriver reconstructs a driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, hasPersonalVehicle bool) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.hasPersonalVehicle = hasPersonalVehicle
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// HasPersonalVehicle reports whether the driver can fulfill an order
// without any equipment attached.
func (d *Driver) HasPersonalVehicle() bool {
	return d.hasPersonalVehicle
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
