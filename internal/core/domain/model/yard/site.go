package yard

import (
	"errors"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/guard"
)

// ErrSiteIsNotConstructed is returned when a Site was not created through
// the NewSite constructor.
var ErrSiteIsNotConstructed = errors.New("Site must be created via NewSite constructor")

// Site is the area within a yard reserved for one equipment kind. Its
// capacity bounds both how many units may be present concurrently and the
// highest slot position the allocator may hand out.
type Site struct {
	// id uniquely identifies the site
	id kernel.UUID

	// yardID is the yard this site belongs to
	yardID kernel.UUID

	// kind is the single equipment category this site holds
	kind equipment.Kind

	// capacity is the maximum number of concurrent occupants
	capacity int

	guard guard.ConstructorGuard
}

// NewSite creates a site for one equipment kind within a yard. When
// capacity is zero or negative the kind's default capacity is applied,
// matching how the master-data catalog fills in missing capacities.
func NewSite(id kernel.UUID, yardID kernel.UUID, kind equipment.Kind, capacity int) (*Site, error) {
	s := &Site{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setYardID(yardID),
		s.setKind(kind),
	); err != nil {
		return nil, err
	}

	if capacity <= 0 {
		capacity = kind.DefaultSiteCapacity()
	}
	s.capacity = capacity

	return s, nil
}

// Validate ensures the site was created through the constructor.
func (s *Site) Validate() error {
	if s == nil {
		return ErrSiteIsNotConstructed
	}
	return s.guard.Validate(ErrSiteIsNotConstructed)
}

// IsEqual compares two sites by identity.
func (s *Site) IsEqual(other *Site) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the site's unique identifier.
func (s *Site) ID() kernel.UUID {
	return s.id
}

// YardID returns the yard this site belongs to.
func (s *Site) YardID() kernel.UUID {
	return s.yardID
}

// Kind returns the equipment category the site holds.
func (s *Site) Kind() equipment.Kind {
	return s.kind
}

// Capacity returns the maximum number of concurrent occupants.
func (s *Site) Capacity() int {
	return s.capacity
}

func (s *Site) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Site) setYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return err
	}
	s.yardID = yardID
	return nil
}

func (s *Site) setKind(kind equipment.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}
