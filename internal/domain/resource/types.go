package resource

type Category string

const (
	CategoryFacility  Category = "facility"
	CategoryEquipment Category = "equipment"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFacility, CategoryEquipment:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

// Availability is a free-form flag kept by the catalog; only "available"
// makes a resource bookable.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityMaintenance Availability = "maintenance"
)

func (a Availability) String() string {
	return string(a)
}
