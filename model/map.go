package model

import "fmt"

// MapID identifies a map uniquely within the catalog.
type MapID string

// Map is an immutable geometric description of one map: its roads,
// buildings, offices, and an optional per-map dog speed override.
// Once AddMap returns, a Map's fields are never mutated again —
// callers only ever see it through read accessors.
type Map struct {
	id        MapID
	name      string
	roads     []Road
	buildings []Building
	offices   []Office

	officeIndex map[OfficeID]int

	dogSpeed    float64
	hasDogSpeed bool
}

// NewMap creates an empty map. Roads, buildings, and offices are added
// with AddRoad/AddBuilding/AddOffice before the map is registered with
// a catalog; after that it is treated as read-only.
func NewMap(id MapID, name string) *Map {
	return &Map{
		id:          id,
		name:        name,
		officeIndex: make(map[OfficeID]int),
	}
}

func (m *Map) ID() MapID    { return m.id }
func (m *Map) Name() string { return m.name }

func (m *Map) Roads() []Road         { return m.roads }
func (m *Map) Buildings() []Building { return m.buildings }
func (m *Map) Offices() []Office     { return m.offices }

// DogSpeed returns the map's speed override and whether one was set.
func (m *Map) DogSpeed() (float64, bool) { return m.dogSpeed, m.hasDogSpeed }

// SetDogSpeed overrides the catalog's default movement speed for dogs
// on this map.
func (m *Map) SetDogSpeed(speed float64) {
	m.dogSpeed = speed
	m.hasDogSpeed = true
}

func (m *Map) AddRoad(r Road) { m.roads = append(m.roads, r) }

func (m *Map) AddBuilding(b Building) { m.buildings = append(m.buildings, b) }

// AddOffice registers an office, failing with ErrDuplicateOffice if
// its id already exists on this map. On failure the office list is
// left unchanged.
func (m *Map) AddOffice(o Office) error {
	if _, exists := m.officeIndex[o.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOffice, o.ID())
	}
	m.officeIndex[o.ID()] = len(m.offices)
	m.offices = append(m.offices, o)
	return nil
}
