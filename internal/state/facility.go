package state

import "github.com/jakovjj/tycooner/internal/econ"

// FacilityType is the closed set of production building types. Each type is
// tied to exactly one good.
type FacilityType string

const (
	FacilityFarm    FacilityType = "farm"
	FacilityFactory FacilityType = "factory"
	FacilityRanch   FacilityType = "ranch"
)

// FacilityTypes lists the types in the fixed production order used by the
// simulation tick.
func FacilityTypes() []FacilityType {
	return []FacilityType{FacilityFarm, FacilityFactory, FacilityRanch}
}

// FacilitySpec holds the per-type constants of a facility type.
type FacilitySpec struct {
	Type FacilityType
	// GoodID is the single good this facility type produces.
	GoodID string
	// OutputPerDay is the fixed daily output of one instance.
	OutputPerDay int
	// PopulationDivisor caps instances per country at
	// floor(population/divisor), never below 1.
	PopulationDivisor int
}

var facilitySpecs = map[FacilityType]FacilitySpec{
	FacilityFarm:    {Type: FacilityFarm, GoodID: econ.GoodGrain, OutputPerDay: 1, PopulationDivisor: 12_000_000},
	FacilityFactory: {Type: FacilityFactory, GoodID: econ.GoodClothing, OutputPerDay: 1, PopulationDivisor: 20_000_000},
	FacilityRanch:   {Type: FacilityRanch, GoodID: econ.GoodMeat, OutputPerDay: 1, PopulationDivisor: 15_000_000},
}

// Spec returns the constants for a facility type.
func Spec(t FacilityType) (FacilitySpec, bool) {
	s, ok := facilitySpecs[t]
	return s, ok
}

// FacilityLimit is the population-derived instance cap for one type in one
// country.
func FacilityLimit(population int, t FacilityType) int {
	spec, ok := facilitySpecs[t]
	if !ok {
		return 0
	}
	limit := population / spec.PopulationDivisor
	if limit < 1 {
		limit = 1
	}
	return limit
}

// BuildCost looks up the per-country build cost for a facility type.
func BuildCost(c econ.Country, t FacilityType) float64 {
	switch t {
	case FacilityFarm:
		return c.Pricing.FarmBuildCost
	case FacilityFactory:
		return c.Pricing.FactoryBuildCost
	case FacilityRanch:
		return c.Pricing.RanchBuildCost
	}
	return 0
}

// Facility is one production building instance.
type Facility struct {
	Type         FacilityType `json:"type"`
	OutputPerDay int          `json:"outputPerDay"`
}

// CountryProduction is the per-country collection of facility instances,
// one ordered list per type (destroy removes the newest).
type CountryProduction struct {
	CountryID string                      `json:"countryId"`
	Buildings map[FacilityType][]Facility `json:"buildings"`
}

func NewCountryProduction(countryID string) CountryProduction {
	return CountryProduction{
		CountryID: countryID,
		Buildings: map[FacilityType][]Facility{
			FacilityFarm:    {},
			FacilityFactory: {},
			FacilityRanch:   {},
		},
	}
}

// Count returns the number of instances of one type.
func (cp CountryProduction) Count(t FacilityType) int {
	return len(cp.Buildings[t])
}

// Total returns the number of instances across all types.
func (cp CountryProduction) Total() int {
	n := 0
	for _, list := range cp.Buildings {
		n += len(list)
	}
	return n
}
