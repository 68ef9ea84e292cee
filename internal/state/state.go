package state

import (
	"time"

	"github.com/jakovjj/tycooner/internal/econ"
)

// Warehouse is bounded per-country storage for all goods. Total stored
// quantity must never exceed capacity; every producer and mover clamps
// against FreeSpace.
type Warehouse struct {
	CountryID string         `json:"countryId"`
	Level     int            `json:"level"`
	Capacity  int            `json:"capacity"`
	Storage   map[string]int `json:"storage"` // goodId -> amount
}

// TotalStored sums the stored quantity across all goods.
func (w Warehouse) TotalStored() int {
	total := 0
	for _, amt := range w.Storage {
		total += amt
	}
	return total
}

// FreeSpace is the remaining capacity, never negative.
func (w Warehouse) FreeSpace() int {
	free := w.Capacity - w.TotalStored()
	if free < 0 {
		return 0
	}
	return free
}

// Add stores up to amount units of a good, clamped to free space, and
// returns how many were actually stored.
func (w *Warehouse) Add(goodID string, amount int) int {
	if amount <= 0 {
		return 0
	}
	free := w.FreeSpace()
	if amount > free {
		amount = free
	}
	if amount > 0 {
		w.Storage[goodID] += amount
	}
	return amount
}

// Remove takes up to amount units of a good out of storage and returns how
// many were actually removed.
func (w *Warehouse) Remove(goodID string, amount int) int {
	if amount <= 0 {
		return 0
	}
	have := w.Storage[goodID]
	if amount > have {
		amount = have
	}
	w.Storage[goodID] = have - amount
	return amount
}

// Factory is a legacy single-good leveled production building.
type Factory struct {
	ID           string `json:"id"`
	CountryID    string `json:"countryId"`
	GoodID       string `json:"goodId"`
	Level        int    `json:"level"`
	OutputPerDay int    `json:"outputPerDay"`
}

// Road connects two neighboring countries. Created once per unordered pair,
// never destroyed.
type Road struct {
	ID            string  `json:"id"`
	FromCountryID string  `json:"fromCountryId"`
	ToCountryID   string  `json:"toCountryId"`
	Distance      float64 `json:"distance"`
	Level         int     `json:"level"`
}

// RoadID is the deterministic id for a road in build direction.
func RoadID(from, to string) string {
	return "road-" + from + "-" + to
}

// TruckLine assigns transport units to one good along a road; daily
// throughput = TrucksAssigned * CapacityPerTruck.
type TruckLine struct {
	ID               string `json:"id"`
	RoadID           string `json:"roadId"`
	FromCountryID    string `json:"fromCountryId"`
	ToCountryID      string `json:"toCountryId"`
	GoodID           string `json:"goodId"`
	TrucksAssigned   int    `json:"trucksAssigned"`
	CapacityPerTruck int    `json:"capacityPerTruck"`
}

// GameState is the full game snapshot. Subsystems never mutate a shared
// instance: they clone, transform the clone and publish it through the Store.
type GameState struct {
	Money             float64  `json:"money"`
	CurrentDay        int      `json:"currentDay"`
	UnlockedCountries []string `json:"unlockedCountries"`

	ChallengeTargetCountryID string     `json:"challengeTargetCountryId,omitempty"`
	ChallengeDeadline        *time.Time `json:"challengeDeadline,omitempty"`
	GameOver                 bool       `json:"gameOver"`

	Countries map[string]econ.Country `json:"countries"`
	Goods     map[string]econ.Good    `json:"goods"`
	Markets   map[string]econ.Market  `json:"markets"` // key: countryId-goodId

	Warehouses map[string]Warehouse         `json:"warehouses"` // key: countryId
	Production map[string]CountryProduction `json:"production"` // key: countryId
	Factories  map[string]Factory           `json:"factories"`  // key: factoryId
	Roads      map[string]Road              `json:"roads"`      // key: roadId
	TruckLines map[string]TruckLine         `json:"truckLines"` // key: truckLineId

	TickSpeedMs int `json:"tickSpeedMs"`
}

// IsUnlocked reports membership in the unlocked set.
func (s GameState) IsUnlocked(countryID string) bool {
	for _, id := range s.UnlockedCountries {
		if id == countryID {
			return true
		}
	}
	return false
}

// FindRoad looks up a road between two countries in either direction.
func (s GameState) FindRoad(a, b string) (Road, bool) {
	for _, r := range s.Roads {
		if (r.FromCountryID == a && r.ToCountryID == b) ||
			(r.FromCountryID == b && r.ToCountryID == a) {
			return r, true
		}
	}
	return Road{}, false
}

// TotalFacilities counts production facility instances plus legacy factories
// across all countries.
func (s GameState) TotalFacilities() int {
	total := len(s.Factories)
	for _, cp := range s.Production {
		total += cp.Total()
	}
	return total
}

// Clone returns a deep copy. Countries and goods are static after generation
// and shared; everything the simulation or transactions mutate is copied.
func (s GameState) Clone() GameState {
	next := s

	next.UnlockedCountries = make([]string, len(s.UnlockedCountries))
	copy(next.UnlockedCountries, s.UnlockedCountries)

	if s.ChallengeDeadline != nil {
		deadline := *s.ChallengeDeadline
		next.ChallengeDeadline = &deadline
	}

	next.Markets = make(map[string]econ.Market, len(s.Markets))
	for k, m := range s.Markets {
		next.Markets[k] = m
	}

	next.Warehouses = make(map[string]Warehouse, len(s.Warehouses))
	for k, w := range s.Warehouses {
		storage := make(map[string]int, len(w.Storage))
		for g, amt := range w.Storage {
			storage[g] = amt
		}
		w.Storage = storage
		next.Warehouses[k] = w
	}

	next.Production = make(map[string]CountryProduction, len(s.Production))
	for k, cp := range s.Production {
		buildings := make(map[FacilityType][]Facility, len(cp.Buildings))
		for t, list := range cp.Buildings {
			cloned := make([]Facility, len(list))
			copy(cloned, list)
			buildings[t] = cloned
		}
		cp.Buildings = buildings
		next.Production[k] = cp
	}

	next.Factories = make(map[string]Factory, len(s.Factories))
	for k, f := range s.Factories {
		next.Factories[k] = f
	}

	next.Roads = make(map[string]Road, len(s.Roads))
	for k, r := range s.Roads {
		next.Roads[k] = r
	}

	next.TruckLines = make(map[string]TruckLine, len(s.TruckLines))
	for k, tl := range s.TruckLines {
		next.TruckLines[k] = tl
	}

	return next
}
