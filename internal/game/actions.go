// Package game is the transaction layer: every player-initiated mutation of
// the shared snapshot goes through Actions, which validates affordability,
// capacity and adjacency before publishing anything.
package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/jakovjj/tycooner/internal/challenge"
	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/econ"
	"github.com/jakovjj/tycooner/internal/sim"
	"github.com/jakovjj/tycooner/internal/state"
)

// Actions mutates game state through the store. All validations run before
// any mutation; a rejected action returns the unchanged snapshot and a
// taxonomy error from errors.go.
type Actions struct {
	Store      *state.Store
	Balance    config.Balance
	Challenges *challenge.Controller
	Clock      sim.Clock
}

// BuildWarehouse creates the country's warehouse at level 1. A second call
// for the same country is a silent no-op.
func (a *Actions) BuildWarehouse(countryID string) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		if err := requireUnlocked(s, countryID); err != nil {
			return err
		}
		if _, exists := s.Warehouses[countryID]; exists {
			return nil
		}
		if s.Money < a.Balance.WarehouseBuildCost {
			return fmt.Errorf("%w: warehouse costs %.0f, have %.0f", ErrInsufficientFunds, a.Balance.WarehouseBuildCost, s.Money)
		}
		s.Money -= a.Balance.WarehouseBuildCost
		s.Warehouses[countryID] = state.Warehouse{
			CountryID: countryID,
			Level:     1,
			Capacity:  a.Balance.WarehouseBaseCapacity,
			Storage:   map[string]int{},
		}
		return nil
	})
}

// UpgradeWarehouse raises the level by one and the capacity by the fixed
// increment. Cost scales with the current level.
func (a *Actions) UpgradeWarehouse(countryID string) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		w, ok := s.Warehouses[countryID]
		if !ok {
			return fmt.Errorf("%w: no warehouse in %s", ErrPrecondition, countryID)
		}
		cost := a.Balance.WarehouseUpgradeBaseCost * float64(w.Level)
		if s.Money < cost {
			return fmt.Errorf("%w: upgrade costs %.0f, have %.0f", ErrInsufficientFunds, cost, s.Money)
		}
		s.Money -= cost
		w.Level++
		w.Capacity += a.Balance.WarehouseCapacityIncrease
		s.Warehouses[countryID] = w
		return nil
	})
}

// BuildFacility appends one production building instance, gated by the
// population-derived per-type limit.
func (a *Actions) BuildFacility(countryID string, t state.FacilityType) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		spec, ok := state.Spec(t)
		if !ok {
			return fmt.Errorf("%w: unknown facility type %q", ErrPrecondition, t)
		}
		country, ok := s.Countries[countryID]
		if !ok {
			return fmt.Errorf("%w: unknown country %s", ErrPrecondition, countryID)
		}
		if err := requireUnlocked(s, countryID); err != nil {
			return err
		}
		if _, ok := s.Warehouses[countryID]; !ok {
			return fmt.Errorf("%w: build a warehouse in %s first", ErrPrecondition, countryID)
		}
		cp, ok := s.Production[countryID]
		if !ok {
			cp = state.NewCountryProduction(countryID)
		}
		if limit := state.FacilityLimit(country.Population, t); cp.Count(t) >= limit {
			return fmt.Errorf("%w: %s limit of %d reached in %s", ErrCapacity, t, limit, countryID)
		}
		cost := state.BuildCost(country, t)
		if s.Money < cost {
			return fmt.Errorf("%w: %s costs %.0f, have %.0f", ErrInsufficientFunds, t, cost, s.Money)
		}
		s.Money -= cost
		cp.Buildings[t] = append(cp.Buildings[t], state.Facility{Type: t, OutputPerDay: spec.OutputPerDay})
		s.Production[countryID] = cp
		return nil
	})
}

// DestroyFacility removes the most-recently-built instance of the type. No
// refund is paid.
func (a *Actions) DestroyFacility(countryID string, t state.FacilityType) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		cp, ok := s.Production[countryID]
		if !ok || cp.Count(t) == 0 {
			return fmt.Errorf("%w: no %s to destroy in %s", ErrPrecondition, t, countryID)
		}
		list := cp.Buildings[t]
		cp.Buildings[t] = list[:len(list)-1]
		s.Production[countryID] = cp
		return nil
	})
}

// BuildFactory creates a legacy leveled factory producing one chosen good.
func (a *Actions) BuildFactory(countryID, goodID string) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		if err := requireUnlocked(s, countryID); err != nil {
			return err
		}
		if _, ok := s.Goods[goodID]; !ok {
			return fmt.Errorf("%w: unknown good %s", ErrPrecondition, goodID)
		}
		if _, ok := s.Warehouses[countryID]; !ok {
			return fmt.Errorf("%w: build a warehouse in %s first", ErrPrecondition, countryID)
		}
		if s.Money < a.Balance.FactoryBuildCost {
			return fmt.Errorf("%w: factory costs %.0f, have %.0f", ErrInsufficientFunds, a.Balance.FactoryBuildCost, s.Money)
		}
		s.Money -= a.Balance.FactoryBuildCost
		f := state.Factory{
			ID:           uuid.NewString(),
			CountryID:    countryID,
			GoodID:       goodID,
			Level:        1,
			OutputPerDay: a.Balance.FactoryBaseOutput,
		}
		s.Factories[f.ID] = f
		return nil
	})
}

// UpgradeFactory raises a legacy factory's level and daily output. Cost
// scales with the current level.
func (a *Actions) UpgradeFactory(factoryID string) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		f, ok := s.Factories[factoryID]
		if !ok {
			return fmt.Errorf("%w: unknown factory %s", ErrPrecondition, factoryID)
		}
		cost := a.Balance.FactoryUpgradeBaseCost * float64(f.Level)
		if s.Money < cost {
			return fmt.Errorf("%w: upgrade costs %.0f, have %.0f", ErrInsufficientFunds, cost, s.Money)
		}
		s.Money -= cost
		f.Level++
		f.OutputPerDay += a.Balance.FactoryOutputIncrease
		s.Factories[factoryID] = f
		return nil
	})
}

// BuildRoad connects two unlocked neighboring countries. A road pair exists
// at most once, checked in both directions.
func (a *Actions) BuildRoad(from, to string) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		src, ok := s.Countries[from]
		if !ok {
			return fmt.Errorf("%w: unknown country %s", ErrPrecondition, from)
		}
		dst, ok := s.Countries[to]
		if !ok {
			return fmt.Errorf("%w: unknown country %s", ErrPrecondition, to)
		}
		if err := requireUnlocked(s, from); err != nil {
			return err
		}
		if err := requireUnlocked(s, to); err != nil {
			return err
		}
		if !hasNeighbor(src, to) {
			return fmt.Errorf("%w: %s and %s are not neighbors", ErrPrecondition, from, to)
		}
		if _, exists := s.FindRoad(from, to); exists {
			return fmt.Errorf("%w: road between %s and %s already exists", ErrPrecondition, from, to)
		}
		if s.Money < a.Balance.RoadBuildCost {
			return fmt.Errorf("%w: road costs %.0f, have %.0f", ErrInsufficientFunds, a.Balance.RoadBuildCost, s.Money)
		}
		s.Money -= a.Balance.RoadBuildCost
		id := state.RoadID(from, to)
		s.Roads[id] = state.Road{
			ID:            id,
			FromCountryID: from,
			ToCountryID:   to,
			Distance:      centroidDistance(src, dst),
			Level:         1,
		}
		return nil
	})
}

// CreateTruckLine assigns trucks to one good along an existing road. The
// line moves goods every tick until its truck count is set to zero.
func (a *Actions) CreateTruckLine(from, to, goodID string, trucks int) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		if trucks <= 0 {
			return fmt.Errorf("%w: truck count must be positive", ErrPrecondition)
		}
		if _, ok := s.Goods[goodID]; !ok {
			return fmt.Errorf("%w: unknown good %s", ErrPrecondition, goodID)
		}
		road, ok := s.FindRoad(from, to)
		if !ok {
			return fmt.Errorf("%w: no road between %s and %s", ErrPrecondition, from, to)
		}
		if _, ok := s.Warehouses[from]; !ok {
			return fmt.Errorf("%w: no warehouse in %s", ErrPrecondition, from)
		}
		if _, ok := s.Warehouses[to]; !ok {
			return fmt.Errorf("%w: no warehouse in %s", ErrPrecondition, to)
		}
		line := state.TruckLine{
			ID:               uuid.NewString(),
			RoadID:           road.ID,
			FromCountryID:    from,
			ToCountryID:      to,
			GoodID:           goodID,
			TrucksAssigned:   trucks,
			CapacityPerTruck: a.Balance.TruckCapacity,
		}
		s.TruckLines[line.ID] = line
		return nil
	})
}

// UpdateTruckLine changes the truck count of a line; zero removes the line.
func (a *Actions) UpdateTruckLine(lineID string, trucks int) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		line, ok := s.TruckLines[lineID]
		if !ok {
			return fmt.Errorf("%w: unknown truck line %s", ErrPrecondition, lineID)
		}
		if trucks < 0 {
			return fmt.Errorf("%w: truck count must not be negative", ErrPrecondition)
		}
		if trucks == 0 {
			delete(s.TruckLines, lineID)
			return nil
		}
		line.TrucksAssigned = trucks
		s.TruckLines[lineID] = line
		return nil
	})
}

// TransferGoods moves goods instantly and for free between two warehouses
// connected by a road. The moved amount clamps to the destination's free
// space.
func (a *Actions) TransferGoods(from, to, goodID string, amount int) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		if amount <= 0 {
			return fmt.Errorf("%w: transfer amount must be positive", ErrPrecondition)
		}
		src, ok := s.Warehouses[from]
		if !ok {
			return fmt.Errorf("%w: no warehouse in %s", ErrPrecondition, from)
		}
		dst, ok := s.Warehouses[to]
		if !ok {
			return fmt.Errorf("%w: no warehouse in %s", ErrPrecondition, to)
		}
		if _, ok := s.FindRoad(from, to); !ok {
			return fmt.Errorf("%w: no road between %s and %s", ErrPrecondition, from, to)
		}
		if src.Storage[goodID] < amount {
			return fmt.Errorf("%w: only %d %s in %s", ErrPrecondition, src.Storage[goodID], goodID, from)
		}
		moved := amount
		if free := dst.FreeSpace(); moved > free {
			moved = free
		}
		if moved == 0 {
			return fmt.Errorf("%w: warehouse in %s is full", ErrCapacity, to)
		}
		src.Remove(goodID, moved)
		dst.Add(goodID, moved)
		s.Warehouses[from] = src
		s.Warehouses[to] = dst
		return nil
	})
}

// SellGood sells the country's full stock of one good at the current market
// price.
func (a *Actions) SellGood(countryID, goodID string) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		w, ok := s.Warehouses[countryID]
		if !ok {
			return fmt.Errorf("%w: no warehouse in %s", ErrPrecondition, countryID)
		}
		stock := w.Storage[goodID]
		if stock <= 0 {
			return fmt.Errorf("%w: no %s to sell in %s", ErrPrecondition, goodID, countryID)
		}
		market, ok := s.Markets[econ.MarketKey(countryID, goodID)]
		if !ok {
			return fmt.Errorf("%w: no market for %s in %s", ErrPrecondition, goodID, countryID)
		}
		w.Remove(goodID, stock)
		s.Warehouses[countryID] = w
		s.Money += float64(stock) * market.CurrentPrice
		return nil
	})
}

// UnlockCountry adds a country to the player's territory. The very first
// unlock and explicitly free unlocks cost nothing; later ones cost
// round(base * growth^unlockedCount) and require owning at least one
// production facility somewhere. Completing the active challenge target, or
// the first unlock itself, advances the challenge.
func (a *Actions) UnlockCountry(countryID string, free bool) (state.GameState, error) {
	return a.Store.Transact(func(s *state.GameState) error {
		if _, ok := s.Countries[countryID]; !ok {
			return fmt.Errorf("%w: unknown country %s", ErrPrecondition, countryID)
		}
		if s.IsUnlocked(countryID) {
			return fmt.Errorf("%w: %s is already unlocked", ErrPrecondition, countryID)
		}
		first := len(s.UnlockedCountries) == 0
		if !first && s.TotalFacilities() == 0 {
			return ErrFacilityWarning
		}
		cost := 0.0
		if !first && !free {
			cost = math.Round(a.Balance.UnlockBaseCost * math.Pow(a.Balance.UnlockCostGrowth, float64(len(s.UnlockedCountries))))
		}
		if s.Money < cost {
			return fmt.Errorf("%w: unlocking %s costs %.0f, have %.0f", ErrInsufficientFunds, countryID, cost, s.Money)
		}
		s.Money -= cost
		s.UnlockedCountries = append(s.UnlockedCountries, countryID)

		if first || countryID == s.ChallengeTargetCountryID {
			*s = a.Challenges.Next(*s, a.Clock.Now())
		}
		return nil
	})
}

// Restart replaces the whole snapshot with a fresh initial game. Countries
// and goods are static and carried over.
func (a *Actions) Restart() state.GameState {
	return a.Store.Update(func(s state.GameState) state.GameState {
		return state.NewGame(s.Countries, s.Goods, a.Balance)
	})
}

func requireUnlocked(s *state.GameState, countryID string) error {
	if !s.IsUnlocked(countryID) {
		return fmt.Errorf("%w: %s is not unlocked", ErrPrecondition, countryID)
	}
	return nil
}

func hasNeighbor(c econ.Country, id string) bool {
	for _, n := range c.Neighbors {
		if n == id {
			return true
		}
	}
	return false
}

func centroidDistance(a, b econ.Country) float64 {
	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y
	return math.Sqrt(dx*dx + dy*dy)
}
