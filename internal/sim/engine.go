package sim

import (
	"sort"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/state"
)

// Engine advances the economy by one in-game day per Tick. It is pure
// computation: it never fails, all quantities clamp to valid ranges.
type Engine struct {
	Balance config.Balance
}

// Report summarizes what one tick did.
type Report struct {
	Day             int     `json:"day"`
	UnitsProduced   int     `json:"units_produced"`
	UnitsMoved      int     `json:"units_moved"`
	LogisticsCost   float64 `json:"logistics_cost"`
	MarketsRepriced int     `json:"markets_repriced"`
}

// Tick runs one day: production, then truck logistics, then market
// repricing. Goods produced this tick are eligible for transport and sale
// the same tick.
func (e Engine) Tick(s state.GameState) (state.GameState, Report) {
	next := s.Clone()
	next.CurrentDay++

	rep := Report{Day: next.CurrentDay}
	rep.UnitsProduced = e.produce(&next)
	rep.UnitsMoved, rep.LogisticsCost = e.moveTrucks(&next)
	rep.MarketsRepriced = e.repriceMarkets(&next)
	return next, rep
}

// produce fills warehouses from legacy factories first, then the three
// production building types in fixed order. A full warehouse short-circuits
// the whole country for this tick; otherwise remaining capacity is
// recomputed after every instance.
func (e Engine) produce(s *state.GameState) int {
	produced := 0

	for _, id := range sortedKeys(s.Factories) {
		f := s.Factories[id]
		w, ok := s.Warehouses[f.CountryID]
		if !ok {
			continue
		}
		if w.TotalStored() >= w.Capacity {
			continue
		}
		produced += w.Add(f.GoodID, f.OutputPerDay)
		s.Warehouses[f.CountryID] = w
	}

	for _, countryID := range sortedKeys(s.Production) {
		cp := s.Production[countryID]
		w, ok := s.Warehouses[countryID]
		if !ok {
			continue
		}
		if w.TotalStored() >= w.Capacity {
			continue
		}
		for _, t := range state.FacilityTypes() {
			spec, ok := state.Spec(t)
			if !ok {
				continue
			}
			for range cp.Buildings[t] {
				if w.FreeSpace() == 0 {
					break
				}
				produced += w.Add(spec.GoodID, spec.OutputPerDay)
			}
		}
		s.Warehouses[countryID] = w
	}

	return produced
}

// moveTrucks runs every truck line: move min(daily capacity, available,
// free space) and accrue the road cost. The total cost is charged once,
// after all movements.
func (e Engine) moveTrucks(s *state.GameState) (int, float64) {
	moved := 0
	totalCost := 0.0

	for _, id := range sortedKeys(s.TruckLines) {
		line := s.TruckLines[id]

		from, okFrom := s.Warehouses[line.FromCountryID]
		to, okTo := s.Warehouses[line.ToCountryID]
		if !okFrom || !okTo {
			continue
		}

		road, ok := s.Roads[line.RoadID]
		if !ok {
			continue
		}

		dailyCapacity := line.TrucksAssigned * line.CapacityPerTruck
		toMove := min(dailyCapacity, from.Storage[line.GoodID])
		toMove = min(toMove, to.FreeSpace())
		if toMove <= 0 {
			continue
		}

		from.Remove(line.GoodID, toMove)
		to.Add(line.GoodID, toMove)
		s.Warehouses[line.FromCountryID] = from
		s.Warehouses[line.ToCountryID] = to

		moved += toMove
		totalCost += float64(toMove) * (road.Distance / 100) * e.Balance.LogisticsCostPer100
	}

	s.Money -= totalCost
	return moved, totalCost
}

// repriceMarkets mirrors warehouse stock into each market's supply and
// recomputes the current price. It never touches stock or money.
func (e Engine) repriceMarkets(s *state.GameState) int {
	repriced := 0
	for key, m := range s.Markets {
		supply := 0
		if w, ok := s.Warehouses[m.CountryID]; ok {
			supply = w.Storage[m.GoodID]
		}
		m.Reprice(supply)
		s.Markets[key] = m
		repriced++
	}
	return repriced
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
