// Command simulate runs the economy headless for a number of in-game days
// and prints a balance report. Useful for tuning production, logistics and
// pricing constants without a browser attached.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jakovjj/tycooner/internal/challenge"
	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/econ"
	"github.com/jakovjj/tycooner/internal/game"
	"github.com/jakovjj/tycooner/internal/geo"
	"github.com/jakovjj/tycooner/internal/sim"
	"github.com/jakovjj/tycooner/internal/state"
)

func main() {
	days := flag.Int("days", 50, "number of in-game days to simulate")
	seed := flag.Int64("seed", 1, "random seed for challenge selection")
	difficulty := flag.String("difficulty", "default", "balance preset: default, casual, hard")
	country := flag.String("country", "DE", "starting country")
	asJSON := flag.Bool("json", false, "emit the final report as JSON")
	flag.Parse()

	bal := balanceFor(*difficulty)

	features, err := geo.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load map:", err)
		os.Exit(1)
	}
	countries := econ.BuildCountries(features, econ.CountryProperties(), bal)
	store := state.NewStore(state.NewGame(countries, econ.Goods(), bal))

	actions := &game.Actions{
		Store:      store,
		Balance:    bal,
		Challenges: challenge.New(rand.New(rand.NewSource(*seed)), 5*time.Minute),
		Clock:      sim.RealClock{},
	}

	if err := seedEconomy(actions, *country); err != nil {
		fmt.Fprintln(os.Stderr, "seed economy:", err)
		os.Exit(1)
	}

	engine := sim.Engine{Balance: bal}
	totals := sim.Report{}
	for i := 0; i < *days; i++ {
		var rep sim.Report
		store.Update(func(s state.GameState) state.GameState {
			next, r := engine.Tick(s)
			rep = r
			return next
		})
		totals.UnitsProduced += rep.UnitsProduced
		totals.UnitsMoved += rep.UnitsMoved
		totals.LogisticsCost += rep.LogisticsCost
		totals.Day = rep.Day
	}

	final := store.Get()
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{
			"days":           totals.Day,
			"money":          final.Money,
			"units_produced": totals.UnitsProduced,
			"units_moved":    totals.UnitsMoved,
			"logistics_cost": totals.LogisticsCost,
			"warehouse":      final.Warehouses[*country],
		})
		return
	}

	fmt.Printf("simulated %d days in %s (%s preset)\n", totals.Day, *country, *difficulty)
	fmt.Printf("  money:          %.2f\n", final.Money)
	fmt.Printf("  units produced: %d\n", totals.UnitsProduced)
	fmt.Printf("  units moved:    %d\n", totals.UnitsMoved)
	fmt.Printf("  logistics cost: %.2f\n", totals.LogisticsCost)
	w := final.Warehouses[*country]
	fmt.Printf("  warehouse:      %d/%d stored\n", w.TotalStored(), w.Capacity)
	for good, amt := range w.Storage {
		fmt.Printf("    %-14s %d\n", good, amt)
	}
}

func seedEconomy(actions *game.Actions, country string) error {
	if _, err := actions.UnlockCountry(country, false); err != nil {
		return err
	}
	if _, err := actions.BuildWarehouse(country); err != nil {
		return err
	}
	for _, t := range state.FacilityTypes() {
		if _, err := actions.BuildFacility(country, t); err != nil {
			return err
		}
	}
	return nil
}

func balanceFor(preset string) config.Balance {
	switch preset {
	case "casual":
		return config.Casual()
	case "hard":
		return config.Hard()
	default:
		return config.Default()
	}
}
