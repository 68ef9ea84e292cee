package state

import (
	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/econ"
)

// NewGame builds the initial snapshot: full market grid, empty warehouses,
// production, roads and truck lines, day 0. Restart is a fresh NewGame.
func NewGame(countries map[string]econ.Country, goods map[string]econ.Good, bal config.Balance) GameState {
	return GameState{
		Money:             bal.StartingMoney,
		CurrentDay:        0,
		UnlockedCountries: []string{},
		Countries:         countries,
		Goods:             goods,
		Markets:           econ.NewMarkets(countries, goods),
		Warehouses:        map[string]Warehouse{},
		Production:        map[string]CountryProduction{},
		Factories:         map[string]Factory{},
		Roads:             map[string]Road{},
		TruckLines:        map[string]TruckLine{},
		TickSpeedMs:       2000,
	}
}
