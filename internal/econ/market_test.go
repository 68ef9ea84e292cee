package econ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/geo"
)

func testCountry() Country {
	return Country{
		ID:            "XX",
		Name:          "Testland",
		Population:    10_000_000,
		WageLevel:     1.5,
		ResourceBonus: map[string]float64{GoodGrain: 0.6},
	}
}

func TestProductionCost(t *testing.T) {
	c := testCountry()
	g := Goods()[GoodGrain] // base 100, labor 0.3, resource 0.7

	// labor: 0.3*1.5*100*0.3 = 13.5; resource: 0.7*0.6*100*0.4 = 16.8
	assert.InDelta(t, 30.3, ProductionCost(c, g), 1e-9)

	// No bonus entry falls back to 1.0.
	e := Goods()[GoodElectronics] // base 200, labor 0.8, resource 0.5
	// labor: 0.8*1.5*200*0.3 = 72; resource: 0.5*1.0*200*0.4 = 40
	assert.InDelta(t, 112.0, ProductionCost(c, e), 1e-9)
}

func TestMaxDailyDemand_CategoryScaling(t *testing.T) {
	c := testCountry() // 10M population -> base demand 100

	assert.Equal(t, 200, MaxDailyDemand(c, Goods()[GoodGrain]))         // food x2.0
	assert.Equal(t, 150, MaxDailyDemand(c, Goods()[GoodConsumerGoods])) // consumer x1.5
	assert.Equal(t, 100, MaxDailyDemand(c, Goods()[GoodElectronics]))   // manufactured x1.0
}

func TestReprice_Oversupply(t *testing.T) {
	m := Market{BaseSellPrice: 100, MaxDailyDemand: 100}

	// ratio 1.5 -> multiplier max(0.5, 1-0.5*0.3) = 0.85
	m.Reprice(150)
	assert.Equal(t, 150, m.CurrentSupply)
	assert.InDelta(t, 85.0, m.CurrentPrice, 1e-9)

	// Deep oversupply bottoms out at 0.5x.
	m.Reprice(100_000)
	assert.InDelta(t, 50.0, m.CurrentPrice, 1e-9)
}

func TestReprice_Shortage(t *testing.T) {
	m := Market{BaseSellPrice: 100, MaxDailyDemand: 100}

	// ratio 0.5 -> multiplier 1 + 0.5*0.5 = 1.25
	m.Reprice(50)
	assert.InDelta(t, 125.0, m.CurrentPrice, 1e-9)

	// Empty supply caps at 1.5x.
	m.Reprice(0)
	assert.InDelta(t, 150.0, m.CurrentPrice, 1e-9)

	// Balanced supply keeps the base price.
	m.Reprice(100)
	assert.InDelta(t, 100.0, m.CurrentPrice, 1e-9)
}

func TestReprice_ZeroDemandTreatedAsBalanced(t *testing.T) {
	m := Market{BaseSellPrice: 80, MaxDailyDemand: 0}
	m.Reprice(500)
	assert.InDelta(t, 80.0, m.CurrentPrice, 1e-9)
}

func TestBuildCountries_JoinsGeoAndEconomics(t *testing.T) {
	features, err := geo.Load()
	require.NoError(t, err)

	countries := BuildCountries(features, CountryProperties(), config.Default())
	require.NotEmpty(t, countries)

	de, ok := countries["DE"]
	require.True(t, ok)
	assert.Equal(t, "Germany", de.Name)
	assert.Equal(t, 83_000_000, de.Population)
	assert.NotEmpty(t, de.Neighbors)
	assert.Greater(t, de.Pricing.FarmBuildCost, 0.0)
	assert.Greater(t, de.Pricing.GrainSellPrice, 0.0)

	// Countries without economic data are skipped, all others carry both halves.
	for id, c := range countries {
		assert.Equal(t, id, c.ID)
		assert.Positive(t, c.Population)
		assert.Positive(t, c.WageLevel)
	}
}

func TestNewMarkets_OneRecordPerPair(t *testing.T) {
	features, err := geo.Load()
	require.NoError(t, err)
	countries := BuildCountries(features, CountryProperties(), config.Default())
	goods := Goods()

	markets := NewMarkets(countries, goods)
	assert.Len(t, markets, len(countries)*len(goods))

	m, ok := markets[MarketKey("FR", GoodGrain)]
	require.True(t, ok)
	assert.Equal(t, "FR", m.CountryID)
	assert.Equal(t, GoodGrain, m.GoodID)
	assert.Equal(t, 0, m.CurrentSupply)
	assert.InDelta(t, m.BaseSellPrice, m.CurrentPrice, 1e-9)
}
