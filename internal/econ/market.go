package econ

import "math"

// Market is the pricing/demand record for one (country, good) pair. One
// record per pair, created at game start, repriced every tick.
type Market struct {
	CountryID      string  `json:"countryId"`
	GoodID         string  `json:"goodId"`
	ProductionCost float64 `json:"productionCost"`
	BaseSellPrice  float64 `json:"baseSellPrice"`
	MaxDailyDemand int     `json:"maxDailyDemand"`
	CurrentSupply  int     `json:"currentSupply"`
	CurrentPrice   float64 `json:"currentPrice"`
}

// MarketKey is the map key for one (country, good) market record.
func MarketKey(countryID, goodID string) string {
	return countryID + "-" + goodID
}

// ProductionCost is what producing one unit locally costs: labor scales with
// the wage level, resources with the country's bonus for that good.
func ProductionCost(c Country, g Good) float64 {
	bonus, ok := c.ResourceBonus[g.ID]
	if !ok {
		bonus = 1.0
	}
	laborCost := g.LaborIntensity * c.WageLevel * g.BasePrice * 0.3
	resourceCost := g.ResourceIntensity * bonus * g.BasePrice * 0.4
	return laborCost + resourceCost
}

// BaseSellPrice scales the catalog price by local purchasing power.
func BaseSellPrice(c Country, g Good) float64 {
	return g.BasePrice * c.WageLevel
}

// MaxDailyDemand derives daily demand from population and good category.
func MaxDailyDemand(c Country, g Good) int {
	baseDemand := float64(c.Population) / 100_000

	multiplier := 1.0
	switch g.Category {
	case CategoryFood:
		multiplier = 2.0
	case CategoryRaw:
		multiplier = 0.5
	case CategoryManufactured:
		multiplier = 1.0
	case CategoryConsumer:
		multiplier = 1.5
	case CategoryLuxury:
		multiplier = 0.3
	}

	return int(math.Floor(baseDemand * multiplier))
}

// NewMarkets creates one market record for every (country, good) pair.
func NewMarkets(countries map[string]Country, goods map[string]Good) map[string]Market {
	markets := make(map[string]Market, len(countries)*len(goods))
	for _, c := range countries {
		for _, g := range goods {
			base := BaseSellPrice(c, g)
			markets[MarketKey(c.ID, g.ID)] = Market{
				CountryID:      c.ID,
				GoodID:         g.ID,
				ProductionCost: ProductionCost(c, g),
				BaseSellPrice:  base,
				MaxDailyDemand: MaxDailyDemand(c, g),
				CurrentSupply:  0,
				CurrentPrice:   base,
			}
		}
	}
	return markets
}

// Reprice recomputes the current price from the supply/demand ratio: up to
// +50% under shortage, down to -50% under oversupply. Never mutates stock.
func (m *Market) Reprice(supply int) {
	m.CurrentSupply = supply

	ratio := 1.0
	if m.MaxDailyDemand > 0 {
		ratio = float64(supply) / float64(m.MaxDailyDemand)
	}

	multiplier := 1.0
	if ratio < 1 {
		multiplier = 1 + (1-ratio)*0.5
	} else if ratio > 1 {
		multiplier = math.Max(0.5, 1-(ratio-1)*0.3)
	}

	m.CurrentPrice = m.BaseSellPrice * multiplier
}
