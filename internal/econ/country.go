package econ

import (
	"math"
	"sort"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/geo"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProductionPricing is the per-country price table for the three production
// facility types and the goods they emit.
type ProductionPricing struct {
	GrainSellPrice    float64 `json:"grainSellPrice"`
	ClothingSellPrice float64 `json:"clothingSellPrice"`
	MeatSellPrice     float64 `json:"meatSellPrice"`

	FarmBuildCost    float64 `json:"farmBuildCost"`
	FactoryBuildCost float64 `json:"factoryBuildCost"`
	RanchBuildCost   float64 `json:"ranchBuildCost"`
}

// Country joins map data with economic properties. Static after generation.
type Country struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Position      Position           `json:"position"`
	Neighbors     []string           `json:"neighbors"`
	Population    int                `json:"population"`
	WageLevel     float64            `json:"wageLevel"`     // multiplier, roughly 0.4 - 2.2
	ResourceBonus map[string]float64 `json:"resourceBonus"` // goodId -> multiplier, lower = cheaper
	Pricing       ProductionPricing  `json:"productionPricing"`
}

// CountryInfo is the static economic property table for one country.
type CountryInfo struct {
	Population    int
	WageLevel     float64
	ResourceBonus map[string]float64
}

// BuildCountries joins the geo dataset with the economic property table.
// Countries without economic data are skipped.
func BuildCountries(features []geo.CountryFeature, props map[string]CountryInfo, bal config.Balance) map[string]Country {
	out := make(map[string]Country, len(features))
	goods := Goods()
	for _, f := range features {
		p, ok := props[f.ID]
		if !ok {
			continue
		}
		neighbors := make([]string, len(f.Neighbors))
		copy(neighbors, f.Neighbors)
		sort.Strings(neighbors)

		c := Country{
			ID:            f.ID,
			Name:          f.Name,
			Position:      Position{X: f.Centroid[0], Y: f.Centroid[1]},
			Neighbors:     neighbors,
			Population:    p.Population,
			WageLevel:     p.WageLevel,
			ResourceBonus: p.ResourceBonus,
		}
		c.Pricing = derivePricing(c, goods, bal)
		out[f.ID] = c
	}
	return out
}

// derivePricing computes the per-country production price table: build costs
// and sell prices scale with the local wage level.
func derivePricing(c Country, goods map[string]Good, bal config.Balance) ProductionPricing {
	sell := func(goodID string) float64 {
		return math.Round(goods[goodID].BasePrice * c.WageLevel)
	}
	return ProductionPricing{
		GrainSellPrice:    sell(GoodGrain),
		ClothingSellPrice: sell(GoodClothing),
		MeatSellPrice:     sell(GoodMeat),
		FarmBuildCost:     math.Round(bal.FarmBuildCostBase * c.WageLevel),
		FactoryBuildCost:  math.Round(bal.FactoryBuildCostBase * c.WageLevel),
		RanchBuildCost:    math.Round(bal.RanchBuildCostBase * c.WageLevel),
	}
}
