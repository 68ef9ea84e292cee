package econ

// GoodCategory is the closed set of good categories; demand scaling is keyed
// off it.
type GoodCategory string

const (
	CategoryFood         GoodCategory = "food"
	CategoryRaw          GoodCategory = "raw"
	CategoryManufactured GoodCategory = "manufactured"
	CategoryConsumer     GoodCategory = "consumer"
	CategoryLuxury       GoodCategory = "luxury"
)

// Good is an immutable catalog entry, created at startup and never mutated.
type Good struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Category          GoodCategory `json:"category"`
	BasePrice         float64      `json:"basePrice"`
	LaborIntensity    float64      `json:"laborIntensity"`    // 0-1
	ResourceIntensity float64      `json:"resourceIntensity"` // 0-1
}

// Good ids referenced by facility production.
const (
	GoodGrain         = "grain"
	GoodClothing      = "clothing"
	GoodMeat          = "meat"
	GoodConsumerGoods = "consumerGoods"
	GoodElectronics   = "electronics"
	GoodProcessedFood = "processedFood"
)

// Goods returns the full goods catalog, keyed by good id.
func Goods() map[string]Good {
	list := []Good{
		{ID: GoodGrain, Name: "Grain", Category: CategoryFood, BasePrice: 100, LaborIntensity: 0.3, ResourceIntensity: 0.7},
		{ID: GoodClothing, Name: "Clothing", Category: CategoryConsumer, BasePrice: 126, LaborIntensity: 0.6, ResourceIntensity: 0.4},
		{ID: GoodMeat, Name: "Meat", Category: CategoryFood, BasePrice: 100, LaborIntensity: 0.4, ResourceIntensity: 0.6},
		{ID: GoodConsumerGoods, Name: "Consumer Goods", Category: CategoryConsumer, BasePrice: 100, LaborIntensity: 0.7, ResourceIntensity: 0.4},
		{ID: GoodElectronics, Name: "Electronics", Category: CategoryManufactured, BasePrice: 200, LaborIntensity: 0.8, ResourceIntensity: 0.5},
		{ID: GoodProcessedFood, Name: "Processed Food", Category: CategoryFood, BasePrice: 30, LaborIntensity: 0.5, ResourceIntensity: 0.6},
	}
	out := make(map[string]Good, len(list))
	for _, g := range list {
		out[g.ID] = g
	}
	return out
}
