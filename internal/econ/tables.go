package econ

// CountryProperties is the static per-country economic table: population,
// wage level and resource bonuses (lower = cheaper to produce locally).
func CountryProperties() map[string]CountryInfo {
	return map[string]CountryInfo{
		"GB": {Population: 67_000_000, WageLevel: 1.6, ResourceBonus: map[string]float64{GoodElectronics: 0.9, GoodConsumerGoods: 1.0}},
		"DE": {Population: 83_000_000, WageLevel: 1.5, ResourceBonus: map[string]float64{GoodClothing: 0.8, GoodElectronics: 0.7}},
		"FR": {Population: 67_000_000, WageLevel: 1.4, ResourceBonus: map[string]float64{GoodProcessedFood: 0.8, GoodConsumerGoods: 0.9}},
		"IT": {Population: 60_000_000, WageLevel: 1.2, ResourceBonus: map[string]float64{GoodProcessedFood: 0.7, GoodConsumerGoods: 0.8}},
		"PL": {Population: 38_000_000, WageLevel: 0.7, ResourceBonus: map[string]float64{GoodGrain: 0.6, GoodClothing: 0.9}},
		"ES": {Population: 47_000_000, WageLevel: 1.1, ResourceBonus: map[string]float64{GoodGrain: 0.7, GoodProcessedFood: 0.8}},
		"PT": {Population: 10_000_000, WageLevel: 1.0, ResourceBonus: map[string]float64{GoodGrain: 0.8, GoodProcessedFood: 0.9}},
		"NL": {Population: 17_000_000, WageLevel: 1.6, ResourceBonus: map[string]float64{GoodProcessedFood: 0.7, GoodElectronics: 0.9}},
		"BE": {Population: 11_000_000, WageLevel: 1.5, ResourceBonus: map[string]float64{GoodConsumerGoods: 0.9, GoodClothing: 1.0}},
		"CH": {Population: 8_500_000, WageLevel: 2.0, ResourceBonus: map[string]float64{GoodElectronics: 0.8, GoodConsumerGoods: 0.9}},
		"AT": {Population: 9_000_000, WageLevel: 1.5, ResourceBonus: map[string]float64{GoodClothing: 0.85, GoodElectronics: 0.95}},
		"CZ": {Population: 10_500_000, WageLevel: 0.9, ResourceBonus: map[string]float64{GoodClothing: 0.8, GoodConsumerGoods: 0.9}},
		"SE": {Population: 10_500_000, WageLevel: 1.7, ResourceBonus: map[string]float64{GoodClothing: 0.7, GoodElectronics: 0.8}},
		"NO": {Population: 5_500_000, WageLevel: 2.1, ResourceBonus: map[string]float64{GoodClothing: 0.6, GoodElectronics: 0.85}},
		"FI": {Population: 5_500_000, WageLevel: 1.6, ResourceBonus: map[string]float64{GoodElectronics: 0.75, GoodClothing: 0.85}},
		"DK": {Population: 6_000_000, WageLevel: 1.8, ResourceBonus: map[string]float64{GoodProcessedFood: 0.7, GoodConsumerGoods: 0.9}},
		"GR": {Population: 10_500_000, WageLevel: 0.9, ResourceBonus: map[string]float64{GoodGrain: 0.8, GoodProcessedFood: 0.9}},
		"RO": {Population: 19_000_000, WageLevel: 0.5, ResourceBonus: map[string]float64{GoodGrain: 0.5, GoodClothing: 0.7}},
		"HU": {Population: 9_700_000, WageLevel: 0.8, ResourceBonus: map[string]float64{GoodGrain: 0.6, GoodConsumerGoods: 0.85}},
		"SK": {Population: 5_500_000, WageLevel: 0.85, ResourceBonus: map[string]float64{GoodClothing: 0.75, GoodConsumerGoods: 0.9}},
		"BG": {Population: 6_900_000, WageLevel: 0.5, ResourceBonus: map[string]float64{GoodGrain: 0.55, GoodClothing: 0.8}},
		"HR": {Population: 4_000_000, WageLevel: 0.9, ResourceBonus: map[string]float64{GoodGrain: 0.7, GoodProcessedFood: 0.85}},
		"SI": {Population: 2_100_000, WageLevel: 1.2, ResourceBonus: map[string]float64{GoodClothing: 0.8, GoodConsumerGoods: 0.9}},
		"LT": {Population: 2_800_000, WageLevel: 0.75, ResourceBonus: map[string]float64{GoodGrain: 0.65, GoodProcessedFood: 0.8}},
		"LV": {Population: 1_900_000, WageLevel: 0.7, ResourceBonus: map[string]float64{GoodGrain: 0.6, GoodClothing: 0.85}},
		"EE": {Population: 1_300_000, WageLevel: 1.0, ResourceBonus: map[string]float64{GoodElectronics: 0.85, GoodConsumerGoods: 0.9}},
		"IE": {Population: 5_000_000, WageLevel: 1.7, ResourceBonus: map[string]float64{GoodElectronics: 0.75, GoodConsumerGoods: 0.9}},
		"RS": {Population: 6_900_000, WageLevel: 0.5, ResourceBonus: map[string]float64{GoodGrain: 0.6, GoodClothing: 0.75}},
		"BA": {Population: 3_300_000, WageLevel: 0.55, ResourceBonus: map[string]float64{GoodGrain: 0.65, GoodClothing: 0.8}},
		"AL": {Population: 2_900_000, WageLevel: 0.45, ResourceBonus: map[string]float64{GoodGrain: 0.7, GoodProcessedFood: 0.85}},
		"MK": {Population: 2_100_000, WageLevel: 0.5, ResourceBonus: map[string]float64{GoodGrain: 0.65, GoodConsumerGoods: 0.8}},
		"ME": {Population: 620_000, WageLevel: 0.6, ResourceBonus: map[string]float64{GoodGrain: 0.75, GoodProcessedFood: 0.85}},
		"LU": {Population: 630_000, WageLevel: 2.2, ResourceBonus: map[string]float64{GoodElectronics: 0.8, GoodConsumerGoods: 0.85}},
		"XK": {Population: 1_800_000, WageLevel: 0.45, ResourceBonus: map[string]float64{GoodGrain: 0.7, GoodClothing: 0.8}},
		"BY": {Population: 9_400_000, WageLevel: 0.5, ResourceBonus: map[string]float64{GoodGrain: 0.6, GoodClothing: 0.75}},
		"UA": {Population: 41_000_000, WageLevel: 0.4, ResourceBonus: map[string]float64{GoodGrain: 0.5, GoodClothing: 0.7}},
		"MD": {Population: 2_600_000, WageLevel: 0.4, ResourceBonus: map[string]float64{GoodGrain: 0.6, GoodProcessedFood: 0.8}},
	}
}
