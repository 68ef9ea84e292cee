package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period           string            `json:"period"`
	EventCounts      map[EventType]int `json:"event_counts"`
	DayTicks         int               `json:"day_ticks"`
	UnitsProduced    int               `json:"units_produced"`
	UnitsMoved       int               `json:"units_moved"`
	LogisticsCost    float64           `json:"logistics_cost"`
	ProducedPerTick  float64           `json:"produced_per_tick"`
	RevenueBooked    float64           `json:"revenue_booked"`
	SalesByGood      map[string]int    `json:"sales_by_good"`
	BuildsByCountry  map[string]int    `json:"builds_by_country"`
	CountriesUnlocked int              `json:"countries_unlocked"`
}

// CalculateStats aggregates balance stats from recorded events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:          since.Format("2006-01-02"),
		EventCounts:     make(map[EventType]int),
		SalesByGood:     make(map[string]int),
		BuildsByCountry: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var meta EventMetadata
		if event.Metadata != "" {
			if err := json.Unmarshal([]byte(event.Metadata), &meta); err != nil {
				return Stats{}, err
			}
		}

		switch event.Type {
		case EventDayTick:
			stats.DayTicks++
			stats.UnitsProduced += metaInt(meta, "units_produced")
			stats.UnitsMoved += metaInt(meta, "units_moved")
			stats.LogisticsCost += metaFloat(meta, "logistics_cost")
		case EventGoodsSold:
			stats.RevenueBooked += metaFloat(meta, "revenue")
			if good, ok := meta["good_id"].(string); ok {
				stats.SalesByGood[good] += metaInt(meta, "amount")
			}
		case EventWarehouseBuilt, EventFacilityBuilt, EventRoadBuilt:
			if country, ok := meta["country_id"].(string); ok {
				stats.BuildsByCountry[country]++
			}
		case EventCountryUnlocked:
			stats.CountriesUnlocked++
		}
	}

	if stats.DayTicks > 0 {
		stats.ProducedPerTick = float64(stats.UnitsProduced) / float64(stats.DayTicks)
	}

	return stats, nil
}

// metaInt reads a numeric metadata field; JSON numbers decode as float64.
func metaInt(meta EventMetadata, key string) int {
	if v, ok := meta[key].(float64); ok {
		return int(v)
	}
	return 0
}

func metaFloat(meta EventMetadata, key string) float64 {
	if v, ok := meta[key].(float64); ok {
		return v
	}
	return 0
}
