package telemetry

import "time"

type EventType string

const (
	EventDayTick           EventType = "day_tick"
	EventWarehouseBuilt    EventType = "warehouse_built"
	EventFacilityBuilt     EventType = "facility_built"
	EventFacilityDestroyed EventType = "facility_destroyed"
	EventRoadBuilt         EventType = "road_built"
	EventTruckLineCreated  EventType = "truck_line_created"
	EventGoodsSold         EventType = "goods_sold"
	EventGoodsTransferred  EventType = "goods_transferred"
	EventCountryUnlocked   EventType = "country_unlocked"
	EventChallengeAssigned EventType = "challenge_assigned"
	EventGameOver          EventType = "game_over"
	EventRestart           EventType = "restart"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
