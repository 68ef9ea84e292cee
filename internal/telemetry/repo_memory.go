package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores telemetry events
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// DefaultRetention bounds the in-memory buffer. Day ticks arrive every
// couple of seconds for the whole session, so the buffer must not grow
// without limit.
const DefaultRetention = 10_000

// MemoryRepository keeps the most recent events in memory, dropping the
// oldest once the retention limit is hit.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	nextID int
	limit  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events: make([]Event, 0),
		nextID: 1,
		limit:  DefaultRetention,
	}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	event := Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	}

	r.events = append(r.events, event)
	r.nextID++

	if len(r.events) > r.limit {
		overflow := len(r.events) - r.limit
		r.events = append(r.events[:0:0], r.events[overflow:]...)
	}

	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}

	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1

	return nil
}
