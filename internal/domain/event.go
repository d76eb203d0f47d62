package domain

import "time"

// EventType selects which multiplier chain an event feeds.
type EventType string

const (
	// EventCurrency events multiply the studs-per-click/per-second rate.
	EventCurrency EventType = "currency"
	// EventLuck events multiply randomized-reward luck only.
	EventLuck EventType = "luck"
)

// EventKind tags events with special behavior beyond their multiplier chain.
type EventKind string

const (
	// EventKindStandard events contribute only their multiplier.
	EventKindStandard EventKind = "standard"
	// EventKindGodLuck additionally grants the flat GOD Luck click bonus.
	EventKindGodLuck EventKind = "god_luck"
)

// GodLuckEventName is the event name the admin surface maps to EventKindGodLuck.
const GodLuckEventName = "99x GOD Luck"

// GodLuckFlatClickBonus is added to effective click power after the floor
// while a god_luck event is active. It is never part of the multiplier chain
// and never applies to auto power.
const GodLuckFlatClickBonus int64 = 1_800_000

// GameEvent is a time-boxed global modifier. Created already active; removed
// by the expiry sweep once EndTime passes. There is no manual cancel.
type GameEvent struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            EventType `json:"type"`
	Kind            EventKind `json:"kind"`
	Multiplier      float64   `json:"multiplier"`
	DurationSeconds int       `json:"duration_seconds"`
	EndTime         time.Time `json:"end_time"`
}

// Expired reports whether the event's window has closed at the given instant.
func (e GameEvent) Expired(now time.Time) bool {
	return !e.EndTime.After(now)
}
