package events

// Event type constants
const (
	EventTypeTriggerResolved EventType = "trigger_resolved"
	EventTypeDrawRequested   EventType = "draw_requested"
	EventTypeStatusTicked    EventType = "status_ticked"
	EventTypeEnemyDefeated   EventType = "enemy_defeated"
	EventTypePlayerDefeated  EventType = "player_defeated"
)

// AllEventTypes lists every event the combat service emits
var AllEventTypes = []EventType{
	EventTypeTriggerResolved,
	EventTypeDrawRequested,
	EventTypeStatusTicked,
	EventTypeEnemyDefeated,
	EventTypePlayerDefeated,
}

// Priority levels for listener order. Lower runs first.
const (
	PriorityRules        = 100 // listeners that may cancel
	PriorityState        = 200 // bookkeeping that follows the rules
	PriorityPresentation = 300 // rendering and logging
)
