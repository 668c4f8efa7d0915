package events

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// TriggerResolvedEvent fires after power cards and relics have reacted to a
// trigger
type TriggerResolvedEvent struct {
	BaseEvent
	Trigger   entities.Trigger
	DrawCards int
}

// NewTriggerResolvedEvent creates a trigger resolved event
func NewTriggerResolvedEvent(combatID string, trigger entities.Trigger, drawCards int) *TriggerResolvedEvent {
	return &TriggerResolvedEvent{
		BaseEvent: BaseEvent{Type: EventTypeTriggerResolved, CombatID: combatID},
		Trigger:   trigger,
		DrawCards: drawCards,
	}
}

// DrawRequestedEvent asks the card sequencer to draw Count cards. A listener
// may cancel it to suppress the draw.
type DrawRequestedEvent struct {
	BaseEvent
	Count  int
	Source string
}

// NewDrawRequestedEvent creates a draw request
func NewDrawRequestedEvent(combatID string, count int, source string) *DrawRequestedEvent {
	return &DrawRequestedEvent{
		BaseEvent: BaseEvent{Type: EventTypeDrawRequested, CombatID: combatID},
		Count:     count,
		Source:    source,
	}
}

// StatusTickedEvent reports one combatant's end of turn status processing.
// CombatantID is empty for the player.
type StatusTickedEvent struct {
	BaseEvent
	CombatantID  string
	PoisonDamage int
	Remaining    []entities.StatusEffect
}

// NewStatusTickedEvent creates a status ticked event
func NewStatusTickedEvent(combatID, combatantID string, poisonDamage int, remaining []entities.StatusEffect) *StatusTickedEvent {
	return &StatusTickedEvent{
		BaseEvent:    BaseEvent{Type: EventTypeStatusTicked, CombatID: combatID},
		CombatantID:  combatantID,
		PoisonDamage: poisonDamage,
		Remaining:    remaining,
	}
}

// EnemyDefeatedEvent fires once when an enemy's health first reaches zero
type EnemyDefeatedEvent struct {
	BaseEvent
	EnemyID string
}

// NewEnemyDefeatedEvent creates an enemy defeated event
func NewEnemyDefeatedEvent(combatID, enemyID string) *EnemyDefeatedEvent {
	return &EnemyDefeatedEvent{
		BaseEvent: BaseEvent{Type: EventTypeEnemyDefeated, CombatID: combatID},
		EnemyID:   enemyID,
	}
}

// PlayerDefeatedEvent fires once when the player's health first reaches zero
type PlayerDefeatedEvent struct {
	BaseEvent
}

// NewPlayerDefeatedEvent creates a player defeated event
func NewPlayerDefeatedEvent(combatID string) *PlayerDefeatedEvent {
	return &PlayerDefeatedEvent{
		BaseEvent: BaseEvent{Type: EventTypePlayerDefeated, CombatID: combatID},
	}
}
