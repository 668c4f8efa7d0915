package events_test

import (
	"errors"
	"testing"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_DeliversTypedEvents(t *testing.T) {
	bus := events.NewBus()

	var got *events.TriggerResolvedEvent
	bus.Subscribe(events.EventTypeTriggerResolved, &testListener{
		id:       "recorder",
		priority: events.PriorityPresentation,
		handler: func(e events.Event) error {
			got, _ = e.(*events.TriggerResolvedEvent)
			return nil
		},
	})

	err := bus.Emit(events.NewTriggerResolvedEvent("combat-1", entities.TriggerDamageTaken, 3))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "combat-1", got.GetCombatID())
	assert.Equal(t, entities.TriggerDamageTaken, got.Trigger)
	assert.Equal(t, 3, got.DrawCards)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe in random order
	bus.Subscribe(events.EventTypeEnemyDefeated, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeEnemyDefeated, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeEnemyDefeated, &testListener{id: "medium", priority: 200, handler: record("medium")})
	bus.Subscribe(events.EventTypeEnemyDefeated, &testListener{id: "medium-2", priority: 200, handler: record("medium-2")})

	err := bus.Emit(events.NewEnemyDefeatedEvent("combat-1", "e1"))
	require.NoError(t, err)

	// Lower priority number runs earlier; ties keep subscription order
	assert.Equal(t, []string{"high", "medium", "medium-2", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	var firstExecuted, secondExecuted bool

	bus.Subscribe(events.EventTypeDrawRequested, &testListener{
		id:       "no-draw",
		priority: events.PriorityRules,
		handler: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.EventTypeDrawRequested, &testListener{
		id:       "drawer",
		priority: events.PriorityState,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	event := events.NewDrawRequestedEvent("combat-1", 3, entities.RelicCentennialPuzzle)
	require.NoError(t, bus.Emit(event))

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	boom := errors.New("boom")

	bus.Subscribe(events.EventTypePlayerDefeated, &events.ListenerFunc{
		Name:    "failing",
		Order:   events.PriorityState,
		Handler: func(events.Event) error { return boom },
	})

	err := bus.Emit(events.NewPlayerDefeatedEvent("combat-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "listener failing failed")
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	noop := func(events.Event) error { return nil }

	bus.Subscribe(events.EventTypeStatusTicked, &testListener{id: "a", priority: 1, handler: noop})
	bus.Subscribe(events.EventTypeStatusTicked, &testListener{id: "b", priority: 2, handler: noop})
	bus.Subscribe(events.EventTypeStatusTicked, &testListener{id: "c", priority: 3, handler: noop})

	bus.Unsubscribe(events.EventTypeStatusTicked, "b")
	assert.Equal(t, 2, bus.ListenerCount(events.EventTypeStatusTicked))

	var order []string
	bus.Subscribe(events.EventTypeStatusTicked, &testListener{id: "d", priority: 0, handler: func(e events.Event) error {
		order = append(order, "d")
		return nil
	}})
	require.NoError(t, bus.Emit(events.NewStatusTickedEvent("combat-1", "", 4, nil)))
	assert.Equal(t, []string{"d"}, order)

	bus.Clear()
	assert.Zero(t, bus.ListenerCount(events.EventTypeStatusTicked))
}

func TestEventBus_NilBusDropsEvents(t *testing.T) {
	var bus *events.Bus
	assert.NoError(t, bus.Emit(events.NewPlayerDefeatedEvent("combat-1")))
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }

func TestEventBus_SubscribeAll(t *testing.T) {
	bus := events.NewBus()

	var seen []events.EventType
	listener := &events.ListenerFunc{
		Name:  "all",
		Order: events.PriorityState,
		Handler: func(e events.Event) error {
			seen = append(seen, e.GetType())
			return nil
		},
	}

	bus.SubscribeAll(listener)
	for _, eventType := range events.AllEventTypes {
		assert.Equal(t, 1, bus.ListenerCount(eventType))
	}

	require.NoError(t, bus.Emit(events.NewEnemyDefeatedEvent("combat-1", "louse")))
	require.NoError(t, bus.Emit(events.NewDrawRequestedEvent("combat-1", 3, entities.RelicCentennialPuzzle)))
	assert.Equal(t, []events.EventType{events.EventTypeEnemyDefeated, events.EventTypeDrawRequested}, seen)

	only := events.NewBus()
	only.SubscribeAll(listener, events.EventTypePlayerDefeated)
	assert.Equal(t, 1, only.ListenerCount(events.EventTypePlayerDefeated))
	assert.Zero(t, only.ListenerCount(events.EventTypeTriggerResolved))
}
