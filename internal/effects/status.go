// Package effects holds the status effect engine: stacking, per-tick decay
// and the damage and block formulas every processor calls into.
package effects

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// Holder is a combatant snapshot that can be copied and have its statuses
// and health replaced. *entities.Player and *entities.Enemy satisfy it.
type Holder[H any] interface {
	entities.Combatant
	Clone() H
	SetStatusEffects(list []entities.StatusEffect)
	SetHealth(health int)
}

// turnDurations maps status types that decay by elapsed turns to their
// starting duration. No shipped type uses it yet.
var turnDurations = map[entities.StatusType]int{}

// StatusEffectDuration returns the starting duration for a newly applied
// status of type t, or nil when the type is not governed by elapsed turns.
func StatusEffectDuration(t entities.StatusType) *int {
	d, ok := turnDurations[t]
	if !ok {
		return nil
	}
	return &d
}

// ApplyStatus returns a new status list with stacks merged into the entry of
// type t, or a new entry appended when there is none. Negative stacks are
// accepted and simply reduce the stored value.
func ApplyStatus(list []entities.StatusEffect, t entities.StatusType, stacks int) []entities.StatusEffect {
	out := entities.CloneStatusEffects(list)

	if i := entities.FindStatus(out, t); i >= 0 {
		out[i].Stacks += stacks
		return out
	}

	return append(out, entities.StatusEffect{
		Type:     t,
		Stacks:   stacks,
		Duration: StatusEffectDuration(t),
	})
}

// ApplyStatusEffect returns a copy of target with the status applied
func ApplyStatusEffect[H Holder[H]](target H, t entities.StatusType, stacks int) H {
	if entities.IsMissing(target) {
		return target
	}

	next := target.Clone()
	next.SetStatusEffects(ApplyStatus(next.GetStatusEffects(), t, stacks))
	return next
}

// decaysByStacks reports whether t loses a stack per tick. Those types never
// have their duration decremented.
func decaysByStacks(t entities.StatusType) bool {
	switch t {
	case entities.StatusPoison, entities.StatusWeak, entities.StatusVulnerable:
		return true
	}
	return false
}

// persistsForCombat reports whether t is left untouched by a tick
func persistsForCombat(t entities.StatusType) bool {
	return t == entities.StatusStrength || t == entities.StatusDexterity
}

// TickStatuses runs one decay tick over list. It returns the surviving
// entries and the total poison damage dealt during the tick.
func TickStatuses(list []entities.StatusEffect) ([]entities.StatusEffect, int) {
	ticked := entities.CloneStatusEffects(list)
	poison := 0

	for i := range ticked {
		s := &ticked[i]
		switch {
		case s.Type == entities.StatusPoison:
			// Damage lands before the stack is removed
			poison += max(0, s.Stacks)
			s.Stacks = max(0, s.Stacks-1)
		case decaysByStacks(s.Type):
			s.Stacks = max(0, s.Stacks-1)
		case persistsForCombat(s.Type):
		case s.Duration != nil:
			d := max(0, *s.Duration-1)
			s.Duration = &d
		}
	}

	kept := ticked[:0]
	for _, s := range ticked {
		if s.Stacks <= 0 {
			continue
		}
		if s.Duration != nil && *s.Duration <= 0 {
			continue
		}
		kept = append(kept, s)
	}
	return kept, poison
}

// ProcessStatusEffects runs the end-of-turn tick for entity and returns the
// resulting snapshot. Poison damage ignores block.
func ProcessStatusEffects[H Holder[H]](entity H) H {
	if entities.IsMissing(entity) {
		return entity
	}

	next := entity.Clone()
	statuses, poison := TickStatuses(next.GetStatusEffects())
	next.SetStatusEffects(statuses)
	if poison > 0 {
		next.SetHealth(max(0, next.GetHealth()-poison))
	}
	return next
}
