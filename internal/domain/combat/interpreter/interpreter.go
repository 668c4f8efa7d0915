// Package interpreter applies declarative effects to a combat state. Power
// cards and relics share it; each supplies its own Rules.
package interpreter

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// EnergyOverflow is how far above max energy an effect may raise energy
const EnergyOverflow = 3

// Rules tune how effects with an unspecified target resolve
type Rules struct {
	// Source names the kind of effect owner in diagnostics
	Source string

	// UnspecifiedIsSelf lets block, heal and energy effects omit a target
	UnspecifiedIsSelf bool

	// UnspecifiedIsAllEnemies lets damage and status effects omit a target
	UnspecifiedIsAllEnemies bool
}

// Interpreter applies effects against a working copy of the combat state
type Interpreter struct {
	rules    Rules
	reporter diagnostics.Reporter
}

// New creates an interpreter. A nil reporter logs.
func New(rules Rules, reporter diagnostics.Reporter) *Interpreter {
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return &Interpreter{rules: rules, reporter: reporter}
}

// Matches returns the effects of list that fire on trigger, in order
func Matches(list []entities.Effect, trigger entities.Trigger) []entities.Effect {
	var matched []entities.Effect
	for _, e := range list {
		if e.Trigger == trigger {
			matched = append(matched, e)
		}
	}
	return matched
}

// Apply applies effect to state in place. The caller owns state and must
// have cloned it from its inputs. ownerID is used for diagnostics only.
func (in *Interpreter) Apply(state *entities.CombatState, effect entities.Effect, ownerID string) {
	target := in.resolveTarget(effect)
	player := state.Player

	switch {
	case effect.Type == entities.EffectBlock && target == entities.TargetSelf:
		player.Block += effect.Value

	case effect.Type == entities.EffectHeal && target == entities.TargetSelf:
		player.Health = min(player.MaxHealth, player.Health+effect.Value)

	case effect.Type == entities.EffectGainEnergy && target == entities.TargetSelf:
		player.Energy = min(player.MaxEnergy+EnergyOverflow, player.Energy+effect.Value)

	case effect.Type == entities.EffectApplyStatus && target == entities.TargetSelf:
		if !in.checkStatus(effect, ownerID) {
			return
		}
		state.Player = effects.ApplyStatusEffect(player, effect.StatusType, effect.Value)

	case effect.Type == entities.EffectApplyStatus && target == entities.TargetAllEnemies:
		if !in.checkStatus(effect, ownerID) {
			return
		}
		for i, enemy := range state.Enemies {
			state.Enemies[i] = effects.ApplyStatusEffect(enemy, effect.StatusType, effect.Value)
		}

	case effect.Type == entities.EffectDamage && target == entities.TargetAllEnemies:
		// Direct effect damage bypasses block
		for _, enemy := range state.Enemies {
			if enemy != nil {
				enemy.Health = max(0, enemy.Health-effect.Value)
			}
		}

	case effect.Type == entities.EffectDrawCards:
		// Drawing belongs to the caller's draw pile

	default:
		in.reporter.Report(dnderr.Unimplementedf("no rule for %s effect targeting %q", effect.Type, effect.Target).
			WithMeta("source", in.rules.Source).
			WithMeta("owner", ownerID).
			WithMeta("effect_type", string(effect.Type)).
			WithMeta("target", string(effect.Target)))
	}
}

func (in *Interpreter) resolveTarget(effect entities.Effect) entities.Target {
	if effect.Target != entities.TargetUnspecified {
		return effect.Target
	}

	switch effect.Type {
	case entities.EffectBlock, entities.EffectHeal, entities.EffectGainEnergy:
		if in.rules.UnspecifiedIsSelf {
			return entities.TargetSelf
		}
	case entities.EffectDamage, entities.EffectApplyStatus:
		if in.rules.UnspecifiedIsAllEnemies {
			return entities.TargetAllEnemies
		}
	}
	return entities.TargetUnspecified
}

func (in *Interpreter) checkStatus(effect entities.Effect, ownerID string) bool {
	if effect.StatusType != "" {
		return true
	}
	in.reporter.Report(dnderr.Validation("apply_status effect has no status type").
		WithMeta("source", in.rules.Source).
		WithMeta("owner", ownerID))
	return false
}
