package entities

// Trigger is a named instant in the turn sequence at which effects may fire.
// Power cards and relics share the same set of instants.
type Trigger string

const (
	TriggerTurnStart   Trigger = "turn_start"
	TriggerTurnEnd     Trigger = "turn_end"
	TriggerCombatStart Trigger = "combat_start"
	TriggerDamageTaken Trigger = "damage_taken"
)

// IsKnown reports whether t is one of the defined triggers
func (t Trigger) IsKnown() bool {
	switch t {
	case TriggerTurnStart, TriggerTurnEnd, TriggerCombatStart, TriggerDamageTaken:
		return true
	}
	return false
}

// EffectType discriminates what an Effect does
type EffectType string

const (
	EffectDamage                 EffectType = "damage"
	EffectBlock                  EffectType = "block"
	EffectHeal                   EffectType = "heal"
	EffectApplyStatus            EffectType = "apply_status"
	EffectGainEnergy             EffectType = "gain_energy"
	EffectDrawCards              EffectType = "draw_cards"
	EffectDamageMultiplierEnergy EffectType = "damage_multiplier_energy"
)

// IsKnown reports whether e is one of the defined effect types
func (e EffectType) IsKnown() bool {
	switch e {
	case EffectDamage, EffectBlock, EffectHeal, EffectApplyStatus,
		EffectGainEnergy, EffectDrawCards, EffectDamageMultiplierEnergy:
		return true
	}
	return false
}

// Target says who an effect lands on, from the frame of the effect's owner.
// The empty value means the author left it unspecified.
type Target string

const (
	TargetUnspecified Target = ""
	TargetSelf        Target = "self"
	TargetEnemy       Target = "enemy"
	TargetAllEnemies  Target = "all_enemies"
)

// IsKnown reports whether t is a defined target, including unspecified
func (t Target) IsKnown() bool {
	switch t {
	case TargetUnspecified, TargetSelf, TargetEnemy, TargetAllEnemies:
		return true
	}
	return false
}

// Effect is one declarative effect on a card, power card or relic
type Effect struct {
	Trigger    Trigger    `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Type       EffectType `json:"type" yaml:"type"`
	Value      int        `json:"value" yaml:"value"`
	Target     Target     `json:"target,omitempty" yaml:"target,omitempty"`
	StatusType StatusType `json:"status_type,omitempty" yaml:"status_type,omitempty"`
}

// CloneEffects copies an effect list
func CloneEffects(in []Effect) []Effect {
	if in == nil {
		return nil
	}
	out := make([]Effect, len(in))
	copy(out, in)
	return out
}
