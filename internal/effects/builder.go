package effects

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// Builder helps author effect lists for cards, power cards and relics
type Builder struct {
	trigger entities.Trigger
	effects []entities.Effect
}

// NewBuilder creates a builder with no trigger set
func NewBuilder() *Builder {
	return &Builder{effects: []entities.Effect{}}
}

// On sets the trigger for every effect added afterwards
func (b *Builder) On(trigger entities.Trigger) *Builder {
	b.trigger = trigger
	return b
}

func (b *Builder) add(effectType entities.EffectType, value int, target entities.Target, status entities.StatusType) *Builder {
	b.effects = append(b.effects, entities.Effect{
		Trigger:    b.trigger,
		Type:       effectType,
		Value:      value,
		Target:     target,
		StatusType: status,
	})
	return b
}

// AddDamage adds a damage effect against target
func (b *Builder) AddDamage(value int, target entities.Target) *Builder {
	return b.add(entities.EffectDamage, value, target, "")
}

// AddBlock adds a self block effect
func (b *Builder) AddBlock(value int) *Builder {
	return b.add(entities.EffectBlock, value, entities.TargetSelf, "")
}

// AddHeal adds a self heal effect
func (b *Builder) AddHeal(value int) *Builder {
	return b.add(entities.EffectHeal, value, entities.TargetSelf, "")
}

// AddEnergy adds a self energy gain effect
func (b *Builder) AddEnergy(value int) *Builder {
	return b.add(entities.EffectGainEnergy, value, entities.TargetSelf, "")
}

// AddDraw adds a card draw effect
func (b *Builder) AddDraw(value int) *Builder {
	return b.add(entities.EffectDrawCards, value, entities.TargetSelf, "")
}

// AddStatus adds an apply-status effect against target
func (b *Builder) AddStatus(status entities.StatusType, stacks int, target entities.Target) *Builder {
	return b.add(entities.EffectApplyStatus, stacks, target, status)
}

// AddEnergyMultiplier marks a card as hitting once per point of energy
func (b *Builder) AddEnergyMultiplier() *Builder {
	return b.add(entities.EffectDamageMultiplierEnergy, 1, entities.TargetEnemy, "")
}

// Add appends a fully specified effect, stamping the current trigger when
// the effect has none
func (b *Builder) Add(effect entities.Effect) *Builder {
	if effect.Trigger == "" {
		effect.Trigger = b.trigger
	}
	b.effects = append(b.effects, effect)
	return b
}

// Build returns a copy of the effects authored so far
func (b *Builder) Build() []entities.Effect {
	return entities.CloneEffects(b.effects)
}

// BuildPowerCard wraps the authored effects in a power card
func (b *Builder) BuildPowerCard(id, name string) entities.PowerCard {
	return entities.PowerCard{ID: id, Name: name, Effects: b.Build()}
}

// BuildRelic wraps the authored effects in a relic
func (b *Builder) BuildRelic(id, name, description string) entities.Relic {
	return entities.Relic{ID: id, Name: name, Description: description, Effects: b.Build()}
}
