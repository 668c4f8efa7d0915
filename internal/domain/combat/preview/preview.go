// Package preview projects what a card would do to a target without
// committing anything
package preview

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// Preview is the projected outcome of a card against one target
type Preview struct {
	TotalDamage  int  `json:"total_damage"`
	ActualDamage int  `json:"actual_damage"`
	IsVulnerable bool `json:"is_vulnerable"`
	WouldKill    bool `json:"would_kill"`
	HitsCount    int  `json:"hits_count"`
}

// Calculator builds previews with the same damage formula the committing
// path uses
type Calculator struct {
	damage *effects.Calculator
}

// NewCalculator creates a preview calculator over calc. A nil calc uses the
// package default shared with the other processors.
func NewCalculator(calc *effects.Calculator) *Calculator {
	if calc == nil {
		calc = effects.DefaultCalculator()
	}
	return &Calculator{damage: calc}
}

// Project returns the preview of card played by player against target. The
// second result is false when the card would deal no damage, in which case
// there is nothing to show.
func (c *Calculator) Project(card *entities.Card, player *entities.Player, target *entities.Enemy, isFirstAttack bool) (*Preview, bool) {
	if card == nil || player == nil || target == nil {
		return nil, false
	}

	perHit := c.damage.Damage(float64(BaseDamage(card)), player, target, isFirstAttack)
	hits := 1
	if card.HasEffect(entities.EffectDamageMultiplierEnergy) {
		// Modifiers resolve per hit, then the hit count multiplies
		hits = max(0, player.Energy)
	}

	total := perHit * hits
	if total <= 0 {
		return nil, false
	}

	actual := max(0, total-target.Block)
	return &Preview{
		TotalDamage:  total,
		ActualDamage: actual,
		IsVulnerable: target.HasStatus(entities.StatusVulnerable),
		WouldKill:    actual >= target.Health,
		HitsCount:    hits,
	}, true
}

// BaseDamage is the card's flat damage, or the sum of its damage effects
// when the flat field is unset
func BaseDamage(card *entities.Card) int {
	if card.Damage != 0 {
		return card.Damage
	}

	total := 0
	for _, e := range card.Effects {
		if e.Type == entities.EffectDamage {
			total += e.Value
		}
	}
	return total
}

var defaultCalculator = NewCalculator(nil)

// CalculateCardPreview runs the default preview calculator
func CalculateCardPreview(card *entities.Card, player *entities.Player, target *entities.Enemy, isFirstAttack bool) (*Preview, bool) {
	return defaultCalculator.Project(card, player, target, isFirstAttack)
}
