package effects

import (
	"math"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

const (
	weakMultiplier       = 0.75
	vulnerableMultiplier = 1.5

	// FirstAttackBonus is the flat bonus granted by the akabeko relic
	FirstAttackBonus = 8
)

// Calculator resolves the damage and block formulas. Bad input never fails:
// it yields zero and is handed to the reporter.
type Calculator struct {
	reporter diagnostics.Reporter
}

// NewCalculator creates a calculator. A nil reporter logs through the
// standard logger.
func NewCalculator(reporter diagnostics.Reporter) *Calculator {
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return &Calculator{reporter: reporter}
}

// Damage returns the damage baseDamage deals from attacker to target.
//
// Modifiers apply in a fixed order: strength, weak, vulnerable, then the
// first-attack relic bonus. Each multiplier floors before the next step.
func (c *Calculator) Damage(baseDamage float64, attacker, target entities.Combatant, isFirstAttack bool) int {
	if math.IsNaN(baseDamage) || math.IsInf(baseDamage, 0) {
		c.reporter.Report(dnderr.InvalidArgument("base damage is not a finite number").
			WithMeta("base_damage", baseDamage))
		return 0
	}
	if entities.IsMissing(attacker) {
		c.reporter.Report(dnderr.Validation("damage attacker is missing").
			WithMeta("base_damage", baseDamage))
		return 0
	}
	if entities.IsMissing(target) {
		c.reporter.Report(dnderr.Validation("damage target is missing").
			WithMeta("base_damage", baseDamage))
		return 0
	}

	if baseDamage < 0 {
		return 0
	}

	damage := baseDamage
	damage += float64(attacker.StatusStacks(entities.StatusStrength))

	if attacker.HasStatus(entities.StatusWeak) {
		damage = math.Floor(damage * weakMultiplier)
	}
	if target.HasStatus(entities.StatusVulnerable) {
		damage = math.Floor(damage * vulnerableMultiplier)
	}

	if player, ok := attacker.(*entities.Player); ok && isFirstAttack && player.HasRelic(entities.RelicAkabeko) {
		damage += FirstAttackBonus
	}

	return int(math.Floor(math.Max(0, damage)))
}

// Block returns the block baseBlock grants to defender after dexterity.
// A negative base grants nothing.
func (c *Calculator) Block(baseBlock int, defender entities.Combatant) int {
	if baseBlock < 0 {
		return 0
	}
	dexterity := 0
	if !entities.IsMissing(defender) {
		dexterity = defender.StatusStacks(entities.StatusDexterity)
	}
	return max(0, baseBlock+dexterity)
}

var defaultCalculator = NewCalculator(nil)

// DefaultCalculator returns the logging calculator behind CalculateDamage
func DefaultCalculator() *Calculator {
	return defaultCalculator
}

// CalculateDamage resolves damage with the default, logging calculator
func CalculateDamage(baseDamage float64, attacker, target entities.Combatant, isFirstAttack bool) int {
	return defaultCalculator.Damage(baseDamage, attacker, target, isFirstAttack)
}

// CalculateBlock resolves block with the default calculator
func CalculateBlock(baseBlock int, defender entities.Combatant) int {
	return defaultCalculator.Block(baseBlock, defender)
}
