// Package monsters resolves a card played by one monster against the player
package monsters

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// Result is the player and monster after a monster card resolves
type Result struct {
	Player *entities.Player
	Enemy  *entities.Enemy
}

// Processor resolves monster cards
type Processor struct {
	calculator *effects.Calculator
	reporter   diagnostics.Reporter
}

// ProcessorConfig holds the processor's collaborators
type ProcessorConfig struct {
	Calculator *effects.Calculator  // Optional, must be shared with previews
	Reporter   diagnostics.Reporter // Optional, logs when nil
}

// NewProcessor creates a monster card processor
func NewProcessor(cfg *ProcessorConfig) *Processor {
	if cfg == nil {
		cfg = &ProcessorConfig{}
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	calculator := cfg.Calculator
	if calculator == nil {
		calculator = effects.DefaultCalculator()
		if cfg.Reporter != nil {
			calculator = effects.NewCalculator(cfg.Reporter)
		}
	}

	return &Processor{calculator: calculator, reporter: reporter}
}

// Process applies card as played by enemy against player. Targets are from
// the monster's point of view: "enemy" is the player.
//
// Cards authored with flat damage or block fields still resolve, but only
// when the card has no structured effect of the same kind.
func (p *Processor) Process(card *entities.MonsterCard, player *entities.Player, enemy *entities.Enemy) Result {
	result := Result{Player: player.Clone(), Enemy: enemy.Clone()}
	if card == nil || player == nil || enemy == nil {
		p.reporter.Report(dnderr.Validation("monster card dispatch with missing card, player or enemy"))
		return result
	}

	for _, effect := range card.Effects {
		p.apply(&result, effect, card.ID)
	}

	if !card.HasEffect(entities.EffectDamage) && card.Damage > 0 {
		p.hitPlayer(&result, card.Damage)
	}
	if !card.HasEffect(entities.EffectBlock) && card.Block > 0 {
		result.Enemy.Block += p.calculator.Block(card.Block, result.Enemy)
	}

	return result
}

func (p *Processor) apply(result *Result, effect entities.Effect, cardID string) {
	switch {
	case effect.Type == entities.EffectDamage && effect.Target == entities.TargetEnemy:
		p.hitPlayer(result, effect.Value)

	case effect.Type == entities.EffectBlock && effect.Target == entities.TargetSelf:
		result.Enemy.Block += p.calculator.Block(effect.Value, result.Enemy)

	case effect.Type == entities.EffectApplyStatus && effect.Target == entities.TargetSelf && effect.StatusType != "":
		result.Enemy = effects.ApplyStatusEffect(result.Enemy, effect.StatusType, effect.Value)

	case effect.Type == entities.EffectApplyStatus && effect.Target == entities.TargetEnemy && effect.StatusType != "":
		result.Player = effects.ApplyStatusEffect(result.Player, effect.StatusType, effect.Value)

	case effect.Type == entities.EffectHeal && effect.Target == entities.TargetSelf:
		result.Enemy.Health = min(result.Enemy.MaxHealth, result.Enemy.Health+effect.Value)

	default:
		p.reporter.Report(dnderr.Unimplementedf("no rule for monster %s effect targeting %q", effect.Type, effect.Target).
			WithMeta("source", "monster_card").
			WithMeta("owner", cardID).
			WithMeta("effect_type", string(effect.Type)).
			WithMeta("target", string(effect.Target)))
	}
}

// hitPlayer deals monster damage to the player. Block soaks up to its own
// size; only the remainder reaches health.
func (p *Processor) hitPlayer(result *Result, base int) {
	damage := p.calculator.Damage(float64(base), result.Enemy, result.Player, false)
	player := result.Player

	player.Health = max(0, player.Health-max(0, damage-player.Block))
	player.Block = max(0, player.Block-damage)
}

var defaultProcessor = NewProcessor(nil)

// ProcessMonsterCardEffects runs the default processor
func ProcessMonsterCardEffects(card *entities.MonsterCard, player *entities.Player, enemy *entities.Enemy) Result {
	return defaultProcessor.Process(card, player, enemy)
}
