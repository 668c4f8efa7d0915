// Package powers resolves the player's persistent power cards on a trigger
package powers

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/domain/combat/interpreter"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// Processor dispatches a trigger across the player's power cards
type Processor struct {
	interpreter *interpreter.Interpreter
	reporter    diagnostics.Reporter
}

// ProcessorConfig holds the processor's collaborators
type ProcessorConfig struct {
	Reporter diagnostics.Reporter // Optional, logs when nil
}

// NewProcessor creates a power card processor
func NewProcessor(cfg *ProcessorConfig) *Processor {
	var reporter diagnostics.Reporter
	if cfg != nil {
		reporter = cfg.Reporter
	}
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}

	return &Processor{
		interpreter: interpreter.New(interpreter.Rules{Source: "power_card"}, reporter),
		reporter:    reporter,
	}
}

// Process applies every power card effect whose trigger matches, in card
// order and then effect order. Later effects see the state left by earlier
// ones. The inputs are never modified.
func (p *Processor) Process(trigger entities.Trigger, player *entities.Player, enemies []*entities.Enemy) entities.CombatState {
	state := entities.CombatState{Player: player, Enemies: enemies}.Clone()
	if player == nil {
		p.reporter.Report(dnderr.Validation("power card dispatch without a player").
			WithMeta("trigger", string(trigger)))
		return state
	}

	for _, card := range player.PowerCards {
		for _, effect := range interpreter.Matches(card.Effects, trigger) {
			p.interpreter.Apply(&state, effect, card.ID)
		}
	}

	return state
}

var defaultProcessor = NewProcessor(nil)

// ProcessPowerCardEffects runs the default processor
func ProcessPowerCardEffects(trigger entities.Trigger, player *entities.Player, enemies []*entities.Enemy) entities.CombatState {
	return defaultProcessor.Process(trigger, player, enemies)
}
