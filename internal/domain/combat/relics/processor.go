// Package relics resolves the player's relics on a trigger.
//
// Most relics are plain data and go through the shared interpreter. A few
// are keyed by identity and have their own behavior, listed in overrides.
package relics

import (
	"log"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/domain/combat/interpreter"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

const (
	// ReflectDamage is dealt to every enemy by bronze scales
	ReflectDamage = 3

	// DamageDrawCount is requested by the centennial puzzle
	DamageDrawCount = 3
)

// Context carries obligations the engine hands back to its caller. It is a
// one-shot signal for the dispatch that filled it, not game state.
type Context struct {
	// ShouldDrawCards is how many cards the caller must draw after dispatch
	ShouldDrawCards int
}

// override replaces the generic interpreter for one relic on one trigger
type override struct {
	trigger entities.Trigger
	apply   func(state *entities.CombatState, ctx *Context)
}

var overrides = map[string]override{
	entities.RelicBronzeScales: {
		trigger: entities.TriggerDamageTaken,
		apply:   reflectDamage,
	},
	entities.RelicCentennialPuzzle: {
		trigger: entities.TriggerDamageTaken,
		apply:   drawOnDamage,
	},
}

func reflectDamage(state *entities.CombatState, _ *Context) {
	for _, enemy := range state.Enemies {
		if enemy != nil {
			enemy.Health = max(0, enemy.Health-ReflectDamage)
		}
	}
}

func drawOnDamage(_ *entities.CombatState, ctx *Context) {
	if ctx != nil {
		ctx.ShouldDrawCards = DamageDrawCount
	}
}

// Processor dispatches a trigger across the player's relics
type Processor struct {
	interpreter *interpreter.Interpreter
	reporter    diagnostics.Reporter
}

// ProcessorConfig holds the processor's collaborators
type ProcessorConfig struct {
	Reporter diagnostics.Reporter // Optional, logs when nil
}

// NewProcessor creates a relic processor
func NewProcessor(cfg *ProcessorConfig) *Processor {
	var reporter diagnostics.Reporter
	if cfg != nil {
		reporter = cfg.Reporter
	}
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}

	rules := interpreter.Rules{
		Source:                  "relic",
		UnspecifiedIsSelf:       true,
		UnspecifiedIsAllEnemies: true,
	}
	return &Processor{
		interpreter: interpreter.New(rules, reporter),
		reporter:    reporter,
	}
}

// Process applies every relic effect whose trigger matches, in the player's
// relic order and then effect order. ctx may be nil when the caller does not
// service draw requests.
func (p *Processor) Process(trigger entities.Trigger, player *entities.Player, enemies []*entities.Enemy, ctx *Context) entities.CombatState {
	state := entities.CombatState{Player: player, Enemies: enemies}.Clone()
	if player == nil {
		p.reporter.Report(dnderr.Validation("relic dispatch without a player").
			WithMeta("trigger", string(trigger)))
		return state
	}

	for _, relic := range player.Relics {
		for _, effect := range interpreter.Matches(relic.Effects, trigger) {
			if special, ok := overrides[relic.ID]; ok && special.trigger == trigger {
				log.Printf("[RELICS] %s fires on %s", relic.ID, trigger)
				special.apply(&state, ctx)
				continue
			}
			p.interpreter.Apply(&state, effect, relic.ID)
		}
	}

	return state
}

// HasOverride reports whether the relic with id has identity-keyed behavior
func HasOverride(id string) bool {
	_, ok := overrides[id]
	return ok
}

var defaultProcessor = NewProcessor(nil)

// ProcessRelicEffects runs the default processor
func ProcessRelicEffects(trigger entities.Trigger, player *entities.Player, enemies []*entities.Enemy, ctx *Context) entities.CombatState {
	return defaultProcessor.Process(trigger, player, enemies, ctx)
}
