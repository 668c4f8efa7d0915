package relics

import (
	"testing"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessor() *Processor {
	return NewProcessor(&ProcessorConfig{Reporter: diagnostics.Discard})
}

func TestProcessor_IndependentTurnStartRelics(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Energy = 3
	player.Relics = []entities.Relic{testutils.CreateEnergyRelic(1), testutils.CreateBlockRelic(4)}

	state := newProcessor().Process(entities.TriggerTurnStart, player, nil, nil)

	assert.Equal(t, 4, state.Player.Energy)
	assert.Equal(t, 4, state.Player.Block)
	assert.Equal(t, 3, player.Energy)
	assert.Equal(t, 0, player.Block)
}

func TestProcessor_BronzeScalesReflects(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Relics = []entities.Relic{testutils.CreateBronzeScales()}
	enemies := testutils.CreateTestEnemies(10, 2)
	enemies[0].Block = 5

	state := newProcessor().Process(entities.TriggerDamageTaken, player, enemies, nil)

	assert.Equal(t, 7, state.Enemies[0].Health, "reflect ignores block")
	assert.Equal(t, 5, state.Enemies[0].Block)
	assert.Equal(t, 0, state.Enemies[1].Health)
	assert.Equal(t, 10, enemies[0].Health)
}

func TestProcessor_BronzeScalesOnlyOnDamageTaken(t *testing.T) {
	// The same relic data on another trigger goes through the generic rules
	scales := testutils.CreateBronzeScales()
	scales.Effects = append(scales.Effects, entities.Effect{
		Trigger: entities.TriggerTurnStart,
		Type:    entities.EffectDamage,
		Value:   1,
		Target:  entities.TargetAllEnemies,
	})
	player := testutils.CreateTestPlayer()
	player.Relics = []entities.Relic{scales}

	state := newProcessor().Process(entities.TriggerTurnStart, player, testutils.CreateTestEnemies(10), nil)

	assert.Equal(t, 9, state.Enemies[0].Health)
}

func TestProcessor_CentennialPuzzleRequestsDraw(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Relics = []entities.Relic{testutils.CreateCentennialPuzzle()}

	ctx := &Context{}
	state := newProcessor().Process(entities.TriggerDamageTaken, player, nil, ctx)

	assert.Equal(t, DamageDrawCount, ctx.ShouldDrawCards)
	assert.Equal(t, player, state.Player)

	// Without a context the signal is dropped, nothing else happens
	assert.NotPanics(t, func() {
		newProcessor().Process(entities.TriggerDamageTaken, player, nil, nil)
	})
}

func TestProcessor_GenericDrawIsNoOp(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Relics = []entities.Relic{
		effects.NewBuilder().On(entities.TriggerCombatStart).AddDraw(2).BuildRelic("bag", "Bag", ""),
	}

	ctx := &Context{}
	newProcessor().Process(entities.TriggerCombatStart, player, nil, ctx)

	assert.Equal(t, 0, ctx.ShouldDrawCards)
}

func TestProcessor_StatusDefaultsToAllEnemies(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Relics = []entities.Relic{{
		ID: "bag_of_marbles",
		Effects: []entities.Effect{{
			Trigger:    entities.TriggerCombatStart,
			Type:       entities.EffectApplyStatus,
			Value:      1,
			StatusType: entities.StatusVulnerable,
		}},
	}}

	state := newProcessor().Process(entities.TriggerCombatStart, player, testutils.CreateTestEnemies(10, 10), nil)

	for _, enemy := range state.Enemies {
		assert.Equal(t, 1, enemy.StatusStacks(entities.StatusVulnerable))
	}
	assert.False(t, state.Player.HasStatus(entities.StatusVulnerable))
}

func TestProcessor_RelicOrderIsStable(t *testing.T) {
	// Vajra-like strength first, then a relic that heals: both see prior state
	player := testutils.CreateTestPlayer()
	player.Health = 10
	player.Relics = []entities.Relic{
		effects.NewBuilder().On(entities.TriggerCombatStart).AddStatus(entities.StatusStrength, 1, entities.TargetSelf).BuildRelic("vajra", "Vajra", ""),
		effects.NewBuilder().On(entities.TriggerCombatStart).AddStatus(entities.StatusStrength, 1, entities.TargetSelf).BuildRelic("girya", "Girya", ""),
		effects.NewBuilder().On(entities.TriggerCombatStart).AddHeal(5).BuildRelic("blood_vial", "Blood Vial", ""),
	}

	state := ProcessRelicEffects(entities.TriggerCombatStart, player, nil, nil)

	require.Len(t, state.Player.StatusEffects, 1)
	assert.Equal(t, 2, state.Player.StatusStacks(entities.StatusStrength))
	assert.Equal(t, 15, state.Player.Health)
}

func TestProcessor_NoMatchingTriggerIsIdentity(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Relics = []entities.Relic{testutils.CreateBronzeScales(), testutils.CreateEnergyRelic(1)}
	enemies := testutils.CreateTestEnemies(10)

	ctx := &Context{}
	state := newProcessor().Process(entities.TriggerTurnEnd, player, enemies, ctx)

	assert.Equal(t, player, state.Player)
	assert.Equal(t, enemies, state.Enemies)
	assert.Zero(t, ctx.ShouldDrawCards)
}

func TestHasOverride(t *testing.T) {
	assert.True(t, HasOverride(entities.RelicBronzeScales))
	assert.True(t, HasOverride(entities.RelicCentennialPuzzle))
	assert.False(t, HasOverride(entities.RelicAkabeko))
	assert.False(t, HasOverride("lantern"))
}
