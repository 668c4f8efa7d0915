package monsters

import (
	"testing"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/diagnostics"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func newProcessor(reporter diagnostics.Reporter) *Processor {
	return NewProcessor(&ProcessorConfig{Reporter: reporter})
}

func TestProcessor_DamageAgainstBlock(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Block = 6
	enemy := testutils.CreateTestEnemy("jaw_worm", 40)
	card := &entities.MonsterCard{
		ID:      "chomp",
		Effects: effects.NewBuilder().AddDamage(10, entities.TargetEnemy).Build(),
	}

	result := newProcessor(diagnostics.Discard).Process(card, player, enemy)

	assert.Equal(t, 76, result.Player.Health)
	assert.Equal(t, 0, result.Player.Block)
	assert.Equal(t, 80, player.Health)
	assert.Equal(t, 6, player.Block)
}

func TestProcessor_BlockAbsorbsFully(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.Block = 15
	enemy := testutils.CreateTestEnemy("cultist", 50)
	enemy.StatusEffects = []entities.StatusEffect{testutils.CreateStatus(entities.StatusStrength, 2)}

	card := &entities.MonsterCard{ID: "dark_strike", Damage: 6}
	result := ProcessMonsterCardEffects(card, player, enemy)

	assert.Equal(t, 80, result.Player.Health)
	assert.Equal(t, 7, result.Player.Block)
}

func TestProcessor_DamageUsesModifiers(t *testing.T) {
	player := testutils.CreateTestPlayer()
	player.StatusEffects = []entities.StatusEffect{testutils.CreateStatus(entities.StatusVulnerable, 1)}
	enemy := testutils.CreateTestEnemy("louse", 12)
	enemy.StatusEffects = []entities.StatusEffect{testutils.CreateStatus(entities.StatusWeak, 1)}

	card := &entities.MonsterCard{ID: "bite", Effects: effects.NewBuilder().AddDamage(10, entities.TargetEnemy).Build()}
	result := newProcessor(diagnostics.Discard).Process(card, player, enemy)

	// floor(floor(10 * 0.75) * 1.5) = 10
	assert.Equal(t, 70, result.Player.Health)
}

func TestProcessor_SelfEffects(t *testing.T) {
	player := testutils.CreateTestPlayer()
	enemy := testutils.CreateTestEnemy("gremlin", 20)
	enemy.Health = 12
	enemy.StatusEffects = []entities.StatusEffect{testutils.CreateStatus(entities.StatusDexterity, 2)}

	card := &entities.MonsterCard{
		ID: "bellow",
		Effects: effects.NewBuilder().
			AddBlock(6).
			AddHeal(20).
			AddStatus(entities.StatusStrength, 3, entities.TargetSelf).
			AddStatus(entities.StatusWeak, 2, entities.TargetEnemy).
			Build(),
	}

	result := newProcessor(diagnostics.Discard).Process(card, player, enemy)

	assert.Equal(t, 8, result.Enemy.Block)
	assert.Equal(t, 20, result.Enemy.Health)
	assert.Equal(t, 3, result.Enemy.StatusStacks(entities.StatusStrength))
	assert.Equal(t, 2, result.Player.StatusStacks(entities.StatusWeak))
	assert.Equal(t, 12, enemy.Health)
	assert.False(t, enemy.HasStatus(entities.StatusStrength))
}

func TestProcessor_LegacyFields(t *testing.T) {
	t.Run("flat fields apply without structured effects", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		enemy := testutils.CreateTestEnemy("slime", 30)
		card := &entities.MonsterCard{ID: "tackle", Damage: 8, Block: 5}

		result := newProcessor(diagnostics.Discard).Process(card, player, enemy)

		assert.Equal(t, 72, result.Player.Health)
		assert.Equal(t, 5, result.Enemy.Block)
	})

	t.Run("structured effects win over flat fields", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		enemy := testutils.CreateTestEnemy("slime", 30)
		card := &entities.MonsterCard{
			ID:     "tackle",
			Damage: 8,
			Block:  5,
			Effects: effects.NewBuilder().
				AddDamage(3, entities.TargetEnemy).
				AddBlock(1).
				Build(),
		}

		result := newProcessor(diagnostics.Discard).Process(card, player, enemy)

		assert.Equal(t, 77, result.Player.Health)
		assert.Equal(t, 1, result.Enemy.Block)
	})

	t.Run("legacy damage runs beside a structured block", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		enemy := testutils.CreateTestEnemy("slime", 30)
		card := &entities.MonsterCard{
			ID:      "tackle",
			Damage:  4,
			Block:   9,
			Effects: effects.NewBuilder().AddBlock(2).Build(),
		}

		result := newProcessor(diagnostics.Discard).Process(card, player, enemy)

		assert.Equal(t, 76, result.Player.Health)
		assert.Equal(t, 2, result.Enemy.Block)
	})
}

func TestProcessor_ReportsUnsupported(t *testing.T) {
	recorder := diagnostics.NewRecorder()
	player := testutils.CreateTestPlayer()
	enemy := testutils.CreateTestEnemy("orb", 20)
	card := &entities.MonsterCard{
		ID:     "strange",
		Damage: 9,
		Effects: []entities.Effect{
			{Type: entities.EffectDamage, Value: 5, Target: entities.TargetAllEnemies},
			{Type: entities.EffectApplyStatus, Value: 1, Target: entities.TargetEnemy},
		},
	}

	result := newProcessor(recorder).Process(card, player, enemy)

	assert.Equal(t, 80, result.Player.Health, "structured damage suppresses the legacy path even when unsupported")
	assert.Empty(t, result.Player.StatusEffects)
	assert.Equal(t, 2, recorder.Len())
}

func TestProcessor_MissingInputs(t *testing.T) {
	recorder := diagnostics.NewRecorder()
	player := testutils.CreateTestPlayer()

	result := newProcessor(recorder).Process(&entities.MonsterCard{Damage: 5}, player, nil)

	assert.Equal(t, player, result.Player)
	assert.Nil(t, result.Enemy)
	assert.Equal(t, 1, recorder.Len())
}
