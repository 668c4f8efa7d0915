package testutils

import (
	"fmt"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// CreateTestPlayer creates a player at full health with 3 energy and no
// relics, powers or statuses
func CreateTestPlayer() *entities.Player {
	return &entities.Player{
		Health:    80,
		MaxHealth: 80,
		Energy:    3,
		MaxEnergy: 3,
		Gold:      99,
	}
}

// CreateTestEnemy creates an enemy at full health with an attack intent
func CreateTestEnemy(id string, health int) *entities.Enemy {
	return &entities.Enemy{
		ID:        id,
		Name:      id,
		Health:    health,
		MaxHealth: health,
		Intent:    &entities.Intent{Type: entities.IntentAttack, Value: 6},
	}
}

// CreateTestEnemies creates one enemy per health value, with IDs e1, e2, ...
func CreateTestEnemies(health ...int) []*entities.Enemy {
	enemies := make([]*entities.Enemy, len(health))
	for i, h := range health {
		enemies[i] = CreateTestEnemy(fmt.Sprintf("e%d", i+1), h)
	}
	return enemies
}

// CreateEnergyRelic creates a relic granting energy at turn start
func CreateEnergyRelic(amount int) entities.Relic {
	return effects.NewBuilder().
		On(entities.TriggerTurnStart).
		AddEnergy(amount).
		BuildRelic("lantern", "Lantern", "Gain energy at the start of your turn")
}

// CreateBlockRelic creates a relic granting block at turn start
func CreateBlockRelic(amount int) entities.Relic {
	return effects.NewBuilder().
		On(entities.TriggerTurnStart).
		AddBlock(amount).
		BuildRelic("anchor", "Anchor", "Gain block at the start of your turn")
}

// CreateBronzeScales creates the damage reflecting relic
func CreateBronzeScales() entities.Relic {
	return effects.NewBuilder().
		On(entities.TriggerDamageTaken).
		AddDamage(3, entities.TargetAllEnemies).
		BuildRelic(entities.RelicBronzeScales, "Bronze Scales", "Whenever you take damage, deal 3 damage to all enemies")
}

// CreateCentennialPuzzle creates the relic that draws cards on damage
func CreateCentennialPuzzle() entities.Relic {
	return effects.NewBuilder().
		On(entities.TriggerDamageTaken).
		AddDraw(3).
		BuildRelic(entities.RelicCentennialPuzzle, "Centennial Puzzle", "When you lose HP, draw 3 cards")
}

// CreateAkabeko creates the first-attack bonus relic
func CreateAkabeko() entities.Relic {
	return entities.Relic{
		ID:          entities.RelicAkabeko,
		Name:        "Akabeko",
		Description: "Your first attack each combat deals 8 additional damage",
	}
}

// CreateStatus is shorthand for a status entry without duration
func CreateStatus(t entities.StatusType, stacks int) entities.StatusEffect {
	return entities.StatusEffect{Type: t, Stacks: stacks}
}
