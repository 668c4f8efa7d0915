package content

import (
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/effects"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// Default returns the built-in catalog used when no content dir is
// configured
func Default() *Catalog {
	return &Catalog{
		Cards: []entities.Card{
			{ID: "strike", Name: "Strike", Type: entities.CardTypeAttack, Cost: 1, Damage: 6},
			{ID: "defend", Name: "Defend", Type: entities.CardTypeSkill, Cost: 1, Block: 5},
			{
				ID: "bash", Name: "Bash", Type: entities.CardTypeAttack, Cost: 2, Damage: 8,
				Effects: effects.NewBuilder().AddStatus(entities.StatusVulnerable, 2, entities.TargetEnemy).Build(),
			},
			{
				ID: "whirlwind", Name: "Whirlwind", Type: entities.CardTypeAttack, Cost: 0, Damage: 5,
				Effects: effects.NewBuilder().AddEnergyMultiplier().Build(),
			},
			{
				ID: "twin_strike", Name: "Twin Strike", Type: entities.CardTypeAttack, Cost: 1,
				Effects: effects.NewBuilder().
					AddDamage(5, entities.TargetEnemy).
					AddDamage(5, entities.TargetEnemy).
					Build(),
			},
		},
		PowerCards: []entities.PowerCard{
			effects.NewBuilder().
				On(entities.TriggerTurnStart).
				AddStatus(entities.StatusStrength, 2, entities.TargetSelf).
				BuildPowerCard("demon_form", "Demon Form"),
			effects.NewBuilder().
				On(entities.TriggerTurnEnd).
				AddBlock(3).
				BuildPowerCard("metallicize", "Metallicize"),
			effects.NewBuilder().
				On(entities.TriggerTurnStart).
				AddStatus(entities.StatusPoison, 2, entities.TargetAllEnemies).
				BuildPowerCard("noxious_fumes", "Noxious Fumes"),
		},
		Relics: []entities.Relic{
			{
				ID:          entities.RelicAkabeko,
				Name:        "Akabeko",
				Description: "Your first attack each combat deals 8 additional damage",
			},
			effects.NewBuilder().
				On(entities.TriggerDamageTaken).
				AddDamage(3, entities.TargetAllEnemies).
				BuildRelic(entities.RelicBronzeScales, "Bronze Scales", "Whenever you take damage, deal 3 damage to all enemies"),
			effects.NewBuilder().
				On(entities.TriggerDamageTaken).
				AddDraw(3).
				BuildRelic(entities.RelicCentennialPuzzle, "Centennial Puzzle", "When you lose HP, draw 3 cards"),
			effects.NewBuilder().
				On(entities.TriggerCombatStart).
				AddBlock(10).
				BuildRelic("anchor", "Anchor", "Start each combat with 10 block"),
			effects.NewBuilder().
				On(entities.TriggerCombatStart).
				AddStatus(entities.StatusStrength, 1, entities.TargetSelf).
				BuildRelic("vajra", "Vajra", "Start each combat with 1 strength"),
			effects.NewBuilder().
				On(entities.TriggerTurnStart).
				AddEnergy(1).
				BuildRelic("lantern", "Lantern", "Gain 1 energy at the start of your turn"),
			effects.NewBuilder().
				On(entities.TriggerTurnEnd).
				AddHeal(2).
				BuildRelic("blood_vial", "Blood Vial", "Heal 2 at the end of your turn"),
		},
		MonsterCards: []entities.MonsterCard{
			{ID: "dark_strike", Name: "Dark Strike", Damage: 6},
			{
				ID: "chomp", Name: "Chomp",
				Effects: effects.NewBuilder().AddDamage(11, entities.TargetEnemy).Build(),
			},
			{
				ID: "thrash", Name: "Thrash",
				Effects: effects.NewBuilder().AddDamage(7, entities.TargetEnemy).AddBlock(5).Build(),
			},
			{
				ID: "bellow", Name: "Bellow",
				Effects: effects.NewBuilder().
					AddStatus(entities.StatusStrength, 3, entities.TargetSelf).
					AddBlock(6).
					Build(),
			},
			{
				ID: "lick", Name: "Lick",
				Effects: effects.NewBuilder().AddStatus(entities.StatusWeak, 1, entities.TargetEnemy).Build(),
			},
		},
	}
}
