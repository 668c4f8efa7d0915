package entities

// CardType is the play category of a player card
type CardType string

const (
	CardTypeAttack CardType = "attack"
	CardTypeSkill  CardType = "skill"
	CardTypePower  CardType = "power"
)

// Card is a playable player card
type Card struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Type    CardType `json:"type" yaml:"type"`
	Cost    int      `json:"cost" yaml:"cost"`
	Damage  int      `json:"damage,omitempty" yaml:"damage,omitempty"`
	Block   int      `json:"block,omitempty" yaml:"block,omitempty"`
	Effects []Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// HasEffect reports whether the card declares an effect of type t
func (c *Card) HasEffect(t EffectType) bool {
	for _, e := range c.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// PowerCard is a persistent card whose effects re-evaluate on every
// qualifying trigger for the rest of combat
type PowerCard struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Effects []Effect `json:"effects" yaml:"effects"`
}

// Clone returns a copy that shares no slices with p
func (p PowerCard) Clone() PowerCard {
	p.Effects = CloneEffects(p.Effects)
	return p
}

// MonsterCard is an action played by a single monster against the player.
// Damage and Block are the legacy flat fields older content still uses.
type MonsterCard struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Damage  int      `json:"damage,omitempty" yaml:"damage,omitempty"`
	Block   int      `json:"block,omitempty" yaml:"block,omitempty"`
	Effects []Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// HasEffect reports whether the card declares a structured effect of type t
func (c *MonsterCard) HasEffect(t EffectType) bool {
	for _, e := range c.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}
