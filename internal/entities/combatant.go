package entities

// Combatant is anything that can take part in a fight: it has health, block
// and a list of status effects. *Player and *Enemy implement it.
type Combatant interface {
	GetHealth() int
	GetMaxHealth() int
	GetBlock() int
	GetStatusEffects() []StatusEffect
	StatusStacks(t StatusType) int
	HasStatus(t StatusType) bool
}

// IsMissing reports whether c carries no state: a nil interface or a typed
// nil *Player / *Enemy.
func IsMissing(c Combatant) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Player:
		return v == nil
	case *Enemy:
		return v == nil
	}
	return false
}
