package entities

// IntentType is the kind of action an enemy has declared for its next turn
type IntentType string

const (
	IntentAttack  IntentType = "attack"
	IntentDefend  IntentType = "defend"
	IntentBuff    IntentType = "buff"
	IntentDebuff  IntentType = "debuff"
	IntentUnknown IntentType = "unknown"
)

// Intent is the next declared action of an enemy
type Intent struct {
	Type  IntentType `json:"type"`
	Value int        `json:"value,omitempty"`
}

// Enemy is the snapshot of a single monster in combat
type Enemy struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Health        int            `json:"health"`
	MaxHealth     int            `json:"max_health"`
	Block         int            `json:"block"`
	StatusEffects []StatusEffect `json:"status_effects,omitempty"`
	Intent        *Intent        `json:"intent,omitempty"`
}

func (e *Enemy) GetHealth() int                   { return e.Health }
func (e *Enemy) GetMaxHealth() int                { return e.MaxHealth }
func (e *Enemy) GetBlock() int                    { return e.Block }
func (e *Enemy) GetStatusEffects() []StatusEffect { return e.StatusEffects }

// StatusStacks returns the stacks of type t, or 0 when absent
func (e *Enemy) StatusStacks(t StatusType) int {
	return statusStacks(e.StatusEffects, t)
}

// HasStatus reports whether the enemy holds an entry of type t
func (e *Enemy) HasStatus(t StatusType) bool {
	return FindStatus(e.StatusEffects, t) >= 0
}

// IsDefeated reports whether the enemy has no health left
func (e *Enemy) IsDefeated() bool {
	return e.Health <= 0
}

// Clone returns a deep copy of the enemy
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}

	clone := *e
	clone.StatusEffects = CloneStatusEffects(e.StatusEffects)
	if e.Intent != nil {
		intent := *e.Intent
		clone.Intent = &intent
	}
	return &clone
}

// CloneEnemies deep copies every enemy in the list
func CloneEnemies(in []*Enemy) []*Enemy {
	if in == nil {
		return nil
	}
	out := make([]*Enemy, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}

// SetStatusEffects replaces the status list
func (e *Enemy) SetStatusEffects(list []StatusEffect) { e.StatusEffects = list }

// SetHealth replaces the current health
func (e *Enemy) SetHealth(health int) { e.Health = health }
