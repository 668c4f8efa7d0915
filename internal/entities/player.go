package entities

// Player is the snapshot of the player side of a combat
type Player struct {
	Health        int            `json:"health"`
	MaxHealth     int            `json:"max_health"`
	Block         int            `json:"block"`
	Energy        int            `json:"energy"`
	MaxEnergy     int            `json:"max_energy"`
	Gold          int            `json:"gold"`
	StatusEffects []StatusEffect `json:"status_effects,omitempty"`
	Relics        []Relic        `json:"relics,omitempty"`
	PowerCards    []PowerCard    `json:"power_cards,omitempty"`
}

func (p *Player) GetHealth() int                   { return p.Health }
func (p *Player) GetMaxHealth() int                { return p.MaxHealth }
func (p *Player) GetBlock() int                    { return p.Block }
func (p *Player) GetStatusEffects() []StatusEffect { return p.StatusEffects }

// StatusStacks returns the stacks of type t, or 0 when absent
func (p *Player) StatusStacks(t StatusType) int {
	return statusStacks(p.StatusEffects, t)
}

// HasStatus reports whether the player holds an entry of type t
func (p *Player) HasStatus(t StatusType) bool {
	return FindStatus(p.StatusEffects, t) >= 0
}

// HasRelic reports whether the player holds the relic with the given ID
func (p *Player) HasRelic(id string) bool {
	for _, r := range p.Relics {
		if r.ID == id {
			return true
		}
	}
	return false
}

// IsDefeated reports whether the player has no health left
func (p *Player) IsDefeated() bool {
	return p.Health <= 0
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	clone := *p
	clone.StatusEffects = CloneStatusEffects(p.StatusEffects)
	if p.Relics != nil {
		clone.Relics = make([]Relic, len(p.Relics))
		for i, r := range p.Relics {
			clone.Relics[i] = r.Clone()
		}
	}
	if p.PowerCards != nil {
		clone.PowerCards = make([]PowerCard, len(p.PowerCards))
		for i, c := range p.PowerCards {
			clone.PowerCards[i] = c.Clone()
		}
	}
	return &clone
}

// SetStatusEffects replaces the status list
func (p *Player) SetStatusEffects(list []StatusEffect) { p.StatusEffects = list }

// SetHealth replaces the current health
func (p *Player) SetHealth(health int) { p.Health = health }
