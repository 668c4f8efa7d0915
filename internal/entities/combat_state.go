package entities

// CombatState is the player and enemy snapshots a processor consumes and
// produces
type CombatState struct {
	Player  *Player  `json:"player"`
	Enemies []*Enemy `json:"enemies"`
}

// Clone deep copies the state
func (s CombatState) Clone() CombatState {
	return CombatState{
		Player:  s.Player.Clone(),
		Enemies: CloneEnemies(s.Enemies),
	}
}

// Enemy returns the enemy with the given ID, or nil
func (s CombatState) Enemy(id string) *Enemy {
	for _, e := range s.Enemies {
		if e != nil && e.ID == id {
			return e
		}
	}
	return nil
}
