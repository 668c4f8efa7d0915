package combats

import (
	"time"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
)

// Snapshot is the stored state of one combat between turns
type Snapshot struct {
	ID        string            `json:"id"`
	PlayerID  string            `json:"player_id"`
	Turn      int               `json:"turn"`
	Player    *entities.Player  `json:"player"`
	Enemies   []*entities.Enemy `json:"enemies"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Clone deep copies the snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Player = s.Player.Clone()
	clone.Enemies = entities.CloneEnemies(s.Enemies)
	return &clone
}

// State returns the processor view of the snapshot. The state aliases the
// snapshot; clone first if it must stay untouched.
func (s *Snapshot) State() entities.CombatState {
	return entities.CombatState{Player: s.Player, Enemies: s.Enemies}
}

// SetState replaces the player and enemies with a processor result
func (s *Snapshot) SetState(state entities.CombatState) {
	s.Player = state.Player
	s.Enemies = state.Enemies
}
