package entities

// Relic identifiers with behavior that is not expressed by their effect data
const (
	RelicAkabeko          = "akabeko"           // first attack each combat deals +8
	RelicBronzeScales     = "bronze_scales"     // taking damage deals 3 to every enemy
	RelicCentennialPuzzle = "centennial_puzzle" // taking damage draws 3 cards
)

// Relic is a permanent effect source held by the player
type Relic struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Effects     []Effect `json:"effects" yaml:"effects"`
}

// Clone returns a copy that shares no slices with r
func (r Relic) Clone() Relic {
	r.Effects = CloneEffects(r.Effects)
	return r
}
