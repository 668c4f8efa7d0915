package entities

// StatusType identifies a kind of status effect
type StatusType string

const (
	StatusPoison     StatusType = "poison"
	StatusWeak       StatusType = "weak"
	StatusVulnerable StatusType = "vulnerable"
	StatusStrength   StatusType = "strength"
	StatusDexterity  StatusType = "dexterity"
)

// IsKnown reports whether the engine has rules for this status type
func (t StatusType) IsKnown() bool {
	switch t {
	case StatusPoison, StatusWeak, StatusVulnerable, StatusStrength, StatusDexterity:
		return true
	}
	return false
}

// StatusEffect is a single status entry on a combatant.
//
// Duration is nil for effects that are not governed by elapsed turns. Those
// either persist for the whole combat (strength, dexterity) or decay through
// their stacks (poison, weak, vulnerable).
type StatusEffect struct {
	Type     StatusType `json:"type" yaml:"type"`
	Stacks   int        `json:"stacks" yaml:"stacks"`
	Duration *int       `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// HasDuration reports whether the effect decays by elapsed turns
func (s StatusEffect) HasDuration() bool {
	return s.Duration != nil
}

// Clone returns a copy that shares no pointers with s
func (s StatusEffect) Clone() StatusEffect {
	if s.Duration != nil {
		d := *s.Duration
		s.Duration = &d
	}
	return s
}

// CloneStatusEffects deep copies a status list, keeping nil as nil
func CloneStatusEffects(in []StatusEffect) []StatusEffect {
	if in == nil {
		return nil
	}
	out := make([]StatusEffect, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

// FindStatus returns the index of the entry of type t, or -1
func FindStatus(list []StatusEffect, t StatusType) int {
	for i := range list {
		if list[i].Type == t {
			return i
		}
	}
	return -1
}

func statusStacks(list []StatusEffect, t StatusType) int {
	if i := FindStatus(list, t); i >= 0 {
		return list[i].Stacks
	}
	return 0
}
