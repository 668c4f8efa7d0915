package content

import (
	"fmt"
	"strings"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// Validate checks everything the combat processors assume about authored
// content: unique IDs, known enums, a status type on every apply_status and
// no negative values. All problems are returned together.
func (c *Catalog) Validate() error {
	v := &validator{}

	seen := map[string]bool{}
	for _, card := range c.Cards {
		owner := "card " + card.ID
		v.id(seen, "card", card.ID)
		if card.Damage < 0 || card.Block < 0 || card.Cost < 0 {
			v.add("%s: negative damage, block or cost", owner)
		}
		v.effects(owner, card.Effects, false)
	}

	seen = map[string]bool{}
	for _, p := range c.PowerCards {
		v.id(seen, "power card", p.ID)
		v.effects("power card "+p.ID, p.Effects, true)
	}

	seen = map[string]bool{}
	for _, r := range c.Relics {
		v.id(seen, "relic", r.ID)
		v.effects("relic "+r.ID, r.Effects, true)
	}

	seen = map[string]bool{}
	for _, m := range c.MonsterCards {
		owner := "monster card " + m.ID
		v.id(seen, "monster card", m.ID)
		if m.Damage < 0 || m.Block < 0 {
			v.add("%s: negative damage or block", owner)
		}
		v.effects(owner, m.Effects, false)
	}

	if len(v.problems) == 0 {
		return nil
	}
	return dnderr.Validationf("invalid content: %s", strings.Join(v.problems, "; ")).
		WithMeta("problems", len(v.problems))
}

type validator struct {
	problems []string
}

func (v *validator) add(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) id(seen map[string]bool, kind, id string) {
	if id == "" {
		v.add("%s without id", kind)
		return
	}
	if seen[id] {
		v.add("duplicate %s id %s", kind, id)
	}
	seen[id] = true
}

// effects checks one owner's list. Triggered owners need a trigger on every
// effect or the effect can never fire.
func (v *validator) effects(owner string, list []entities.Effect, triggered bool) {
	for i, e := range list {
		where := fmt.Sprintf("%s effect %d", owner, i)

		if !e.Type.IsKnown() {
			v.add("%s: unknown effect type %q", where, e.Type)
		}
		if !e.Target.IsKnown() {
			v.add("%s: unknown target %q", where, e.Target)
		}
		if e.Trigger != "" && !e.Trigger.IsKnown() {
			v.add("%s: unknown trigger %q", where, e.Trigger)
		}
		if triggered && e.Trigger == "" {
			v.add("%s: missing trigger", where)
		}
		if e.Value < 0 {
			v.add("%s: negative value %d", where, e.Value)
		}
		if e.Type == entities.EffectApplyStatus {
			switch {
			case e.StatusType == "":
				v.add("%s: apply_status without status_type", where)
			case !e.StatusType.IsKnown():
				v.add("%s: unknown status type %q", where, e.StatusType)
			}
		}
	}
}
