// Package content holds the authored cards, power cards, relics and monster
// cards that combats are built from
package content

import (
	"bytes"
	"errors"
	"io"

	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/entities"
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"gopkg.in/yaml.v3"
)

// Catalog is one or more content documents merged together
type Catalog struct {
	Cards        []entities.Card        `yaml:"cards"`
	PowerCards   []entities.PowerCard   `yaml:"power_cards"`
	Relics       []entities.Relic       `yaml:"relics"`
	MonsterCards []entities.MonsterCard `yaml:"monster_cards"`
}

// Parse decodes a single YAML document. Unknown keys are rejected so typos
// in content never silently drop an effect.
func Parse(data []byte) (*Catalog, error) {
	catalog := &Catalog{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return catalog, nil
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse content")
	}

	return catalog, nil
}

// Merge appends everything in other to c
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.Cards = append(c.Cards, other.Cards...)
	c.PowerCards = append(c.PowerCards, other.PowerCards...)
	c.Relics = append(c.Relics, other.Relics...)
	c.MonsterCards = append(c.MonsterCards, other.MonsterCards...)
}

// Card returns a copy of the player card with the given ID
func (c *Catalog) Card(id string) (*entities.Card, error) {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			card := c.Cards[i]
			card.Effects = entities.CloneEffects(card.Effects)
			return &card, nil
		}
	}
	return nil, dnderr.NotFoundf("card %s not found", id).WithMeta("card_id", id)
}

// PowerCard returns a copy of the power card with the given ID
func (c *Catalog) PowerCard(id string) (entities.PowerCard, error) {
	for _, p := range c.PowerCards {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return entities.PowerCard{}, dnderr.NotFoundf("power card %s not found", id).WithMeta("power_card_id", id)
}

// Relic returns a copy of the relic with the given ID
func (c *Catalog) Relic(id string) (entities.Relic, error) {
	for _, r := range c.Relics {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return entities.Relic{}, dnderr.NotFoundf("relic %s not found", id).WithMeta("relic_id", id)
}

// MonsterCard returns a copy of the monster card with the given ID
func (c *Catalog) MonsterCard(id string) (*entities.MonsterCard, error) {
	for i := range c.MonsterCards {
		if c.MonsterCards[i].ID == id {
			card := c.MonsterCards[i]
			card.Effects = entities.CloneEffects(card.Effects)
			return &card, nil
		}
	}
	return nil, dnderr.NotFoundf("monster card %s not found", id).WithMeta("monster_card_id", id)
}

// RelicSet returns copies of the relics with the given IDs, in order
func (c *Catalog) RelicSet(ids ...string) ([]entities.Relic, error) {
	relics := make([]entities.Relic, 0, len(ids))
	for _, id := range ids {
		r, err := c.Relic(id)
		if err != nil {
			return nil, err
		}
		relics = append(relics, r)
	}
	return relics, nil
}
