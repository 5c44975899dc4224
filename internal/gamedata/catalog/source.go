// Package catalog implements the combat engine's read-only data source
// on top of the character store and the item catalog.
package catalog

import (
	"context"

	"github.com/hollowmoor/soulsfight/internal/domain/character"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/gamedata"
	"github.com/hollowmoor/soulsfight/internal/repositories/characters"
	"github.com/hollowmoor/soulsfight/internal/repositories/items"
)

type source struct {
	characters characters.Repository
	items      items.Repository
}

// SourceConfig holds the dependencies for the catalog-backed source
type SourceConfig struct {
	Characters characters.Repository
	Items      items.Repository
}

// NewSource creates a gamedata.Source resolving participant IDs to
// character sheets and equipped item names to catalog definitions
func NewSource(cfg *SourceConfig) gamedata.Source {
	if cfg == nil {
		panic("SourceConfig cannot be nil")
	}
	if cfg.Characters == nil {
		panic("character repository cannot be nil")
	}
	if cfg.Items == nil {
		panic("item repository cannot be nil")
	}
	return &source{
		characters: cfg.Characters,
		items:      cfg.Items,
	}
}

func (s *source) Weapon(ctx context.Context, participantID string) (*gamedata.Weapon, error) {
	char, err := s.characters.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}

	name := char.EquippedItem(character.SlotRightHand)
	if name == "" {
		return nil, apperr.NotFoundf("%s has no weapon equipped", char.Name).
			WithMeta("character_id", participantID)
	}

	return s.items.GetWeapon(ctx, name)
}

func (s *source) Spell(ctx context.Context, participantID, name string) (*gamedata.Spell, error) {
	char, err := s.characters.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}

	if !char.HasSpellEquipped(name) {
		return nil, apperr.NotFoundf("%s has not attuned '%s'", char.Name, name).
			WithMeta("character_id", participantID).
			WithMeta("spell_name", name)
	}

	return s.items.GetSpell(ctx, name)
}

func (s *source) Defense(ctx context.Context, participantID string) (int, error) {
	char, err := s.characters.Get(ctx, participantID)
	if err != nil {
		return 0, err
	}

	name := char.EquippedItem(character.SlotArmor)
	if name == "" {
		return 0, nil
	}

	return s.items.GetArmorBonus(ctx, name)
}

func (s *source) ScalingBonus(ctx context.Context, participantID string, stat gamedata.ScalingStat) (int, error) {
	char, err := s.characters.Get(ctx, participantID)
	if err != nil {
		return 0, err
	}

	value := char.Stat(character.StatName(stat)).Value
	return gamedata.GradeForValue(value).Bonus(), nil
}
