package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hollowmoor/soulsfight/internal/dice"
	"github.com/hollowmoor/soulsfight/internal/domain/character"
	"github.com/hollowmoor/soulsfight/internal/domain/game/combat"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/repositories/characters"
	"github.com/hollowmoor/soulsfight/internal/repositories/items"
)

// Service manages persistent characters and prepares them for combat
type Service interface {
	// Create validates and stores a new character
	Create(ctx context.Context, char *character.Character) (*character.Character, error)

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// List retrieves every stored character
	List(ctx context.Context) ([]*character.Character, error)

	// ListIDs retrieves every stored character ID
	ListIDs(ctx context.Context) ([]string, error)

	// Update overwrites an existing character
	Update(ctx context.Context, char *character.Character) (*character.Character, error)

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// Equip places a catalog item into one of the character's slots
	Equip(ctx context.Context, id, itemName string, slot character.Slot) (*character.Character, error)

	// Combatant rolls initiative and converts a character into a
	// combat participant
	Combatant(ctx context.Context, id string) (*combat.Participant, error)
}

type service struct {
	repository characters.Repository
	items      items.Repository
	roller     dice.Roller
}

// ServiceConfig holds the dependencies for the character service
type ServiceConfig struct {
	Repository characters.Repository
	Items      items.Repository
	Roller     dice.Roller
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("character repository cannot be nil")
	}
	if cfg.Items == nil {
		panic("item repository cannot be nil")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &service{
		repository: cfg.Repository,
		items:      cfg.Items,
		roller:     roller,
	}
}

func (s *service) Create(ctx context.Context, char *character.Character) (*character.Character, error) {
	if err := validateCharacter(char); err != nil {
		return nil, err
	}

	id, err := s.repository.Create(ctx, char)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("character_id", id).
		Str("name", char.Name).
		Msg("character created")

	return s.repository.Get(ctx, id)
}

func (s *service) Get(ctx context.Context, id string) (*character.Character, error) {
	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*character.Character, error) {
	return s.repository.List(ctx)
}

func (s *service) ListIDs(ctx context.Context) ([]string, error) {
	return s.repository.ListIDs(ctx)
}

func (s *service) Update(ctx context.Context, char *character.Character) (*character.Character, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}
	if err := validateCharacter(char); err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, err
	}
	return s.repository.Get(ctx, char.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("character_id", id).Msg("character deleted")
	return nil
}

func (s *service) Equip(ctx context.Context, id, itemName string, slot character.Slot) (*character.Character, error) {
	if itemName == "" {
		return nil, apperr.InvalidArgument("item name is required")
	}

	char, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// The item must exist in the catalog matching the slot's category
	switch slot {
	case character.SlotRightHand, character.SlotLeftHand:
		if _, err := s.items.GetWeapon(ctx, itemName); err != nil {
			return nil, err
		}
	case character.SlotArmor:
		if _, err := s.items.GetArmorBonus(ctx, itemName); err != nil {
			return nil, err
		}
	case character.SlotSpell1, character.SlotSpell2, character.SlotSpell3, character.SlotSpell4:
		if _, err := s.items.GetSpell(ctx, itemName); err != nil {
			return nil, err
		}
	default:
		return nil, apperr.Validationf("unknown equipment slot %q", slot)
	}

	char.Equip(slot, itemName)
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, err
	}

	return s.repository.Get(ctx, id)
}

func (s *service) Combatant(ctx context.Context, id string) (*combat.Participant, error) {
	char, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Initiative is a d20 plus the dexterity modifier
	roll, err := s.roller.Roll(1, 20, char.Stat(character.StatDexterity).Modifier)
	if err != nil {
		return nil, err
	}

	return &combat.Participant{
		ID:         char.ID,
		Name:       char.Name,
		IsPlayer:   char.IsPlayer,
		Initiative: roll.Total,
		CurrentHP:  char.HP.Current,
		MaxHP:      char.HP.Max,
		CurrentAP:  char.AP.Current,
		MaxAP:      char.AP.Max,
	}, nil
}

func validateCharacter(char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if strings.TrimSpace(char.Name) == "" {
		return apperr.Validation("character name is required")
	}
	if char.Level < 0 {
		return apperr.Validation("character level cannot be negative")
	}
	for name, stat := range char.Stats {
		if stat == nil {
			continue
		}
		if stat.Value < 0 || stat.Value > 99 {
			return apperr.Validationf("stat %s must be between 0 and 99", name)
		}
	}
	if char.HP.Max <= 0 {
		return apperr.Validation("character max HP must be positive")
	}
	if char.HP.Current < 0 || char.HP.Current > char.HP.Max {
		return apperr.Validation("character HP must be between 0 and max HP")
	}
	if char.AP.Max < 0 || char.AP.Current < 0 || char.AP.Current > char.AP.Max {
		return apperr.Validation("character AP must be between 0 and max AP")
	}
	return nil
}
